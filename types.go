package typebuilder

// UnknownPolicy controls how unknown keys are handled when seeding an
// accumulator from decoded input (see Accumulator.MergeJSON).
type UnknownPolicy int

const (
	UnknownStrict UnknownPolicy = iota // Reject unknown keys with an error.
	UnknownStrip                       // Drop unknown keys.
)

// FactoryOpt bundles per-factory options. The zero value selects the
// defaults (pool capacity DefaultMaxPoolSize, UnknownStrict seeding).
type FactoryOpt struct {
	// Fields overrides field discovery entirely for schema and constructor
	// inputs; useful for getters or computed fields that a trial
	// construction never assigns. nil means "discover"; an explicit empty
	// list is rejected with ErrEmptyFieldList.
	Fields []string
	// MaxPoolSize bounds the factory's idle-accumulator pool. Zero or
	// negative selects DefaultMaxPoolSize.
	MaxPoolSize int
	// Unknown selects the policy applied to keys outside the configured
	// field set during MergeJSON.
	Unknown UnknownPolicy
}

// DefaultMaxPoolSize is the idle-pool capacity used when FactoryOpt does not
// override it.
const DefaultMaxPoolSize = 32

func normalizeFactoryOpt(opts []FactoryOpt) FactoryOpt {
	var opt FactoryOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.MaxPoolSize <= 0 {
		opt.MaxPoolSize = DefaultMaxPoolSize
	}
	return opt
}
