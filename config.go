package typebuilder

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Configuration is the immutable description of a target shape: its variant,
// its field set, and the variant payload (schema or constructor). One
// Configuration is shared by every accumulator drawn from its pool; nothing
// here mutates after assembly.
type Configuration struct {
	variant Variant
	fields  []string            // first-seen order, for display only
	set     map[string]struct{} // membership checks during dispatch
	schema  Schema              // VariantValidated payload
	ctor    reflect.Value       // VariantConstructed payload
	// mutators maps the deterministic mutator name ("With" + capitalized
	// field) back to its field, generated once at assembly.
	mutators map[string]string
	unknown  UnknownPolicy
	key      string
}

// assemble combines classifier output, discovered or overridden fields, and
// options into a Configuration.
func assemble(input any, opt FactoryOpt) (*Configuration, error) {
	variant, err := Classify(input)
	if err != nil {
		return nil, err
	}

	var fields []string
	if opt.Fields != nil {
		if len(opt.Fields) == 0 {
			return nil, ErrEmptyFieldList
		}
		fields = dedupeFields(opt.Fields)
	} else {
		fields = extractFields(variant, input)
	}

	cfg := &Configuration{
		variant:  variant,
		fields:   fields,
		set:      make(map[string]struct{}, len(fields)),
		mutators: make(map[string]string, len(fields)),
		unknown:  opt.Unknown,
	}
	for _, f := range fields {
		cfg.set[f] = struct{}{}
		name := MutatorName(f)
		if prev, dup := cfg.mutators[name]; dup {
			return nil, fmt.Errorf("%w: fields %q and %q both derive %q", ErrMutatorCollision, prev, f, name)
		}
		cfg.mutators[name] = f
	}
	switch variant {
	case VariantValidated:
		cfg.schema = input.(Schema)
	case VariantConstructed:
		cfg.ctor = reflect.ValueOf(input)
	}
	cfg.key = cfg.identityKey(input)
	return cfg, nil
}

// Variant reports the configuration's shape variant.
func (c *Configuration) Variant() Variant { return c.variant }

// Fields returns the configured field names in first-seen order. The order is
// for display only; consumers treat the result as a set.
func (c *Configuration) Fields() []string {
	return append([]string(nil), c.fields...)
}

// Has reports whether the field belongs to the configured set.
func (c *Configuration) Has(field string) bool {
	_, ok := c.set[field]
	return ok
}

// Mutators returns the mutator names of every configured field, sorted.
func (c *Configuration) Mutators() []string {
	out := make([]string, 0, len(c.mutators))
	for name := range c.mutators {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// MutatorName derives the deterministic mutator name for a field:
// "With" + the field with its first rune upper-cased.
func MutatorName(field string) string {
	r, size := utf8.DecodeRuneInString(field)
	if r == utf8.RuneError && size <= 1 {
		return "With" + field
	}
	return "With" + string(unicode.ToUpper(r)) + field[size:]
}

// identityKey renders the pool key: variant, payload identity, seeding
// policy, and the sorted field set, independent of discovery order. The
// policy participates because pooled accumulators carry their configuration;
// factories differing only in policy must not exchange them. Field names are
// quoted so names containing the separators cannot collide with a different
// field set.
func (c *Configuration) identityKey(input any) string {
	sorted := append([]string(nil), c.fields...)
	sort.Strings(sorted)
	for i, f := range sorted {
		sorted[i] = strconv.Quote(f)
	}
	return fmt.Sprintf("%s|%s|u%d|%s", c.variant, payloadIdentity(c.variant, input), c.unknown, strings.Join(sorted, ","))
}

// payloadIdentity distinguishes two configurations over different schemas or
// constructors. Reference kinds use pointer identity; value-typed schemas fall
// back to type identity, which conflates equal-typed instances but never
// crosses variants.
func payloadIdentity(variant Variant, input any) string {
	if variant == VariantListed {
		return "-"
	}
	v := reflect.ValueOf(input)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Chan, reflect.Slice, reflect.UnsafePointer:
		return fmt.Sprintf("0x%x", v.Pointer())
	}
	return v.Type().String()
}
