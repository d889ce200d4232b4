package typebuilder

// Factory hands out pooled accumulators for one assembled configuration.
// Classification and field discovery happen once, at construction; Acquire is
// a pool draw.
type Factory struct {
	cfg  *Configuration
	pool *pool
}

// NewFactory classifies the input (a Schema, a constructor func, or a
// []string field list), discovers or accepts its field set, and returns a
// factory over the default registry. The last FactoryOpt wins.
func NewFactory(input any, opts ...FactoryOpt) (*Factory, error) {
	return defaultRegistry.NewFactory(input, opts...)
}

// MustFactory is like NewFactory but panics on error.
func MustFactory(input any, opts ...FactoryOpt) *Factory {
	f, err := NewFactory(input, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// NewFactory builds a factory whose pool lives in this registry.
func (r *Registry) NewFactory(input any, opts ...FactoryOpt) (*Factory, error) {
	opt := normalizeFactoryOpt(opts)
	cfg, err := assemble(input, opt)
	if err != nil {
		return nil, err
	}
	return &Factory{cfg: cfg, pool: r.poolFor(cfg, opt.MaxPoolSize, false)}, nil
}

// Config returns the factory's immutable configuration.
func (f *Factory) Config() *Configuration { return f.cfg }

// Acquire draws an accumulator from the pool, creating one on a pool miss.
// The caller owns it exclusively until Release.
func (f *Factory) Acquire() *Accumulator { return f.pool.get() }

// Stats snapshots the factory's pool telemetry.
func (f *Factory) Stats() PoolStats { return f.pool.stats() }

// AsyncFactory hands out context-aware accumulators for a validated
// configuration. Only schema inputs support it.
type AsyncFactory struct {
	cfg  *Configuration
	pool *pool
}

// NewAsyncFactory is NewFactory's async counterpart over the default
// registry. Non-schema inputs fail with ErrAsyncUnsupported before any
// accumulator exists.
func NewAsyncFactory(input any, opts ...FactoryOpt) (*AsyncFactory, error) {
	return defaultRegistry.NewAsyncFactory(input, opts...)
}

// MustAsyncFactory is like NewAsyncFactory but panics on error.
func MustAsyncFactory(input any, opts ...FactoryOpt) *AsyncFactory {
	f, err := NewAsyncFactory(input, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// NewAsyncFactory builds an async factory whose pool lives in this registry.
func (r *Registry) NewAsyncFactory(input any, opts ...FactoryOpt) (*AsyncFactory, error) {
	opt := normalizeFactoryOpt(opts)
	cfg, err := assemble(input, opt)
	if err != nil {
		return nil, err
	}
	if cfg.variant != VariantValidated {
		return nil, ErrAsyncUnsupported
	}
	return &AsyncFactory{cfg: cfg, pool: r.poolFor(cfg, opt.MaxPoolSize, true)}, nil
}

// Config returns the factory's immutable configuration.
func (f *AsyncFactory) Config() *Configuration { return f.cfg }

// Acquire draws an async accumulator from the pool.
func (f *AsyncFactory) Acquire() *AsyncAccumulator {
	return &AsyncAccumulator{inner: f.pool.get()}
}

// Stats snapshots the factory's pool telemetry.
func (f *AsyncFactory) Stats() PoolStats { return f.pool.stats() }
