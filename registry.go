package typebuilder

import "sync"

// Registry owns the pools for one scope of factories, keyed by configuration
// identity (variant + payload identity + field set, independent of field
// order). Sync and async factories over the same configuration keep separate
// pools because their accumulators finalize differently.
//
// A package-level DefaultRegistry backs the top-level functions; tests and
// multi-tenant hosts create their own.
type Registry struct {
	mu         sync.RWMutex
	syncPools  map[string]*pool
	asyncPools map[string]*pool
}

// NewRegistry creates an empty pool registry.
func NewRegistry() *Registry {
	return &Registry{
		syncPools:  make(map[string]*pool),
		asyncPools: make(map[string]*pool),
	}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used by the top-level
// factory functions.
func DefaultRegistry() *Registry { return defaultRegistry }

// poolFor returns the pool for the configuration key, creating it with the
// requested capacity on first use. Capacity is fixed at creation; later
// factories over the same configuration share the existing pool.
func (r *Registry) poolFor(cfg *Configuration, maxSize int, async bool) *pool {
	pools := r.syncPools
	if async {
		pools = r.asyncPools
	}
	r.mu.RLock()
	p, ok := pools[cfg.key]
	r.mu.RUnlock()
	if ok {
		return p
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := pools[cfg.key]; ok {
		return p
	}
	p = newPool(cfg, maxSize)
	pools[cfg.key] = p
	return p
}

// AggregateStats reports the idle accumulator counts across all sync and all
// async pools.
type AggregateStats struct {
	Sync  int
	Async int
}

// PoolStats aggregates idle counts across the registry's pools.
func (r *Registry) PoolStats() AggregateStats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var agg AggregateStats
	for _, p := range r.syncPools {
		agg.Sync += p.size()
	}
	for _, p := range r.asyncPools {
		agg.Async += p.size()
	}
	return agg
}

// DetailedPoolStats snapshots per-pool telemetry, keyed by configuration
// identity prefixed with "sync|" or "async|".
func (r *Registry) DetailedPoolStats() map[string]PoolStats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]PoolStats, len(r.syncPools)+len(r.asyncPools))
	for k, p := range r.syncPools {
		out["sync|"+k] = p.stats()
	}
	for k, p := range r.asyncPools {
		out["async|"+k] = p.stats()
	}
	return out
}

// ClearPools evicts every idle accumulator from every pool. Counters are left
// untouched; composing with ResetPoolStats is the full reset.
func (r *Registry) ClearPools() {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.syncPools {
		p.evict()
	}
	for _, p := range r.asyncPools {
		p.evict()
	}
}

// ResetPoolStats zeroes every pool's counters without evicting idle
// accumulators.
func (r *Registry) ResetPoolStats() {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.syncPools {
		p.resetStats()
	}
	for _, p := range r.asyncPools {
		p.resetStats()
	}
}

// ClearPools evicts idle accumulators from the default registry's pools.
func ClearPools() { defaultRegistry.ClearPools() }

// ResetPoolStats zeroes the default registry's pool counters.
func ResetPoolStats() { defaultRegistry.ResetPoolStats() }

// AggregatePoolStats aggregates idle counts across the default registry.
func AggregatePoolStats() AggregateStats { return defaultRegistry.PoolStats() }

// DetailedPoolStats snapshots per-pool telemetry of the default registry.
func DetailedPoolStats() map[string]PoolStats { return defaultRegistry.DetailedPoolStats() }
