package typebuilder

import "sync"

// pool recycles idle accumulators for one configuration. The mutex covers the
// free list and counters; accumulators themselves stay single-goroutine
// between get and put.
type pool struct {
	mu      sync.Mutex
	cfg     *Configuration
	free    []*Accumulator
	maxSize int

	hits         uint64
	misses       uint64
	totalCreated uint64
}

func newPool(cfg *Configuration, maxSize int) *pool {
	if maxSize <= 0 {
		maxSize = DefaultMaxPoolSize
	}
	return &pool{cfg: cfg, maxSize: maxSize}
}

// get hands out a recycled accumulator when one is idle, creating a fresh one
// otherwise. Every call counts as exactly one hit or one miss.
func (p *pool) get() *Accumulator {
	p.mu.Lock()
	defer p.mu.Unlock()
	if n := len(p.free); n > 0 {
		a := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		p.hits++
		return a
	}
	p.misses++
	p.totalCreated++
	return newAccumulator(p.cfg, p)
}

// put returns an accumulator to the free list, dropping it when the list is
// at capacity. The size() <= maxSize invariant holds unconditionally.
func (p *pool) put(a *Accumulator) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.free) >= p.maxSize {
		return
	}
	p.free = append(p.free, a)
}

func (p *pool) size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.free)
}

// evict discards every idle accumulator without touching the counters.
func (p *pool) evict() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.free = nil
}

// resetStats zeroes the counters without evicting idle accumulators.
func (p *pool) resetStats() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.hits, p.misses, p.totalCreated = 0, 0, 0
}

func (p *pool) stats() PoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return PoolStats{
		Hits:         p.hits,
		Misses:       p.misses,
		TotalCreated: p.totalCreated,
		Idle:         len(p.free),
		MaxSize:      p.maxSize,
	}
}

// PoolStats is a point-in-time snapshot of one pool's telemetry.
type PoolStats struct {
	Hits         uint64
	Misses       uint64
	TotalCreated uint64
	Idle         int
	MaxSize      int
}

// HitRate reports hits over total gets since the last stats reset, in [0, 1].
// Zero gets reports 0.
func (s PoolStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Utilization reports how full the idle list is relative to its capacity,
// in [0, 1].
func (s PoolStats) Utilization() float64 {
	if s.MaxSize == 0 {
		return 0
	}
	return float64(s.Idle) / float64(s.MaxSize)
}
