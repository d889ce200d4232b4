package typebuilder_test

import (
	"testing"

	typebuilder "github.com/noony-serverless/typebuilder"
)

func TestPool_MissesThenHits(t *testing.T) {
	reg := typebuilder.NewRegistry()
	f, err := reg.NewFactory([]string{"id"}, typebuilder.FactoryOpt{MaxPoolSize: 8})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const n = 5
	accs := make([]*typebuilder.Accumulator, 0, n)
	for i := 0; i < n; i++ {
		accs = append(accs, f.Acquire())
	}
	st := f.Stats()
	if st.Misses != n || st.Hits != 0 {
		t.Fatalf("stats = %+v, want %d misses and 0 hits", st, n)
	}
	if st.TotalCreated != n {
		t.Fatalf("totalCreated = %d, want %d", st.TotalCreated, n)
	}

	for _, a := range accs {
		a.Release()
	}
	for i := 0; i < n; i++ {
		f.Acquire()
	}
	st = f.Stats()
	if st.Hits != n {
		t.Fatalf("hits = %d, want %d after releasing all", st.Hits, n)
	}
	if st.Hits+st.Misses != 2*n {
		t.Fatalf("hits+misses = %d, want %d gets", st.Hits+st.Misses, 2*n)
	}
}

func TestPool_CapacityBound(t *testing.T) {
	reg := typebuilder.NewRegistry()
	f, err := reg.NewFactory([]string{"id"}, typebuilder.FactoryOpt{MaxPoolSize: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	accs := make([]*typebuilder.Accumulator, 0, 7)
	for i := 0; i < 7; i++ {
		accs = append(accs, f.Acquire())
	}
	for _, a := range accs {
		a.Release()
	}
	if st := f.Stats(); st.Idle != 3 {
		t.Fatalf("idle = %d, want maxSize 3 after releasing 7", st.Idle)
	}
}

func TestPool_RecycledAccumulatorIsReset(t *testing.T) {
	reg := typebuilder.NewRegistry()
	f, err := reg.NewFactory([]string{"id", "name"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	acc := f.Acquire()
	acc.Set("id", 1).Set("name", "ada")
	acc.Release()

	recycled := f.Acquire()
	defer recycled.Release()
	if _, ok := recycled.Value("id"); ok {
		t.Fatalf("recycled accumulator still holds state")
	}
}

func TestRegistry_ClearPoolsKeepsCounters(t *testing.T) {
	reg := typebuilder.NewRegistry()
	f, _ := reg.NewFactory([]string{"id"})
	f.Acquire().Release()

	reg.ClearPools()
	reg.ClearPools() // idempotent
	st := f.Stats()
	if st.Idle != 0 {
		t.Fatalf("idle = %d, want 0 after ClearPools", st.Idle)
	}
	if st.Misses != 1 {
		t.Fatalf("misses = %d, ClearPools must not touch counters", st.Misses)
	}
}

func TestRegistry_ResetPoolStatsKeepsObjects(t *testing.T) {
	reg := typebuilder.NewRegistry()
	f, _ := reg.NewFactory([]string{"id"})
	f.Acquire().Release()

	reg.ResetPoolStats()
	reg.ResetPoolStats() // idempotent
	st := f.Stats()
	if st.Hits != 0 || st.Misses != 0 || st.TotalCreated != 0 {
		t.Fatalf("stats = %+v, want zeroed counters", st)
	}
	if st.Idle != 1 {
		t.Fatalf("idle = %d, ResetPoolStats must not evict", st.Idle)
	}
}

func TestRegistry_AggregateStats(t *testing.T) {
	reg := typebuilder.NewRegistry()
	sf, _ := reg.NewFactory([]string{"id"})
	af, err := reg.NewAsyncFactory(emailSchema{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sf.Acquire().Release()
	af.Acquire().Release()

	agg := reg.PoolStats()
	if agg.Sync != 1 || agg.Async != 1 {
		t.Fatalf("aggregate = %+v, want one idle sync and one idle async", agg)
	}
}

func TestRegistry_DetailedStats(t *testing.T) {
	reg := typebuilder.NewRegistry()
	f, _ := reg.NewFactory([]string{"id"})
	f.Acquire().Release()
	f.Acquire().Release()

	detailed := reg.DetailedPoolStats()
	if len(detailed) != 1 {
		t.Fatalf("detailed stats = %v, want one pool", detailed)
	}
	for _, st := range detailed {
		if st.HitRate() != 0.5 {
			t.Fatalf("hit rate = %v, want 0.5 (one miss, one hit)", st.HitRate())
		}
		if st.Utilization() <= 0 {
			t.Fatalf("utilization = %v, want > 0 with one idle", st.Utilization())
		}
	}
}

func TestRegistry_PoolKeyIgnoresFieldOrder(t *testing.T) {
	reg := typebuilder.NewRegistry()
	f1, _ := reg.NewFactory([]string{"a", "b"})
	f2, _ := reg.NewFactory([]string{"b", "a"})

	f1.Acquire().Release()
	acc := f2.Acquire()
	defer acc.Release()

	if st := f2.Stats(); st.Hits != 1 {
		t.Fatalf("hits = %d, factories over the same field set must share a pool", st.Hits)
	}
}

func TestRegistry_PoolKeyDistinguishesEmbeddedSeparators(t *testing.T) {
	// A field literally named "a,b" must not share a pool with the field set
	// {a, b}; a recycled accumulator would carry the wrong configuration.
	reg := typebuilder.NewRegistry()
	f1, err := reg.NewFactory([]string{"a,b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f2, err := reg.NewFactory([]string{"a", "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f1.Acquire().Release()
	acc := f2.Acquire()
	defer acc.Release()

	if st := f2.Stats(); st.Hits != 0 {
		t.Fatalf("hits = %d, distinct field sets must not share a pool", st.Hits)
	}
	// The acquired accumulator must accept f2's own fields.
	acc.Set("a", 1).Set("b", 2)
}

func TestRegistry_IsolatedInstances(t *testing.T) {
	r1 := typebuilder.NewRegistry()
	r2 := typebuilder.NewRegistry()
	f1, _ := r1.NewFactory([]string{"id"})
	f2, _ := r2.NewFactory([]string{"id"})

	f1.Acquire().Release()
	if agg := r2.PoolStats(); agg.Sync != 0 {
		t.Fatalf("r2 aggregate = %+v, registries must not share pools", agg)
	}
	acc := f2.Acquire()
	defer acc.Release()
	if st := f2.Stats(); st.Hits != 0 {
		t.Fatalf("hits = %d, registries must not share pools", st.Hits)
	}
}

func TestDefaultRegistry_TopLevelOperations(t *testing.T) {
	f := typebuilder.MustFactory([]string{"tb_default_registry_probe"})
	f.Acquire().Release()

	if agg := typebuilder.AggregatePoolStats(); agg.Sync < 1 {
		t.Fatalf("aggregate = %+v, want at least one idle sync accumulator", agg)
	}
	typebuilder.ClearPools()
	typebuilder.ResetPoolStats()
	if st := f.Stats(); st.Idle != 0 || st.Misses != 0 {
		t.Fatalf("stats = %+v, want cleared and zeroed", st)
	}
}
