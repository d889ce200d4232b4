package typebuilder

import "context"

// AsyncAccumulator is the context-aware accumulator handed out by async
// factories. It exists only for the validated variant: its Build drives the
// schema's parse under the caller's context, so refinements that perform I/O
// can suspend cooperatively instead of blocking other work.
type AsyncAccumulator struct {
	inner *Accumulator
}

// Config returns the shared Configuration this accumulator builds against.
func (a *AsyncAccumulator) Config() *Configuration { return a.inner.cfg }

// Fields returns the configured field names.
func (a *AsyncAccumulator) Fields() []string { return a.inner.Fields() }

// Set stores a field value and returns the accumulator for chaining.
func (a *AsyncAccumulator) Set(field string, v any) *AsyncAccumulator {
	a.inner.Set(field, v)
	return a
}

// Invoke dispatches a mutator by its derived name; see Accumulator.Invoke.
func (a *AsyncAccumulator) Invoke(name string, v any) (*AsyncAccumulator, error) {
	if _, err := a.inner.Invoke(name, v); err != nil {
		return nil, err
	}
	return a, nil
}

// Mutators enumerates the accumulator's mutator names, sorted.
func (a *AsyncAccumulator) Mutators() []string { return a.inner.Mutators() }

// Value reports the stored value for a field and whether it has been set.
func (a *AsyncAccumulator) Value(field string) (any, bool) { return a.inner.Value(field) }

// Build finalizes through the schema's parse under ctx. Validation failures
// surface as Issues; a started build runs to completion or failure, there is
// no cancellation beyond what the schema itself honors via ctx.
func (a *AsyncAccumulator) Build(ctx context.Context) (map[string]any, error) {
	cfg := a.inner.cfg
	out, err := cfg.schema.Parse(ctx, snapshot(a.inner.partial))
	if err != nil {
		return nil, issuesFromErr("/", err)
	}
	return out, nil
}

// Release resets the accumulator and returns it to its pool.
func (a *AsyncAccumulator) Release() {
	a.inner.reset()
	a.inner.home.put(a.inner)
}
