package typebuilder

import (
	"context"
	"fmt"
	"reflect"
)

// Accumulator collects field values for one in-flight build. It is exclusively
// owned by its caller between Acquire and Release and must not be shared
// across goroutines. A key absent from the partial record is unset; a key
// present with a nil value is an explicit null and survives finalization.
type Accumulator struct {
	cfg     *Configuration
	partial map[string]any
	home    *pool
}

func newAccumulator(cfg *Configuration, home *pool) *Accumulator {
	return &Accumulator{
		cfg:     cfg,
		partial: make(map[string]any, len(cfg.fields)),
		home:    home,
	}
}

// Config returns the shared Configuration this accumulator builds against.
func (a *Accumulator) Config() *Configuration { return a.cfg }

// Fields returns the configured field names.
func (a *Accumulator) Fields() []string { return a.cfg.Fields() }

// Set stores a field value and returns the accumulator for chaining. Last
// write wins per field. Setting a field outside the configuration is caller
// misuse and panics; use Invoke for fallible dynamic dispatch.
func (a *Accumulator) Set(field string, v any) *Accumulator {
	if !a.cfg.Has(field) {
		panic(fmt.Sprintf("typebuilder: field %q is not configured (have %v)", field, a.cfg.fields))
	}
	a.partial[field] = v
	return a
}

// Invoke dispatches a mutator by its derived name ("With" + capitalized
// field), storing the value and returning the accumulator for chaining. Names
// that map to no configured field fail with ErrUnknownMutator; Build and
// BuildAsync are reserved and never dispatch as mutators.
func (a *Accumulator) Invoke(name string, v any) (*Accumulator, error) {
	if name == "Build" || name == "BuildAsync" {
		return nil, fmt.Errorf("%w: %q is reserved", ErrUnknownMutator, name)
	}
	field, ok := a.cfg.mutators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMutator, name)
	}
	a.partial[field] = v
	return a, nil
}

// Mutators enumerates the accumulator's mutator names, sorted.
func (a *Accumulator) Mutators() []string { return a.cfg.Mutators() }

// Value reports the currently stored value for a field and whether it has
// been set at all, distinguishing explicit nil from unset.
func (a *Accumulator) Value(field string) (any, bool) {
	v, ok := a.partial[field]
	return v, ok
}

// Build finalizes the accumulator into the target representation:
//
//   - listed: a fresh map holding exactly the set fields;
//   - constructed: the constructor's verbatim result over the partial record,
//     errors and panics propagating unchanged;
//   - validated: the schema's parse result, failures surfacing as Issues.
//
// The accumulator remains usable (and releasable) afterwards.
func (a *Accumulator) Build() (any, error) {
	return finalize(context.Background(), a.cfg, a.partial)
}

// Release resets the accumulator and returns it to its pool. Using the
// accumulator after Release is undefined.
func (a *Accumulator) Release() {
	a.reset()
	a.home.put(a)
}

func (a *Accumulator) reset() {
	clear(a.partial)
}

// snapshot copies the partial record so finalizer targets can retain or
// mutate it without aliasing pooled state.
func snapshot(partial map[string]any) map[string]any {
	out := make(map[string]any, len(partial))
	for k, v := range partial {
		out[k] = v
	}
	return out
}

func finalize(ctx context.Context, cfg *Configuration, partial map[string]any) (any, error) {
	switch cfg.variant {
	case VariantListed:
		return snapshot(partial), nil
	case VariantConstructed:
		return construct(cfg.ctor, partial)
	case VariantValidated:
		out, err := cfg.schema.Parse(ctx, snapshot(partial))
		if err != nil {
			return nil, issuesFromErr("/", err)
		}
		return out, nil
	}
	return nil, ErrUnrecognizedShape
}

// construct invokes the target constructor with the partial record as its
// sole argument (or none for niladic constructors). No validation happens
// here; a trailing error result and panics reach the caller verbatim.
func construct(ctor reflect.Value, partial map[string]any) (any, error) {
	var args []reflect.Value
	if ctor.Type().NumIn() == 1 {
		args = []reflect.Value{reflect.ValueOf(snapshot(partial))}
	}
	out := ctor.Call(args)
	if len(out) == 2 && !out[1].IsNil() {
		return nil, out[1].Interface().(error)
	}
	return out[0].Interface(), nil
}
