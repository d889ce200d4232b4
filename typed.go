package typebuilder

import "reflect"

// Typed adapts a constructed-variant factory to its concrete result type T,
// layering compile-time typing over the dynamic accumulator surface. The
// constructor's declared result must be assignable to T.
func Typed[T any](f *Factory) (*TypedFactory[T], error) {
	if f.cfg.variant != VariantConstructed {
		return nil, Issues{Issue{Path: "/", Code: CodeInvalidType, Message: "Typed[T] requires a constructor-backed factory"}}
	}
	want := reflect.TypeOf((*T)(nil)).Elem()
	got := f.cfg.ctor.Type().Out(0)
	if !got.AssignableTo(want) {
		return nil, Issues{Issue{
			Path:    "/",
			Code:    CodeInvalidType,
			Message: "constructor result is not assignable to the requested type",
			Params:  map[string]any{"got": got.String(), "want": want.String()},
		}}
	}
	return &TypedFactory[T]{inner: f}, nil
}

// MustTyped is like Typed but panics on error.
func MustTyped[T any](f *Factory) *TypedFactory[T] {
	tf, err := Typed[T](f)
	if err != nil {
		panic(err)
	}
	return tf
}

// TypedFactory hands out typed accumulators; see Typed.
type TypedFactory[T any] struct {
	inner *Factory
}

// Config returns the underlying factory's configuration.
func (f *TypedFactory[T]) Config() *Configuration { return f.inner.cfg }

// Acquire draws an accumulator from the underlying factory's pool.
func (f *TypedFactory[T]) Acquire() *TypedAccumulator[T] {
	return &TypedAccumulator[T]{inner: f.inner.Acquire()}
}

// TypedAccumulator wraps an Accumulator with a typed Build.
type TypedAccumulator[T any] struct {
	inner *Accumulator
}

// Set stores a field value and returns the accumulator for chaining.
func (a *TypedAccumulator[T]) Set(field string, v any) *TypedAccumulator[T] {
	a.inner.Set(field, v)
	return a
}

// Invoke dispatches a mutator by its derived name; see Accumulator.Invoke.
func (a *TypedAccumulator[T]) Invoke(name string, v any) (*TypedAccumulator[T], error) {
	if _, err := a.inner.Invoke(name, v); err != nil {
		return nil, err
	}
	return a, nil
}

// MergeJSON seeds the accumulator from a JSON object; see Accumulator.MergeJSON.
func (a *TypedAccumulator[T]) MergeJSON(data []byte) error { return a.inner.MergeJSON(data) }

// Value reports the stored value for a field and whether it has been set.
func (a *TypedAccumulator[T]) Value(field string) (any, bool) { return a.inner.Value(field) }

// Build finalizes through the constructor and returns its result as T.
func (a *TypedAccumulator[T]) Build() (T, error) {
	var zero T
	out, err := a.inner.Build()
	if err != nil {
		return zero, err
	}
	tv, ok := out.(T)
	if !ok {
		return zero, Issues{Issue{Path: "/", Code: CodeInvalidType, Message: "constructor produced a value of an unexpected type"}}
	}
	return tv, nil
}

// Release resets the accumulator and returns it to its pool.
func (a *TypedAccumulator[T]) Release() { a.inner.Release() }
