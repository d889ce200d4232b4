package typebuilder

// Package typebuilder provides:
//
// - Factories that classify a target shape (schema / constructor / field list)
//   once and hand out reusable accumulators for building records field by field
// - Runtime field discovery for constructors via staged reflection strategies
// - A stable error model via Issues (field path, code, message)
// - Per-configuration accumulator pooling with hit/miss/utilization telemetry
//
// Design policy:
// - Keep only public APIs in the root package; put shape manifests under manifest/.
// - Accumulators are single-goroutine objects; registries serialize their own state.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	f, err := typebuilder.NewFactory([]string{"id", "name"})
//	acc := f.Acquire()
//	out, err := acc.Set("id", 1).Set("name", "ada").Build()
//	acc.Release()
