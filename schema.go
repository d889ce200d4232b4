package typebuilder

import "context"

// Schema is the capability contract a validating input must satisfy to be
// classified as a schema shape. It is a structural probe: any value with both
// parse capabilities qualifies, regardless of which validation library
// produced it.
//
// Parse transforms the partial record into the final representation, applying
// whatever coercion, defaulting, and unknown-key handling the schema defines.
// Errors should be Issues when the schema can produce them; other errors are
// wrapped under CodeParseError.
//
// SafeParse is the fallible-safe variant: it never returns an error, only a
// success flag. The library finalizes through Parse; SafeParse participates
// in the classification probe (a Parse-only value is not a schema) and is
// exposed for callers that want failure as a flag rather than an error.
type Schema interface {
	Parse(ctx context.Context, v map[string]any) (map[string]any, error)
	SafeParse(ctx context.Context, v map[string]any) (map[string]any, bool)
}

// ShapeProvider is an optional capability: schemas that can enumerate their
// declared top-level keys implement it. Absence is not an error; field
// discovery simply yields an empty list and callers supply explicit fields.
type ShapeProvider interface {
	Shape() []string
}
