package typebuilder

import "reflect"

// Variant enumerates the mutually exclusive shape kinds a configuration can
// have.
type Variant int

const (
	// VariantValidated is a schema input (Parse/SafeParse capabilities).
	VariantValidated Variant = iota
	// VariantConstructed is a constructor function input.
	VariantConstructed
	// VariantListed is an explicit field-name list input.
	VariantListed
)

func (v Variant) String() string {
	switch v {
	case VariantValidated:
		return "validated"
	case VariantConstructed:
		return "constructed"
	case VariantListed:
		return "listed"
	}
	return "unknown"
}

var (
	mapType = reflect.TypeOf(map[string]any(nil))
	errType = reflect.TypeOf((*error)(nil)).Elem()
)

// Classify inspects an arbitrary input and reports its shape variant.
// Rules, first match wins:
//  1. validated: the value satisfies the Schema capability interface.
//  2. constructed: the value is a constructor function (see isConstructor).
//  3. listed: a []string; an empty slice fails with ErrEmptyFieldList.
//
// Anything else fails with ErrUnrecognizedShape.
func Classify(input any) (Variant, error) {
	if _, ok := input.(Schema); ok {
		return VariantValidated, nil
	}
	if isConstructor(input) {
		return VariantConstructed, nil
	}
	if fields, ok := input.([]string); ok {
		if len(fields) == 0 {
			return 0, ErrEmptyFieldList
		}
		return VariantListed, nil
	}
	return 0, ErrUnrecognizedShape
}

// isConstructor reports whether v is invocable as a record constructor: a func
// taking no argument or a single map[string]any, returning one result plus an
// optional trailing error. Plain functions and method values qualify alike.
func isConstructor(v any) bool {
	if v == nil {
		return false
	}
	t := reflect.TypeOf(v)
	if t.Kind() != reflect.Func || t.IsVariadic() {
		return false
	}
	switch t.NumIn() {
	case 0:
	case 1:
		if t.In(0) != mapType {
			return false
		}
	default:
		return false
	}
	switch t.NumOut() {
	case 1:
		return t.Out(0) != errType
	case 2:
		return t.Out(1) == errType
	}
	return false
}
