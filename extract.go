package typebuilder

import (
	"reflect"
	"strings"
)

// ResolveStructKey applies the repository-wide rule to resolve a struct field's
// external key used by field discovery and the typed layer.
// Priority: typebuilder:"name=..." > json tag name > field name; "-" disables
// the field.
func ResolveStructKey(sf reflect.StructField) string {
	if tt := sf.Tag.Get("typebuilder"); tt != "" {
		for _, p := range strings.Split(tt, ",") {
			p = strings.TrimSpace(p)
			if strings.HasPrefix(p, "name=") {
				return strings.TrimPrefix(p, "name=")
			}
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			return jt[:i]
		}
		return jt
	}
	return sf.Name
}

// extractFields recovers the field-name set for a classified input. The result
// is a set; order is stable but carries no meaning. Discovery failures degrade
// to an empty list rather than an error so callers can still supply explicit
// fields.
func extractFields(variant Variant, input any) []string {
	switch variant {
	case VariantValidated:
		if sp, ok := input.(ShapeProvider); ok {
			return dedupeFields(sp.Shape())
		}
		return nil
	case VariantConstructed:
		return constructorFields(reflect.ValueOf(input))
	case VariantListed:
		return dedupeFields(input.([]string))
	}
	return nil
}

// dedupeFields collapses duplicates preserving first-seen order.
func dedupeFields(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// constructorFields recovers field names from a constructor via escalating
// strategies, each attempted only when the prior one panics, errors, or yields
// nothing:
//
//	A: static structural reflection over the declared result type;
//	B: trial invocation with one empty map argument, enumerating the result;
//	C: trial invocation with no arguments, enumerating the result.
//
// When every strategy fails the list is empty, never an error.
func constructorFields(fn reflect.Value) []string {
	if keys := staticResultKeys(fn.Type()); len(keys) > 0 {
		return keys
	}
	if fn.Type().NumIn() == 1 {
		if keys := trialKeys(fn, []reflect.Value{reflect.ValueOf(map[string]any{})}); len(keys) > 0 {
			return keys
		}
	}
	if fn.Type().NumIn() == 0 {
		if keys := trialKeys(fn, nil); len(keys) > 0 {
			return keys
		}
	}
	return nil
}

// staticResultKeys reads the constructor's declared result type without
// invoking it. Only struct (or pointer-to-struct) results carry static field
// metadata; anything else yields nothing and escalates to trial invocation.
func staticResultKeys(t reflect.Type) []string {
	rt := t.Out(0)
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		return nil
	}
	return structKeys(rt)
}

// trialKeys invokes the constructor with the given arguments and enumerates
// the produced value's own string keys. Panics and constructor errors are
// recovered locally; they signal escalation, not failure.
func trialKeys(fn reflect.Value, args []reflect.Value) (keys []string) {
	defer func() {
		if r := recover(); r != nil {
			keys = nil
		}
	}()
	out := fn.Call(args)
	if len(out) == 2 && !out[1].IsNil() {
		return nil
	}
	return instanceKeys(out[0])
}

// instanceKeys enumerates the own string keys of a constructed instance:
// exported field keys for structs, present string keys for maps.
func instanceKeys(v reflect.Value) []string {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Struct:
		return structKeys(v.Type())
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil
		}
		keys := make([]string, 0, v.Len())
		for _, k := range v.MapKeys() {
			keys = append(keys, k.String())
		}
		return keys
	}
	return nil
}

func structKeys(rt reflect.Type) []string {
	keys := make([]string, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := ResolveStructKey(sf)
		if name == "" || name == "-" {
			continue
		}
		keys = append(keys, name)
	}
	return dedupeFields(keys)
}
