// Package scan enumerates the externally visible attributes of a value —
// exported methods and struct fields — and renders one display token per
// attribute. Resolution failures are contained per attribute: the token
// still appears, marked as unresolvable, and the scan continues.
package scan

import (
	"reflect"
	"sort"
)

// Object returns one token per visible attribute of v: exported methods
// first, in reflect's method order, then exported struct fields in
// declaration order. Unexported names never appear. The enumeration order
// is reflect's own; tokens are not re-sorted.
func Object(v any) []string {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil
	}
	t := rv.Type()

	var tokens []string
	for i := 0; i < t.NumMethod(); i++ {
		tokens = append(tokens, Member(t.Method(i).Name, true))
	}

	st, sv := t, rv
	if t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Struct {
		st = t.Elem()
		sv = rv.Elem() // invalid for nil pointers; fieldToken contains that
	}
	if st.Kind() == reflect.Struct {
		for i := 0; i < st.NumField(); i++ {
			f := st.Field(i)
			if f.PkgPath != "" {
				continue // unexported
			}
			tokens = append(tokens, fieldToken(sv, i, f.Name))
		}
	}
	return tokens
}

// Namespace returns tokens for a set of named bindings. Names are emitted
// in sorted order so repeated inspections of the same bindings agree; Go
// map iteration order would not. Namespace tokens carry no member
// separator.
func Namespace(vars map[string]any) []string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	tokens := make([]string, 0, len(names))
	for _, name := range names {
		tokens = append(tokens, Local(name, callable(reflect.ValueOf(vars[name]))))
	}
	return tokens
}

// fieldToken resolves one struct field and renders its token. Resolution
// can panic (fields behind a nil pointer); the failure becomes a sentinel
// token so the attribute still shows up.
func fieldToken(sv reflect.Value, i int, name string) (tok string) {
	defer func() {
		if recover() != nil {
			tok = Sentinel(name)
		}
	}()
	return Member(name, callable(sv.Field(i)))
}

// callable reports whether the resolved value can be invoked. Interface
// values are classified by what they currently hold.
func callable(v reflect.Value) bool {
	if !v.IsValid() {
		return false
	}
	if v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	return v.Kind() == reflect.Func
}
