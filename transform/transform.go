package transform

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Func transforms one string value.
type Func func(string) string

var named = map[string]Func{
	"trim_space": strings.TrimSpace,
	"lower":      strings.ToLower,
	"upper":      strings.ToUpper,
}

// Lookup returns the transform registered under name.
func Lookup(name string) (Func, bool) {
	f, ok := named[name]
	return f, ok
}

// Names returns the names accepted by Lookup and Parse, sorted.
func Names() []string {
	out := make([]string, 0, len(named))
	for k := range named {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Parse resolves names into a single transform applied left to right.
func Parse(names ...string) (Func, error) {
	fns := make([]Func, 0, len(names))
	for _, n := range names {
		f, ok := Lookup(n)
		if !ok {
			return nil, fmt.Errorf("unknown transform %q (valid: %s)", n, strings.Join(Names(), ", "))
		}
		fns = append(fns, f)
	}
	return Chain(fns...), nil
}

// Chain returns a transform applying fns left to right.
func Chain(fns ...Func) Func {
	return func(s string) string {
		for _, f := range fns {
			s = f(s)
		}
		return s
	}
}

// Apply runs f on the value behind p and returns a new pointer. A nil
// pointer is returned as is so an absent value stays absent.
func (f Func) Apply(p *string) *string {
	if p == nil || f == nil {
		return p
	}
	s := f(*p)
	return &s
}

// StructTrimSpace runs [strings.TrimSpace] on all string fields in the struct
// recursively, including pointer fields and nested structs.
func StructTrimSpace(v any) {
	StructStringFunc(v, strings.TrimSpace)
}

// StructToLower runs [strings.ToLower] on all string fields in the struct recursively.
func StructToLower(v any) {
	StructStringFunc(v, strings.ToLower)
}

// StructStringFunc applies f to every settable string and *string field in
// the struct pointed to by v, descending into nested structs.
func StructStringFunc(v any, f func(string) string) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return
	}
	walk(rv.Elem(), f)
}

func walk(v reflect.Value, f func(string) string) {
	if v.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() {
			continue
		}
		switch field.Kind() {
		case reflect.String:
			field.SetString(f(field.String()))
		case reflect.Struct:
			walk(field, f)
		case reflect.Pointer:
			if field.IsNil() {
				continue
			}
			switch field.Elem().Kind() {
			case reflect.String:
				field.Elem().SetString(f(field.Elem().String()))
			case reflect.Struct:
				walk(field.Elem(), f)
			}
		}
	}
}
