package fieldvalidation

import (
	"context"
	"reflect"
	"slices"
	"strings"
)

// MissingRules returns the keys of exported fields of a form struct that no
// rule list covers. Fields promoted from embedded structs are checked too.
// Fields tagged json:"-" or validate:"-" and the names in exclude (key or Go
// name) are skipped.
//
// Use in tests to catch fields added to a form without rules:
//
//	assert.Empty(t, fieldvalidation.MissingRules(&SignupForm{}))
func MissingRules(structPtr any, exclude ...string) []string {
	fields, ok := formRules(context.Background(), structPtr)
	if !ok {
		return nil
	}

	structVal := reflect.Indirect(reflect.ValueOf(structPtr))
	covered := make(map[string]bool, len(fields))
	for _, fr := range fields {
		ptr := reflect.ValueOf(fr.fieldPtr)
		if ptr.Kind() != reflect.Ptr {
			continue
		}
		if sf := findStructField(structVal, ptr); sf != nil {
			covered[fieldKey(*sf)] = true
		}
	}

	var missing []string
	for _, sf := range reflect.VisibleFields(structVal.Type()) {
		if sf.Anonymous || !sf.IsExported() || untagged(sf) {
			continue
		}
		key := fieldKey(sf)
		if covered[key] || slices.Contains(exclude, key) || slices.Contains(exclude, sf.Name) {
			continue
		}
		missing = append(missing, key)
	}
	return missing
}

// formRules returns the flattened rules of a Ruler or ContextRuler.
func formRules(ctx context.Context, structPtr any) ([]*FieldRules, bool) {
	var fields []*FieldRules
	switch r := structPtr.(type) {
	case Ruler:
		fields = r.Rules()
	case ContextRuler:
		fields = r.Rules(ctx)
	default:
		return nil, false
	}
	return expandFields(ctx, structPtr, fields), true
}

func untagged(sf reflect.StructField) bool {
	name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
	return name == "-" || sf.Tag.Get("validate") == "-"
}

// fieldKey is the key a field is reported under: its json name, or the Go
// name when untagged.
func fieldKey(sf reflect.StructField) string {
	if name, _, _ := strings.Cut(sf.Tag.Get("json"), ","); name != "" && name != "-" {
		return name
	}
	return sf.Name
}
