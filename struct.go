package fieldvalidation

import (
	"context"
	"reflect"
)

// Field binds a struct field pointer to its rules. The rules replace any
// earlier list; order is evaluation order.
func Field[T any](fieldPtr *T, rules ...Rule) *FieldRules {
	return &FieldRules{
		fieldPtr: fieldPtr,
		rules:    rules,
	}
}

// Rules returns the rules bound to the field.
func (fr *FieldRules) Rules() RuleSet {
	return fr.rules
}

// expandFields flattens embedded Ruler/ContextRuler field rules into the parent's rule set.
// Non-embedded fields are returned as-is.
func expandFields(ctx context.Context, structPtr any, fields []*FieldRules) []*FieldRules {
	structVal := reflect.Indirect(reflect.ValueOf(structPtr))
	if !structVal.IsValid() || structVal.Kind() != reflect.Struct {
		return fields
	}

	result := make([]*FieldRules, 0, len(fields))
	for _, fr := range fields {
		fv := reflect.ValueOf(fr.fieldPtr)
		if fv.Kind() == reflect.Ptr {
			if sf := findStructField(structVal, fv); sf != nil && sf.Anonymous {
				embeddedPtr := fv.Interface()
				if r, ok := embeddedPtr.(Ruler); ok {
					result = append(result, expandFields(ctx, embeddedPtr, r.Rules())...)
					continue
				}
				if r, ok := embeddedPtr.(ContextRuler); ok {
					result = append(result, expandFields(ctx, embeddedPtr, r.Rules(ctx))...)
					continue
				}
			}
		}
		result = append(result, fr)
	}
	return result
}

// findStructField returns the field of structVal whose address is fieldPtr.
func findStructField(structVal reflect.Value, fieldPtr reflect.Value) *reflect.StructField {
	ptr := fieldPtr.Pointer()
	for i := 0; i < structVal.NumField(); i++ {
		sf := structVal.Type().Field(i)
		fv := structVal.Field(i)
		if ptr == fv.UnsafeAddr() && sf.Type == fieldPtr.Type().Elem() {
			return &sf
		}
		if sf.Anonymous && fv.Kind() == reflect.Struct {
			if f := findStructField(fv, fieldPtr); f != nil {
				return f
			}
		}
	}
	return nil
}
