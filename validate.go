package fieldvalidation

import (
	"context"
	"encoding/json"
	"io"
	"reflect"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Check evaluates rules against text in order and returns the first failure,
// or nil when every rule passes. A nil text means the value is absent.
//
// The returned error is a [validation.Error] whose Error() is the failing
// rule's message and whose Code() identifies the rule kind.
func Check(text *string, rules ...Rule) error {
	for _, rule := range rules {
		if err := rule.Validate(text); err != nil {
			return err
		}
	}
	return nil
}

// CheckString is like Check for a present value.
func CheckString(text string, rules ...Rule) error {
	return Check(&text, rules...)
}

// Check evaluates the rule set against text. See [Check].
func (rs RuleSet) Check(text *string) error {
	return Check(text, rs...)
}

// Validate is the entry point for struct forms.
// If value implements Ruler or ContextRuler, its fields are validated via
// Rules() and every failing field is reported in a [ValidationErrors] map.
// If value implements ValueRuler, its rules are applied to the value itself.
func Validate(value any) error {
	return validateCore(context.Background(), value)
}

// ValidateCtx is like Validate but passes a context to ContextRuler.Rules().
func ValidateCtx(ctx context.Context, value any) error {
	return validateCore(ctx, value)
}

// ValidateStruct validates a struct with explicit field rules.
// Prefer Validate for types implementing Ruler.
func ValidateStruct(structPtr any, fields ...*FieldRules) error {
	return validation.ValidateStruct(structPtr, convertFieldRules(context.Background(), structPtr, fields...)...)
}

// UnmarshalAndValidate decodes JSON from b into dst, normalizes it and then
// validates it.
func UnmarshalAndValidate(b []byte, dst any) error {
	return UnmarshalAndValidateCtx(context.Background(), b, dst)
}

// UnmarshalAndValidateCtx is like UnmarshalAndValidate but passes a context to
// ContextNormalizer.Normalize and ContextRuler.Rules.
func UnmarshalAndValidateCtx(ctx context.Context, b []byte, dst any) error {
	if err := json.Unmarshal(b, dst); err != nil {
		return err
	}
	normalize(ctx, dst)
	return ValidateCtx(ctx, dst)
}

// DecodeAndValidate reads JSON from r into dst using a streaming decoder,
// then normalizes and validates. Use it for HTTP request bodies.
func DecodeAndValidate(r io.Reader, dst any) error {
	return DecodeAndValidateCtx(context.Background(), r, dst)
}

// DecodeAndValidateCtx is like DecodeAndValidate but passes a context to
// ContextNormalizer.Normalize and ContextRuler.Rules.
func DecodeAndValidateCtx(ctx context.Context, r io.Reader, dst any) error {
	if err := json.NewDecoder(r).Decode(dst); err != nil {
		return err
	}
	normalize(ctx, dst)
	return ValidateCtx(ctx, dst)
}

func validateCore(ctx context.Context, value any) error {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || (rv.Kind() == reflect.Ptr && rv.IsNil()) {
		return nil
	}

	if r, ok := value.(Ruler); ok {
		return validation.ValidateStruct(value, convertFieldRules(ctx, value, r.Rules()...)...)
	}
	if r, ok := value.(ContextRuler); ok {
		return validation.ValidateStruct(value, convertFieldRules(ctx, value, r.Rules(ctx)...)...)
	}
	// A nested form reached through ozzo arrives as a struct value; its
	// rules live on the pointer type.
	if rv.Kind() == reflect.Struct {
		ptr := reflect.New(rv.Type())
		ptr.Elem().Set(rv)
		if _, ok := ptr.Interface().(Ruler); ok {
			return validateCore(ctx, ptr.Interface())
		}
		if _, ok := ptr.Interface().(ContextRuler); ok {
			return validateCore(ctx, ptr.Interface())
		}
	}

	if vr, ok := value.(ValueRuler); ok {
		return validation.Validate(value, convertRules(vr.ValueRules()...)...)
	}
	return nil
}

// rulerBridge is appended to every field so that ozzo descends into nested
// forms and ValueRuler fields.
type rulerBridge struct {
	ctx context.Context
}

func (b *rulerBridge) Validate(value any) error {
	if value == nil {
		return nil
	}
	return validateCore(b.ctx, value)
}

// convertFieldRules translates FieldRules into ozzo's FieldRules. Embedded
// Ruler fields are flattened so error keys stay at the top level.
func convertFieldRules(ctx context.Context, structPtr any, fields ...*FieldRules) []*validation.FieldRules {
	flat := expandFields(ctx, structPtr, fields)

	out := make([]*validation.FieldRules, len(flat))
	for i, fr := range flat {
		rules := make([]validation.Rule, len(fr.rules), len(fr.rules)+1)
		for j, r := range fr.rules {
			rules[j] = r
		}
		rules = append(rules, &rulerBridge{ctx: ctx})
		out[i] = validation.Field(fr.fieldPtr, rules...)
	}
	return out
}

func convertRules(rules ...Rule) []validation.Rule {
	out := make([]validation.Rule, len(rules))
	for i := range rules {
		out[i] = rules[i]
	}
	return out
}
