package fieldvalidation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Kind names a rule in the catalog. The built-in kinds are registered at
// init; callers may add their own with [Register].
type Kind string

const (
	KindRequired       Kind = "required"
	KindLettersOnly    Kind = "letters_only"
	KindMaxLength      Kind = "max_length"
	KindMinLength      Kind = "min_length"
	KindEmail          Kind = "email"
	KindMobile         Kind = "mobile"
	KindPassword       Kind = "password"
	KindCharacterRange Kind = "character_range"
	KindAlphaNumeric   Kind = "alpha_numeric"
	KindNumericRange   Kind = "numeric_range"
	KindCustom         Kind = "custom"
)

// Code returns the error code reported by failures of this kind.
func (k Kind) Code() string {
	return "validation_" + string(k)
}

// Bounds holds the numeric parameters of a rule. Kinds that take a single
// limit use only one side (MaxLength uses Max, MinLength uses Min).
type Bounds struct {
	Min int
	Max int
}

// TextRule is one entry of the rule catalog: a kind, its bounds and the
// message reported when the check fails. A TextRule cannot be modified after
// construction.
type TextRule struct {
	kind    Kind
	bounds  Bounds
	message string
	match   func(string) bool
}

// NewRule builds a rule of any registered kind. It is mainly used when rules
// are read from configuration; code should prefer the typed constructors.
func NewRule(kind Kind, message string, b Bounds) TextRule {
	return TextRule{kind: kind, bounds: b, message: message}
}

// Kind returns the rule kind.
func (r TextRule) Kind() Kind { return r.kind }

// Message returns the failure message.
func (r TextRule) Message() string { return r.message }

// Bounds returns the numeric parameters.
func (r TextRule) Bounds() Bounds { return r.bounds }

// Validate checks value, which must be a string, a *string or nil.
func (r TextRule) Validate(value any) error {
	text, err := textOf(value)
	if err != nil {
		return err
	}
	e, ok := lookup(r.kind)
	if !ok {
		return validation.NewInternalError(fmt.Errorf("unknown rule kind %q", r.kind))
	}
	if e.check(text, r) {
		return nil
	}
	return validation.NewError(r.kind.Code(), r.message)
}

// Describe implements [Rule]. The kind's describer runs first, then the
// message is appended to the property description.
func (r TextRule) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if e, ok := lookup(r.kind); ok && e.describe != nil {
		if err := e.describe(r, name, schema, ref); err != nil {
			return err
		}
	}
	appendDescription(ref, r.message)
	return nil
}

func (r TextRule) String() string {
	switch r.kind {
	case KindMaxLength:
		return fmt.Sprintf("%s(%d)", r.kind, r.bounds.Max)
	case KindMinLength:
		return fmt.Sprintf("%s(%d)", r.kind, r.bounds.Min)
	case KindCharacterRange, KindNumericRange:
		return fmt.Sprintf("%s(%d,%d)", r.kind, r.bounds.Min, r.bounds.Max)
	}
	return string(r.kind)
}

// textOf converts a validated value to an optional string. A nil pointer is
// absent, and named string kinds and pointers to them are read as text.
func textOf(value any) (*string, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		return &v, nil
	case *string:
		return v, nil
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, nil
		}
		if rv.Elem().Kind() == reflect.String {
			rv = rv.Elem()
		}
	}
	if rv.Kind() == reflect.String {
		s := rv.String()
		return &s, nil
	}
	if st, ok := value.(fmt.Stringer); ok {
		s := st.String()
		return &s, nil
	}
	return nil, fmt.Errorf("expected string, got %T", value)
}

func appendDescription(ref *openapi3.SchemaRef, desc string) {
	if desc == "" {
		return
	}
	if ref.Value.Description != "" && !strings.HasSuffix(ref.Value.Description, " ") {
		ref.Value.Description += " "
	}
	ref.Value.Description += desc
}
