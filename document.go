package fieldvalidation

import (
	"context"

	"github.com/getkin/kin-openapi/openapi3"
)

type (
	// Rule is the interface that all validation rules must implement.
	// Validate receives a string, a *string (nil meaning absent) or nil.
	Rule interface {
		Validate(value any) error
		Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error
	}

	// RuleSet is an ordered list of rules attached to one field.
	// Evaluation order is slice order and the first failing rule wins.
	RuleSet []Rule

	// FieldRules binds a struct field pointer to its validation rules.
	FieldRules struct {
		fieldPtr any
		tag      string
		rules    []Rule
	}

	// Ruler is implemented by form structs that declare their field rules.
	//
	//	func (f *SignupForm) Rules() []*FieldRules {
	//	    return []*FieldRules{
	//	        Field(&f.Email, Required("Email is required"), Email("Invalid email")),
	//	    }
	//	}
	Ruler interface {
		Rules() []*FieldRules
	}

	// ContextRuler is like Ruler but receives a context.
	ContextRuler interface {
		Rules(ctx context.Context) []*FieldRules
	}

	// ValueRuler is implemented by non-struct types (e.g. type Phone string)
	// that carry their own rules. The rules are applied wherever the type is
	// validated directly or documented as a schema.
	ValueRuler interface {
		ValueRules() []Rule
	}
)
