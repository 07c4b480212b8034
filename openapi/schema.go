package openapi

import (
	fv "github.com/Gobd/fieldvalidation"
	"github.com/getkin/kin-openapi/openapi3"
)

// Property is one text field of a form described by its rule set.
type Property struct {
	Name  string
	Rules fv.RuleSet
}

// FormSchema builds an object schema with one nullable string property per
// field. Required rules populate the object's required list.
func FormSchema(props ...Property) (*openapi3.SchemaRef, error) {
	obj := openapi3.NewObjectSchema()
	for _, p := range props {
		ref, err := fv.DescribeRules(p.Name, obj, p.Rules...)
		if err != nil {
			return nil, err
		}
		ref.Value.Nullable = true
		obj.Properties[p.Name] = ref
	}
	return openapi3.NewSchemaRef("", obj), nil
}

// NewSchemaRefForValue generates an OpenAPI schema for the given value,
// applying rules from types that implement [fieldvalidation.Ruler],
// [fieldvalidation.ContextRuler] or [fieldvalidation.ValueRuler].
func NewSchemaRefForValue(value any) (*openapi3.SchemaRef, error) {
	return fv.NewSchemaRefForValue(value)
}
