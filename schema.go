package fieldvalidation

import (
	"context"
	"fmt"
	"reflect"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
)

// DescribeRules documents a single text field as an OpenAPI string property.
// Rules that affect the enclosing object (Required) update parent, which may
// be nil when the caller has no object schema.
func DescribeRules(name string, parent *openapi3.Schema, rules ...Rule) (*openapi3.SchemaRef, error) {
	if parent == nil {
		parent = openapi3.NewObjectSchema()
	}
	ref := openapi3.NewSchemaRef("", openapi3.NewStringSchema())
	for _, rule := range rules {
		if err := rule.Describe(name, parent, ref); err != nil {
			return nil, fmt.Errorf("describe %s: %w", name, err)
		}
	}
	return ref, nil
}

// NewSchemaRefForValue generates an OpenAPI schema for the given form value,
// applying rules from types that implement [Ruler], [ContextRuler] or
// [ValueRuler].
func NewSchemaRefForValue(value any) (*openapi3.SchemaRef, error) {
	g := openapi3gen.NewGenerator(openapi3gen.SchemaCustomizer(schemaDoc))
	return g.NewSchemaRefForValue(value, nil)
}

// schemaDoc is an openapi3gen customizer that calls Describe for every rule
// bound to a property of t.
func schemaDoc(name string, t reflect.Type, _ reflect.StructTag, schema *openapi3.Schema) error {
	inst, fields := rulesForType(t)
	if inst == nil {
		return describeValueRuler(t, name, schema)
	}
	fields = expandFields(context.Background(), inst, fields)

	structVal := reflect.Indirect(reflect.ValueOf(inst))
	for i, fr := range fields {
		fv := reflect.ValueOf(fr.fieldPtr)
		if fv.Kind() != reflect.Ptr {
			return fmt.Errorf("rule target for field index %d must be a pointer, got %s", i, fv.Kind())
		}
		sf := findStructField(structVal, fv)
		if sf == nil {
			return fmt.Errorf("rule target for field index %d not found in struct %s", i, structVal.Type())
		}
		fr.tag = fieldKey(*sf)
	}

	for k, propRef := range schema.Properties {
		for _, fr := range fields {
			if fr.tag != k {
				continue
			}
			for _, rule := range fr.rules {
				if err := rule.Describe(k, schema, propRef); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// rulesForType returns a fresh *t and its rules if *t is a form.
func rulesForType(t reflect.Type) (any, []*FieldRules) {
	inst := reflect.New(t).Interface()
	if r, ok := inst.(Ruler); ok {
		return inst, r.Rules()
	}
	if r, ok := inst.(ContextRuler); ok {
		return inst, r.Rules(context.Background())
	}
	return nil, nil
}

func describeValueRuler(t reflect.Type, name string, schema *openapi3.Schema) error {
	vr, ok := reflect.New(t).Interface().(ValueRuler)
	if !ok {
		return nil
	}
	ref := &openapi3.SchemaRef{Value: schema}
	for _, rule := range vr.ValueRules() {
		if err := rule.Describe(name, schema, ref); err != nil {
			return err
		}
	}
	return nil
}
