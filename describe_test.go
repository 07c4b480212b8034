package fieldvalidation

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// helper to create a fresh schema + string property for each test
func newTestSchemaRef() (*openapi3.Schema, *openapi3.SchemaRef) {
	return openapi3.NewObjectSchema(), openapi3.NewSchemaRef("", openapi3.NewStringSchema())
}

func TestDescribe_Required(t *testing.T) {
	schema, ref := newTestSchemaRef()

	require.NoError(t, Required("Email is required").Describe("email", schema, ref))
	require.NoError(t, Required("Name is required").Describe("name", schema, ref))

	assert.Equal(t, []string{"email", "name"}, schema.Required)
}

func TestDescribe_Lengths(t *testing.T) {
	schema, ref := newTestSchemaRef()
	require.NoError(t, MaxLength(20, "").Describe("name", schema, ref))
	require.NotNil(t, ref.Value.MaxLength)
	assert.Equal(t, uint64(20), *ref.Value.MaxLength)

	schema, ref = newTestSchemaRef()
	require.NoError(t, MinLength(3, "").Describe("name", schema, ref))
	assert.Equal(t, uint64(3), ref.Value.MinLength)

	schema, ref = newTestSchemaRef()
	require.NoError(t, CharacterRange(2, 8, "").Describe("name", schema, ref))
	assert.Equal(t, uint64(2), ref.Value.MinLength)
	require.NotNil(t, ref.Value.MaxLength)
	assert.Equal(t, uint64(8), *ref.Value.MaxLength)

	schema, ref = newTestSchemaRef()
	require.NoError(t, MinLength(-1, "").Describe("name", schema, ref))
	assert.Zero(t, ref.Value.MinLength)
}

func TestDescribe_Formats(t *testing.T) {
	tests := []struct {
		rule    TextRule
		pattern string
		format  string
	}{
		{rule: LettersOnly("x"), pattern: lettersOnlyPattern},
		{rule: AlphaNumeric("x"), pattern: alphaNumericPattern},
		{rule: Mobile("x"), pattern: mobilePattern},
		{rule: Password("x"), pattern: passwordPattern},
		{rule: NumericRange(1, 9, "x"), pattern: integerPattern},
		{rule: Email("x"), format: "email"},
	}
	for _, tt := range tests {
		t.Run(string(tt.rule.Kind()), func(t *testing.T) {
			schema, ref := newTestSchemaRef()
			require.NoError(t, tt.rule.Describe("f", schema, ref))
			assert.Equal(t, tt.pattern, ref.Value.Pattern)
			assert.Equal(t, tt.format, ref.Value.Format)
			assert.Empty(t, schema.Required)
		})
	}
}

func TestDescribe_Messages(t *testing.T) {
	ref, err := DescribeRules("age", nil,
		NumericRange(18, 120, "Age must be between 18 and 120"),
		Custom("Must be even", nil),
	)
	require.NoError(t, err)
	assert.Equal(t, "integer in [18, 120]. Age must be between 18 and 120 Must be even", ref.Value.Description)
	assert.True(t, ref.Value.Type.Is(openapi3.TypeString))
}

func TestDescribeRules_Parent(t *testing.T) {
	parent := openapi3.NewObjectSchema()
	ref, err := DescribeRules("email", parent, Required("Email is required"), Email("Invalid email"))
	require.NoError(t, err)
	assert.Equal(t, []string{"email"}, parent.Required)
	assert.Equal(t, "email", ref.Value.Format)
	assert.Equal(t, "Email is required Invalid email", ref.Value.Description)
}

type schemaForm struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
}

func (f *schemaForm) Rules() []*FieldRules {
	return []*FieldRules{
		Field(&f.Name, Required("Name is required"), CharacterRange(2, 40, "2 to 40 characters")),
		Field(&f.Email, Required("Email is required"), Email("Invalid email")),
		Field(&f.Mobile, Mobile("Invalid mobile number")),
	}
}

func TestNewSchemaRefForValue(t *testing.T) {
	ref, err := NewSchemaRefForValue(&schemaForm{})
	require.NoError(t, err)

	s := ref.Value
	assert.ElementsMatch(t, []string{"name", "email"}, s.Required)

	name := s.Properties["name"].Value
	assert.Equal(t, uint64(2), name.MinLength)
	require.NotNil(t, name.MaxLength)
	assert.Equal(t, uint64(40), *name.MaxLength)

	assert.Equal(t, "email", s.Properties["email"].Value.Format)
	assert.Equal(t, mobilePattern, s.Properties["mobile"].Value.Pattern)
	assert.Equal(t, "Invalid mobile number", s.Properties["mobile"].Value.Description)
}
