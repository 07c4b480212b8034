package openapi_test

import (
	"context"
	"fmt"
	"regexp"
	"testing"

	v "github.com/Gobd/fieldvalidation"
	"github.com/Gobd/fieldvalidation/openapi"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Contact struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
}

func (c *Contact) Rules() []*v.FieldRules {
	return []*v.FieldRules{
		v.Field(&c.Name, v.Required("Name is required"), v.MaxLength(40, "Name is too long")),
		v.Field(&c.Mobile, v.Mobile("Invalid mobile number")),
	}
}

func ExamplePost() {
	doc := openapi.DocBase("Contacts API", "Example API", "1.0.0")

	_ = openapi.Post(doc, "/contacts", "createContact", openapi.Endpoint{
		Summary:  "Create a contact",
		Request:  Contact{},
		Response: Contact{},
	})

	fmt.Println(doc.Paths.Value("/contacts").Post.OperationID)
	// Output: createContact
}

func ExampleDocBase() {
	doc := openapi.DocBase("My Service", "A cool service", "0.1.0")
	fmt.Println(doc.Info.Title)
	fmt.Println(doc.OpenAPI)
	// Output:
	// My Service
	// 3.0.3
}

func ExampleFormSchema() {
	schema, _ := openapi.FormSchema(
		openapi.Property{Name: "email", Rules: v.RuleSet{v.Required("Email is required"), v.Email("Invalid email")}},
		openapi.Property{Name: "age", Rules: v.RuleSet{v.NumericRange(18, 120, "Out of range")}},
	)
	fmt.Println(schema.Value.Required)
	fmt.Println(schema.Value.Properties["email"].Value.Format)
	// Output:
	// [email]
	// email
}

func TestFormSchemaDocument(t *testing.T) {
	schema, err := openapi.FormSchema(
		openapi.Property{Name: "password", Rules: v.RuleSet{v.Required("Password is required"), v.Password("Invalid password")}},
		openapi.Property{Name: "nickname"},
	)
	require.NoError(t, err)

	pw := schema.Value.Properties["password"].Value
	assert.True(t, pw.Nullable)
	pattern := regexp.MustCompile(pw.Pattern)
	assert.True(t, pattern.MatchString("secret1"))
	assert.False(t, pattern.MatchString("sec\u2028ret1"))
	assert.Equal(t, "Password is required Invalid password", pw.Description)
	assert.Empty(t, schema.Value.Properties["nickname"].Value.Description)

	doc := openapi.DocBase("forms", "Form validation", "1.0.0")
	require.NoError(t, openapi.Post(doc, "/forms/login/validate", "validateLogin", openapi.Endpoint{
		RequestSchema: schema,
		Responses: map[string]openapi.Response{
			"200": {Desc: "Valid"},
			"422": {Desc: "Invalid", Schemas: []*openapi3.SchemaRef{schema}},
		},
	}))
	require.NoError(t, openapi.Get(doc, "/contacts", "listContacts", openapi.Endpoint{Response: []Contact{}}))

	require.NoError(t, doc.Validate(context.Background()))

	op := doc.Paths.Value("/forms/login/validate").Post
	assert.Same(t, schema, op.RequestBody.Value.Content["application/json"].Schema)
	assert.NotNil(t, op.Responses.Value("422"))
}

func TestNewRequestEmpty(t *testing.T) {
	_, err := openapi.NewRequest()
	assert.Error(t, err)
	_, err = openapi.NewResponse(nil)
	assert.Error(t, err)
}
