// Package openapi builds OpenAPI 3 documents for form submission endpoints.
// Form schemas come either from struct types implementing
// [fieldvalidation.Ruler] or from named rule sets via [FormSchema].
//
//	doc := openapi.DocBase("forms", "Form validation API", "1.0")
//	schema, _ := openapi.FormSchema(
//	    openapi.Property{Name: "email", Rules: fieldvalidation.RuleSet{
//	        fieldvalidation.Required("Email is required"),
//	        fieldvalidation.Email("Invalid email"),
//	    }},
//	)
//	openapi.Post(doc, "/forms/login/validate", "validateLogin", openapi.Endpoint{
//	    RequestSchema: schema,
//	})
package openapi
