// Package fieldvalidation validates text fields of a form against an ordered
// list of declarative rules.
//
// A rule set is evaluated in order and stops at the first failure:
//
//	rules := fieldvalidation.RuleSet{
//	    fieldvalidation.Required("Email is required"),
//	    fieldvalidation.Email("Invalid email"),
//	}
//	if err := rules.Check(&text); err != nil {
//	    field.ShowError(err.Error())
//	}
//
// Every rule other than Required lets an empty value through, so optional
// fields only need their format rules.
//
// Rule kinds are looked up in a registry; [Register] adds new kinds without
// touching the validator.
//
// Forms can also be declared as structs implementing [Ruler] and validated
// with [Validate], which reports each failing field in a [ValidationErrors]
// map. The same rules document the form as an OpenAPI schema.
//
// Sub-packages:
//   - floatlabel – headless text field with floating label and error display
//   - openapi – OpenAPI documents for form submission endpoints
//   - transform – string transforms applied to form values
package fieldvalidation
