package fieldvalidation

import (
	"strings"
	"unicode"

	"github.com/getkin/kin-openapi/openapi3"
)

// Required returns a rule that fails when the text is absent or contains only
// spaces and tabs.
func Required(message string) TextRule {
	return TextRule{kind: KindRequired, message: message}
}

func checkRequired(text *string, _ TextRule) bool {
	return text != nil && strings.TrimFunc(*text, isBlank) != ""
}

// isBlank matches horizontal whitespace only; line breaks are content.
func isBlank(r rune) bool {
	return r == '\t' || unicode.Is(unicode.Zs, r)
}

func describeRequired(_ TextRule, name string, schema *openapi3.Schema, _ *openapi3.SchemaRef) error {
	schema.Required = append(schema.Required, name)
	return nil
}
