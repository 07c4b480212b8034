package fieldvalidation

import (
	"regexp"

	"github.com/getkin/kin-openapi/openapi3"
)

var emailRegexp = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,4}$`)

// Email returns a rule that fails when a non-empty text is not an address of
// the form local@domain.tld with a two to four letter top-level domain.
func Email(message string) TextRule {
	return TextRule{kind: KindEmail, message: message}
}

func checkEmail(text string, _ TextRule) bool {
	return emailRegexp.MatchString(text)
}

func describeEmail(_ TextRule, _ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Format = "email"
	return nil
}
