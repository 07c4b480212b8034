package fieldvalidation

import (
	"regexp"

	"github.com/getkin/kin-openapi/openapi3"
)

const (
	lettersOnlyPattern  = `^[A-Za-z ]*$`
	alphaNumericPattern = `^[A-Za-z0-9 ]*$`
)

var (
	nonLetterRegexp       = regexp.MustCompile(`[^A-Za-z ]`)
	nonAlphaNumericRegexp = regexp.MustCompile(`[^A-Za-z0-9 ]`)
)

// LettersOnly returns a rule that accepts ASCII letters and spaces only.
func LettersOnly(message string) TextRule {
	return TextRule{kind: KindLettersOnly, message: message}
}

// AlphaNumeric returns a rule that accepts ASCII letters, digits and spaces only.
func AlphaNumeric(message string) TextRule {
	return TextRule{kind: KindAlphaNumeric, message: message}
}

func checkLettersOnly(text string, _ TextRule) bool {
	return !nonLetterRegexp.MatchString(text)
}

func checkAlphaNumeric(text string, _ TextRule) bool {
	return !nonAlphaNumericRegexp.MatchString(text)
}

func describePattern(pattern string) Describer {
	return func(_ TextRule, _ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
		ref.Value.Pattern = pattern
		return nil
	}
}
