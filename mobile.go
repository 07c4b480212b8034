package fieldvalidation

import (
	"github.com/asaskevich/govalidator"
)

const (
	mobileLength  = 10
	mobilePattern = `^[0-9]{10}$`
)

// Mobile returns a rule that fails when a non-empty text is not exactly ten
// ASCII digits.
func Mobile(message string) TextRule {
	return TextRule{kind: KindMobile, message: message}
}

func checkMobile(text string, _ TextRule) bool {
	return govalidator.IsNumeric(text) && len(text) == mobileLength
}
