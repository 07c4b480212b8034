package fieldvalidation

import "regexp"

// passwordPattern is six to twelve characters on one line. Line terminators
// are LF, VT, FF, CR, NEL, LS and PS.
const passwordPattern = "^[^\n\v\f\r\u0085\u2028\u2029]{6,12}$"

var passwordRegexp = regexp.MustCompile(passwordPattern)

// Password returns a rule that fails when a non-empty text is not between six
// and twelve characters on a single line.
func Password(message string) TextRule {
	return TextRule{kind: KindPassword, message: message}
}

func checkPassword(text string, _ TextRule) bool {
	return passwordRegexp.MatchString(text)
}
