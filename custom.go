package fieldvalidation

// Custom returns a rule that fails when f reports false for a non-empty text.
// Like every catalog rule except Required, it lets empty text through.
func Custom(message string, f func(string) bool) TextRule {
	return TextRule{kind: KindCustom, message: message, match: f}
}

func checkCustom(text string, r TextRule) bool {
	if r.match == nil {
		return true
	}
	return r.match(text)
}
