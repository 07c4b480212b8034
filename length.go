package fieldvalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/rivo/uniseg"
)

// MaxLength returns a rule that fails when a non-empty text is longer than n
// characters.
func MaxLength(n int, message string) TextRule {
	return TextRule{kind: KindMaxLength, bounds: Bounds{Max: n}, message: message}
}

// MinLength returns a rule that fails when a non-empty text is shorter than n
// characters.
func MinLength(n int, message string) TextRule {
	return TextRule{kind: KindMinLength, bounds: Bounds{Min: n}, message: message}
}

// CharacterRange returns a rule that fails when a non-empty text has fewer
// than lo or more than hi characters.
func CharacterRange(lo, hi int, message string) TextRule {
	return TextRule{kind: KindCharacterRange, bounds: Bounds{Min: lo, Max: hi}, message: message}
}

// length counts user-perceived characters, so "é" written with a combining
// accent is one character.
func length(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

func checkMaxLength(text string, r TextRule) bool {
	return length(text) <= r.bounds.Max
}

func checkMinLength(text string, r TextRule) bool {
	return length(text) >= r.bounds.Min
}

func checkCharacterRange(text string, r TextRule) bool {
	n := length(text)
	return n >= r.bounds.Min && n <= r.bounds.Max
}

func describeMaxLength(r TextRule, _ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.MaxLength = uintPtr(r.bounds.Max)
	return nil
}

func describeMinLength(r TextRule, _ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.MinLength = uintOf(r.bounds.Min)
	return nil
}

func describeCharacterRange(r TextRule, _ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.MinLength = uintOf(r.bounds.Min)
	ref.Value.MaxLength = uintPtr(r.bounds.Max)
	return nil
}

func uintOf(n int) uint64 {
	if n < 0 {
		return 0
	}
	return uint64(n)
}

func uintPtr(n int) *uint64 {
	u := uintOf(n)
	return &u
}
