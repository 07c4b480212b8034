package fieldvalidation

import (
	"fmt"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"
)

const integerPattern = `^[+-]?[0-9]+$`

// NumericRange returns a rule that fails when a non-empty text is not a
// base-10 integer between lo and hi inclusive.
func NumericRange(lo, hi int, message string) TextRule {
	return TextRule{kind: KindNumericRange, bounds: Bounds{Min: lo, Max: hi}, message: message}
}

func checkNumericRange(text string, r TextRule) bool {
	n, err := strconv.Atoi(text)
	if err != nil {
		return false
	}
	return n >= r.bounds.Min && n <= r.bounds.Max
}

func describeNumericRange(r TextRule, _ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Pattern = integerPattern
	appendDescription(ref, fmt.Sprintf("integer in [%d, %d].", r.bounds.Min, r.bounds.Max))
	return nil
}
