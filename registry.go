package fieldvalidation

import (
	"fmt"
	"slices"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

// Checker reports whether text satisfies r. A nil text means the value is
// absent.
type Checker func(text *string, r TextRule) bool

// Describer documents a rule of one kind on an OpenAPI property.
type Describer func(r TextRule, name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error

type entry struct {
	check    Checker
	describe Describer
}

var (
	registryMu sync.RWMutex
	registry   = map[Kind]entry{}
)

// Register adds or replaces the check for kind. An optional describer
// documents the kind in generated schemas. Register panics if check is nil.
func Register(kind Kind, check Checker, describe ...Describer) {
	if check == nil {
		panic(fmt.Sprintf("fieldvalidation: nil checker for kind %q", kind))
	}
	e := entry{check: check}
	if len(describe) > 0 {
		e.describe = describe[0]
	}
	registryMu.Lock()
	registry[kind] = e
	registryMu.Unlock()
}

// Registered reports whether kind has a check.
func Registered(kind Kind) bool {
	_, ok := lookup(kind)
	return ok
}

// Kinds returns every registered kind, sorted.
func Kinds() []Kind {
	registryMu.RLock()
	kinds := make([]Kind, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	registryMu.RUnlock()
	slices.Sort(kinds)
	return kinds
}

func lookup(kind Kind) (entry, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	e, ok := registry[kind]
	return e, ok
}

// SkipEmpty wraps f so that an absent or empty text always passes. Every
// built-in kind except Required is registered this way.
func SkipEmpty(f func(text string, r TextRule) bool) Checker {
	return func(text *string, r TextRule) bool {
		if text == nil || *text == "" {
			return true
		}
		return f(*text, r)
	}
}

func init() {
	Register(KindRequired, checkRequired, describeRequired)
	Register(KindLettersOnly, SkipEmpty(checkLettersOnly), describePattern(lettersOnlyPattern))
	Register(KindAlphaNumeric, SkipEmpty(checkAlphaNumeric), describePattern(alphaNumericPattern))
	Register(KindMaxLength, SkipEmpty(checkMaxLength), describeMaxLength)
	Register(KindMinLength, SkipEmpty(checkMinLength), describeMinLength)
	Register(KindCharacterRange, SkipEmpty(checkCharacterRange), describeCharacterRange)
	Register(KindEmail, SkipEmpty(checkEmail), describeEmail)
	Register(KindMobile, SkipEmpty(checkMobile), describePattern(mobilePattern))
	Register(KindPassword, SkipEmpty(checkPassword), describePattern(passwordPattern))
	Register(KindNumericRange, SkipEmpty(checkNumericRange), describeNumericRange)
	Register(KindCustom, SkipEmpty(checkCustom))
}
