package fieldvalidation

import (
	"slices"
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinKindsRegistered(t *testing.T) {
	for _, k := range []Kind{
		KindRequired, KindLettersOnly, KindMaxLength, KindMinLength, KindEmail,
		KindMobile, KindPassword, KindCharacterRange, KindAlphaNumeric,
		KindNumericRange, KindCustom,
	} {
		assert.True(t, Registered(k), k)
	}
	assert.False(t, Registered("postcode"))
	assert.True(t, slices.IsSorted(Kinds()))
}

func TestRegisterNewKind(t *testing.T) {
	const kindUpper Kind = "test_upper"
	t.Cleanup(func() {
		registryMu.Lock()
		delete(registry, kindUpper)
		registryMu.Unlock()
	})

	Register(kindUpper, SkipEmpty(func(text string, _ TextRule) bool {
		return strings.ToUpper(text) == text
	}), func(_ TextRule, _ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
		ref.Value.Pattern = `^[^a-z]*$`
		return nil
	})

	r := NewRule(kindUpper, "Use capitals", Bounds{})
	assert.NoError(t, CheckString("ABC", r))
	assert.NoError(t, CheckString("", r))
	err := CheckString("AbC", r)
	require.EqualError(t, err, "Use capitals")
	assert.Equal(t, "validation_test_upper", ErrorCode(err))
	assert.Contains(t, Kinds(), kindUpper)

	ref, err := DescribeRules("code", nil, r)
	require.NoError(t, err)
	assert.Equal(t, `^[^a-z]*$`, ref.Value.Pattern)
	assert.Equal(t, "Use capitals", ref.Value.Description)
}

func TestRegisterNilChecker(t *testing.T) {
	assert.PanicsWithValue(t, `fieldvalidation: nil checker for kind "test_nil"`, func() {
		Register("test_nil", nil)
	})
	assert.False(t, Registered("test_nil"))
}

func TestUnknownKindIsInternalError(t *testing.T) {
	err := CheckString("x", NewRule("no_such_kind", "msg", Bounds{}))
	require.Error(t, err)

	var ie validation.InternalError
	require.ErrorAs(t, err, &ie)
	assert.Contains(t, ie.InternalError().Error(), "no_such_kind")
}

func TestSkipEmpty(t *testing.T) {
	never := SkipEmpty(func(string, TextRule) bool { return false })
	empty := ""
	full := "x"
	assert.True(t, never(nil, TextRule{}))
	assert.True(t, never(&empty, TextRule{}))
	assert.False(t, never(&full, TextRule{}))
}

func TestCustomWithoutFunc(t *testing.T) {
	assert.NoError(t, CheckString("anything", Custom("msg", nil)))
}
