package converter_test

import (
	"testing"

	"github.com/5amu/guidconv/internal/converter"
	"github.com/5amu/guidconv/pkg/encoder"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestConvert(t *testing.T) {
	type testCase struct {
		name     string
		input    string
		shape    encoder.Shape
		expected string
	}

	cases := []testCase{
		{
			name:     "guid to raw hex",
			input:    "01020304-0506-0708-0910-111213141516",
			shape:    encoder.CanonicalShaped,
			expected: "✅ Raw Hex: 04030201060508070910111213141516",
		},
		{
			name:     "uppercase guid with whitespace",
			input:    "  8A885D04-1CEB-11C9-9FE8-08002B104860 \n",
			shape:    encoder.CanonicalShaped,
			expected: "✅ Raw Hex: 045D888AEB1CC9119FE808002B104860",
		},
		{
			name:     "raw hex to guid",
			input:    "00000000000000000000000000000000",
			shape:    encoder.RawHexShaped,
			expected: "✅ GUID: 00000000-0000-0000-0000-000000000000",
		},
		{
			name:     "lowercase raw hex to guid",
			input:    "045d888aeb1cc9119fe808002b104860",
			shape:    encoder.RawHexShaped,
			expected: "✅ GUID: 8a885d04-1ceb-11c9-9fe8-08002b104860",
		},
		{
			name:     "not a guid",
			input:    "not-a-guid",
			shape:    encoder.Unrecognized,
			expected: "❌ Invalid input. It's neither raw hex nor guid.",
		},
		{
			name:     "empty",
			input:    "",
			shape:    encoder.Unrecognized,
			expected: "❌ Invalid input. It's neither raw hex nor guid.",
		},
		{
			name:     "hyphens in wrong positions",
			input:    "0102030-40506-0708-0910-111213141516",
			shape:    encoder.CanonicalShaped,
			expected: "❌ Invalid GUID",
		},
		{
			name:     "guid shaped with bad digits",
			input:    "0102030g-0506-0708-0910-111213141516",
			shape:    encoder.CanonicalShaped,
			expected: "❌ Invalid GUID",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := converter.Convert(tc.input)
			assert.Equal(t, tc.shape, r.Shape)
			assert.Equal(t, tc.expected, r.String())
		})
	}
}

func TestConvertResult(t *testing.T) {
	r := converter.Convert("01020304-0506-0708-0910-111213141516")
	assert.True(t, r.OK())
	assert.Equal(t, converter.KindRawHex, r.Kind)
	assert.Equal(t, uuid.MustParse("01020304-0506-0708-0910-111213141516"), r.ID)
	assert.Equal(t, "01020304-0506-0708-0910-111213141516", r.Input)

	r = converter.Convert("not-a-guid")
	assert.False(t, r.OK())
	assert.ErrorIs(t, r.Err, encoder.ErrUnrecognizedShape)
	assert.Equal(t, converter.KindNone, r.Kind)
	assert.Empty(t, r.Value)
}

func TestConvertCrossForm(t *testing.T) {
	guid := converter.Convert("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	if !assert.True(t, guid.OK()) {
		return
	}
	raw := converter.Convert(guid.Value)
	if !assert.True(t, raw.OK()) {
		return
	}
	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", raw.Value)
	assert.Equal(t, guid.ID, raw.ID)
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, converter.InvalidGUIDMessage, converter.ErrorMessage(encoder.ErrMalformedCanonical))
	assert.Equal(t, converter.InvalidRawHexMessage, converter.ErrorMessage(encoder.ErrMalformedRawHex))
	assert.Equal(t, converter.UnrecognizedMessage, converter.ErrorMessage(encoder.ErrUnrecognizedShape))
}
