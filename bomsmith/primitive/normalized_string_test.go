package primitive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNormalizedString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected NormalizedString
	}{
		{
			name:     "plain text untouched",
			input:    "no breaks here",
			expected: "no breaks here",
		},
		{
			name:     "crlf collapses to one space",
			input:    "line one\r\nline two",
			expected: "line one line two",
		},
		{
			name:     "each whitespace kind replaced",
			input:    "a\rb\nc\td",
			expected: "a b c d",
		},
		{
			name:     "adjacent breaks are not merged",
			input:    "a\n\nb",
			expected: "a  b",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actual := NewNormalizedString(test.input)
			assert.Equal(t, test.expected, actual)
			assert.NoError(t, actual.Validate())
		})
	}
}

func TestNormalizedString_Validate(t *testing.T) {
	assert.NoError(t, NormalizedString("fine").Validate())

	for _, raw := range []string{"tab\there", "cr\rhere", "lf\nhere"} {
		err := NormalizedString(raw).Validate()
		assert.ErrorIs(t, err, ErrInvalidWhitespace, "raw=%q", raw)
	}
}
