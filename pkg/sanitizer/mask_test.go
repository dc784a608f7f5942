package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/formguard/formguard/pkg/sanitizer"
)

func TestMaskDigits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		visible  int
		expected string
	}{
		{
			name:     "masks formatted ssn keeping separators",
			input:    "123-45-6789",
			visible:  4,
			expected: "***-**-6789",
		},
		{
			name:     "masks formatted phone keeping separators",
			input:    "801-555-1234",
			visible:  4,
			expected: "***-***-1234",
		},
		{
			name:     "short value returned unchanged",
			input:    "123",
			visible:  4,
			expected: "123",
		},
		{
			name:     "partial mask on mid-length value",
			input:    "123-45",
			visible:  4,
			expected: "*23-45",
		},
		{
			name:     "empty string",
			input:    "",
			visible:  4,
			expected: "",
		},
		{
			name:     "negative visible masks everything",
			input:    "123",
			visible:  -1,
			expected: "***",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.MaskDigits(tt.input, tt.visible))
		})
	}
}

func TestMaskSSN(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "***-**-6789", sanitizer.MaskSSN("123-45-6789"))
}

func TestMaskPhone(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "***-***-1234", sanitizer.MaskPhone("801-555-1234"))
}

func TestNormalizeDigits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1234567890", sanitizer.NormalizeDigits("(123) 456-7890"))
	assert.Equal(t, "", sanitizer.NormalizeDigits("no digits"))
}
