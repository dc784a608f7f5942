package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/formguard/formguard/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	t.Parallel()

	result := sanitizer.Apply("  <b>Jane</b> Doe  ",
		sanitizer.Sanitize,
		sanitizer.Trim,
	)
	assert.Equal(t, "Jane Doe", result)
}

func TestApplyNoTransforms(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "unchanged", sanitizer.Apply("unchanged"))
}

func TestCompose(t *testing.T) {
	t.Parallel()

	clean := sanitizer.Compose(
		sanitizer.Sanitize,
		sanitizer.Trim,
		strings.ToUpper,
	)

	assert.Equal(t, "UT", clean("  <i>ut</i>  "))
	assert.Equal(t, "CA", clean("ca"))
}
