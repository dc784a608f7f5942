package sanitizer

import "regexp"

// Pre-compiled patterns shared across the package.
var (
	ansiEscapeRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)
	nonDigitRegex   = regexp.MustCompile(`[^0-9]`)
)
