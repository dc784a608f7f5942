package sanitizer

import (
	"html"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy strips every tag and attribute; only text content survives.
var strictPolicy = bluemonday.StrictPolicy()

// maxStripPasses bounds the fixed-point loop in StripMarkup. Each pass
// decays one level of entity encoding, so anything deeper is pathological
// input and falls through to the delimiter scrub.
const maxStripPasses = 16

var angleScrubber = strings.NewReplacer("<", "", ">", "")

// StripMarkup removes all markup tags and attributes, returning plain text.
// The result never contains '<' or '>', even for inputs that smuggle markup
// behind layers of entity encoding. Script and style element content is
// dropped entirely, not unwrapped.
func StripMarkup(s string) string {
	prev := s
	for range maxStripPasses {
		next := html.UnescapeString(strictPolicy.Sanitize(prev))
		if next == prev {
			break
		}
		prev = next
	}
	return angleScrubber.Replace(prev)
}

// RemoveNullBytes removes embedded null characters.
func RemoveNullBytes(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}

// RemoveControlSequences removes ANSI escape sequences and control characters
// other than tab, newline and carriage return.
func RemoveControlSequences(s string) string {
	result := ansiEscapeRegex.ReplaceAllString(s, "")

	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, result)
}

// Sanitize strips markup, null bytes and control sequences from untrusted
// input. Pure, total and idempotent: Sanitize(Sanitize(x)) == Sanitize(x).
func Sanitize(s string) string {
	result := StripMarkup(s)
	result = RemoveNullBytes(result)
	result = RemoveControlSequences(result)
	return result
}

// SanitizeTrim is Sanitize plus leading/trailing whitespace removal.
func SanitizeTrim(s string) string {
	return strings.TrimSpace(Sanitize(s))
}

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}
