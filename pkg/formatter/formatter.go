// Package formatter provides incremental format-as-you-type helpers for the
// intake form's fixed-width fields. Every function is pure and total: digits
// are extracted from whatever the user typed or pasted, truncated to the
// field's capacity, and grouped with separators. Applying a formatter to its
// own output is a no-op, so values can be re-formatted on every keystroke.
//
// Digit extraction runs on the raw input before any markup stripping, so a
// digit embedded in markup (the "1" in "<script>alert(1)</script>") is
// extracted. That quirk is documented, not contractual: the formatted output
// contains only digits and separators either way, and free-text fields go
// through the sanitizer instead.
package formatter

import "strings"

// Field capacities in digits.
const (
	SSNDigits   = 9
	PhoneDigits = 10
)

// Digits extracts the digit characters from s, truncated to max. A max of
// zero or less means unlimited.
func Digits(s string, max int) string {
	var b strings.Builder
	for _, r := range s {
		if r < '0' || r > '9' {
			continue
		}
		b.WriteRune(r)
		if max > 0 && b.Len() == max {
			break
		}
	}
	return b.String()
}

// SSN formats raw input as an incrementally grouped Social Security Number:
// "DDD", "DDD-DD", or "DDD-DD-DDDD" depending on how many digits have been
// entered, capped at nine.
func SSN(raw string) string {
	d := Digits(raw, SSNDigits)
	switch {
	case len(d) <= 3:
		return d
	case len(d) <= 5:
		return d[:3] + "-" + d[3:]
	default:
		return d[:3] + "-" + d[3:5] + "-" + d[5:]
	}
}

// Phone formats raw input as an incrementally grouped NANP phone number:
// "DDD", "DDD-DDD", or "DDD-DDD-DDDD", capped at ten digits.
func Phone(raw string) string {
	d := Digits(raw, PhoneDigits)
	switch {
	case len(d) <= 3:
		return d
	case len(d) <= 6:
		return d[:3] + "-" + d[3:]
	default:
		return d[:3] + "-" + d[3:6] + "-" + d[6:]
	}
}

// Zip formats a US postal code as "DDDDD" or "DDDDD-DDDD" when the input
// carries exactly five or nine digits; anything else passes through trimmed
// so validation can reject it without the formatter destroying the input.
func Zip(raw string) string {
	trimmed := strings.TrimSpace(raw)
	d := Digits(trimmed, 0)
	switch len(d) {
	case 5:
		return d
	case 9:
		return d[:5] + "-" + d[5:]
	default:
		return trimmed
	}
}

// State normalizes a US state abbreviation: trimmed and upper-cased. Length
// is a validation concern, not a formatting one.
func State(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
