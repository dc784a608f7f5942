package sanitizer

import "strings"

// MaskDigits replaces every digit in s with '*' except the last visible
// digits. Non-digit characters (separators) keep their positions, so a
// formatted value keeps its shape: MaskDigits("123-45-6789", 4) returns
// "***-**-6789". Values with at most visible digits are returned unchanged.
func MaskDigits(s string, visible int) string {
	if visible < 0 {
		visible = 0
	}

	total := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			total++
		}
	}
	if total <= visible {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	seen := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			seen++
			if seen <= total-visible {
				b.WriteRune('*')
				continue
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// MaskSSN masks all but the last four digits of a formatted SSN, following
// the privacy convention of keeping the last four for user recognition.
func MaskSSN(ssn string) string {
	return MaskDigits(ssn, 4)
}

// MaskPhone masks all but the last four digits of a formatted phone number.
func MaskPhone(phone string) string {
	return MaskDigits(phone, 4)
}

// NormalizeDigits strips every non-digit character. Useful for comparing
// formatted values by their digit content.
func NormalizeDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}
