package validator

import (
	"fmt"
	"regexp"
)

// Matches validates value against a pre-compiled pattern. Empty values pass;
// pair with RequiredString so empty and malformed report independently.
// The description names the expected shape in the user-facing message.
func Matches(field, value string, re *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			return value == "" || re.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be in %s format", description),
		},
	}
}
