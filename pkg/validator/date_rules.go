package validator

import (
	"fmt"
	"time"
)

// ValidCalendarDate validates that value parses as a real calendar date in
// the given layout. time.Parse rejects impossible dates (2001-02-30), so no
// separate structural check is needed. Empty values pass; pair with
// RequiredString. The description names the expected shape in the
// user-facing message (e.g. "YYYY-MM-DD").
func ValidCalendarDate(field, value, layout, description string) Rule {
	return Rule{
		Check: func() bool {
			if value == "" {
				return true
			}
			_, err := time.Parse(layout, value)
			return err == nil
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be a valid date in %s format", description),
		},
	}
}
