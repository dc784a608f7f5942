package validator

// LiteralTrue validates that a boolean is exactly true. Used for consent
// gates where anything other than an explicit affirmative must fail.
func LiteralTrue(field string, value bool, message string) Rule {
	return Rule{
		Check: func() bool {
			return value
		},
		Error: ValidationError{
			Field:   field,
			Message: message,
		},
	}
}
