// Package schema declares the intake form's field set and validation rules.
//
// Parse is the single gate between raw form values and the submission
// payload: it sanitizes and normalizes text fields, applies every field's
// rule independently, and on success returns a FormOutput whose sensitive
// fields carry branded types constructible nowhere else. Validation never
// short-circuits; a full-form pass reports every failing field together.
//
// Sanitization is not an error channel: input that strips down to nothing
// surfaces as an ordinary required-field error, deliberately indistinct
// from a genuinely empty field.
package schema

import (
	"fmt"
	"regexp"
	"time"

	"github.com/formguard/formguard/pkg/formatter"
	"github.com/formguard/formguard/pkg/sanitizer"
	"github.com/formguard/formguard/pkg/validator"
)

// Dotted field paths, used to key validation errors and focus targets.
const (
	FieldFullName = "fullName"
	FieldStreet   = "address.street"
	FieldCity     = "address.city"
	FieldState    = "address.state"
	FieldZip      = "address.zip"
	FieldSSN      = "ssn"
	FieldPhone    = "phoneNumber"
	FieldDOB      = "dob"
	FieldLicense  = "driversLicense"
	FieldConsent  = "consent"
)

// FormOrder lists every field in visual form order. Validation errors and
// the first-invalid focus target follow this order.
var FormOrder = []string{
	FieldFullName,
	FieldStreet,
	FieldCity,
	FieldState,
	FieldZip,
	FieldSSN,
	FieldPhone,
	FieldDOB,
	FieldLicense,
	FieldConsent,
}

const (
	maxFullNameLen = 100
	minLicenseLen  = 4
	dobLayout      = "2006-01-02"
)

var (
	ssnRegex   = regexp.MustCompile(`^\d{3}-\d{2}-\d{4}$`)
	phoneRegex = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)
	zipRegex   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
)

// ErrUnknownField is returned by ValidateField for a path outside FormOrder.
var ErrUnknownField = fmt.Errorf("unknown form field")

// Normalize returns v with every text field sanitized and trimmed, the
// state abbreviation upper-cased, and the zip grouped. SSN and phone are
// expected to already be canonical (the formatters run on every keystroke)
// and pass through untouched so malformed values fail validation loudly
// instead of being silently repaired.
func Normalize(v FormValues) FormValues {
	v.FullName = sanitizer.SanitizeTrim(v.FullName)
	v.Address.Street = sanitizer.SanitizeTrim(v.Address.Street)
	v.Address.City = sanitizer.SanitizeTrim(v.Address.City)
	v.Address.State = formatter.State(sanitizer.Sanitize(v.Address.State))
	v.Address.Zip = formatter.Zip(sanitizer.SanitizeTrim(v.Address.Zip))
	v.DOB = sanitizer.SanitizeTrim(v.DOB)
	v.DriversLicense = sanitizer.SanitizeTrim(v.DriversLicense)
	return v
}

// fieldRules is the declarative rule table: one independent rule set per
// field, in form order. Rules receive already-normalized values.
func fieldRules(v FormValues) map[string][]validator.Rule {
	return map[string][]validator.Rule{
		FieldFullName: {
			validator.RequiredString(FieldFullName, v.FullName),
			validator.MaxLenString(FieldFullName, v.FullName, maxFullNameLen),
		},
		FieldStreet: {
			validator.RequiredString(FieldStreet, v.Address.Street),
		},
		FieldCity: {
			validator.RequiredString(FieldCity, v.Address.City),
		},
		FieldState: {
			validator.RequiredString(FieldState, v.Address.State),
			validator.LenString(FieldState, v.Address.State, 2),
		},
		FieldZip: {
			validator.RequiredString(FieldZip, v.Address.Zip),
			validator.Matches(FieldZip, v.Address.Zip, zipRegex, "DDDDD or DDDDD-DDDD"),
		},
		FieldSSN: {
			validator.RequiredString(FieldSSN, v.SSN),
			// Format only; semantic digit restrictions (all-zero groups
			// etc.) are a backend concern.
			validator.Matches(FieldSSN, v.SSN, ssnRegex, "DDD-DD-DDDD"),
		},
		FieldPhone: {
			validator.RequiredString(FieldPhone, v.PhoneNumber),
			validator.Matches(FieldPhone, v.PhoneNumber, phoneRegex, "DDD-DDD-DDDD"),
		},
		FieldDOB: {
			validator.RequiredString(FieldDOB, v.DOB),
			validator.ValidCalendarDate(FieldDOB, v.DOB, dobLayout, "YYYY-MM-DD"),
		},
		FieldLicense: {
			validator.RequiredString(FieldLicense, v.DriversLicense),
			validator.MinLenString(FieldLicense, v.DriversLicense, minLicenseLen),
		},
		FieldConsent: {
			validator.LiteralTrue(FieldConsent, v.Consent, "consent is required to submit this form"),
		},
	}
}

// Parse validates the whole form and, on success, returns the validated
// output with sensitive fields carrying their branded types. On failure it
// returns validator.ValidationErrors listing every failing field in form
// order; the output is the zero value and must not be used.
func Parse(v FormValues) (FormOutput, error) {
	n := Normalize(v)
	rules := fieldRules(n)

	var all []validator.Rule
	for _, field := range FormOrder {
		all = append(all, rules[field]...)
	}

	if err := validator.Apply(all...); err != nil {
		return FormOutput{}, err
	}

	dob, err := time.Parse(dobLayout, n.DOB)
	if err != nil {
		// Unreachable after validation; guard against rule drift.
		return FormOutput{}, validator.ValidationErrors{{Field: FieldDOB, Message: "must be a valid date in YYYY-MM-DD format"}}
	}

	return FormOutput{
		FullName:       n.FullName,
		Address:        n.Address,
		SSN:            SSN{value: n.SSN},
		PhoneNumber:    n.PhoneNumber,
		DOB:            DateOfBirth{value: n.DOB, t: dob},
		DriversLicense: DriversLicense{value: n.DriversLicense},
		Consent:        n.Consent,
	}, nil
}

// ValidateField validates a single field, the blur-time trigger: only that
// field's rules run. Returns nil when the field passes, ErrUnknownField for
// an unrecognized path, or validator.ValidationErrors scoped to the field.
func ValidateField(v FormValues, field string) error {
	rules, ok := fieldRules(Normalize(v))[field]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return validator.Apply(rules...)
}
