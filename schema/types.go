package schema

import (
	"time"

	"github.com/formguard/formguard/pkg/sanitizer"
)

// Address holds the applicant's postal address as entered.
type Address struct {
	Street string
	City   string
	State  string
	Zip    string
}

// FormValues is the form's single source of truth. SSN and PhoneNumber hold
// the canonical value: digit-grouped with separators once at least one digit
// has been entered, never raw digits and never the masked projection, which
// is display-only and lives outside this record entirely.
type FormValues struct {
	FullName       string
	Address        Address
	SSN            string
	PhoneNumber    string
	DOB            string
	DriversLicense string
	Consent        bool
}

// SSN is a validated Social Security Number. Values are only constructible
// through Parse, so holding a non-zero SSN proves the value passed format
// validation.
type SSN struct {
	value string
}

func (s SSN) String() string { return s.value }
func (s SSN) IsZero() bool   { return s.value == "" }

// Masked returns the display-safe rendering, suitable for logs and UI:
// "***-**-6789".
func (s SSN) Masked() string { return sanitizer.MaskSSN(s.value) }

// DateOfBirth is a validated calendar date. Only constructible through Parse.
type DateOfBirth struct {
	value string
	t     time.Time
}

func (d DateOfBirth) String() string  { return d.value }
func (d DateOfBirth) Time() time.Time { return d.t }
func (d DateOfBirth) IsZero() bool    { return d.value == "" }

// DriversLicense is a validated license identifier. Only constructible
// through Parse.
type DriversLicense struct {
	value string
}

func (l DriversLicense) String() string { return l.value }
func (l DriversLicense) IsZero() bool   { return l.value == "" }

// FormOutput is the validated form. It is only produced by Parse; no code
// path hands unvalidated values to the submission transport. Consent is
// carried for completeness but is stripped from the wire payload; it is a
// client-side gate with no server-side meaning.
type FormOutput struct {
	FullName       string
	Address        Address
	SSN            SSN
	PhoneNumber    string
	DOB            DateOfBirth
	DriversLicense DriversLicense
	Consent        bool
}
