// Package transport defines the submission contract between the intake form
// and its backend, plus an HTTP client implementation. The form coordinator
// submits a fully validated payload (consent is a client-side gate and is
// never part of the wire format) and receives either a Receipt or a
// StructuredError carrying optional field-scoped backend failures.
package transport

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Address is the wire shape of the applicant's postal address.
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// Payload is the submission body. All values are canonical: sanitized plain
// text, and digit-grouped with separators for SSN and phone. Payloads are
// only built from validated form output, never from raw input.
type Payload struct {
	FullName       string  `json:"fullName"`
	Address        Address `json:"address"`
	SSN            string  `json:"ssn"`
	PhoneNumber    string  `json:"phoneNumber"`
	DOB            string  `json:"dob"`
	DriversLicense string  `json:"driversLicense"`
}

// Receipt is the backend's acknowledgement of an accepted submission.
type Receipt struct {
	ID          uuid.UUID `json:"id"`
	SubmittedAt time.Time `json:"submittedAt"`
	Status      string    `json:"status"`
	FullName    string    `json:"fullName"`
}

// Submitter accepts a validated payload. Implementations must return either
// a Receipt or an error; a *StructuredError signals a backend-reported
// failure that may carry field-scoped entries.
type Submitter interface {
	Submit(ctx context.Context, p Payload) (*Receipt, error)
}
