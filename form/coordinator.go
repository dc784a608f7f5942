// Package form implements the intake form's state coordinator: the single
// owner of field values, per-field touch/error state, validation triggers
// and submission dispatch.
//
// The coordinator is event-driven and single-goroutine: every method
// corresponds to a discrete UI event (keystroke, blur, toggle, submit
// click) and runs synchronously. Formatters and validators are pure
// functions invoked by the coordinator; nothing else mutates the form
// record. At most one submission is in flight at a time, enforced by the
// form lifecycle state rather than a queue: while submitting, every input
// mutator is a no-op and Submit returns ErrSubmitUnavailable.
package form

import (
	"context"
	"errors"
	"fmt"

	"github.com/formguard/formguard/pkg/formatter"
	"github.com/formguard/formguard/pkg/mask"
	"github.com/formguard/formguard/pkg/sanitizer"
	"github.com/formguard/formguard/pkg/statemachine"
	"github.com/formguard/formguard/pkg/validator"
	"github.com/formguard/formguard/schema"
	"github.com/formguard/formguard/transport"
)

// Form lifecycle. Editing is initial; Submitting locks all input; Confirmed
// shows the receipt until an explicit reset.
const (
	PhaseEditing    = statemachine.StringState("editing")
	PhaseSubmitting = statemachine.StringState("submitting")
	PhaseConfirmed  = statemachine.StringState("confirmed")
)

const (
	eventSubmit  = statemachine.StringEvent("submit")
	eventSucceed = statemachine.StringEvent("succeed")
	eventFail    = statemachine.StringEvent("fail")
)

var (
	// ErrSubmitUnavailable is returned when a submission is already in
	// flight or the form has been submitted and not reset.
	ErrSubmitUnavailable = errors.New("form: submit unavailable in current state")

	// ErrResetUnavailable is returned when reset is attempted while a
	// submission is in flight.
	ErrResetUnavailable = errors.New("form: cannot reset while submission is in flight")
)

// Coordinator owns the form state tree. Not safe for concurrent use; all
// events must arrive from a single goroutine.
type Coordinator struct {
	values    schema.FormValues
	statuses  map[string]FieldStatus
	errors    map[string]string
	globalErr string
	focus     string
	receipt   *transport.Receipt

	phase     *statemachine.SimpleStateMachine
	submitter transport.Submitter

	ssn   *mask.Controller
	phone *mask.Controller
}

// New creates a coordinator dispatching to submitter. Panics on a nil
// submitter to fail fast at wiring time.
func New(submitter transport.Submitter) *Coordinator {
	if submitter == nil {
		panic("form: nil submitter")
	}

	return &Coordinator{
		statuses:  make(map[string]FieldStatus),
		errors:    make(map[string]string),
		submitter: submitter,
		phase: statemachine.MustNew(PhaseEditing,
			statemachine.WithTransition(PhaseEditing, PhaseSubmitting, eventSubmit, nil, nil),
			statemachine.WithTransition(PhaseSubmitting, PhaseConfirmed, eventSucceed, nil, nil),
			statemachine.WithTransition(PhaseSubmitting, PhaseEditing, eventFail, nil, nil),
		),
		ssn:   mask.NewSSN(),
		phone: mask.NewPhone(),
	}
}

// Phase returns the current lifecycle state.
func (c *Coordinator) Phase() statemachine.State {
	return c.phase.Current()
}

// InputsDisabled reports whether the form is non-interactive (a submission
// is in flight).
func (c *Coordinator) InputsDisabled() bool {
	return c.phase.Current() == PhaseSubmitting
}

// SSNField exposes the SSN masking controller for display and digit-level
// edit events. The coordinator pulls its canonical value on blur and submit.
func (c *Coordinator) SSNField() *mask.Controller {
	return c.ssn
}

// PhoneField exposes the phone masking controller.
func (c *Coordinator) PhoneField() *mask.Controller {
	return c.phone
}

// SetValue applies a keystroke-level value change to a field: raw input is
// sanitized, then formatted where the field has a canonical shape. No-op
// while inputs are disabled. SSN and phone changes route through their mask
// controllers so the canonical digits stay the single source of truth.
func (c *Coordinator) SetValue(field, raw string) {
	if c.InputsDisabled() {
		return
	}

	switch field {
	case schema.FieldFullName:
		c.values.FullName = sanitizer.Sanitize(raw)
	case schema.FieldStreet:
		c.values.Address.Street = sanitizer.Sanitize(raw)
	case schema.FieldCity:
		c.values.Address.City = sanitizer.Sanitize(raw)
	case schema.FieldState:
		c.values.Address.State = formatter.State(sanitizer.Sanitize(raw))
	case schema.FieldZip:
		c.values.Address.Zip = formatter.Zip(sanitizer.Sanitize(raw))
	case schema.FieldDOB:
		c.values.DOB = sanitizer.SanitizeTrim(raw)
	case schema.FieldLicense:
		c.values.DriversLicense = sanitizer.Sanitize(raw)
	case schema.FieldSSN:
		c.ssn.SetRaw(raw)
		c.values.SSN = c.ssn.Canonical()
	case schema.FieldPhone:
		c.phone.SetRaw(raw)
		c.values.PhoneNumber = c.phone.Canonical()
	}
}

// SetConsent records the consent checkbox state.
func (c *Coordinator) SetConsent(consent bool) {
	if c.InputsDisabled() {
		return
	}
	c.values.Consent = consent
}

// Blur handles a field losing focus: sensitive fields sync their canonical
// value and force the hidden display state, then the field is validated
// alone and transitions to Touched.
func (c *Coordinator) Blur(field string) {
	if c.InputsDisabled() {
		return
	}

	switch field {
	case schema.FieldSSN:
		c.values.SSN = c.ssn.Canonical()
		c.ssn.Blur()
	case schema.FieldPhone:
		c.values.PhoneNumber = c.phone.Canonical()
		c.phone.Blur()
	}

	err := schema.ValidateField(c.values, field)
	if errors.Is(err, schema.ErrUnknownField) {
		return
	}

	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		c.errors[field] = verrs.Get(field)
		c.statuses[field] = TouchedInvalid
		return
	}
	delete(c.errors, field)
	c.statuses[field] = TouchedValid
}

// Submit re-validates the whole form and, when clean, dispatches to the
// transport exactly once. On validation failure every failing field is
// marked invalid, focus moves to the first invalid field in form order, and
// the transport is never called; the returned error carries
// validator.ValidationErrors. On transport failure, field-scoped backend
// errors merge into the inline error set and anything else becomes a single
// global error; form values are preserved either way. On success the form
// enters the confirmed state and exposes the receipt until Reset.
func (c *Coordinator) Submit(ctx context.Context) error {
	if !c.phase.CanFire(ctx, eventSubmit) {
		return ErrSubmitUnavailable
	}

	c.values.SSN = c.ssn.Canonical()
	c.values.PhoneNumber = c.phone.Canonical()
	c.globalErr = ""
	c.focus = ""

	out, err := schema.Parse(c.values)
	if err != nil {
		c.applyValidationErrors(validator.ExtractValidationErrors(err))
		return err
	}

	// All fields are now validated and touched.
	c.errors = make(map[string]string)
	for _, field := range schema.FormOrder {
		c.statuses[field] = TouchedValid
	}

	if err := c.phase.Fire(ctx, eventSubmit); err != nil {
		return fmt.Errorf("form: enter submitting state: %w", err)
	}

	receipt, err := c.submitter.Submit(ctx, payloadFrom(out))
	if err != nil {
		_ = c.phase.Fire(ctx, eventFail)
		c.applyTransportError(err)
		return err
	}

	_ = c.phase.Fire(ctx, eventSucceed)
	c.receipt = receipt
	return nil
}

// applyValidationErrors replaces the error set wholesale and recomputes
// every field's status; untouched fields that fail become TouchedInvalid.
func (c *Coordinator) applyValidationErrors(verrs validator.ValidationErrors) {
	c.errors = make(map[string]string, len(verrs))
	for _, field := range schema.FormOrder {
		ok := !verrs.Has(field)
		c.statuses[field] = touched(ok)
		if !ok {
			c.errors[field] = verrs.Get(field)
			if c.focus == "" {
				c.focus = field
			}
		}
	}
}

// applyTransportError merges field-scoped backend failures into the inline
// error display; anything else surfaces as a single global error banner.
func (c *Coordinator) applyTransportError(err error) {
	serr, ok := transport.AsStructuredError(err)
	if !ok || len(serr.Fields) == 0 {
		if ok {
			c.globalErr = serr.Message
		} else {
			c.globalErr = "submission failed, please try again"
		}
		return
	}

	for _, fe := range serr.Fields {
		c.errors[fe.Field] = fe.Message
		c.statuses[fe.Field] = TouchedInvalid
	}
	for _, field := range schema.FormOrder {
		if c.statuses[field] == TouchedInvalid {
			c.focus = field
			break
		}
	}
}

// Reset returns every field to its empty initial value, clears all error
// and touch state, discards the confirmation, and re-hides sensitive
// fields. Blocked while a submission is in flight.
func (c *Coordinator) Reset() error {
	if c.InputsDisabled() {
		return ErrResetUnavailable
	}

	c.values = schema.FormValues{}
	c.statuses = make(map[string]FieldStatus)
	c.errors = make(map[string]string)
	c.globalErr = ""
	c.focus = ""
	c.receipt = nil
	c.ssn.Reset()
	c.phone.Reset()
	c.phase.Reset()
	return nil
}

// Values returns a copy of the current form values.
func (c *Coordinator) Values() schema.FormValues {
	return c.values
}

// Status returns the touch/validity state of a field.
func (c *Coordinator) Status(field string) FieldStatus {
	return c.statuses[field]
}

// FieldError returns the inline error message for a field, or "".
func (c *Coordinator) FieldError(field string) string {
	return c.errors[field]
}

// GlobalError returns the form-global error banner text, or "".
func (c *Coordinator) GlobalError() string {
	return c.globalErr
}

// Focus returns the field path that should receive input focus after the
// last failed submit, or "".
func (c *Coordinator) Focus() string {
	return c.focus
}

// Confirmation returns the submission receipt while the form is confirmed,
// or nil.
func (c *Coordinator) Confirmation() *transport.Receipt {
	return c.receipt
}

// payloadFrom builds the wire payload from validated output. Consent is
// deliberately omitted: it is a client-side gate with no server meaning.
func payloadFrom(out schema.FormOutput) transport.Payload {
	return transport.Payload{
		FullName: out.FullName,
		Address: transport.Address{
			Street: out.Address.Street,
			City:   out.Address.City,
			State:  out.Address.State,
			Zip:    out.Address.Zip,
		},
		SSN:            out.SSN.String(),
		PhoneNumber:    out.PhoneNumber,
		DOB:            out.DOB.String(),
		DriversLicense: out.DriversLicense.String(),
	}
}
