// Package mask implements the reveal/hide display state for sensitive form
// fields (SSN, phone). Each Controller owns a field's canonical digit string
// and projects it either as the formatted clear value (Revealed) or with all
// but the last four digits obscured (Hidden).
//
// Edits are applied to the canonical digits, never parsed back out of the
// masked display text: while hidden, an insertion (typed or pasted) appends
// extracted digits and a deletion drops the last canonical digit. The masked
// projection is display-only; validation and submission always consume the
// canonical value.
package mask

import (
	"context"

	"github.com/formguard/formguard/pkg/formatter"
	"github.com/formguard/formguard/pkg/sanitizer"
	"github.com/formguard/formguard/pkg/statemachine"
)

// Display states. Hidden is initial and re-entered on every blur.
const (
	StateHidden   = statemachine.StringState("hidden")
	StateRevealed = statemachine.StringState("revealed")
)

// Events driving the display state.
const (
	EventToggle = statemachine.StringEvent("toggle")
	EventBlur   = statemachine.StringEvent("blur")
)

// visibleDigits is how many trailing digits stay readable while hidden.
const visibleDigits = 4

// Controller holds one sensitive field's canonical digits and its
// hidden/revealed display state. Not safe for concurrent use; it is driven
// by serial UI events like the rest of the form state.
type Controller struct {
	digits string
	max    int
	format func(string) string
	sm     *statemachine.SimpleStateMachine
}

// New creates a controller for a field holding up to max digits, rendered
// through format. The field starts hidden and empty.
func New(max int, format func(string) string) *Controller {
	return &Controller{
		max:    max,
		format: format,
		sm: statemachine.MustNew(StateHidden,
			// Toggle flips unconditionally; blur forces hidden from
			// either state, so a Hidden->Hidden self-loop is explicit.
			statemachine.WithTransition(StateHidden, StateRevealed, EventToggle, nil, nil),
			statemachine.WithTransition(StateRevealed, StateHidden, EventToggle, nil, nil),
			statemachine.WithTransition(StateRevealed, StateHidden, EventBlur, nil, nil),
			statemachine.WithTransition(StateHidden, StateHidden, EventBlur, nil, nil),
		),
	}
}

// NewSSN creates a controller for a Social Security Number field.
func NewSSN() *Controller {
	return New(formatter.SSNDigits, formatter.SSN)
}

// NewPhone creates a controller for a phone number field.
func NewPhone() *Controller {
	return New(formatter.PhoneDigits, formatter.Phone)
}

// Revealed reports whether the clear value is currently displayed.
func (c *Controller) Revealed() bool {
	return c.sm.Current() == StateRevealed
}

// Toggle flips between hidden and revealed.
func (c *Controller) Toggle() {
	// Both states define the toggle transition, so this cannot fail.
	_ = c.sm.Fire(context.Background(), EventToggle)
}

// Blur forces the hidden state regardless of the prior toggle state.
func (c *Controller) Blur() {
	_ = c.sm.Fire(context.Background(), EventBlur)
}

// InsertDigits appends the digit characters found in s to the canonical
// value, up to the field's capacity. Both typed input and paste while hidden
// route through here, so masked placeholder characters are never parsed as
// literal digits.
func (c *Controller) InsertDigits(s string) {
	room := c.max - len(c.digits)
	if room <= 0 {
		return
	}
	c.digits += formatter.Digits(s, room)
}

// DeleteDigit removes the last canonical digit. No-op when empty.
func (c *Controller) DeleteDigit() {
	if len(c.digits) > 0 {
		c.digits = c.digits[:len(c.digits)-1]
	}
}

// SetRaw replaces the canonical value wholesale from raw input. This is the
// revealed-mode edit path, where the user edits the full clear value.
func (c *Controller) SetRaw(s string) {
	c.digits = formatter.Digits(s, c.max)
}

// Canonical returns the formatted clear value. This is always what
// validation and submission consume.
func (c *Controller) Canonical() string {
	return c.format(c.digits)
}

// Display returns the current projection: the formatted clear value when
// revealed, otherwise the masked rendering with separators preserved.
func (c *Controller) Display() string {
	if c.Revealed() {
		return c.Canonical()
	}
	return sanitizer.MaskDigits(c.Canonical(), visibleDigits)
}

// Reset discards the canonical digits and returns to the hidden state.
func (c *Controller) Reset() {
	c.digits = ""
	c.sm.Reset()
}
