package statemachine

import "context"

// State represents a state in the machine.
type State interface {
	Name() string
}

// Event represents an event that can trigger a transition.
type Event interface {
	Name() string
}

// Guard evaluates whether a transition should be allowed.
type Guard func(ctx context.Context, from State, event Event) bool

// Action executes side effects during a transition. Returning an error
// prevents the state change.
type Action func(ctx context.Context, from, to State, event Event) error

// Transition defines a state change triggered by an event.
type Transition struct {
	From    State
	To      State
	Event   Event
	Guards  []Guard
	Actions []Action
}

// StateMachine defines the core finite state machine operations.
type StateMachine interface {
	Current() State
	Fire(ctx context.Context, event Event) error
	CanFire(ctx context.Context, event Event) bool
	Reset()
}

// StringState is a simple string-based State implementation.
type StringState string

func (s StringState) Name() string { return string(s) }

// StringEvent is a simple string-based Event implementation.
type StringEvent string

func (e StringEvent) Name() string { return string(e) }
