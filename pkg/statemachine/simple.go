package statemachine

import (
	"context"
	"fmt"
)

// SimpleStateMachine is an in-memory state machine. It is designed for
// single-goroutine event-driven callers; transitions execute synchronously
// in the caller's goroutine.
//
// Transition lookup is O(1) through a nested map: [fromState][event].
type SimpleStateMachine struct {
	initialState State
	currentState State
	transitions  map[string]map[string][]Transition
}

// Option configures a state machine during construction.
type Option func(*SimpleStateMachine) error

// New creates a state machine starting in initialState.
func New(initialState State, opts ...Option) (*SimpleStateMachine, error) {
	if initialState == nil {
		return nil, ErrInvalidTransition
	}

	sm := &SimpleStateMachine{
		initialState: initialState,
		currentState: initialState,
		transitions:  make(map[string]map[string][]Transition),
	}

	for _, opt := range opts {
		if err := opt(sm); err != nil {
			return nil, err
		}
	}

	return sm, nil
}

// MustNew is like New but panics on configuration errors, enforcing
// fail-fast initialization for statically defined machines.
func MustNew(initialState State, opts ...Option) *SimpleStateMachine {
	sm, err := New(initialState, opts...)
	if err != nil {
		panic(fmt.Sprintf("statemachine: %v", err))
	}
	return sm
}

// WithTransition registers a transition from->to on event.
func WithTransition(from, to State, event Event, guards []Guard, actions []Action) Option {
	return func(sm *SimpleStateMachine) error {
		return sm.addTransition(from, to, event, guards, actions)
	}
}

func (sm *SimpleStateMachine) addTransition(from, to State, event Event, guards []Guard, actions []Action) error {
	if from == nil || to == nil || event == nil {
		return ErrInvalidTransition
	}

	fromName := from.Name()
	eventName := event.Name()

	if _, ok := sm.transitions[fromName]; !ok {
		sm.transitions[fromName] = make(map[string][]Transition)
	}

	// Multiple transitions per from/event pair allow guard-based branching.
	sm.transitions[fromName][eventName] = append(sm.transitions[fromName][eventName], Transition{
		From:    from,
		To:      to,
		Event:   event,
		Guards:  guards,
		Actions: actions,
	})
	return nil
}

// Current returns the current state.
func (sm *SimpleStateMachine) Current() State {
	return sm.currentState
}

// Fire triggers event, executing the first matching transition whose guards
// all pass. Actions run before the state change; an action error aborts it.
func (sm *SimpleStateMachine) Fire(ctx context.Context, event Event) error {
	if event == nil {
		return ErrInvalidEvent
	}

	t := sm.match(ctx, event)
	if t == nil {
		return NewErrNoTransitionAvailable(sm.currentState.Name(), event.Name())
	}

	for _, action := range t.Actions {
		if action == nil {
			continue
		}
		if err := action(ctx, sm.currentState, t.To, event); err != nil {
			return fmt.Errorf("transition action: %w", err)
		}
	}

	sm.currentState = t.To
	return nil
}

// CanFire reports whether firing event from the current state would succeed
// guard evaluation.
func (sm *SimpleStateMachine) CanFire(ctx context.Context, event Event) bool {
	if event == nil {
		return false
	}
	return sm.match(ctx, event) != nil
}

// Reset returns the machine to its initial state.
func (sm *SimpleStateMachine) Reset() {
	sm.currentState = sm.initialState
}

// match returns the first transition for event whose guards all pass, or nil.
func (sm *SimpleStateMachine) match(ctx context.Context, event Event) *Transition {
	byEvent, ok := sm.transitions[sm.currentState.Name()]
	if !ok {
		return nil
	}

	candidates := byEvent[event.Name()]
	for i := range candidates {
		t := &candidates[i]
		passed := true
		for _, guard := range t.Guards {
			if guard != nil && !guard(ctx, sm.currentState, event) {
				passed = false
				break
			}
		}
		if passed {
			return t
		}
	}
	return nil
}
