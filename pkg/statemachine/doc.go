// Package statemachine provides a small finite state machine engine with
// guard and action support.
//
// Machines are declared up front via functional options and driven by
// discrete events:
//
//	sm := statemachine.MustNew(hidden,
//	    statemachine.WithTransition(hidden, revealed, toggle, nil, nil),
//	    statemachine.WithTransition(revealed, hidden, toggle, nil, nil),
//	)
//	_ = sm.Fire(ctx, toggle)
//
// The engine is intentionally synchronous and single-goroutine: it backs
// UI-style per-field state (mask reveal, form lifecycle) where all events
// arrive serially.
package statemachine
