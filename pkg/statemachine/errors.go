package statemachine

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition reports a transition with an empty state or event.
var ErrInvalidTransition = errors.New("invalid transition: from, to, and event must be set")

// NoTransitionError indicates no edge exists for the state/event pair.
type NoTransitionError struct {
	State State
	Event Event
}

func (e *NoTransitionError) Error() string {
	return fmt.Sprintf("no transition available from state %q for event %q", e.State, e.Event)
}

// TransitionRejectedError indicates every candidate edge was blocked by guards.
type TransitionRejectedError struct {
	State State
	Event Event
}

func (e *TransitionRejectedError) Error() string {
	return fmt.Sprintf("transition from state %q for event %q was rejected by guards", e.State, e.Event)
}

// IsNoTransition reports whether err means the state/event pair has no edge.
func IsNoTransition(err error) bool {
	var e *NoTransitionError
	return errors.As(err, &e)
}

// IsRejected reports whether err means guards blocked every candidate edge.
func IsRejected(err error) bool {
	var e *TransitionRejectedError
	return errors.As(err, &e)
}
