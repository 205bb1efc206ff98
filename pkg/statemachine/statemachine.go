// Package statemachine provides a small in-memory finite state machine used
// for delivery status transitions and the super-admin bootstrap.
package statemachine

import (
	"context"
	"sync"
)

// State is a named state.
type State string

// Event is a named trigger for a transition.
type Event string

// Action runs side effects during a transition. Returning an error aborts
// the transition and leaves the machine in its previous state.
type Action func(ctx context.Context, from, to State, event Event, data any) error

// Guard decides whether a transition is allowed for the given data.
type Guard func(ctx context.Context, from State, event Event, data any) bool

// Transition is a single edge of the machine.
type Transition struct {
	From    State
	To      State
	Event   Event
	Guards  []Guard
	Actions []Action
}

// Machine is a thread-safe finite state machine. Transitions are looked up
// by [from][event]; multiple transitions per pair support guard branching.
type Machine struct {
	mu          sync.RWMutex
	initial     State
	current     State
	transitions map[State]map[Event][]Transition
}

// New creates a Machine in the given initial state.
func New(initial State) *Machine {
	return &Machine{
		initial:     initial,
		current:     initial,
		transitions: make(map[State]map[Event][]Transition),
	}
}

// Current returns the machine's current state.
func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// AddTransition registers an edge. Empty states or events are rejected.
func (m *Machine) AddTransition(t Transition) error {
	if t.From == "" || t.To == "" || t.Event == "" {
		return ErrInvalidTransition
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.transitions[t.From]; !ok {
		m.transitions[t.From] = make(map[Event][]Transition)
	}
	m.transitions[t.From][t.Event] = append(m.transitions[t.From][t.Event], t)
	return nil
}

// Fire applies the first transition for the current state and event whose
// guards all pass, running its actions before the state change.
func (m *Machine) Fire(ctx context.Context, event Event, data any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	candidates, ok := m.transitions[m.current][event]
	if !ok || len(candidates) == 0 {
		return &NoTransitionError{State: m.current, Event: event}
	}

	for _, t := range candidates {
		if !guardsPass(ctx, t, data) {
			continue
		}
		for _, action := range t.Actions {
			if err := action(ctx, t.From, t.To, event, data); err != nil {
				return err
			}
		}
		m.current = t.To
		return nil
	}

	return &TransitionRejectedError{State: m.current, Event: event}
}

// CanFire reports whether Fire would find an eligible transition, without
// running actions or changing state.
func (m *Machine) CanFire(ctx context.Context, event Event, data any) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, t := range m.transitions[m.current][event] {
		if guardsPass(ctx, t, data) {
			return true
		}
	}
	return false
}

// Reset returns the machine to its initial state.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.initial
}

// SetCurrent positions the machine at an arbitrary state, for machines
// rehydrated from persisted status values.
func (m *Machine) SetCurrent(s State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = s
}

func guardsPass(ctx context.Context, t Transition, data any) bool {
	for _, g := range t.Guards {
		if !g(ctx, t.From, t.Event, data) {
			return false
		}
	}
	return true
}
