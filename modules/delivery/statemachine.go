package delivery

import (
	"context"
	"errors"

	"github.com/piggyparcel/backend/pkg/statemachine"
)

// Legal status transitions. Each event is named after the target status.
var transitions = []statemachine.Transition{
	{From: statemachine.State(StatusPending), To: statemachine.State(StatusAccepted), Event: statemachine.Event(StatusAccepted)},
	{From: statemachine.State(StatusPending), To: statemachine.State(StatusCancelled), Event: statemachine.Event(StatusCancelled)},
	{From: statemachine.State(StatusAccepted), To: statemachine.State(StatusPickedUp), Event: statemachine.Event(StatusPickedUp)},
	{From: statemachine.State(StatusAccepted), To: statemachine.State(StatusCancelled), Event: statemachine.Event(StatusCancelled)},
	{From: statemachine.State(StatusPickedUp), To: statemachine.State(StatusInTransit), Event: statemachine.Event(StatusInTransit)},
	{From: statemachine.State(StatusInTransit), To: statemachine.State(StatusDelivered), Event: statemachine.Event(StatusDelivered)},
}

// newStatusMachine builds a machine positioned at the given status.
func newStatusMachine(current Status) *statemachine.Machine {
	m := statemachine.New(statemachine.State(StatusPending))
	for _, t := range transitions {
		// Transitions are static and well formed.
		_ = m.AddTransition(t)
	}
	m.SetCurrent(statemachine.State(current))
	return m
}

// CanTransition reports whether moving from one status to another is legal.
func CanTransition(from, to Status) bool {
	return newStatusMachine(from).CanFire(context.Background(), statemachine.Event(to), nil)
}

// transition validates and applies a status change, returning
// ErrIllegalTransition when the edge does not exist.
func transition(ctx context.Context, from, to Status) error {
	m := newStatusMachine(from)
	if err := m.Fire(ctx, statemachine.Event(to), nil); err != nil {
		if statemachine.IsNoTransition(err) || statemachine.IsRejected(err) {
			return errors.Join(ErrIllegalTransition, err)
		}
		return err
	}
	return nil
}
