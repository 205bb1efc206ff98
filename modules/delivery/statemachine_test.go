package delivery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/piggyparcel/backend/modules/delivery"
)

func TestCanTransition(t *testing.T) {
	t.Parallel()

	legal := []struct{ from, to delivery.Status }{
		{delivery.StatusPending, delivery.StatusAccepted},
		{delivery.StatusPending, delivery.StatusCancelled},
		{delivery.StatusAccepted, delivery.StatusPickedUp},
		{delivery.StatusAccepted, delivery.StatusCancelled},
		{delivery.StatusPickedUp, delivery.StatusInTransit},
		{delivery.StatusInTransit, delivery.StatusDelivered},
	}
	for _, tc := range legal {
		assert.True(t, delivery.CanTransition(tc.from, tc.to),
			"%s -> %s should be legal", tc.from, tc.to)
	}

	illegal := []struct{ from, to delivery.Status }{
		{delivery.StatusPending, delivery.StatusDelivered},
		{delivery.StatusPending, delivery.StatusInTransit},
		{delivery.StatusDelivered, delivery.StatusPending},
		{delivery.StatusCancelled, delivery.StatusAccepted},
		{delivery.StatusInTransit, delivery.StatusCancelled},
		{delivery.StatusDelivered, delivery.StatusDelivered},
	}
	for _, tc := range illegal {
		assert.False(t, delivery.CanTransition(tc.from, tc.to),
			"%s -> %s should be illegal", tc.from, tc.to)
	}
}
