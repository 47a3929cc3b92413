package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionFromNonTerminal(t *testing.T) {
	nonTerminal := []OrderStatus{StatusPending, StatusAccepted, StatusProcessing, StatusOutForDelivery}
	for _, from := range nonTerminal {
		for _, to := range OrderStatuses {
			if from == to {
				assert.False(t, CanTransition(from, to), "%s -> %s should be a no-op rejection", from, to)
				continue
			}
			assert.True(t, CanTransition(from, to), "%s -> %s should be permitted", from, to)
		}
	}
}

func TestCanTransitionTerminalStatesAreFinal(t *testing.T) {
	for _, from := range []OrderStatus{StatusCompleted, StatusCancelled} {
		for _, to := range OrderStatuses {
			assert.False(t, CanTransition(from, to), "%s -> %s should be rejected", from, to)
		}
	}
}

func TestParseOrderStatus(t *testing.T) {
	st, ok := ParseOrderStatus("Out For Delivery")
	assert.True(t, ok)
	assert.Equal(t, StatusOutForDelivery, st)

	_, ok = ParseOrderStatus("Shipped")
	assert.False(t, ok)
}

func TestOrderCancellable(t *testing.T) {
	assert.True(t, Order{Status: StatusPending}.Cancellable())
	for _, st := range []OrderStatus{StatusAccepted, StatusProcessing, StatusOutForDelivery, StatusCompleted, StatusCancelled} {
		assert.False(t, Order{Status: st}.Cancellable(), "status %s", st)
	}
}
