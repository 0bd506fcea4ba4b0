package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidOrderTransition(t *testing.T) {
	assert.True(t, ValidOrderTransition(OrderStatusPending, OrderStatusFulfilled))
	assert.True(t, ValidOrderTransition(OrderStatusPending, OrderStatusCancelled))

	// Fulfilled and cancelled are terminal states.
	assert.False(t, ValidOrderTransition(OrderStatusFulfilled, OrderStatusCancelled))
	assert.False(t, ValidOrderTransition(OrderStatusCancelled, OrderStatusPending))
	assert.False(t, ValidOrderTransition(OrderStatusFulfilled, OrderStatusPending))

	// Self transitions and unknown statuses are rejected too.
	assert.False(t, ValidOrderTransition(OrderStatusPending, OrderStatusPending))
	assert.False(t, ValidOrderTransition(OrderStatusPending, "shipped"))
}

func TestValidPaymentMode(t *testing.T) {
	for _, mode := range []string{"COD", "UPI", "Card"} {
		assert.True(t, ValidPaymentMode(mode))
	}
	assert.False(t, ValidPaymentMode("cod"))
	assert.False(t, ValidPaymentMode("Bitcoin"))
	assert.False(t, ValidPaymentMode(""))
}
