package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		allowed  bool
	}{
		{OrderStatusPending, OrderStatusProcessing, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusProcessing, OrderStatusShipped, true},
		{OrderStatusProcessing, OrderStatusCancelled, true},
		{OrderStatusShipped, OrderStatusDelivered, true},

		{OrderStatusShipped, OrderStatusProcessing, false},
		{OrderStatusShipped, OrderStatusCancelled, false},
		{OrderStatusDelivered, OrderStatusShipped, false},
		{OrderStatusDelivered, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusProcessing, false},
		{OrderStatusRefunded, OrderStatusPending, false},
		{OrderStatusPending, OrderStatusShipped, false},
		{OrderStatusPending, OrderStatusDelivered, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, CanTransition(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestIsCancellable(t *testing.T) {
	assert.True(t, IsCancellable(OrderStatusPending))
	assert.True(t, IsCancellable(OrderStatusProcessing))
	assert.False(t, IsCancellable(OrderStatusShipped))
	assert.False(t, IsCancellable(OrderStatusDelivered))
	assert.False(t, IsCancellable(OrderStatusCancelled))
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []string{
		OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded,
	} {
		assert.True(t, ValidOrderStatus(s), s)
	}
	assert.False(t, ValidOrderStatus("Lost"))
	assert.False(t, ValidOrderStatus(""))
}

func TestVendorView(t *testing.T) {
	vendorA := uuid.New()
	vendorB := uuid.New()
	order := Order{
		Items: []OrderItem{
			{VendorID: vendorA, Quantity: 1},
			{VendorID: vendorB, Quantity: 2},
			{VendorID: vendorA, Quantity: 3},
		},
	}

	view := order.VendorView(vendorA)
	assert.Len(t, view.Items, 2)
	for _, it := range view.Items {
		assert.Equal(t, vendorA, it.VendorID)
	}

	// original untouched
	assert.Len(t, order.Items, 3)
	assert.True(t, order.HasVendor(vendorB))
	assert.False(t, order.HasVendor(uuid.New()))
}
