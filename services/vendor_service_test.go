package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s-sucharita/Multi-Vendor-Marketplace/models"
)

type vendorFixture struct {
	svc           *VendorService
	returns       *mockReturnRepo
	disputes      *mockDisputeRepo
	messages      *mockVendorMessageRepo
	leaves        *mockLeaveRepo
	orders        *mockOrderRepo
	products      *mockProductRepo
	notifications *mockNotificationRepo
}

func newVendorFixture() *vendorFixture {
	f := &vendorFixture{
		returns:       newMockReturnRepo(),
		disputes:      newMockDisputeRepo(),
		messages:      newMockVendorMessageRepo(),
		leaves:        newMockLeaveRepo(),
		orders:        newMockOrderRepo(),
		products:      newMockProductRepo(),
		notifications: newMockNotificationRepo(),
	}
	f.svc = NewVendorService(
		f.returns, f.disputes, f.messages, f.leaves, f.orders,
		f.products, &mockTxManager{products: f.products},
		testNotifier(f.notifications, nil),
		testLogger(),
	)
	return f
}

// seedReturn places a delivered order and opens a pending return for two
// units of its single line item.
func (f *vendorFixture) seedReturn(t *testing.T, customerID, vendorID uuid.UUID, stock int) (*models.Product, *models.ReturnRequest) {
	t.Helper()
	p := &models.Product{Name: "Lamp", Price: 30, Stock: stock, VendorID: vendorID}
	require.NoError(t, f.products.Create(context.Background(), p))

	order := &models.Order{
		CustomerID: customerID,
		Status:     models.OrderStatusDelivered,
		Items: []models.OrderItem{
			{ProductID: p.ID, VendorID: vendorID, Quantity: 3, Price: 30},
		},
	}
	require.NoError(t, f.orders.Create(context.Background(), order))

	ret, svcErr := f.svc.CreateReturn(context.Background(), customerID, &CreateReturnRequest{
		OrderID:   order.ID,
		ProductID: p.ID,
		Quantity:  2,
		Reason:    "damaged",
	})
	require.Nil(t, svcErr)
	return p, ret
}

func TestResolveReturn_ApprovalRestocks(t *testing.T) {
	f := newVendorFixture()
	customerID := uuid.New()
	vendorID := uuid.New()
	p, ret := f.seedReturn(t, customerID, vendorID, 5)

	updated, svcErr := f.svc.ResolveReturn(context.Background(), vendorID, ret.ID, &ResolveReturnRequest{
		Status: models.ReturnStatusApproved,
	})
	require.Nil(t, svcErr)
	assert.Equal(t, models.ReturnStatusApproved, updated.Status)
	assert.Equal(t, 7, f.products.stock(p.ID))
}

func TestResolveReturn_RepeatedApprovalDoesNotDoubleRestock(t *testing.T) {
	f := newVendorFixture()
	customerID := uuid.New()
	vendorID := uuid.New()
	p, ret := f.seedReturn(t, customerID, vendorID, 5)

	_, svcErr := f.svc.ResolveReturn(context.Background(), vendorID, ret.ID, &ResolveReturnRequest{
		Status: models.ReturnStatusApproved,
	})
	require.Nil(t, svcErr)
	_, svcErr = f.svc.ResolveReturn(context.Background(), vendorID, ret.ID, &ResolveReturnRequest{
		Status: models.ReturnStatusApproved,
	})
	require.Nil(t, svcErr)

	assert.Equal(t, 7, f.products.stock(p.ID))
}

func TestResolveReturn_RejectionLeavesStockAlone(t *testing.T) {
	f := newVendorFixture()
	customerID := uuid.New()
	vendorID := uuid.New()
	p, ret := f.seedReturn(t, customerID, vendorID, 5)

	updated, svcErr := f.svc.ResolveReturn(context.Background(), vendorID, ret.ID, &ResolveReturnRequest{
		Status:     models.ReturnStatusRejected,
		VendorNote: "outside the return window",
	})
	require.Nil(t, svcErr)
	assert.Equal(t, models.ReturnStatusRejected, updated.Status)
	assert.Equal(t, 5, f.products.stock(p.ID))
}

func TestResolveReturn_OtherVendorDenied(t *testing.T) {
	f := newVendorFixture()
	customerID := uuid.New()
	vendorID := uuid.New()
	_, ret := f.seedReturn(t, customerID, vendorID, 5)

	_, svcErr := f.svc.ResolveReturn(context.Background(), uuid.New(), ret.ID, &ResolveReturnRequest{
		Status: models.ReturnStatusApproved,
	})
	require.NotNil(t, svcErr)
	assert.Equal(t, http.StatusForbidden, svcErr.StatusCode)
}

func TestResolveReturn_CustomerIsNotified(t *testing.T) {
	f := newVendorFixture()
	customerID := uuid.New()
	vendorID := uuid.New()
	_, ret := f.seedReturn(t, customerID, vendorID, 5)

	_, svcErr := f.svc.ResolveReturn(context.Background(), vendorID, ret.ID, &ResolveReturnRequest{
		Status: models.ReturnStatusApproved,
	})
	require.Nil(t, svcErr)
	assert.NotEmpty(t, f.notifications.forRecipient(customerID))
}
