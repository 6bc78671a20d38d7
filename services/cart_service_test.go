package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s-sucharita/Multi-Vendor-Marketplace/models"
)

func newCartFixture() (*CartService, *mockProductRepo, *mockCartRepo) {
	products := newMockProductRepo()
	carts := newMockCartRepo()
	return NewCartService(carts, products, testLogger()), products, carts
}

func TestCartAddItem_SnapshotsPriceAndRecomputesTotal(t *testing.T) {
	svc, products, _ := newCartFixture()
	userID := uuid.New()
	p := &models.Product{Name: "Pen", Price: 2.50, Stock: 100, VendorID: uuid.New()}
	require.NoError(t, products.Create(context.Background(), p))

	cart, svcErr := svc.AddItem(context.Background(), userID, &AddToCartRequest{ProductID: p.ID, Quantity: 4})
	require.Nil(t, svcErr)
	require.Len(t, cart.Items, 1)
	assert.InDelta(t, 10.00, cart.TotalPrice, 0.001)
	assert.Equal(t, p.VendorID.String(), cart.Items[0].VendorID)
}

func TestCartAddItem_MergesExistingLine(t *testing.T) {
	svc, products, _ := newCartFixture()
	userID := uuid.New()
	p := &models.Product{Name: "Pencil", Price: 1.00, Stock: 10, VendorID: uuid.New()}
	require.NoError(t, products.Create(context.Background(), p))

	_, svcErr := svc.AddItem(context.Background(), userID, &AddToCartRequest{ProductID: p.ID, Quantity: 2})
	require.Nil(t, svcErr)
	cart, svcErr := svc.AddItem(context.Background(), userID, &AddToCartRequest{ProductID: p.ID, Quantity: 3})
	require.Nil(t, svcErr)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.InDelta(t, 5.00, cart.TotalPrice, 0.001)
}

func TestCartAddItem_RejectsBeyondStock(t *testing.T) {
	svc, products, _ := newCartFixture()
	userID := uuid.New()
	p := &models.Product{Name: "Limited", Price: 9.99, Stock: 3, VendorID: uuid.New()}
	require.NoError(t, products.Create(context.Background(), p))

	_, svcErr := svc.AddItem(context.Background(), userID, &AddToCartRequest{ProductID: p.ID, Quantity: 2})
	require.Nil(t, svcErr)

	// merged quantity would exceed stock
	_, svcErr = svc.AddItem(context.Background(), userID, &AddToCartRequest{ProductID: p.ID, Quantity: 2})
	require.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
}

func TestCartUpdateItem_ZeroRemovesLine(t *testing.T) {
	svc, products, _ := newCartFixture()
	userID := uuid.New()
	p := &models.Product{Name: "Eraser", Price: 0.50, Stock: 10, VendorID: uuid.New()}
	require.NoError(t, products.Create(context.Background(), p))

	_, svcErr := svc.AddItem(context.Background(), userID, &AddToCartRequest{ProductID: p.ID, Quantity: 2})
	require.Nil(t, svcErr)

	cart, svcErr := svc.UpdateItem(context.Background(), userID, p.ID, &UpdateCartItemRequest{Quantity: 0})
	require.Nil(t, svcErr)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.TotalPrice)
}

func TestCartUpdateItem_MissingLine(t *testing.T) {
	svc, _, _ := newCartFixture()

	_, svcErr := svc.UpdateItem(context.Background(), uuid.New(), uuid.New(), &UpdateCartItemRequest{Quantity: 1})
	require.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
}

func TestCartRemoveItem_RecomputesTotal(t *testing.T) {
	svc, products, _ := newCartFixture()
	userID := uuid.New()
	p1 := &models.Product{Name: "Tape", Price: 3.00, Stock: 10, VendorID: uuid.New()}
	p2 := &models.Product{Name: "Glue", Price: 4.00, Stock: 10, VendorID: uuid.New()}
	require.NoError(t, products.Create(context.Background(), p1))
	require.NoError(t, products.Create(context.Background(), p2))

	_, svcErr := svc.AddItem(context.Background(), userID, &AddToCartRequest{ProductID: p1.ID, Quantity: 1})
	require.Nil(t, svcErr)
	_, svcErr = svc.AddItem(context.Background(), userID, &AddToCartRequest{ProductID: p2.ID, Quantity: 2})
	require.Nil(t, svcErr)

	cart, svcErr := svc.RemoveItem(context.Background(), userID, p2.ID)
	require.Nil(t, svcErr)
	require.Len(t, cart.Items, 1)
	assert.InDelta(t, 3.00, cart.TotalPrice, 0.001)
}

func TestCartGetCart_EmptyForNewUser(t *testing.T) {
	svc, _, _ := newCartFixture()

	cart, svcErr := svc.GetCart(context.Background(), uuid.New())
	require.Nil(t, svcErr)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.TotalPrice)
}

func TestCartClearCart(t *testing.T) {
	svc, products, carts := newCartFixture()
	userID := uuid.New()
	p := &models.Product{Name: "Stapler", Price: 8.00, Stock: 10, VendorID: uuid.New()}
	require.NoError(t, products.Create(context.Background(), p))

	_, svcErr := svc.AddItem(context.Background(), userID, &AddToCartRequest{ProductID: p.ID, Quantity: 1})
	require.Nil(t, svcErr)

	require.Nil(t, svc.ClearCart(context.Background(), userID))
	stored, err := carts.GetCart(context.Background(), userID.String())
	require.NoError(t, err)
	assert.Nil(t, stored)
}
