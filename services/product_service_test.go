package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s-sucharita/Multi-Vendor-Marketplace/models"
)

func newProductFixture() (*ProductService, *mockProductRepo, *mockInventoryRepo) {
	products := newMockProductRepo()
	inventory := newMockInventoryRepo()
	svc := NewProductService(products, inventory, &mockTxManager{products: products}, testLogger())
	return svc, products, inventory
}

func TestCreateProduct_CreatesInventoryRecord(t *testing.T) {
	svc, _, inventory := newProductFixture()
	vendorID := uuid.New()

	product, svcErr := svc.CreateProduct(context.Background(), vendorID, &CreateProductRequest{
		Name: "Mug", Price: 7.50, Stock: 20, Category: "kitchen",
	})
	require.Nil(t, svcErr)

	inv, err := inventory.FindByProductID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, inv.Quantity)
	assert.Equal(t, vendorID, inv.VendorID)
}

func TestCreateProduct_LowStockFlagUsesDefaultThreshold(t *testing.T) {
	svc, _, inventory := newProductFixture()

	product, svcErr := svc.CreateProduct(context.Background(), uuid.New(), &CreateProductRequest{
		Name: "Coaster", Price: 3.25, Stock: models.DefaultLowStockThreshold, Category: "kitchen",
	})
	require.Nil(t, svcErr)

	inv, err := inventory.FindByProductID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultLowStockThreshold, inv.LowStockThreshold)
	assert.True(t, inv.IsLowStock)
}

func TestUpdateProduct_OwnershipEnforced(t *testing.T) {
	svc, _, _ := newProductFixture()
	vendorID := uuid.New()

	product, svcErr := svc.CreateProduct(context.Background(), vendorID, &CreateProductRequest{
		Name: "Plate", Price: 4, Stock: 5, Category: "kitchen",
	})
	require.Nil(t, svcErr)

	name := "Renamed"
	_, svcErr = svc.UpdateProduct(context.Background(), uuid.New(), models.RoleVendor, product.ID,
		&UpdateProductRequest{Name: &name})
	require.NotNil(t, svcErr)
	assert.Equal(t, 403, svcErr.StatusCode)

	// admin may edit anyone's listing
	updated, svcErr := svc.UpdateProduct(context.Background(), uuid.New(), models.RoleAdmin, product.ID,
		&UpdateProductRequest{Name: &name})
	require.Nil(t, svcErr)
	assert.Equal(t, "Renamed", updated.Name)
}

func TestUpdateProduct_StockSyncsInventory(t *testing.T) {
	svc, _, inventory := newProductFixture()
	vendorID := uuid.New()

	product, svcErr := svc.CreateProduct(context.Background(), vendorID, &CreateProductRequest{
		Name: "Bowl", Price: 6, Stock: 5, Category: "kitchen",
	})
	require.Nil(t, svcErr)

	stock := 42
	_, svcErr = svc.UpdateProduct(context.Background(), vendorID, models.RoleVendor, product.ID,
		&UpdateProductRequest{Stock: &stock})
	require.Nil(t, svcErr)

	inv, err := inventory.FindByProductID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, 42, inv.Quantity)
}

func TestUpdateProduct_RejectsInvalidPrice(t *testing.T) {
	svc, _, _ := newProductFixture()
	vendorID := uuid.New()

	product, svcErr := svc.CreateProduct(context.Background(), vendorID, &CreateProductRequest{
		Name: "Fork", Price: 2, Stock: 5, Category: "kitchen",
	})
	require.Nil(t, svcErr)

	bad := 0.0
	_, svcErr = svc.UpdateProduct(context.Background(), vendorID, models.RoleVendor, product.ID,
		&UpdateProductRequest{Price: &bad})
	require.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
}

func TestDeleteProduct_CascadesToInventory(t *testing.T) {
	svc, products, inventory := newProductFixture()
	vendorID := uuid.New()

	product, svcErr := svc.CreateProduct(context.Background(), vendorID, &CreateProductRequest{
		Name: "Spoon", Price: 1, Stock: 5, Category: "kitchen",
	})
	require.Nil(t, svcErr)

	require.Nil(t, svc.DeleteProduct(context.Background(), vendorID, models.RoleVendor, product.ID))

	_, err := products.FindByID(context.Background(), product.ID)
	assert.Error(t, err)
	_, err = inventory.FindByProductID(context.Background(), product.ID)
	assert.Error(t, err)
}

func TestDeleteProduct_OtherVendorDenied(t *testing.T) {
	svc, _, _ := newProductFixture()

	product, svcErr := svc.CreateProduct(context.Background(), uuid.New(), &CreateProductRequest{
		Name: "Knife", Price: 3, Stock: 5, Category: "kitchen",
	})
	require.Nil(t, svcErr)

	svcErr = svc.DeleteProduct(context.Background(), uuid.New(), models.RoleVendor, product.ID)
	require.NotNil(t, svcErr)
	assert.Equal(t, 403, svcErr.StatusCode)
}
