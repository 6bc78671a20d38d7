package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/s-sucharita/Multi-Vendor-Marketplace/models"
	"github.com/s-sucharita/Multi-Vendor-Marketplace/repository"
)

// RestockRequest adds stock to a product and records the restock.
type RestockRequest struct {
	Quantity int    `json:"quantity" binding:"required,min=1"`
	Reason   string `json:"reason"`
}

// UpdateThresholdRequest changes the low-stock alert threshold.
type UpdateThresholdRequest struct {
	LowStockThreshold int `json:"low_stock_threshold" binding:"min=0"`
}

// InventoryService is the vendor-facing stock management layer. Catalog stock
// and the inventory record are updated together.
type InventoryService struct {
	inventory repository.InventoryRepository
	products  repository.ProductRepository
	tx        repository.TxManager
	notifier  *Notifier
	logger    *zap.Logger
}

func NewInventoryService(inventory repository.InventoryRepository, products repository.ProductRepository, tx repository.TxManager, notifier *Notifier, logger *zap.Logger) *InventoryService {
	return &InventoryService{inventory: inventory, products: products, tx: tx, notifier: notifier, logger: logger}
}

// GetInventory returns the vendor's inventory record for one product.
func (s *InventoryService) GetInventory(ctx context.Context, vendorID, productID uuid.UUID) (*models.Inventory, *ServiceError) {
	inv, err := s.inventory.FindByProductID(ctx, productID)
	if err != nil {
		if isNotFound(err) {
			return nil, errNotFound("Inventory record not found")
		}
		s.logger.Error("inventory fetch failed", zap.Error(err))
		return nil, errInternal("Failed to fetch inventory")
	}
	if inv.VendorID != vendorID {
		return nil, errForbidden("Access denied")
	}
	return inv, nil
}

// ListInventory returns all inventory records for a vendor.
func (s *InventoryService) ListInventory(ctx context.Context, vendorID uuid.UUID) ([]models.Inventory, *ServiceError) {
	items, err := s.inventory.FindByVendorID(ctx, vendorID)
	if err != nil {
		s.logger.Error("inventory list failed", zap.Error(err))
		return nil, errInternal("Failed to fetch inventory")
	}
	return items, nil
}

// ListLowStock returns the vendor's items at or below their threshold.
func (s *InventoryService) ListLowStock(ctx context.Context, vendorID uuid.UUID) ([]models.Inventory, *ServiceError) {
	items, err := s.inventory.FindLowStock(ctx, vendorID)
	if err != nil {
		s.logger.Error("low stock list failed", zap.Error(err))
		return nil, errInternal("Failed to fetch low stock items")
	}
	return items, nil
}

// Restock adds quantity to both the inventory record and the catalog stock,
// and appends a restock history entry.
func (s *InventoryService) Restock(ctx context.Context, vendorID, productID uuid.UUID, req *RestockRequest) (*models.Inventory, *ServiceError) {
	inv, svcErr := s.GetInventory(ctx, vendorID, productID)
	if svcErr != nil {
		return nil, svcErr
	}

	now := time.Now()
	inv.Quantity += req.Quantity
	inv.LastRestockDate = &now
	inv.RestockHistory = append(inv.RestockHistory, models.RestockEntry{
		QuantityAdded: req.Quantity,
		Date:          now,
		Reason:        req.Reason,
	})

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.inventory.Upsert(ctx, inv); err != nil {
			return err
		}
		return s.products.AdjustStock(ctx, productID, req.Quantity)
	})
	if err != nil {
		s.logger.Error("restock failed", zap.Error(err))
		return nil, errInternal("Failed to restock")
	}

	s.logger.Info("product restocked",
		zap.String("product", productID.String()),
		zap.Int("quantity", req.Quantity),
	)
	return inv, nil
}

// UpdateThreshold sets the low-stock threshold and re-derives the flag.
func (s *InventoryService) UpdateThreshold(ctx context.Context, vendorID, productID uuid.UUID, req *UpdateThresholdRequest) (*models.Inventory, *ServiceError) {
	inv, svcErr := s.GetInventory(ctx, vendorID, productID)
	if svcErr != nil {
		return nil, svcErr
	}

	inv.LowStockThreshold = req.LowStockThreshold
	if err := s.inventory.Upsert(ctx, inv); err != nil {
		s.logger.Error("threshold update failed", zap.Error(err))
		return nil, errInternal("Failed to update threshold")
	}

	if inv.IsLowStock {
		s.notifier.Notify(ctx, vendorID, models.NotificationTypeProduct,
			"Low Stock Alert", "One of your products dropped below its stock threshold",
			&productID, "Product")
	}
	return inv, nil
}
