package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/s-sucharita/Multi-Vendor-Marketplace/models"
)

// InventoryRepository defines data-access operations for vendor inventory.
type InventoryRepository interface {
	Upsert(ctx context.Context, inv *models.Inventory) error
	FindByProductID(ctx context.Context, productID uuid.UUID) (*models.Inventory, error)
	FindByVendorID(ctx context.Context, vendorID uuid.UUID) ([]models.Inventory, error)
	FindLowStock(ctx context.Context, vendorID uuid.UUID) ([]models.Inventory, error)
	DeleteByProductID(ctx context.Context, productID uuid.UUID) error
}

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db *gorm.DB
}

func NewGormInventoryRepository(db *gorm.DB) InventoryRepository {
	return &GormInventoryRepository{db: db}
}

func (r *GormInventoryRepository) Upsert(ctx context.Context, inv *models.Inventory) error {
	inv.Recalculate()
	return dbFrom(ctx, r.db).Save(inv).Error
}

func (r *GormInventoryRepository) FindByProductID(ctx context.Context, productID uuid.UUID) (*models.Inventory, error) {
	var inv models.Inventory
	if err := dbFrom(ctx, r.db).Where("product_id = ?", productID).First(&inv).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *GormInventoryRepository) FindByVendorID(ctx context.Context, vendorID uuid.UUID) ([]models.Inventory, error) {
	var items []models.Inventory
	if err := dbFrom(ctx, r.db).
		Where("vendor_id = ?", vendorID).
		Order("updated_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormInventoryRepository) FindLowStock(ctx context.Context, vendorID uuid.UUID) ([]models.Inventory, error) {
	var items []models.Inventory
	if err := dbFrom(ctx, r.db).
		Where("vendor_id = ? AND is_low_stock = true", vendorID).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormInventoryRepository) DeleteByProductID(ctx context.Context, productID uuid.UUID) error {
	return dbFrom(ctx, r.db).
		Where("product_id = ?", productID).
		Delete(&models.Inventory{}).Error
}
