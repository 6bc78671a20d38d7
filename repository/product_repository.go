package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/s-sucharita/Multi-Vendor-Marketplace/models"
)

// ErrInsufficientStock is returned by AdjustStock when the conditional
// decrement matches no row.
var ErrInsufficientStock = errors.New("insufficient stock")

// ProductFilter narrows and orders catalog listings.
type ProductFilter struct {
	Search   string
	Category string
	VendorID *uuid.UUID
	MinPrice *float64
	MaxPrice *float64
	SortBy   string
}

// ProductRepository defines data-access operations for products.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	FindAll(ctx context.Context, filter ProductFilter) ([]models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uuid.UUID) error

	// AdjustStock applies delta to the product's stock as one conditional
	// statement; a negative delta only succeeds if the resulting stock stays
	// non-negative. Returns ErrInsufficientStock otherwise.
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) error

	// CountSince counts products created at or after since, optionally for
	// one vendor.
	CountSince(ctx context.Context, vendorID *uuid.UUID, since time.Time) (int64, error)
}

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) ProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) Create(ctx context.Context, product *models.Product) error {
	return dbFrom(ctx, r.db).Create(product).Error
}

func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var p models.Product
	if err := dbFrom(ctx, r.db).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormProductRepository) FindAll(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	query := dbFrom(ctx, r.db).Model(&models.Product{})

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.VendorID != nil {
		query = query.Where("vendor_id = ?", *filter.VendorID)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	switch filter.SortBy {
	case "price-low", "priceAsc":
		query = query.Order("price ASC")
	case "price-high", "priceDesc":
		query = query.Order("price DESC")
	case "nameAsc":
		query = query.Order("name ASC")
	case "nameDesc":
		query = query.Order("name DESC")
	default:
		query = query.Order("created_at DESC")
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormProductRepository) Update(ctx context.Context, product *models.Product) error {
	return dbFrom(ctx, r.db).Save(product).Error
}

func (r *GormProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&models.Product{}, "id = ?", id).Error
}

// AdjustStock runs unscoped so cancellations can still restock a product the
// vendor has since delisted.
func (r *GormProductRepository) AdjustStock(ctx context.Context, id uuid.UUID, delta int) error {
	tx := dbFrom(ctx, r.db).Unscoped().Model(&models.Product{}).
		Where("id = ? AND stock + ? >= 0", id, delta).
		UpdateColumn("stock", gorm.Expr("stock + ?", delta))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}

func (r *GormProductRepository) CountSince(ctx context.Context, vendorID *uuid.UUID, since time.Time) (int64, error) {
	query := dbFrom(ctx, r.db).Model(&models.Product{}).Where("created_at >= ?", since)
	if vendorID != nil {
		query = query.Where("vendor_id = ?", *vendorID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
