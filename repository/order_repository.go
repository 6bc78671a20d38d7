package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/s-sucharita/Multi-Vendor-Marketplace/models"
)

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID, page, limit int) ([]models.Order, int64, error)
	FindByVendorID(ctx context.Context, vendorID uuid.UUID, page, limit int) ([]models.Order, int64, error)
	FindAll(ctx context.Context, page, limit int) ([]models.Order, int64, error)
	Update(ctx context.Context, order *models.Order) error
	AppendMessage(ctx context.Context, msg *models.OrderMessage) error

	// CountSince counts orders placed at or after since, optionally narrowed
	// to orders carrying at least one line item of the given vendor.
	CountSince(ctx context.Context, vendorID *uuid.UUID, since time.Time) (int64, error)
}

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) OrderRepository {
	return &GormOrderRepository{db: db}
}

// Create persists the order together with its line items.
func (r *GormOrderRepository) Create(ctx context.Context, order *models.Order) error {
	return dbFrom(ctx, r.db).Create(order).Error
}

func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := dbFrom(ctx, r.db).
		Preload("Items").
		Preload("Messages").
		First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// FindByCustomerID retrieves orders for a specific customer with pagination
func (r *GormOrderRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID, page, limit int) ([]models.Order, int64, error) {
	query := dbFrom(ctx, r.db).Model(&models.Order{}).Where("customer_id = ?", customerID)
	return paginateOrders(query, page, limit)
}

// FindByVendorID retrieves orders containing at least one line item owned by
// the vendor. Item filtering to the vendor's subset happens in the service.
func (r *GormOrderRepository) FindByVendorID(ctx context.Context, vendorID uuid.UUID, page, limit int) ([]models.Order, int64, error) {
	query := dbFrom(ctx, r.db).Model(&models.Order{}).
		Where("id IN (?)", dbFrom(ctx, r.db).Model(&models.OrderItem{}).
			Select("order_id").Where("vendor_id = ?", vendorID))
	return paginateOrders(query, page, limit)
}

// FindAll retrieves all orders with pagination (admin)
func (r *GormOrderRepository) FindAll(ctx context.Context, page, limit int) ([]models.Order, int64, error) {
	query := dbFrom(ctx, r.db).Model(&models.Order{})
	return paginateOrders(query, page, limit)
}

func (r *GormOrderRepository) Update(ctx context.Context, order *models.Order) error {
	return dbFrom(ctx, r.db).Save(order).Error
}

func (r *GormOrderRepository) AppendMessage(ctx context.Context, msg *models.OrderMessage) error {
	return dbFrom(ctx, r.db).Create(msg).Error
}

func (r *GormOrderRepository) CountSince(ctx context.Context, vendorID *uuid.UUID, since time.Time) (int64, error) {
	query := dbFrom(ctx, r.db).Model(&models.Order{}).Where("created_at >= ?", since)
	if vendorID != nil {
		query = query.Where("id IN (?)", dbFrom(ctx, r.db).Model(&models.OrderItem{}).
			Select("order_id").Where("vendor_id = ?", *vendorID))
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func paginateOrders(query *gorm.DB, page, limit int) ([]models.Order, int64, error) {
	var orders []models.Order
	var total int64

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.
		Preload("Items").
		Offset(offset).
		Limit(limit).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}
