package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/s-sucharita/Multi-Vendor-Marketplace/models"
)

// PaymentRepository defines data-access operations for payment records.
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*models.Payment, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]models.Payment, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) error
}

// GormPaymentRepository implements PaymentRepository using GORM.
type GormPaymentRepository struct {
	db *gorm.DB
}

func NewGormPaymentRepository(db *gorm.DB) PaymentRepository {
	return &GormPaymentRepository{db: db}
}

func (r *GormPaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	return dbFrom(ctx, r.db).Create(payment).Error
}

func (r *GormPaymentRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*models.Payment, error) {
	var p models.Payment
	if err := dbFrom(ctx, r.db).Where("order_id = ?", orderID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormPaymentRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]models.Payment, error) {
	var payments []models.Payment
	if err := dbFrom(ctx, r.db).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *GormPaymentRepository) UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) error {
	return dbFrom(ctx, r.db).Model(&models.Payment{}).
		Where("order_id = ?", orderID).
		Update("status", status).Error
}
