package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/s-sucharita/Multi-Vendor-Marketplace/models"
)

// ReturnRepository defines data-access operations for return requests.
type ReturnRepository interface {
	Create(ctx context.Context, ret *models.ReturnRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.ReturnRequest, error)
	FindByVendorID(ctx context.Context, vendorID uuid.UUID, status string) ([]models.ReturnRequest, error)
	Update(ctx context.Context, ret *models.ReturnRequest) error
}

type GormReturnRepository struct {
	db *gorm.DB
}

func NewGormReturnRepository(db *gorm.DB) ReturnRepository {
	return &GormReturnRepository{db: db}
}

func (r *GormReturnRepository) Create(ctx context.Context, ret *models.ReturnRequest) error {
	return dbFrom(ctx, r.db).Create(ret).Error
}

func (r *GormReturnRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.ReturnRequest, error) {
	var ret models.ReturnRequest
	if err := dbFrom(ctx, r.db).First(&ret, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ret, nil
}

func (r *GormReturnRepository) FindByVendorID(ctx context.Context, vendorID uuid.UUID, status string) ([]models.ReturnRequest, error) {
	query := dbFrom(ctx, r.db).Where("vendor_id = ?", vendorID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var rets []models.ReturnRequest
	if err := query.Order("created_at DESC").Find(&rets).Error; err != nil {
		return nil, err
	}
	return rets, nil
}

func (r *GormReturnRepository) Update(ctx context.Context, ret *models.ReturnRequest) error {
	return dbFrom(ctx, r.db).Save(ret).Error
}

// DisputeRepository defines data-access operations for disputes.
type DisputeRepository interface {
	Create(ctx context.Context, d *models.Dispute) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Dispute, error)
	FindByVendorID(ctx context.Context, vendorID uuid.UUID, status string) ([]models.Dispute, error)
	Update(ctx context.Context, d *models.Dispute) error
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type GormDisputeRepository struct {
	db *gorm.DB
}

func NewGormDisputeRepository(db *gorm.DB) DisputeRepository {
	return &GormDisputeRepository{db: db}
}

func (r *GormDisputeRepository) Create(ctx context.Context, d *models.Dispute) error {
	return dbFrom(ctx, r.db).Create(d).Error
}

func (r *GormDisputeRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Dispute, error) {
	var d models.Dispute
	if err := dbFrom(ctx, r.db).First(&d, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *GormDisputeRepository) FindByVendorID(ctx context.Context, vendorID uuid.UUID, status string) ([]models.Dispute, error) {
	query := dbFrom(ctx, r.db).Where("vendor_id = ?", vendorID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var disputes []models.Dispute
	if err := query.Order("created_at DESC").Find(&disputes).Error; err != nil {
		return nil, err
	}
	return disputes, nil
}

func (r *GormDisputeRepository) Update(ctx context.Context, d *models.Dispute) error {
	return dbFrom(ctx, r.db).Save(d).Error
}

func (r *GormDisputeRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := dbFrom(ctx, r.db).Model(&models.Dispute{}).
		Where("status = ?", status).Count(&count).Error
	return count, err
}

// VendorMessageRepository defines data-access operations for message threads.
type VendorMessageRepository interface {
	Create(ctx context.Context, m *models.VendorMessage) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.VendorMessage, error)
	FindByParticipant(ctx context.Context, userID uuid.UUID) ([]models.VendorMessage, error)
	Update(ctx context.Context, m *models.VendorMessage) error
}

type GormVendorMessageRepository struct {
	db *gorm.DB
}

func NewGormVendorMessageRepository(db *gorm.DB) VendorMessageRepository {
	return &GormVendorMessageRepository{db: db}
}

func (r *GormVendorMessageRepository) Create(ctx context.Context, m *models.VendorMessage) error {
	return dbFrom(ctx, r.db).Create(m).Error
}

func (r *GormVendorMessageRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.VendorMessage, error) {
	var m models.VendorMessage
	if err := dbFrom(ctx, r.db).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *GormVendorMessageRepository) FindByParticipant(ctx context.Context, userID uuid.UUID) ([]models.VendorMessage, error) {
	var msgs []models.VendorMessage
	if err := dbFrom(ctx, r.db).
		Where("sender_id = ? OR recipient_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

func (r *GormVendorMessageRepository) Update(ctx context.Context, m *models.VendorMessage) error {
	return dbFrom(ctx, r.db).Save(m).Error
}

// LeaveRepository defines data-access operations for leave requests.
type LeaveRepository interface {
	Create(ctx context.Context, l *models.LeaveRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.LeaveRequest, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.LeaveRequest, error)
	FindAll(ctx context.Context, status string) ([]models.LeaveRequest, error)
	Update(ctx context.Context, l *models.LeaveRequest) error
}

type GormLeaveRepository struct {
	db *gorm.DB
}

func NewGormLeaveRepository(db *gorm.DB) LeaveRepository {
	return &GormLeaveRepository{db: db}
}

func (r *GormLeaveRepository) Create(ctx context.Context, l *models.LeaveRequest) error {
	return dbFrom(ctx, r.db).Create(l).Error
}

func (r *GormLeaveRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.LeaveRequest, error) {
	var l models.LeaveRequest
	if err := dbFrom(ctx, r.db).First(&l, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *GormLeaveRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.LeaveRequest, error) {
	var leaves []models.LeaveRequest
	if err := dbFrom(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&leaves).Error; err != nil {
		return nil, err
	}
	return leaves, nil
}

func (r *GormLeaveRepository) FindAll(ctx context.Context, status string) ([]models.LeaveRequest, error) {
	query := dbFrom(ctx, r.db).Model(&models.LeaveRequest{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var leaves []models.LeaveRequest
	if err := query.Order("created_at DESC").Find(&leaves).Error; err != nil {
		return nil, err
	}
	return leaves, nil
}

func (r *GormLeaveRepository) Update(ctx context.Context, l *models.LeaveRequest) error {
	return dbFrom(ctx, r.db).Save(l).Error
}
