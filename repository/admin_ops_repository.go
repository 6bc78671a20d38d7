package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/s-sucharita/Multi-Vendor-Marketplace/models"
)

// TaskRepository defines data-access operations for admin-assigned tasks.
type TaskRepository interface {
	Create(ctx context.Context, t *models.AdminTask) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.AdminTask, error)
	FindAll(ctx context.Context, vendorID *uuid.UUID, status string) ([]models.AdminTask, error)
	Update(ctx context.Context, t *models.AdminTask) error
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type GormTaskRepository struct {
	db *gorm.DB
}

func NewGormTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

func (r *GormTaskRepository) Create(ctx context.Context, t *models.AdminTask) error {
	return dbFrom(ctx, r.db).Create(t).Error
}

func (r *GormTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.AdminTask, error) {
	var t models.AdminTask
	if err := dbFrom(ctx, r.db).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *GormTaskRepository) FindAll(ctx context.Context, vendorID *uuid.UUID, status string) ([]models.AdminTask, error) {
	query := dbFrom(ctx, r.db).Model(&models.AdminTask{})
	if vendorID != nil {
		query = query.Where("vendor_id = ?", *vendorID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var tasks []models.AdminTask
	if err := query.Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *GormTaskRepository) Update(ctx context.Context, t *models.AdminTask) error {
	return dbFrom(ctx, r.db).Save(t).Error
}

func (r *GormTaskRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := dbFrom(ctx, r.db).Model(&models.AdminTask{}).
		Where("status = ?", status).Count(&count).Error
	return count, err
}

// GoalRepository defines data-access operations for performance goals.
type GoalRepository interface {
	Create(ctx context.Context, g *models.PerformanceGoal) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.PerformanceGoal, error)
	FindByVendorID(ctx context.Context, vendorID uuid.UUID) ([]models.PerformanceGoal, error)
	Update(ctx context.Context, g *models.PerformanceGoal) error
}

type GormGoalRepository struct {
	db *gorm.DB
}

func NewGormGoalRepository(db *gorm.DB) GoalRepository {
	return &GormGoalRepository{db: db}
}

func (r *GormGoalRepository) Create(ctx context.Context, g *models.PerformanceGoal) error {
	return dbFrom(ctx, r.db).Create(g).Error
}

func (r *GormGoalRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.PerformanceGoal, error) {
	var g models.PerformanceGoal
	if err := dbFrom(ctx, r.db).First(&g, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GormGoalRepository) FindByVendorID(ctx context.Context, vendorID uuid.UUID) ([]models.PerformanceGoal, error) {
	var goals []models.PerformanceGoal
	if err := dbFrom(ctx, r.db).
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *GormGoalRepository) Update(ctx context.Context, g *models.PerformanceGoal) error {
	return dbFrom(ctx, r.db).Save(g).Error
}

// ComplianceRepository defines data-access operations for compliance records.
type ComplianceRepository interface {
	Create(ctx context.Context, c *models.VendorCompliance) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.VendorCompliance, error)
	FindAll(ctx context.Context, vendorID *uuid.UUID) ([]models.VendorCompliance, error)
	Update(ctx context.Context, c *models.VendorCompliance) error
	UpdateScore(ctx context.Context, vendorID uuid.UUID, score int, status string) error
	CountByStatus(ctx context.Context, documentStatus string) (int64, error)
}

type GormComplianceRepository struct {
	db *gorm.DB
}

func NewGormComplianceRepository(db *gorm.DB) ComplianceRepository {
	return &GormComplianceRepository{db: db}
}

func (r *GormComplianceRepository) Create(ctx context.Context, c *models.VendorCompliance) error {
	return dbFrom(ctx, r.db).Create(c).Error
}

func (r *GormComplianceRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.VendorCompliance, error) {
	var c models.VendorCompliance
	if err := dbFrom(ctx, r.db).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormComplianceRepository) FindAll(ctx context.Context, vendorID *uuid.UUID) ([]models.VendorCompliance, error) {
	query := dbFrom(ctx, r.db).Model(&models.VendorCompliance{})
	if vendorID != nil {
		query = query.Where("vendor_id = ?", *vendorID)
	}

	var records []models.VendorCompliance
	if err := query.Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *GormComplianceRepository) Update(ctx context.Context, c *models.VendorCompliance) error {
	return dbFrom(ctx, r.db).Save(c).Error
}

func (r *GormComplianceRepository) UpdateScore(ctx context.Context, vendorID uuid.UUID, score int, status string) error {
	return dbFrom(ctx, r.db).Model(&models.VendorCompliance{}).
		Where("vendor_id = ?", vendorID).
		Updates(map[string]interface{}{"compliance_score": score, "status": status}).Error
}

func (r *GormComplianceRepository) CountByStatus(ctx context.Context, documentStatus string) (int64, error) {
	var count int64
	err := dbFrom(ctx, r.db).Model(&models.VendorCompliance{}).
		Where("document_status = ?", documentStatus).Count(&count).Error
	return count, err
}

// ActivityLogRepository defines data-access operations for activity logs.
type ActivityLogRepository interface {
	Create(ctx context.Context, l *models.ActivityLog) error
	FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.ActivityLog, error)
	FindSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.ActivityLog, error)
	FindAllSince(ctx context.Context, since time.Time) ([]models.ActivityLog, error)
}

type GormActivityLogRepository struct {
	db *gorm.DB
}

func NewGormActivityLogRepository(db *gorm.DB) ActivityLogRepository {
	return &GormActivityLogRepository{db: db}
}

func (r *GormActivityLogRepository) Create(ctx context.Context, l *models.ActivityLog) error {
	return dbFrom(ctx, r.db).Create(l).Error
}

func (r *GormActivityLogRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.ActivityLog, error) {
	var logs []models.ActivityLog
	if err := dbFrom(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *GormActivityLogRepository) FindSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.ActivityLog, error) {
	var logs []models.ActivityLog
	if err := dbFrom(ctx, r.db).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *GormActivityLogRepository) FindAllSince(ctx context.Context, since time.Time) ([]models.ActivityLog, error) {
	var logs []models.ActivityLog
	if err := dbFrom(ctx, r.db).
		Where("created_at >= ?", since).
		Order("created_at DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
