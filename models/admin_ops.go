package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in-progress"
	TaskStatusCompleted  = "completed"
	TaskStatusOverdue    = "overdue"
)

// AdminTask is a piece of work assigned by an admin to a vendor.
type AdminTask struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description,omitempty"`
	VendorID    uuid.UUID  `json:"vendor_id" gorm:"type:uuid;not null;index"`
	AssignedBy  uuid.UUID  `json:"assigned_by" gorm:"type:uuid;not null"`
	Status      string     `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	Priority    string     `json:"priority" gorm:"type:varchar(10);default:'medium'"`
	Category    string     `json:"category" gorm:"type:varchar(30);default:'other'"`
	Deadline    *time.Time `json:"deadline,omitempty"`

	CompletionDate *time.Time `json:"completion_date,omitempty"`
	Notes          string     `json:"notes,omitempty"`

	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
	GoalStatusFailed    = "failed"
	GoalStatusCancelled = "cancelled"
)

// PerformanceGoal is an admin-set target for a vendor.
type PerformanceGoal struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	VendorID     uuid.UUID `json:"vendor_id" gorm:"type:uuid;not null;index"`
	GoalType     string    `json:"goal_type" gorm:"type:varchar(30);not null"`
	TargetValue  float64   `json:"target_value" gorm:"not null"`
	CurrentValue float64   `json:"current_value" gorm:"default:0"`
	Unit         string    `json:"unit,omitempty"`
	StartDate    time.Time `json:"start_date" gorm:"not null"`
	Deadline     time.Time `json:"deadline" gorm:"not null"`
	Status       string    `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
	Description  string    `json:"description,omitempty"`

	CompletionDate *time.Time `json:"completion_date,omitempty"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

const (
	DocumentStatusPending  = "pending"
	DocumentStatusVerified = "verified"
	DocumentStatusRejected = "rejected"
	DocumentStatusExpired  = "expired"
)

// VendorCompliance is one compliance document submitted by a vendor, plus the
// vendor's rolled-up compliance score.
type VendorCompliance struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	VendorID       uuid.UUID `json:"vendor_id" gorm:"type:uuid;not null;index"`
	DocumentType   string    `json:"document_type" gorm:"type:varchar(30);not null"`
	DocumentStatus string    `json:"document_status" gorm:"type:varchar(20);not null;default:'pending'"`
	DocumentURL    string    `json:"document_url,omitempty"`

	SubmissionDate   *time.Time `json:"submission_date,omitempty"`
	ExpiryDate       *time.Time `json:"expiry_date,omitempty"`
	VerificationDate *time.Time `json:"verification_date,omitempty"`
	VerifiedBy       *uuid.UUID `json:"verified_by,omitempty" gorm:"type:uuid"`
	RejectionReason  string     `json:"rejection_reason,omitempty"`

	ComplianceScore int    `json:"compliance_score" gorm:"default:0"`
	Status          string `json:"status" gorm:"type:varchar(20);default:'pending-review'"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// ActivityLog records one user action for admin auditing.
type ActivityLog struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Action      string    `json:"action" gorm:"type:varchar(30);not null"`
	Description string    `json:"description,omitempty"`
	IPAddress   string    `json:"ip_address,omitempty"`
	UserAgent   string    `json:"user_agent,omitempty"`

	Metadata map[string]any `json:"metadata,omitempty" gorm:"serializer:json"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index"`
}
