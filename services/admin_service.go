package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/s-sucharita/Multi-Vendor-Marketplace/models"
	"github.com/s-sucharita/Multi-Vendor-Marketplace/repository"
)

// UpdateVendorStatusRequest approves, rejects or suspends a vendor account.
type UpdateVendorStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateTaskRequest assigns a task to a vendor.
type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	VendorID    uuid.UUID  `json:"vendor_id" binding:"required"`
	Priority    string     `json:"priority"`
	Category    string     `json:"category"`
	Deadline    *time.Time `json:"deadline"`
}

// UpdateTaskRequest moves a task through its states.
type UpdateTaskRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

// CreateGoalRequest sets a performance target for a vendor.
type CreateGoalRequest struct {
	VendorID    uuid.UUID `json:"vendor_id" binding:"required"`
	GoalType    string    `json:"goal_type" binding:"required"`
	TargetValue float64   `json:"target_value" binding:"required,gt=0"`
	Unit        string    `json:"unit"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	Deadline    time.Time `json:"deadline" binding:"required"`
	Description string    `json:"description"`
}

// UpdateGoalRequest records progress or closes a goal.
type UpdateGoalRequest struct {
	CurrentValue *float64 `json:"current_value"`
	Status       *string  `json:"status"`
}

// SubmitComplianceRequest files a compliance document for a vendor.
type SubmitComplianceRequest struct {
	DocumentType string     `json:"document_type" binding:"required"`
	DocumentURL  string     `json:"document_url"`
	ExpiryDate   *time.Time `json:"expiry_date"`
}

// ReviewComplianceRequest is the admin verdict on a submitted document.
type ReviewComplianceRequest struct {
	DocumentStatus  string `json:"document_status" binding:"required"`
	RejectionReason string `json:"rejection_reason"`
}

// ReviewLeaveRequest is the admin verdict on a leave request.
type ReviewLeaveRequest struct {
	Status string `json:"status" binding:"required"`
}

// SendNotificationRequest is a direct admin-to-user notification.
type SendNotificationRequest struct {
	UserID  uuid.UUID `json:"user_id" binding:"required"`
	Title   string    `json:"title" binding:"required"`
	Message string    `json:"message" binding:"required"`
	Type    string    `json:"type"`
}

// LogActivityRequest records one audit entry on behalf of a user.
type LogActivityRequest struct {
	UserID      uuid.UUID      `json:"user_id" binding:"required"`
	Action      string         `json:"action" binding:"required"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata"`
}

// DailySummary counts what happened since midnight, either for one vendor
// or marketplace-wide.
type DailySummary struct {
	Date            time.Time            `json:"date"`
	OrdersProcessed int64                `json:"orders_processed"`
	ProductsListed  int64                `json:"products_listed"`
	ActivityCount   int                  `json:"activity_count"`
	Activities      []models.ActivityLog `json:"activities"`
}

// VendorPerformanceReport aggregates one vendor's activity over a window.
type VendorPerformanceReport struct {
	VendorID        uuid.UUID `json:"vendor_id"`
	VendorName      string    `json:"vendor_name"`
	BusinessName    string    `json:"business_name,omitempty"`
	PeriodDays      int       `json:"period_days"`
	OrdersProcessed int64     `json:"orders_processed"`
	ProductsListed  int64     `json:"products_listed"`
	GoalsCompleted  int       `json:"goals_completed"`
	TotalActivities int       `json:"total_activities"`
	AverageRating   float64   `json:"average_rating"`
	TotalReviews    int       `json:"total_reviews"`
	ComplianceScore float64   `json:"compliance_score"`
	GeneratedAt     time.Time `json:"generated_at"`
}

// PendingApprovals is the admin's work queue summary.
type PendingApprovals struct {
	PendingCompliance    int64 `json:"pending_compliance"`
	PendingTasks         int64 `json:"pending_tasks"`
	PendingRegistrations int64 `json:"pending_registrations"`
	OpenDisputes         int64 `json:"open_disputes"`
	TotalPending         int64 `json:"total_pending"`
}

// MarketplaceReport is the admin summary across vendors and orders.
type MarketplaceReport struct {
	TotalOrders    int64          `json:"total_orders"`
	TotalRevenue   float64        `json:"total_revenue"`
	OrdersByStatus map[string]int `json:"orders_by_status"`
	TotalVendors   int            `json:"total_vendors"`
	PendingVendors int            `json:"pending_vendors"`
	GeneratedAt    time.Time      `json:"generated_at"`
}

// AdminService covers marketplace oversight: vendor approval, task
// assignment, performance goals, compliance review, leave review, activity
// logs and summary reporting.
type AdminService struct {
	users         repository.UserRepository
	tasks         repository.TaskRepository
	goals         repository.GoalRepository
	compliance    repository.ComplianceRepository
	activity      repository.ActivityLogRepository
	leaves        repository.LeaveRepository
	orders        repository.OrderRepository
	products      repository.ProductRepository
	disputes      repository.DisputeRepository
	notifications repository.NotificationRepository
	notifier      *Notifier
	logger        *zap.Logger
}

func NewAdminService(
	users repository.UserRepository,
	tasks repository.TaskRepository,
	goals repository.GoalRepository,
	compliance repository.ComplianceRepository,
	activity repository.ActivityLogRepository,
	leaves repository.LeaveRepository,
	orders repository.OrderRepository,
	products repository.ProductRepository,
	disputes repository.DisputeRepository,
	notifications repository.NotificationRepository,
	notifier *Notifier,
	logger *zap.Logger,
) *AdminService {
	return &AdminService{
		users:         users,
		tasks:         tasks,
		goals:         goals,
		compliance:    compliance,
		activity:      activity,
		leaves:        leaves,
		orders:        orders,
		products:      products,
		disputes:      disputes,
		notifications: notifications,
		notifier:      notifier,
		logger:        logger,
	}
}

// ListVendors returns all vendor accounts.
func (s *AdminService) ListVendors(ctx context.Context) ([]models.User, *ServiceError) {
	vendors, err := s.users.FindByRole(ctx, models.RoleVendor)
	if err != nil {
		s.logger.Error("vendor list failed", zap.Error(err))
		return nil, errInternal("Failed to fetch vendors")
	}
	return vendors, nil
}

// GetVendorDetails returns one vendor account.
func (s *AdminService) GetVendorDetails(ctx context.Context, vendorID uuid.UUID) (*models.User, *ServiceError) {
	vendor, err := s.users.FindByID(ctx, vendorID)
	if err != nil {
		if isNotFound(err) {
			return nil, errNotFound("Vendor not found")
		}
		s.logger.Error("vendor fetch failed", zap.Error(err))
		return nil, errInternal("Failed to fetch vendor")
	}
	if vendor.Role != models.RoleVendor {
		return nil, errNotFound("Vendor not found")
	}
	return vendor, nil
}

// UpdateVendorStatus approves, rejects or suspends a vendor account.
func (s *AdminService) UpdateVendorStatus(ctx context.Context, adminID, vendorID uuid.UUID, req *UpdateVendorStatusRequest) (*models.User, *ServiceError) {
	switch req.Status {
	case models.UserStatusActive, models.UserStatusSuspended, models.UserStatusRejected:
	default:
		return nil, errBadRequest("Unknown account status")
	}

	vendor, err := s.users.FindByID(ctx, vendorID)
	if err != nil {
		if isNotFound(err) {
			return nil, errNotFound("Vendor not found")
		}
		s.logger.Error("vendor fetch failed", zap.Error(err))
		return nil, errInternal("Failed to fetch vendor")
	}
	if vendor.Role != models.RoleVendor {
		return nil, errBadRequest("User is not a vendor")
	}

	vendor.Status = req.Status
	if err := s.users.Update(ctx, vendor); err != nil {
		s.logger.Error("vendor status update failed", zap.Error(err))
		return nil, errInternal("Failed to update vendor status")
	}

	s.notifier.Notify(ctx, vendor.ID, models.NotificationTypeAdmin,
		"Account Status Updated", "Your vendor account is now "+req.Status, nil, "")
	s.RecordActivity(ctx, &models.ActivityLog{
		UserID:      adminID,
		Action:      "vendor-status",
		Description: "Set vendor " + vendor.ID.String() + " to " + req.Status,
	})
	s.logger.Info("vendor status changed",
		zap.String("vendor", vendor.ID.String()),
		zap.String("status", req.Status),
	)
	return vendor, nil
}

// CreateTask assigns a task to a vendor and notifies them.
func (s *AdminService) CreateTask(ctx context.Context, adminID uuid.UUID, req *CreateTaskRequest) (*models.AdminTask, *ServiceError) {
	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}
	category := req.Category
	if category == "" {
		category = "other"
	}

	task := &models.AdminTask{
		Title:       req.Title,
		Description: req.Description,
		VendorID:    req.VendorID,
		AssignedBy:  adminID,
		Status:      models.TaskStatusPending,
		Priority:    priority,
		Category:    category,
		Deadline:    req.Deadline,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		s.logger.Error("task create failed", zap.Error(err))
		return nil, errInternal("Failed to create task")
	}

	s.notifier.Notify(ctx, req.VendorID, models.NotificationTypeAdmin,
		"New Task Assigned", req.Title, &task.ID, "AdminTask")
	s.RecordActivity(ctx, &models.ActivityLog{
		UserID:      adminID,
		Action:      "task-assigned",
		Description: "Assigned task to vendor " + req.VendorID.String(),
	})
	return task, nil
}

// ListTasks returns tasks, optionally filtered to one vendor and status.
// Vendors may only list their own.
func (s *AdminService) ListTasks(ctx context.Context, requesterID uuid.UUID, role string, vendorID *uuid.UUID, status string) ([]models.AdminTask, *ServiceError) {
	if role != models.RoleAdmin {
		vendorID = &requesterID
	}
	tasks, err := s.tasks.FindAll(ctx, vendorID, status)
	if err != nil {
		s.logger.Error("task list failed", zap.Error(err))
		return nil, errInternal("Failed to fetch tasks")
	}
	return tasks, nil
}

// UpdateTask moves a task through its states. The assigned vendor or an
// admin may update it.
func (s *AdminService) UpdateTask(ctx context.Context, requesterID uuid.UUID, role string, taskID uuid.UUID, req *UpdateTaskRequest) (*models.AdminTask, *ServiceError) {
	switch req.Status {
	case models.TaskStatusPending, models.TaskStatusInProgress,
		models.TaskStatusCompleted, models.TaskStatusOverdue:
	default:
		return nil, errBadRequest("Unknown task status")
	}

	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		if isNotFound(err) {
			return nil, errNotFound("Task not found")
		}
		s.logger.Error("task fetch failed", zap.Error(err))
		return nil, errInternal("Failed to fetch task")
	}
	if role != models.RoleAdmin && task.VendorID != requesterID {
		return nil, errForbidden("Access denied")
	}

	task.Status = req.Status
	if req.Notes != "" {
		task.Notes = req.Notes
	}
	if req.Status == models.TaskStatusCompleted {
		now := time.Now()
		task.CompletionDate = &now
	}
	if err := s.tasks.Update(ctx, task); err != nil {
		s.logger.Error("task update failed", zap.Error(err))
		return nil, errInternal("Failed to update task")
	}
	return task, nil
}

// CreateGoal sets a performance target for a vendor.
func (s *AdminService) CreateGoal(ctx context.Context, req *CreateGoalRequest) (*models.PerformanceGoal, *ServiceError) {
	if !req.Deadline.After(req.StartDate) {
		return nil, errBadRequest("Deadline must be after the start date")
	}

	goal := &models.PerformanceGoal{
		VendorID:    req.VendorID,
		GoalType:    req.GoalType,
		TargetValue: req.TargetValue,
		Unit:        req.Unit,
		StartDate:   req.StartDate,
		Deadline:    req.Deadline,
		Status:      models.GoalStatusActive,
		Description: req.Description,
	}
	if err := s.goals.Create(ctx, goal); err != nil {
		s.logger.Error("goal create failed", zap.Error(err))
		return nil, errInternal("Failed to create goal")
	}

	s.notifier.Notify(ctx, req.VendorID, models.NotificationTypeAdmin,
		"New Performance Goal", req.GoalType, &goal.ID, "PerformanceGoal")
	return goal, nil
}

// ListGoals returns a vendor's goals. Vendors may only list their own.
func (s *AdminService) ListGoals(ctx context.Context, requesterID uuid.UUID, role string, vendorID uuid.UUID) ([]models.PerformanceGoal, *ServiceError) {
	if role != models.RoleAdmin && vendorID != requesterID {
		return nil, errForbidden("Access denied")
	}
	goals, err := s.goals.FindByVendorID(ctx, vendorID)
	if err != nil {
		s.logger.Error("goal list failed", zap.Error(err))
		return nil, errInternal("Failed to fetch goals")
	}
	return goals, nil
}

// UpdateGoal records progress or closes a goal. A goal whose current value
// reaches the target is completed automatically.
func (s *AdminService) UpdateGoal(ctx context.Context, goalID uuid.UUID, req *UpdateGoalRequest) (*models.PerformanceGoal, *ServiceError) {
	goal, err := s.goals.FindByID(ctx, goalID)
	if err != nil {
		if isNotFound(err) {
			return nil, errNotFound("Goal not found")
		}
		s.logger.Error("goal fetch failed", zap.Error(err))
		return nil, errInternal("Failed to fetch goal")
	}

	if req.CurrentValue != nil {
		goal.CurrentValue = *req.CurrentValue
	}
	if req.Status != nil {
		switch *req.Status {
		case models.GoalStatusActive, models.GoalStatusCompleted,
			models.GoalStatusFailed, models.GoalStatusCancelled:
			goal.Status = *req.Status
		default:
			return nil, errBadRequest("Unknown goal status")
		}
	}
	if goal.Status == models.GoalStatusActive && goal.CurrentValue >= goal.TargetValue {
		goal.Status = models.GoalStatusCompleted
	}
	if goal.Status == models.GoalStatusCompleted && goal.CompletionDate == nil {
		now := time.Now()
		goal.CompletionDate = &now
	}

	if err := s.goals.Update(ctx, goal); err != nil {
		s.logger.Error("goal update failed", zap.Error(err))
		return nil, errInternal("Failed to update goal")
	}
	return goal, nil
}

// SubmitCompliance files a compliance document for the calling vendor.
func (s *AdminService) SubmitCompliance(ctx context.Context, vendorID uuid.UUID, req *SubmitComplianceRequest) (*models.VendorCompliance, *ServiceError) {
	now := time.Now()
	doc := &models.VendorCompliance{
		VendorID:       vendorID,
		DocumentType:   req.DocumentType,
		DocumentStatus: models.DocumentStatusPending,
		DocumentURL:    req.DocumentURL,
		SubmissionDate: &now,
		ExpiryDate:     req.ExpiryDate,
	}
	if err := s.compliance.Create(ctx, doc); err != nil {
		s.logger.Error("compliance create failed", zap.Error(err))
		return nil, errInternal("Failed to submit document")
	}
	return doc, nil
}

// ListCompliance returns compliance documents, optionally for one vendor.
// Vendors may only list their own.
func (s *AdminService) ListCompliance(ctx context.Context, requesterID uuid.UUID, role string, vendorID *uuid.UUID) ([]models.VendorCompliance, *ServiceError) {
	if role != models.RoleAdmin {
		vendorID = &requesterID
	}
	docs, err := s.compliance.FindAll(ctx, vendorID)
	if err != nil {
		s.logger.Error("compliance list failed", zap.Error(err))
		return nil, errInternal("Failed to fetch documents")
	}
	return docs, nil
}

// ReviewCompliance records the admin verdict on a document and refreshes the
// vendor's compliance score from all their documents.
func (s *AdminService) ReviewCompliance(ctx context.Context, adminID, documentID uuid.UUID, req *ReviewComplianceRequest) (*models.VendorCompliance, *ServiceError) {
	switch req.DocumentStatus {
	case models.DocumentStatusVerified, models.DocumentStatusRejected, models.DocumentStatusExpired:
	default:
		return nil, errBadRequest("Unknown document status")
	}

	doc, err := s.compliance.FindByID(ctx, documentID)
	if err != nil {
		if isNotFound(err) {
			return nil, errNotFound("Document not found")
		}
		s.logger.Error("compliance fetch failed", zap.Error(err))
		return nil, errInternal("Failed to fetch document")
	}

	now := time.Now()
	doc.DocumentStatus = req.DocumentStatus
	doc.RejectionReason = req.RejectionReason
	doc.VerificationDate = &now
	doc.VerifiedBy = &adminID
	if err := s.compliance.Update(ctx, doc); err != nil {
		s.logger.Error("compliance update failed", zap.Error(err))
		return nil, errInternal("Failed to update document")
	}

	s.refreshComplianceScore(ctx, doc.VendorID)

	s.notifier.Notify(ctx, doc.VendorID, models.NotificationTypeAdmin,
		"Compliance Document Reviewed", "Your document is now "+req.DocumentStatus, &doc.ID, "VendorCompliance")
	s.RecordActivity(ctx, &models.ActivityLog{
		UserID:      adminID,
		Action:      "compliance-review",
		Description: "Marked document " + doc.ID.String() + " " + req.DocumentStatus,
	})
	return doc, nil
}

// refreshComplianceScore recomputes the vendor's score as the share of
// verified documents. Best-effort.
func (s *AdminService) refreshComplianceScore(ctx context.Context, vendorID uuid.UUID) {
	docs, err := s.compliance.FindAll(ctx, &vendorID)
	if err != nil || len(docs) == 0 {
		return
	}

	verified := 0
	for _, d := range docs {
		if d.DocumentStatus == models.DocumentStatusVerified {
			verified++
		}
	}
	score := verified * 100 / len(docs)

	status := "pending-review"
	switch {
	case score >= 80:
		status = "compliant"
	case score > 0:
		status = "partial"
	}
	if err := s.compliance.UpdateScore(ctx, vendorID, score, status); err != nil {
		s.logger.Warn("compliance score update failed", zap.Error(err))
	}
}

// ListPendingLeaves returns leave requests awaiting review.
func (s *AdminService) ListPendingLeaves(ctx context.Context) ([]models.LeaveRequest, *ServiceError) {
	items, err := s.leaves.FindAll(ctx, models.LeaveStatusPending)
	if err != nil {
		s.logger.Error("leave list failed", zap.Error(err))
		return nil, errInternal("Failed to fetch leave requests")
	}
	return items, nil
}

// ReviewLeave approves or rejects a pending leave request.
func (s *AdminService) ReviewLeave(ctx context.Context, adminID, leaveID uuid.UUID, req *ReviewLeaveRequest) (*models.LeaveRequest, *ServiceError) {
	if req.Status != models.LeaveStatusApproved && req.Status != models.LeaveStatusRejected {
		return nil, errBadRequest("Status must be approved or rejected")
	}

	leave, err := s.leaves.FindByID(ctx, leaveID)
	if err != nil {
		if isNotFound(err) {
			return nil, errNotFound("Leave request not found")
		}
		s.logger.Error("leave fetch failed", zap.Error(err))
		return nil, errInternal("Failed to fetch leave request")
	}
	if leave.Status != models.LeaveStatusPending {
		return nil, errConflict("Leave request was already reviewed")
	}

	now := time.Now()
	leave.Status = req.Status
	leave.ReviewedBy = &adminID
	leave.ReviewedAt = &now
	if err := s.leaves.Update(ctx, leave); err != nil {
		s.logger.Error("leave update failed", zap.Error(err))
		return nil, errInternal("Failed to update leave request")
	}

	s.notifier.Notify(ctx, leave.UserID, models.NotificationTypeAdmin,
		"Leave Request Reviewed", "Your leave request was "+req.Status, &leave.ID, "LeaveRequest")
	s.RecordActivity(ctx, &models.ActivityLog{
		UserID:      adminID,
		Action:      "leave-review",
		Description: "Leave request " + leave.ID.String() + " " + req.Status,
	})
	return leave, nil
}

// RecordActivity appends one audit log entry. Best-effort.
func (s *AdminService) RecordActivity(ctx context.Context, entry *models.ActivityLog) {
	if err := s.activity.Create(ctx, entry); err != nil {
		s.logger.Warn("activity log write failed", zap.Error(err))
	}
}

// LogActivity records an audit entry submitted over the API. Unlike the
// internal RecordActivity hook, a write failure here surfaces to the caller.
func (s *AdminService) LogActivity(ctx context.Context, req *LogActivityRequest) (*models.ActivityLog, *ServiceError) {
	entry := &models.ActivityLog{
		UserID:      req.UserID,
		Action:      req.Action,
		Description: req.Description,
		Metadata:    req.Metadata,
	}
	if err := s.activity.Create(ctx, entry); err != nil {
		s.logger.Error("activity log write failed", zap.Error(err))
		return nil, errInternal("Failed to log activity")
	}
	return entry, nil
}

// SendNotification delivers a direct admin notification to one user.
func (s *AdminService) SendNotification(ctx context.Context, req *SendNotificationRequest) (*models.Notification, *ServiceError) {
	ntype := req.Type
	if ntype == "" {
		ntype = models.NotificationTypeAdmin
	}
	n := &models.Notification{
		RecipientID: req.UserID,
		Type:        ntype,
		Title:       req.Title,
		Message:     req.Message,
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		s.logger.Error("admin notification failed", zap.Error(err))
		return nil, errInternal("Failed to send notification")
	}
	return n, nil
}

// startOfToday is midnight in the server's location.
func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// BuildDailySummary counts one vendor's orders, listings and activity since
// midnight.
func (s *AdminService) BuildDailySummary(ctx context.Context, vendorID uuid.UUID) (*DailySummary, *ServiceError) {
	since := startOfToday()

	orders, err := s.orders.CountSince(ctx, &vendorID, since)
	if err != nil {
		s.logger.Error("daily order count failed", zap.Error(err))
		return nil, errInternal("Failed to build summary")
	}
	products, err := s.products.CountSince(ctx, &vendorID, since)
	if err != nil {
		s.logger.Error("daily product count failed", zap.Error(err))
		return nil, errInternal("Failed to build summary")
	}
	activities, err := s.activity.FindSince(ctx, vendorID, since)
	if err != nil {
		s.logger.Error("daily activity query failed", zap.Error(err))
		return nil, errInternal("Failed to build summary")
	}

	return &DailySummary{
		Date:            since,
		OrdersProcessed: orders,
		ProductsListed:  products,
		ActivityCount:   len(activities),
		Activities:      activities,
	}, nil
}

// BuildDailyOverview is the marketplace-wide version of the daily summary.
func (s *AdminService) BuildDailyOverview(ctx context.Context) (*DailySummary, *ServiceError) {
	since := startOfToday()

	orders, err := s.orders.CountSince(ctx, nil, since)
	if err != nil {
		s.logger.Error("daily order count failed", zap.Error(err))
		return nil, errInternal("Failed to build overview")
	}
	products, err := s.products.CountSince(ctx, nil, since)
	if err != nil {
		s.logger.Error("daily product count failed", zap.Error(err))
		return nil, errInternal("Failed to build overview")
	}
	activities, err := s.activity.FindAllSince(ctx, since)
	if err != nil {
		s.logger.Error("daily activity query failed", zap.Error(err))
		return nil, errInternal("Failed to build overview")
	}

	return &DailySummary{
		Date:            since,
		OrdersProcessed: orders,
		ProductsListed:  products,
		ActivityCount:   len(activities),
		Activities:      activities,
	}, nil
}

// BuildVendorReport aggregates one vendor's performance over the last days.
func (s *AdminService) BuildVendorReport(ctx context.Context, vendorID uuid.UUID, days int) (*VendorPerformanceReport, *ServiceError) {
	if days <= 0 {
		days = 30
	}
	start := time.Now().AddDate(0, 0, -days)

	vendor, svcErr := s.GetVendorDetails(ctx, vendorID)
	if svcErr != nil {
		return nil, svcErr
	}

	orders, err := s.orders.CountSince(ctx, &vendorID, start)
	if err != nil {
		s.logger.Error("report order count failed", zap.Error(err))
		return nil, errInternal("Failed to build report")
	}
	products, err := s.products.CountSince(ctx, &vendorID, start)
	if err != nil {
		s.logger.Error("report product count failed", zap.Error(err))
		return nil, errInternal("Failed to build report")
	}
	goals, err := s.goals.FindByVendorID(ctx, vendorID)
	if err != nil {
		s.logger.Error("report goal query failed", zap.Error(err))
		return nil, errInternal("Failed to build report")
	}
	completed := 0
	for _, g := range goals {
		if g.Status == models.GoalStatusCompleted {
			completed++
		}
	}
	activities, err := s.activity.FindSince(ctx, vendorID, start)
	if err != nil {
		s.logger.Error("report activity query failed", zap.Error(err))
		return nil, errInternal("Failed to build report")
	}
	docs, err := s.compliance.FindAll(ctx, &vendorID)
	if err != nil {
		s.logger.Error("report compliance query failed", zap.Error(err))
		return nil, errInternal("Failed to build report")
	}
	var score float64
	if len(docs) > 0 {
		for _, d := range docs {
			score += float64(d.ComplianceScore)
		}
		score /= float64(len(docs))
	}

	return &VendorPerformanceReport{
		VendorID:        vendorID,
		VendorName:      vendor.Name,
		BusinessName:    vendor.BusinessName,
		PeriodDays:      days,
		OrdersProcessed: orders,
		ProductsListed:  products,
		GoalsCompleted:  completed,
		TotalActivities: len(activities),
		AverageRating:   vendor.AverageRating,
		TotalReviews:    vendor.TotalReviews,
		ComplianceScore: score,
		GeneratedAt:     time.Now(),
	}, nil
}

// GetPendingApprovals summarizes everything waiting on an admin decision.
func (s *AdminService) GetPendingApprovals(ctx context.Context) (*PendingApprovals, *ServiceError) {
	compliance, err := s.compliance.CountByStatus(ctx, models.DocumentStatusPending)
	if err != nil {
		s.logger.Error("pending compliance count failed", zap.Error(err))
		return nil, errInternal("Failed to fetch pending approvals")
	}
	tasks, err := s.tasks.CountByStatus(ctx, models.TaskStatusPending)
	if err != nil {
		s.logger.Error("pending task count failed", zap.Error(err))
		return nil, errInternal("Failed to fetch pending approvals")
	}
	disputes, err := s.disputes.CountByStatus(ctx, models.DisputeStatusOpen)
	if err != nil {
		s.logger.Error("open dispute count failed", zap.Error(err))
		return nil, errInternal("Failed to fetch pending approvals")
	}
	vendors, err := s.users.FindByRole(ctx, models.RoleVendor)
	if err != nil {
		s.logger.Error("pending vendor count failed", zap.Error(err))
		return nil, errInternal("Failed to fetch pending approvals")
	}
	var registrations int64
	for _, v := range vendors {
		if v.Status == models.UserStatusPending {
			registrations++
		}
	}

	return &PendingApprovals{
		PendingCompliance:    compliance,
		PendingTasks:         tasks,
		PendingRegistrations: registrations,
		OpenDisputes:         disputes,
		TotalPending:         compliance + tasks + registrations + disputes,
	}, nil
}

// ListActivity returns a user's recent audit trail.
func (s *AdminService) ListActivity(ctx context.Context, userID uuid.UUID, limit int) ([]models.ActivityLog, *ServiceError) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	logs, err := s.activity.FindByUserID(ctx, userID, limit)
	if err != nil {
		s.logger.Error("activity list failed", zap.Error(err))
		return nil, errInternal("Failed to fetch activity logs")
	}
	return logs, nil
}

// BuildMarketplaceReport aggregates orders and vendor counts into the admin
// summary.
func (s *AdminService) BuildMarketplaceReport(ctx context.Context) (*MarketplaceReport, *ServiceError) {
	orders, total, err := s.orders.FindAll(ctx, 1, 1000)
	if err != nil {
		s.logger.Error("report order query failed", zap.Error(err))
		return nil, errInternal("Failed to build report")
	}

	report := &MarketplaceReport{
		TotalOrders:    total,
		OrdersByStatus: make(map[string]int),
		GeneratedAt:    time.Now(),
	}
	for _, o := range orders {
		report.OrdersByStatus[o.Status]++
		if o.Status != models.OrderStatusCancelled {
			report.TotalRevenue += o.TotalPrice
		}
	}

	vendors, err := s.users.FindByRole(ctx, models.RoleVendor)
	if err != nil {
		s.logger.Error("report vendor query failed", zap.Error(err))
		return nil, errInternal("Failed to build report")
	}
	report.TotalVendors = len(vendors)
	for _, v := range vendors {
		if v.Status == models.UserStatusPending {
			report.PendingVendors++
		}
	}
	return report, nil
}
