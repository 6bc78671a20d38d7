package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/s-sucharita/Multi-Vendor-Marketplace/services"
)

type AdminController struct {
	admin *services.AdminService
}

func NewAdminController(admin *services.AdminService) *AdminController {
	return &AdminController{admin: admin}
}

// GetVendors lists all vendor accounts.
func (ac *AdminController) GetVendors(c *gin.Context) {
	vendors, svcErr := ac.admin.ListVendors(c.Request.Context())
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendors": vendors, "count": len(vendors)})
}

// GetVendorDetails returns one vendor account.
func (ac *AdminController) GetVendorDetails(c *gin.Context) {
	vendorID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	vendor, svcErr := ac.admin.GetVendorDetails(c.Request.Context(), vendorID)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, vendor)
}

// UpdateVendorStatus approves, rejects or suspends a vendor account.
func (ac *AdminController) UpdateVendorStatus(c *gin.Context) {
	adminID, _, ok := currentUser(c)
	if !ok {
		return
	}
	vendorID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req services.UpdateVendorStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	vendor, svcErr := ac.admin.UpdateVendorStatus(c.Request.Context(), adminID, vendorID, &req)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, vendor)
}

// CreateTask assigns a task to a vendor.
func (ac *AdminController) CreateTask(c *gin.Context) {
	adminID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var req services.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	task, svcErr := ac.admin.CreateTask(c.Request.Context(), adminID, &req)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// GetTasks lists tasks. Vendors only see their own.
func (ac *AdminController) GetTasks(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}

	var vendorID *uuid.UUID
	if v := c.Query("vendor_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vendor_id format"})
			return
		}
		vendorID = &id
	}

	tasks, svcErr := ac.admin.ListTasks(c.Request.Context(), userID, role, vendorID, c.Query("status"))
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks, "count": len(tasks)})
}

// UpdateTask moves a task through its states.
func (ac *AdminController) UpdateTask(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}
	taskID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req services.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	task, svcErr := ac.admin.UpdateTask(c.Request.Context(), userID, role, taskID, &req)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, task)
}

// CreateGoal sets a performance target for a vendor.
func (ac *AdminController) CreateGoal(c *gin.Context) {
	var req services.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	goal, svcErr := ac.admin.CreateGoal(c.Request.Context(), &req)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, goal)
}

// GetGoals lists a vendor's performance goals.
func (ac *AdminController) GetGoals(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}

	vendorID := userID
	if v := c.Query("vendor_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vendor_id format"})
			return
		}
		vendorID = id
	}

	goals, svcErr := ac.admin.ListGoals(c.Request.Context(), userID, role, vendorID)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"goals": goals, "count": len(goals)})
}

// UpdateGoal records progress or closes a goal.
func (ac *AdminController) UpdateGoal(c *gin.Context) {
	goalID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req services.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	goal, svcErr := ac.admin.UpdateGoal(c.Request.Context(), goalID, &req)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// SubmitCompliance files a compliance document for the calling vendor.
func (ac *AdminController) SubmitCompliance(c *gin.Context) {
	vendorID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var req services.SubmitComplianceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	doc, svcErr := ac.admin.SubmitCompliance(c.Request.Context(), vendorID, &req)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// GetCompliance lists compliance documents. Vendors only see their own.
func (ac *AdminController) GetCompliance(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}

	var vendorID *uuid.UUID
	if v := c.Query("vendor_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vendor_id format"})
			return
		}
		vendorID = &id
	}

	docs, svcErr := ac.admin.ListCompliance(c.Request.Context(), userID, role, vendorID)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs, "count": len(docs)})
}

// ReviewCompliance records the admin verdict on a document.
func (ac *AdminController) ReviewCompliance(c *gin.Context) {
	adminID, _, ok := currentUser(c)
	if !ok {
		return
	}
	documentID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req services.ReviewComplianceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	doc, svcErr := ac.admin.ReviewCompliance(c.Request.Context(), adminID, documentID, &req)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// GetPendingLeaves lists leave requests awaiting review.
func (ac *AdminController) GetPendingLeaves(c *gin.Context) {
	items, svcErr := ac.admin.ListPendingLeaves(c.Request.Context())
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaves": items, "count": len(items)})
}

// ReviewLeave approves or rejects a leave request.
func (ac *AdminController) ReviewLeave(c *gin.Context) {
	adminID, _, ok := currentUser(c)
	if !ok {
		return
	}
	leaveID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req services.ReviewLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	leave, svcErr := ac.admin.ReviewLeave(c.Request.Context(), adminID, leaveID, &req)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, leave)
}

// GetActivityLogs returns a user's audit trail.
func (ac *AdminController) GetActivityLogs(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	logs, svcErr := ac.admin.ListActivity(c.Request.Context(), userID, limit)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs, "count": len(logs)})
}

// GetMarketplaceReport returns the admin summary across vendors and orders.
func (ac *AdminController) GetMarketplaceReport(c *gin.Context) {
	report, svcErr := ac.admin.BuildMarketplaceReport(c.Request.Context())
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetVendorReport aggregates one vendor's performance over the last days.
func (ac *AdminController) GetVendorReport(c *gin.Context) {
	vendorID, ok := parseUUIDParam(c, "vendorId")
	if !ok {
		return
	}
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	report, svcErr := ac.admin.BuildVendorReport(c.Request.Context(), vendorID, days)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetDailySummary counts one vendor's orders, listings and activity today.
func (ac *AdminController) GetDailySummary(c *gin.Context) {
	vendorID, ok := parseUUIDParam(c, "vendorId")
	if !ok {
		return
	}

	summary, svcErr := ac.admin.BuildDailySummary(c.Request.Context(), vendorID)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetDailyOverview is the marketplace-wide daily summary.
func (ac *AdminController) GetDailyOverview(c *gin.Context) {
	summary, svcErr := ac.admin.BuildDailyOverview(c.Request.Context())
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetPendingApprovals summarizes everything waiting on an admin decision.
func (ac *AdminController) GetPendingApprovals(c *gin.Context) {
	approvals, svcErr := ac.admin.GetPendingApprovals(c.Request.Context())
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, approvals)
}

// SendNotification delivers a direct admin notification to one user.
func (ac *AdminController) SendNotification(c *gin.Context) {
	var req services.SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	n, svcErr := ac.admin.SendNotification(c.Request.Context(), &req)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, n)
}

// LogActivity records an audit entry submitted over the API.
func (ac *AdminController) LogActivity(c *gin.Context) {
	var req services.LogActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	entry, svcErr := ac.admin.LogActivity(c.Request.Context(), &req)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, entry)
}
