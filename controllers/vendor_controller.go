package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/s-sucharita/Multi-Vendor-Marketplace/services"
)

type VendorController struct {
	vendor *services.VendorService
}

func NewVendorController(vendor *services.VendorService) *VendorController {
	return &VendorController{vendor: vendor}
}

// CreateReturn opens a return request on the caller's order.
func (vc *VendorController) CreateReturn(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var req services.CreateReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	ret, svcErr := vc.vendor.CreateReturn(c.Request.Context(), userID, &req)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, ret)
}

// GetReturns lists the calling vendor's return requests.
func (vc *VendorController) GetReturns(c *gin.Context) {
	vendorID, _, ok := currentUser(c)
	if !ok {
		return
	}

	items, svcErr := vc.vendor.ListReturns(c.Request.Context(), vendorID, c.Query("status"))
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"returns": items, "count": len(items)})
}

// ResolveReturn applies the vendor's decision to a return request.
func (vc *VendorController) ResolveReturn(c *gin.Context) {
	vendorID, _, ok := currentUser(c)
	if !ok {
		return
	}
	returnID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req services.ResolveReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	ret, svcErr := vc.vendor.ResolveReturn(c.Request.Context(), vendorID, returnID, &req)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, ret)
}

// CreateDispute opens a dispute on the caller's order.
func (vc *VendorController) CreateDispute(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var req services.CreateDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	dispute, svcErr := vc.vendor.CreateDispute(c.Request.Context(), userID, &req)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, dispute)
}

// GetDisputes lists the calling vendor's disputes.
func (vc *VendorController) GetDisputes(c *gin.Context) {
	vendorID, _, ok := currentUser(c)
	if !ok {
		return
	}

	items, svcErr := vc.vendor.ListDisputes(c.Request.Context(), vendorID, c.Query("status"))
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"disputes": items, "count": len(items)})
}

// RespondDispute records the vendor response or an admin resolution.
func (vc *VendorController) RespondDispute(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}
	disputeID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req services.RespondDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	dispute, svcErr := vc.vendor.RespondDispute(c.Request.Context(), userID, role, disputeID, &req)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, dispute)
}

// SendMessage starts a message thread.
func (vc *VendorController) SendMessage(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var req services.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	msg, svcErr := vc.vendor.SendMessage(c.Request.Context(), userID, &req)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// GetMessages lists every thread the caller participates in.
func (vc *VendorController) GetMessages(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	items, svcErr := vc.vendor.ListMessages(c.Request.Context(), userID)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": items, "count": len(items)})
}

// ReplyMessage appends a reply to a thread.
func (vc *VendorController) ReplyMessage(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	messageID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req services.ReplyMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	msg, svcErr := vc.vendor.ReplyMessage(c.Request.Context(), userID, messageID, &req)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, msg)
}

// MarkMessageRead flags a thread as read.
func (vc *VendorController) MarkMessageRead(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	messageID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if svcErr := vc.vendor.MarkMessageRead(c.Request.Context(), userID, messageID); svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message marked as read"})
}

// RequestLeave files a vendor leave request.
func (vc *VendorController) RequestLeave(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var req services.CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	leave, svcErr := vc.vendor.RequestLeave(c.Request.Context(), userID, &req)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, leave)
}

// GetLeaves lists the caller's leave requests.
func (vc *VendorController) GetLeaves(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	items, svcErr := vc.vendor.ListLeaves(c.Request.Context(), userID)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaves": items, "count": len(items)})
}

// GetSalesReport aggregates the calling vendor's sales.
func (vc *VendorController) GetSalesReport(c *gin.Context) {
	vendorID, _, ok := currentUser(c)
	if !ok {
		return
	}

	report, svcErr := vc.vendor.BuildSalesReport(c.Request.Context(), vendorID)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, report)
}
