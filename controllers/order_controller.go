package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/s-sucharita/Multi-Vendor-Marketplace/models"
	"github.com/s-sucharita/Multi-Vendor-Marketplace/services"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// CreateOrder places an order for the authenticated customer.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	order, svcErr := oc.orders.PlaceOrder(c.Request.Context(), userID, &req)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// BuyNow places a single-item order straight from a product page.
func (oc *OrderController) BuyNow(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var req services.BuyNowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	order, svcErr := oc.orders.BuyNow(c.Request.Context(), userID, &req)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// GetOrderByID returns one order, subject to the access rules.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}
	orderID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	order, svcErr := oc.orders.GetOrder(c.Request.Context(), userID, role, orderID)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, order)
}

// GetMyOrders returns the caller's orders: the customer's purchases, or for
// vendors the orders containing their line items.
func (oc *OrderController) GetMyOrders(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}
	page, limit := parsePaginationParams(c)

	var result *services.OrderResponse
	var svcErr *services.ServiceError
	if role == models.RoleVendor {
		result, svcErr = oc.orders.ListVendorOrders(c.Request.Context(), userID, page, limit)
	} else {
		result, svcErr = oc.orders.ListCustomerOrders(c.Request.Context(), userID, page, limit)
	}
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetAllOrders returns every order, paginated. Admin only, gated by routing.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	page, limit := parsePaginationParams(c)

	result, svcErr := oc.orders.ListAllOrders(c.Request.Context(), page, limit)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpdateOrderStatus transitions the order. Pack and ship use this endpoint
// with preset status values.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}
	orderID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req services.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	order, svcErr := oc.orders.UpdateStatus(c.Request.Context(), userID, role, orderID, &req)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, order)
}

// CancelOrder cancels the caller's own order.
func (oc *OrderController) CancelOrder(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	orderID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	order, svcErr := oc.orders.CancelOrder(c.Request.Context(), userID, orderID)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, order)
}

// AddOrderMessage appends one entry to the order's message log.
func (oc *OrderController) AddOrderMessage(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}
	orderID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		ItemID *uuid.UUID `json:"item_id"`
		Body   string     `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	msg, svcErr := oc.orders.AppendMessage(c.Request.Context(), userID, role, orderID, req.ItemID, req.Body)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, msg)
}
