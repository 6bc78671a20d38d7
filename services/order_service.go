package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/s-sucharita/Multi-Vendor-Marketplace/models"
	"github.com/s-sucharita/Multi-Vendor-Marketplace/repository"
)

// OrderLineRequest is one requested line item.
type OrderLineRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// CreateOrderRequest places an order for a set of line items.
type CreateOrderRequest struct {
	Items           []OrderLineRequest     `json:"items" binding:"required,dive"`
	DeliveryAddress models.DeliveryAddress `json:"delivery_address"`
	PaymentMethod   string                 `json:"payment_method"`
	FromCart        bool                   `json:"from_cart"`
}

// BuyNowRequest places a single-item order directly from a product page.
type BuyNowRequest struct {
	ProductID       uuid.UUID              `json:"product_id" binding:"required"`
	Quantity        int                    `json:"quantity"`
	DeliveryAddress models.DeliveryAddress `json:"delivery_address"`
	PaymentMethod   string                 `json:"payment_method"`
}

// UpdateStatusRequest transitions an order's status. Pack and ship are this
// same operation with preset arguments.
type UpdateStatusRequest struct {
	Status         string `json:"status" binding:"required"`
	TrackingNumber string `json:"tracking_number"`
}

type OrderResponse struct {
	Orders []models.Order `json:"orders"`
	Meta   MetaData       `json:"meta"`
}

type MetaData struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	TotalOrders int64 `json:"total_orders"`
	TotalPages  int64 `json:"total_pages"`
	HasMore     bool  `json:"has_more"`
}

// OrderService coordinates order placement and fulfillment: stock, payment
// and notification records stay consistent with the order's status.
type OrderService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	payments repository.PaymentRepository
	carts    repository.CartRepository
	tx       repository.TxManager
	notifier *Notifier
	logger   *zap.Logger
}

func NewOrderService(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	payments repository.PaymentRepository,
	carts repository.CartRepository,
	tx repository.TxManager,
	notifier *Notifier,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orders:   orders,
		products: products,
		payments: payments,
		carts:    carts,
		tx:       tx,
		notifier: notifier,
		logger:   logger,
	}
}

// PlaceOrder validates every line item, decrements stock, and creates the
// order and its payment record in one transaction. Nothing is persisted if
// any line item fails. Vendor notifications and the order event go out after
// commit, best-effort.
func (s *OrderService) PlaceOrder(ctx context.Context, customerID uuid.UUID, req *CreateOrderRequest) (*models.Order, *ServiceError) {
	if len(req.Items) == 0 {
		return nil, errBadRequest("At least one item is required")
	}
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return nil, errBadRequest("Quantity must be at least 1")
		}
	}

	var created *models.Order
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		items := make([]models.OrderItem, 0, len(req.Items))
		total := 0.0

		for _, line := range req.Items {
			product, err := s.products.FindByID(ctx, line.ProductID)
			if err != nil {
				if isNotFound(err) {
					return errNotFound("Product not found")
				}
				return err
			}

			// conditional decrement; rolls the whole order back on failure
			if err := s.products.AdjustStock(ctx, product.ID, -line.Quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					return errBadRequest(fmt.Sprintf("Insufficient stock for %s", product.Name))
				}
				return err
			}

			items = append(items, models.OrderItem{
				ProductID:    product.ID,
				VendorID:     product.VendorID,
				Quantity:     line.Quantity,
				Price:        product.Price,
				ProductName:  product.Name,
				ProductImage: product.Image,
			})
			total += product.Price * float64(line.Quantity)
		}

		order := &models.Order{
			CustomerID:      customerID,
			TotalPrice:      total,
			Status:          models.OrderStatusPending,
			DeliveryAddress: req.DeliveryAddress,
			PaymentMethod:   req.PaymentMethod,
			PaymentStatus:   models.PaymentStatusPending,
			Items:           items,
		}
		if err := s.orders.Create(ctx, order); err != nil {
			return err
		}

		payment := &models.Payment{
			OrderID:    order.ID,
			CustomerID: customerID,
			Amount:     total,
			Method:     req.PaymentMethod,
			Status:     models.PaymentStatusPending,
		}
		if err := s.payments.Create(ctx, payment); err != nil {
			return err
		}

		created = order
		return nil
	})
	if err != nil {
		var svcErr *ServiceError
		if errors.As(err, &svcErr) {
			return nil, svcErr
		}
		s.logger.Error("order placement failed", zap.Error(err))
		return nil, errInternal("Failed to create order")
	}

	s.notifyVendors(ctx, created, "New Order Received",
		fmt.Sprintf("You received order %s", created.ID))
	s.notifier.PublishOrderEvent(EventOrderCreated, created)

	if req.FromCart {
		if err := s.carts.DeleteCart(ctx, customerID.String()); err != nil {
			s.logger.Warn("cart clear after order failed",
				zap.String("customer", customerID.String()),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("order created",
		zap.String("order", created.ID.String()),
		zap.String("customer", customerID.String()),
		zap.Float64("total", created.TotalPrice),
	)
	return created, nil
}

// BuyNow places a single-item order directly from a product.
func (s *OrderService) BuyNow(ctx context.Context, customerID uuid.UUID, req *BuyNowRequest) (*models.Order, *ServiceError) {
	qty := req.Quantity
	if qty == 0 {
		qty = 1
	}
	return s.PlaceOrder(ctx, customerID, &CreateOrderRequest{
		Items:           []OrderLineRequest{{ProductID: req.ProductID, Quantity: qty}},
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   req.PaymentMethod,
	})
}

// GetOrder returns the order if the requester is its customer, a vendor on
// at least one line item, or an admin.
func (s *OrderService) GetOrder(ctx context.Context, requesterID uuid.UUID, role string, orderID uuid.UUID) (*models.Order, *ServiceError) {
	order, svcErr := s.findOrder(ctx, orderID)
	if svcErr != nil {
		return nil, svcErr
	}

	if !canAccessOrder(order, requesterID, role) {
		return nil, errForbidden("Access denied")
	}
	return order, nil
}

// ListCustomerOrders retrieves paginated orders for a customer.
func (s *OrderService) ListCustomerOrders(ctx context.Context, customerID uuid.UUID, page, limit int) (*OrderResponse, *ServiceError) {
	orders, total, err := s.orders.FindByCustomerID(ctx, customerID, page, limit)
	if err != nil {
		s.logger.Error("failed to fetch customer orders", zap.Error(err))
		return nil, errInternal("Failed to fetch orders")
	}
	return buildOrderResponse(orders, total, page, limit), nil
}

// ListVendorOrders retrieves orders containing the vendor's line items, with
// each order's items filtered down to that vendor's subset.
func (s *OrderService) ListVendorOrders(ctx context.Context, vendorID uuid.UUID, page, limit int) (*OrderResponse, *ServiceError) {
	orders, total, err := s.orders.FindByVendorID(ctx, vendorID, page, limit)
	if err != nil {
		s.logger.Error("failed to fetch vendor orders", zap.Error(err))
		return nil, errInternal("Failed to fetch orders")
	}

	filtered := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		filtered = append(filtered, o.VendorView(vendorID))
	}
	return buildOrderResponse(filtered, total, page, limit), nil
}

// ListAllOrders retrieves paginated orders across all customers (admin only).
func (s *OrderService) ListAllOrders(ctx context.Context, page, limit int) (*OrderResponse, *ServiceError) {
	orders, total, err := s.orders.FindAll(ctx, page, limit)
	if err != nil {
		s.logger.Error("failed to fetch all orders", zap.Error(err))
		return nil, errInternal("Failed to fetch orders")
	}
	return buildOrderResponse(orders, total, page, limit), nil
}

// UpdateStatus transitions the order forward and notifies the customer. Only
// a vendor on the order or an admin may call it.
func (s *OrderService) UpdateStatus(ctx context.Context, requesterID uuid.UUID, role string, orderID uuid.UUID, req *UpdateStatusRequest) (*models.Order, *ServiceError) {
	if !models.ValidOrderStatus(req.Status) {
		return nil, errBadRequest("Unknown order status")
	}

	order, svcErr := s.findOrder(ctx, orderID)
	if svcErr != nil {
		return nil, svcErr
	}

	if role != models.RoleAdmin && !order.HasVendor(requesterID) {
		return nil, errForbidden("Access denied")
	}

	if !models.CanTransition(order.Status, req.Status) {
		return nil, errConflict(fmt.Sprintf("Cannot move order from %s to %s", order.Status, req.Status))
	}
	if req.Status == models.OrderStatusCancelled {
		// cancellation is the customer's operation, with restock semantics
		return nil, errConflict("Use the cancel operation to cancel an order")
	}

	order.Status = req.Status
	message := fmt.Sprintf("Your order status has been updated to: %s", req.Status)
	if req.Status == models.OrderStatusShipped && req.TrackingNumber != "" {
		order.TrackingNumber = req.TrackingNumber
		message = fmt.Sprintf("Your order has shipped. Tracking number: %s", req.TrackingNumber)
	}

	if err := s.orders.Update(ctx, order); err != nil {
		s.logger.Error("order status update failed", zap.Error(err))
		return nil, errInternal("Failed to update order status")
	}

	s.notifier.Notify(ctx, order.CustomerID, models.NotificationTypeOrder,
		"Order Status Updated", message, &order.ID, "Order")
	s.notifier.PublishOrderEvent(EventOrderStatusChanged, order)

	return order, nil
}

// CancelOrder cancels a still-cancellable order: restocks every line item,
// marks the payment failed, and sets the status to Cancelled.
func (s *OrderService) CancelOrder(ctx context.Context, customerID uuid.UUID, orderID uuid.UUID) (*models.Order, *ServiceError) {
	var cancelled *models.Order
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		order, err := s.orders.FindByID(ctx, orderID)
		if err != nil {
			if isNotFound(err) {
				return errNotFound("Order not found")
			}
			return err
		}

		if order.CustomerID != customerID {
			return errForbidden("Access denied")
		}
		if !models.IsCancellable(order.Status) {
			return errConflict(fmt.Sprintf("Cannot cancel an order in status %s", order.Status))
		}

		for _, item := range order.Items {
			if err := s.products.AdjustStock(ctx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		order.Status = models.OrderStatusCancelled
		order.PaymentStatus = models.PaymentStatusFailed
		if err := s.orders.Update(ctx, order); err != nil {
			return err
		}
		if err := s.payments.UpdateStatus(ctx, order.ID, models.PaymentStatusFailed); err != nil {
			return err
		}

		cancelled = order
		return nil
	})
	if err != nil {
		var svcErr *ServiceError
		if errors.As(err, &svcErr) {
			return nil, svcErr
		}
		s.logger.Error("order cancellation failed", zap.Error(err))
		return nil, errInternal("Failed to cancel order")
	}

	s.notifyVendors(ctx, cancelled, "Order Cancelled",
		fmt.Sprintf("Order %s was cancelled by the customer", cancelled.ID))
	s.notifier.PublishOrderEvent(EventOrderCancelled, cancelled)

	return cancelled, nil
}

// AppendMessage appends one entry to the order's message log and notifies
// the other parties.
func (s *OrderService) AppendMessage(ctx context.Context, senderID uuid.UUID, role string, orderID uuid.UUID, itemID *uuid.UUID, body string) (*models.OrderMessage, *ServiceError) {
	if body == "" {
		return nil, errBadRequest("Message body is required")
	}

	order, svcErr := s.findOrder(ctx, orderID)
	if svcErr != nil {
		return nil, svcErr
	}
	if !canAccessOrder(order, senderID, role) {
		return nil, errForbidden("Access denied")
	}

	if itemID != nil {
		found := false
		for _, it := range order.Items {
			if it.ID == *itemID {
				found = true
				break
			}
		}
		if !found {
			return nil, errNotFound("Order item not found")
		}
	}

	msg := &models.OrderMessage{
		OrderID:  order.ID,
		ItemID:   itemID,
		SenderID: senderID,
		Body:     body,
	}
	if err := s.orders.AppendMessage(ctx, msg); err != nil {
		s.logger.Error("order message append failed", zap.Error(err))
		return nil, errInternal("Failed to add message")
	}

	// notify the counterparty: vendors when the customer writes, the
	// customer otherwise
	if senderID == order.CustomerID {
		s.notifyVendors(ctx, order, "New Order Message",
			fmt.Sprintf("New message on order %s", order.ID))
	} else {
		s.notifier.Notify(ctx, order.CustomerID, models.NotificationTypeOrder,
			"New Order Message", fmt.Sprintf("New message on order %s", order.ID),
			&order.ID, "Order")
	}

	return msg, nil
}

func (s *OrderService) findOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, *ServiceError) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if isNotFound(err) {
			return nil, errNotFound("Order not found")
		}
		s.logger.Error("failed to fetch order", zap.Error(err))
		return nil, errInternal("Failed to fetch order")
	}
	return order, nil
}

// notifyVendors sends one notification per distinct vendor on the order.
func (s *OrderService) notifyVendors(ctx context.Context, order *models.Order, title, message string) {
	seen := make(map[uuid.UUID]bool)
	for _, item := range order.Items {
		if seen[item.VendorID] {
			continue
		}
		seen[item.VendorID] = true
		s.notifier.Notify(ctx, item.VendorID, models.NotificationTypeOrder,
			title, message, &order.ID, "Order")
	}
}

func canAccessOrder(order *models.Order, requesterID uuid.UUID, role string) bool {
	if role == models.RoleAdmin {
		return true
	}
	if order.CustomerID == requesterID {
		return true
	}
	return order.HasVendor(requesterID)
}

func buildOrderResponse(orders []models.Order, total int64, page, limit int) *OrderResponse {
	return &OrderResponse{
		Orders: orders,
		Meta: MetaData{
			Page:        page,
			Limit:       limit,
			TotalOrders: total,
			TotalPages:  calculateTotalPages(total, limit),
			HasMore:     total > int64(page*limit),
		},
	}
}

func calculateTotalPages(total int64, limit int) int64 {
	if limit == 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}
