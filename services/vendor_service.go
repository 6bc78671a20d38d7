package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/s-sucharita/Multi-Vendor-Marketplace/models"
	"github.com/s-sucharita/Multi-Vendor-Marketplace/repository"
)

// CreateReturnRequest opens a return for one line item of a delivered order.
type CreateReturnRequest struct {
	OrderID   uuid.UUID `json:"order_id" binding:"required"`
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
	Reason    string    `json:"reason" binding:"required"`

	Description string `json:"description"`
}

// ResolveReturnRequest is the vendor's decision on a return.
type ResolveReturnRequest struct {
	Status     string `json:"status" binding:"required"`
	VendorNote string `json:"vendor_note"`
}

// CreateDisputeRequest opens a dispute against an order.
type CreateDisputeRequest struct {
	OrderID     uuid.UUID `json:"order_id" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Category    string    `json:"category" binding:"required"`
	Priority    string    `json:"priority"`
}

// RespondDisputeRequest carries the vendor's response or an admin resolution.
type RespondDisputeRequest struct {
	Status         string `json:"status"`
	VendorResponse string `json:"vendor_response"`
	Resolution     string `json:"resolution"`
}

// SendMessageRequest starts a message thread with a vendor or customer.
type SendMessageRequest struct {
	RecipientID uuid.UUID  `json:"recipient_id" binding:"required"`
	Subject     string     `json:"subject"`
	Message     string     `json:"message" binding:"required"`
	MessageType string     `json:"message_type"`
	OrderID     *uuid.UUID `json:"order_id"`
	ProductID   *uuid.UUID `json:"product_id"`
}

// ReplyMessageRequest appends one reply to an existing thread.
type ReplyMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// CreateLeaveRequest asks for a vendor leave of absence.
type CreateLeaveRequest struct {
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
	Reason    string    `json:"reason"`
}

// SalesReport aggregates a vendor's order history.
type SalesReport struct {
	VendorID      uuid.UUID `json:"vendor_id"`
	TotalOrders   int       `json:"total_orders"`
	TotalUnits    int       `json:"total_units"`
	TotalRevenue  float64   `json:"total_revenue"`
	StatusCounts  map[string]int `json:"status_counts"`
	GeneratedAt   time.Time `json:"generated_at"`
}

// VendorService covers vendor operational workflows: returns, disputes,
// messaging, leave requests and sales reporting. These are CRUD tables with
// status enums; the order lifecycle itself lives in OrderService.
type VendorService struct {
	returns  repository.ReturnRepository
	disputes repository.DisputeRepository
	messages repository.VendorMessageRepository
	leaves   repository.LeaveRepository
	orders   repository.OrderRepository
	products repository.ProductRepository
	tx       repository.TxManager
	notifier *Notifier
	logger   *zap.Logger
}

func NewVendorService(
	returns repository.ReturnRepository,
	disputes repository.DisputeRepository,
	messages repository.VendorMessageRepository,
	leaves repository.LeaveRepository,
	orders repository.OrderRepository,
	products repository.ProductRepository,
	tx repository.TxManager,
	notifier *Notifier,
	logger *zap.Logger,
) *VendorService {
	return &VendorService{
		returns:  returns,
		disputes: disputes,
		messages: messages,
		leaves:   leaves,
		orders:   orders,
		products: products,
		tx:       tx,
		notifier: notifier,
		logger:   logger,
	}
}

// CreateReturn opens a return request. The caller must be the order's
// customer and the product must be one of its line items.
func (s *VendorService) CreateReturn(ctx context.Context, customerID uuid.UUID, req *CreateReturnRequest) (*models.ReturnRequest, *ServiceError) {
	order, err := s.orders.FindByID(ctx, req.OrderID)
	if err != nil {
		if isNotFound(err) {
			return nil, errNotFound("Order not found")
		}
		s.logger.Error("order lookup failed", zap.Error(err))
		return nil, errInternal("Failed to create return request")
	}
	if order.CustomerID != customerID {
		return nil, errForbidden("Access denied")
	}

	var line *models.OrderItem
	for i := range order.Items {
		if order.Items[i].ProductID == req.ProductID {
			line = &order.Items[i]
			break
		}
	}
	if line == nil {
		return nil, errNotFound("Product is not part of this order")
	}
	if req.Quantity > line.Quantity {
		return nil, errBadRequest("Return quantity exceeds the ordered quantity")
	}

	ret := &models.ReturnRequest{
		OrderID:      order.ID,
		VendorID:     line.VendorID,
		CustomerID:   customerID,
		ProductID:    req.ProductID,
		Quantity:     req.Quantity,
		Reason:       req.Reason,
		Description:  req.Description,
		Status:       models.ReturnStatusPending,
		RefundAmount: line.Price * float64(req.Quantity),
	}
	if err := s.returns.Create(ctx, ret); err != nil {
		s.logger.Error("return create failed", zap.Error(err))
		return nil, errInternal("Failed to create return request")
	}

	s.notifier.Notify(ctx, line.VendorID, models.NotificationTypeVendor,
		"New Return Request", "A customer requested a return", &ret.ID, "ReturnRequest")
	return ret, nil
}

// ListReturns returns the vendor's return requests, optionally by status.
func (s *VendorService) ListReturns(ctx context.Context, vendorID uuid.UUID, status string) ([]models.ReturnRequest, *ServiceError) {
	items, err := s.returns.FindByVendorID(ctx, vendorID, status)
	if err != nil {
		s.logger.Error("return list failed", zap.Error(err))
		return nil, errInternal("Failed to fetch return requests")
	}
	return items, nil
}

// ResolveReturn lets the owning vendor approve, reject or complete a return.
func (s *VendorService) ResolveReturn(ctx context.Context, vendorID, returnID uuid.UUID, req *ResolveReturnRequest) (*models.ReturnRequest, *ServiceError) {
	switch req.Status {
	case models.ReturnStatusApproved, models.ReturnStatusRejected,
		models.ReturnStatusShipped, models.ReturnStatusCompleted:
	default:
		return nil, errBadRequest("Unknown return status")
	}

	ret, err := s.returns.FindByID(ctx, returnID)
	if err != nil {
		if isNotFound(err) {
			return nil, errNotFound("Return request not found")
		}
		s.logger.Error("return fetch failed", zap.Error(err))
		return nil, errInternal("Failed to fetch return request")
	}
	if ret.VendorID != vendorID {
		return nil, errForbidden("Access denied")
	}

	// Approval puts the returned units back on sale. Guarded on the previous
	// status so a repeated approval cannot restock twice.
	restock := req.Status == models.ReturnStatusApproved &&
		ret.Status == models.ReturnStatusPending

	ret.Status = req.Status
	ret.VendorNote = req.VendorNote
	if req.Status == models.ReturnStatusCompleted {
		now := time.Now()
		ret.ActualReturnDate = &now
	}
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.returns.Update(ctx, ret); err != nil {
			return err
		}
		if restock {
			return s.products.AdjustStock(ctx, ret.ProductID, ret.Quantity)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("return update failed", zap.Error(err))
		return nil, errInternal("Failed to update return request")
	}

	s.notifier.Notify(ctx, ret.CustomerID, models.NotificationTypeOrder,
		"Return Request Updated", "Your return request is now "+req.Status, &ret.ID, "ReturnRequest")
	return ret, nil
}

// CreateDispute opens a dispute: customers dispute against the order's
// vendors, so the order must belong to the caller.
func (s *VendorService) CreateDispute(ctx context.Context, customerID uuid.UUID, req *CreateDisputeRequest) (*models.Dispute, *ServiceError) {
	order, err := s.orders.FindByID(ctx, req.OrderID)
	if err != nil {
		if isNotFound(err) {
			return nil, errNotFound("Order not found")
		}
		s.logger.Error("order lookup failed", zap.Error(err))
		return nil, errInternal("Failed to create dispute")
	}
	if order.CustomerID != customerID {
		return nil, errForbidden("Access denied")
	}
	if len(order.Items) == 0 {
		return nil, errBadRequest("Order has no line items")
	}

	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}

	dispute := &models.Dispute{
		OrderID:     order.ID,
		VendorID:    order.Items[0].VendorID,
		CustomerID:  customerID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Status:      models.DisputeStatusOpen,
		Priority:    priority,
	}
	if err := s.disputes.Create(ctx, dispute); err != nil {
		s.logger.Error("dispute create failed", zap.Error(err))
		return nil, errInternal("Failed to create dispute")
	}

	s.notifier.Notify(ctx, dispute.VendorID, models.NotificationTypeVendor,
		"New Dispute", "A dispute was opened on one of your orders", &dispute.ID, "Dispute")
	return dispute, nil
}

// ListDisputes returns the vendor's disputes, optionally by status.
func (s *VendorService) ListDisputes(ctx context.Context, vendorID uuid.UUID, status string) ([]models.Dispute, *ServiceError) {
	items, err := s.disputes.FindByVendorID(ctx, vendorID, status)
	if err != nil {
		s.logger.Error("dispute list failed", zap.Error(err))
		return nil, errInternal("Failed to fetch disputes")
	}
	return items, nil
}

// RespondDispute records the vendor's response or an admin's resolution.
func (s *VendorService) RespondDispute(ctx context.Context, requesterID uuid.UUID, role string, disputeID uuid.UUID, req *RespondDisputeRequest) (*models.Dispute, *ServiceError) {
	dispute, err := s.disputes.FindByID(ctx, disputeID)
	if err != nil {
		if isNotFound(err) {
			return nil, errNotFound("Dispute not found")
		}
		s.logger.Error("dispute fetch failed", zap.Error(err))
		return nil, errInternal("Failed to fetch dispute")
	}
	if role != models.RoleAdmin && dispute.VendorID != requesterID {
		return nil, errForbidden("Access denied")
	}

	if req.VendorResponse != "" {
		dispute.VendorResponse = req.VendorResponse
		if dispute.Status == models.DisputeStatusOpen {
			dispute.Status = models.DisputeStatusInReview
		}
	}
	if req.Status != "" {
		switch req.Status {
		case models.DisputeStatusInReview, models.DisputeStatusResolved, models.DisputeStatusEscalated:
			dispute.Status = req.Status
		default:
			return nil, errBadRequest("Unknown dispute status")
		}
	}
	if dispute.Status == models.DisputeStatusResolved {
		now := time.Now()
		dispute.Resolution = req.Resolution
		dispute.ResolvedDate = &now
		dispute.ResolvedBy = &requesterID
	}

	if err := s.disputes.Update(ctx, dispute); err != nil {
		s.logger.Error("dispute update failed", zap.Error(err))
		return nil, errInternal("Failed to update dispute")
	}

	s.notifier.Notify(ctx, dispute.CustomerID, models.NotificationTypeOrder,
		"Dispute Updated", "Your dispute is now "+dispute.Status, &dispute.ID, "Dispute")
	return dispute, nil
}

// SendMessage starts a message thread.
func (s *VendorService) SendMessage(ctx context.Context, senderID uuid.UUID, req *SendMessageRequest) (*models.VendorMessage, *ServiceError) {
	msgType := req.MessageType
	if msgType == "" {
		msgType = "other"
	}

	msg := &models.VendorMessage{
		SenderID:    senderID,
		RecipientID: req.RecipientID,
		OrderID:     req.OrderID,
		ProductID:   req.ProductID,
		Subject:     req.Subject,
		Message:     req.Message,
		MessageType: msgType,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		s.logger.Error("message create failed", zap.Error(err))
		return nil, errInternal("Failed to send message")
	}

	s.notifier.Notify(ctx, req.RecipientID, models.NotificationTypeVendor,
		"New Message", "You received a new message", &msg.ID, "VendorMessage")
	return msg, nil
}

// ListMessages returns every thread the user participates in.
func (s *VendorService) ListMessages(ctx context.Context, userID uuid.UUID) ([]models.VendorMessage, *ServiceError) {
	items, err := s.messages.FindByParticipant(ctx, userID)
	if err != nil {
		s.logger.Error("message list failed", zap.Error(err))
		return nil, errInternal("Failed to fetch messages")
	}
	return items, nil
}

// ReplyMessage appends a reply to a thread the user participates in and
// flips the read flag for the counterparty.
func (s *VendorService) ReplyMessage(ctx context.Context, userID, messageID uuid.UUID, req *ReplyMessageRequest) (*models.VendorMessage, *ServiceError) {
	msg, err := s.messages.FindByID(ctx, messageID)
	if err != nil {
		if isNotFound(err) {
			return nil, errNotFound("Message not found")
		}
		s.logger.Error("message fetch failed", zap.Error(err))
		return nil, errInternal("Failed to fetch message")
	}
	if msg.SenderID != userID && msg.RecipientID != userID {
		return nil, errForbidden("Access denied")
	}

	msg.Replies = append(msg.Replies, models.VendorMessageReply{
		SenderID:  userID,
		Message:   req.Message,
		CreatedAt: time.Now(),
	})
	msg.IsRead = false
	if err := s.messages.Update(ctx, msg); err != nil {
		s.logger.Error("message update failed", zap.Error(err))
		return nil, errInternal("Failed to send reply")
	}

	counterparty := msg.SenderID
	if counterparty == userID {
		counterparty = msg.RecipientID
	}
	s.notifier.Notify(ctx, counterparty, models.NotificationTypeVendor,
		"New Reply", "You received a reply to your message", &msg.ID, "VendorMessage")
	return msg, nil
}

// MarkMessageRead marks a thread read for the recipient.
func (s *VendorService) MarkMessageRead(ctx context.Context, userID, messageID uuid.UUID) *ServiceError {
	msg, err := s.messages.FindByID(ctx, messageID)
	if err != nil {
		if isNotFound(err) {
			return errNotFound("Message not found")
		}
		s.logger.Error("message fetch failed", zap.Error(err))
		return errInternal("Failed to fetch message")
	}
	if msg.SenderID != userID && msg.RecipientID != userID {
		return errForbidden("Access denied")
	}

	msg.IsRead = true
	if err := s.messages.Update(ctx, msg); err != nil {
		s.logger.Error("message update failed", zap.Error(err))
		return errInternal("Failed to update message")
	}
	return nil
}

// RequestLeave files a leave request for admin review.
func (s *VendorService) RequestLeave(ctx context.Context, userID uuid.UUID, req *CreateLeaveRequest) (*models.LeaveRequest, *ServiceError) {
	if !req.EndDate.After(req.StartDate) {
		return nil, errBadRequest("End date must be after start date")
	}

	leave := &models.LeaveRequest{
		UserID:    userID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
		Status:    models.LeaveStatusPending,
	}
	if err := s.leaves.Create(ctx, leave); err != nil {
		s.logger.Error("leave create failed", zap.Error(err))
		return nil, errInternal("Failed to create leave request")
	}
	return leave, nil
}

// ListLeaves returns the caller's own leave requests.
func (s *VendorService) ListLeaves(ctx context.Context, userID uuid.UUID) ([]models.LeaveRequest, *ServiceError) {
	items, err := s.leaves.FindByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("leave list failed", zap.Error(err))
		return nil, errInternal("Failed to fetch leave requests")
	}
	return items, nil
}

// BuildSalesReport aggregates the vendor's line items across all their
// orders into counts and revenue.
func (s *VendorService) BuildSalesReport(ctx context.Context, vendorID uuid.UUID) (*SalesReport, *ServiceError) {
	// one big page; vendor order volumes stay small enough for a point report
	orders, _, err := s.orders.FindByVendorID(ctx, vendorID, 1, 1000)
	if err != nil {
		s.logger.Error("sales report query failed", zap.Error(err))
		return nil, errInternal("Failed to build sales report")
	}

	report := &SalesReport{
		VendorID:     vendorID,
		StatusCounts: make(map[string]int),
		GeneratedAt:  time.Now(),
	}
	for _, o := range orders {
		view := o.VendorView(vendorID)
		if len(view.Items) == 0 {
			continue
		}
		report.TotalOrders++
		report.StatusCounts[o.Status]++
		if o.Status == models.OrderStatusCancelled {
			continue
		}
		for _, it := range view.Items {
			report.TotalUnits += it.Quantity
			report.TotalRevenue += it.Price * float64(it.Quantity)
		}
	}
	return report, nil
}
