package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/s-sucharita/Multi-Vendor-Marketplace/kafka"
	"github.com/s-sucharita/Multi-Vendor-Marketplace/models"
	"github.com/s-sucharita/Multi-Vendor-Marketplace/repository"
)

// OrderEvent is the payload published to the order event stream.
type OrderEvent struct {
	EventType  string    `json:"event_type"`
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	Status     string    `json:"status"`
	TotalPrice float64   `json:"total_price"`
	Timestamp  time.Time `json:"timestamp"`
}

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
	EventOrderCancelled     = "order.cancelled"
)

// Notifier creates notification records and publishes order events.
// Everything here is best-effort: failures are logged and swallowed, the
// primary operation never fails because of them.
type Notifier struct {
	notifications repository.NotificationRepository
	producer      kafka.ProducerAPI
	topic         string
	logger        *zap.Logger
}

func NewNotifier(notifications repository.NotificationRepository, producer kafka.ProducerAPI, topic string, logger *zap.Logger) *Notifier {
	return &Notifier{
		notifications: notifications,
		producer:      producer,
		topic:         topic,
		logger:        logger,
	}
}

// Notify writes a notification for the recipient. Errors are swallowed.
func (n *Notifier) Notify(ctx context.Context, recipientID uuid.UUID, typ, title, message string, relatedID *uuid.UUID, relatedType string) {
	err := n.notifications.Create(ctx, &models.Notification{
		RecipientID: recipientID,
		Type:        typ,
		Title:       title,
		Message:     message,
		RelatedID:   relatedID,
		RelatedType: relatedType,
	})
	if err != nil {
		n.logger.Warn("notification create failed",
			zap.String("recipient", recipientID.String()),
			zap.String("title", title),
			zap.Error(err),
		)
	}
}

// PublishOrderEvent emits an order lifecycle event if a producer is wired.
func (n *Notifier) PublishOrderEvent(eventType string, order *models.Order) {
	if n.producer == nil || n.topic == "" {
		return
	}

	payload, err := json.Marshal(OrderEvent{
		EventType:  eventType,
		OrderID:    order.ID.String(),
		CustomerID: order.CustomerID.String(),
		Status:     order.Status,
		TotalPrice: order.TotalPrice,
		Timestamp:  time.Now(),
	})
	if err != nil {
		n.logger.Warn("order event marshal failed", zap.Error(err))
		return
	}

	if err := n.producer.Publish(n.topic, payload); err != nil {
		// best-effort; never fail the request over the event stream
		n.logger.Warn("order event publish failed",
			zap.String("event", eventType),
			zap.Error(err),
		)
	}
}
