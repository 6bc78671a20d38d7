package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/s-sucharita/Multi-Vendor-Marketplace/models"
	"github.com/s-sucharita/Multi-Vendor-Marketplace/repository"
)

// NotificationService is the recipient-facing read side of notifications.
// Creation happens through the Notifier as a side effect of other operations.
type NotificationService struct {
	notifications repository.NotificationRepository
	logger        *zap.Logger
}

func NewNotificationService(notifications repository.NotificationRepository, logger *zap.Logger) *NotificationService {
	return &NotificationService{notifications: notifications, logger: logger}
}

// ListNotifications returns the recipient's most recent notifications.
func (s *NotificationService) ListNotifications(ctx context.Context, recipientID uuid.UUID, limit int) ([]models.Notification, *ServiceError) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	items, err := s.notifications.FindByRecipient(ctx, recipientID, limit)
	if err != nil {
		s.logger.Error("notification list failed", zap.Error(err))
		return nil, errInternal("Failed to fetch notifications")
	}
	return items, nil
}

// CountUnread returns the recipient's unread notification count.
func (s *NotificationService) CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, *ServiceError) {
	count, err := s.notifications.CountUnread(ctx, recipientID)
	if err != nil {
		s.logger.Error("unread count failed", zap.Error(err))
		return 0, errInternal("Failed to count notifications")
	}
	return count, nil
}

// MarkRead marks one of the recipient's notifications as read.
func (s *NotificationService) MarkRead(ctx context.Context, recipientID, notificationID uuid.UUID) *ServiceError {
	if err := s.notifications.MarkRead(ctx, notificationID, recipientID); err != nil {
		if isNotFound(err) {
			return errNotFound("Notification not found")
		}
		s.logger.Error("mark read failed", zap.Error(err))
		return errInternal("Failed to update notification")
	}
	return nil
}

// DeleteNotification removes one of the recipient's notifications.
func (s *NotificationService) DeleteNotification(ctx context.Context, recipientID, notificationID uuid.UUID) *ServiceError {
	if err := s.notifications.Delete(ctx, notificationID, recipientID); err != nil {
		if isNotFound(err) {
			return errNotFound("Notification not found")
		}
		s.logger.Error("notification delete failed", zap.Error(err))
		return errInternal("Failed to delete notification")
	}
	return nil
}
