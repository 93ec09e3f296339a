package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/ssmapp/safety_management_system/internal/models"
)

// NotificationRepository определяет контракт для работы с бд уведомлений
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}

// NotificationService определяет контракт чтения уведомлений пользователем
type NotificationService interface {
	ListMyNotifications(ctx context.Context, session *models.Session, limit int) ([]*models.Notification, error)
	MarkRead(ctx context.Context, session *models.Session, id uuid.UUID) error
	MarkAllRead(ctx context.Context, session *models.Session) error
}

type notificationService struct {
	repo   NotificationRepository
	logger *logrus.Logger
}

func NewNotificationService(repo NotificationRepository, logger *logrus.Logger) NotificationService {
	return &notificationService{
		repo:   repo,
		logger: logger,
	}
}

// ListMyNotifications возвращает уведомления вызывающего, новые первыми
func (s *notificationService) ListMyNotifications(ctx context.Context, session *models.Session, limit int) ([]*models.Notification, error) {
	if limit < 1 || limit > 100 {
		limit = 50
	}

	notifications, err := s.repo.ListByUser(ctx, session.UserID, limit)
	if err != nil {
		return nil, fmt.Errorf("service: could not list notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead помечает уведомление прочитанным. Чужое уведомление пометить нельзя.
func (s *notificationService) MarkRead(ctx context.Context, session *models.Session, id uuid.UUID) error {
	if err := s.repo.MarkRead(ctx, id, session.UserID); err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":         "notification",
			"method":          "MarkRead",
			"notification_id": id,
		}).WithError(err).Warn("Failed to mark notification as read")
		return fmt.Errorf("service: could not mark notification as read: %w", err)
	}
	return nil
}

// MarkAllRead помечает все уведомления вызывающего прочитанными
func (s *notificationService) MarkAllRead(ctx context.Context, session *models.Session) error {
	if err := s.repo.MarkAllRead(ctx, session.UserID); err != nil {
		return fmt.Errorf("service: could not mark notifications as read: %w", err)
	}
	return nil
}
