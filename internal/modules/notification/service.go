package notification

import (
	"context"

	"github.com/georgemunganga/venuehub-backend/internal/platform/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notifier delivers in-app notifications. Delivery is best effort: failures
// are logged and never returned to the caller.
type Notifier interface {
	Notify(ctx context.Context, n Notice)
}

// Service defines the notification inbox business logic.
type Service interface {
	Notifier
	List(ctx context.Context, f ListFilter) ([]*Notification, int64, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type service struct {
	repo Repository
}

// NewService creates a new notification service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Notify(ctx context.Context, notice Notice) {
	if notice.UserID == uuid.Nil {
		return
	}
	n := &Notification{
		ID:      uuid.New(),
		UserID:  notice.UserID,
		Type:    notice.Type,
		Title:   notice.Title,
		Message: notice.Message,
		Link:    notice.Link,
	}
	if n.Type == "" {
		n.Type = TypeSystem
	}
	if err := s.repo.CreateNotification(ctx, n); err != nil {
		logger.FromContext(ctx).Warn("notification not delivered",
			zap.String("user_id", notice.UserID.String()),
			zap.String("type", string(n.Type)),
			zap.Error(err),
		)
	}
}

func (s *service) List(ctx context.Context, f ListFilter) ([]*Notification, int64, error) {
	return s.repo.ListNotifications(ctx, f)
}

func (s *service) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *service) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	return s.repo.MarkRead(ctx, id, userID)
}

func (s *service) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.MarkAllRead(ctx, userID)
}

func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return s.repo.DeleteNotification(ctx, id, userID)
}
