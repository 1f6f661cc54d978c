package notificationRepo

import (
	"context"

	"travelhub/models"
)

// NotificationRepository persists per-user notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	// FindByUser returns one page of the user's notifications, newest first.
	FindByUser(ctx context.Context, userID string, unreadOnly bool, skip, limit int64) ([]models.Notification, error)
	CountByUser(ctx context.Context, userID string, unreadOnly bool) (int64, error)
	// MarkRead flags a single notification owned by userID as read.
	MarkRead(ctx context.Context, id, userID string) (*models.Notification, error)
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	// Delete removes a notification owned by userID.
	Delete(ctx context.Context, id, userID string) error
}
