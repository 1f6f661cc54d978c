package notification

import (
	"context"
	"time"

	notificationRepo "travelhub/database/repository/notification"
	"travelhub/models"
	"travelhub/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Notifier is the outbound sink reservation flows publish to. Notify never
// reports failure; delivery problems are logged by the implementation.
type Notifier interface {
	Notify(ctx context.Context, recipientID, title, message string, typ models.NotificationType, data map[string]any)
}

// DirectNotifier persists notifications in a detached goroutine.
type DirectNotifier struct {
	repo   notificationRepo.NotificationRepository
	logger *zap.Logger
}

func NewDirectNotifier(repo notificationRepo.NotificationRepository, logger *zap.Logger) *DirectNotifier {
	return &DirectNotifier{repo: repo, logger: logger}
}

func (n *DirectNotifier) Notify(ctx context.Context, recipientID, title, message string, typ models.NotificationType, data map[string]any) {
	if recipientID == "" {
		return
	}
	payload := models.NotificationPayload{
		RecipientID: recipientID,
		Title:       title,
		Message:     message,
		Type:        typ,
		Data:        data,
		QueuedAt:    time.Now(),
	}
	// The request context is cancelled once the response is written.
	detached := context.WithoutCancel(ctx)
	go func() {
		if err := n.Deliver(detached, payload); err != nil {
			n.logger.Error("failed to deliver notification",
				zap.String("recipientId", recipientID),
				zap.String("type", string(typ)),
				zap.Error(err),
			)
		}
	}()
}

// Deliver writes payload synchronously. The queue worker calls it directly.
func (n *DirectNotifier) Deliver(ctx context.Context, p models.NotificationPayload) error {
	return n.repo.Create(ctx, &models.Notification{
		UserID:  p.RecipientID,
		Type:    p.Type,
		Title:   p.Title,
		Message: p.Message,
		Data:    p.Data,
	})
}

// TaskEnqueuer is the subset of *asynq.Client used to publish tasks.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueNotifier publishes notifications to the asynq queue and falls back to
// a direct write when the queue is unreachable.
type QueueNotifier struct {
	queue    TaskEnqueuer
	fallback Notifier
	logger   *zap.Logger
}

func NewQueueNotifier(queue TaskEnqueuer, fallback Notifier, logger *zap.Logger) *QueueNotifier {
	return &QueueNotifier{queue: queue, fallback: fallback, logger: logger}
}

func (n *QueueNotifier) Notify(ctx context.Context, recipientID, title, message string, typ models.NotificationType, data map[string]any) {
	if recipientID == "" {
		return
	}
	task, opts, err := tasks.NewNotificationTask(models.NotificationPayload{
		RecipientID: recipientID,
		Title:       title,
		Message:     message,
		Type:        typ,
		Data:        data,
		QueuedAt:    time.Now(),
	})
	if err == nil {
		if _, err = n.queue.EnqueueContext(ctx, task, opts...); err == nil {
			return
		}
	}

	n.logger.Warn("notification enqueue failed, writing directly",
		zap.String("recipientId", recipientID),
		zap.String("type", string(typ)),
		zap.Error(err),
	)
	if n.fallback != nil {
		n.fallback.Notify(ctx, recipientID, title, message, typ, data)
	}
}
