package notification

import (
	"context"

	notificationRepo "travelhub/database/repository/notification"
	"travelhub/models"

	"github.com/hibiken/asynq"
)

type mockRepo struct {
	CreateFn      func(ctx context.Context, n *models.Notification) error
	FindByUserFn  func(ctx context.Context, userID string, unreadOnly bool, skip, limit int64) ([]models.Notification, error)
	CountByUserFn func(ctx context.Context, userID string, unreadOnly bool) (int64, error)
	MarkReadFn    func(ctx context.Context, id, userID string) (*models.Notification, error)
	MarkAllReadFn func(ctx context.Context, userID string) (int64, error)
	DeleteFn      func(ctx context.Context, id, userID string) error
}

var _ notificationRepo.NotificationRepository = (*mockRepo)(nil)

func (m *mockRepo) Create(ctx context.Context, n *models.Notification) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, n)
	}
	return nil
}

func (m *mockRepo) FindByUser(ctx context.Context, userID string, unreadOnly bool, skip, limit int64) ([]models.Notification, error) {
	if m.FindByUserFn != nil {
		return m.FindByUserFn(ctx, userID, unreadOnly, skip, limit)
	}
	return nil, nil
}

func (m *mockRepo) CountByUser(ctx context.Context, userID string, unreadOnly bool) (int64, error) {
	if m.CountByUserFn != nil {
		return m.CountByUserFn(ctx, userID, unreadOnly)
	}
	return 0, nil
}

func (m *mockRepo) MarkRead(ctx context.Context, id, userID string) (*models.Notification, error) {
	if m.MarkReadFn != nil {
		return m.MarkReadFn(ctx, id, userID)
	}
	return nil, nil
}

func (m *mockRepo) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	if m.MarkAllReadFn != nil {
		return m.MarkAllReadFn(ctx, userID)
	}
	return 0, nil
}

func (m *mockRepo) Delete(ctx context.Context, id, userID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id, userID)
	}
	return nil
}

type mockEnqueuer struct {
	EnqueueFn func(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

func (m *mockEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	return m.EnqueueFn(ctx, task, opts...)
}

type recordingNotifier struct {
	calls []models.NotificationPayload
}

func (r *recordingNotifier) Notify(_ context.Context, recipientID, title, message string, typ models.NotificationType, data map[string]any) {
	r.calls = append(r.calls, models.NotificationPayload{
		RecipientID: recipientID,
		Title:       title,
		Message:     message,
		Type:        typ,
		Data:        data,
	})
}
