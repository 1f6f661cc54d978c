package notification

import (
	"context"
	"errors"
	"fmt"
	"math"

	"travelhub/config"
	"travelhub/database/repository"
	notificationRepo "travelhub/database/repository/notification"
	"travelhub/models"
	"travelhub/utils"

	"go.uber.org/zap"
)

// CreateRequest is an admin-authored notification.
type CreateRequest struct {
	UserID  string                  `json:"userId" binding:"required"`
	Type    models.NotificationType `json:"type" binding:"required"`
	Title   string                  `json:"title" binding:"required,max=200"`
	Message string                  `json:"message" binding:"required,max=2000"`
	Data    map[string]any          `json:"data"`
}

// NotificationService exposes a recipient's inbox.
type NotificationService interface {
	List(ctx context.Context, actor models.Actor, page, limit int, unreadOnly bool) (*models.NotificationPage, error)
	Create(ctx context.Context, actor models.Actor, req CreateRequest) (*models.Notification, error)
	MarkRead(ctx context.Context, actor models.Actor, id string) (*models.Notification, error)
	MarkAllRead(ctx context.Context, actor models.Actor) (int64, error)
	Delete(ctx context.Context, actor models.Actor, id string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	repo   notificationRepo.NotificationRepository
	logger *zap.Logger
}

func NewDefaultNotificationService(repo notificationRepo.NotificationRepository, logger *zap.Logger) (*DefaultNotificationService, error) {
	if repo == nil || logger == nil {
		return nil, fmt.Errorf("notification service initialization error: repository or logger is nil")
	}
	return &DefaultNotificationService{repo: repo, logger: logger}, nil
}

// normalizePage clamps page and limit into the configured bounds.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = config.AppConfig.DefaultPageLimit
		if limit < 1 {
			limit = 20
		}
	}
	if maxLimit := config.AppConfig.MaxPageLimit; maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	// (page-1)*limit must stay a valid skip.
	if maxPage := math.MaxInt64 / int64(limit); int64(page) > maxPage {
		page = int(maxPage)
	}
	return page, limit
}

func (s *DefaultNotificationService) List(ctx context.Context, actor models.Actor, page, limit int, unreadOnly bool) (*models.NotificationPage, error) {
	page, limit = normalizePage(page, limit)

	items, err := s.repo.FindByUser(ctx, actor.ID, unreadOnly, int64((page-1)*limit), int64(limit))
	if err != nil {
		return nil, err
	}
	total, err := s.repo.CountByUser(ctx, actor.ID, unreadOnly)
	if err != nil {
		return nil, err
	}
	unread := total
	if !unreadOnly {
		if unread, err = s.repo.CountByUser(ctx, actor.ID, true); err != nil {
			return nil, err
		}
	}

	return &models.NotificationPage{
		Items:       items,
		Total:       total,
		UnreadCount: unread,
		Page:        page,
		Limit:       limit,
	}, nil
}

func (s *DefaultNotificationService) Create(ctx context.Context, actor models.Actor, req CreateRequest) (*models.Notification, error) {
	if !actor.IsAdmin() {
		return nil, utils.NewAuthorizationError("only admins can create notifications")
	}
	if !req.Type.IsValid() {
		return nil, utils.NewValidationError("invalid notification type", "type")
	}

	n := &models.Notification{
		UserID:  req.UserID,
		Type:    req.Type,
		Title:   req.Title,
		Message: req.Message,
		Data:    req.Data,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	s.logger.Info("notification created",
		zap.String("notificationId", n.ID),
		zap.String("userId", n.UserID),
		zap.String("createdBy", actor.ID),
	)
	return n, nil
}

func (s *DefaultNotificationService) MarkRead(ctx context.Context, actor models.Actor, id string) (*models.Notification, error) {
	n, err := s.repo.MarkRead(ctx, id, actor.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, utils.NewNotFoundError("notification")
	}
	return n, err
}

func (s *DefaultNotificationService) MarkAllRead(ctx context.Context, actor models.Actor) (int64, error) {
	return s.repo.MarkAllRead(ctx, actor.ID)
}

func (s *DefaultNotificationService) Delete(ctx context.Context, actor models.Actor, id string) error {
	err := s.repo.Delete(ctx, id, actor.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return utils.NewNotFoundError("notification")
	}
	return err
}
