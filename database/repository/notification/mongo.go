package notificationRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"travelhub/database/repository"
	"travelhub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type mongoNotificationRepo struct {
	coll repository.Collection[models.Notification]
}

// NewMongoNotificationRepo returns a NotificationRepository backed by db.
func NewMongoNotificationRepo(db *mongo.Database, logger *zap.Logger) NotificationRepository {
	r := &mongoNotificationRepo{coll: repository.NewCollection[models.Notification](db, "notifications")}
	if err := r.coll.EnsureIndexes([]mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "read", Value: 1}, {Key: "createdAt", Value: -1}}},
	}); err != nil {
		logger.Warn("failed to ensure notification indexes", zap.Error(err))
	}
	return r
}

func userFilter(userID string, unreadOnly bool) bson.M {
	f := bson.M{"userId": userID}
	if unreadOnly {
		f["read"] = false
	}
	return f
}

func (r *mongoNotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	now := time.Now()
	n.CreatedAt = now
	n.UpdatedAt = now
	return r.coll.Insert(ctx, n)
}

func (r *mongoNotificationRepo) FindByUser(ctx context.Context, userID string, unreadOnly bool, skip, limit int64) ([]models.Notification, error) {
	ctx, cancel := repository.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "id", Value: 1}}).
		SetSkip(skip).
		SetLimit(limit)
	cursor, err := r.coll.Coll.Find(ctx, userFilter(userID, unreadOnly), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer cursor.Close(ctx)

	items := []models.Notification{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}
	return items, nil
}

func (r *mongoNotificationRepo) CountByUser(ctx context.Context, userID string, unreadOnly bool) (int64, error) {
	return r.coll.Count(ctx, userFilter(userID, unreadOnly))
}

func (r *mongoNotificationRepo) MarkRead(ctx context.Context, id, userID string) (*models.Notification, error) {
	ctx, cancel := repository.WithTimeout(ctx, repository.DefaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"read": true, "updatedAt": time.Now()}}

	var n models.Notification
	err := r.coll.Coll.FindOneAndUpdate(ctx, bson.M{"id": id, "userId": userID}, update, opts).Decode(&n)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to mark notification %s read: %w", id, err)
	}
	return &n, nil
}

func (r *mongoNotificationRepo) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	ctx, cancel := repository.WithTimeout(ctx, repository.DefaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"read": true, "updatedAt": time.Now()}}
	res, err := r.coll.Coll.UpdateMany(ctx, userFilter(userID, true), update)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return res.ModifiedCount, nil
}

func (r *mongoNotificationRepo) Delete(ctx context.Context, id, userID string) error {
	ctx, cancel := repository.WithTimeout(ctx, repository.DefaultTimeout)
	defer cancel()

	res, err := r.coll.Coll.DeleteOne(ctx, bson.M{"id": id, "userId": userID})
	if err != nil {
		return fmt.Errorf("failed to delete notification %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
