package userRepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"travelhub/database/repository"
	"travelhub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll repository.Collection[models.User]
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo(db *mongo.Database, logger *zap.Logger) UserRepository {
	repo := &MongoUserRepo{coll: repository.NewCollection[models.User](db, "users")}

	if err := repo.ensureIndexes(); err != nil {
		logger.Warn("failed to create user indexes", zap.Error(err))
	}
	return repo
}

func roleFilter(role models.Role) bson.M {
	if role == "" {
		return bson.M{}
	}
	return bson.M{"role": role}
}

// GetByID retrieves a user by its unique ID.
func (r *MongoUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.coll.FindByID(ctx, id)
}

// GetByEmail retrieves a user by its email address.
func (r *MongoUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.coll.FindOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))})
}

// GetByIDs resolves users in one round trip.
func (r *MongoUserRepo) GetByIDs(ctx context.Context, ids []string) (map[string]models.User, error) {
	return r.coll.FindByIDs(ctx, ids, func(u models.User) string { return u.ID })
}

// GetAll retrieves users, newest first, without password hashes.
func (r *MongoUserRepo) GetAll(ctx context.Context, role models.Role) ([]models.User, error) {
	ctx, cancel := repository.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().
		SetProjection(bson.M{"passwordHash": 0}).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Coll.Find(ctx, roleFilter(role), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

// ListIDsByRole returns the ids of active users holding role.
func (r *MongoUserRepo) ListIDsByRole(ctx context.Context, role models.Role) ([]string, error) {
	ctx, cancel := repository.WithTimeout(ctx, repository.DefaultTimeout)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"id": 1})
	cursor, err := r.coll.Coll.Find(ctx, bson.M{"role": role, "isActive": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s ids: %w", role, err)
	}
	defer cursor.Close(ctx)

	var ids []string
	for cursor.Next(ctx) {
		var u struct {
			ID string `bson:"id"`
		}
		if err := cursor.Decode(&u); err != nil {
			return nil, fmt.Errorf("failed to decode user id: %w", err)
		}
		ids = append(ids, u.ID)
	}
	return ids, cursor.Err()
}

// Count counts users holding role, or all users when role is empty.
func (r *MongoUserRepo) Count(ctx context.Context, role models.Role) (int64, error) {
	return r.coll.Count(ctx, roleFilter(role))
}

// Create inserts a new user document.
func (r *MongoUserRepo) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := r.coll.Insert(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}
