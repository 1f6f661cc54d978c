package user

import (
	"context"
	"fmt"
	"time"

	userRepo "travelhub/database/repository/user"
	"travelhub/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type UserService interface {
	// Registration and authentication
	Register(ctx context.Context, req models.UserRegistration) (*models.UserAuthResponse, error)
	Login(ctx context.Context, email, password string) (*models.UserAuthResponse, error)
	Logout(ctx context.Context, token string, expiresIn time.Duration) error

	// Admin / Utility
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetAllUsers(ctx context.Context, actor models.Actor, role models.Role) ([]models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Cache    *redis.Client
	TokenTTL time.Duration
	logger   *zap.Logger
}

func NewDefaultUserService(repo userRepo.UserRepository, cache *redis.Client, tokenTTL time.Duration, logger *zap.Logger) (*DefaultUserService, error) {
	if repo == nil || logger == nil {
		return nil, fmt.Errorf("user service initialization error: repository or logger is nil")
	}
	if tokenTTL <= 0 {
		tokenTTL = 72 * time.Hour
	}
	return &DefaultUserService{Repo: repo, Cache: cache, TokenTTL: tokenTTL, logger: logger}, nil
}
