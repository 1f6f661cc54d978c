package userRepo

import (
	"context"

	"travelhub/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by their unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by their email, including the password hash.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByIDs resolves many users at once, keyed by id. Unknown ids are absent.
	GetByIDs(ctx context.Context, ids []string) (map[string]models.User, error)
	// GetAll lists users, optionally restricted to one role.
	GetAll(ctx context.Context, role models.Role) ([]models.User, error)
	// ListIDsByRole returns the ids of every active user holding role.
	ListIDsByRole(ctx context.Context, role models.Role) ([]string, error)
	// Count counts users, optionally restricted to one role.
	Count(ctx context.Context, role models.Role) (int64, error)
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
}
