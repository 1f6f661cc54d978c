package user

import (
	"context"

	"travelhub/models"
	"travelhub/utils"
)

func (s *DefaultUserService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = ""
	return u, nil
}

// GetAllUsers lists accounts for the admin dashboard.
func (s *DefaultUserService) GetAllUsers(ctx context.Context, actor models.Actor, role models.Role) ([]models.User, error) {
	if !actor.IsAdmin() {
		return nil, utils.NewAuthorizationError("admin access required")
	}
	return s.Repo.GetAll(ctx, role)
}
