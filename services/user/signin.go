package user

import (
	"context"
	"errors"
	"time"

	"travelhub/database/repository"
	"travelhub/models"
	"travelhub/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var errInvalidCredentials = utils.NewValidationError("invalid email or password")

// Login verifies the password and issues a fresh token.
func (s *DefaultUserService) Login(ctx context.Context, email, password string) (*models.UserAuthResponse, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		s.logger.Error("Login: failed to fetch user", zap.Error(err))
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, errInvalidCredentials
	}
	if !u.IsActive {
		return nil, utils.NewAuthorizationError("account is disabled")
	}
	return s.issue(*u)
}

// Logout revokes token for the rest of its lifetime.
func (s *DefaultUserService) Logout(ctx context.Context, token string, expiresIn time.Duration) error {
	return utils.RevokeToken(ctx, s.Cache, token, expiresIn)
}
