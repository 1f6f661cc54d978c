package user

import (
	"context"
	"errors"
	"strings"

	userRepo "travelhub/database/repository/user"
	"travelhub/models"
	"travelhub/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a customer or provider account and signs it in.
func (s *DefaultUserService) Register(ctx context.Context, req models.UserRegistration) (*models.UserAuthResponse, error) {
	if err := VerifyPasswordComplexity(req.Password); err != nil {
		return nil, err
	}
	role := req.Role
	if role == "" {
		role = models.RoleCustomer
	}
	if role == models.RoleAdmin {
		return nil, utils.NewAuthorizationError("admin accounts cannot self-register")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        strings.TrimSpace(req.Phone),
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			return nil, utils.NewValidationError("email is already registered", "email")
		}
		return nil, err
	}

	s.logger.Info("user registered", zap.String("userId", u.ID), zap.String("role", string(u.Role)))
	return s.issue(*u)
}

func (s *DefaultUserService) issue(u models.User) (*models.UserAuthResponse, error) {
	token, err := utils.GenerateToken(u, s.TokenTTL)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = ""
	return &models.UserAuthResponse{Token: token, User: u}, nil
}
