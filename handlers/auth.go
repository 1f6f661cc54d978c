package handlers

import (
	"net/http"

	"travelhub/middleware"
	"travelhub/models"
	"travelhub/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves registration, login and logout.
type AuthHandler struct {
	users user.UserService
}

func NewAuthHandler(users user.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// RegisterHandler creates an account and returns a token for it.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req models.UserRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.users.Register(c.Request.Context(), req)
	if err != nil {
		writeError(c, err, "User registration failed", zap.String("email", req.Email))
		return
	}
	respond(c, http.StatusCreated, "Registration successful", resp)
}

// LoginHandler exchanges credentials for a token.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err, "Login failed", zap.String("email", req.Email))
		return
	}
	respond(c, http.StatusOK, "Login successful", resp)
}

// LogoutHandler revokes the caller's bearer token.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	token, remaining := middleware.CurrentToken(c)
	if err := h.users.Logout(c.Request.Context(), token, remaining); err != nil {
		writeError(c, err, "Logout failed", zap.String("userId", actor.ID))
		return
	}
	respond(c, http.StatusOK, "Logged out", nil)
}
