package handlers

import (
	"net/http"

	"travelhub/models"
	"travelhub/services/reservation"
	"travelhub/services/user"

	"github.com/gin-gonic/gin"
)

// AdminHandler encapsulates elevated admin-level operations.
type AdminHandler struct {
	users        user.UserService
	reservations reservation.ReservationService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(us user.UserService, rs reservation.ReservationService) *AdminHandler {
	return &AdminHandler{users: us, reservations: rs}
}

// StatsHandler returns the dashboard counters.
func (h *AdminHandler) StatsHandler(c *gin.Context) {
	stats, err := h.reservations.Stats(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to compute dashboard stats")
		return
	}
	respond(c, http.StatusOK, "", stats)
}

// GetAllUsersHandler returns all users, optionally narrowed by ?role=.
func (h *AdminHandler) GetAllUsersHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	users, err := h.users.GetAllUsers(c.Request.Context(), actor, models.Role(c.Query("role")))
	if err != nil {
		writeError(c, err, "Failed to fetch all users")
		return
	}
	count := len(users)
	c.JSON(http.StatusOK, models.APIResponse{Success: true, Data: users, Count: &count})
}

// GetAllServicesHandler lists catalog listings, optionally narrowed by ?type=.
func (h *AdminHandler) GetAllServicesHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	services, err := h.reservations.ListServices(c.Request.Context(), actor, models.ServiceType(c.Query("type")))
	if err != nil {
		writeError(c, err, "Failed to fetch services")
		return
	}
	count := len(services)
	c.JSON(http.StatusOK, models.APIResponse{Success: true, Data: services, Count: &count})
}
