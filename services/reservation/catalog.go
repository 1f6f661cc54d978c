package reservation

import (
	"context"

	"travelhub/models"
	"travelhub/utils"
)

// ListServices is the admin view of every catalog listing, narrowed by type.
func (s *DefaultReservationService) ListServices(ctx context.Context, actor models.Actor, typ models.ServiceType) ([]models.Service, error) {
	if !actor.IsAdmin() {
		return nil, utils.NewAuthorizationError("admin access required")
	}
	if typ != "" && !typ.IsValid() {
		return nil, utils.NewValidationError("Invalid type filter", "type")
	}
	return s.catalog.ListServices(ctx, typ)
}
