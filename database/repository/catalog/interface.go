package catalogRepo

import (
	"context"

	"travelhub/models"
)

// CatalogRepository reads the bookable items reservations point at.
// Catalog maintenance lives elsewhere; only lookups are exposed here.
type CatalogRepository interface {
	GetService(ctx context.Context, id string) (*models.Service, error)
	GetServicesByIDs(ctx context.Context, ids []string) (map[string]models.Service, error)
	// ListServices returns every listing, newest first; an empty typ matches all.
	ListServices(ctx context.Context, typ models.ServiceType) ([]models.Service, error)

	GetTour(ctx context.Context, id string) (*models.Tour, error)
	GetToursByIDs(ctx context.Context, ids []string) (map[string]models.Tour, error)

	GetVehicle(ctx context.Context, id string) (*models.Vehicle, error)
	GetVehiclesByIDs(ctx context.Context, ids []string) (map[string]models.Vehicle, error)

	GetRestaurant(ctx context.Context, id string) (*models.Restaurant, error)
	GetRestaurantsByIDs(ctx context.Context, ids []string) (map[string]models.Restaurant, error)
}
