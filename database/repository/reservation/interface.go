package reservationRepo

import (
	"context"

	"travelhub/models"
)

// Query narrows a store lookup. Empty fields are ignored.
type Query struct {
	// OwnerID matches the provider who owns the booked item.
	OwnerID string
	// OwnerEmail is accepted as an alternate owner key by stores that
	// historically recorded the owner's email instead of the id.
	OwnerEmail string
	CustomerID string
	Status     models.ReservationStatus
}

// Store is the persistence contract shared by every reservation collection.
type Store[T any] interface {
	Create(ctx context.Context, r *T) error
	GetByID(ctx context.Context, id string) (*T, error)
	// Update overwrites the stored document. There is no version check.
	Update(ctx context.Context, r *T) error
	Delete(ctx context.Context, id string) error
	Find(ctx context.Context, q Query) ([]T, error)
	Count(ctx context.Context, q Query) (int64, error)
}

type (
	ServiceReservationRepository    = Store[models.ServiceReservation]
	TourReservationRepository       = Store[models.TourReservation]
	VehicleReservationRepository    = Store[models.VehicleReservation]
	RestaurantReservationRepository = Store[models.RestaurantReservation]
)

// Repositories groups the four reservation stores.
type Repositories struct {
	Services    ServiceReservationRepository
	Tours       TourReservationRepository
	Vehicles    VehicleReservationRepository
	Restaurants RestaurantReservationRepository
}
