package reservation

import (
	"context"
	"errors"

	"travelhub/database/repository"
	"travelhub/models"
)

// The optional* helpers return nil, nil when the referenced document is gone.

func (s *DefaultReservationService) optionalService(ctx context.Context, id string) (*models.Service, error) {
	svc, err := s.catalog.GetService(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return svc, err
}

func (s *DefaultReservationService) optionalTour(ctx context.Context, id string) (*models.Tour, error) {
	tour, err := s.catalog.GetTour(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return tour, err
}

func (s *DefaultReservationService) optionalVehicle(ctx context.Context, id string) (*models.Vehicle, error) {
	vehicle, err := s.catalog.GetVehicle(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return vehicle, err
}

func (s *DefaultReservationService) optionalRestaurant(ctx context.Context, id string) (*models.Restaurant, error) {
	restaurant, err := s.catalog.GetRestaurant(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return restaurant, err
}

func (s *DefaultReservationService) optionalUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return user, err
}
