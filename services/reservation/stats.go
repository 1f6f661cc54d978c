package reservation

import (
	"context"
	"sync"

	reservationRepo "travelhub/database/repository/reservation"
	"travelhub/models"

	"golang.org/x/sync/errgroup"
)

type counter interface {
	Count(ctx context.Context, q reservationRepo.Query) (int64, error)
}

func (s *DefaultReservationService) counters() map[models.ReservationKind]counter {
	return map[models.ReservationKind]counter{
		models.KindService:    s.stores.Services,
		models.KindTour:       s.stores.Tours,
		models.KindVehicle:    s.stores.Vehicles,
		models.KindRestaurant: s.stores.Restaurants,
	}
}

// Stats gathers the dashboard counters.
func (s *DefaultReservationService) Stats(ctx context.Context) (*models.ReservationStats, error) {
	stats := &models.ReservationStats{
		PendingByKind: make(map[models.ReservationKind]int64, len(models.AllKinds)),
		TotalByKind:   make(map[models.ReservationKind]int64, len(models.AllKinds)),
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		stats.TotalUsers, err = s.users.Count(gctx, "")
		return err
	})
	g.Go(func() (err error) {
		stats.ActiveProviders, err = s.users.Count(gctx, models.RoleProvider)
		return err
	})
	for kind, c := range s.counters() {
		g.Go(func() error {
			total, err := c.Count(gctx, reservationRepo.Query{})
			if err != nil {
				return err
			}
			pending, err := c.Count(gctx, reservationRepo.Query{Status: models.StatusPending})
			if err != nil {
				return err
			}
			mu.Lock()
			stats.TotalByKind[kind] = total
			stats.PendingByKind[kind] = pending
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for kind, n := range stats.TotalByKind {
		stats.TotalReservations += n
		stats.PendingReservations += stats.PendingByKind[kind]
	}
	return stats, nil
}
