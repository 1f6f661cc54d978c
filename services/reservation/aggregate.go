package reservation

import (
	"context"
	"sort"

	reservationRepo "travelhub/database/repository/reservation"
	"travelhub/models"
	"travelhub/utils"

	"golang.org/x/sync/errgroup"
)

// ListForProvider merges every store's reservations owned by actor.
func (s *DefaultReservationService) ListForProvider(ctx context.Context, actor models.Actor, filter models.ReservationFilter) (*models.ReservationPage, error) {
	if actor.Role != models.RoleProvider && !actor.IsAdmin() {
		return nil, utils.NewAuthorizationError("provider access required")
	}
	return s.aggregate(ctx, reservationRepo.Query{OwnerID: actor.ID, OwnerEmail: actor.Email}, filter)
}

// ListAll merges every store's reservations for the admin dashboard.
func (s *DefaultReservationService) ListAll(ctx context.Context, actor models.Actor, filter models.ReservationFilter) (*models.ReservationPage, error) {
	if !actor.IsAdmin() {
		return nil, utils.NewAuthorizationError("admin access required")
	}
	return s.aggregate(ctx, reservationRepo.Query{}, filter)
}

// ListForCustomer merges every store's reservations made by actor.
func (s *DefaultReservationService) ListForCustomer(ctx context.Context, actor models.Actor, filter models.ReservationFilter) (*models.ReservationPage, error) {
	return s.aggregate(ctx, reservationRepo.Query{CustomerID: actor.ID}, filter)
}

// kindsFor resolves the type filter into the stores to query.
func kindsFor(typ string) ([]models.ReservationKind, bool) {
	if typ == "" || typ == "all" {
		return models.AllKinds, true
	}
	kind, ok := models.ParseReservationKind(typ)
	if !ok {
		return nil, false
	}
	return []models.ReservationKind{kind}, true
}

// aggregate fans out to the selected stores, joins the results, and pages
// through them in memory. Any store failure fails the whole listing.
func (s *DefaultReservationService) aggregate(ctx context.Context, scope reservationRepo.Query, filter models.ReservationFilter) (*models.ReservationPage, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, utils.NewValidationError("Invalid status filter", "status")
	}
	kinds, ok := kindsFor(filter.Type)
	if !ok {
		return nil, utils.NewValidationError("Invalid type filter", "type")
	}
	scope.Status = filter.Status

	results := make([][]models.ReservationView, len(kinds))
	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		g.Go(func() error {
			views, err := s.collect(gctx, kind, scope)
			if err != nil {
				return err
			}
			results[i] = views
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []models.ReservationView
	for _, views := range results {
		for _, v := range views {
			if filter.Status != "" && v.Status != filter.Status {
				continue
			}
			merged = append(merged, v)
		}
	}
	sortNewestFirst(merged)

	return s.paginate(merged, filter.Page, filter.Limit), nil
}

// sortNewestFirst orders by creation time descending, then id ascending.
func sortNewestFirst(views []models.ReservationView) {
	sort.SliceStable(views, func(i, j int) bool {
		if !views[i].CreatedAt.Equal(views[j].CreatedAt) {
			return views[i].CreatedAt.After(views[j].CreatedAt)
		}
		return views[i].ID < views[j].ID
	})
}

func (s *DefaultReservationService) pageBounds(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = s.settings.DefaultPageLimit
	}
	if s.settings.MaxPageLimit > 0 && limit > s.settings.MaxPageLimit {
		limit = s.settings.MaxPageLimit
	}
	return page, limit
}

func (s *DefaultReservationService) paginate(all []models.ReservationView, page, limit int) *models.ReservationPage {
	page, limit = s.pageBounds(page, limit)
	total := len(all)

	// Compare before multiplying so a huge page cannot overflow the offset.
	start := total
	if page-1 <= total/limit {
		start = min((page-1)*limit, total)
	}
	end := start + min(limit, total-start)

	items := make([]models.ReservationView, end-start)
	copy(items, all[start:end])

	return &models.ReservationPage{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: pageCount(total, limit),
	}
}

func pageCount(total, limit int) int {
	n := total / limit
	if total%limit != 0 {
		n++
	}
	return n
}

// collect loads one store and normalizes it, skipping records whose
// referenced item no longer exists.
func (s *DefaultReservationService) collect(ctx context.Context, kind models.ReservationKind, q reservationRepo.Query) ([]models.ReservationView, error) {
	switch kind {
	case models.KindService:
		return s.collectServices(ctx, q)
	case models.KindTour:
		return s.collectTours(ctx, q)
	case models.KindVehicle:
		return s.collectVehicles(ctx, q)
	case models.KindRestaurant:
		return s.collectRestaurants(ctx, q)
	}
	return nil, nil
}

func (s *DefaultReservationService) collectServices(ctx context.Context, q reservationRepo.Query) ([]models.ReservationView, error) {
	docs, err := s.stores.Services.Find(ctx, q)
	if err != nil || len(docs) == 0 {
		return nil, err
	}
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ServiceID)
	}
	services, err := s.catalog.GetServicesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]models.ReservationView, 0, len(docs))
	for _, d := range docs {
		svc, ok := services[d.ServiceID]
		if !ok {
			continue
		}
		views = append(views, serviceView(d, &svc))
	}
	return views, nil
}

func (s *DefaultReservationService) collectTours(ctx context.Context, q reservationRepo.Query) ([]models.ReservationView, error) {
	docs, err := s.stores.Tours.Find(ctx, q)
	if err != nil || len(docs) == 0 {
		return nil, err
	}
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.TourID)
	}
	tours, err := s.catalog.GetToursByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]models.ReservationView, 0, len(docs))
	for _, d := range docs {
		tour, ok := tours[d.TourID]
		if !ok {
			continue
		}
		views = append(views, tourView(d, &tour))
	}
	return views, nil
}

func (s *DefaultReservationService) collectVehicles(ctx context.Context, q reservationRepo.Query) ([]models.ReservationView, error) {
	docs, err := s.stores.Vehicles.Find(ctx, q)
	if err != nil || len(docs) == 0 {
		return nil, err
	}
	vehicleIDs := make([]string, 0, len(docs))
	userIDs := make([]string, 0, len(docs))
	for _, d := range docs {
		vehicleIDs = append(vehicleIDs, d.VehicleID)
		userIDs = append(userIDs, d.UserID)
	}

	g, gctx := errgroup.WithContext(ctx)
	var vehicles map[string]models.Vehicle
	var users map[string]models.User
	g.Go(func() (err error) {
		vehicles, err = s.catalog.GetVehiclesByIDs(gctx, vehicleIDs)
		return err
	})
	g.Go(func() (err error) {
		users, err = s.users.GetByIDs(gctx, userIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	views := make([]models.ReservationView, 0, len(docs))
	for _, d := range docs {
		vehicle, ok := vehicles[d.VehicleID]
		if !ok {
			continue
		}
		customer, ok := users[d.UserID]
		if !ok {
			continue
		}
		views = append(views, vehicleView(d, &vehicle, &customer))
	}
	return views, nil
}

func (s *DefaultReservationService) collectRestaurants(ctx context.Context, q reservationRepo.Query) ([]models.ReservationView, error) {
	docs, err := s.stores.Restaurants.Find(ctx, q)
	if err != nil || len(docs) == 0 {
		return nil, err
	}
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.RestaurantID)
	}
	restaurants, err := s.catalog.GetRestaurantsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]models.ReservationView, 0, len(docs))
	for _, d := range docs {
		restaurant, ok := restaurants[d.RestaurantID]
		if !ok {
			continue
		}
		views = append(views, restaurantView(d, &restaurant))
	}
	return views, nil
}
