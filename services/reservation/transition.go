package reservation

import (
	"context"
	"time"

	"travelhub/models"
)

// lifecycle points at the status fields of a loaded reservation document.
type lifecycle struct {
	Status             *models.ReservationStatus
	ConfirmationNumber *string
	RejectionReason    *string
	ResponseDate       **time.Time
}

// transition applies a provider or admin decision. A confirmation number is
// issued only once; an empty reason never clears a stored one.
func transition(l lifecycle, target models.ReservationStatus, reason, prefix string, now time.Time) {
	*l.Status = target

	switch target {
	case models.StatusConfirmed:
		if *l.ConfirmationNumber == "" {
			*l.ConfirmationNumber = newConfirmationNumber(prefix, now)
		}
	case models.StatusCancelled:
		if reason != "" {
			*l.RejectionReason = reason
		}
	}

	at := now
	*l.ResponseDate = &at
}

// record adapts one stored reservation, whatever its collection, to the
// shared lifecycle logic.
type record struct {
	kind       models.ReservationKind
	id         string
	customerID string
	ownerID    string
	// ownerByEmail lets the owner key hold the provider's email.
	ownerByEmail bool
	title        string
	endDate      time.Time
	life         lifecycle

	save   func(ctx context.Context) error
	remove func(ctx context.Context) error
	view   func(ctx context.Context) (*models.ReservationView, error)
}

func (r *record) status() models.ReservationStatus {
	if *r.life.Status == "" {
		return models.StatusPending
	}
	return *r.life.Status
}

func (r *record) ownedBy(actor models.Actor) bool {
	if r.ownerID == "" {
		return false
	}
	if r.ownerID == actor.ID {
		return true
	}
	return r.ownerByEmail && actor.Email != "" && r.ownerID == actor.Email
}

// load fetches one reservation of the given kind and wraps it in a record.
func (s *DefaultReservationService) load(ctx context.Context, kind models.ReservationKind, id string) (*record, error) {
	switch kind {
	case models.KindService:
		doc, err := s.stores.Services.GetByID(ctx, id)
		if err != nil {
			return nil, notFoundAs(err, "reservation")
		}
		return &record{
			kind:       kind,
			id:         doc.ID,
			customerID: doc.CustomerID,
			ownerID:    doc.ProviderID,
			title:      "service reservation",
			endDate:    doc.CheckOutDate,
			life:       lifecycle{&doc.Status, &doc.ConfirmationNumber, &doc.RejectionReason, &doc.ResponseDate},
			save:       func(ctx context.Context) error { return s.stores.Services.Update(ctx, doc) },
			remove:     func(ctx context.Context) error { return s.stores.Services.Delete(ctx, doc.ID) },
			view: func(ctx context.Context) (*models.ReservationView, error) {
				svc, err := s.optionalService(ctx, doc.ServiceID)
				if err != nil {
					return nil, err
				}
				v := serviceView(*doc, svc)
				return &v, nil
			},
		}, nil

	case models.KindTour:
		doc, err := s.stores.Tours.GetByID(ctx, id)
		if err != nil {
			return nil, notFoundAs(err, "reservation")
		}
		return &record{
			kind:         kind,
			id:           doc.ID,
			customerID:   doc.CustomerID,
			ownerID:      doc.TourOwnerID,
			ownerByEmail: true,
			title:        "tour booking for " + doc.TourName,
			endDate:      doc.TourDate,
			life:         lifecycle{&doc.Status, &doc.ConfirmationNumber, &doc.RejectionReason, &doc.ResponseDate},
			save:         func(ctx context.Context) error { return s.stores.Tours.Update(ctx, doc) },
			remove:       func(ctx context.Context) error { return s.stores.Tours.Delete(ctx, doc.ID) },
			view: func(ctx context.Context) (*models.ReservationView, error) {
				tour, err := s.optionalTour(ctx, doc.TourID)
				if err != nil {
					return nil, err
				}
				v := tourView(*doc, tour)
				return &v, nil
			},
		}, nil

	case models.KindVehicle:
		doc, err := s.stores.Vehicles.GetByID(ctx, id)
		if err != nil {
			return nil, notFoundAs(err, "reservation")
		}
		doc.Status = doc.EffectiveStatus()
		return &record{
			kind:       kind,
			id:         doc.ID,
			customerID: doc.UserID,
			ownerID:    doc.VehicleOwnerID,
			title:      "vehicle rental " + doc.VehicleNumber,
			endDate:    doc.ReturnDate,
			life:       lifecycle{&doc.Status, &doc.ConfirmationNumber, &doc.RejectionReason, &doc.ResponseDate},
			save:       func(ctx context.Context) error { return s.stores.Vehicles.Update(ctx, doc) },
			remove:     func(ctx context.Context) error { return s.stores.Vehicles.Delete(ctx, doc.ID) },
			view: func(ctx context.Context) (*models.ReservationView, error) {
				vehicle, err := s.optionalVehicle(ctx, doc.VehicleID)
				if err != nil {
					return nil, err
				}
				customer, err := s.optionalUser(ctx, doc.UserID)
				if err != nil {
					return nil, err
				}
				v := vehicleView(*doc, vehicle, customer)
				return &v, nil
			},
		}, nil

	case models.KindRestaurant:
		doc, err := s.stores.Restaurants.GetByID(ctx, id)
		if err != nil {
			return nil, notFoundAs(err, "reservation")
		}
		return &record{
			kind:       kind,
			id:         doc.ID,
			customerID: doc.UserID,
			ownerID:    doc.RestaurantOwnerID,
			title:      "restaurant booking",
			endDate:    doc.Date,
			life:       lifecycle{&doc.Status, &doc.ConfirmationNumber, &doc.RejectionReason, &doc.ResponseDate},
			save:       func(ctx context.Context) error { return s.stores.Restaurants.Update(ctx, doc) },
			remove:     func(ctx context.Context) error { return s.stores.Restaurants.Delete(ctx, doc.ID) },
			view: func(ctx context.Context) (*models.ReservationView, error) {
				restaurant, err := s.optionalRestaurant(ctx, doc.RestaurantID)
				if err != nil {
					return nil, err
				}
				v := restaurantView(*doc, restaurant)
				return &v, nil
			},
		}, nil
	}
	return nil, errReservationNotFound
}
