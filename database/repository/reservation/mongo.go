package reservationRepo

import (
	"context"
	"time"

	"travelhub/database/repository"
	"travelhub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	ServiceCollection    = "service_reservations"
	TourCollection       = "tour_reservations"
	VehicleCollection    = "vehicle_reservations"
	RestaurantCollection = "restaurant_reservations"
)

// mongoStore implements Store for one collection.
type mongoStore[T any] struct {
	coll   repository.Collection[T]
	fields fieldSet
	// prepare assigns id and timestamps on create or update.
	prepare func(r *T, creating bool)
	idOf    func(r *T) string
}

func (s *mongoStore[T]) Create(ctx context.Context, r *T) error {
	s.prepare(r, true)
	return s.coll.Insert(ctx, r)
}

func (s *mongoStore[T]) GetByID(ctx context.Context, id string) (*T, error) {
	return s.coll.FindByID(ctx, id)
}

func (s *mongoStore[T]) Update(ctx context.Context, r *T) error {
	s.prepare(r, false)
	return s.coll.ReplaceByID(ctx, s.idOf(r), r)
}

func (s *mongoStore[T]) Delete(ctx context.Context, id string) error {
	return s.coll.DeleteByID(ctx, id)
}

func (s *mongoStore[T]) Find(ctx context.Context, q Query) ([]T, error) {
	return s.coll.Find(ctx, buildFilter(s.fields, q), newestFirst(s.fields))
}

func (s *mongoStore[T]) Count(ctx context.Context, q Query) (int64, error) {
	return s.coll.Count(ctx, buildFilter(s.fields, q))
}

func (s *mongoStore[T]) ensureIndexes() error {
	return s.coll.EnsureIndexes([]mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true).SetName("id_unique")},
		{Keys: bson.D{{Key: s.fields.owner, Value: 1}, {Key: s.fields.created, Value: -1}}, Options: options.Index().SetName("owner_created")},
		{Keys: bson.D{{Key: s.fields.customer, Value: 1}, {Key: s.fields.created, Value: -1}}, Options: options.Index().SetName("customer_created")},
		{Keys: bson.D{{Key: "status", Value: 1}}, Options: options.Index().SetName("status")},
	})
}

func newID(id *string) {
	if *id == "" {
		*id = uuid.New().String()
	}
}

// NewMongoRepositories binds the four reservation stores to db and ensures their indexes.
func NewMongoRepositories(db *mongo.Database, logger *zap.Logger) *Repositories {
	services := &mongoStore[models.ServiceReservation]{
		coll:   repository.NewCollection[models.ServiceReservation](db, ServiceCollection),
		fields: serviceFields,
		prepare: func(r *models.ServiceReservation, creating bool) {
			now := time.Now()
			if creating {
				newID(&r.ID)
				r.CreatedAt = now
			}
			r.UpdatedAt = now
		},
		idOf: func(r *models.ServiceReservation) string { return r.ID },
	}
	tours := &mongoStore[models.TourReservation]{
		coll:   repository.NewCollection[models.TourReservation](db, TourCollection),
		fields: tourFields,
		prepare: func(r *models.TourReservation, creating bool) {
			now := time.Now()
			if creating {
				newID(&r.ID)
				r.CreatedAt = now
			}
			r.UpdatedAt = now
		},
		idOf: func(r *models.TourReservation) string { return r.ID },
	}
	vehicles := &mongoStore[models.VehicleReservation]{
		coll:   repository.NewCollection[models.VehicleReservation](db, VehicleCollection),
		fields: vehicleFields,
		prepare: func(r *models.VehicleReservation, creating bool) {
			if creating {
				newID(&r.ID)
				r.Date = time.Now()
			}
		},
		idOf: func(r *models.VehicleReservation) string { return r.ID },
	}
	restaurants := &mongoStore[models.RestaurantReservation]{
		coll:   repository.NewCollection[models.RestaurantReservation](db, RestaurantCollection),
		fields: restaurantFields,
		prepare: func(r *models.RestaurantReservation, creating bool) {
			now := time.Now()
			if creating {
				newID(&r.ID)
				r.CreatedAt = now
			}
			r.UpdatedAt = now
		},
		idOf: func(r *models.RestaurantReservation) string { return r.ID },
	}

	for name, ensure := range map[string]func() error{
		ServiceCollection:    services.ensureIndexes,
		TourCollection:       tours.ensureIndexes,
		VehicleCollection:    vehicles.ensureIndexes,
		RestaurantCollection: restaurants.ensureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Warn("failed to ensure reservation indexes", zap.String("collection", name), zap.Error(err))
		}
	}

	return &Repositories{
		Services:    services,
		Tours:       tours,
		Vehicles:    vehicles,
		Restaurants: restaurants,
	}
}
