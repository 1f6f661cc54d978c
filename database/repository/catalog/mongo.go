package catalogRepo

import (
	"context"

	"travelhub/database/repository"
	"travelhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type mongoCatalogRepo struct {
	services    repository.Collection[models.Service]
	tours       repository.Collection[models.Tour]
	vehicles    repository.Collection[models.Vehicle]
	restaurants repository.Collection[models.Restaurant]
}

// NewMongoCatalogRepo returns a CatalogRepository backed by db.
func NewMongoCatalogRepo(db *mongo.Database, logger *zap.Logger) CatalogRepository {
	r := &mongoCatalogRepo{
		services:    repository.NewCollection[models.Service](db, "services"),
		tours:       repository.NewCollection[models.Tour](db, "tours"),
		vehicles:    repository.NewCollection[models.Vehicle](db, "vehicles"),
		restaurants: repository.NewCollection[models.Restaurant](db, "restaurants"),
	}
	if err := r.services.EnsureIndexes([]mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "providerId", Value: 1}}},
	}); err != nil {
		logger.Warn("failed to ensure service indexes", zap.Error(err))
	}
	return r
}

func (r *mongoCatalogRepo) GetService(ctx context.Context, id string) (*models.Service, error) {
	return r.services.FindByID(ctx, id)
}

func (r *mongoCatalogRepo) GetServicesByIDs(ctx context.Context, ids []string) (map[string]models.Service, error) {
	return r.services.FindByIDs(ctx, ids, func(s models.Service) string { return s.ID })
}

func (r *mongoCatalogRepo) ListServices(ctx context.Context, typ models.ServiceType) ([]models.Service, error) {
	filter := bson.M{}
	if typ != "" {
		filter["type"] = typ
	}
	return r.services.Find(ctx, filter, bson.D{{Key: "createdAt", Value: -1}, {Key: "id", Value: 1}})
}

func (r *mongoCatalogRepo) GetTour(ctx context.Context, id string) (*models.Tour, error) {
	return r.tours.FindByID(ctx, id)
}

func (r *mongoCatalogRepo) GetToursByIDs(ctx context.Context, ids []string) (map[string]models.Tour, error) {
	return r.tours.FindByIDs(ctx, ids, func(t models.Tour) string { return t.ID })
}

func (r *mongoCatalogRepo) GetVehicle(ctx context.Context, id string) (*models.Vehicle, error) {
	return r.vehicles.FindByID(ctx, id)
}

func (r *mongoCatalogRepo) GetVehiclesByIDs(ctx context.Context, ids []string) (map[string]models.Vehicle, error) {
	return r.vehicles.FindByIDs(ctx, ids, func(v models.Vehicle) string { return v.ID })
}

func (r *mongoCatalogRepo) GetRestaurant(ctx context.Context, id string) (*models.Restaurant, error) {
	return r.restaurants.FindByID(ctx, id)
}

func (r *mongoCatalogRepo) GetRestaurantsByIDs(ctx context.Context, ids []string) (map[string]models.Restaurant, error) {
	return r.restaurants.FindByIDs(ctx, ids, func(x models.Restaurant) string { return x.ID })
}
