package reservation

import (
	"context"
	"fmt"
	"time"

	"travelhub/config"
	catalogRepo "travelhub/database/repository/catalog"
	reservationRepo "travelhub/database/repository/reservation"
	userRepo "travelhub/database/repository/user"
	"travelhub/models"
	"travelhub/services/notification"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ReservationService is the reservation lifecycle across every store.
type ReservationService interface {
	CreateServiceReservation(ctx context.Context, actor models.Actor, req models.CreateServiceReservationRequest) (*models.ServiceReservation, error)
	CreateTourReservation(ctx context.Context, actor models.Actor, req models.CreateTourReservationRequest) (*models.TourReservation, error)
	CreateVehicleReservation(ctx context.Context, actor models.Actor, req models.CreateVehicleReservationRequest) (*models.VehicleReservation, error)
	CreateRestaurantReservation(ctx context.Context, actor models.Actor, req models.CreateRestaurantReservationRequest) (*models.RestaurantReservation, error)

	UpdateStatus(ctx context.Context, actor models.Actor, kind models.ReservationKind, id string, req models.StatusUpdateRequest) (*models.ReservationView, error)
	CancelByCustomer(ctx context.Context, actor models.Actor, kind models.ReservationKind, id string, reason string) (*models.ReservationView, error)

	ListForProvider(ctx context.Context, actor models.Actor, filter models.ReservationFilter) (*models.ReservationPage, error)
	ListAll(ctx context.Context, actor models.Actor, filter models.ReservationFilter) (*models.ReservationPage, error)
	ListForCustomer(ctx context.Context, actor models.Actor, filter models.ReservationFilter) (*models.ReservationPage, error)
	GetDetails(ctx context.Context, actor models.Actor, kind models.ReservationKind, id string) (*models.ReservationView, error)
	Delete(ctx context.Context, actor models.Actor, kind models.ReservationKind, id string) error

	Stats(ctx context.Context) (*models.ReservationStats, error)
	ListServices(ctx context.Context, actor models.Actor, typ models.ServiceType) ([]models.Service, error)
}

// Settings are the tunables the service reads from configuration.
type Settings struct {
	DriverFeePerDay       float64
	NotifyAdminsOnBooking bool
	DefaultPageLimit      int
	MaxPageLimit          int
}

// SettingsFromConfig copies the reservation settings out of AppConfig.
func SettingsFromConfig() Settings {
	return Settings{
		DriverFeePerDay:       config.AppConfig.DriverFeePerDay,
		NotifyAdminsOnBooking: config.AppConfig.NotifyAdminsOnBooking,
		DefaultPageLimit:      config.AppConfig.DefaultPageLimit,
		MaxPageLimit:          config.AppConfig.MaxPageLimit,
	}
}

// DefaultReservationService is the production implementation.
type DefaultReservationService struct {
	stores   *reservationRepo.Repositories
	catalog  catalogRepo.CatalogRepository
	users    userRepo.UserRepository
	notifier notification.Notifier
	settings Settings
	logger   *zap.Logger
	validate *validator.Validate
	now      func() time.Time
}

func NewDefaultReservationService(
	stores *reservationRepo.Repositories,
	catalog catalogRepo.CatalogRepository,
	users userRepo.UserRepository,
	notifier notification.Notifier,
	settings Settings,
	logger *zap.Logger,
) (*DefaultReservationService, error) {
	if stores == nil || stores.Services == nil || stores.Tours == nil || stores.Vehicles == nil || stores.Restaurants == nil {
		return nil, fmt.Errorf("reservation service initialization error: reservation stores are incomplete")
	}
	if catalog == nil || users == nil || notifier == nil || logger == nil {
		return nil, fmt.Errorf("reservation service initialization error: catalog, user repo, notifier or logger is nil")
	}
	if settings.DefaultPageLimit < 1 {
		settings.DefaultPageLimit = 20
	}
	return &DefaultReservationService{
		stores:   stores,
		catalog:  catalog,
		users:    users,
		notifier: notifier,
		settings: settings,
		logger:   logger,
		validate: newValidator(),
		now:      time.Now,
	}, nil
}
