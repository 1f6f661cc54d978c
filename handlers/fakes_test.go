package handlers

import (
	"context"
	"time"

	"travelhub/models"
	"travelhub/services/notification"
	"travelhub/services/reservation"
	"travelhub/services/user"
)

type fakeReservations struct {
	createService func(models.Actor, models.CreateServiceReservationRequest) (*models.ServiceReservation, error)
	updateStatus  func(models.Actor, models.ReservationKind, string, models.StatusUpdateRequest) (*models.ReservationView, error)
	cancel        func(models.Actor, models.ReservationKind, string, string) (*models.ReservationView, error)
	list          func(models.Actor, models.ReservationFilter) (*models.ReservationPage, error)
	details       func(models.Actor, models.ReservationKind, string) (*models.ReservationView, error)
	deleteFn      func(models.Actor, models.ReservationKind, string) error
	stats         func() (*models.ReservationStats, error)
	services      func(models.Actor, models.ServiceType) ([]models.Service, error)
}

var _ reservation.ReservationService = (*fakeReservations)(nil)

func (f *fakeReservations) CreateServiceReservation(_ context.Context, a models.Actor, req models.CreateServiceReservationRequest) (*models.ServiceReservation, error) {
	return f.createService(a, req)
}

func (f *fakeReservations) CreateTourReservation(context.Context, models.Actor, models.CreateTourReservationRequest) (*models.TourReservation, error) {
	return &models.TourReservation{ID: "t1", Status: models.StatusPending}, nil
}

func (f *fakeReservations) CreateVehicleReservation(context.Context, models.Actor, models.CreateVehicleReservationRequest) (*models.VehicleReservation, error) {
	return &models.VehicleReservation{ID: "v1", Status: models.StatusPending}, nil
}

func (f *fakeReservations) CreateRestaurantReservation(context.Context, models.Actor, models.CreateRestaurantReservationRequest) (*models.RestaurantReservation, error) {
	return &models.RestaurantReservation{ID: "r1", Status: models.StatusPending}, nil
}

func (f *fakeReservations) UpdateStatus(_ context.Context, a models.Actor, k models.ReservationKind, id string, req models.StatusUpdateRequest) (*models.ReservationView, error) {
	return f.updateStatus(a, k, id, req)
}

func (f *fakeReservations) CancelByCustomer(_ context.Context, a models.Actor, k models.ReservationKind, id, reason string) (*models.ReservationView, error) {
	return f.cancel(a, k, id, reason)
}

func (f *fakeReservations) ListForProvider(_ context.Context, a models.Actor, filter models.ReservationFilter) (*models.ReservationPage, error) {
	return f.list(a, filter)
}

func (f *fakeReservations) ListAll(_ context.Context, a models.Actor, filter models.ReservationFilter) (*models.ReservationPage, error) {
	return f.list(a, filter)
}

func (f *fakeReservations) ListForCustomer(_ context.Context, a models.Actor, filter models.ReservationFilter) (*models.ReservationPage, error) {
	return f.list(a, filter)
}

func (f *fakeReservations) GetDetails(_ context.Context, a models.Actor, k models.ReservationKind, id string) (*models.ReservationView, error) {
	return f.details(a, k, id)
}

func (f *fakeReservations) Delete(_ context.Context, a models.Actor, k models.ReservationKind, id string) error {
	return f.deleteFn(a, k, id)
}

func (f *fakeReservations) Stats(context.Context) (*models.ReservationStats, error) {
	return f.stats()
}

func (f *fakeReservations) ListServices(_ context.Context, a models.Actor, typ models.ServiceType) ([]models.Service, error) {
	return f.services(a, typ)
}

type fakeNotifications struct {
	page    *models.NotificationPage
	deleted []string
	err     error
}

var _ notification.NotificationService = (*fakeNotifications)(nil)

func (f *fakeNotifications) List(_ context.Context, _ models.Actor, page, limit int, _ bool) (*models.NotificationPage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.page, nil
}

func (f *fakeNotifications) Create(_ context.Context, _ models.Actor, req notification.CreateRequest) (*models.Notification, error) {
	return &models.Notification{ID: "n-new", UserID: req.UserID, Type: req.Type}, f.err
}

func (f *fakeNotifications) MarkRead(_ context.Context, a models.Actor, id string) (*models.Notification, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Notification{ID: id, UserID: a.ID, Read: true}, nil
}

func (f *fakeNotifications) MarkAllRead(context.Context, models.Actor) (int64, error) {
	return 3, f.err
}

func (f *fakeNotifications) Delete(_ context.Context, _ models.Actor, id string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeUsers struct {
	loggedOut []string
	err       error
}

var _ user.UserService = (*fakeUsers)(nil)

func (f *fakeUsers) Register(_ context.Context, req models.UserRegistration) (*models.UserAuthResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.UserAuthResponse{Token: "tok", User: models.User{ID: "u1", Email: req.Email, Role: models.RoleCustomer}}, nil
}

func (f *fakeUsers) Login(_ context.Context, email, _ string) (*models.UserAuthResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.UserAuthResponse{Token: "tok", User: models.User{ID: "u1", Email: email}}, nil
}

func (f *fakeUsers) Logout(_ context.Context, token string, _ time.Duration) error {
	f.loggedOut = append(f.loggedOut, token)
	return f.err
}

func (f *fakeUsers) GetUserByID(context.Context, string) (*models.User, error) {
	return &models.User{ID: "u1"}, f.err
}

func (f *fakeUsers) GetAllUsers(_ context.Context, _ models.Actor, role models.Role) ([]models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []models.User{{ID: "u1", Role: role}}, nil
}
