package reservation

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"travelhub/database/repository"
	catalogRepo "travelhub/database/repository/catalog"
	reservationRepo "travelhub/database/repository/reservation"
	userRepo "travelhub/database/repository/user"
	"travelhub/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memStore is an in-memory reservation store.
type memStore[T any] struct {
	mu      sync.Mutex
	docs    map[string]T
	idOf    func(*T) string
	setID   func(*T, string)
	match   func(T, reservationRepo.Query) bool
	FindErr error
	updates int
}

var _ reservationRepo.ServiceReservationRepository = (*memStore[models.ServiceReservation])(nil)

func (m *memStore[T]) Create(_ context.Context, r *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.idOf(r) == "" {
		m.setID(r, uuid.New().String())
	}
	m.docs[m.idOf(r)] = *r
	return nil
}

func (m *memStore[T]) GetByID(_ context.Context, id string) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &d, nil
}

func (m *memStore[T]) Update(_ context.Context, r *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[m.idOf(r)]; !ok {
		return repository.ErrNotFound
	}
	m.docs[m.idOf(r)] = *r
	m.updates++
	return nil
}

func (m *memStore[T]) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.docs, id)
	return nil
}

func (m *memStore[T]) Find(_ context.Context, q reservationRepo.Query) ([]T, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []T
	for _, d := range m.docs {
		if m.match(d, q) {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return m.idOf(&out[i]) < m.idOf(&out[j]) })
	return out, nil
}

func (m *memStore[T]) Count(ctx context.Context, q reservationRepo.Query) (int64, error) {
	docs, err := m.Find(ctx, q)
	return int64(len(docs)), err
}

func matches(owner string, ownerByEmail bool, customer string, status models.ReservationStatus, q reservationRepo.Query) bool {
	if q.OwnerID != "" && owner != q.OwnerID && !(ownerByEmail && q.OwnerEmail != "" && owner == q.OwnerEmail) {
		return false
	}
	if q.CustomerID != "" && customer != q.CustomerID {
		return false
	}
	if status == "" {
		status = models.StatusPending
	}
	return q.Status == "" || status == q.Status
}

type fakeStores struct {
	services    *memStore[models.ServiceReservation]
	tours       *memStore[models.TourReservation]
	vehicles    *memStore[models.VehicleReservation]
	restaurants *memStore[models.RestaurantReservation]
}

func newFakeStores() *fakeStores {
	return &fakeStores{
		services: &memStore[models.ServiceReservation]{
			docs:  map[string]models.ServiceReservation{},
			idOf:  func(r *models.ServiceReservation) string { return r.ID },
			setID: func(r *models.ServiceReservation, id string) { r.ID = id },
			match: func(r models.ServiceReservation, q reservationRepo.Query) bool {
				return matches(r.ProviderID, false, r.CustomerID, r.Status, q)
			},
		},
		tours: &memStore[models.TourReservation]{
			docs:  map[string]models.TourReservation{},
			idOf:  func(r *models.TourReservation) string { return r.ID },
			setID: func(r *models.TourReservation, id string) { r.ID = id },
			match: func(r models.TourReservation, q reservationRepo.Query) bool {
				return matches(r.TourOwnerID, true, r.CustomerID, r.Status, q)
			},
		},
		vehicles: &memStore[models.VehicleReservation]{
			docs:  map[string]models.VehicleReservation{},
			idOf:  func(r *models.VehicleReservation) string { return r.ID },
			setID: func(r *models.VehicleReservation, id string) { r.ID = id },
			match: func(r models.VehicleReservation, q reservationRepo.Query) bool {
				return matches(r.VehicleOwnerID, false, r.UserID, r.Status, q)
			},
		},
		restaurants: &memStore[models.RestaurantReservation]{
			docs:  map[string]models.RestaurantReservation{},
			idOf:  func(r *models.RestaurantReservation) string { return r.ID },
			setID: func(r *models.RestaurantReservation, id string) { r.ID = id },
			match: func(r models.RestaurantReservation, q reservationRepo.Query) bool {
				return matches(r.RestaurantOwnerID, false, r.UserID, r.Status, q)
			},
		},
	}
}

func (f *fakeStores) repos() *reservationRepo.Repositories {
	return &reservationRepo.Repositories{
		Services:    f.services,
		Tours:       f.tours,
		Vehicles:    f.vehicles,
		Restaurants: f.restaurants,
	}
}

type fakeCatalog struct {
	services    map[string]models.Service
	tours       map[string]models.Tour
	vehicles    map[string]models.Vehicle
	restaurants map[string]models.Restaurant
}

var _ catalogRepo.CatalogRepository = (*fakeCatalog)(nil)

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		services:    map[string]models.Service{},
		tours:       map[string]models.Tour{},
		vehicles:    map[string]models.Vehicle{},
		restaurants: map[string]models.Restaurant{},
	}
}

func lookup[T any](m map[string]T, id string) (*T, error) {
	v, ok := m[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &v, nil
}

func lookupMany[T any](m map[string]T, ids []string) (map[string]T, error) {
	out := map[string]T{}
	for _, id := range ids {
		if v, ok := m[id]; ok {
			out[id] = v
		}
	}
	return out, nil
}

func (c *fakeCatalog) GetService(_ context.Context, id string) (*models.Service, error) {
	return lookup(c.services, id)
}

func (c *fakeCatalog) GetServicesByIDs(_ context.Context, ids []string) (map[string]models.Service, error) {
	return lookupMany(c.services, ids)
}

func (c *fakeCatalog) ListServices(_ context.Context, typ models.ServiceType) ([]models.Service, error) {
	out := []models.Service{}
	for _, svc := range c.services {
		if typ == "" || svc.Type == typ {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (c *fakeCatalog) GetTour(_ context.Context, id string) (*models.Tour, error) {
	return lookup(c.tours, id)
}

func (c *fakeCatalog) GetToursByIDs(_ context.Context, ids []string) (map[string]models.Tour, error) {
	return lookupMany(c.tours, ids)
}

func (c *fakeCatalog) GetVehicle(_ context.Context, id string) (*models.Vehicle, error) {
	return lookup(c.vehicles, id)
}

func (c *fakeCatalog) GetVehiclesByIDs(_ context.Context, ids []string) (map[string]models.Vehicle, error) {
	return lookupMany(c.vehicles, ids)
}

func (c *fakeCatalog) GetRestaurant(_ context.Context, id string) (*models.Restaurant, error) {
	return lookup(c.restaurants, id)
}

func (c *fakeCatalog) GetRestaurantsByIDs(_ context.Context, ids []string) (map[string]models.Restaurant, error) {
	return lookupMany(c.restaurants, ids)
}

type fakeUsers struct {
	users map[string]models.User
}

var _ userRepo.UserRepository = (*fakeUsers)(nil)

func (u *fakeUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	return lookup(u.users, id)
}

func (u *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, x := range u.users {
		if x.Email == email {
			return &x, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (u *fakeUsers) GetByIDs(_ context.Context, ids []string) (map[string]models.User, error) {
	return lookupMany(u.users, ids)
}

func (u *fakeUsers) GetAll(_ context.Context, role models.Role) ([]models.User, error) {
	var out []models.User
	for _, x := range u.users {
		if role == "" || x.Role == role {
			out = append(out, x)
		}
	}
	return out, nil
}

func (u *fakeUsers) ListIDsByRole(ctx context.Context, role models.Role) ([]string, error) {
	all, _ := u.GetAll(ctx, role)
	ids := make([]string, 0, len(all))
	for _, x := range all {
		ids = append(ids, x.ID)
	}
	sort.Strings(ids)
	return ids, nil
}

func (u *fakeUsers) Count(ctx context.Context, role models.Role) (int64, error) {
	all, _ := u.GetAll(ctx, role)
	return int64(len(all)), nil
}

func (u *fakeUsers) Create(_ context.Context, user *models.User) error {
	u.users[user.ID] = *user
	return nil
}

type sentNotification struct {
	RecipientID string
	Title       string
	Message     string
	Type        models.NotificationType
	Data        map[string]any
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []sentNotification
}

func (n *recordingNotifier) Notify(_ context.Context, recipientID, title, message string, typ models.NotificationType, data map[string]any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentNotification{recipientID, title, message, typ, data})
}

func (n *recordingNotifier) to(recipientID string) []sentNotification {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []sentNotification
	for _, s := range n.sent {
		if s.RecipientID == recipientID {
			out = append(out, s)
		}
	}
	return out
}

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type harness struct {
	svc      *DefaultReservationService
	stores   *fakeStores
	catalog  *fakeCatalog
	users    *fakeUsers
	notifier *recordingNotifier
}

var (
	custActor  = models.Actor{ID: "cust-1", Email: "cust@example.com", Role: models.RoleCustomer}
	provActor  = models.Actor{ID: "prov-1", Email: "prov@example.com", Role: models.RoleProvider}
	otherProv  = models.Actor{ID: "prov-2", Email: "other@example.com", Role: models.RoleProvider}
	adminActor = models.Actor{ID: "admin-1", Email: "admin@example.com", Role: models.RoleAdmin}
)

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		stores:  newFakeStores(),
		catalog: newFakeCatalog(),
		users: &fakeUsers{users: map[string]models.User{
			custActor.ID:  {ID: custActor.ID, Name: "Ayesha Khan", Email: custActor.Email, Phone: "0300-1234567", Role: models.RoleCustomer, IsActive: true},
			provActor.ID:  {ID: provActor.ID, Name: "Hunza Stays", Email: provActor.Email, Role: models.RoleProvider, IsActive: true},
			adminActor.ID: {ID: adminActor.ID, Name: "Admin", Email: adminActor.Email, Role: models.RoleAdmin, IsActive: true},
		}},
		notifier: &recordingNotifier{},
	}
	svc, err := NewDefaultReservationService(h.stores.repos(), h.catalog, h.users, h.notifier, Settings{
		DriverFeePerDay:       7000,
		NotifyAdminsOnBooking: true,
		DefaultPageLimit:      20,
		MaxPageLimit:          100,
	}, zap.NewNop())
	require.NoError(t, err)
	svc.now = func() time.Time { return fixedNow }
	h.svc = svc
	return h
}

func (h *harness) addHotel(id string, price float64) models.Service {
	s := models.Service{
		ID:         id,
		ProviderID: provActor.ID,
		Name:       "Serena Hunza",
		Type:       models.ServiceHotel,
		Price:      price,
		Status:     models.ServiceStatusActive,
		Location:   "Karimabad",
		RoomTypes:  []models.RoomType{{Name: "Deluxe", PricePerNight: 8000}},
	}
	h.catalog.services[id] = s
	return s
}

func validServiceRequest(serviceID string) models.CreateServiceReservationRequest {
	return models.CreateServiceReservationRequest{
		ServiceID:     serviceID,
		CheckInDate:   "2026-04-01",
		CheckOutDate:  "2026-04-03",
		CustomerName:  "Ayesha Khan",
		CustomerEmail: "ayesha@example.com",
		CustomerPhone: "0300-1234567",
		CNICNumber:    "35202-1234567-1",
		CNICPhoto:     "uploads/cnic.jpg",
		Guests:        2,
		Rooms:         1,
	}
}

// seedService stores a pending service reservation owned by provider.
func (h *harness) seedService(t *testing.T, id string, created time.Time, status models.ReservationStatus) models.ServiceReservation {
	t.Helper()
	if _, ok := h.catalog.services["svc-1"]; !ok {
		h.addHotel("svc-1", 5000)
	}
	r := models.ServiceReservation{
		ID:            id,
		CustomerID:    custActor.ID,
		ServiceID:     "svc-1",
		ProviderID:    provActor.ID,
		CheckInDate:   fixedNow.AddDate(0, 0, 10),
		CheckOutDate:  fixedNow.AddDate(0, 0, 12),
		Guests:        2,
		Rooms:         1,
		CustomerName:  "Ayesha Khan",
		CustomerEmail: "ayesha@example.com",
		CustomerPhone: "0300-1234567",
		TotalAmount:   10000,
		PricePerUnit:  5000,
		Status:        status,
		CreatedAt:     created,
		UpdatedAt:     created,
	}
	h.stores.services.docs[id] = r
	return r
}
