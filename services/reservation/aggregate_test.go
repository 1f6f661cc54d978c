package reservation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"travelhub/models"
	"travelhub/utils"

	"github.com/stretchr/testify/require"
)

// seedAllStores puts two reservations in each store for provActor.
func seedAllStores(t *testing.T, h *harness) {
	t.Helper()
	h.seedService(t, "s1", fixedNow.Add(-1*time.Hour), models.StatusPending)
	h.seedService(t, "s2", fixedNow.Add(-5*time.Hour), models.StatusConfirmed)

	h.catalog.tours["tour-1"] = models.Tour{ID: "tour-1", OwnerID: provActor.ID, Name: "Hunza Valley", Price: 10000}
	for i, st := range []models.ReservationStatus{models.StatusPending, models.StatusCancelled} {
		id := fmt.Sprintf("t%d", i+1)
		h.stores.tours.docs[id] = models.TourReservation{
			ID: id, CustomerID: custActor.ID, TourID: "tour-1", TourOwnerID: provActor.ID,
			CustomerName: "Ayesha Khan", CustomerEmail: "ayesha@example.com", TourName: "Hunza Valley",
			TourDate: fixedNow.AddDate(0, 1, 0), Guests: 2, TotalAmount: 20000, Status: st,
			CreatedAt: fixedNow.Add(-time.Duration(2+i*4) * time.Hour),
		}
	}

	h.catalog.vehicles["car-1"] = models.Vehicle{ID: "car-1", OwnerID: provActor.ID, Brand: "Suzuki", Model: "Alto", Type: "Hatchback"}
	h.stores.vehicles.docs["v1"] = models.VehicleReservation{
		ID: "v1", UserID: custActor.ID, VehicleID: "car-1", VehicleOwnerID: provActor.ID,
		PickupDate: fixedNow, ReturnDate: fixedNow.AddDate(0, 0, 2), Price: 9000, Date: fixedNow.Add(-3 * time.Hour),
	}
	h.stores.vehicles.docs["v2"] = models.VehicleReservation{
		ID: "v2", UserID: custActor.ID, VehicleID: "car-1", VehicleOwnerID: provActor.ID, Status: models.StatusConfirmed,
		PickupDate: fixedNow, ReturnDate: fixedNow.AddDate(0, 0, 1), Price: 4500, Date: fixedNow.Add(-7 * time.Hour),
	}

	h.catalog.restaurants["rest-1"] = models.Restaurant{ID: "rest-1", OwnerID: provActor.ID, Name: "Cafe Aylanto", Status: models.RestaurantStatusApproved}
	for i, st := range []models.ReservationStatus{models.StatusPending, models.StatusCompleted} {
		id := fmt.Sprintf("x%d", i+1)
		h.stores.restaurants.docs[id] = models.RestaurantReservation{
			ID: id, UserID: custActor.ID, RestaurantID: "rest-1", RestaurantOwnerID: provActor.ID,
			CustomerName: "Ayesha Khan", CustomerEmail: "ayesha@example.com", Date: fixedNow, Guests: 4,
			TotalAmount: 8000, Status: st, CreatedAt: fixedNow.Add(-time.Duration(4+i*4) * time.Hour),
		}
	}
}

func TestListForProvider_MergesAndSortsNewestFirst(t *testing.T) {
	h := newHarness(t)
	seedAllStores(t, h)

	page, err := h.svc.ListForProvider(context.Background(), provActor, models.ReservationFilter{})
	require.NoError(t, err)
	require.Equal(t, 8, page.Total)
	require.Equal(t, 1, page.TotalPages)

	var ids []string
	for _, v := range page.Items {
		ids = append(ids, v.ID)
		require.NotEmpty(t, v.CustomerName)
		require.NotEmpty(t, v.CustomerEmail)
		require.NotEmpty(t, v.Status)
		require.NotEmpty(t, v.ServiceTypeLabel)
		require.NotEmpty(t, v.FormattedDetails)
		require.False(t, v.CreatedAt.IsZero())
	}
	require.Equal(t, []string{"s1", "t1", "v1", "x1", "s2", "t2", "v2", "x2"}, ids)
}

func TestListForProvider_TypeAndStatusFilter(t *testing.T) {
	h := newHarness(t)
	seedAllStores(t, h)

	page, err := h.svc.ListForProvider(context.Background(), provActor, models.ReservationFilter{
		Type:   "vehicle",
		Status: models.StatusPending,
	})
	require.NoError(t, err)
	require.Equal(t, 1, page.Total)
	for _, v := range page.Items {
		require.Equal(t, models.KindVehicle, v.Type)
		require.Equal(t, models.StatusPending, v.Status)
	}
}

func TestListAll_StatusFilterAcrossStores(t *testing.T) {
	h := newHarness(t)
	seedAllStores(t, h)

	page, err := h.svc.ListAll(context.Background(), adminActor, models.ReservationFilter{Type: "all", Status: models.StatusPending})
	require.NoError(t, err)
	require.Equal(t, 4, page.Total)
	for _, v := range page.Items {
		require.Equal(t, models.StatusPending, v.Status)
	}
}

func TestListAll_RequiresAdmin(t *testing.T) {
	h := newHarness(t)
	_, err := h.svc.ListAll(context.Background(), provActor, models.ReservationFilter{})
	var ae *utils.AuthorizationError
	require.ErrorAs(t, err, &ae)

	_, err = h.svc.ListForProvider(context.Background(), custActor, models.ReservationFilter{})
	require.ErrorAs(t, err, &ae)
}

func TestAggregate_SkipsDanglingReferences(t *testing.T) {
	h := newHarness(t)
	seedAllStores(t, h)
	delete(h.catalog.tours, "tour-1")
	delete(h.users.users, custActor.ID)

	page, err := h.svc.ListAll(context.Background(), adminActor, models.ReservationFilter{})
	require.NoError(t, err)
	// Both tours lose their tour, both vehicle rentals lose their customer.
	require.Equal(t, 4, page.Total)
	for _, v := range page.Items {
		require.NotEqual(t, models.KindTour, v.Type)
		require.NotEqual(t, models.KindVehicle, v.Type)
	}
}

func TestAggregate_PaginatesInMemory(t *testing.T) {
	h := newHarness(t)
	seedAllStores(t, h)

	page, err := h.svc.ListAll(context.Background(), adminActor, models.ReservationFilter{Page: 2, Limit: 3})
	require.NoError(t, err)
	require.Equal(t, 8, page.Total)
	require.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Items, 3)
	require.Equal(t, "x1", page.Items[0].ID)

	page, err = h.svc.ListAll(context.Background(), adminActor, models.ReservationFilter{Page: 9, Limit: 3})
	require.NoError(t, err)
	require.Empty(t, page.Items)
	require.Equal(t, 8, page.Total)

	page, err = h.svc.ListAll(context.Background(), adminActor, models.ReservationFilter{Limit: 1000})
	require.NoError(t, err)
	require.Equal(t, 100, page.Limit)
}

func TestAggregate_HugePageReturnsEmptyPage(t *testing.T) {
	h := newHarness(t)
	seedAllStores(t, h)

	for _, tc := range []struct {
		filter     models.ReservationFilter
		totalPages int
	}{
		{models.ReservationFilter{Page: math.MaxInt64/20 + 2, Limit: 20}, 1},
		{models.ReservationFilter{Page: math.MaxInt, Limit: 1}, 8},
		{models.ReservationFilter{Page: 3, Limit: math.MaxInt}, 1},
	} {
		page, err := h.svc.ListAll(context.Background(), adminActor, tc.filter)
		require.NoError(t, err)
		require.Empty(t, page.Items)
		require.Equal(t, 8, page.Total)
		require.Equal(t, tc.totalPages, page.TotalPages)
	}

	page, err := h.svc.ListForCustomer(context.Background(), custActor, models.ReservationFilter{Page: math.MaxInt, Limit: 5})
	require.NoError(t, err)
	require.Empty(t, page.Items)
}

func TestAggregate_EqualTimestampsOrderedByID(t *testing.T) {
	h := newHarness(t)
	h.seedService(t, "b", fixedNow, models.StatusPending)
	h.seedService(t, "a", fixedNow, models.StatusPending)
	h.seedService(t, "c", fixedNow, models.StatusPending)

	page, err := h.svc.ListAll(context.Background(), adminActor, models.ReservationFilter{})
	require.NoError(t, err)
	require.Equal(t, "a", page.Items[0].ID)
	require.Equal(t, "b", page.Items[1].ID)
	require.Equal(t, "c", page.Items[2].ID)
}

func TestAggregate_StoreFailureFailsWholeListing(t *testing.T) {
	h := newHarness(t)
	seedAllStores(t, h)
	boom := errors.New("restaurant store unavailable")
	h.stores.restaurants.FindErr = boom

	_, err := h.svc.ListAll(context.Background(), adminActor, models.ReservationFilter{})
	require.ErrorIs(t, err, boom)

	// Filtering the failing store out makes the listing succeed.
	page, err := h.svc.ListAll(context.Background(), adminActor, models.ReservationFilter{Type: "service"})
	require.NoError(t, err)
	require.Equal(t, 2, page.Total)
}

func TestAggregate_RejectsUnknownFilters(t *testing.T) {
	h := newHarness(t)
	var ve *utils.ValidationError

	_, err := h.svc.ListAll(context.Background(), adminActor, models.ReservationFilter{Type: "train"})
	require.ErrorAs(t, err, &ve)
	require.Equal(t, []string{"type"}, ve.Fields)

	_, err = h.svc.ListAll(context.Background(), adminActor, models.ReservationFilter{Status: "archived"})
	require.ErrorAs(t, err, &ve)
	require.Equal(t, []string{"status"}, ve.Fields)
}

func TestListForProvider_OnlyOwnReservations(t *testing.T) {
	h := newHarness(t)
	seedAllStores(t, h)

	page, err := h.svc.ListForProvider(context.Background(), otherProv, models.ReservationFilter{})
	require.NoError(t, err)
	require.Zero(t, page.Total)
	require.Empty(t, page.Items)
}

func TestListForCustomer(t *testing.T) {
	h := newHarness(t)
	seedAllStores(t, h)

	page, err := h.svc.ListForCustomer(context.Background(), custActor, models.ReservationFilter{Status: models.StatusConfirmed})
	require.NoError(t, err)
	require.Equal(t, 2, page.Total)

	page, err = h.svc.ListForCustomer(context.Background(), models.Actor{ID: "nobody", Role: models.RoleCustomer}, models.ReservationFilter{})
	require.NoError(t, err)
	require.Zero(t, page.Total)
}
