package reservationRepo

import (
	"testing"

	"travelhub/models"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildFilter_ProviderScope(t *testing.T) {
	f := buildFilter(serviceFields, Query{OwnerID: "p1", Status: models.StatusConfirmed})
	require.Equal(t, bson.M{"providerId": "p1", "status": models.StatusConfirmed}, f)
}

func TestBuildFilter_TourOwnerMatchesIDOrEmail(t *testing.T) {
	f := buildFilter(tourFields, Query{OwnerID: "p1", OwnerEmail: "p1@example.com"})
	require.Equal(t, bson.M{"tourOwnerId": bson.M{"$in": []string{"p1", "p1@example.com"}}}, f)

	// Other stores ignore the email key.
	f = buildFilter(restaurantFields, Query{OwnerID: "p1", OwnerEmail: "p1@example.com"})
	require.Equal(t, bson.M{"restaurantOwnerId": "p1"}, f)
}

func TestBuildFilter_LegacyVehiclePendingIncludesMissingStatus(t *testing.T) {
	f := buildFilter(vehicleFields, Query{CustomerID: "c1", Status: models.StatusPending})
	require.Equal(t, "c1", f["userId"])
	require.NotContains(t, f, "status")
	or, ok := f["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 3)

	f = buildFilter(vehicleFields, Query{Status: models.StatusCancelled})
	require.Equal(t, bson.M{"status": models.StatusCancelled}, f)
}

func TestBuildFilter_Empty(t *testing.T) {
	require.Empty(t, buildFilter(restaurantFields, Query{}))
}

func TestNewestFirst(t *testing.T) {
	require.Equal(t, bson.D{{Key: "date", Value: -1}, {Key: "id", Value: 1}}, newestFirst(vehicleFields))
}
