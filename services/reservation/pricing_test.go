package reservation

import (
	"regexp"
	"testing"
	"time"

	"travelhub/models"
	"travelhub/utils"

	"github.com/stretchr/testify/require"
)

func TestQuantityPrecedence(t *testing.T) {
	tests := []struct {
		name                     string
		rooms, guests, groupSize int
		want                     int
	}{
		{"rooms win", 2, 4, 6, 2},
		{"guests when no rooms", 0, 4, 6, 4},
		{"group size last", 0, 0, 6, 6},
		{"defaults to one", 0, 0, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, quantity(tt.rooms, tt.guests, tt.groupSize))
		})
	}
}

func TestBillableDaysRoundsUp(t *testing.T) {
	from := time.Date(2026, 4, 1, 14, 0, 0, 0, time.UTC)
	require.Equal(t, 2, billableDays(from, from.Add(48*time.Hour)))
	require.Equal(t, 3, billableDays(from, from.Add(49*time.Hour)))
	require.Equal(t, 1, billableDays(from, from.Add(time.Hour)))
}

func TestParseRange(t *testing.T) {
	from, to, err := parseRange("checkInDate", "2026-04-01", "checkOutDate", "2026-04-03T10:00:00Z")
	require.NoError(t, err)
	require.True(t, from.Before(to))

	for _, tt := range []struct{ in, out string }{
		{"2026-04-03", "2026-04-03"},
		{"2026-04-05", "2026-04-03"},
	} {
		_, _, err := parseRange("checkInDate", tt.in, "checkOutDate", tt.out)
		var ve *utils.ValidationError
		require.ErrorAs(t, err, &ve, "%s -> %s", tt.in, tt.out)
		require.Equal(t, []string{"checkOutDate"}, ve.Fields)
	}

	_, _, err = parseRange("checkInDate", "tomorrow", "checkOutDate", "2026-04-03")
	var ve *utils.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, []string{"checkInDate"}, ve.Fields)
}

func TestConfirmationNumberFormat(t *testing.T) {
	now := time.UnixMilli(1767225600123)
	pattern := regexp.MustCompile(`^TR1767225600123[A-Z0-9]{4}$`)
	for i := 0; i < 50; i++ {
		require.Regexp(t, pattern, newConfirmationNumber("TR", now))
	}
	require.Equal(t, "VH", confirmationPrefix(models.KindVehicle))
	require.Equal(t, "TR", confirmationPrefix(models.KindTour))
	require.Equal(t, "TR", confirmationPrefix(models.KindService))
	require.Equal(t, "RS", confirmationPrefix(models.KindRestaurant))
}

func TestTransition(t *testing.T) {
	var (
		status  = models.StatusPending
		number  string
		reason  = "Overbooked"
		respond *time.Time
	)
	l := lifecycle{&status, &number, &reason, &respond}

	transition(l, models.StatusConfirmed, "", "TR", fixedNow)
	require.Equal(t, models.StatusConfirmed, status)
	require.NotEmpty(t, number)
	require.Equal(t, fixedNow, *respond)
	first := number

	transition(l, models.StatusConfirmed, "", "TR", fixedNow.Add(time.Hour))
	require.Equal(t, first, number)

	transition(l, models.StatusCancelled, "", "TR", fixedNow)
	require.Equal(t, "Overbooked", reason)

	transition(l, models.StatusCancelled, "Fully booked", "TR", fixedNow)
	require.Equal(t, "Fully booked", reason)
	require.Equal(t, first, number)
}
