package reservation

import (
	"strconv"
	"time"

	"travelhub/models"

	"github.com/google/uuid"
)

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// confirmationPrefix is the human-facing prefix per store.
func confirmationPrefix(kind models.ReservationKind) string {
	switch kind {
	case models.KindVehicle:
		return "VH"
	case models.KindRestaurant:
		return "RS"
	default:
		return "TR"
	}
}

// newConfirmationNumber builds <prefix><epoch millis><4 base-36 chars>.
func newConfirmationNumber(prefix string, now time.Time) string {
	id := uuid.New()
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = base36[int(id[i])%len(base36)]
	}
	return prefix + strconv.FormatInt(now.UnixMilli(), 10) + string(suffix)
}
