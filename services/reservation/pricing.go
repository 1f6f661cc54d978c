package reservation

import (
	"math"
	"strings"
	"time"

	"travelhub/utils"
)

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// parseDate accepts an RFC 3339 timestamp or a plain calendar date.
func parseDate(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, utils.NewValidationError("Invalid date", field)
}

// parseRange parses both ends of a stay and requires start < end.
func parseRange(startField, start, endField, end string) (time.Time, time.Time, error) {
	from, err := parseDate(startField, start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := parseDate(endField, end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !from.Before(to) {
		return time.Time{}, time.Time{}, utils.NewValidationError("Check-out date must be after check-in date", endField)
	}
	return from, to, nil
}

// billableDays is the number of started days between from and to.
func billableDays(from, to time.Time) int {
	days := int(math.Ceil(to.Sub(from).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// quantity picks rooms, then guests, then group size, defaulting to 1.
func quantity(rooms, guests, groupSize int) int {
	for _, q := range []int{rooms, guests, groupSize} {
		if q > 0 {
			return q
		}
	}
	return 1
}

// totalAmount is unitPrice × days × quantity.
func totalAmount(unitPrice float64, days, qty int) float64 {
	return unitPrice * float64(days) * float64(qty)
}
