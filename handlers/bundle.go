package handlers

import (
	"github.com/go-redis/redis/v8"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Cache backs token revocation checks in the auth middleware. May be nil.
	Cache *redis.Client

	Auth          *AuthHandler
	Reservations  *ReservationHandler
	Notifications *NotificationHandler
	Admin         *AdminHandler
}
