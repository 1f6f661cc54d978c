package models

import "time"

// NotificationType is the fixed set of tags a notification may carry.
type NotificationType string

const (
	NotifyProviderRequestSubmitted NotificationType = "provider_request_submitted"
	NotifyProviderRequestApproved  NotificationType = "provider_request_approved"
	NotifyProviderRequestRejected  NotificationType = "provider_request_rejected"
	NotifyNewReservation           NotificationType = "new_reservation"
	NotifyReservationApproved      NotificationType = "reservation_approved"
	NotifyReservationRejected      NotificationType = "reservation_rejected"
	NotifyReservationCancelled     NotificationType = "reservation_cancelled"
	NotifyServiceAdded             NotificationType = "service_added"
	NotifyServiceUpdated           NotificationType = "service_updated"
	NotifyPaymentConfirmed         NotificationType = "payment_confirmed"
	NotifySystemMaintenance        NotificationType = "system_maintenance"
	NotifyNewServiceBooking        NotificationType = "new_service_booking"
	NotifyBookingConfirmed         NotificationType = "booking_confirmed"
	NotifyBookingCancelled         NotificationType = "booking_cancelled"
	NotifyBookingUpdated           NotificationType = "booking_updated"
	NotifyBookingDeleted           NotificationType = "booking_deleted"
)

var notificationTypes = map[NotificationType]struct{}{
	NotifyProviderRequestSubmitted: {}, NotifyProviderRequestApproved: {}, NotifyProviderRequestRejected: {},
	NotifyNewReservation: {}, NotifyReservationApproved: {}, NotifyReservationRejected: {},
	NotifyReservationCancelled: {}, NotifyServiceAdded: {}, NotifyServiceUpdated: {},
	NotifyPaymentConfirmed: {}, NotifySystemMaintenance: {}, NotifyNewServiceBooking: {},
	NotifyBookingConfirmed: {}, NotifyBookingCancelled: {}, NotifyBookingUpdated: {},
	NotifyBookingDeleted: {},
}

// IsValid reports whether t belongs to the fixed enumeration.
func (t NotificationType) IsValid() bool {
	_, ok := notificationTypes[t]
	return ok
}

// Notification is a user-facing message owned by exactly one recipient.
type Notification struct {
	ID        string           `bson:"id" json:"id"`
	UserID    string           `bson:"userId" json:"userId"`
	Type      NotificationType `bson:"type" json:"type"`
	Title     string           `bson:"title" json:"title"`
	Message   string           `bson:"message" json:"message"`
	Read      bool             `bson:"read" json:"read"`
	Data      map[string]any   `bson:"data,omitempty" json:"data,omitempty"`
	CreatedAt time.Time        `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time        `bson:"updatedAt" json:"updatedAt"`
}

// NotificationPayload is the queued form of a notification awaiting delivery.
type NotificationPayload struct {
	RecipientID string           `json:"recipientId"`
	Title       string           `json:"title"`
	Message     string           `json:"message"`
	Type        NotificationType `json:"type"`
	Data        map[string]any   `json:"data,omitempty"`
	QueuedAt    time.Time        `json:"queuedAt"`
}

// NotificationPage is one page of a recipient's notifications.
type NotificationPage struct {
	Items       []Notification `json:"items"`
	Total       int64          `json:"total"`
	UnreadCount int64          `json:"unreadCount"`
	Page        int            `json:"page"`
	Limit       int            `json:"limit"`
}
