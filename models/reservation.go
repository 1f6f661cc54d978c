package models

import "time"

// ReservationStatus is the lifecycle state shared by every reservation collection.
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
)

// IsValid reports whether s is one of the four known statuses.
func (s ReservationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// IsTerminal reports whether no provider action is expected anymore.
func (s ReservationStatus) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// ReservationKind identifies which collection a reservation lives in.
type ReservationKind string

const (
	KindService    ReservationKind = "service"
	KindTour       ReservationKind = "tour"
	KindVehicle    ReservationKind = "vehicle"
	KindRestaurant ReservationKind = "restaurant"
)

// AllKinds lists the reservation stores in a fixed order.
var AllKinds = []ReservationKind{KindService, KindTour, KindVehicle, KindRestaurant}

// ParseReservationKind accepts a kind name; ok is false for unknown names.
func ParseReservationKind(s string) (ReservationKind, bool) {
	for _, k := range AllKinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// ServiceReservation is a booking made against a unified catalog Service.
type ServiceReservation struct {
	ID         string `bson:"id" json:"id"`
	CustomerID string `bson:"customerId" json:"customerId"`
	ServiceID  string `bson:"serviceId" json:"serviceId"`
	ProviderID string `bson:"providerId" json:"providerId"`

	CheckInDate  time.Time `bson:"checkInDate" json:"checkInDate"`
	CheckOutDate time.Time `bson:"checkOutDate" json:"checkOutDate"`
	Guests       int       `bson:"guests" json:"guests"`

	// Contact snapshot taken at booking time; never refreshed from the profile.
	CustomerName  string `bson:"customerName" json:"customerName"`
	CustomerEmail string `bson:"customerEmail" json:"customerEmail"`
	CustomerPhone string `bson:"customerPhone" json:"customerPhone"`
	CNICNumber    string `bson:"cnicNumber" json:"cnicNumber"`
	CNICPhoto     string `bson:"cnicPhoto" json:"cnicPhoto"`

	Rooms           int    `bson:"rooms,omitempty" json:"rooms,omitempty"`
	RoomType        string `bson:"roomType,omitempty" json:"roomType,omitempty"`
	GroupSize       int    `bson:"groupSize,omitempty" json:"groupSize,omitempty"`
	VehicleType     string `bson:"vehicleType,omitempty" json:"vehicleType,omitempty"`
	EventType       string `bson:"eventType,omitempty" json:"eventType,omitempty"`
	SpecialRequests string `bson:"specialRequests,omitempty" json:"specialRequests,omitempty"`

	TotalAmount  float64 `bson:"totalAmount" json:"totalAmount"`
	PricePerUnit float64 `bson:"pricePerUnit" json:"pricePerUnit"`

	Status             ReservationStatus `bson:"status" json:"status"`
	ConfirmationNumber string            `bson:"confirmationNumber,omitempty" json:"confirmationNumber,omitempty"`
	RejectionReason    string            `bson:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`
	ResponseDate       *time.Time        `bson:"responseDate,omitempty" json:"responseDate,omitempty"`

	PaymentStatus string `bson:"paymentStatus" json:"paymentStatus"`
	PaymentMethod string `bson:"paymentMethod,omitempty" json:"paymentMethod,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// TourReservation is a single-day tour booking.
type TourReservation struct {
	ID          string `bson:"id" json:"id"`
	CustomerID  string `bson:"customerId" json:"customerId"`
	TourID      string `bson:"tourId" json:"tourId"`
	TourOwnerID string `bson:"tourOwnerId" json:"tourOwnerId"`

	CustomerName  string `bson:"customerName" json:"customerName"`
	CustomerEmail string `bson:"customerEmail" json:"customerEmail"`
	CustomerPhone string `bson:"customerPhone" json:"customerPhone"`

	TourName        string    `bson:"tourName" json:"tourName"`
	TourDate        time.Time `bson:"tourDate" json:"tourDate"`
	Guests          int       `bson:"guests" json:"guests"`
	TourPrice       float64   `bson:"tourPrice" json:"tourPrice"`
	TotalAmount     float64   `bson:"totalAmount" json:"totalAmount"`
	SpecialRequests string    `bson:"specialRequests,omitempty" json:"specialRequests,omitempty"`

	Status             ReservationStatus `bson:"status" json:"status"`
	ConfirmationNumber string            `bson:"confirmationNumber,omitempty" json:"confirmationNumber,omitempty"`
	RejectionReason    string            `bson:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`
	ResponseDate       *time.Time        `bson:"responseDate,omitempty" json:"responseDate,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// VehicleReservation is a legacy vehicle rental. It carries no contact
// snapshot; the customer is resolved from the users collection.
type VehicleReservation struct {
	ID             string `bson:"id" json:"id"`
	UserID         string `bson:"userId" json:"userId"`
	VehicleID      string `bson:"vehicleId" json:"vehicleId"`
	VehicleOwnerID string `bson:"vehicleOwnerId" json:"vehicleOwnerId"`
	VehicleNumber  string `bson:"vehicleNumber" json:"vehicleNumber"`
	Location       string `bson:"location" json:"location"`

	PickupDate time.Time `bson:"pickupDate" json:"pickupDate"`
	ReturnDate time.Time `bson:"returnDate" json:"returnDate"`
	Price      float64   `bson:"price" json:"price"`
	NeedDriver bool      `bson:"needDriver" json:"needDriver"`

	TransactionID string `bson:"transactionId" json:"transactionId"`

	// Older documents have no status; an empty value reads as pending.
	Status             ReservationStatus `bson:"status,omitempty" json:"status"`
	ConfirmationNumber string            `bson:"confirmationNumber,omitempty" json:"confirmationNumber,omitempty"`
	RejectionReason    string            `bson:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`
	ResponseDate       *time.Time        `bson:"responseDate,omitempty" json:"responseDate,omitempty"`

	// Date is the creation timestamp of the legacy schema.
	Date time.Time `bson:"date" json:"date"`
}

// EffectiveStatus returns the stored status, defaulting legacy documents to pending.
func (v VehicleReservation) EffectiveStatus() ReservationStatus {
	if v.Status == "" {
		return StatusPending
	}
	return v.Status
}

// RestaurantReservation is a legacy table booking.
type RestaurantReservation struct {
	ID                string `bson:"id" json:"id"`
	UserID            string `bson:"user" json:"userId"`
	RestaurantID      string `bson:"restaurant" json:"restaurantId"`
	RestaurantOwnerID string `bson:"restaurantOwnerId" json:"restaurantOwnerId"`

	CustomerName  string `bson:"customerName" json:"customerName"`
	CustomerEmail string `bson:"customerEmail" json:"customerEmail"`
	CustomerPhone string `bson:"customerPhone" json:"customerPhone"`

	Date            time.Time `bson:"date" json:"date"`
	Time            string    `bson:"time,omitempty" json:"time,omitempty"`
	Guests          int       `bson:"guests" json:"guests"`
	TableNumber     int       `bson:"tableNumber,omitempty" json:"tableNumber,omitempty"`
	TotalAmount     float64   `bson:"totalAmount" json:"totalAmount"`
	SpecialRequests string    `bson:"specialRequests,omitempty" json:"specialRequests,omitempty"`

	Status             ReservationStatus `bson:"status" json:"status"`
	ConfirmationNumber string            `bson:"confirmationNumber,omitempty" json:"confirmationNumber,omitempty"`
	RejectionReason    string            `bson:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`
	ResponseDate       *time.Time        `bson:"responseDate,omitempty" json:"responseDate,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
