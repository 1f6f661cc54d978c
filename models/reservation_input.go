package models

// CreateServiceReservationRequest books a unified catalog Service.
type CreateServiceReservationRequest struct {
	ServiceID     string `json:"serviceId" validate:"required"`
	CheckInDate   string `json:"checkInDate" validate:"required"`
	CheckOutDate  string `json:"checkOutDate" validate:"required"`
	CustomerName  string `json:"customerName" validate:"required"`
	CustomerEmail string `json:"customerEmail" validate:"required,email"`
	CustomerPhone string `json:"customerPhone" validate:"required"`
	CNICNumber    string `json:"cnicNumber" validate:"required"`
	CNICPhoto     string `json:"cnicPhoto" validate:"required"`

	Guests          int    `json:"guests" validate:"gte=0"`
	Rooms           int    `json:"rooms" validate:"gte=0"`
	RoomType        string `json:"roomType"`
	GroupSize       int    `json:"groupSize" validate:"gte=0"`
	VehicleType     string `json:"vehicleType"`
	EventType       string `json:"eventType"`
	SpecialRequests string `json:"specialRequests" validate:"max=1000"`
}

// CreateTourReservationRequest books a tour on a single date.
type CreateTourReservationRequest struct {
	TourID          string `json:"tourId" validate:"required"`
	TourDate        string `json:"tourDate" validate:"required"`
	Guests          int    `json:"guests" validate:"required,gte=1"`
	CustomerName    string `json:"customerName" validate:"required"`
	CustomerEmail   string `json:"customerEmail" validate:"required,email"`
	CustomerPhone   string `json:"customerPhone" validate:"required"`
	SpecialRequests string `json:"specialRequests" validate:"max=1000"`
}

// CreateVehicleReservationRequest rents a vehicle between two dates.
type CreateVehicleReservationRequest struct {
	VehicleID  string `json:"vehicleId" validate:"required"`
	PickupDate string `json:"pickupDate" validate:"required"`
	ReturnDate string `json:"returnDate" validate:"required"`
	NeedDriver bool   `json:"needDriver"`
}

// CreateRestaurantReservationRequest books a table.
type CreateRestaurantReservationRequest struct {
	RestaurantID    string `json:"restaurantId" validate:"required"`
	Date            string `json:"date" validate:"required"`
	Time            string `json:"time"`
	Guests          int    `json:"guests" validate:"required,gte=1"`
	TableNumber     int    `json:"tableNumber" validate:"gte=0"`
	CustomerName    string `json:"customerName" validate:"required"`
	CustomerEmail   string `json:"customerEmail" validate:"required,email"`
	CustomerPhone   string `json:"customerPhone" validate:"required"`
	SpecialRequests string `json:"specialRequests" validate:"max=1000"`
}

// StatusUpdateRequest is a provider or admin decision on a reservation.
type StatusUpdateRequest struct {
	Status          ReservationStatus `json:"status" binding:"required,reservation_status" validate:"required,oneof=confirmed cancelled"`
	RejectionReason string            `json:"rejectionReason" validate:"max=500"`
}

// CancelRequest is a customer-initiated cancellation.
type CancelRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}
