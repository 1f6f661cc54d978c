package models

import "time"

// ReservationView is the normalized shape every reservation store is mapped
// into for provider, admin and customer listings.
type ReservationView struct {
	ID               string          `json:"id"`
	Type             ReservationKind `json:"type"`
	ServiceType      ServiceType     `json:"serviceType"`
	ServiceTypeLabel string          `json:"serviceTypeLabel"`
	FormattedDetails string          `json:"formattedDetails"`
	DisplayDetails   string          `json:"displayDetails"`

	ItemID     string `json:"itemId"`
	ItemName   string `json:"itemName"`
	Location   string `json:"location,omitempty"`
	OwnerID    string `json:"ownerId"`
	CustomerID string `json:"customerId"`

	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone,omitempty"`

	CheckInDate  time.Time `json:"checkInDate"`
	CheckOutDate time.Time `json:"checkOutDate"`
	Guests       int       `json:"guests"`

	TotalAmount  float64 `json:"totalAmount"`
	PricePerUnit float64 `json:"pricePerUnit"`

	Status             ReservationStatus `json:"status"`
	ConfirmationNumber string            `json:"confirmationNumber,omitempty"`
	RejectionReason    string            `json:"rejectionReason,omitempty"`
	ResponseDate       *time.Time        `json:"responseDate,omitempty"`
	SpecialRequests    string            `json:"specialRequests,omitempty"`

	// Legacy vehicle rental fields.
	VehicleNumber string `json:"vehicleNumber,omitempty"`
	NeedDriver    bool   `json:"needDriver,omitempty"`
	TransactionID string `json:"transactionId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationFilter narrows an aggregated listing.
type ReservationFilter struct {
	Status ReservationStatus
	Type   string
	Page   int
	Limit  int
}

// ReservationPage is one page of an aggregated listing.
type ReservationPage struct {
	Items      []ReservationView `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"totalPages"`
}

// ReservationStats backs the admin dashboard.
type ReservationStats struct {
	TotalUsers          int64                     `json:"totalUsers"`
	ActiveProviders     int64                     `json:"activeProviders"`
	TotalReservations   int64                     `json:"totalReservations"`
	PendingReservations int64                     `json:"pendingReservations"`
	PendingByKind       map[ReservationKind]int64 `json:"pendingByKind"`
	TotalByKind         map[ReservationKind]int64 `json:"totalByKind"`
}
