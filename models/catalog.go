package models

import "time"

// ServiceType is the vertical a catalog Service belongs to.
type ServiceType string

const (
	ServiceHotel      ServiceType = "hotel"
	ServiceVehicle    ServiceType = "vehicle"
	ServiceTour       ServiceType = "tour"
	ServiceRestaurant ServiceType = "restaurant"
	ServiceEvent      ServiceType = "event"
)

// IsValid reports whether t is a known vertical.
func (t ServiceType) IsValid() bool {
	switch t {
	case ServiceHotel, ServiceVehicle, ServiceTour, ServiceRestaurant, ServiceEvent:
		return true
	}
	return false
}

// RoomType is one bookable room category of a hotel Service.
type RoomType struct {
	Name           string  `bson:"name" json:"name"`
	Sleeps         int     `bson:"sleeps" json:"sleeps"`
	Beds           string  `bson:"beds" json:"beds"`
	PricePerNight  float64 `bson:"pricePerNight" json:"pricePerNight"`
	TotalRooms     int     `bson:"totalRooms" json:"totalRooms"`
	AvailableRooms int     `bson:"availableRooms" json:"availableRooms"`
}

// Service is a unified catalog listing owned by exactly one provider.
type Service struct {
	ID          string      `bson:"id" json:"id"`
	ProviderID  string      `bson:"providerId" json:"providerId"`
	Name        string      `bson:"name" json:"name"`
	Description string      `bson:"description" json:"description"`
	Type        ServiceType `bson:"type" json:"type"`
	Price       float64     `bson:"price" json:"price"`
	Location    string      `bson:"location,omitempty" json:"location,omitempty"`
	City        string      `bson:"city,omitempty" json:"city,omitempty"`
	Status      string      `bson:"status" json:"status"`
	Images      []string    `bson:"images,omitempty" json:"images,omitempty"`

	RoomTypes   []RoomType `bson:"roomTypes,omitempty" json:"roomTypes,omitempty"`
	VehicleType string     `bson:"vehicleType,omitempty" json:"vehicleType,omitempty"`
	EventType   string     `bson:"eventType,omitempty" json:"eventType,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ServiceStatusActive is the only catalog status that accepts new bookings.
const ServiceStatusActive = "active"

// RoomPrice returns the nightly price of the named room type, if listed.
func (s Service) RoomPrice(name string) (float64, bool) {
	for _, rt := range s.RoomTypes {
		if rt.Name == name {
			return rt.PricePerNight, true
		}
	}
	return 0, false
}

// Tour is a legacy tour listing referenced by TourReservation.
type Tour struct {
	ID       string  `bson:"id" json:"id"`
	OwnerID  string  `bson:"ownerId" json:"ownerId"`
	Name     string  `bson:"name" json:"name"`
	Category string  `bson:"category,omitempty" json:"category,omitempty"`
	Cities   string  `bson:"cities,omitempty" json:"cities,omitempty"`
	Price    float64 `bson:"price" json:"price"`
}

// Location returns the most descriptive place name of the tour.
func (t Tour) Location() string {
	if t.Cities != "" {
		return t.Cities
	}
	return t.Category
}

// Vehicle is a legacy rental vehicle referenced by VehicleReservation.
type Vehicle struct {
	ID            string  `bson:"id" json:"id"`
	OwnerID       string  `bson:"userId" json:"userId"`
	Brand         string  `bson:"brand" json:"brand"`
	Model         string  `bson:"model" json:"model"`
	Type          string  `bson:"vehicleType" json:"vehicleType"`
	VehicleNumber string  `bson:"vehicleNumber" json:"vehicleNumber"`
	Location      string  `bson:"location" json:"location"`
	Price         float64 `bson:"price" json:"price"`
}

// DisplayName joins brand and model.
func (v Vehicle) DisplayName() string {
	switch {
	case v.Brand == "":
		return v.Model
	case v.Model == "":
		return v.Brand
	}
	return v.Brand + " " + v.Model
}

// Restaurant is a legacy restaurant listing referenced by RestaurantReservation.
type Restaurant struct {
	ID            string  `bson:"id" json:"id"`
	OwnerID       string  `bson:"user" json:"userId"`
	Name          string  `bson:"name" json:"name"`
	Address       string  `bson:"address" json:"address"`
	TableCount    int     `bson:"tableCount" json:"tableCount"`
	PricePerGuest float64 `bson:"pricePerGuest" json:"pricePerGuest"`
	Status        string  `bson:"status" json:"status"`
}

// RestaurantStatusApproved is the only restaurant status that accepts bookings.
const RestaurantStatusApproved = "APPROVED"
