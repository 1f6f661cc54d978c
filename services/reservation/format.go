package reservation

import (
	"fmt"
	"strings"

	"travelhub/models"
)

// details carries the type-specific quantities shown next to a booking.
type details struct {
	Guests      int
	Rooms       int
	RoomType    string
	Days        int
	VehicleType string
	TableNumber int
	GroupSize   int
	EventType   string
}

// describe returns the human label and detail line for a service type.
func describe(st models.ServiceType, d details) (string, string) {
	var parts []string
	label := "Service Reservation"

	switch st {
	case models.ServiceHotel:
		label = "Hotel Reservation"
		parts = append(parts, fmt.Sprintf("Guests: %d", d.Guests), fmt.Sprintf("Rooms: %d", max(d.Rooms, 1)))
		if d.RoomType != "" {
			parts = append(parts, "Type: "+d.RoomType)
		}
	case models.ServiceVehicle:
		label = "Vehicle Rental"
		parts = append(parts, fmt.Sprintf("Duration: %d day(s)", d.Days))
		if d.VehicleType != "" {
			parts = append(parts, "Vehicle: "+d.VehicleType)
		}
	case models.ServiceRestaurant:
		label = "Restaurant Booking"
		parts = append(parts, fmt.Sprintf("Guests: %d", d.Guests))
		if d.TableNumber > 0 {
			parts = append(parts, fmt.Sprintf("Table: %d", d.TableNumber))
		}
	case models.ServiceTour:
		label = "Tour Booking"
		parts = append(parts, fmt.Sprintf("Group Size: %d", max(d.GroupSize, d.Guests, 1)))
	case models.ServiceEvent:
		label = "Event Booking"
		parts = append(parts, fmt.Sprintf("Guests: %d", d.Guests))
		if d.EventType != "" {
			parts = append(parts, "Event: "+d.EventType)
		}
	default:
		parts = append(parts, fmt.Sprintf("Guests: %d", d.Guests))
		if d.Rooms > 1 {
			parts = append(parts, fmt.Sprintf("Units: %d", d.Rooms))
		}
	}
	return label, strings.Join(parts, ", ")
}

func labelled(v *models.ReservationView, d details) {
	v.ServiceTypeLabel, v.FormattedDetails = describe(v.ServiceType, d)
	v.DisplayDetails = v.ServiceTypeLabel + " - " + v.FormattedDetails
}

// serviceView normalizes a service reservation. svc may be nil when the
// catalog entry is gone; the contact snapshot is used either way.
func serviceView(r models.ServiceReservation, svc *models.Service) models.ReservationView {
	v := models.ReservationView{
		ID:                 r.ID,
		Type:               models.KindService,
		ItemID:             r.ServiceID,
		OwnerID:            r.ProviderID,
		CustomerID:         r.CustomerID,
		CustomerName:       r.CustomerName,
		CustomerEmail:      r.CustomerEmail,
		CustomerPhone:      r.CustomerPhone,
		CheckInDate:        r.CheckInDate,
		CheckOutDate:       r.CheckOutDate,
		Guests:             r.Guests,
		TotalAmount:        r.TotalAmount,
		PricePerUnit:       r.PricePerUnit,
		Status:             r.Status,
		ConfirmationNumber: r.ConfirmationNumber,
		RejectionReason:    r.RejectionReason,
		ResponseDate:       r.ResponseDate,
		SpecialRequests:    r.SpecialRequests,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
	vehicleType := r.VehicleType
	if svc != nil {
		v.ServiceType = svc.Type
		v.ItemName = svc.Name
		v.Location = svc.Location
		if vehicleType == "" {
			vehicleType = svc.VehicleType
		}
	}
	labelled(&v, details{
		Guests:      r.Guests,
		Rooms:       r.Rooms,
		RoomType:    r.RoomType,
		Days:        billableDays(r.CheckInDate, r.CheckOutDate),
		VehicleType: vehicleType,
		GroupSize:   r.GroupSize,
		EventType:   r.EventType,
	})
	return v
}

// tourView normalizes a single-day tour booking.
func tourView(r models.TourReservation, tour *models.Tour) models.ReservationView {
	v := models.ReservationView{
		ID:                 r.ID,
		Type:               models.KindTour,
		ServiceType:        models.ServiceTour,
		ItemID:             r.TourID,
		ItemName:           r.TourName,
		OwnerID:            r.TourOwnerID,
		CustomerID:         r.CustomerID,
		CustomerName:       r.CustomerName,
		CustomerEmail:      r.CustomerEmail,
		CustomerPhone:      r.CustomerPhone,
		CheckInDate:        r.TourDate,
		CheckOutDate:       r.TourDate,
		Guests:             r.Guests,
		TotalAmount:        r.TotalAmount,
		PricePerUnit:       r.TourPrice,
		Status:             r.Status,
		ConfirmationNumber: r.ConfirmationNumber,
		RejectionReason:    r.RejectionReason,
		ResponseDate:       r.ResponseDate,
		SpecialRequests:    r.SpecialRequests,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
	if tour != nil {
		if v.ItemName == "" {
			v.ItemName = tour.Name
		}
		v.Location = tour.Location()
	}
	labelled(&v, details{Guests: r.Guests})
	return v
}

// vehicleView normalizes a legacy rental. The customer comes from the users
// collection because the legacy shape has no contact snapshot.
func vehicleView(r models.VehicleReservation, vehicle *models.Vehicle, customer *models.User) models.ReservationView {
	v := models.ReservationView{
		ID:                 r.ID,
		Type:               models.KindVehicle,
		ServiceType:        models.ServiceVehicle,
		ItemID:             r.VehicleID,
		Location:           r.Location,
		OwnerID:            r.VehicleOwnerID,
		CustomerID:         r.UserID,
		CheckInDate:        r.PickupDate,
		CheckOutDate:       r.ReturnDate,
		Guests:             1,
		TotalAmount:        r.Price,
		Status:             r.EffectiveStatus(),
		ConfirmationNumber: r.ConfirmationNumber,
		RejectionReason:    r.RejectionReason,
		ResponseDate:       r.ResponseDate,
		VehicleNumber:      r.VehicleNumber,
		NeedDriver:         r.NeedDriver,
		TransactionID:      r.TransactionID,
		CreatedAt:          r.Date,
		UpdatedAt:          r.Date,
	}
	if r.ResponseDate != nil {
		v.UpdatedAt = *r.ResponseDate
	}
	vehicleType := ""
	if vehicle != nil {
		v.ItemName = vehicle.DisplayName()
		v.PricePerUnit = vehicle.Price
		vehicleType = vehicle.Type
		if v.Location == "" {
			v.Location = vehicle.Location
		}
	}
	if customer != nil {
		v.CustomerName = customer.Name
		v.CustomerEmail = customer.Email
		v.CustomerPhone = customer.Phone
	}
	labelled(&v, details{Days: billableDays(r.PickupDate, r.ReturnDate), VehicleType: vehicleType})
	return v
}

// restaurantView normalizes a legacy table booking.
func restaurantView(r models.RestaurantReservation, restaurant *models.Restaurant) models.ReservationView {
	v := models.ReservationView{
		ID:                 r.ID,
		Type:               models.KindRestaurant,
		ServiceType:        models.ServiceRestaurant,
		ItemID:             r.RestaurantID,
		OwnerID:            r.RestaurantOwnerID,
		CustomerID:         r.UserID,
		CustomerName:       r.CustomerName,
		CustomerEmail:      r.CustomerEmail,
		CustomerPhone:      r.CustomerPhone,
		CheckInDate:        r.Date,
		CheckOutDate:       r.Date,
		Guests:             r.Guests,
		TotalAmount:        r.TotalAmount,
		Status:             r.Status,
		ConfirmationNumber: r.ConfirmationNumber,
		RejectionReason:    r.RejectionReason,
		ResponseDate:       r.ResponseDate,
		SpecialRequests:    r.SpecialRequests,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
	if restaurant != nil {
		v.ItemName = restaurant.Name
		v.Location = restaurant.Address
		v.PricePerUnit = restaurant.PricePerGuest
	}
	labelled(&v, details{Guests: r.Guests, TableNumber: r.TableNumber})
	return v
}
