package reservation

import (
	"context"
	"fmt"
	"strings"

	"travelhub/models"
	"travelhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateFormat = "Jan 2, 2006"

// CreateServiceReservation books an active catalog Service for a date range.
func (s *DefaultReservationService) CreateServiceReservation(ctx context.Context, actor models.Actor, req models.CreateServiceReservationRequest) (*models.ServiceReservation, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}
	checkIn, checkOut, err := parseRange("checkInDate", req.CheckInDate, "checkOutDate", req.CheckOutDate)
	if err != nil {
		return nil, err
	}

	svc, err := s.catalog.GetService(ctx, req.ServiceID)
	if err != nil {
		return nil, notFoundAs(err, "service")
	}
	if svc.Status != models.ServiceStatusActive {
		return nil, utils.NewNotFoundError("service")
	}

	unitPrice := svc.Price
	if req.RoomType != "" {
		if p, ok := svc.RoomPrice(req.RoomType); ok {
			unitPrice = p
		}
	}
	days := billableDays(checkIn, checkOut)
	qty := quantity(req.Rooms, req.Guests, req.GroupSize)

	r := &models.ServiceReservation{
		CustomerID:      actor.ID,
		ServiceID:       svc.ID,
		ProviderID:      svc.ProviderID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		Guests:          max(req.Guests, 1),
		CustomerName:    strings.TrimSpace(req.CustomerName),
		CustomerEmail:   strings.ToLower(strings.TrimSpace(req.CustomerEmail)),
		CustomerPhone:   strings.TrimSpace(req.CustomerPhone),
		CNICNumber:      strings.TrimSpace(req.CNICNumber),
		CNICPhoto:       req.CNICPhoto,
		Rooms:           req.Rooms,
		RoomType:        req.RoomType,
		GroupSize:       req.GroupSize,
		VehicleType:     req.VehicleType,
		EventType:       req.EventType,
		SpecialRequests: req.SpecialRequests,
		PricePerUnit:    unitPrice,
		TotalAmount:     totalAmount(unitPrice, days, qty),
		Status:          models.StatusPending,
		PaymentStatus:   "pending",
	}
	if err := s.stores.Services.Create(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Info("service reservation created",
		zap.String("reservationId", r.ID),
		zap.String("serviceId", svc.ID),
		zap.String("customerId", actor.ID),
		zap.Float64("totalAmount", r.TotalAmount),
	)

	label, _ := describe(svc.Type, details{})
	s.announceBooking(ctx, svc.ProviderID, models.NotifyNewServiceBooking,
		"New "+label,
		fmt.Sprintf("%s requested %s from %s to %s.", r.CustomerName, svc.Name,
			checkIn.Format(dateFormat), checkOut.Format(dateFormat)),
		map[string]any{
			"reservationId": r.ID,
			"type":          string(models.KindService),
			"serviceId":     svc.ID,
			"serviceType":   string(svc.Type),
			"totalAmount":   r.TotalAmount,
		})
	return r, nil
}

// CreateTourReservation books a tour on a single date.
func (s *DefaultReservationService) CreateTourReservation(ctx context.Context, actor models.Actor, req models.CreateTourReservationRequest) (*models.TourReservation, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}
	tourDate, err := parseDate("tourDate", req.TourDate)
	if err != nil {
		return nil, err
	}

	tour, err := s.catalog.GetTour(ctx, req.TourID)
	if err != nil {
		return nil, notFoundAs(err, "tour")
	}

	guests := max(req.Guests, 1)
	r := &models.TourReservation{
		CustomerID:      actor.ID,
		TourID:          tour.ID,
		TourOwnerID:     tour.OwnerID,
		CustomerName:    strings.TrimSpace(req.CustomerName),
		CustomerEmail:   strings.ToLower(strings.TrimSpace(req.CustomerEmail)),
		CustomerPhone:   strings.TrimSpace(req.CustomerPhone),
		TourName:        tour.Name,
		TourDate:        tourDate,
		Guests:          guests,
		TourPrice:       tour.Price,
		TotalAmount:     totalAmount(tour.Price, 1, guests),
		SpecialRequests: req.SpecialRequests,
		Status:          models.StatusPending,
	}
	if err := s.stores.Tours.Create(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Info("tour reservation created", zap.String("reservationId", r.ID), zap.String("tourId", tour.ID))

	s.announceBooking(ctx, tour.OwnerID, models.NotifyNewReservation,
		"New Tour Booking",
		fmt.Sprintf("%s booked %s for %d guest(s) on %s.", r.CustomerName, tour.Name, guests, tourDate.Format(dateFormat)),
		map[string]any{"reservationId": r.ID, "type": string(models.KindTour), "tourId": tour.ID})
	return r, nil
}

// CreateVehicleReservation rents a vehicle between pickup and return dates.
func (s *DefaultReservationService) CreateVehicleReservation(ctx context.Context, actor models.Actor, req models.CreateVehicleReservationRequest) (*models.VehicleReservation, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}
	pickup, ret, err := parseRange("pickupDate", req.PickupDate, "returnDate", req.ReturnDate)
	if err != nil {
		return nil, err
	}

	vehicle, err := s.catalog.GetVehicle(ctx, req.VehicleID)
	if err != nil {
		return nil, notFoundAs(err, "vehicle")
	}

	days := billableDays(pickup, ret)
	price := totalAmount(vehicle.Price, days, 1)
	if req.NeedDriver {
		price += totalAmount(s.settings.DriverFeePerDay, days, 1)
	}

	r := &models.VehicleReservation{
		UserID:         actor.ID,
		VehicleID:      vehicle.ID,
		VehicleOwnerID: vehicle.OwnerID,
		VehicleNumber:  vehicle.VehicleNumber,
		Location:       vehicle.Location,
		PickupDate:     pickup,
		ReturnDate:     ret,
		Price:          price,
		NeedDriver:     req.NeedDriver,
		TransactionID:  "TXN-" + strings.ToUpper(uuid.New().String()[:8]),
		Status:         models.StatusPending,
	}
	if err := s.stores.Vehicles.Create(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Info("vehicle reservation created", zap.String("reservationId", r.ID), zap.String("vehicleId", vehicle.ID))

	s.announceBooking(ctx, vehicle.OwnerID, models.NotifyNewReservation,
		"New Vehicle Rental",
		fmt.Sprintf("%s (%s) was requested for %d day(s) from %s.", vehicle.DisplayName(), vehicle.VehicleNumber, days, pickup.Format(dateFormat)),
		map[string]any{"reservationId": r.ID, "type": string(models.KindVehicle), "vehicleId": vehicle.ID})
	return r, nil
}

// CreateRestaurantReservation books a table at an approved restaurant.
func (s *DefaultReservationService) CreateRestaurantReservation(ctx context.Context, actor models.Actor, req models.CreateRestaurantReservationRequest) (*models.RestaurantReservation, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}
	date, err := parseDate("date", req.Date)
	if err != nil {
		return nil, err
	}

	restaurant, err := s.catalog.GetRestaurant(ctx, req.RestaurantID)
	if err != nil {
		return nil, notFoundAs(err, "restaurant")
	}
	if restaurant.Status != models.RestaurantStatusApproved {
		return nil, utils.NewNotFoundError("restaurant")
	}
	if restaurant.TableCount > 0 && req.TableNumber > restaurant.TableCount {
		return nil, utils.NewValidationError("Table does not exist", "tableNumber")
	}

	guests := max(req.Guests, 1)
	r := &models.RestaurantReservation{
		UserID:            actor.ID,
		RestaurantID:      restaurant.ID,
		RestaurantOwnerID: restaurant.OwnerID,
		CustomerName:      strings.TrimSpace(req.CustomerName),
		CustomerEmail:     strings.ToLower(strings.TrimSpace(req.CustomerEmail)),
		CustomerPhone:     strings.TrimSpace(req.CustomerPhone),
		Date:              date,
		Time:              req.Time,
		Guests:            guests,
		TableNumber:       req.TableNumber,
		TotalAmount:       totalAmount(restaurant.PricePerGuest, 1, guests),
		SpecialRequests:   req.SpecialRequests,
		Status:            models.StatusPending,
	}
	if err := s.stores.Restaurants.Create(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Info("restaurant reservation created", zap.String("reservationId", r.ID), zap.String("restaurantId", restaurant.ID))

	s.announceBooking(ctx, restaurant.OwnerID, models.NotifyNewReservation,
		"New Table Booking",
		fmt.Sprintf("%s booked a table for %d at %s on %s.", r.CustomerName, guests, restaurant.Name, date.Format(dateFormat)),
		map[string]any{"reservationId": r.ID, "type": string(models.KindRestaurant), "restaurantId": restaurant.ID})
	return r, nil
}

// announceBooking tells the owner, and every admin when enabled, about a new booking.
func (s *DefaultReservationService) announceBooking(ctx context.Context, ownerID string, typ models.NotificationType, title, message string, data map[string]any) {
	s.notifier.Notify(ctx, ownerID, title, message, typ, data)

	if !s.settings.NotifyAdminsOnBooking {
		return
	}
	admins, err := s.users.ListIDsByRole(ctx, models.RoleAdmin)
	if err != nil {
		s.logger.Warn("failed to load admins for booking notification", zap.Error(err))
		return
	}
	for _, id := range admins {
		if id == ownerID {
			continue
		}
		s.notifier.Notify(ctx, id, title, message, models.NotifyNewReservation, data)
	}
}
