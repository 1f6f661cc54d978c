package handlers

import (
	"net/http"

	"travelhub/models"
	"travelhub/services/reservation"
	"travelhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReservationHandler exposes the reservation lifecycle over HTTP.
type ReservationHandler struct {
	svc reservation.ReservationService
}

func NewReservationHandler(svc reservation.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

// kindParam resolves :kind, answering 404 for unknown collections.
func kindParam(c *gin.Context) (models.ReservationKind, bool) {
	kind, ok := models.ParseReservationKind(c.Param("kind"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Reservation not found")
		return "", false
	}
	return kind, true
}

// CreateServiceReservation books a catalog service.
func (h *ReservationHandler) CreateServiceReservation(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req models.CreateServiceReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	res, err := h.svc.CreateServiceReservation(c.Request.Context(), actor, req)
	if err != nil {
		writeError(c, err, "Failed to create service reservation",
			zap.String("customerId", actor.ID), zap.String("serviceId", req.ServiceID))
		return
	}
	respond(c, http.StatusCreated, "Reservation created successfully", res)
}

// CreateTourReservation books a tour.
func (h *ReservationHandler) CreateTourReservation(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req models.CreateTourReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	res, err := h.svc.CreateTourReservation(c.Request.Context(), actor, req)
	if err != nil {
		writeError(c, err, "Failed to create tour reservation",
			zap.String("customerId", actor.ID), zap.String("tourId", req.TourID))
		return
	}
	respond(c, http.StatusCreated, "Tour booked successfully", res)
}

// CreateVehicleReservation rents a vehicle.
func (h *ReservationHandler) CreateVehicleReservation(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req models.CreateVehicleReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	res, err := h.svc.CreateVehicleReservation(c.Request.Context(), actor, req)
	if err != nil {
		writeError(c, err, "Failed to create vehicle reservation",
			zap.String("customerId", actor.ID), zap.String("vehicleId", req.VehicleID))
		return
	}
	respond(c, http.StatusCreated, "Vehicle booked successfully", res)
}

// CreateRestaurantReservation books a table.
func (h *ReservationHandler) CreateRestaurantReservation(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req models.CreateRestaurantReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	res, err := h.svc.CreateRestaurantReservation(c.Request.Context(), actor, req)
	if err != nil {
		writeError(c, err, "Failed to create restaurant reservation",
			zap.String("customerId", actor.ID), zap.String("restaurantId", req.RestaurantID))
		return
	}
	respond(c, http.StatusCreated, "Table reserved successfully", res)
}

// MyBookings lists the caller's own reservations across every store.
func (h *ReservationHandler) MyBookings(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	page, err := h.svc.ListForCustomer(c.Request.Context(), actor, reservationFilter(c))
	if err != nil {
		writeError(c, err, "Failed to list customer reservations", zap.String("customerId", actor.ID))
		return
	}
	respondPage(c, page)
}

// ProviderReservations lists reservations against the caller's listings.
func (h *ReservationHandler) ProviderReservations(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	page, err := h.svc.ListForProvider(c.Request.Context(), actor, reservationFilter(c))
	if err != nil {
		writeError(c, err, "Failed to list provider reservations", zap.String("providerId", actor.ID))
		return
	}
	respondPage(c, page)
}

// AllReservations is the admin-wide listing.
func (h *ReservationHandler) AllReservations(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	page, err := h.svc.ListAll(c.Request.Context(), actor, reservationFilter(c))
	if err != nil {
		writeError(c, err, "Failed to list reservations", zap.String("adminId", actor.ID))
		return
	}
	respondPage(c, page)
}

// UpdateStatus confirms or rejects a reservation.
func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	kind, ok := kindParam(c)
	if !ok {
		return
	}
	var req models.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	id := c.Param("id")
	view, err := h.svc.UpdateStatus(c.Request.Context(), actor, kind, id, req)
	if err != nil {
		writeError(c, err, "Failed to update reservation status",
			zap.String("kind", string(kind)), zap.String("reservationId", id), zap.String("actorId", actor.ID))
		return
	}
	respond(c, http.StatusOK, "Reservation "+string(view.Status)+" successfully", view)
}

// Cancel withdraws a pending reservation on behalf of its customer.
func (h *ReservationHandler) Cancel(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	kind, ok := kindParam(c)
	if !ok {
		return
	}
	var req models.CancelRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBindError(c, err)
			return
		}
	}

	id := c.Param("id")
	view, err := h.svc.CancelByCustomer(c.Request.Context(), actor, kind, id, req.Reason)
	if err != nil {
		writeError(c, err, "Failed to cancel reservation",
			zap.String("kind", string(kind)), zap.String("reservationId", id), zap.String("customerId", actor.ID))
		return
	}
	respond(c, http.StatusOK, "Reservation cancelled successfully", view)
}

// Details returns one reservation.
func (h *ReservationHandler) Details(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	kind, ok := kindParam(c)
	if !ok {
		return
	}
	id := c.Param("id")
	view, err := h.svc.GetDetails(c.Request.Context(), actor, kind, id)
	if err != nil {
		writeError(c, err, "Failed to fetch reservation",
			zap.String("kind", string(kind)), zap.String("reservationId", id))
		return
	}
	respond(c, http.StatusOK, "", view)
}

// Delete removes a finished reservation from the customer's history.
func (h *ReservationHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	kind, ok := kindParam(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if err := h.svc.Delete(c.Request.Context(), actor, kind, id); err != nil {
		writeError(c, err, "Failed to delete reservation",
			zap.String("kind", string(kind)), zap.String("reservationId", id), zap.String("customerId", actor.ID))
		return
	}
	respond(c, http.StatusOK, "Reservation deleted successfully", nil)
}
