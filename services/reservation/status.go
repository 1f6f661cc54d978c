package reservation

import (
	"context"
	"fmt"

	"travelhub/models"
	"travelhub/utils"

	"go.uber.org/zap"
)

// UpdateStatus confirms or cancels a reservation on behalf of its owning
// provider or an admin. Re-transitions are allowed; concurrent updates to
// the same document are last-write-wins.
func (s *DefaultReservationService) UpdateStatus(ctx context.Context, actor models.Actor, kind models.ReservationKind, id string, req models.StatusUpdateRequest) (*models.ReservationView, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	rec, err := s.load(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && !rec.ownedBy(actor) {
		return nil, errReservationNotFound
	}

	transition(rec.life, req.Status, req.RejectionReason, confirmationPrefix(kind), s.now())
	if err := rec.save(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("reservation status updated",
		zap.String("reservationId", rec.id),
		zap.String("type", string(kind)),
		zap.String("status", string(req.Status)),
		zap.String("actorId", actor.ID),
	)
	s.notifyCustomer(ctx, rec)

	return rec.view(ctx)
}

func (s *DefaultReservationService) notifyCustomer(ctx context.Context, rec *record) {
	data := map[string]any{
		"reservationId": rec.id,
		"type":          string(rec.kind),
		"status":        string(rec.status()),
	}

	switch rec.status() {
	case models.StatusConfirmed:
		data["confirmationNumber"] = *rec.life.ConfirmationNumber
		s.notifier.Notify(ctx, rec.customerID, "Booking Confirmed",
			fmt.Sprintf("Your %s has been confirmed. Confirmation number: %s.", rec.title, *rec.life.ConfirmationNumber),
			models.NotifyBookingConfirmed, data)
	case models.StatusCancelled:
		msg := fmt.Sprintf("Your %s has been cancelled.", rec.title)
		if reason := *rec.life.RejectionReason; reason != "" {
			msg = fmt.Sprintf("Your %s has been cancelled. Reason: %s.", rec.title, reason)
			data["rejectionReason"] = reason
		}
		s.notifier.Notify(ctx, rec.customerID, "Booking Cancelled", msg, models.NotifyBookingCancelled, data)
	}
}

// CancelByCustomer lets the customer withdraw a booking that has not been
// confirmed yet.
func (s *DefaultReservationService) CancelByCustomer(ctx context.Context, actor models.Actor, kind models.ReservationKind, id string, reason string) (*models.ReservationView, error) {
	rec, err := s.load(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if rec.customerID != actor.ID {
		return nil, errReservationNotFound
	}
	if rec.status() != models.StatusPending {
		return nil, utils.NewValidationError("Only pending reservations can be cancelled", "status")
	}

	*rec.life.Status = models.StatusCancelled
	if reason != "" {
		*rec.life.RejectionReason = reason
	}
	if err := rec.save(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("reservation cancelled by customer",
		zap.String("reservationId", rec.id),
		zap.String("type", string(kind)),
		zap.String("customerId", actor.ID),
	)
	s.notifier.Notify(ctx, rec.ownerID, "Reservation Cancelled",
		fmt.Sprintf("The customer cancelled their %s.", rec.title),
		models.NotifyReservationCancelled,
		map[string]any{"reservationId": rec.id, "type": string(kind)})

	return rec.view(ctx)
}
