package reservation

import (
	"context"
	"fmt"

	"travelhub/models"
	"travelhub/utils"

	"go.uber.org/zap"
)

// GetDetails returns one reservation to its customer, its owning provider,
// or an admin. Everyone else gets the same answer as for a missing id.
func (s *DefaultReservationService) GetDetails(ctx context.Context, actor models.Actor, kind models.ReservationKind, id string) (*models.ReservationView, error) {
	rec, err := s.load(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if rec.customerID != actor.ID && !rec.ownedBy(actor) && !actor.IsAdmin() {
		return nil, errReservationNotFound
	}
	return rec.view(ctx)
}

// Delete removes a customer's booking once it is terminal or in the past.
func (s *DefaultReservationService) Delete(ctx context.Context, actor models.Actor, kind models.ReservationKind, id string) error {
	rec, err := s.load(ctx, kind, id)
	if err != nil {
		return err
	}
	if rec.customerID != actor.ID {
		return errReservationNotFound
	}
	if !rec.status().IsTerminal() && !rec.endDate.Before(s.now()) {
		return utils.NewValidationError("Only cancelled, completed or past reservations can be deleted", "status")
	}

	if err := rec.remove(ctx); err != nil {
		return notFoundAs(err, "reservation")
	}

	s.logger.Info("reservation deleted",
		zap.String("reservationId", rec.id),
		zap.String("type", string(kind)),
		zap.String("customerId", actor.ID),
	)
	s.notifier.Notify(ctx, actor.ID, "Booking Deleted",
		fmt.Sprintf("Your %s was removed from your bookings.", rec.title),
		models.NotifyBookingDeleted,
		map[string]any{"reservationId": rec.id, "type": string(kind)})
	return nil
}
