package reservation

import (
	"errors"

	"travelhub/database/repository"
	"travelhub/utils"
)

// errReservationNotFound covers both a missing reservation and one the
// caller may not touch.
var errReservationNotFound = utils.NewNotFoundError("reservation")

// notFoundAs translates a repository miss into a domain not-found error.
func notFoundAs(err error, resource string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return utils.NewNotFoundError(resource)
	}
	return err
}
