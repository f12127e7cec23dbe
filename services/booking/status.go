package booking

import (
	"errors"

	bookingRepo "sahara/database/repository/booking"
	"sahara/models"
	"sahara/utils"
)

// UpdateBookingStatus moves a booking to the target status. The target must be
// one of the four lifecycle states; beyond that, any state may move to any
// other state, including itself. The transition overwrites status, refreshes
// updatedAt, and returns the updated record.
func (s *DefaultBookingService) UpdateBookingStatus(id, status string) (*models.Booking, error) {
	if !models.IsValidBookingStatus(status) {
		return nil, utils.NewValidationError("Invalid status")
	}

	booking, err := s.Repo.UpdateStatus(id, status)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, utils.NewNotFoundError("Booking")
		}
		return nil, utils.NewStorageError(err)
	}
	return booking, nil
}
