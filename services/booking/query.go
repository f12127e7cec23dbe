package booking

import (
	"errors"

	bookingRepo "sahara/database/repository/booking"
	"sahara/models"
	"sahara/utils"
)

// ListBookings returns one page of matching bookings (createdAt descending)
// together with statistics over the entire filtered set and the package
// popularity ranking. An empty result set yields zero-filled statistics.
func (s *DefaultBookingService) ListBookings(q ListQuery) (*models.BookingPage, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}

	if q.Filter.Status != "" && !models.IsValidBookingStatus(q.Filter.Status) {
		return nil, utils.NewValidationError("invalid status filter")
	}

	bookings, err := s.Repo.Find(q.Filter, page, limit)
	if err != nil {
		return nil, utils.NewStorageError(err)
	}

	count, err := s.Repo.Count(q.Filter)
	if err != nil {
		return nil, utils.NewStorageError(err)
	}

	stats, err := s.Repo.Stats(q.Filter)
	if err != nil {
		return nil, utils.NewStorageError(err)
	}

	packageStats, err := s.Repo.PackagePopularity()
	if err != nil {
		return nil, utils.NewStorageError(err)
	}

	totalPages := count / limit
	if count%limit != 0 {
		totalPages++
	}

	if bookings == nil {
		bookings = []models.Booking{}
	}
	if packageStats == nil {
		packageStats = []models.PackageCount{}
	}

	return &models.BookingPage{
		Bookings:     bookings,
		TotalPages:   totalPages,
		CurrentPage:  page,
		TotalItems:   count,
		Stats:        stats,
		PackageStats: packageStats,
	}, nil
}

// GetBooking fetches a single booking by id.
func (s *DefaultBookingService) GetBooking(id string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, utils.NewNotFoundError("Booking")
		}
		return nil, utils.NewStorageError(err)
	}
	return booking, nil
}

// DeleteBooking hard-deletes a booking by id.
func (s *DefaultBookingService) DeleteBooking(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return utils.NewNotFoundError("Booking")
		}
		return utils.NewStorageError(err)
	}
	return nil
}
