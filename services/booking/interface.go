package booking

import (
	"sahara/models"
)

// ListQuery carries the admin listing parameters. Page and Limit fall back to
// 1 and 10 when unset or out of range.
type ListQuery struct {
	Page   int64
	Limit  int64
	Filter models.BookingFilter
}

// BookingService covers intake, admin querying, status transitions, and
// deletion of booking records.
type BookingService interface {
	CreateBooking(input CreateBookingInput) (*models.Booking, error)
	ListBookings(q ListQuery) (*models.BookingPage, error)
	GetBooking(id string) (*models.Booking, error)
	UpdateBookingStatus(id, status string) (*models.Booking, error)
	DeleteBooking(id string) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo Repository
}

// Repository is the store contract the service depends on. It matches
// bookingRepo.BookingRepository; redeclared here so the service can be
// exercised against an in-memory fake.
type Repository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	Find(filter models.BookingFilter, page, limit int64) ([]models.Booking, error)
	Count(filter models.BookingFilter) (int64, error)
	Stats(filter models.BookingFilter) (models.BookingStats, error)
	PackagePopularity() ([]models.PackageCount, error)
	UpdateStatus(id, status string) (*models.Booking, error)
	Delete(id string) error
}
