package bookingRepo

import "sahara/models"

// BookingRepository defines the interface for booking data access.
// Every mutating method refreshes the record's updatedAt timestamp.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	Find(filter models.BookingFilter, page, limit int64) ([]models.Booking, error)
	Count(filter models.BookingFilter) (int64, error)
	Stats(filter models.BookingFilter) (models.BookingStats, error)
	PackagePopularity() ([]models.PackageCount, error)
	UpdateStatus(id, status string) (*models.Booking, error)
	Delete(id string) error
}
