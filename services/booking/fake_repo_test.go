package booking

import (
	"sort"
	"time"

	bookingRepo "sahara/database/repository/booking"
	"sahara/models"
)

// memRepo is an in-memory Repository used to exercise the services without a
// running MongoDB. Aggregates are computed by iteration over the stored set.
type memRepo struct {
	bookings []models.Booking
	failNext error
}

func (m *memRepo) Create(b *models.Booking) error {
	if m.failNext != nil {
		err := m.failNext
		m.failNext = nil
		return err
	}
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	m.bookings = append(m.bookings, *b)
	return nil
}

func (m *memRepo) GetByID(id string) (*models.Booking, error) {
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			b := m.bookings[i]
			return &b, nil
		}
	}
	return nil, bookingRepo.ErrNotFound
}

func (m *memRepo) matches(b models.Booking, filter models.BookingFilter) bool {
	if filter.Status != "" && b.Status != filter.Status {
		return false
	}
	if filter.StartDate != nil && b.Date.Before(*filter.StartDate) {
		return false
	}
	if filter.EndDate != nil && b.Date.After(*filter.EndDate) {
		return false
	}
	return true
}

func (m *memRepo) filtered(filter models.BookingFilter) []models.Booking {
	var out []models.Booking
	for _, b := range m.bookings {
		if m.matches(b, filter) {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (m *memRepo) Find(filter models.BookingFilter, page, limit int64) ([]models.Booking, error) {
	all := m.filtered(filter)
	start := (page - 1) * limit
	if start >= int64(len(all)) {
		return nil, nil
	}
	end := start + limit
	if end > int64(len(all)) {
		end = int64(len(all))
	}
	return all[start:end], nil
}

func (m *memRepo) Count(filter models.BookingFilter) (int64, error) {
	return int64(len(m.filtered(filter))), nil
}

func (m *memRepo) Stats(filter models.BookingFilter) (models.BookingStats, error) {
	var stats models.BookingStats
	for _, b := range m.filtered(filter) {
		stats.TotalRevenue += b.TotalAmount
		stats.TotalBookings++
		switch b.Status {
		case models.StatusPending:
			stats.PendingBookings++
		case models.StatusConfirmed:
			stats.ConfirmedBookings++
		case models.StatusCompleted:
			stats.CompletedBookings++
		case models.StatusCancelled:
			stats.CancelledBookings++
		}
	}
	return stats, nil
}

func (m *memRepo) PackagePopularity() ([]models.PackageCount, error) {
	counts := map[string]int64{}
	for _, b := range m.bookings {
		counts[b.PackageLabel()]++
	}
	var out []models.PackageCount
	for pkg, n := range counts {
		out = append(out, models.PackageCount{Package: pkg, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out, nil
}

func (m *memRepo) UpdateStatus(id, status string) (*models.Booking, error) {
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			m.bookings[i].Status = status
			m.bookings[i].UpdatedAt = time.Now()
			b := m.bookings[i]
			return &b, nil
		}
	}
	return nil, bookingRepo.ErrNotFound
}

func (m *memRepo) Delete(id string) error {
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			m.bookings = append(m.bookings[:i], m.bookings[i+1:]...)
			return nil
		}
	}
	return bookingRepo.ErrNotFound
}
