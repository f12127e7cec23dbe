package models

import "time"

// Booking statuses. No other value is ever stored.
const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCancelled = "Cancelled"
	StatusCompleted = "Completed"
)

// BookingStatuses lists the accepted lifecycle states in display order.
var BookingStatuses = []string{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted}

// IsValidBookingStatus reports whether s is one of the four accepted statuses.
func IsValidBookingStatus(s string) bool {
	for _, v := range BookingStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// TourPackages is the fixed enumeration for the legacy tourPackage field.
var TourPackages = []string{
	"Desert Safari", "Camel Trekking", "Luxury Camp", "Berber Experience", "Custom Package",
	"Sunset Camel Trek", "Luxury Desert Camp", "Stargazing Night Tour", "Nomadic Lifestyle Experience",
}

// ExtraOption is an add-on selected at booking time, with its price snapshot.
type ExtraOption struct {
	ID    string  `bson:"id" json:"id"`
	Name  string  `bson:"name" json:"name"`
	Price float64 `bson:"price" json:"price"`
}

// Booking represents a customer's reservation request for an experience or
// package. The legacy fields (tourPackage, date, totalAmount) coexist with the
// structured ones (experienceId/experienceTitle, startDate/endDate, totalPrice);
// readers prefer the structured field when both are set.
type Booking struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone" json:"phone"`

	TourPackage     string `bson:"tourPackage,omitempty" json:"tourPackage,omitempty"`
	ExperienceID    string `bson:"experienceId,omitempty" json:"experienceId,omitempty"`
	ExperienceTitle string `bson:"experienceTitle,omitempty" json:"experienceTitle,omitempty"`
	ExperienceImage string `bson:"experienceImage,omitempty" json:"experienceImage,omitempty"`

	Date      time.Time  `bson:"date" json:"date"`
	StartDate *time.Time `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate   *time.Time `bson:"endDate,omitempty" json:"endDate,omitempty"`

	NumberOfPeople  int           `bson:"numberOfPeople" json:"numberOfPeople"`
	SpecialRequests string        `bson:"specialRequests,omitempty" json:"specialRequests,omitempty"`
	TotalAmount     float64       `bson:"totalAmount" json:"totalAmount"`
	TotalPrice      *float64      `bson:"totalPrice,omitempty" json:"totalPrice,omitempty"`
	ExtraOptions    []ExtraOption `bson:"extraOptions,omitempty" json:"extraOptions,omitempty"`

	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// PackageLabel returns the booking's package identifier, preferring the
// structured experience title over the legacy tourPackage.
func (b *Booking) PackageLabel() string {
	if b.ExperienceTitle != "" {
		return b.ExperienceTitle
	}
	return b.TourPackage
}

// EffectiveDate returns the scheduled date, preferring startDate over the
// legacy date field.
func (b *Booking) EffectiveDate() time.Time {
	if b.StartDate != nil && !b.StartDate.IsZero() {
		return *b.StartDate
	}
	return b.Date
}

// EffectiveTotal returns the charged total, preferring totalPrice over the
// legacy totalAmount.
func (b *Booking) EffectiveTotal() float64 {
	if b.TotalPrice != nil {
		return *b.TotalPrice
	}
	return b.TotalAmount
}

// BookingStats summarizes the entire filtered set, not just the current page.
type BookingStats struct {
	TotalRevenue      float64 `bson:"totalRevenue" json:"totalRevenue"`
	TotalBookings     int64   `bson:"totalBookings" json:"totalBookings"`
	PendingBookings   int64   `bson:"pendingBookings" json:"pendingBookings"`
	ConfirmedBookings int64   `bson:"confirmedBookings" json:"confirmedBookings"`
	CompletedBookings int64   `bson:"completedBookings" json:"completedBookings"`
	CancelledBookings int64   `bson:"cancelledBookings" json:"cancelledBookings"`
}

// PackageCount is one entry of the package popularity ranking.
type PackageCount struct {
	Package string `bson:"_id" json:"package"`
	Count   int64  `bson:"count" json:"count"`
}

// BookingFilter narrows admin queries. Zero values mean "no constraint";
// the date range is inclusive over the booking date.
type BookingFilter struct {
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
}

// BookingPage is the admin listing response: one page of records plus
// aggregates over the whole filtered set.
type BookingPage struct {
	Bookings     []Booking      `json:"bookings"`
	TotalPages   int64          `json:"totalPages"`
	CurrentPage  int64          `json:"currentPage"`
	TotalItems   int64          `json:"totalItems"`
	Stats        BookingStats   `json:"stats"`
	PackageStats []PackageCount `json:"packageStats"`
}
