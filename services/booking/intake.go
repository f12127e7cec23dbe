package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"sahara/models"
	"sahara/utils"
)

// CreateBookingInput is the public booking payload. Dates arrive as
// "2006-01-02" or RFC 3339 strings; amounts are pointers so a missing field
// can be told apart from zero. Any client-supplied status is ignored.
type CreateBookingInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	TourPackage     string `json:"tourPackage"`
	ExperienceID    string `json:"experienceId"`
	ExperienceTitle string `json:"experienceTitle"`
	ExperienceImage string `json:"experienceImage"`

	Date      string `json:"date"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`

	NumberOfPeople  int                  `json:"numberOfPeople"`
	SpecialRequests string               `json:"specialRequests"`
	TotalAmount     *float64             `json:"totalAmount"`
	TotalPrice      *float64             `json:"totalPrice"`
	ExtraOptions    []models.ExtraOption `json:"extraOptions"`
}

// dateLayouts are accepted for all date fields, in order of preference.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseQueryDate parses a date filter value from the query string.
func ParseQueryDate(value string) (time.Time, error) {
	if t, ok := parseDate(value); ok {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CreateBooking validates the payload and persists a new booking with status
// forced to Pending. The first failing rule aborts with a ValidationError and
// nothing is written.
func (s *DefaultBookingService) CreateBooking(input CreateBookingInput) (*models.Booking, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	phone := strings.TrimSpace(input.Phone)

	if name == "" {
		return nil, utils.NewValidationError("name is required")
	}
	if email == "" {
		return nil, utils.NewValidationError("email is required")
	}
	if phone == "" {
		return nil, utils.NewValidationError("phone is required")
	}
	if strings.TrimSpace(input.TourPackage) == "" && strings.TrimSpace(input.ExperienceID) == "" {
		return nil, utils.NewValidationError("a tour package or experience is required")
	}
	if input.Date == "" && input.StartDate == "" {
		return nil, utils.NewValidationError("date is required")
	}
	if input.NumberOfPeople < 1 {
		return nil, utils.NewValidationError("numberOfPeople must be at least 1")
	}
	if input.TotalAmount == nil {
		return nil, utils.NewValidationError("totalAmount is required")
	}
	if *input.TotalAmount < 0 {
		return nil, utils.NewValidationError("totalAmount must not be negative")
	}
	if input.TotalPrice != nil && *input.TotalPrice < 0 {
		return nil, utils.NewValidationError("totalPrice must not be negative")
	}

	booking := models.Booking{
		ID:              uuid.New().String(),
		Name:            name,
		Email:           email,
		Phone:           phone,
		TourPackage:     strings.TrimSpace(input.TourPackage),
		ExperienceID:    strings.TrimSpace(input.ExperienceID),
		ExperienceTitle: strings.TrimSpace(input.ExperienceTitle),
		ExperienceImage: strings.TrimSpace(input.ExperienceImage),
		NumberOfPeople:  input.NumberOfPeople,
		SpecialRequests: strings.TrimSpace(input.SpecialRequests),
		TotalAmount:     *input.TotalAmount,
		TotalPrice:      input.TotalPrice,
		ExtraOptions:    input.ExtraOptions,
		Status:          models.StatusPending,
	}

	if input.Date != "" {
		d, ok := parseDate(input.Date)
		if !ok {
			return nil, utils.NewValidationError("date is not a valid date")
		}
		booking.Date = d
	}
	if input.StartDate != "" {
		d, ok := parseDate(input.StartDate)
		if !ok {
			return nil, utils.NewValidationError("startDate is not a valid date")
		}
		booking.StartDate = &d
		if booking.Date.IsZero() {
			// Legacy consumers still read the single date field.
			booking.Date = d
		}
	}
	if input.EndDate != "" {
		d, ok := parseDate(input.EndDate)
		if !ok {
			return nil, utils.NewValidationError("endDate is not a valid date")
		}
		booking.EndDate = &d
	}

	if err := s.Repo.Create(&booking); err != nil {
		return nil, utils.NewStorageError(err)
	}
	return &booking, nil
}
