package booking

import (
	"errors"
	"testing"

	"sahara/utils"
)

func floatPtr(v float64) *float64 { return &v }

func validInput() CreateBookingInput {
	return CreateBookingInput{
		Name:           "Jane Doe",
		Email:          "jane@example.com",
		Phone:          "+1234567890",
		TourPackage:    "Desert Safari",
		Date:           "2025-06-01",
		NumberOfPeople: 2,
		TotalAmount:    floatPtr(300),
	}
}

func TestCreateBookingMissingFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateBookingInput)
	}{
		{"missing name", func(in *CreateBookingInput) { in.Name = "" }},
		{"whitespace name", func(in *CreateBookingInput) { in.Name = "   " }},
		{"missing email", func(in *CreateBookingInput) { in.Email = "" }},
		{"missing phone", func(in *CreateBookingInput) { in.Phone = "" }},
		{"missing package and experience", func(in *CreateBookingInput) { in.TourPackage = "" }},
		{"missing date", func(in *CreateBookingInput) { in.Date = "" }},
		{"zero people", func(in *CreateBookingInput) { in.NumberOfPeople = 0 }},
		{"negative people", func(in *CreateBookingInput) { in.NumberOfPeople = -3 }},
		{"missing total amount", func(in *CreateBookingInput) { in.TotalAmount = nil }},
		{"negative total amount", func(in *CreateBookingInput) { in.TotalAmount = floatPtr(-1) }},
		{"malformed date", func(in *CreateBookingInput) { in.Date = "June first" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &memRepo{}
			svc := &DefaultBookingService{Repo: repo}

			input := validInput()
			tc.mutate(&input)

			_, err := svc.CreateBooking(input)
			var ve *utils.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if len(repo.bookings) != 0 {
				t.Fatalf("no record should be persisted on validation failure, found %d", len(repo.bookings))
			}
		})
	}
}

func TestCreateBookingForcesPendingStatus(t *testing.T) {
	repo := &memRepo{}
	svc := &DefaultBookingService{Repo: repo}

	created, err := svc.CreateBooking(validInput())
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected a generated id")
	}
	if created.Status != "Pending" {
		t.Fatalf("status = %q, want Pending", created.Status)
	}
	if created.UpdatedAt.Before(created.CreatedAt) {
		t.Fatal("updatedAt must not precede createdAt")
	}
	if len(repo.bookings) != 1 {
		t.Fatalf("expected exactly one persisted record, got %d", len(repo.bookings))
	}
}

func TestCreateBookingExperienceOnly(t *testing.T) {
	repo := &memRepo{}
	svc := &DefaultBookingService{Repo: repo}

	input := validInput()
	input.TourPackage = ""
	input.ExperienceID = "exp-1"
	input.ExperienceTitle = "Sunset Camel Trek"
	input.Date = ""
	input.StartDate = "2025-07-10"
	input.EndDate = "2025-07-11"

	created, err := svc.CreateBooking(input)
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	// The legacy date field is backfilled from startDate for old readers.
	if created.Date.IsZero() {
		t.Fatal("legacy date should be backfilled from startDate")
	}
	if created.PackageLabel() != "Sunset Camel Trek" {
		t.Fatalf("package label = %q, want the experience title", created.PackageLabel())
	}
}

func TestCreateBookingStorageFailure(t *testing.T) {
	repo := &memRepo{failNext: errors.New("write concern error")}
	svc := &DefaultBookingService{Repo: repo}

	_, err := svc.CreateBooking(validInput())
	var se *utils.StorageError
	if !errors.As(err, &se) {
		t.Fatalf("expected StorageError, got %v", err)
	}
	if len(repo.bookings) != 0 {
		t.Fatal("a failed create must leave no record behind")
	}
}

// Duplicate submissions are not deduplicated: two identical payloads create
// two independent records. This mirrors the accepted limitation of the
// request model, which adds no idempotency key.
func TestCreateBookingNoDeduplication(t *testing.T) {
	repo := &memRepo{}
	svc := &DefaultBookingService{Repo: repo}

	first, err := svc.CreateBooking(validInput())
	if err != nil {
		t.Fatalf("first create error: %v", err)
	}
	second, err := svc.CreateBooking(validInput())
	if err != nil {
		t.Fatalf("second create error: %v", err)
	}
	if first.ID == second.ID {
		t.Fatal("each submission must produce an independent record")
	}
	if len(repo.bookings) != 2 {
		t.Fatalf("expected two records, got %d", len(repo.bookings))
	}
}
