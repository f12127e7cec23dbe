package booking

import (
	"errors"
	"testing"

	"sahara/utils"
)

func TestUpdateBookingStatusInvalidTarget(t *testing.T) {
	repo := &memRepo{}
	seedBookings(repo, []string{"Pending"}, 10)
	svc := &DefaultBookingService{Repo: repo}

	for _, target := range []string{"", "pending", "Archived", "Done"} {
		_, err := svc.UpdateBookingStatus("b-0", target)
		var ve *utils.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("target %q: expected ValidationError, got %v", target, err)
		}
	}
	if repo.bookings[0].Status != "Pending" {
		t.Fatalf("stored status changed to %q on rejected transition", repo.bookings[0].Status)
	}
}

func TestUpdateBookingStatusNotFound(t *testing.T) {
	svc := &DefaultBookingService{Repo: &memRepo{}}

	_, err := svc.UpdateBookingStatus("missing", "Confirmed")
	var nf *utils.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

// Transitions are unrestricted by design: any state may move to any other,
// including backwards from Completed.
func TestUpdateBookingStatusUnrestricted(t *testing.T) {
	repo := &memRepo{}
	seedBookings(repo, []string{"Completed"}, 10)
	svc := &DefaultBookingService{Repo: repo}

	updated, err := svc.UpdateBookingStatus("b-0", "Pending")
	if err != nil {
		t.Fatalf("transition error: %v", err)
	}
	if updated.Status != "Pending" {
		t.Fatalf("status = %q, want Pending", updated.Status)
	}
}

func TestUpdateBookingStatusIdempotent(t *testing.T) {
	repo := &memRepo{}
	seedBookings(repo, []string{"Pending"}, 10)
	svc := &DefaultBookingService{Repo: repo}

	first, err := svc.UpdateBookingStatus("b-0", "Confirmed")
	if err != nil {
		t.Fatalf("first transition error: %v", err)
	}
	second, err := svc.UpdateBookingStatus("b-0", "Confirmed")
	if err != nil {
		t.Fatalf("second transition error: %v", err)
	}
	if first.Status != second.Status {
		t.Fatal("repeating a transition must leave the status unchanged")
	}
	if second.UpdatedAt.Before(first.UpdatedAt) {
		t.Fatal("updatedAt must not move backwards")
	}
}
