package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"sahara/models"
	"sahara/services/booking"
	"sahara/utils"
)

// stubBookingService is an in-memory BookingService for handler tests.
type stubBookingService struct {
	bookings map[string]*models.Booking
	lastList booking.ListQuery
}

func newStubBookingService() *stubBookingService {
	return &stubBookingService{bookings: map[string]*models.Booking{}}
}

func (s *stubBookingService) CreateBooking(input booking.CreateBookingInput) (*models.Booking, error) {
	if input.Name == "" {
		return nil, utils.NewValidationError("name is required")
	}
	b := &models.Booking{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Email:       input.Email,
		TourPackage: input.TourPackage,
		Status:      models.StatusPending,
	}
	s.bookings[b.ID] = b
	return b, nil
}

func (s *stubBookingService) ListBookings(q booking.ListQuery) (*models.BookingPage, error) {
	s.lastList = q
	page := &models.BookingPage{
		Bookings:     []models.Booking{},
		CurrentPage:  q.Page,
		PackageStats: []models.PackageCount{},
	}
	for _, b := range s.bookings {
		page.Bookings = append(page.Bookings, *b)
		page.TotalItems++
	}
	return page, nil
}

func (s *stubBookingService) GetBooking(id string) (*models.Booking, error) {
	if b, ok := s.bookings[id]; ok {
		return b, nil
	}
	return nil, utils.NewNotFoundError("Booking")
}

func (s *stubBookingService) UpdateBookingStatus(id, status string) (*models.Booking, error) {
	if !models.IsValidBookingStatus(status) {
		return nil, utils.NewValidationError("Invalid status")
	}
	b, ok := s.bookings[id]
	if !ok {
		return nil, utils.NewNotFoundError("Booking")
	}
	b.Status = status
	return b, nil
}

func (s *stubBookingService) DeleteBooking(id string) error {
	if _, ok := s.bookings[id]; !ok {
		return utils.NewNotFoundError("Booking")
	}
	delete(s.bookings, id)
	return nil
}

func bookingRouter(svc booking.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(svc, zap.NewNop())

	r := gin.New()
	r.POST("/api/bookings", h.CreateBooking)
	r.GET("/api/bookings", h.ListBookings)
	r.GET("/api/bookings/:id", h.GetBooking)
	r.PATCH("/api/bookings/:id/status", h.UpdateStatus)
	r.DELETE("/api/bookings/:id", h.DeleteBooking)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode error: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBookingEndpoint(t *testing.T) {
	r := bookingRouter(newStubBookingService())

	w := doJSON(t, r, http.MethodPost, "/api/bookings", map[string]interface{}{
		"name":           "Jane Doe",
		"email":          "jane@example.com",
		"phone":          "+1234567890",
		"tourPackage":    "Desert Safari",
		"date":           "2025-06-01",
		"numberOfPeople": 2,
		"totalAmount":    300,
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body: %s)", w.Code, w.Body.String())
	}
	var created models.Booking
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if created.ID == "" {
		t.Fatal("response must carry the generated id")
	}
	if created.Status != "Pending" {
		t.Fatalf("status = %q, want Pending", created.Status)
	}
}

func TestCreateBookingEndpointValidationFailure(t *testing.T) {
	r := bookingRouter(newStubBookingService())

	w := doJSON(t, r, http.MethodPost, "/api/bookings", map[string]interface{}{
		"email": "jane@example.com",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var resp utils.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp.Message == "" {
		t.Fatal("error body must carry a message")
	}
}

func TestListBookingsEndpointParsesQuery(t *testing.T) {
	svc := newStubBookingService()
	r := bookingRouter(svc)

	w := doJSON(t, r, http.MethodGet, "/api/bookings?page=2&limit=5&status=Confirmed&startDate=2025-01-01&endDate=2025-12-31", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", w.Code, w.Body.String())
	}

	q := svc.lastList
	if q.Page != 2 || q.Limit != 5 {
		t.Fatalf("page/limit = %d/%d, want 2/5", q.Page, q.Limit)
	}
	if q.Filter.Status != "Confirmed" {
		t.Fatalf("status filter = %q, want Confirmed", q.Filter.Status)
	}
	if q.Filter.StartDate == nil || q.Filter.EndDate == nil {
		t.Fatal("date range must be parsed into the filter")
	}
}

func TestListBookingsEndpointRejectsBadDate(t *testing.T) {
	r := bookingRouter(newStubBookingService())

	w := doJSON(t, r, http.MethodGet, "/api/bookings?startDate=yesterday", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestUpdateStatusEndpointUnknownID(t *testing.T) {
	r := bookingRouter(newStubBookingService())

	w := doJSON(t, r, http.MethodPatch, "/api/bookings/missing/status", map[string]string{"status": "Confirmed"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 (body: %s)", w.Code, w.Body.String())
	}
	var resp utils.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp.Message != "Booking not found" {
		t.Fatalf("message = %q, want Booking not found", resp.Message)
	}
}

func TestUpdateStatusEndpointInvalidTarget(t *testing.T) {
	svc := newStubBookingService()
	r := bookingRouter(svc)

	created := doJSON(t, r, http.MethodPost, "/api/bookings", map[string]interface{}{
		"name": "Jane Doe", "email": "jane@example.com", "phone": "+1",
		"tourPackage": "Desert Safari", "date": "2025-06-01",
		"numberOfPeople": 1, "totalAmount": 150,
	})
	var b models.Booking
	if err := json.Unmarshal(created.Body.Bytes(), &b); err != nil {
		t.Fatalf("decode error: %v", err)
	}

	w := doJSON(t, r, http.MethodPatch, "/api/bookings/"+b.ID+"/status", map[string]string{"status": "Archived"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if svc.bookings[b.ID].Status != "Pending" {
		t.Fatal("a rejected transition must leave the status unchanged")
	}
}

func TestDeleteBookingEndpoint(t *testing.T) {
	svc := newStubBookingService()
	r := bookingRouter(svc)

	created := doJSON(t, r, http.MethodPost, "/api/bookings", map[string]interface{}{
		"name": "Jane Doe", "email": "jane@example.com", "phone": "+1",
		"tourPackage": "Desert Safari", "date": "2025-06-01",
		"numberOfPeople": 1, "totalAmount": 150,
	})
	var b models.Booking
	if err := json.Unmarshal(created.Body.Bytes(), &b); err != nil {
		t.Fatalf("decode error: %v", err)
	}

	w := doJSON(t, r, http.MethodDelete, "/api/bookings/"+b.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	w = doJSON(t, r, http.MethodDelete, "/api/bookings/"+b.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", w.Code)
	}
}
