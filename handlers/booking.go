package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sahara/services/booking"
	"sahara/utils"
)

// BookingHandler exposes booking intake and the admin booking operations.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler wires a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBooking handles the public booking submission.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input booking.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Please include all required fields")
		return
	}

	created, err := h.Service.CreateBooking(input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	h.Logger.Info("booking created",
		zap.String("id", created.ID),
		zap.String("package", created.PackageLabel()),
	)
	c.JSON(http.StatusCreated, created)
}

// ListBookings handles the admin listing with filters, pagination, and
// aggregate statistics. Query params: page, limit, status, startDate, endDate.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	q := booking.ListQuery{Page: 1, Limit: 10}

	if v := c.Query("page"); v != "" {
		if page, err := strconv.ParseInt(v, 10, 64); err == nil {
			q.Page = page
		}
	}
	if v := c.Query("limit"); v != "" {
		if limit, err := strconv.ParseInt(v, 10, 64); err == nil {
			q.Limit = limit
		}
	}
	q.Filter.Status = c.Query("status")
	if v := c.Query("startDate"); v != "" {
		t, err := booking.ParseQueryDate(v)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "startDate is not a valid date")
			return
		}
		q.Filter.StartDate = &t
	}
	if v := c.Query("endDate"); v != "" {
		t, err := booking.ParseQueryDate(v)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "endDate is not a valid date")
			return
		}
		q.Filter.EndDate = &t
	}

	page, err := h.Service.ListBookings(q)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetBooking fetches a single booking by id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Service.GetBooking(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpdateStatus transitions a booking's lifecycle status.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid status")
		return
	}

	b, err := h.Service.UpdateBookingStatus(c.Param("id"), input.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	h.Logger.Info("booking status updated",
		zap.String("id", b.ID),
		zap.String("status", b.Status),
	)
	c.JSON(http.StatusOK, b)
}

// DeleteBooking hard-deletes a booking.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	if err := h.Service.DeleteBooking(c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking removed"})
}
