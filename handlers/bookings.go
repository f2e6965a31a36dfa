package handlers

import (
	"net/http"

	"homehero/middleware"
	"homehero/services/booking"
	"homehero/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking endpoints.
type BookingHandler struct {
	Bookings booking.BookingService
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Bookings: svc}
}

// ListBookings handles GET /api/bookings/:email. Customers may only list
// their own bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	email := c.Param("email")
	if middleware.UserEmail(c) != email {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden: You can only access your own bookings"})
		return
	}

	results, err := h.Bookings.ListForUser(email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	logger := utils.GetLogger()

	var input booking.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Error("Invalid booking request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.Bookings.Create(middleware.UserEmail(c), input)
	if err != nil {
		logger.Error("Failed to create booking", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// CancelBooking handles DELETE /api/bookings/:id.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	if err := h.Bookings.Cancel(c.Param("id"), middleware.UserEmail(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled successfully"})
}
