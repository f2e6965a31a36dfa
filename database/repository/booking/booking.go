package bookingRepo

import "homehero/models"

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	// GetByUser returns all bookings made by the given customer email.
	GetByUser(email string) ([]models.Booking, error)
	// GetByServiceIDs returns all bookings whose serviceId is in ids.
	GetByServiceIDs(ids []string) ([]models.Booking, error)
	// GetByID returns the booking with the given id, or nil if absent.
	GetByID(id string) (*models.Booking, error)
	// Create inserts a new booking.
	Create(b *models.Booking) error
	// Delete removes the booking with the given id.
	Delete(id string) error
}
