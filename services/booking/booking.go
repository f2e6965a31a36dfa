package booking

import (
	"time"

	"homehero/database/repository/booking"
	"homehero/database/repository/service"
	"homehero/models"
	"homehero/services"
	"homehero/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateInput is the customer-supplied part of a new booking. The customer
// email never comes from the body; it is taken from the resolved identity.
type CreateInput struct {
	ServiceID   string  `json:"serviceId" binding:"required"`
	BookingDate string  `json:"bookingDate"`
	Price       float64 `json:"price"`
}

// BookingService manages customer bookings.
type BookingService interface {
	// ListForUser returns the customer's bookings with their service
	// documents populated.
	ListForUser(email string) ([]models.BookingWithService, error)
	// Create books a service for the customer. Booking one's own listing is
	// rejected with ForbiddenError.
	Create(userEmail string, input CreateInput) (*models.Booking, error)
	// Cancel deletes a booking; only the booking customer may cancel.
	Cancel(id, requester string) error
}

// DefaultBookingService is the production BookingService.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Services serviceRepo.ServiceRepository
}

// ListForUser returns the customer's bookings joined with their services.
// A booking whose listing was deleted keeps a nil service rather than being
// dropped.
func (s *DefaultBookingService) ListForUser(email string) ([]models.BookingWithService, error) {
	bookings, err := s.Repo.GetByUser(email)
	if err != nil {
		return nil, err
	}

	result := make([]models.BookingWithService, 0, len(bookings))
	for _, b := range bookings {
		svc, err := s.Services.GetByID(b.ServiceID)
		if err != nil {
			utils.GetLogger().Warn("Failed to populate booking service",
				zap.String("bookingId", b.ID), zap.Error(err))
			svc = nil
		}
		result = append(result, models.BookingWithService{Booking: b, Service: svc})
	}
	return result, nil
}

// Create books a service. The referenced listing must exist and must not be
// owned by the booking customer.
func (s *DefaultBookingService) Create(userEmail string, input CreateInput) (*models.Booking, error) {
	svc, err := s.Services.GetByID(input.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, services.NotFoundError{Resource: "Service"}
	}
	if svc.ProviderEmail == userEmail {
		return nil, services.ForbiddenError{Reason: "You cannot book your own service"}
	}

	b := &models.Booking{
		ID:          uuid.NewString(),
		UserEmail:   userEmail,
		ServiceID:   input.ServiceID,
		BookingDate: input.BookingDate,
		Price:       input.Price,
		CreatedAt:   time.Now(),
	}
	if err := s.Repo.Create(b); err != nil {
		return nil, err
	}
	return b, nil
}

// Cancel deletes the customer's own booking.
func (s *DefaultBookingService) Cancel(id, requester string) error {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if b == nil {
		return services.NotFoundError{Resource: "Booking"}
	}
	if b.UserEmail != requester {
		return services.ForbiddenError{Reason: "You can only cancel your own bookings"}
	}
	return s.Repo.Delete(id)
}
