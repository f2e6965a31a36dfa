package models

import "time"

// Booking represents a customer booking of a service.
type Booking struct {
	ID          string    `bson:"id" json:"id"`
	UserEmail   string    `bson:"userEmail" json:"userEmail"`
	ServiceID   string    `bson:"serviceId" json:"serviceId"`       // References Service.ID; not enforced by storage.
	BookingDate string    `bson:"bookingDate" json:"bookingDate"`   // Requested date in "YYYY-MM-DD" format
	Price       float64   `bson:"price,omitempty" json:"price"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// BookingWithService is a booking joined with its service document for the
// customer booking list. Service is nil when the listing no longer exists.
type BookingWithService struct {
	Booking `bson:",inline"`
	Service *Service `json:"service"`
}
