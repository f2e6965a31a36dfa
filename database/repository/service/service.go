package serviceRepo

import (
	"homehero/models"

	"go.mongodb.org/mongo-driver/bson"
)

// SearchFilter narrows the public catalog listing. Nil price bounds are
// unbounded; an empty Search matches everything.
type SearchFilter struct {
	MinPrice *float64
	MaxPrice *float64
	Search   string
}

// ServiceRepository defines persistence operations for service listings.
type ServiceRepository interface {
	// Search returns listings matching the filter.
	Search(filter SearchFilter) ([]models.Service, error)
	// GetByID returns the listing with the given id, or nil if absent.
	GetByID(id string) (*models.Service, error)
	// GetByProvider returns all listings owned by the given provider email.
	GetByProvider(email string) ([]models.Service, error)
	// GetReviewed returns all listings that have at least one review.
	GetReviewed() ([]models.Service, error)
	// Create inserts a new listing.
	Create(svc *models.Service) error
	// Update applies a $set patch to the listing with the given id.
	Update(id string, fields bson.M) error
	// Delete removes the listing with the given id.
	Delete(id string) error
	// AddReview atomically appends a review to the listing's review array.
	// It reports whether a listing matched the id.
	AddReview(id string, review models.Review) (bool, error)
}
