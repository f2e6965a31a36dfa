package catalog

import (
	"homehero/database/repository/service"
	"homehero/models"
)

// TopRatedService is a listing annotated with its average review rating for
// the public top-rated endpoint.
type TopRatedService struct {
	models.Service `bson:",inline"`
	AvgRating      float64 `json:"avgRating"`
}

// CatalogService manages service listings.
type CatalogService interface {
	// Search lists the public catalog. Store unavailability degrades to an
	// empty result set so browsing keeps working during backend hiccups.
	Search(filter serviceRepo.SearchFilter) ([]models.Service, error)
	// TopRated returns the six listings with the highest average rating.
	TopRated() ([]TopRatedService, error)
	// GetByID returns a single listing.
	GetByID(id string) (*models.Service, error)
	// GetByProvider returns the listings owned by the given provider.
	GetByProvider(email string) ([]models.Service, error)
	// Create inserts a listing owned by the given provider.
	Create(providerEmail string, svc *models.Service) (*models.Service, error)
	// Update patches a listing; only the owner may update.
	Update(id, requester string, updates map[string]interface{}) error
	// Delete removes a listing; only the owner may delete.
	Delete(id, requester string) error
	// AddReview appends a review attributed to the given customer.
	AddReview(id, userEmail string, rating int, comment string) error
}
