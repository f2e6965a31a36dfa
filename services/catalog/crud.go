package catalog

import (
	"time"

	"homehero/database"
	"homehero/database/repository/service"
	"homehero/models"
	"homehero/services"
	"homehero/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// DefaultCatalogService is the production CatalogService over the Mongo
// repository, with an optional redis cache for the top-rated listing.
type DefaultCatalogService struct {
	Repo  serviceRepo.ServiceRepository
	Cache *redis.Client
}

// Search lists the catalog. Network-class store failures are logged and
// swallowed, returning an empty result set: the read-heavy browsing path must
// stay functional while every other endpoint surfaces failures directly.
func (s *DefaultCatalogService) Search(filter serviceRepo.SearchFilter) ([]models.Service, error) {
	results, err := s.Repo.Search(filter)
	if err != nil {
		if database.IsUnavailable(err) {
			utils.GetLogger().Warn("Store unreachable, returning empty service list", zap.Error(err))
			return []models.Service{}, nil
		}
		return nil, err
	}
	if results == nil {
		results = []models.Service{}
	}
	return results, nil
}

// GetByID returns a single listing, or NotFoundError when absent.
func (s *DefaultCatalogService) GetByID(id string) (*models.Service, error) {
	svc, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, services.NotFoundError{Resource: "Service"}
	}
	return svc, nil
}

// GetByProvider returns the listings owned by the given provider email.
func (s *DefaultCatalogService) GetByProvider(email string) ([]models.Service, error) {
	results, err := s.Repo.GetByProvider(email)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []models.Service{}
	}
	return results, nil
}

// Create inserts a listing. The provider email always comes from the resolved
// identity, the id is generated server-side, and the review array starts empty.
func (s *DefaultCatalogService) Create(providerEmail string, svc *models.Service) (*models.Service, error) {
	svc.ID = uuid.NewString()
	svc.ProviderEmail = providerEmail
	svc.Reviews = []models.Review{}
	svc.CreatedAt = time.Now()

	if err := s.Repo.Create(svc); err != nil {
		return nil, err
	}
	s.invalidateTopRated()
	return svc, nil
}

// Update applies a patch to an owned listing.
func (s *DefaultCatalogService) Update(id, requester string, updates map[string]interface{}) error {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return services.NotFoundError{Resource: "Service"}
	}
	if existing.ProviderEmail != requester {
		return services.ForbiddenError{Reason: "You can only update your own services"}
	}

	fields := bson.M{}
	for k, v := range updates {
		// The id and owner are immutable; reviews only change via AddReview.
		if k == "id" || k == "providerEmail" || k == "reviews" {
			continue
		}
		fields[k] = v
	}
	if len(fields) == 0 {
		return nil
	}
	if err := s.Repo.Update(id, fields); err != nil {
		return err
	}
	s.invalidateTopRated()
	return nil
}

// Delete removes an owned listing. Bookings referencing it are not cascaded.
func (s *DefaultCatalogService) Delete(id, requester string) error {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return services.NotFoundError{Resource: "Service"}
	}
	if existing.ProviderEmail != requester {
		return services.ForbiddenError{Reason: "You can only delete your own services"}
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.invalidateTopRated()
	return nil
}

// AddReview appends a review attributed to the authenticated customer. The
// repository uses an atomic array push, so concurrent appends cannot lose
// updates.
func (s *DefaultCatalogService) AddReview(id, userEmail string, rating int, comment string) error {
	review := models.Review{
		UserEmail: userEmail,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now(),
	}
	matched, err := s.Repo.AddReview(id, review)
	if err != nil {
		return err
	}
	if !matched {
		return services.NotFoundError{Resource: "Service"}
	}
	s.invalidateTopRated()
	return nil
}
