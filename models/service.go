package models

import "time"

// Review is a customer review embedded in a service document. Reviews are
// append-only and never individually addressable.
type Review struct {
	UserEmail string    `bson:"userEmail" json:"userEmail"`
	Rating    int       `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment" json:"comment"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Service represents a home-service listing offered by a provider.
type Service struct {
	ID            string    `bson:"id" json:"id"`
	ServiceName   string    `bson:"serviceName" json:"serviceName"`
	Category      string    `bson:"category" json:"category"`
	Price         float64   `bson:"price" json:"price"`
	Description   string    `bson:"description" json:"description"`
	ImageURL      string    `bson:"imageURL" json:"imageURL"`
	ProviderName  string    `bson:"providerName,omitempty" json:"providerName,omitempty"`
	ProviderEmail string    `bson:"providerEmail" json:"providerEmail"` // Owning identity; only this email may mutate or delete the listing.
	Reviews       []Review  `bson:"reviews" json:"reviews"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// AverageRating returns the mean review rating, or 0 when there are no reviews.
func (s Service) AverageRating() float64 {
	if len(s.Reviews) == 0 {
		return 0
	}
	var total int
	for _, r := range s.Reviews {
		total += r.Rating
	}
	return float64(total) / float64(len(s.Reviews))
}
