package database

import (
	"context"
	"fmt"
	"time"

	"homehero/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// SeedServices populates the services collection with the demo catalog when
// it is empty. It is a no-op on a populated database.
func SeedServices() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	coll := Collection("services")

	count, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("seed: failed to count services: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(seedCatalog))
	for _, svc := range seedCatalog {
		svc.ID = uuid.NewString()
		svc.Reviews = []models.Review{}
		svc.CreatedAt = now
		docs = append(docs, svc)
	}

	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("seed: failed to insert services: %w", err)
	}
	return nil
}

var seedCatalog = []models.Service{
	{
		ServiceName:   "Electrician on-demand",
		Category:      "Electrical Services",
		Price:         2000,
		Description:   "Professional electrician available for immediate service. Expert in all electrical repairs and installations.",
		ImageURL:      "https://images.unsplash.com/photo-1621905252507-b35492cc74b4?w=600&q=80",
		ProviderName:  "Expert Electricians",
		ProviderEmail: "electrician@homehero.com",
	},
	{
		ServiceName:   "Fan/Light installation",
		Category:      "Electrical Services",
		Price:         3500,
		Description:   "Installation of ceiling fans, lights, and electrical fixtures. Professional and safe installation guaranteed.",
		ImageURL:      "https://images.unsplash.com/photo-1625246333195-78d9c38ad449?w=600&q=80",
		ProviderName:  "Expert Electricians",
		ProviderEmail: "electrician@homehero.com",
	},
	{
		ServiceName:   "Switchboard repair",
		Category:      "Electrical Services",
		Price:         5500,
		Description:   "Expert switchboard repair and maintenance. Safety certified electricians for all electrical panel work.",
		ImageURL:      "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=600&q=80",
		ProviderName:  "Expert Electricians",
		ProviderEmail: "electrician@homehero.com",
	},
	{
		ServiceName:   "Home deep cleaning",
		Category:      "Cleaning Services",
		Price:         9000,
		Description:   "Comprehensive deep cleaning service for your entire home. Professional cleaners with eco-friendly products.",
		ImageURL:      "https://images.unsplash.com/photo-1581578731548-c64695cc6952?w=600&q=80",
		ProviderName:  "Clean Home Services",
		ProviderEmail: "cleaning@homehero.com",
	},
	{
		ServiceName:   "Sofa and carpet cleaning",
		Category:      "Cleaning Services",
		Price:         5500,
		Description:   "Professional sofa and carpet cleaning using steam cleaning technology. Removes stains and odors effectively.",
		ImageURL:      "https://images.unsplash.com/photo-1584622650111-993a426fbf0a?w=600&q=80",
		ProviderName:  "Clean Home Services",
		ProviderEmail: "cleaning@homehero.com",
	},
	{
		ServiceName:   "Pipe leakage repair",
		Category:      "Plumbing Services",
		Price:         2500,
		Description:   "Quick and efficient pipe leakage repair. Expert plumbers with all necessary tools and materials.",
		ImageURL:      "https://images.unsplash.com/photo-1621905251189-08b45d6a269e?w=600&q=80",
		ProviderName:  "Pro Plumbers",
		ProviderEmail: "plumber@homehero.com",
	},
	{
		ServiceName:   "Washing machine repair",
		Category:      "Appliance Repair",
		Price:         4000,
		Description:   "Professional washing machine repair for all brands. Fix drainage, spinning, and electrical issues.",
		ImageURL:      "https://images.unsplash.com/photo-1621905251189-08b45d6a269e?w=600&q=80",
		ProviderName:  "Appliance Experts",
		ProviderEmail: "appliance@homehero.com",
	},
	{
		ServiceName:   "Furniture repair",
		Category:      "Carpentry & Furniture",
		Price:         4500,
		Description:   "Expert furniture repair and restoration. Fix broken chairs, tables, and all types of wooden furniture.",
		ImageURL:      "https://images.unsplash.com/photo-1581539250439-c96689b516dd?w=600&q=80",
		ProviderName:  "Master Carpenters",
		ProviderEmail: "carpenter@homehero.com",
	},
	{
		ServiceName:   "Lawn mowing",
		Category:      "Gardening & Outdoor",
		Price:         3500,
		Description:   "Professional lawn mowing and grass cutting service. Keep your lawn neat and well-maintained.",
		ImageURL:      "https://images.unsplash.com/photo-1621905252507-b35492cc74b4?w=600&q=80",
		ProviderName:  "Garden Care Services",
		ProviderEmail: "gardening@homehero.com",
	},
	{
		ServiceName:   "Home shifting",
		Category:      "Moving & Shifting",
		Price:         25000,
		Description:   "Complete home shifting service with packing, loading, transport, and unpacking. Safe and reliable moving.",
		ImageURL:      "https://images.unsplash.com/photo-1621905252507-b35492cc74b4?w=600&q=80",
		ProviderName:  "Move Masters",
		ProviderEmail: "moving@homehero.com",
	},
	{
		ServiceName:   "Pest control (cockroach, termite, mosquito)",
		Category:      "Laundry & Pest Control",
		Price:         7000,
		Description:   "Comprehensive pest control service for cockroaches, termites, and mosquitoes. Safe and effective treatment.",
		ImageURL:      "https://images.unsplash.com/photo-1621905251189-08b45d6a269e?w=600&q=80",
		ProviderName:  "Pest Control Experts",
		ProviderEmail: "pestcontrol@homehero.com",
	},
	{
		ServiceName:   "Salon at home",
		Category:      "Home Beauty & Personal Care",
		Price:         5500,
		Description:   "Professional salon services at your home. Haircut, styling, coloring, and beauty treatments.",
		ImageURL:      "https://images.unsplash.com/photo-1621905252507-b35492cc74b4?w=600&q=80",
		ProviderName:  "Beauty Home Services",
		ProviderEmail: "beauty@homehero.com",
	},
	{
		ServiceName:   "Car wash at home",
		Category:      "Vehicle Services",
		Price:         2000,
		Description:   "Professional car wash service at your location. Complete exterior and interior cleaning.",
		ImageURL:      "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=600&q=80",
		ProviderName:  "Auto Care Services",
		ProviderEmail: "vehicle@homehero.com",
	},
}
