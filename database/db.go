package database

import (
	"context"
	"errors"
	"log"
	"net"
	"strings"
	"time"

	"homehero/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClient is the global MongoDB client instance.
var MongoClient *mongo.Client

// InitDB initializes the MongoDB connection. A failed ping is not fatal: the
// server keeps running and the public listing path degrades to empty results
// until the store comes back.
func InitDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.AppConfig.DatabaseURL)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	MongoClient = client

	if err := client.Ping(ctx, nil); err != nil {
		log.Printf("WARNING: could not reach MongoDB: %v", err)
		return
	}
	log.Println("Connected to MongoDB successfully!")
}

// Collection returns a handle to the named collection in the configured database.
func Collection(name string) *mongo.Collection {
	return MongoClient.Database(config.AppConfig.DatabaseName).Collection(name)
}

// IsUnavailable reports whether err indicates the store could not be reached,
// as opposed to a query-level failure. The public service listing treats these
// as non-fatal and returns an empty result set.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if mongo.IsTimeout(err) {
		return true
	}
	var srvErr mongo.ServerError
	if errors.As(err, &srvErr) && srvErr.HasErrorLabel("NetworkError") {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return strings.Contains(err.Error(), "server selection error")
}
