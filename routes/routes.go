package routes

import (
	"net/http"
	"time"

	"homehero/auth"
	"homehero/config"
	"homehero/handlers"
	"homehero/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers wired in main.
type HandlerBundle struct {
	Resolver *auth.Resolver
	Services *handlers.ServiceHandler
	Bookings *handlers.BookingHandler
	Stats    *handlers.StatsHandler
	Storage  *handlers.StorageHandler // nil when uploads are not configured
}

// RegisterServiceRoutes registers catalog endpoints. Listing and lookups are
// public; everything that writes or exposes provider-private data sits behind
// the identity resolver.
func RegisterServiceRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.Services.ListServices)
		api.GET("/top-rated", hb.Services.TopRatedServices)
		api.GET("/:id", hb.Services.GetService)

		// Protected routes (require authentication)
		api.Use(middleware.VerifyToken(hb.Resolver))
		api.GET("/provider/:email", hb.Services.GetProviderServices)
		api.POST("", hb.Services.CreateService)
		api.PATCH("/:id", hb.Services.UpdateService)
		api.DELETE("/:id", hb.Services.DeleteService)
		api.POST("/:id/reviews", hb.Services.AddReview)
	}
}

// RegisterBookingRoutes registers booking endpoints, all protected.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.VerifyToken(hb.Resolver))
		api.GET("/:email", hb.Bookings.ListBookings)
		api.POST("", hb.Bookings.CreateBooking)
		api.DELETE("/:id", hb.Bookings.CancelBooking)
	}
}

// RegisterProviderRoutes registers provider statistics, protected.
func RegisterProviderRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/provider")
	{
		api.Use(middleware.VerifyToken(hb.Resolver))
		api.GET("/stats/:email", hb.Stats.ProviderStats)
	}
}

// RegisterStorageRoutes registers the image upload endpoint when configured.
func RegisterStorageRoutes(r *gin.Engine, hb *HandlerBundle) {
	if hb.Storage == nil {
		return
	}
	api := r.Group("/api/uploads")
	{
		api.Use(middleware.VerifyToken(hb.Resolver))
		api.POST("", hb.Storage.UploadImage)
	}
}

// RegisterHealthRoutes registers the banner and health-check endpoints.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "HomeHero API is running"})
	})
	r.GET("/api/health", handlers.Health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	allowedOrigins := []string{
		"http://localhost:3000",
		"https://homehero-8e501.web.app",
		"https://homehero-8e501.firebaseapp.com",
	}
	if config.AppConfig.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, config.AppConfig.FrontendURL)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoutes(r)
	RegisterServiceRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
}
