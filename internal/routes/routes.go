package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/nordkitchen/foodtruck-manager/internal/audit"
	"github.com/nordkitchen/foodtruck-manager/internal/cache"
	"github.com/nordkitchen/foodtruck-manager/internal/config"
	"github.com/nordkitchen/foodtruck-manager/internal/handlers"
	"github.com/nordkitchen/foodtruck-manager/internal/middleware"
	"github.com/nordkitchen/foodtruck-manager/internal/models"
	"github.com/nordkitchen/foodtruck-manager/internal/repository"
	"github.com/nordkitchen/foodtruck-manager/internal/service"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log zerolog.Logger) {

	// --------------------------------------------------
	// Infra (singletons)
	// --------------------------------------------------
	redisClient := cache.NewClient(cfg.RedisAddr, cfg.RedisPassword)
	readCache := cache.New(redisClient, cfg.CacheTTL, log)

	auditor := audit.NewDispatcher(audit.New(db), log)

	// --------------------------------------------------
	// Services
	// --------------------------------------------------
	bookingService := service.NewBookingService(
		repository.New[models.Client](db),
		repository.New[models.Location](db),
		repository.New[models.Booking](db, "Client", "Location", "Status", "Participants", "TimeSlot"),
		readCache,
		auditor,
		log,
	)

	productService := service.NewProductService(
		repository.New[models.Product](db, "Category", "Ingredients"),
		repository.New[models.Ingredient](db),
		db,
		readCache,
		auditor,
		log,
	)

	// --------------------------------------------------
	// Handlers
	// --------------------------------------------------
	authHandler := handlers.NewAuthHandler(db, cfg)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	productHandler := handlers.NewProductHandler(productService)

	// --------------------------------------------------
	// API (JSON)
	// --------------------------------------------------
	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/bookings", bookingHandler.List)
			secured.POST("/bookings", bookingHandler.Create)
			secured.PUT("/bookings", bookingHandler.Update)
			secured.DELETE("/bookings/:date", bookingHandler.Delete)

			secured.PATCH("/clients", bookingHandler.UpdateClient)
			secured.PATCH("/locations", bookingHandler.UpdateLocation)

			secured.GET("/products", productHandler.List)
			secured.POST("/products", productHandler.Create)
			secured.PUT("/products/:name", productHandler.Update)
			secured.DELETE("/products/:name", productHandler.Delete)

			secured.GET("/ingredients", productHandler.ListIngredients)
		}
	}
}
