package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/roomies-app/roomies-api/internal/config"
	"github.com/roomies-app/roomies-api/internal/constants"
	"github.com/roomies-app/roomies-api/internal/database"
	"github.com/roomies-app/roomies-api/internal/handlers"
	"github.com/roomies-app/roomies-api/internal/middleware"
	"github.com/roomies-app/roomies-api/internal/models"
	"github.com/roomies-app/roomies-api/internal/repository"
	"github.com/roomies-app/roomies-api/internal/seed"
	"github.com/roomies-app/roomies-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Select the storage backend. The memory store and the relational one
	// are never mixed at runtime.
	var (
		userRepo      repository.UserRepository
		listingRepo   repository.ListingRepository
		roommateRepo  repository.RoommateRepository
		favouriteRepo repository.FavouriteRepository
	)

	if cfg.StorageBackend == config.StorageMemory {
		store := repository.NewMemoryStore()
		userRepo = repository.NewMemoryUserRepository(store)
		listingRepo = repository.NewMemoryListingRepository(store)
		roommateRepo = repository.NewMemoryRoommateRepository(store)
		favouriteRepo = repository.NewMemoryFavouriteRepository(store)

		// The memory backend always starts with demo data, like a fresh
		// install.
		seedStore(userRepo, listingRepo, roommateRepo)
		log.Println("Using in-memory storage backend")
	} else {
		if err := database.Connect(cfg); err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := database.Migrate(); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}

		db := database.GetDB()
		userRepo = repository.NewUserRepository(db)
		listingRepo = repository.NewListingRepository(db)
		roommateRepo = repository.NewRoommateRepository(db)
		favouriteRepo = repository.NewFavouriteRepository(db)

		if cfg.SeedDemoData {
			var count int64
			db.Model(&models.Listing{}).Count(&count)
			if count == 0 {
				seedStore(userRepo, listingRepo, roommateRepo)
			}
		}
	}

	// Initialize Gin router
	r := gin.Default()

	// Session middleware: Redis-backed when configured, cookie store for
	// single-process setups.
	isProduction := cfg.GinMode == "release"
	sessionOptions := sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: http.SameSiteLaxMode,
	}

	if cfg.RedisHost != "" {
		redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
		store, err := redisStore.NewStore(
			10,        // Redis pool size
			"tcp",     // network type
			redisAddr, // Redis address from config
			"",        // password (empty = no password)
			[]byte(cfg.SessionSecret),
		)
		if err != nil {
			log.Fatalf("Failed to create Redis store: %v", err)
		}
		store.Options(sessionOptions)
		r.Use(sessions.Sessions(constants.SessionCookieName, store))
	} else {
		store := cookie.NewStore([]byte(cfg.SessionSecret))
		store.Options(sessionOptions)
		r.Use(sessions.Sessions(constants.SessionCookieName, store))
	}

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg.BaseURL)
	listingService := services.NewListingService(listingRepo)
	roommateService := services.NewRoommateService(roommateRepo)
	favouriteService := services.NewFavouriteService(favouriteRepo, listingRepo, roommateRepo)

	var aiService *services.AIService
	if cfg.OpenAIAPIKey != "" {
		aiService = services.NewAIService(cfg.OpenAIAPIKey)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, cfg.BaseURL)
	listingHandler := handlers.NewListingHandler(listingService, aiService)
	roommateHandler := handlers.NewRoommateHandler(roommateService)
	favouriteHandler := handlers.NewFavouriteHandler(favouriteService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Roomies API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/verify-email", authHandler.VerifyEmail)
			auth.GET("/me", authHandler.Me)
		}

		// Listing routes (reads public, writes protected)
		listings := api.Group("/listings")
		{
			listings.GET("", listingHandler.ListListings)
			listings.GET("/:id", listingHandler.GetListing)
			listings.POST("", middleware.RequireAuth(), listingHandler.CreateListing)
			listings.DELETE("/:id", middleware.RequireAuth(), listingHandler.DeleteListing)
			listings.POST("/suggest-description", middleware.RequireAuth(), listingHandler.SuggestDescription)
		}

		// Roommate routes (reads public, writes protected)
		roommates := api.Group("/roommates")
		{
			roommates.GET("", roommateHandler.ListRoommates)
			roommates.GET("/:id", roommateHandler.GetRoommate)
			roommates.POST("", middleware.RequireAuth(), roommateHandler.CreateRoommate)
			roommates.DELETE("/:id", middleware.RequireAuth(), roommateHandler.DeleteRoommate)
		}

		// Caller-scoped routes (protected)
		me := api.Group("/me")
		me.Use(middleware.RequireAuth())
		{
			me.GET("/listings", listingHandler.MyListings)
			me.GET("/roommate", roommateHandler.MyProfile)

			me.GET("/favourites/listings", favouriteHandler.Listings)
			me.GET("/favourites/listings/ids", favouriteHandler.ListingIDs)
			me.POST("/favourites/listings/:id", favouriteHandler.AddListing)
			me.DELETE("/favourites/listings/:id", favouriteHandler.RemoveListing)

			me.GET("/favourites/roommates", favouriteHandler.Roommates)
			me.GET("/favourites/roommates/ids", favouriteHandler.RoommateIDs)
			me.POST("/favourites/roommates/:id", favouriteHandler.AddRoommate)
			me.DELETE("/favourites/roommates/:id", favouriteHandler.RemoveRoommate)
		}
	}

	// Start server
	log.Println("Server starting on :8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// seedStore loads the demo listings and roommate profiles. The listings
// belong to a placeholder owner account that nobody can log in as: its
// password hash never matches and its email is not a deliverable address.
func seedStore(userRepo repository.UserRepository, listingRepo repository.ListingRepository, roommateRepo repository.RoommateRepository) {
	owner := &models.User{
		Name:          "Roomies Demo",
		Email:         "demo+" + uuid.NewString() + "@roomies.invalid",
		PasswordHash:  "!",
		EmailVerified: true,
	}
	if err := userRepo.Create(owner); err != nil {
		log.Printf("Failed to seed demo owner: %v", err)
		return
	}
	for _, listing := range seed.Listings(owner.ID, 100) {
		l := listing
		if err := listingRepo.Create(&l); err != nil {
			log.Printf("Failed to seed listing: %v", err)
		}
	}
	for _, roommate := range seed.Roommates(100) {
		r := roommate
		if err := roommateRepo.Create(&r); err != nil {
			log.Printf("Failed to seed roommate: %v", err)
		}
	}
	log.Println("Seeded demo listings and roommate profiles")
}
