// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ecowardrobe/eco-wardrobe-backend/internal/config"
	"github.com/ecowardrobe/eco-wardrobe-backend/internal/handlers"
	"github.com/ecowardrobe/eco-wardrobe-backend/internal/middleware"
	"github.com/ecowardrobe/eco-wardrobe-backend/internal/services"
	"github.com/ecowardrobe/eco-wardrobe-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	storageService, _ := services.NewStorageService(cfg)
	userService := services.NewUserService(db)
	authService := services.NewAuthService(db, cfg, userService)
	shareService := services.NewShareService(db)
	wardrobeService := services.NewWardrobeService(db, userService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, userService)
	userHandler := handlers.NewUserHandler(userService, storageService)
	passportHandler := handlers.NewPassportHandler(userService, storageService)
	wardrobeHandler := handlers.NewWardrobeHandler(wardrobeService, shareService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// User routes
		users := v1.Group("/users")
		{
			users.GET("/:id", middleware.OptionalAuth(), userHandler.GetUser)

			protected := users.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.POST("/avatar", middleware.UploadRateLimit(), userHandler.UploadAvatar)
				protected.PUT("/preferences", userHandler.UpdatePreferences)
			}
		}

		// Passport routes
		passports := v1.Group("/passports")
		{
			passports.GET("/:id", middleware.OptionalAuth(), passportHandler.GetPassport)

			protected := passports.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.POST("", passportHandler.CreatePassport)
				protected.POST("/upload-image", middleware.UploadRateLimit(), passportHandler.UploadImage)
			}
		}

		// Wardrobe routes
		wardrobe := v1.Group("/wardrobe")
		{
			wardrobe.GET("/influencers", wardrobeHandler.GetInfluencerWardrobes)

			protected := wardrobe.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.GET("", wardrobeHandler.GetOwnWardrobe)
				protected.GET("/saved", wardrobeHandler.GetSavedWardrobes)
				protected.POST("/share", wardrobeHandler.IssueShare)
				protected.POST("/redeem", wardrobeHandler.RedeemShare)
			}
		}
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", "./uploads")
	}

	return r
}
