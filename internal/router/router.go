package router

import (
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/codetok-app/backend/internal/handlers"
	"github.com/codetok-app/backend/internal/middleware"
	"github.com/codetok-app/backend/internal/models"
	"github.com/codetok-app/backend/internal/repositories"
	"github.com/codetok-app/backend/internal/services"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgClient *mongo.Client, firebaseAuthClient *auth.Client, jwtSecret string) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Like{},
		&models.Favorite{},
		&models.Follow{},
		&models.Comment{},
		&models.Notification{},
		&models.Share{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	projectRepo := repositories.NewPostgresProjectRepository(pgdb)
	filesRepo := repositories.NewMongoProjectFilesRepository(mgClient.Database("codetok"))
	likeRepo := repositories.NewPostgresLikeRepository(pgdb)
	favoriteRepo := repositories.NewPostgresFavoriteRepository(pgdb)
	followRepo := repositories.NewPostgresFollowRepository(pgdb)
	commentRepo := repositories.NewPostgresCommentRepository(pgdb)
	notificationRepo := repositories.NewPostgresNotificationRepository(pgdb)
	shareRepo := repositories.NewPostgresShareRepository(pgdb)

	// --- Engagement service (transactional writes) ---
	socialService := services.NewSocialService(pgdb)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, firebaseAuthClient, jwtSecret)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(firebaseAuthClient, userRepo, jwtSecret))
	log.Println("Auth middleware applied to /api/v1 group.")

	// User profile routes
	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterProfileRoutes(api)
	api.GET("/users/search", userHandler.SearchUsers)
	log.Println("User profile routes configured.")

	// Project routes
	projectHandler := handlers.NewProjectHandler(projectRepo, filesRepo, likeRepo, favoriteRepo, userRepo)
	projectHandler.RegisterProjectRoutes(api)
	log.Println("Project routes configured.")

	// Like routes
	likeHandler := handlers.NewLikeHandler(socialService, likeRepo)
	likeHandler.RegisterLikeRoutes(api)
	log.Println("Like routes configured.")

	// Favorite routes
	favoriteHandler := handlers.NewFavoriteHandler(socialService, favoriteRepo)
	favoriteHandler.RegisterFavoriteRoutes(api)
	log.Println("Favorite routes configured.")

	// Follow routes
	followHandler := handlers.NewFollowHandler(socialService, followRepo)
	followHandler.RegisterFollowRoutes(api)
	log.Println("Follow routes configured.")

	// Comment routes
	commentHandler := handlers.NewCommentHandler(socialService, commentRepo)
	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	// Notification routes
	notificationHandler := handlers.NewNotificationHandler(notificationRepo, userRepo, projectRepo, commentRepo)
	notificationHandler.RegisterNotificationRoutes(api)
	log.Println("Notification routes configured.")

	// Share routes
	shareHandler := handlers.NewShareHandler(socialService, shareRepo)
	shareHandler.RegisterShareRoutes(api)
	log.Println("Share routes configured.")

	log.Println("All routes configured.")
}
