package main

import (
	"context"
	"log"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/codetok-app/backend/internal/router"
	"github.com/codetok-app/backend/pkg/config"
	"github.com/codetok-app/backend/pkg/firebase"
	"github.com/codetok-app/backend/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connections
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB() // Ensure database connections are closed when main exits

	// Initialize Firebase; the service runs with local JWT auth only when no
	// credentials are configured
	var firebaseAuthClient *fbauth.Client
	if cfg.FirebaseCredentialsPath != "" {
		ctx := context.Background()
		firebaseApp, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath)
		if err != nil {
			log.Printf("Firebase unavailable, continuing without it: %v", err)
		} else {
			firebaseAuthClient = firebaseApp.AuthClient
		}
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, db.Mongo, firebaseAuthClient, cfg.JWTSecret)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
