package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"github.com/LuminLynx/ProductCareHub/config"
	"github.com/LuminLynx/ProductCareHub/handlers"
	"github.com/LuminLynx/ProductCareHub/services"
	"github.com/LuminLynx/ProductCareHub/storage"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Build the in-memory store. State is not durable: every start begins
	// from the seed data.
	store := storage.New()

	// File uploads: Cloudinary when configured, local disk otherwise
	uploads, err := services.NewUploadService(config.AppConfig.CloudinaryURL, config.AppConfig.UploadDir)
	if err != nil {
		log.Fatal("Failed to initialize uploads:", err)
	}
	if uploads.ServesLocalFiles() {
		log.Printf("Storing uploads locally in %s", uploads.LocalDir())
	} else {
		log.Printf("Storing uploads in Cloudinary")
	}

	// Claim-email delivery is optional; without SMTP config the generated
	// emails are only logged.
	mailer := services.NewMailer(
		config.AppConfig.SMTPHost,
		config.AppConfig.SMTPPort,
		config.AppConfig.SMTPUsername,
		config.AppConfig.SMTPPassword,
		config.AppConfig.SMTPFrom,
	)
	if mailer == nil {
		log.Printf("SMTP not configured, claim emails will be logged only")
	}

	// Set Gin mode
	if config.AppConfig.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.Default()

	// Add CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "ProductCareHub server is running",
		})
	})

	api := handlers.NewAPI(store, uploads, mailer)
	api.Register(router)

	// Start server
	log.Printf("Starting ProductCareHub server on 0.0.0.0:%s", config.AppConfig.ServerPort)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+config.AppConfig.ServerPort, c.Handler(router)))
}
