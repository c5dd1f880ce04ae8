package main

import (
	"log"
	"time"

	"github.com/Aaron629/today-go-where-bot/config/environment"
	"github.com/Aaron629/today-go-where-bot/middleware"
	v1 "github.com/Aaron629/today-go-where-bot/routes/v1"
	"github.com/Aaron629/today-go-where-bot/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using environment as-is")
	}

	// Load the place catalog once; it is shared read-only from here on.
	placeService := services.NewPlaceService(environment.GetPlacesDir())
	log.Printf("[BOOT] DATA_SIZE=%d dir=%s skip_verify=%v secret_set=%v token_set=%v",
		placeService.Size(), environment.GetPlacesDir(), environment.ShouldSkipVerify(),
		environment.GetChannelSecret() != "", environment.GetChannelAccessToken() != "")

	// Setup Gin router
	r := gin.Default()

	r.Use(middleware.ErrorHandlerMiddleware())

	// CORS Middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Content-Type", "X-Line-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Register all routes
	v1.RegisterRoutes(r, placeService)

	port := environment.GetPort()
	log.Println("🚀 Server running on port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
