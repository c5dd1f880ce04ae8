package route

import (
	"github.com/Aaron629/today-go-where-bot/controllers"
	"github.com/Aaron629/today-go-where-bot/handlers"
	"github.com/Aaron629/today-go-where-bot/services"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes initializes all routes
func RegisterRoutes(router *gin.Engine, placeService *services.PlaceService) {
	webhookController := controllers.NewWebhookController(placeService)
	placeController := controllers.NewPlaceController(placeService)

	handlers.RegisterHealthRoutes(router)
	handlers.RegisterWebhookRoutes(router, webhookController)

	v1Routes := router.Group("/v1")
	{
		handlers.RegisterPlaceRoutes(v1Routes, placeController)
	}
}
