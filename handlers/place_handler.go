package handlers

import (
	"github.com/Aaron629/today-go-where-bot/controllers"
	"github.com/gin-gonic/gin"
)

func RegisterPlaceRoutes(router *gin.RouterGroup, placeController *controllers.PlaceController) {
	placeGroup := router.Group("/places")
	{
		placeGroup.GET("/", placeController.GetPlaces)

		placeGroup.GET("/categories", placeController.GetCategories)
	}
}
