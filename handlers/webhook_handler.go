package handlers

import (
	"github.com/Aaron629/today-go-where-bot/controllers"
	"github.com/gin-gonic/gin"
)

func RegisterWebhookRoutes(router *gin.Engine, webhookController *controllers.WebhookController) {
	router.POST("/webhook", webhookController.Handle)
}
