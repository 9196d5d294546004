package chat

import (
	"github.com/gin-gonic/gin"

	"roni/controllers"
	"roni/middleware"
	"roni/pkg/services"
)

// Register registers the two AI gateway endpoints (protected).
func Register(g *gin.RouterGroup) {
	svc := services.NewGeminiService()
	g.POST("/functions/gemini-chat", middleware.RateLimit(), controllers.ChatGateway(svc))
	g.POST("/functions/gemini-image", middleware.RateLimit(), controllers.ImageGateway(svc))
}
