package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"roni/pkg/services"
)

const chatFallback = "I couldn't generate a response."

// ChatGateway handles POST /functions/gemini-chat: forwards a text prompt
// (plus optional inline image) to the provider and returns the extracted
// text.
func ChatGateway(svc *services.GeminiService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Message string `json:"message"`
			Image   string `json:"image"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || strings.TrimSpace(body.Message) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
			return
		}

		parts := []services.Part{services.TextPart(body.Message)}
		if body.Image != "" {
			parts = append(parts, services.ImagePart("image/jpeg", body.Image))
		}

		text, err := svc.GenerateContent(c.Request.Context(), parts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if strings.TrimSpace(text) == "" {
			text = chatFallback
		}
		c.JSON(http.StatusOK, gin.H{"response": text})
	}
}
