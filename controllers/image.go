package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"roni/pkg/services"
)

const (
	describeFallback = "Unable to generate description."

	// The source image, when present, is followed by this instruction so
	// the model describes a comparable image instead of the input.
	remixInstruction = "Based on this image, generate a detailed description for creating a similar or modified image."

	// This endpoint is description-only on purpose; it never produces
	// pixel data.
	simulatedNote = "Image generation simulated. In production, this would connect to an image generation API like DALL-E or Imagen."
)

// ImageGateway handles POST /functions/gemini-image: asks the provider for a
// textual description of the requested image and returns it with a fixed
// disclaimer.
func ImageGateway(svc *services.GeminiService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Prompt      string `json:"prompt"`
			SourceImage string `json:"sourceImage"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || strings.TrimSpace(body.Prompt) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "prompt is required"})
			return
		}

		parts := []services.Part{services.TextPart(body.Prompt)}
		if body.SourceImage != "" {
			parts = append(parts,
				services.ImagePart("image/jpeg", body.SourceImage),
				services.TextPart(remixInstruction),
			)
		}

		description, err := svc.GenerateContent(c.Request.Context(), parts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if strings.TrimSpace(description) == "" {
			description = describeFallback
		}
		c.JSON(http.StatusOK, gin.H{
			"description": description,
			"message":     simulatedNote,
		})
	}
}
