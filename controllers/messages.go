package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"roni/models"
	"roni/pkg/store"
)

func validMessageType(t string) bool {
	switch t {
	case "", models.TypeText, models.TypeImage, models.TypeImageToImage:
		return true
	}
	return false
}

// InsertMessage handles POST /messages. The client owns id and timestamp;
// the server only validates and appends.
func InsertMessage(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var msg models.Message
		if err := c.ShouldBindJSON(&msg); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		if strings.TrimSpace(msg.ID) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
			return
		}
		if msg.Role != models.RoleUser && msg.Role != models.RoleAssistant {
			c.JSON(http.StatusBadRequest, gin.H{"error": "role must be user or assistant"})
			return
		}
		if msg.Role == models.RoleUser && strings.TrimSpace(msg.Content) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
			return
		}
		if !validMessageType(msg.MessageType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid message_type"})
			return
		}
		if msg.Timestamp.IsZero() {
			msg.Timestamp = time.Now()
		}
		msg.Seq = 0 // assigned by the database

		if err := st.Insert(c.Request.Context(), &msg); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save message"})
			return
		}
		c.JSON(http.StatusCreated, msg)
	}
}

// ListMessages handles GET /messages: the whole log, oldest first.
func ListMessages(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		msgs, err := st.ListOrdered(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load messages"})
			return
		}
		if msgs == nil {
			msgs = []models.Message{}
		}
		c.JSON(http.StatusOK, gin.H{"messages": msgs})
	}
}
