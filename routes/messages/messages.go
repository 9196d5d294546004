package messages

import (
	"github.com/gin-gonic/gin"

	"roni/controllers"
	"roni/pkg/store"
)

// Register registers the conversation log endpoints (protected).
func Register(g *gin.RouterGroup, st *store.Store) {
	g.GET("/messages", controllers.ListMessages(st))
	g.POST("/messages", controllers.InsertMessage(st))
}
