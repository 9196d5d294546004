package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"roni/middleware"
	"roni/pkg/store"

	chatRoutes "roni/routes/chat"
	messageRoutes "roni/routes/messages"
)

// NewRouter builds the full gin engine: permissive CORS (preflight answered
// with an empty 200), static bearer auth, and both route areas.
func NewRouter(st *store.Store) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:              []string{"*"},
		AllowMethods:              []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:              []string{"Content-Type", "Authorization", "X-Client-Info", "Apikey"},
		MaxAge:                    12 * time.Hour,
		OptionsResponseStatusCode: http.StatusOK,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"msg": "R.O.N.I gateway running"})
	})

	protected := r.Group("/")
	protected.Use(middleware.Auth())
	chatRoutes.Register(protected)
	messageRoutes.Register(protected, st)

	return r
}
