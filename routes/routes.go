package routes

import (
	"net/http"
	"time"

	"meetbot/handlers"
	"meetbot/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes registers the conversational booking endpoint.
func RegisterChatRoutes(r *gin.Engine, chat *handlers.ChatHandler) {
	api := r.Group("/api/chat")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", chat.HandleChat)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Meetbot"})
	})
}

// RegisterRoutes wires CORS and all endpoints onto the router.
func RegisterRoutes(r *gin.Engine, chat *handlers.ChatHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterChatRoutes(r, chat)
}
