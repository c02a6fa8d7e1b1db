package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/huddle/internal/handlers"
	"github.com/monocle-dev/huddle/internal/middleware"
)

func NewRouter(h *handlers.Handler, users middleware.UserLookup) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.GinZapMiddleware(h.Logger))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     h.Origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authRequired := middleware.AuthMiddleware(h.Tokens, users, h.Translator)

	api := r.Group("/api")
	{
		api.GET("/health", h.HealthCheck)
		api.GET("/ws", authRequired, h.WebSocket)

		auth := api.Group("/auth")
		{
			auth.POST("/register", h.CreateUser)
			auth.POST("/login", h.LoginUser)
			auth.POST("/logout", h.LogoutUser)
			auth.GET("/me", authRequired, h.Me)
		}

		rooms := api.Group("/rooms/:room", authRequired)
		{
			rooms.GET("/messages", h.ListMessages)
			rooms.GET("/schedules", h.ListSchedules)
			rooms.GET("/projects", h.ListProjects)
			rooms.POST("/tasks/complete", h.CompleteTask)
			rooms.GET("/digest", h.GetDigest)
			rooms.DELETE("/schedules/:id", h.DeleteSchedule)
		}
	}

	return r
}
