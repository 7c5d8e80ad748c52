package routes

import (
	"github.com/gin-gonic/gin"

	"gossip/internal/handlers"
	"gossip/internal/middleware"
	"gossip/internal/services"
)

func SetupRoutes(
	r *gin.Engine,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	tokens services.TokenService,
) *gin.Engine {

	// ---- public
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/verify", authHandler.VerifyEmail)
		auth.POST("/login", authHandler.Login)
	}

	// ---- protected
	users := r.Group("/users", middleware.AuthMiddleware(tokens))
	{
		users.GET("/me", userHandler.Me)
		users.GET("/by-email/:email", userHandler.GetByEmail)
		users.GET("/:id", userHandler.GetByID)
	}

	return r
}
