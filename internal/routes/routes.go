// Package routes defines HTTP routes for the feed service.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ishahbak/feed-service/docs"
	"github.com/ishahbak/feed-service/internal/config"
	"github.com/ishahbak/feed-service/internal/handlers"
	"github.com/ishahbak/feed-service/internal/middleware"
	"github.com/ishahbak/feed-service/internal/service"
)

// Setup configures all HTTP routes for the application.
func Setup(
	router *gin.Engine,
	cfg *config.Config,
	tokens service.TokenService,
	authHandler *handlers.AuthHandler,
	postHandler *handlers.PostHandler,
	mediaHandler *handlers.MediaHandler,
	healthHandler *handlers.HealthHandler,
) {
	router.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: cfg.AllowedOrigins,
	}))
	router.Use(middleware.Metrics())

	// Health check
	router.GET("/health", healthHandler.Check)
	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("/register", authHandler.Register)
			users.POST("/login", authHandler.Login)
		}

		posts := api.Group("/posts", middleware.RequireAuth(tokens))
		{
			posts.GET("", postHandler.List)
			posts.POST("", postHandler.Create)
		}

		media := api.Group("/media", middleware.RequireAuth(tokens))
		{
			media.POST("", mediaHandler.Upload)
		}
	}

	// Swagger documentation (only if SWAGGER_HOST is configured)
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}
