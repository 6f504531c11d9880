// Package main is the entry point for the feed service.
package main

import (
	"fmt"

	"github.com/gin-gonic/gin"

	_ "github.com/ishahbak/feed-service/docs"
	"github.com/ishahbak/feed-service/internal/config"
	"github.com/ishahbak/feed-service/internal/handlers"
	"github.com/ishahbak/feed-service/internal/repository"
	"github.com/ishahbak/feed-service/internal/routes"
	"github.com/ishahbak/feed-service/internal/service"
	"github.com/ishahbak/feed-service/pkg/logger"
	"github.com/ishahbak/feed-service/pkg/mongodb"
	"github.com/ishahbak/feed-service/pkg/rediscache"
)

// @title Feed Service API
// @version 1.0
// @description Social feed service: registration, login and a chronological post feed
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Errorf("invalid configuration: %v", err)
		return
	}
	logger.Init(cfg.LogLevel)

	// Initialize database connection manager
	mongo := mongodb.NewManager(cfg.MongoURI, cfg.MongoDatabase)
	mongo.Start()
	defer mongo.Stop()

	// Optional author cache
	cache := rediscache.NewClient(cfg)

	// Initialize repositories
	userRepo := repository.NewUserRepository(mongo)
	postRepo := repository.NewPostRepository(mongo)

	// Initialize services
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenExpiry)
	if tokens == nil {
		logger.Error("invalid JWT secret")
		return
	}
	authService := service.NewAuthService(userRepo, tokens)
	postService := service.NewPostService(postRepo, userRepo, cache)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	postHandler := handlers.NewPostHandler(postService)
	mediaHandler := handlers.NewMediaHandler()
	healthHandler := handlers.NewHealthHandler(mongo)

	// Setup router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Setup routes
	routes.Setup(router, cfg, tokens, authHandler, postHandler, mediaHandler, healthHandler)

	// Start server
	logger.Infof("starting feed service on port %s", cfg.Port)
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		logger.Errorf("server stopped: %v", err)
	}
}
