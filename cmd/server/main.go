package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/lucasSouza225/cadastroUsuario/docs"
	"github.com/lucasSouza225/cadastroUsuario/internal/common/config"
	"github.com/lucasSouza225/cadastroUsuario/internal/common/logger"
	"github.com/lucasSouza225/cadastroUsuario/internal/common/middleware"
	userHTTP "github.com/lucasSouza225/cadastroUsuario/internal/features/user/delivery/http"
	"github.com/lucasSouza225/cadastroUsuario/internal/features/user/repository"
	memoryRepo "github.com/lucasSouza225/cadastroUsuario/internal/features/user/repository/memory"
	redisRepo "github.com/lucasSouza225/cadastroUsuario/internal/features/user/repository/redis"
	"github.com/lucasSouza225/cadastroUsuario/internal/features/user/service"
	"github.com/lucasSouza225/cadastroUsuario/internal/platform/redis"
)

// @title           User Directory API
// @version         1.0
// @description     Minimal user-directory service: create, list, update and delete users.

// @license.name  MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @tag.name users
// @tag.description User management

func main() {
	cfg := config.Load()

	logger.Init("user-directory", cfg.Debug)

	userRepository, closeStore, err := openRepository(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open record store")
	}
	defer closeStore()

	logger.Info().Str("driver", cfg.Storage.Driver).Msg("Record store ready")

	userSvc := service.NewUserService(userRepository)
	userHandler := userHTTP.NewUserHandler(userSvc)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Accept", "X-Request-ID"}
	router.Use(cors.New(corsConfig))

	v1 := router.Group("/api/v1")
	userHandler.RegisterRoutes(v1)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   "user-directory",
		})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}

// openRepository selects the record store backend from config.
func openRepository(cfg *config.Config) (repository.UserRepository, func(), error) {
	switch cfg.Storage.Driver {
	case "memory":
		return memoryRepo.NewRepository(), func() {}, nil
	case "redis":
		client, err := redis.Open(context.Background(), cfg)
		if err != nil {
			return nil, nil, err
		}
		return redisRepo.NewUserRepository(client.Client), func() { _ = client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
