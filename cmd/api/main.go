package main

import (
	"log"

	"chatapp/config"
	"chatapp/internal/domain"
	"chatapp/internal/handler"
	"chatapp/internal/proxy"
	"chatapp/internal/redis"
	"chatapp/internal/repository"
	"chatapp/internal/server"
	"chatapp/internal/services"
	"chatapp/pkg/database"
	"chatapp/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	mode := logger.DevelopmentMode
	if cfg.AppMode == server.ReleaseMode {
		mode = logger.ProductionMode
	}
	l := logger.New(mode)
	defer l.Sync()

	// Connect to Database
	database.Connect(cfg)

	if err := database.DB.AutoMigrate(
		&domain.User{},
		&domain.Chat{},
		&domain.Message{},
	); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	userRepo := repository.NewUserRepository(database.DB)
	chatRepo := repository.NewChatRepository(database.DB)
	messageRepo := repository.NewMessageRepository(database.DB)

	access := proxy.NewAccessControl(chatRepo)

	tokens := services.NewTokenService(cfg)
	userService := services.NewUserService(userRepo, tokens)
	chatService := services.NewChatService(chatRepo, userRepo, messageRepo, access)

	var limiter *redis.RateLimiter
	if cfg.RateLimitEnabled {
		client := redis.NewClient(redis.Config{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
		})
		limiter = redis.NewRateLimiter(client, redis.DefaultRateLimitConfig())
	}

	srv := server.New(cfg, l)
	srv.SetupRoutes(&server.Handlers{
		User: handler.NewUserHandler(userService),
		Chat: handler.NewChatHandler(chatService),
	}, tokens, userRepo, limiter)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
}
