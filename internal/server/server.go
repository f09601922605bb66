package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chatapp/config"
	"chatapp/internal/handler"
	"chatapp/internal/middleware"
	"chatapp/internal/redis"
	"chatapp/internal/repository"
	"chatapp/internal/services"
	"chatapp/pkg/database"
	"chatapp/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     *config.Config
	logger     *logger.Logger
}

var (
	ReleaseMode = "release"
	DebugMode   = "debug"
	TestMode    = "test"
)

type Handlers struct {
	User *handler.UserHandler
	Chat *handler.ChatHandler
}

func New(cfg *config.Config, l *logger.Logger) *Server {
	if cfg.AppMode == ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.AppMode == TestMode {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Server{
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.AppPort),
			Handler: engine,
		},
		engine: engine,
		config: cfg,
		logger: l,
	}
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// SetupRoutes registers the API. Every route carries exactly one policy
// from the closed policy set; the auth gate runs before the handler and
// the rate limiters run after it, so a limited request is still an
// authenticated one.
func (s *Server) SetupRoutes(handlers *Handlers, tokens *services.TokenService, users repository.UserRepository, limiter *redis.RateLimiter) {
	s.engine.Use(middleware.RequestIDMiddleware())
	s.engine.Use(middleware.LoggingMiddleware(s.logger))
	s.engine.Use(middleware.ErrorHandler(s.logger))

	s.engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	s.engine.GET("/health", func(c *gin.Context) {
		if err := database.HealthCheck(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	auth := func(policy middleware.Policy) gin.HandlerFunc {
		return middleware.Auth(tokens, users, policy)
	}

	api := s.engine.Group("/api/v1")

	userRoutes := api.Group("/users")
	{
		userRoutes.POST("", auth(middleware.PolicyPublic), middleware.SignupRateLimitMiddleware(limiter), handlers.User.Create)
		userRoutes.GET("", auth(middleware.PolicyDefault), handlers.User.List)
		userRoutes.GET("/:userId", auth(middleware.PolicySelfOnly), handlers.User.Get)
		userRoutes.DELETE("/:userId", auth(middleware.PolicySelfOnly), handlers.User.Delete)
	}

	chatRoutes := api.Group("/chats")
	{
		chatRoutes.GET("/user/:userId", auth(middleware.PolicySelfOnly), handlers.Chat.ChatsOfUser)
		chatRoutes.GET("/:id/users", auth(middleware.PolicyMemberScoped), handlers.Chat.Members)
		chatRoutes.POST("/:id/users", auth(middleware.PolicyMemberScoped), handlers.Chat.AddUser)
		chatRoutes.GET("/:id/messages", auth(middleware.PolicyMemberScoped), handlers.Chat.Messages)
		chatRoutes.POST("/:id/:userId/messages", auth(middleware.PolicySelfOnly), middleware.MessageRateLimitMiddleware(limiter), handlers.Chat.CreateMessage)
		chatRoutes.GET("/:id", auth(middleware.PolicyDefault), handlers.Chat.Get)
		chatRoutes.DELETE("/:id", auth(middleware.PolicyMemberScoped), handlers.Chat.Delete)
		chatRoutes.GET("", auth(middleware.PolicyDefault), handlers.Chat.List)
		chatRoutes.POST("", auth(middleware.PolicyMemberScoped), handlers.Chat.Create)
	}
}

func (s *Server) Start() error {
	go func() {
		if s.logger != nil {
			s.logger.Infof("Starting the server on port %s...", s.config.AppPort)
		}
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if s.logger != nil {
				s.logger.Errorf("Error in starting the server: %s", err)
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	if s.logger != nil {
		s.logger.Infof("Quitting signal received.. Shutting down after 5 seconds")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	return s.httpServer.Shutdown(ctx)
}
