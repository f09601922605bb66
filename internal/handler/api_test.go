package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"chatapp/config"
	"chatapp/internal/domain"
	"chatapp/internal/handler"
	"chatapp/internal/proxy"
	"chatapp/internal/repository"
	"chatapp/internal/server"
	"chatapp/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupAPI wires the full router against an in-memory sqlite database:
// real repositories, services, auth gate and routes, no redis.
func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Chat{}, &domain.Message{}))

	cfg := &config.Config{
		AppPort:         "8080",
		AppMode:         server.TestMode,
		JWTSecret:       "test-secret",
		TokenExpiryDays: 365,
		TokenIssuer:     "chatapp.com",
	}

	userRepo := repository.NewUserRepository(db)
	chatRepo := repository.NewChatRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	access := proxy.NewAccessControl(chatRepo)

	tokens := services.NewTokenService(cfg)
	userService := services.NewUserService(userRepo, tokens)
	chatService := services.NewChatService(chatRepo, userRepo, messageRepo, access)

	srv := server.New(cfg, nil)
	srv.SetupRoutes(&server.Handlers{
		User: handler.NewUserHandler(userService),
		Chat: handler.NewChatHandler(chatService),
	}, tokens, userRepo, nil)

	return srv.Engine()
}

func doRequest(engine *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

type createdUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Token string `json:"token"`
}

func createUser(t *testing.T, engine *gin.Engine, name string) createdUser {
	t.Helper()
	rec := doRequest(engine, http.MethodPost, "/api/v1/users", "", gin.H{"name": name})
	require.Equal(t, http.StatusCreated, rec.Code)

	var u createdUser
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &u))
	require.NotEmpty(t, u.ID)
	require.NotEmpty(t, u.Token)
	return u
}

type chatBody struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func createChat(t *testing.T, engine *gin.Engine, token, name string) chatBody {
	t.Helper()
	rec := doRequest(engine, http.MethodPost, "/api/v1/chats", token, gin.H{"name": name})
	require.Equal(t, http.StatusCreated, rec.Code)

	var c chatBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	require.NotEmpty(t, c.ID)
	return c
}
