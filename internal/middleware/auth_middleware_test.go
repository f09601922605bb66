package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"chatapp/config"
	"chatapp/internal/domain"
	"chatapp/internal/services"
	chatapp_errors "chatapp/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// stubUserRepo is an in-memory identity store for gate tests.
type stubUserRepo struct {
	users map[string]domain.User
}

func (s *stubUserRepo) Create(_ context.Context, u *domain.User) error {
	s.users[u.ID] = *u
	return nil
}

func (s *stubUserRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return domain.User{}, chatapp_errors.ErrNotFound
	}
	return u, nil
}

func (s *stubUserRepo) GetAll(_ context.Context) ([]domain.User, error) {
	all := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		all = append(all, u)
	}
	return all, nil
}

func (s *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := s.users[id]; !ok {
		return chatapp_errors.ErrNotFound
	}
	delete(s.users, id)
	return nil
}

func newGateFixture(t *testing.T) (*services.TokenService, *stubUserRepo, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := services.NewTokenService(&config.Config{
		JWTSecret:       "test-secret",
		TokenExpiryDays: 365,
		TokenIssuer:     "chatapp.com",
	})
	repo := &stubUserRepo{users: map[string]domain.User{}}

	engine := gin.New()
	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }
	engine.POST("/public", Auth(tokens, repo, PolicyPublic), ok)
	engine.GET("/default", Auth(tokens, repo, PolicyDefault), ok)
	engine.GET("/self/:userId", Auth(tokens, repo, PolicySelfOnly), ok)
	engine.GET("/member", Auth(tokens, repo, PolicyMemberScoped), func(c *gin.Context) {
		principal, found := services.PrincipalFromContext(c.Request.Context())
		if !found {
			c.String(http.StatusInternalServerError, "no principal")
			return
		}
		c.String(http.StatusOK, principal.ID)
	})

	return tokens, repo, engine
}

func perform(engine *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestAuth_PublicSkipsCredentials(t *testing.T) {
	req := require.New(t)
	_, _, engine := newGateFixture(t)

	rec := perform(engine, http.MethodPost, "/public", "")
	req.Equal(http.StatusOK, rec.Code)
}

func TestAuth_MissingToken(t *testing.T) {
	req := require.New(t)
	_, _, engine := newGateFixture(t)

	rec := perform(engine, http.MethodGet, "/default", "")
	req.Equal(http.StatusUnauthorized, rec.Code)
	req.Equal("Unauthorized", rec.Body.String())
}

func TestAuth_MalformedHeader(t *testing.T) {
	req := require.New(t)
	_, _, engine := newGateFixture(t)

	for _, header := range []string{"Bearer", "Token abc", "abc"} {
		r := httptest.NewRequest(http.MethodGet, "/default", nil)
		r.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, r)
		req.Equal(http.StatusUnauthorized, rec.Code, "header %q", header)
		req.Equal("Unauthorized", rec.Body.String())
	}
}

func TestAuth_ValidToken(t *testing.T) {
	req := require.New(t)
	tokens, repo, engine := newGateFixture(t)

	repo.users["u1"] = domain.User{ID: "u1", Name: "alice"}
	token, err := tokens.Issue("u1")
	req.NoError(err)

	rec := perform(engine, http.MethodGet, "/default", token)
	req.Equal(http.StatusOK, rec.Code)
}

func TestAuth_ExpiredTokenBody(t *testing.T) {
	req := require.New(t)
	_, repo, engine := newGateFixture(t)

	repo.users["u1"] = domain.User{ID: "u1", Name: "alice"}

	// a service with a negative TTL issues already-expired tokens
	expiredIssuer := services.NewTokenService(&config.Config{
		JWTSecret:       "test-secret",
		TokenExpiryDays: -1,
		TokenIssuer:     "chatapp.com",
	})
	token, err := expiredIssuer.Issue("u1")
	req.NoError(err)

	rec := perform(engine, http.MethodGet, "/default", token)
	req.Equal(http.StatusUnauthorized, rec.Code)
	req.Equal("Token Expired", rec.Body.String())
}

func TestAuth_DeletedUserRejected(t *testing.T) {
	req := require.New(t)
	tokens, _, engine := newGateFixture(t)

	// token is valid but nobody resolves to it: 401, never 404
	token, err := tokens.Issue("ghost")
	req.NoError(err)

	rec := perform(engine, http.MethodGet, "/default", token)
	req.Equal(http.StatusUnauthorized, rec.Code)
	req.Equal("Unauthorized", rec.Body.String())
}

func TestAuth_SelfOnlyMatch(t *testing.T) {
	req := require.New(t)
	tokens, repo, engine := newGateFixture(t)

	repo.users["u1"] = domain.User{ID: "u1", Name: "alice"}
	token, err := tokens.Issue("u1")
	req.NoError(err)

	rec := perform(engine, http.MethodGet, "/self/u1", token)
	req.Equal(http.StatusOK, rec.Code)
}

func TestAuth_SelfOnlyMismatch(t *testing.T) {
	req := require.New(t)
	tokens, repo, engine := newGateFixture(t)

	repo.users["u1"] = domain.User{ID: "u1", Name: "alice"}
	repo.users["u2"] = domain.User{ID: "u2", Name: "bob"}
	token, err := tokens.Issue("u1")
	req.NoError(err)

	rec := perform(engine, http.MethodGet, "/self/u2", token)
	req.Equal(http.StatusUnauthorized, rec.Code)
	req.Equal("Unauthorized", rec.Body.String())
}

func TestAuth_MemberScopedAttachesPrincipal(t *testing.T) {
	req := require.New(t)
	tokens, repo, engine := newGateFixture(t)

	repo.users["u1"] = domain.User{ID: "u1", Name: "alice"}
	token, err := tokens.Issue("u1")
	req.NoError(err)

	rec := perform(engine, http.MethodGet, "/member", token)
	req.Equal(http.StatusOK, rec.Code)
	req.Equal("u1", rec.Body.String())
}

func TestAuth_DefaultDoesNotAttachPrincipal(t *testing.T) {
	req := require.New(t)

	gin.SetMode(gin.TestMode)
	tokens := services.NewTokenService(&config.Config{
		JWTSecret:       "test-secret",
		TokenExpiryDays: 365,
		TokenIssuer:     "chatapp.com",
	})
	repo := &stubUserRepo{users: map[string]domain.User{
		"u1": {ID: "u1", Name: "alice"},
	}}

	engine := gin.New()
	engine.GET("/plain", Auth(tokens, repo, PolicyDefault), func(c *gin.Context) {
		_, found := services.PrincipalFromContext(c.Request.Context())
		if found {
			c.String(http.StatusInternalServerError, "unexpected principal")
			return
		}
		c.String(http.StatusOK, "ok")
	})

	token, err := tokens.Issue("u1")
	req.NoError(err)

	rec := perform(engine, http.MethodGet, "/plain", token)
	req.Equal(http.StatusOK, rec.Code)
}
