package middleware

import (
	"errors"
	"net/http"
	"strings"

	"chatapp/internal/repository"
	"chatapp/internal/services"
	chatapp_errors "chatapp/pkg/errors"

	"github.com/gin-gonic/gin"
)

// Policy is the closed set of route authorization classes. Every route
// is registered with exactly one policy; there is no runtime
// configuration and no matching on route names.
type Policy int

const (
	// PolicyPublic proceeds without inspecting credentials. Only user
	// creation holds this policy.
	PolicyPublic Policy = iota
	// PolicySelfOnly requires a valid token whose subject matches the
	// userId path parameter when that parameter is present.
	PolicySelfOnly
	// PolicyMemberScoped requires a valid token and attaches the resolved
	// user as the request principal for downstream membership checks.
	PolicyMemberScoped
	// PolicyDefault requires a valid token and a resolvable user, nothing
	// more.
	PolicyDefault
)

// Auth is the request-scoped authentication gate. It either lets the
// request through (with a principal attached for member-scoped routes)
// or terminates it with a fixed status/body pair. Handlers never see a
// request whose token failed verification.
func Auth(tokens *services.TokenService, users repository.UserRepository, policy Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		if policy == PolicyPublic {
			c.Next()
			return
		}

		// A missing or malformed Authorization header behaves exactly like
		// an invalid token.
		token := extractBearer(c)

		userID, err := tokens.Verify(token)
		if err != nil {
			if errors.Is(err, chatapp_errors.ErrTokenExpired) {
				reject(c, "Token Expired")
				return
			}
			reject(c, "Unauthorized")
			return
		}

		// A token for a deleted user is invalid, not a 404.
		u, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			reject(c, "Unauthorized")
			return
		}

		if policy == PolicySelfOnly {
			if target := c.Param("userId"); target != "" && target != u.ID {
				reject(c, "Unauthorized")
				return
			}
		}

		if policy == PolicyMemberScoped {
			ctx := services.WithPrincipal(c.Request.Context(), u)
			c.Request = c.Request.WithContext(ctx)
		}

		c.Next()
	}
}

func reject(c *gin.Context, body string) {
	c.String(http.StatusUnauthorized, body)
	c.Abort()
}

func extractBearer(c *gin.Context) string {
	value := c.GetHeader("Authorization")
	parts := strings.SplitN(value, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
