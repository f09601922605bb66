package services

import (
	"context"

	"chatapp/internal/domain"
)

type ctxKey string

var principalKey ctxKey = "principal"

// WithPrincipal attaches the authenticated user to the request context.
// Only member-scoped routes carry a principal; the other policies leave
// the context untouched.
func WithPrincipal(ctx context.Context, u domain.User) context.Context {
	return context.WithValue(ctx, principalKey, u)
}

func PrincipalFromContext(ctx context.Context) (domain.User, bool) {
	value := ctx.Value(principalKey)
	if value == nil {
		return domain.User{}, false
	}
	u, ok := value.(domain.User)
	return u, ok
}
