package services

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"chatapp/config"
	chatapp_errors "chatapp/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and verifies the signed bearer tokens users
// present on every protected route. Signing is symmetric HS256 with a
// process-wide secret from config; verification is a pure function of
// (token, current time, secret).
type TokenService struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		secret: []byte(cfg.JWTSecret),
		ttl:    time.Duration(cfg.TokenExpiryDays) * 24 * time.Hour,
		issuer: cfg.TokenIssuer,
	}
}

type TokenClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// Issue produces a signed token for the user: iat/nbf now, exp now+ttl,
// and a random 256-bit jti so two tokens issued in the same second for
// the same user still differ.
func (s *TokenService) Issue(userID string) (string, error) {
	nonce := make([]byte, 32)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	now := time.Now()
	claims := TokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        base64.StdEncoding.EncodeToString(nonce),
			Issuer:    s.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature and time-window claims and returns the
// embedded user ID. An expired but otherwise well-formed token yields
// ErrTokenExpired; every other failure (malformed, bad signature, wrong
// algorithm, not yet valid) yields ErrUnauthorized.
func (s *TokenService) Verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", chatapp_errors.ErrUnauthorized
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, chatapp_errors.ErrUnauthorized
		}
		return s.secret, nil
	})
	if err != nil {
		// Signature failures win over claim failures: a tampered token is
		// invalid even when its exp has also passed.
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return "", chatapp_errors.ErrUnauthorized
		}
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", chatapp_errors.ErrTokenExpired
		}
		return "", chatapp_errors.ErrUnauthorized
	}

	claims, ok := parsed.Claims.(*TokenClaims)
	if !ok || !parsed.Valid || claims.UserID == "" {
		return "", chatapp_errors.ErrUnauthorized
	}

	return claims.UserID, nil
}
