package handler

import (
	"errors"
	"net/http"

	chatapp_errors "chatapp/pkg/errors"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the fixed status/body table.
// Bodies are plain text, byte-for-byte what clients match on.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chatapp_errors.ErrNotFound):
		c.String(http.StatusNotFound, "NOT FOUND")
	case errors.Is(err, chatapp_errors.ErrForbidden):
		c.String(http.StatusForbidden, "Forbidden")
	case errors.Is(err, chatapp_errors.ErrInvalidInput):
		c.Status(http.StatusBadRequest)
	case errors.Is(err, chatapp_errors.ErrUnauthorized), errors.Is(err, chatapp_errors.ErrTokenExpired):
		c.String(http.StatusUnauthorized, "Unauthorized")
	default:
		c.Status(http.StatusInternalServerError)
		_ = c.Error(err)
	}
}
