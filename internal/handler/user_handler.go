package handler

import (
	"net/http"

	"chatapp/internal/services"
	"chatapp/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Create(c *gin.Context) {
	var req httpdto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	u, err := h.service.Create(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, httpdto.FromCreatedUser(u))
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if len(users) == 0 {
		c.String(http.StatusNotFound, "NOT FOUND")
		return
	}

	c.JSON(http.StatusOK, httpdto.FromUserSlice(users))
}

func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.service.Get(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.FromUser(u))
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("userId")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
