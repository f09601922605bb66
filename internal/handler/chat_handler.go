package handler

import (
	"errors"
	"net/http"
	"strconv"

	"chatapp/internal/services"
	"chatapp/internal/transport/httpdto"
	chatapp_errors "chatapp/pkg/errors"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	service *services.ChatService
}

func NewChatHandler(service *services.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

func (h *ChatHandler) Create(c *gin.Context) {
	principal, ok := services.PrincipalFromContext(c.Request.Context())
	if !ok {
		c.String(http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req httpdto.CreateChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	chat, err := h.service.Create(c.Request.Context(), principal.ID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, httpdto.FromChat(chat))
}

func (h *ChatHandler) List(c *gin.Context) {
	chats, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if len(chats) == 0 {
		c.String(http.StatusNotFound, "NOT FOUND")
		return
	}

	c.JSON(http.StatusOK, httpdto.FromChatSlice(chats))
}

func (h *ChatHandler) Get(c *gin.Context) {
	chat, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.FromChat(chat))
}

func (h *ChatHandler) Delete(c *gin.Context) {
	principal, ok := services.PrincipalFromContext(c.Request.Context())
	if !ok {
		c.String(http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.Delete(c.Request.Context(), principal.ID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ChatHandler) ChatsOfUser(c *gin.Context) {
	chats, err := h.service.ChatsOfUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		// An unknown user here is a bad request, not a 404.
		if errors.Is(err, chatapp_errors.ErrNotFound) {
			c.Status(http.StatusBadRequest)
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.FromChatSlice(chats))
}

func (h *ChatHandler) Members(c *gin.Context) {
	principal, ok := services.PrincipalFromContext(c.Request.Context())
	if !ok {
		c.String(http.StatusUnauthorized, "Unauthorized")
		return
	}

	members, err := h.service.Members(c.Request.Context(), principal.ID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.FromUserSlice(members))
}

// AddUser joins the authenticated principal to the chat.
func (h *ChatHandler) AddUser(c *gin.Context) {
	principal, ok := services.PrincipalFromContext(c.Request.Context())
	if !ok {
		c.String(http.StatusUnauthorized, "Unauthorized")
		return
	}

	chatID := c.Param("id")
	if err := h.service.Join(c.Request.Context(), principal.ID, chatID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, httpdto.MembershipResponse{
		ChatID: chatID,
		UserID: principal.ID,
	})
}

func (h *ChatHandler) Messages(c *gin.Context) {
	principal, ok := services.PrincipalFromContext(c.Request.Context())
	if !ok {
		c.String(http.StatusUnauthorized, "Unauthorized")
		return
	}

	chatID := c.Param("id")
	lastMessageID, _ := strconv.ParseInt(c.Query("lastMessageId"), 10, 64)

	messages, err := h.service.Messages(c.Request.Context(), principal.ID, chatID, lastMessageID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.ChatMessagesResponse{
		ID:       chatID,
		Messages: httpdto.FromMessageSlice(messages),
	})
}

// CreateMessage resolves the author from the userId path parameter; the
// auth gate has already enforced that it matches the token's subject.
func (h *ChatHandler) CreateMessage(c *gin.Context) {
	var req httpdto.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	msg, err := h.service.PostMessage(c.Request.Context(), c.Param("userId"), c.Param("id"), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, httpdto.FromMessage(msg))
}
