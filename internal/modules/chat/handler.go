package chat

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"batoo/internal/pkg/jwt"
	"batoo/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // configure in prod
}

type Handler struct {
	service *Service
	hub     *Hub
	jwt     *jwt.Service
}

func NewHandler(service *Service, hub *Hub, jwtService *jwt.Service) *Handler {
	return &Handler{service: service, hub: hub, jwt: jwtService}
}

// RegisterProtectedRoutes registers the REST chat routes (JWT required).
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	chatGroup := rg.Group("/chat")
	{
		chatGroup.GET("/conversations", h.ListConversations)
		chatGroup.GET("/messages/:peer_id", h.GetMessages)
		chatGroup.POST("/messages", h.SendMessage)
	}
}

// RegisterWSRoute registers the websocket endpoint. Browsers cannot set an
// Authorization header on websocket dials, so the token rides in the query
// string instead of going through the auth middleware.
func (h *Handler) RegisterWSRoute(rg *gin.RouterGroup) {
	rg.GET("/ws", h.ServeWS)
}

// ListConversations handles GET /api/v1/chat/conversations
func (h *Handler) ListConversations(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	convs, err := h.service.ListConversations(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get conversations")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"conversations": convs})
}

// GetMessages handles GET /api/v1/chat/messages/:peer_id
func (h *Handler) GetMessages(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	peerID, err := strconv.ParseInt(c.Param("peer_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid peer ID")
		return
	}

	msgs, err := h.service.GetMessages(c.Request.Context(), userID, peerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get messages")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"messages": msgs})
}

// SendMessage handles POST /api/v1/chat/messages
func (h *Handler) SendMessage(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}

	m, err := h.service.SendMessage(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrCannotMessageSelf), errors.Is(err, ErrEmptyContent):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrRecipientNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Recipient not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to send message")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"message": m})
}

// ServeWS handles GET /ws?token=...
func (h *Handler) ServeWS(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing token")
		return
	}

	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
		return
	}
	userID := claims.UserID

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed for user %d: %v", userID, err)
		return
	}

	h.hub.Register(userID, conn)
	defer h.hub.Unregister(userID)

	// Read loop: inbound frames are sends too, so a client can stay on one
	// socket for its whole session.
	for {
		var req SendMessageRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("websocket read error for user %d: %v", userID, err)
			}
			return
		}

		if _, err := h.service.SendMessage(c.Request.Context(), userID, req); err != nil {
			_ = conn.WriteJSON(gin.H{"type": "error", "message": err.Error()})
		}
	}
}
