package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	jwtsvc "loonbedrijf/internal/pkg/jwt"
	"loonbedrijf/internal/pkg/response"
)

type tokenValidator interface {
	ValidateToken(tokenStr string) (*jwtsvc.Claims, error)
}

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
	tokens  tokenValidator
	hub     *Hub
}

func NewHandler(service *Service, tokens tokenValidator, hub *Hub) *Handler {
	return &Handler{service: service, tokens: tokens, hub: hub}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.GET("/events", h.Events)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/auth/logout", h.Logout)
	protected.GET("/users/me", h.Me)
}

// Login authenticates a user and returns a bearer token. The redirect_to
// path from the request is echoed back so the front-end can return the
// user to the page that triggered the login.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Email or password is incorrect")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to login")
		return
	}

	h.hub.BroadcastToUser(user.ID, Event{Type: EventSignedIn, UserID: user.ID, At: time.Now()})

	response.Success(c, http.StatusOK, gin.H{
		"user": UserPublic{
			ID:    user.ID,
			Role:  string(user.Role),
			Name:  user.Name,
			Email: user.Email,
		},
		"token":       token,
		"redirect_to": req.RedirectTo,
	})
}

// Logout notifies the user's other sessions and always succeeds: the
// client clears its local state regardless, so there is nothing to fail.
func (h *Handler) Logout(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID != "" {
		h.hub.BroadcastToUser(userID, Event{Type: EventSignedOut, UserID: userID, At: time.Now()})
	}

	response.Success(c, http.StatusOK, gin.H{"message": "signed out"})
}

// Me returns the profile of the current identity.
func (h *Handler) Me(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	user, err := h.service.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// Events upgrades to a WebSocket and streams the caller's auth-state
// changes. The token travels in a query parameter because browsers cannot
// set headers on WebSocket upgrades.
func (h *Handler) Events(c *gin.Context) {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing token")
		return
	}

	claims, err := h.tokens.ValidateToken(tokenStr)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	h.hub.ServeWS(conn, claims.UserID)
}
