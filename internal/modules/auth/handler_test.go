package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"loonbedrijf/internal/domain"
	jwtsvc "loonbedrijf/internal/pkg/jwt"
)

func loginRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := new(mockUserRepo)
	hash, _ := bcrypt.GenerateFromPassword([]byte("geheim123"), bcrypt.MinCost)
	users.On("GetByEmail", mock.Anything, "jan@devries.nl").Return(&domain.User{
		ID:           "user-1",
		Email:        "jan@devries.nl",
		PasswordHash: string(hash),
		Role:         domain.RolePortal,
		Name:         "Jan de Vries",
	}, nil)

	j := jwtsvc.New("test-secret", time.Hour)
	handler := NewHandler(NewService(users, j), j, NewHub())

	r := gin.New()
	v1 := r.Group("/api/v1")
	handler.RegisterPublicRoutes(v1)

	protected := v1.Group("/")
	protected.Use(func(c *gin.Context) { c.Set("user_id", "user-1") })
	handler.RegisterProtectedRoutes(protected)
	return r
}

func TestLoginEchoesRedirect(t *testing.T) {
	r := loginRouter(t)

	body, _ := json.Marshal(gin.H{
		"email":       "jan@devries.nl",
		"password":    "geheim123",
		"redirect_to": "/portaal/facturen",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Token      string `json:"token"`
			RedirectTo string `json:"redirect_to"`
			User       struct {
				ID   string `json:"id"`
				Role string `json:"role"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Data.Token)
	assert.Equal(t, "/portaal/facturen", resp.Data.RedirectTo)
	assert.Equal(t, "portal", resp.Data.User.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	r := loginRouter(t)

	body, _ := json.Marshal(gin.H{"email": "jan@devries.nl", "password": "fout"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_CREDENTIALS")
}

func TestLogoutAlwaysSucceeds(t *testing.T) {
	r := loginRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/auth/logout", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "signed out")
}

func TestEventsRequiresToken(t *testing.T) {
	r := loginRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/auth/events", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestEventsRejectsBadToken(t *testing.T) {
	r := loginRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/auth/events?token=garbage", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
