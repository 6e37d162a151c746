package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/procure/backend/internal/domain/identity"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/procure/backend/internal/infrastructure/auth"
	"github.com/procure/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:     "test-secret-key-at-least-32-chars",
		Expiration: 15 * time.Minute,
		Issuer:     "test-issuer",
	})
}

func issueToken(t *testing.T, jwtService *auth.JWTService, userType identity.UserType) string {
	t.Helper()
	user := &identity.User{
		Email: "user@example.com",
		Type:  userType,
	}
	user.ID = 42
	token, _, err := jwtService.Generate(user)
	require.NoError(t, err)
	return token
}

func newGuardedRouter(jwtService *auth.JWTService, blacklist auth.TokenBlacklist) *gin.Engine {
	router := gin.New()
	router.GET("/me", RequireAuth(jwtService, blacklist, zap.NewNop()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserID(c)})
	})
	router.GET("/partner", RequireAuth(jwtService, blacklist, zap.NewNop()), RequireShop(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestRequireAuthValidToken(t *testing.T) {
	jwtService := newTestJWTService()
	router := newGuardedRouter(jwtService, auth.NewMemoryTokenBlacklist())
	token := issueToken(t, jwtService, identity.UserTypeBuyer)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(42), body["user_id"])
}

func TestRequireAuthMissingHeader(t *testing.T) {
	router := newGuardedRouter(newTestJWTService(), auth.NewMemoryTokenBlacklist())

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["Status"])
	assert.Equal(t, shared.ErrUnauthorized.Message, body["Errors"])
}

func TestRequireAuthMalformedToken(t *testing.T) {
	router := newGuardedRouter(newTestJWTService(), auth.NewMemoryTokenBlacklist())

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAuthWrongSecret(t *testing.T) {
	other := auth.NewJWTService(config.JWTConfig{
		Secret:     "a-completely-different-secret-key",
		Expiration: 15 * time.Minute,
		Issuer:     "test-issuer",
	})
	token := issueToken(t, other, identity.UserTypeBuyer)
	router := newGuardedRouter(newTestJWTService(), auth.NewMemoryTokenBlacklist())

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAuthRevokedToken(t *testing.T) {
	jwtService := newTestJWTService()
	blacklist := auth.NewMemoryTokenBlacklist()
	router := newGuardedRouter(jwtService, blacklist)
	token := issueToken(t, jwtService, identity.UserTypeBuyer)

	claims, err := jwtService.Validate(token)
	require.NoError(t, err)
	require.NoError(t, blacklist.Add(context.Background(), claims.ID, time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireShopRejectsBuyer(t *testing.T) {
	jwtService := newTestJWTService()
	router := newGuardedRouter(jwtService, auth.NewMemoryTokenBlacklist())
	token := issueToken(t, jwtService, identity.UserTypeBuyer)

	req := httptest.NewRequest(http.MethodGet, "/partner", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, shared.ErrForbidden.Message, body["Errors"])
}

func TestRequireShopAllowsSupplier(t *testing.T) {
	jwtService := newTestJWTService()
	router := newGuardedRouter(jwtService, auth.NewMemoryTokenBlacklist())
	token := issueToken(t, jwtService, identity.UserTypeShop)

	req := httptest.NewRequest(http.MethodGet, "/partner", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
