package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicdesk/clinic-scheduler/internal/config"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func authTestRouter(cfg *config.Config, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	group := r.Group("/", AuthMiddleware(cfg))
	if len(roles) > 0 {
		group.Use(RequireRole(roles...))
	}
	group.GET("/ping", func(c *gin.Context) {
		id, _ := c.Get(ContextUserID)
		role, _ := c.Get(ContextUserRole)
		c.JSON(http.StatusOK, gin.H{"id": id, "role": role})
	})
	return r
}

func doAuthRequest(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	r := authTestRouter(cfg)

	valid := signToken(t, cfg.JWTSecret, jwt.MapClaims{
		"sub":  float64(7),
		"role": "assistant",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	t.Run("valid token passes", func(t *testing.T) {
		rr := doAuthRequest(r, "Bearer "+valid)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"role":"assistant"`)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		rr := doAuthRequest(r, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("malformed header rejected", func(t *testing.T) {
		rr := doAuthRequest(r, valid)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		bad := signToken(t, "other-secret", jwt.MapClaims{
			"sub": float64(7),
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		rr := doAuthRequest(r, "Bearer "+bad)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		expired := signToken(t, cfg.JWTSecret, jwt.MapClaims{
			"sub": float64(7),
			"exp": time.Now().Add(-time.Hour).Unix(),
		})
		rr := doAuthRequest(r, "Bearer "+expired)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("missing subject rejected", func(t *testing.T) {
		noSub := signToken(t, cfg.JWTSecret, jwt.MapClaims{
			"role": "assistant",
			"exp":  time.Now().Add(time.Hour).Unix(),
		})
		rr := doAuthRequest(r, "Bearer "+noSub)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRequireRole(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	r := authTestRouter(cfg, "admin", "owner")

	tokenFor := func(role string) string {
		return signToken(t, cfg.JWTSecret, jwt.MapClaims{
			"sub":  float64(1),
			"role": role,
			"exp":  time.Now().Add(time.Hour).Unix(),
		})
	}

	rr := doAuthRequest(r, "Bearer "+tokenFor("admin"))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = doAuthRequest(r, "Bearer "+tokenFor("owner"))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = doAuthRequest(r, "Bearer "+tokenFor("assistant"))
	assert.Equal(t, http.StatusForbidden, rr.Code)
}
