package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"travelhub/models"
	"travelhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		actor, _ := CurrentActor(c)
		c.JSON(http.StatusOK, gin.H{"id": actor.ID, "role": actor.Role})
	})
	r.GET("/x", handlers...)
	return r
}

func do(r *gin.Engine, token, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if ip != "" {
		req.Header.Set("X-Forwarded-For", ip+", 10.0.0.1")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddleware(t *testing.T) {
	r := newEngine(JWTAuthMiddleware(nil))

	require.Equal(t, http.StatusUnauthorized, do(r, "", "").Code)
	require.Equal(t, http.StatusUnauthorized, do(r, "garbage", "").Code)

	token, err := utils.GenerateToken(models.User{ID: "u1", Email: "u1@example.com", Role: models.RoleProvider}, time.Hour)
	require.NoError(t, err)
	w := do(r, token, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"id":"u1","role":"provider"}`, w.Body.String())

	expired, err := utils.GenerateToken(models.User{ID: "u1"}, -time.Minute)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, do(r, expired, "").Code)
}

func TestRequireRole(t *testing.T) {
	r := newEngine(JWTAuthMiddleware(nil), RequireRole(models.RoleAdmin))

	customer, _ := utils.GenerateToken(models.User{ID: "c1", Role: models.RoleCustomer}, time.Hour)
	admin, _ := utils.GenerateToken(models.User{ID: "a1", Role: models.RoleAdmin}, time.Hour)

	require.Equal(t, http.StatusForbidden, do(r, customer, "").Code)
	require.Equal(t, http.StatusOK, do(r, admin, "").Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	r := newEngine(RateLimitMiddleware(2))

	require.Equal(t, http.StatusOK, do(r, "", "1.1.1.1").Code)
	require.Equal(t, http.StatusOK, do(r, "", "1.1.1.1").Code)
	require.Equal(t, http.StatusTooManyRequests, do(r, "", "1.1.1.1").Code)
	require.Equal(t, http.StatusOK, do(r, "", "2.2.2.2").Code)
}
