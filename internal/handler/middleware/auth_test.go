//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"salon-booking/internal/domain/staff"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/pkg/cookie"
	"salon-booking/internal/pkg/jwt"
	apptest "salon-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestRouter(t *testing.T, jwtService *jwt.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	authMw := middleware.NewAuthMiddleware(jwtService)
	router := gin.New()

	protected := router.Group("/protected", authMw.RequireAuth())
	protected.GET("", func(c *gin.Context) {
		id, ok := middleware.GetStaffID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"staff_id": id.String()})
	})
	protected.GET("/admin", authMw.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router
}

func TestRequireAuth(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key", 15*time.Minute, 7*24*time.Hour)
	router := newAuthTestRouter(t, jwtService)
	staffID := uuid.New()

	t.Run("bearer token passes", func(t *testing.T) {
		token, err := jwtService.GenerateAccessToken(staffID, staff.RoleOperator)
		require.NoError(t, err)

		w := apptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, token)

		var got struct {
			StaffID string `json:"staff_id"`
		}
		apptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, staffID.String(), got.StaffID)
	})

	t.Run("cookie token passes", func(t *testing.T) {
		token, err := jwtService.GenerateAccessToken(staffID, staff.RoleOperator)
		require.NoError(t, err)

		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: token}}
		w := apptest.PerformRequestWithCookies(t, router, http.MethodGet, "/protected", nil, cookies, "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token returns 401", func(t *testing.T) {
		w := apptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, "")
		apptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})

	t.Run("garbage token returns 401", func(t *testing.T) {
		w := apptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, "not-a-jwt")
		apptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		token, err := jwtService.GenerateRefreshToken(staffID, staff.RoleAdmin)
		require.NoError(t, err)

		w := apptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, token)
		apptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("token signed with another key returns 401", func(t *testing.T) {
		other := jwt.NewService("different-secret", 15*time.Minute, time.Hour)
		token, err := other.GenerateAccessToken(staffID, staff.RoleAdmin)
		require.NoError(t, err)

		w := apptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, token)
		apptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestRequireAdmin(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key", 15*time.Minute, 7*24*time.Hour)
	router := newAuthTestRouter(t, jwtService)

	t.Run("admin role passes", func(t *testing.T) {
		token, err := jwtService.GenerateAccessToken(uuid.New(), staff.RoleAdmin)
		require.NoError(t, err)

		w := apptest.PerformRequest(t, router, http.MethodGet, "/protected/admin", nil, token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("operator role returns 403", func(t *testing.T) {
		token, err := jwtService.GenerateAccessToken(uuid.New(), staff.RoleOperator)
		require.NoError(t, err)

		w := apptest.PerformRequest(t, router, http.MethodGet, "/protected/admin", nil, token)
		apptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})
}
