//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"salon-booking/internal/handler/api"
	"salon-booking/internal/handler/dto/request"
	"salon-booking/internal/handler/dto/response"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/cookie"
	"salon-booking/internal/pkg/jwt"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"
	"salon-booking/tests/common/builder"
	apptest "salon-booking/tests/common/httptest"
	commandsmock "salon-booking/tests/mock/commands"
	queriesmock "salon-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	authCommands *commandsmock.MockAuthCommands
	staffQueries *queriesmock.MockStaffQueries
	staff        *builder.StaffBuilder
	router       *gin.Engine
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.authCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.staffQueries = queriesmock.NewMockStaffQueries(s.mockCtrl)
	s.staff = builder.NewStaffBuilder()

	jwtService := jwt.NewService("test-secret-key", 15*time.Minute, 7*24*time.Hour)
	cookieCfg := config.CookieConfig{SameSite: "Lax"}
	handler := api.NewAuthHandler(s.authCommands, s.staffQueries, jwtService, cookieCfg)

	s.router = gin.New()
	s.router.POST("/api/auth/login", handler.Login)
	s.router.POST("/api/auth/refresh", handler.Refresh)
	s.router.POST("/api/auth/logout", handler.Logout)
	s.router.GET("/api/auth/me", func(c *gin.Context) {
		// stand-in for RequireAuth: inject the authenticated identity
		c.Set("staff_id", s.staff.ID)
		c.Next()
	}, handler.Me)
	s.router.GET("/api/auth/me-unauthenticated", handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	loginReq := request.LoginRequest{Email: "staff@example.com", Password: "password123"}

	s.Run("success returns tokens and sets cookies", func() {
		pair := &commands.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"}
		s.authCommands.EXPECT().Login(gomock.Any(), loginReq).
			Return(pair, s.staff.BuildView(), nil)

		w := apptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/login", loginReq, "")

		var got response.LoginResponse
		apptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Equal("access-token", got.AccessToken)
		s.Require().NotNil(got.Staff)
		s.Equal(s.staff.Email, got.Staff.Email)

		accessCookie := apptest.ExtractCookie(w, cookie.AccessTokenCookieName)
		s.Require().NotNil(accessCookie)
		s.Equal("access-token", accessCookie.Value)
		s.True(accessCookie.HttpOnly)

		refreshCookie := apptest.ExtractCookie(w, cookie.RefreshTokenCookieName)
		s.Require().NotNil(refreshCookie)
		s.Equal("refresh-token", refreshCookie.Value)
	})

	s.Run("wrong credentials return 401", func() {
		s.authCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, nil, commands.ErrAuthenticationFailed)

		w := apptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/login", loginReq, "")
		apptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("disabled account returns 403", func() {
		s.authCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, nil, commands.ErrStaffDisabled)

		w := apptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/login", loginReq, "")
		apptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Account is inactive")
	})

	s.Run("malformed body returns 400", func() {
		w := apptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/login",
			gin.H{"email": "not-an-email", "password": "short"}, "")
		apptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *AuthHandlerTestSuite) TestRefresh() {
	s.Run("cookie token rotates the pair", func() {
		pair := &commands.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}
		s.authCommands.EXPECT().RefreshToken(gomock.Any(), "old-refresh").Return(pair, nil)

		cookies := []*http.Cookie{{Name: cookie.RefreshTokenCookieName, Value: "old-refresh"}}
		w := apptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/api/auth/refresh", nil, cookies, "")

		var got response.RefreshResponse
		apptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Equal("new-access", got.AccessToken)

		refreshCookie := apptest.ExtractCookie(w, cookie.RefreshTokenCookieName)
		s.Require().NotNil(refreshCookie)
		s.Equal("new-refresh", refreshCookie.Value)
	})

	s.Run("body token works without a cookie", func() {
		pair := &commands.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}
		s.authCommands.EXPECT().RefreshToken(gomock.Any(), "body-refresh").Return(pair, nil)

		w := apptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/refresh",
			request.RefreshRequest{RefreshToken: "body-refresh"}, "")

		var got response.RefreshResponse
		apptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Equal("new-access", got.AccessToken)
	})

	s.Run("missing token returns 401", func() {
		w := apptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/refresh", nil, "")
		apptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Refresh token required")
	})

	s.Run("invalid token returns 401", func() {
		s.authCommands.EXPECT().RefreshToken(gomock.Any(), "stale").
			Return(nil, commands.ErrInvalidRefreshToken)

		w := apptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/refresh",
			request.RefreshRequest{RefreshToken: "stale"}, "")
		apptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired refresh token")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("clears both token cookies", func() {
		w := apptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/logout", nil, "")

		s.Equal(http.StatusNoContent, w.Code)

		accessCookie := apptest.ExtractCookie(w, cookie.AccessTokenCookieName)
		s.Require().NotNil(accessCookie)
		s.Empty(accessCookie.Value)
		s.Negative(accessCookie.MaxAge)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("returns the authenticated staff", func() {
		s.staffQueries.EXPECT().GetCurrentStaff(gomock.Any(), s.staff.ID).
			Return(s.staff.BuildView(), nil)

		w := apptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/auth/me", nil, "")

		var got queries.AuthorizedStaffView
		apptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Equal(s.staff.ID, got.ID)
		s.Equal(s.staff.Email, got.Email)
	})

	s.Run("staff vanished returns 404", func() {
		s.staffQueries.EXPECT().GetCurrentStaff(gomock.Any(), s.staff.ID).
			Return(nil, queries.ErrStaffNotFound)

		w := apptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/auth/me", nil, "")
		apptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Staff not found")
	})

	s.Run("deactivated staff returns 403", func() {
		s.staffQueries.EXPECT().GetCurrentStaff(gomock.Any(), s.staff.ID).
			Return(nil, queries.ErrStaffInactive)

		w := apptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/auth/me", nil, "")
		apptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Account is inactive")
	})

	s.Run("no identity in context returns 401", func() {
		w := apptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/auth/me-unauthenticated", nil, "")
		apptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Not authenticated")
	})
}
