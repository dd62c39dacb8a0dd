//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"salon-booking/internal/infra/db"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/jwt"
	"salon-booking/internal/pkg/password"
	"salon-booking/internal/usecase/commands"
	"salon-booking/tests/common/builder"
	commandsmock "salon-booking/tests/mock/commands"
	sharedmock "salon-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	reqdto "salon-booking/internal/handler/dto/request"
)

const testPassword = "password123"

type AuthCommandsTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	uow        *sharedmock.MockUnitOfWork
	staffRepo  *commandsmock.MockStaffRepository
	jwtService *jwt.Service
	commands   commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.staffRepo = commandsmock.NewMockStaffRepository(s.mockCtrl)
	s.jwtService = jwt.NewService("test-secret-key", 15*time.Minute, 7*24*time.Hour)
	s.commands = commands.NewAuthCommands(s.uow, s.staffRepo, s.jwtService, clock.NewMockClock(time.Now()))
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) expectDB() *gomock.Call {
	return s.uow.EXPECT().WithDB(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, db.DBTX) error) error {
			return fn(ctx, nil)
		})
}

func (s *AuthCommandsTestSuite) activeStaff() *builder.StaffBuilder {
	hash, err := password.HashPassword(testPassword)
	s.Require().NoError(err)

	b := builder.NewStaffBuilder()
	b.PasswordHash = hash
	return b
}

func (s *AuthCommandsTestSuite) TestLogin() {
	req := reqdto.LoginRequest{Email: "staff@example.com", Password: testPassword}

	s.Run("success issues both tokens and records the login", func() {
		staffRecord := s.activeStaff()

		s.expectDB().Times(2)
		s.staffRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), req.Email).
			Return(staffRecord.BuildAuthRecord(), nil)
		s.staffRepo.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), staffRecord.ID, gomock.Any()).
			Return(nil)

		pair, view, err := s.commands.Login(context.Background(), req)
		s.Require().NoError(err)
		s.NotEmpty(pair.AccessToken)
		s.NotEmpty(pair.RefreshToken)
		s.Equal(staffRecord.ID, view.ID)

		claims, err := s.jwtService.ValidateToken(pair.AccessToken)
		s.Require().NoError(err)
		s.Equal(jwt.TokenTypeAccess, claims.TokenType)
		s.Equal(staffRecord.ID, claims.StaffID)
	})

	s.Run("login succeeds even when bookkeeping fails", func() {
		staffRecord := s.activeStaff()

		s.expectDB().Times(2)
		s.staffRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), req.Email).
			Return(staffRecord.BuildAuthRecord(), nil)
		s.staffRepo.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), staffRecord.ID, gomock.Any()).
			Return(commands.ErrDatabaseOperationFailed)

		pair, _, err := s.commands.Login(context.Background(), req)
		s.Require().NoError(err)
		s.NotEmpty(pair.AccessToken)
	})

	s.Run("unknown email fails closed", func() {
		s.expectDB()
		s.staffRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), req.Email).
			Return(nil, notFoundErr())

		_, _, err := s.commands.Login(context.Background(), req)
		s.Require().ErrorIs(err, commands.ErrAuthenticationFailed)
	})

	s.Run("wrong password fails closed", func() {
		staffRecord := s.activeStaff()

		s.expectDB()
		s.staffRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(staffRecord.BuildAuthRecord(), nil)

		_, _, err := s.commands.Login(context.Background(),
			reqdto.LoginRequest{Email: req.Email, Password: "wrong-password"})
		s.Require().ErrorIs(err, commands.ErrAuthenticationFailed)
	})

	s.Run("deactivated account is rejected before the password check", func() {
		staffRecord := s.activeStaff().AsInactive()

		s.expectDB()
		s.staffRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(staffRecord.BuildAuthRecord(), nil)

		_, _, err := s.commands.Login(context.Background(), req)
		s.Require().ErrorIs(err, commands.ErrStaffDisabled)
	})
}

func (s *AuthCommandsTestSuite) TestRefreshToken() {
	s.Run("valid refresh token rotates the pair", func() {
		staffRecord := s.activeStaff()
		refresh, err := s.jwtService.GenerateRefreshToken(staffRecord.ID, "admin")
		s.Require().NoError(err)

		s.expectDB()
		s.staffRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), staffRecord.ID).
			Return(staffRecord.BuildAuthRecord(), nil)

		pair, err := s.commands.RefreshToken(context.Background(), refresh)
		s.Require().NoError(err)
		s.NotEmpty(pair.AccessToken)
		s.NotEmpty(pair.RefreshToken)
	})

	s.Run("access token cannot be used as a refresh token", func() {
		access, err := s.jwtService.GenerateAccessToken(uuid.New(), "admin")
		s.Require().NoError(err)

		_, err = s.commands.RefreshToken(context.Background(), access)
		s.Require().ErrorIs(err, commands.ErrInvalidRefreshToken)
	})

	s.Run("garbage token is rejected", func() {
		_, err := s.commands.RefreshToken(context.Background(), "not-a-jwt")
		s.Require().ErrorIs(err, commands.ErrInvalidRefreshToken)
	})

	s.Run("vanished staff invalidates the token", func() {
		id := uuid.New()
		refresh, err := s.jwtService.GenerateRefreshToken(id, "operator")
		s.Require().NoError(err)

		s.expectDB()
		s.staffRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), id).
			Return(nil, notFoundErr())

		_, err = s.commands.RefreshToken(context.Background(), refresh)
		s.Require().ErrorIs(err, commands.ErrInvalidRefreshToken)
	})

	s.Run("deactivated staff cannot refresh", func() {
		staffRecord := s.activeStaff().AsInactive()
		refresh, err := s.jwtService.GenerateRefreshToken(staffRecord.ID, "admin")
		s.Require().NoError(err)

		s.expectDB()
		s.staffRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), staffRecord.ID).
			Return(staffRecord.BuildAuthRecord(), nil)

		_, err = s.commands.RefreshToken(context.Background(), refresh)
		s.Require().ErrorIs(err, commands.ErrStaffDisabled)
	})
}
