package commands

import (
	"context"

	"salon-booking/internal/domain/staff"
	"salon-booking/internal/handler/dto/request"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/jwt"
	"salon-booking/internal/pkg/password"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"
)

var (
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrInvalidRefreshToken  = errs.New("invalid refresh token")
	ErrStaffDisabled        = errs.New("staff account disabled")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Login(ctx context.Context, req request.LoginRequest) (*TokenPair, *queries.AuthorizedStaffView, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	staffRepo  StaffRepository
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, staffRepo StaffRepository, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		staffRepo:  staffRepo,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (c *authCommandsImpl) Login(ctx context.Context, req request.LoginRequest) (*TokenPair, *queries.AuthorizedStaffView, error) {
	creds, err := req.ToDomain()
	if err != nil {
		return nil, nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	var record *StaffAuthRecord
	err = c.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		found, err := c.staffRepo.FindByEmail(ctx, dbtx, creds.Email().Value())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrAuthenticationFailed
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		record = found
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	if !record.IsActive {
		return nil, nil, ErrStaffDisabled
	}
	if err := password.ComparePassword(record.PasswordHash, creds.Password().Value()); err != nil {
		return nil, nil, ErrAuthenticationFailed
	}

	pair, err := c.issueTokens(record)
	if err != nil {
		return nil, nil, err
	}

	// Last-login bookkeeping must not fail the login.
	_ = c.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		return c.staffRepo.UpdateLastLogin(ctx, dbtx, record.ID, c.clock.Now())
	})

	view := &queries.AuthorizedStaffView{
		ID:       record.ID,
		Email:    record.Email,
		Role:     record.Role,
		IsActive: record.IsActive,
	}
	return pair, view, nil
}

// RefreshToken rotates both tokens, re-checking that the staff account
// still exists and is active.
func (c *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := c.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRefreshToken)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrInvalidRefreshToken
	}

	var record *StaffAuthRecord
	err = c.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		found, err := c.staffRepo.FindByID(ctx, dbtx, claims.StaffID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrInvalidRefreshToken
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		record = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !record.IsActive {
		return nil, ErrStaffDisabled
	}

	return c.issueTokens(record)
}

func (c *authCommandsImpl) issueTokens(record *StaffAuthRecord) (*TokenPair, error) {
	role, err := staff.NewRole(record.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	access, err := c.jwtService.GenerateAccessToken(record.ID, role)
	if err != nil {
		return nil, errs.Wrap(err, "generate access token")
	}
	refresh, err := c.jwtService.GenerateRefreshToken(record.ID, role)
	if err != nil {
		return nil, errs.Wrap(err, "generate refresh token")
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
