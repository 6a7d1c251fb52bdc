package usecase

import (
	"context"
	"errors"
	"net/http"

	"hospital-portal/internal/converter"
	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/delivery/http/middleware"
	"hospital-portal/internal/domain/gateway"
	"hospital-portal/internal/infrastructure/upstream"
	"hospital-portal/pkg/token"

	"github.com/sirupsen/logrus"
)

var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("invalid hospital number or password")
)

type AuthUsecase interface {
	LoginPatient(ctx context.Context, req *dto.LoginRequest) ([]*http.Cookie, error)
	LoginDoctor(ctx context.Context, req *dto.LoginRequest) ([]*http.Cookie, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Logout(ctx context.Context) error
	Refresh(ctx context.Context) ([]*http.Cookie, error)
	Me(ctx context.Context) (*dto.SessionResponse, error)
}

type authUsecase struct {
	log         *logrus.Logger
	authGateway gateway.AuthGateway
	userGateway gateway.UsersGateway
}

func NewAuthUsecase(
	log *logrus.Logger,
	authGateway gateway.AuthGateway,
	userGateway gateway.UsersGateway,
) AuthUsecase {
	return &authUsecase{
		log:         log,
		authGateway: authGateway,
		userGateway: userGateway,
	}
}

// LoginPatient proxies the credential check; the users service issues tokens
// as cookies which the handler relays back to the browser.
func (u *authUsecase) LoginPatient(ctx context.Context, req *dto.LoginRequest) ([]*http.Cookie, error) {
	cookies, err := u.authGateway.LoginPatient(ctx, &gateway.LoginCredentials{
		HospitalNumber: req.HospitalNumber,
		Password:       req.Password,
	})
	if err != nil {
		if isAuthRejection(err) {
			return nil, ErrInvalidCredentials
		}
		u.log.Warnf("Patient login failed for hospital number %d: %+v", req.HospitalNumber, err)
		return nil, err
	}
	return cookies, nil
}

func (u *authUsecase) LoginDoctor(ctx context.Context, req *dto.LoginRequest) ([]*http.Cookie, error) {
	cookies, err := u.authGateway.LoginDoctor(ctx, &gateway.LoginCredentials{
		HospitalNumber: req.HospitalNumber,
		Password:       req.Password,
	})
	if err != nil {
		if isAuthRejection(err) {
			return nil, ErrInvalidCredentials
		}
		u.log.Warnf("Doctor login failed for hospital number %d: %+v", req.HospitalNumber, err)
		return nil, err
	}
	return cookies, nil
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	result, err := u.userGateway.Register(ctx, &gateway.Registration{
		CitizenID:   req.CitizenID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		u.log.Warnf("Registration failed: %+v", err)
		return nil, err
	}

	return &dto.RegisterResponse{HospitalNumber: result.HospitalNumber}, nil
}

func (u *authUsecase) Logout(ctx context.Context) error {
	bearer, ok := middleware.GetTokenFromContext(ctx)
	if !ok {
		return ErrNotAuthenticated
	}
	if err := u.authGateway.Logout(ctx, bearer); err != nil {
		u.log.Warnf("Logout failed: %+v", err)
		return err
	}
	return nil
}

// Refresh dispatches on the session role; patients and doctors refresh
// against different endpoints upstream.
func (u *authUsecase) Refresh(ctx context.Context) ([]*http.Cookie, error) {
	bearer, ok := middleware.GetTokenFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	role, _ := middleware.GetRoleFromContext(ctx)
	if role == token.RoleDoctor {
		return u.authGateway.RefreshDoctor(ctx, bearer)
	}
	return u.authGateway.RefreshPatient(ctx, bearer)
}

// Me combines the upstream session record with the locally decoded claims.
// The session endpoint carries a slim user record; the full profile comes
// from the users service and falls back to the slim one when that fails.
func (u *authUsecase) Me(ctx context.Context) (*dto.SessionResponse, error) {
	bearer, ok := middleware.GetTokenFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	subject, _ := middleware.GetSubjectFromContext(ctx)
	role, _ := middleware.GetRoleFromContext(ctx)

	response := &dto.SessionResponse{
		Subject: subject,
		Role:    string(role),
	}

	info, err := u.authGateway.Me(ctx, bearer)
	if err != nil {
		u.log.Warnf("Session lookup failed for subject %s: %+v", subject, err)
		return nil, err
	}

	user := info.Me
	if profile, err := u.userGateway.GetUser(ctx, bearer, info.Me.ID); err != nil {
		u.log.Warnf("Profile lookup failed for user %d: %+v", info.Me.ID, err)
	} else {
		user = *profile
	}
	response.User = converter.UserToResponse(&user)

	return response, nil
}

// isAuthRejection reports whether the users service rejected the credentials
// themselves, as opposed to failing outright.
func isAuthRejection(err error) bool {
	return upstream.IsStatus(err, http.StatusUnauthorized) ||
		upstream.IsStatus(err, http.StatusBadRequest) ||
		upstream.IsStatus(err, http.StatusNotFound)
}
