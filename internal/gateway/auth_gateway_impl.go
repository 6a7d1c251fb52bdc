package gateway

import (
	"context"
	"net/http"

	"hospital-portal/internal/domain/gateway"
	"hospital-portal/internal/infrastructure/upstream"
)

type authGateway struct {
	client *upstream.Client
}

func NewAuthGateway(client *upstream.Client) gateway.AuthGateway {
	return &authGateway{client: client}
}

func (g *authGateway) LoginPatient(ctx context.Context, credentials *gateway.LoginCredentials) ([]*http.Cookie, error) {
	return g.client.PostForCookies(ctx, "/authentication/patients/login", "", credentials, nil)
}

func (g *authGateway) LoginDoctor(ctx context.Context, credentials *gateway.LoginCredentials) ([]*http.Cookie, error) {
	return g.client.PostForCookies(ctx, "/authentication/doctors/login", "", credentials, nil)
}

func (g *authGateway) Logout(ctx context.Context, bearer string) error {
	return g.client.Delete(ctx, "/authentication/logout", bearer, nil)
}

func (g *authGateway) RefreshPatient(ctx context.Context, bearer string) ([]*http.Cookie, error) {
	return g.client.PostForCookies(ctx, "/authentication/patients/refresh-token", bearer, nil, nil)
}

func (g *authGateway) RefreshDoctor(ctx context.Context, bearer string) ([]*http.Cookie, error) {
	return g.client.PostForCookies(ctx, "/authentication/doctors/refresh-token", bearer, nil, nil)
}

func (g *authGateway) Me(ctx context.Context, bearer string) (*gateway.SessionInfo, error) {
	var info gateway.SessionInfo
	if err := g.client.Get(ctx, "/authentication/me", bearer, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}
