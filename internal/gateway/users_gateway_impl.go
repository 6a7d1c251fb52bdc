package gateway

import (
	"context"
	"fmt"

	"hospital-portal/internal/domain/entity"
	"hospital-portal/internal/domain/gateway"
	"hospital-portal/internal/infrastructure/upstream"
)

type usersGateway struct {
	client *upstream.Client
}

func NewUsersGateway(client *upstream.Client) gateway.UsersGateway {
	return &usersGateway{client: client}
}

func (g *usersGateway) Register(ctx context.Context, registration *gateway.Registration) (*gateway.RegistrationResult, error) {
	var result gateway.RegistrationResult
	if err := g.client.Post(ctx, "/users", "", registration, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (g *usersGateway) GetUser(ctx context.Context, bearer string, userID int) (*entity.User, error) {
	var user entity.User
	if err := g.client.Get(ctx, fmt.Sprintf("/users/%d", userID), bearer, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
