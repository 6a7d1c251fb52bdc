package gateway

import (
	"context"
	"net/url"

	"hospital-portal/internal/domain/entity"
	"hospital-portal/internal/domain/gateway"
	"hospital-portal/internal/infrastructure/upstream"
)

type inventoryGateway struct {
	client *upstream.Client
}

func NewInventoryGateway(client *upstream.Client) gateway.InventoryGateway {
	return &inventoryGateway{client: client}
}

func (g *inventoryGateway) Products(ctx context.Context, bearer, ids string) ([]entity.Product, error) {
	var query url.Values
	if ids != "" {
		query = url.Values{"ids": []string{ids}}
	}

	var products []entity.Product
	if err := g.client.Get(ctx, "/products", bearer, query, &products); err != nil {
		return nil, err
	}
	return products, nil
}
