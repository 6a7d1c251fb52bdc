package gateway

import (
	"context"
	"fmt"

	"hospital-portal/internal/domain/entity"
	"hospital-portal/internal/domain/gateway"
	"hospital-portal/internal/infrastructure/upstream"
)

type deliveriesGateway struct {
	client *upstream.Client
}

func NewDeliveriesGateway(client *upstream.Client) gateway.DeliveriesGateway {
	return &deliveriesGateway{client: client}
}

func (g *deliveriesGateway) MyAddresses(ctx context.Context, bearer string) ([]entity.DeliveryAddress, error) {
	var addresses []entity.DeliveryAddress
	if err := g.client.Get(ctx, "/patients/deliveries/my-delivery-addresses", bearer, nil, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

func (g *deliveriesGateway) CreateAddress(ctx context.Context, bearer string, draft *gateway.AddressDraft) (*entity.DeliveryAddress, error) {
	var address entity.DeliveryAddress
	if err := g.client.Post(ctx, "/patients/deliveries", bearer, draft, &address); err != nil {
		return nil, err
	}
	return &address, nil
}

func (g *deliveriesGateway) UpdateAddress(ctx context.Context, bearer string, addressID int, draft *gateway.AddressDraft) (*entity.DeliveryAddress, error) {
	var address entity.DeliveryAddress
	path := fmt.Sprintf("/patients/deliveries/%d", addressID)
	if err := g.client.Patch(ctx, path, bearer, draft, &address); err != nil {
		return nil, err
	}
	return &address, nil
}

func (g *deliveriesGateway) DeleteAddress(ctx context.Context, bearer string, addressID int) error {
	return g.client.Delete(ctx, fmt.Sprintf("/patients/deliveries/%d", addressID), bearer, nil)
}

func (g *deliveriesGateway) AllDeliveries(ctx context.Context, bearer string) ([]entity.Delivery, error) {
	var deliveries []entity.Delivery
	if err := g.client.Get(ctx, "/deliveries", bearer, nil, &deliveries); err != nil {
		return nil, err
	}
	return deliveries, nil
}

func (g *deliveriesGateway) UpdateDeliveryStatus(ctx context.Context, bearer, deliveryID, status string) error {
	payload := struct {
		Description string `json:"description"`
		Status      string `json:"status"`
	}{Description: "-", Status: status}

	return g.client.Patch(ctx, "/deliveries/"+deliveryID+"/status", bearer, payload, nil)
}
