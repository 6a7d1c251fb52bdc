package gateway

import (
	"context"
	"fmt"

	"hospital-portal/internal/domain/entity"
	"hospital-portal/internal/domain/gateway"
	"hospital-portal/internal/infrastructure/upstream"
)

type ordersGateway struct {
	client *upstream.Client
}

func NewOrdersGateway(client *upstream.Client) gateway.OrdersGateway {
	return &ordersGateway{client: client}
}

func (g *ordersGateway) CreateCart(ctx context.Context, bearer string, draft *gateway.CartDraft) (*gateway.CreateCartResult, error) {
	var result gateway.CreateCartResult
	if err := g.client.Post(ctx, "/patients/carts", bearer, draft, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (g *ordersGateway) GetCart(ctx context.Context, bearer string, cartID int) (*gateway.CreateCartResult, error) {
	var result gateway.CreateCartResult
	if err := g.client.Get(ctx, fmt.Sprintf("/patients/carts/%d", cartID), bearer, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (g *ordersGateway) MyOrders(ctx context.Context, bearer string) ([]entity.OrderDetail, error) {
	var orders []entity.OrderDetail
	if err := g.client.Get(ctx, "/patients/orders/my-orders", bearer, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (g *ordersGateway) CreateOrder(ctx context.Context, bearer string, cartID, deliveryAddressID int) (*entity.Order, error) {
	payload := struct {
		CartID            int `json:"cart_id"`
		DeliveryAddressID int `json:"delivery_address_id"`
	}{CartID: cartID, DeliveryAddressID: deliveryAddressID}

	var order entity.Order
	if err := g.client.Post(ctx, "/patients/orders", bearer, payload, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (g *ordersGateway) CreatePayment(ctx context.Context, bearer string, orderID int, provider string) (*gateway.PaymentResult, error) {
	payload := struct {
		Provider string `json:"provider"`
	}{Provider: provider}

	var result gateway.PaymentResult
	path := fmt.Sprintf("/patients/orders/%d/payment", orderID)
	if err := g.client.Post(ctx, path, bearer, payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (g *ordersGateway) MockPay(ctx context.Context, bearer, paymentID string) (*gateway.PaymentResult, error) {
	var result gateway.PaymentResult
	if err := g.client.Post(ctx, "/payments/"+paymentID+"/mock-pay", bearer, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
