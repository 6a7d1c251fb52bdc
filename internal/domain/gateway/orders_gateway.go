package gateway

import (
	"context"

	"hospital-portal/internal/domain/entity"
)

// CartDraft is the line-item list submitted to create an upstream cart.
type CartDraft struct {
	CartItems []CartDraftItem `json:"cart_items"`
}

type CartDraftItem struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// UpstreamCart is the orders service's cart record.
type UpstreamCart struct {
	ID        int `json:"id"`
	PatientID int `json:"patient_id"`
}

// CreateCartResult pairs the created cart with its echoed items.
type CreateCartResult struct {
	Cart      UpstreamCart       `json:"cart"`
	CartItems []entity.OrderItem `json:"cart_items"`
}

// PaymentResult is returned by payment creation and mock confirmation; the
// orders service reports the payment (under "payment" on creation,
// "updated_payment" on confirmation) and the order it advanced.
type PaymentResult struct {
	Payment        entity.Payment `json:"payment"`
	UpdatedPayment entity.Payment `json:"updated_payment"`
	UpdatedOrder   entity.Order   `json:"updated_order"`
}

// OrdersGateway fronts the orders service: carts, orders and payments.
type OrdersGateway interface {
	CreateCart(ctx context.Context, bearer string, draft *CartDraft) (*CreateCartResult, error)
	GetCart(ctx context.Context, bearer string, cartID int) (*CreateCartResult, error)
	MyOrders(ctx context.Context, bearer string) ([]entity.OrderDetail, error)
	CreateOrder(ctx context.Context, bearer string, cartID, deliveryAddressID int) (*entity.Order, error)
	CreatePayment(ctx context.Context, bearer string, orderID int, provider string) (*PaymentResult, error)
	MockPay(ctx context.Context, bearer, paymentID string) (*PaymentResult, error)
}
