package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"hospital-portal/internal/domain/entity"
	"hospital-portal/internal/domain/gateway"
	"hospital-portal/pkg/token"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOrdersGateway records payment calls and serves canned orders.
type fakeOrdersGateway struct {
	orders        []entity.OrderDetail
	createCartErr error
	cart          *gateway.CreateCartResult
	existingCart  *gateway.CreateCartResult
	getCartID     int
	createdOrder  *entity.Order
	createOrder   []int
	payments      []string
	mockPaid      []string
}

func (f *fakeOrdersGateway) CreateCart(ctx context.Context, bearer string, draft *gateway.CartDraft) (*gateway.CreateCartResult, error) {
	if f.createCartErr != nil {
		return nil, f.createCartErr
	}
	return f.cart, nil
}

func (f *fakeOrdersGateway) GetCart(ctx context.Context, bearer string, cartID int) (*gateway.CreateCartResult, error) {
	f.getCartID = cartID
	if f.existingCart == nil {
		return nil, errors.New("no cart")
	}
	return f.existingCart, nil
}

func (f *fakeOrdersGateway) MyOrders(ctx context.Context, bearer string) ([]entity.OrderDetail, error) {
	return f.orders, nil
}

func (f *fakeOrdersGateway) CreateOrder(ctx context.Context, bearer string, cartID, deliveryAddressID int) (*entity.Order, error) {
	f.createOrder = append(f.createOrder, cartID, deliveryAddressID)
	return f.createdOrder, nil
}

func (f *fakeOrdersGateway) CreatePayment(ctx context.Context, bearer string, orderID int, provider string) (*gateway.PaymentResult, error) {
	f.payments = append(f.payments, provider)
	return &gateway.PaymentResult{
		Payment:      entity.Payment{ID: "pay-1", OrderID: orderID, Status: "PENDING", Provider: provider},
		UpdatedOrder: entity.Order{ID: orderID, Status: entity.OrderStatusPaymentPending},
	}, nil
}

func (f *fakeOrdersGateway) MockPay(ctx context.Context, bearer, paymentID string) (*gateway.PaymentResult, error) {
	f.mockPaid = append(f.mockPaid, paymentID)
	return &gateway.PaymentResult{
		UpdatedPayment: entity.Payment{ID: paymentID, Status: "PAID"},
		UpdatedOrder:   entity.Order{Status: entity.OrderStatusDeliveryPending},
	}, nil
}

// fakeInventoryGateway fails lookups whose id list contains a poisoned id.
type fakeInventoryGateway struct {
	products  []entity.Product
	failOnID  string
	callCount int
}

func (f *fakeInventoryGateway) Products(ctx context.Context, bearer, ids string) ([]entity.Product, error) {
	f.callCount++
	if f.failOnID != "" && strings.Contains(ids, f.failOnID) {
		return nil, errors.New("inventory unavailable")
	}
	return f.products, nil
}

type fakeDeliveriesGateway struct {
	deliveries    []entity.Delivery
	statusUpdates []string
}

func (f *fakeDeliveriesGateway) MyAddresses(ctx context.Context, bearer string) ([]entity.DeliveryAddress, error) {
	return nil, nil
}

func (f *fakeDeliveriesGateway) CreateAddress(ctx context.Context, bearer string, draft *gateway.AddressDraft) (*entity.DeliveryAddress, error) {
	return nil, nil
}

func (f *fakeDeliveriesGateway) UpdateAddress(ctx context.Context, bearer string, addressID int, draft *gateway.AddressDraft) (*entity.DeliveryAddress, error) {
	return nil, nil
}

func (f *fakeDeliveriesGateway) DeleteAddress(ctx context.Context, bearer string, addressID int) error {
	return nil
}

func (f *fakeDeliveriesGateway) AllDeliveries(ctx context.Context, bearer string) ([]entity.Delivery, error) {
	return f.deliveries, nil
}

func (f *fakeDeliveriesGateway) UpdateDeliveryStatus(ctx context.Context, bearer, deliveryID, status string) error {
	f.statusUpdates = append(f.statusUpdates, deliveryID+":"+status)
	return nil
}

func TestMyOrdersGroupsByTab(t *testing.T) {
	orders := &fakeOrdersGateway{orders: []entity.OrderDetail{
		{Order: entity.Order{ID: 1, Status: entity.OrderStatusReserved}},
		{Order: entity.Order{ID: 2, Status: entity.OrderStatusDeliveryPending}},
		{Order: entity.Order{ID: 3, Status: entity.OrderStatusCompleted}},
		{Order: entity.Order{ID: 4, Status: "UNKNOWN"}},
	}}
	u := NewOrderUsecase(logrus.New(), orders, &fakeInventoryGateway{}, &fakeDeliveriesGateway{})

	board, err := u.MyOrders(authedContext("42", token.RolePatient))
	require.NoError(t, err)

	assert.Equal(t, 4, board.Total)
	require.Len(t, board.Pay, 2)
	assert.Equal(t, 1, board.Pay[0].Order.ID)
	assert.Equal(t, 4, board.Pay[1].Order.ID)
	require.Len(t, board.Prepare, 1)
	assert.Equal(t, "prepare", board.Prepare[0].Tab)
	require.Len(t, board.Completed, 1)
}

func TestMyOrdersEnrichmentDegradesPerOrder(t *testing.T) {
	orders := &fakeOrdersGateway{orders: []entity.OrderDetail{
		{
			Order:      entity.Order{ID: 1, Status: entity.OrderStatusReserved},
			OrderItems: []entity.OrderItem{{ProductID: 5, Quantity: 2}},
		},
		{
			Order:      entity.Order{ID: 2, Status: entity.OrderStatusReserved},
			OrderItems: []entity.OrderItem{{ProductID: 99, Quantity: 1}},
		},
	}}
	inventory := &fakeInventoryGateway{
		products: []entity.Product{{ID: 5, EnName: "paracetamol", UnitPrice: 12.5}},
		failOnID: "99",
	}
	u := NewOrderUsecase(logrus.New(), orders, inventory, &fakeDeliveriesGateway{})

	board, err := u.MyOrders(authedContext("42", token.RolePatient))
	require.NoError(t, err)

	// One inventory call per order.
	assert.Equal(t, 2, inventory.callCount)

	require.Len(t, board.Pay, 2)
	byID := map[int][]mappedItem{}
	for _, detail := range board.Pay {
		for _, item := range detail.OrderItems {
			byID[detail.Order.ID] = append(byID[detail.Order.ID], mappedItem{item.ProductID, item.Product != nil})
		}
	}
	assert.Equal(t, []mappedItem{{5, true}}, byID[1])
	assert.Equal(t, []mappedItem{{99, false}}, byID[2])
}

type mappedItem struct {
	productID int
	enriched  bool
}

func TestConfirmPaymentCreatesThenMockPays(t *testing.T) {
	orders := &fakeOrdersGateway{}
	u := NewOrderUsecase(logrus.New(), orders, &fakeInventoryGateway{}, &fakeDeliveriesGateway{})

	payment, err := u.ConfirmPayment(authedContext("42", token.RolePatient), 10)
	require.NoError(t, err)

	assert.Equal(t, []string{"qr_payment"}, orders.payments)
	assert.Equal(t, []string{"pay-1"}, orders.mockPaid)
	assert.Equal(t, "PAID", payment.Status)
	assert.Equal(t, entity.OrderStatusDeliveryPending, payment.Order.Status)
}

func TestDeliveryBoardGroupsAndConfirms(t *testing.T) {
	deliveries := &fakeDeliveriesGateway{deliveries: []entity.Delivery{
		{ID: "d1", OrderID: 1, Status: entity.OrderStatusDeliveryPending, Order: &entity.DeliveryOrder{
			OrderItems: []entity.OrderItem{{ProductID: 5, Quantity: 1}},
		}},
		{ID: "d2", OrderID: 2, Status: entity.OrderStatusDelivered},
	}}
	inventory := &fakeInventoryGateway{products: []entity.Product{{ID: 5, EnName: "paracetamol"}}}
	u := NewOrderUsecase(logrus.New(), &fakeOrdersGateway{}, inventory, deliveries)
	ctx := authedContext("7", token.RoleDoctor)

	board, err := u.DeliveryBoard(ctx)
	require.NoError(t, err)

	require.Len(t, board.Prepare, 1)
	assert.Equal(t, "d1", board.Prepare[0].ID)
	require.Len(t, board.Prepare[0].OrderItems, 1)
	require.NotNil(t, board.Prepare[0].OrderItems[0].Product)
	require.Len(t, board.Completed, 1)

	require.NoError(t, u.ConfirmDelivery(ctx, "d1"))
	assert.Equal(t, []string{"d1:DELIVERED"}, deliveries.statusUpdates)
}
