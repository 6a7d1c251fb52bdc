package usecase

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/domain/entity"
	"hospital-portal/internal/domain/gateway"
	"hospital-portal/internal/infrastructure/upstream"
	"hospital-portal/internal/service"
	"hospital-portal/pkg/token"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartFixture(t *testing.T, orders *fakeOrdersGateway) (CartUsecase, *fakeInventoryGateway) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	log := logrus.New()

	inventory := &fakeInventoryGateway{products: []entity.Product{
		{ID: 1, EnName: "paracetamol", UnitPrice: 100},
		{ID: 2, EnName: "ibuprofen", UnitPrice: 49.50},
	}}
	store := service.NewCartStore(client, log, time.Minute)
	return NewCartUsecase(log, inventory, orders, store), inventory
}

func TestCartAddAndTotals(t *testing.T) {
	u, _ := newCartFixture(t, &fakeOrdersGateway{})
	ctx := authedContext("42", token.RolePatient)

	cart, err := u.AddItem(ctx, &dto.AddCartItemRequest{ProductID: 1})
	require.NoError(t, err)
	cart, err = u.AddItem(ctx, &dto.AddCartItemRequest{ProductID: 1})
	require.NoError(t, err)
	cart, err = u.AddItem(ctx, &dto.AddCartItemRequest{ProductID: 2})
	require.NoError(t, err)

	require.Len(t, cart.Items, 2)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, "249.5", cart.Subtotal)
	assert.Equal(t, "17", cart.VAT)
	assert.Equal(t, "266.5", cart.Total)
}

func TestCartAddUnknownProduct(t *testing.T) {
	u, _ := newCartFixture(t, &fakeOrdersGateway{})
	ctx := authedContext("42", token.RolePatient)

	_, err := u.AddItem(ctx, &dto.AddCartItemRequest{ProductID: 404})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCartSurvivesRequests(t *testing.T) {
	u, _ := newCartFixture(t, &fakeOrdersGateway{})
	ctx := authedContext("42", token.RolePatient)

	_, err := u.AddItem(ctx, &dto.AddCartItemRequest{ProductID: 1})
	require.NoError(t, err)

	cart, err := u.Get(ctx)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)

	// Another patient sees an empty cart.
	other, err := u.Get(authedContext("43", token.RolePatient))
	require.NoError(t, err)
	assert.Empty(t, other.Items)
}

func TestCheckoutValidatesLocally(t *testing.T) {
	orders := &fakeOrdersGateway{}
	u, _ := newCartFixture(t, orders)
	ctx := authedContext("42", token.RolePatient)

	// Empty cart is rejected without touching the orders service.
	_, err := u.Checkout(ctx)
	assert.ErrorIs(t, err, ErrCartEmpty)

	// Delivery without a selected address is rejected too.
	_, err = u.AddItem(ctx, &dto.AddCartItemRequest{ProductID: 1})
	require.NoError(t, err)
	_, err = u.Checkout(ctx)
	assert.ErrorIs(t, err, ErrNoAddressSelected)

	assert.Empty(t, orders.createOrder)
}

func TestCheckoutCreatesCartAndOrder(t *testing.T) {
	orders := &fakeOrdersGateway{
		cart:         &gateway.CreateCartResult{Cart: gateway.UpstreamCart{ID: 55}},
		createdOrder: &entity.Order{ID: 9, CartID: 55, Status: entity.OrderStatusPending},
	}
	u, _ := newCartFixture(t, orders)
	ctx := authedContext("42", token.RolePatient)

	_, err := u.AddItem(ctx, &dto.AddCartItemRequest{ProductID: 1})
	require.NoError(t, err)
	_, err = u.SelectAddress(ctx, &dto.SelectAddressRequest{AddressID: 3})
	require.NoError(t, err)

	result, err := u.Checkout(ctx)
	require.NoError(t, err)

	assert.Equal(t, 9, result.Order.ID)
	assert.Equal(t, []int{55, 3}, orders.createOrder)

	// The local cart is cleared after checkout.
	cart, err := u.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCheckoutPickupNeedsNoAddress(t *testing.T) {
	orders := &fakeOrdersGateway{
		cart:         &gateway.CreateCartResult{Cart: gateway.UpstreamCart{ID: 55}},
		createdOrder: &entity.Order{ID: 9, Status: entity.OrderStatusPending},
	}
	u, _ := newCartFixture(t, orders)
	ctx := authedContext("42", token.RolePatient)

	_, err := u.AddItem(ctx, &dto.AddCartItemRequest{ProductID: 1})
	require.NoError(t, err)
	_, err = u.SetDeliveryMethod(ctx, &dto.SetDeliveryMethodRequest{DeliveryMethod: "pickup"})
	require.NoError(t, err)

	_, err = u.Checkout(ctx)
	require.NoError(t, err)
}

func TestCheckoutFallsBackToExistingCartOnConflict(t *testing.T) {
	orders := &fakeOrdersGateway{
		createCartErr: &upstream.Error{
			StatusCode: http.StatusConflict,
			Message:    "cart already exists",
			Data:       json.RawMessage(`{"cart":{"id":77}}`),
		},
		existingCart: &gateway.CreateCartResult{Cart: gateway.UpstreamCart{ID: 77}},
		createdOrder: &entity.Order{ID: 9, CartID: 77, Status: entity.OrderStatusPending},
	}
	u, _ := newCartFixture(t, orders)
	ctx := authedContext("42", token.RolePatient)

	_, err := u.AddItem(ctx, &dto.AddCartItemRequest{ProductID: 1})
	require.NoError(t, err)
	_, err = u.SelectAddress(ctx, &dto.SelectAddressRequest{AddressID: 3})
	require.NoError(t, err)

	result, err := u.Checkout(ctx)
	require.NoError(t, err)

	assert.Equal(t, 9, result.Order.ID)
	assert.Equal(t, 77, orders.getCartID)
	assert.Equal(t, []int{77, 3}, orders.createOrder)
}

func TestCheckoutConflictWithoutCartFails(t *testing.T) {
	orders := &fakeOrdersGateway{
		createCartErr: &upstream.Error{StatusCode: http.StatusConflict, Message: "cart already exists"},
	}
	u, _ := newCartFixture(t, orders)
	ctx := authedContext("42", token.RolePatient)

	_, err := u.AddItem(ctx, &dto.AddCartItemRequest{ProductID: 1})
	require.NoError(t, err)
	_, err = u.SelectAddress(ctx, &dto.SelectAddressRequest{AddressID: 3})
	require.NoError(t, err)

	// No cart in the conflict payload means nothing to fall back to.
	_, err = u.Checkout(ctx)
	assert.True(t, upstream.IsStatus(err, http.StatusConflict))
	assert.Zero(t, orders.getCartID)
	assert.Empty(t, orders.createOrder)
}
