package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"hospital-portal/internal/converter"
	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/domain/entity"
	"hospital-portal/internal/domain/gateway"
	"hospital-portal/internal/infrastructure/upstream"
	"hospital-portal/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrCartEmpty         = errors.New("cart is empty")
	ErrNoAddressSelected = errors.New("delivery requires a selected address")
)

type CartUsecase interface {
	Get(ctx context.Context) (*dto.CartResponse, error)
	AddItem(ctx context.Context, req *dto.AddCartItemRequest) (*dto.CartResponse, error)
	RemoveItem(ctx context.Context, productID int) (*dto.CartResponse, error)
	UpdateQuantity(ctx context.Context, req *dto.UpdateCartItemRequest) (*dto.CartResponse, error)
	SetDeliveryMethod(ctx context.Context, req *dto.SetDeliveryMethodRequest) (*dto.CartResponse, error)
	SelectAddress(ctx context.Context, req *dto.SelectAddressRequest) (*dto.CartResponse, error)
	Checkout(ctx context.Context) (*dto.CheckoutResponse, error)
}

type cartUsecase struct {
	log              *logrus.Logger
	inventoryGateway gateway.InventoryGateway
	ordersGateway    gateway.OrdersGateway
	cartStore        *service.CartStore
}

func NewCartUsecase(
	log *logrus.Logger,
	inventoryGateway gateway.InventoryGateway,
	ordersGateway gateway.OrdersGateway,
	cartStore *service.CartStore,
) CartUsecase {
	return &cartUsecase{
		log:              log,
		inventoryGateway: inventoryGateway,
		ordersGateway:    ordersGateway,
		cartStore:        cartStore,
	}
}

func (u *cartUsecase) Get(ctx context.Context) (*dto.CartResponse, error) {
	subject, _, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	cart, err := u.cartStore.Get(ctx, subject)
	if err != nil {
		return nil, err
	}
	return converter.CartToResponse(cart), nil
}

// AddItem resolves the product against the inventory service so the cart
// carries a priced snapshot, then merges it into the stored cart.
func (u *cartUsecase) AddItem(ctx context.Context, req *dto.AddCartItemRequest) (*dto.CartResponse, error) {
	subject, bearer, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	products, err := u.inventoryGateway.Products(ctx, bearer, strconv.Itoa(req.ProductID))
	if err != nil {
		u.log.Warnf("Product %d lookup failed for subject %s: %+v", req.ProductID, subject, err)
		return nil, err
	}

	var product *entity.Product
	for i := range products {
		if products[i].ID == req.ProductID {
			product = &products[i]
			break
		}
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	return u.mutate(ctx, subject, func(cart *entity.Cart) error {
		cart.AddItem(*product)
		return nil
	})
}

func (u *cartUsecase) RemoveItem(ctx context.Context, productID int) (*dto.CartResponse, error) {
	subject, _, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return u.mutate(ctx, subject, func(cart *entity.Cart) error {
		cart.RemoveItem(productID)
		return nil
	})
}

func (u *cartUsecase) UpdateQuantity(ctx context.Context, req *dto.UpdateCartItemRequest) (*dto.CartResponse, error) {
	subject, _, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return u.mutate(ctx, subject, func(cart *entity.Cart) error {
		cart.UpdateQuantity(req.ProductID, req.Quantity)
		return nil
	})
}

func (u *cartUsecase) SetDeliveryMethod(ctx context.Context, req *dto.SetDeliveryMethodRequest) (*dto.CartResponse, error) {
	subject, _, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return u.mutate(ctx, subject, func(cart *entity.Cart) error {
		cart.DeliveryMethod = entity.DeliveryMethod(req.DeliveryMethod)
		if cart.DeliveryMethod == entity.DeliveryMethodPickup {
			cart.SelectedAddressID = nil
		}
		return nil
	})
}

func (u *cartUsecase) SelectAddress(ctx context.Context, req *dto.SelectAddressRequest) (*dto.CartResponse, error) {
	subject, _, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return u.mutate(ctx, subject, func(cart *entity.Cart) error {
		addressID := req.AddressID
		cart.SelectedAddressID = &addressID
		return nil
	})
}

// Checkout validates the cart locally before any upstream call: an empty
// cart or a delivery order without an address never leaves the portal. It
// then creates the upstream cart from the portal's line items, creates the
// order against it, and clears the local cart.
func (u *cartUsecase) Checkout(ctx context.Context) (*dto.CheckoutResponse, error) {
	subject, bearer, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	cart, err := u.cartStore.Get(ctx, subject)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, ErrCartEmpty
	}
	if cart.DeliveryMethod == entity.DeliveryMethodDelivery && cart.SelectedAddressID == nil {
		return nil, ErrNoAddressSelected
	}

	draft := &gateway.CartDraft{CartItems: make([]gateway.CartDraftItem, 0, len(cart.Items))}
	for _, item := range cart.Items {
		draft.CartItems = append(draft.CartItems, gateway.CartDraftItem{
			ProductID: item.Product.ID,
			Quantity:  item.Quantity,
		})
	}

	created, err := u.ordersGateway.CreateCart(ctx, bearer, draft)
	if err != nil {
		// The orders service keeps at most one open cart per patient and
		// echoes it in the conflict payload; fall back to that cart.
		cartID, ok := conflictCartID(err)
		if !ok {
			u.log.Warnf("Cart creation failed for subject %s: %+v", subject, err)
			return nil, err
		}
		created, err = u.ordersGateway.GetCart(ctx, bearer, cartID)
		if err != nil {
			u.log.Warnf("Existing cart %d lookup failed for subject %s: %+v", cartID, subject, err)
			return nil, err
		}
	}

	addressID := 0
	if cart.SelectedAddressID != nil {
		addressID = *cart.SelectedAddressID
	}

	order, err := u.ordersGateway.CreateOrder(ctx, bearer, created.Cart.ID, addressID)
	if err != nil {
		u.log.Warnf("Order creation failed for subject %s cart %d: %+v", subject, created.Cart.ID, err)
		return nil, err
	}

	cart.Clear()
	if err := u.cartStore.Save(ctx, subject, cart); err != nil {
		u.log.Warnf("Failed to clear cart for subject %s: %+v", subject, err)
	}

	return &dto.CheckoutResponse{Order: *converter.OrderToResponse(order)}, nil
}

// conflictCartID extracts the open cart's id from a cart-creation conflict.
func conflictCartID(err error) (int, bool) {
	var upstreamErr *upstream.Error
	if !errors.As(err, &upstreamErr) || upstreamErr.StatusCode != http.StatusConflict {
		return 0, false
	}

	var payload struct {
		Cart gateway.UpstreamCart `json:"cart"`
	}
	if len(upstreamErr.Data) == 0 || json.Unmarshal(upstreamErr.Data, &payload) != nil {
		return 0, false
	}
	if payload.Cart.ID == 0 {
		return 0, false
	}
	return payload.Cart.ID, true
}

func (u *cartUsecase) mutate(ctx context.Context, subject string, edit func(*entity.Cart) error) (*dto.CartResponse, error) {
	cart, err := u.cartStore.Get(ctx, subject)
	if err != nil {
		return nil, err
	}
	if err := edit(cart); err != nil {
		return nil, err
	}
	if err := u.cartStore.Save(ctx, subject, cart); err != nil {
		return nil, err
	}
	return converter.CartToResponse(cart), nil
}
