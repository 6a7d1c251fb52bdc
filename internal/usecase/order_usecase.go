package usecase

import (
	"context"
	"strconv"
	"strings"

	"hospital-portal/internal/converter"
	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/domain/entity"
	"hospital-portal/internal/domain/gateway"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	paymentProvider = "qr_payment"

	// How many product-enrichment lookups run at once across orders.
	enrichConcurrency = 4
)

type OrderUsecase interface {
	MyOrders(ctx context.Context) (*dto.OrderBoardResponse, error)
	Pay(ctx context.Context, orderID int) (*dto.PaymentResponse, error)
	ConfirmPayment(ctx context.Context, orderID int) (*dto.PaymentResponse, error)
	DeliveryBoard(ctx context.Context) (*dto.DeliveryBoardResponse, error)
	ConfirmDelivery(ctx context.Context, deliveryID string) error
}

type orderUsecase struct {
	log               *logrus.Logger
	ordersGateway     gateway.OrdersGateway
	inventoryGateway  gateway.InventoryGateway
	deliveriesGateway gateway.DeliveriesGateway
}

func NewOrderUsecase(
	log *logrus.Logger,
	ordersGateway gateway.OrdersGateway,
	inventoryGateway gateway.InventoryGateway,
	deliveriesGateway gateway.DeliveriesGateway,
) OrderUsecase {
	return &orderUsecase{
		log:               log,
		ordersGateway:     ordersGateway,
		inventoryGateway:  inventoryGateway,
		deliveriesGateway: deliveriesGateway,
	}
}

// MyOrders lists the patient's orders grouped by board tab, with line items
// enriched by one batched product lookup per order. Enrichment runs
// concurrently and degrades per order: a failed lookup leaves that order's
// items without product details instead of failing the listing.
func (u *orderUsecase) MyOrders(ctx context.Context) (*dto.OrderBoardResponse, error) {
	_, bearer, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := u.ordersGateway.MyOrders(ctx, bearer)
	if err != nil {
		return nil, err
	}

	u.enrichOrders(ctx, bearer, orders)

	board := &dto.OrderBoardResponse{
		Pay:       []dto.OrderDetailResponse{},
		Prepare:   []dto.OrderDetailResponse{},
		Completed: []dto.OrderDetailResponse{},
		Total:     len(orders),
	}
	for i := range orders {
		detail := *converter.OrderDetailToResponse(&orders[i])
		switch entity.OrderStatusTab(orders[i].Order.Status) {
		case entity.OrderTabPrepare:
			board.Prepare = append(board.Prepare, detail)
		case entity.OrderTabCompleted:
			board.Completed = append(board.Completed, detail)
		default:
			board.Pay = append(board.Pay, detail)
		}
	}
	return board, nil
}

func (u *orderUsecase) enrichOrders(ctx context.Context, bearer string, orders []entity.OrderDetail) {
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(enrichConcurrency)

	for i := range orders {
		order := &orders[i]
		group.Go(func() error {
			u.attachProducts(groupCtx, bearer, order.OrderItems, order.Order.ID)
			// Degradation is per order; never cancel the siblings.
			return nil
		})
	}
	_ = group.Wait()
}

// attachProducts resolves all product ids of one item list with a single
// comma-joined inventory call.
func (u *orderUsecase) attachProducts(ctx context.Context, bearer string, items []entity.OrderItem, orderID int) {
	if len(items) == 0 {
		return
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, strconv.Itoa(item.ProductID))
	}

	products, err := u.inventoryGateway.Products(ctx, bearer, strings.Join(ids, ","))
	if err != nil {
		u.log.Warnf("Product enrichment failed for order %d: %+v", orderID, err)
		return
	}

	byID := make(map[int]*entity.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}
	for i := range items {
		items[i].Product = byID[items[i].ProductID]
	}
}

// Pay opens a payment for a RESERVED order, moving it to PAYMENT_PENDING.
func (u *orderUsecase) Pay(ctx context.Context, orderID int) (*dto.PaymentResponse, error) {
	_, bearer, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	result, err := u.ordersGateway.CreatePayment(ctx, bearer, orderID, paymentProvider)
	if err != nil {
		u.log.Warnf("Payment creation failed for order %d: %+v", orderID, err)
		return nil, err
	}

	return converter.PaymentToResponse(&result.Payment, &result.UpdatedOrder), nil
}

// ConfirmPayment settles an order's payment: create the payment intent, then
// immediately confirm it through the provider mock. The order lands on
// DELIVERY_PENDING.
func (u *orderUsecase) ConfirmPayment(ctx context.Context, orderID int) (*dto.PaymentResponse, error) {
	_, bearer, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	created, err := u.ordersGateway.CreatePayment(ctx, bearer, orderID, paymentProvider)
	if err != nil {
		u.log.Warnf("Payment creation failed for order %d: %+v", orderID, err)
		return nil, err
	}

	paid, err := u.ordersGateway.MockPay(ctx, bearer, created.Payment.ID)
	if err != nil {
		u.log.Warnf("Payment %s confirmation failed for order %d: %+v", created.Payment.ID, orderID, err)
		return nil, err
	}

	return converter.PaymentToResponse(&paid.UpdatedPayment, &paid.UpdatedOrder), nil
}

// DeliveryBoard lists all deliveries for the doctor board, enriched the same
// way as patient orders and grouped into prepare/completed tabs.
func (u *orderUsecase) DeliveryBoard(ctx context.Context) (*dto.DeliveryBoardResponse, error) {
	_, bearer, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	deliveries, err := u.deliveriesGateway.AllDeliveries(ctx, bearer)
	if err != nil {
		return nil, err
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(enrichConcurrency)
	for i := range deliveries {
		delivery := &deliveries[i]
		group.Go(func() error {
			if delivery.Order != nil {
				u.attachProducts(groupCtx, bearer, delivery.Order.OrderItems, delivery.OrderID)
			}
			return nil
		})
	}
	_ = group.Wait()

	board := &dto.DeliveryBoardResponse{
		Prepare:   []dto.DeliveryResponse{},
		Completed: []dto.DeliveryResponse{},
		Total:     len(deliveries),
	}
	for i := range deliveries {
		response := *converter.DeliveryToResponse(&deliveries[i])
		if entity.DeliveryStatusTab(deliveries[i].Status) == entity.OrderTabCompleted {
			board.Completed = append(board.Completed, response)
		} else {
			board.Prepare = append(board.Prepare, response)
		}
	}
	return board, nil
}

// ConfirmDelivery marks a delivery DELIVERED.
func (u *orderUsecase) ConfirmDelivery(ctx context.Context, deliveryID string) error {
	_, bearer, err := sessionFromContext(ctx)
	if err != nil {
		return err
	}

	if err := u.deliveriesGateway.UpdateDeliveryStatus(ctx, bearer, deliveryID, entity.OrderStatusDelivered); err != nil {
		u.log.Warnf("Delivery %s confirmation failed: %+v", deliveryID, err)
		return err
	}
	return nil
}
