package converter

import (
	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/domain/entity"
)

// OrderToResponse converts an Order entity to OrderResponse DTO
func OrderToResponse(order *entity.Order) *dto.OrderResponse {
	if order == nil {
		return nil
	}

	return &dto.OrderResponse{
		ID:        order.ID,
		CartID:    order.CartID,
		Status:    order.Status,
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}
}

// OrderItemsToResponses converts order line items, carrying enriched product
// details when the inventory lookup attached them.
func OrderItemsToResponses(items []entity.OrderItem) []dto.OrderItemResponse {
	responses := make([]dto.OrderItemResponse, len(items))
	for i, item := range items {
		responses[i] = dto.OrderItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Product:   ProductToResponse(item.Product),
		}
	}
	return responses
}

// OrderDetailToResponse converts an OrderDetail entity to OrderDetailResponse DTO
func OrderDetailToResponse(detail *entity.OrderDetail) *dto.OrderDetailResponse {
	if detail == nil {
		return nil
	}

	return &dto.OrderDetailResponse{
		Order:      *OrderToResponse(&detail.Order),
		OrderItems: OrderItemsToResponses(detail.OrderItems),
		TotalPrice: detail.TotalPrice,
		Tab:        string(entity.OrderStatusTab(detail.Order.Status)),
	}
}

// PaymentToResponse converts a Payment with its advanced Order to PaymentResponse DTO
func PaymentToResponse(payment *entity.Payment, order *entity.Order) *dto.PaymentResponse {
	if payment == nil {
		return nil
	}

	response := &dto.PaymentResponse{
		ID:       payment.ID,
		OrderID:  payment.OrderID,
		Amount:   payment.Amount,
		Status:   payment.Status,
		Provider: payment.Provider,
	}
	if order != nil {
		response.Order = *OrderToResponse(order)
	}
	return response
}

// DeliveryToResponse converts a Delivery entity to DeliveryResponse DTO
func DeliveryToResponse(delivery *entity.Delivery) *dto.DeliveryResponse {
	if delivery == nil {
		return nil
	}

	response := &dto.DeliveryResponse{
		ID:        delivery.ID,
		OrderID:   delivery.OrderID,
		Status:    delivery.Status,
		CreatedAt: delivery.CreatedAt,
		Tab:       string(entity.DeliveryStatusTab(delivery.Status)),
	}
	if delivery.Order != nil {
		response.OrderItems = OrderItemsToResponses(delivery.Order.OrderItems)
	}
	return response
}
