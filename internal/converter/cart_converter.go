package converter

import (
	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/domain/entity"
)

// CartToResponse converts a Cart entity to CartResponse DTO with computed totals
func CartToResponse(cart *entity.Cart) *dto.CartResponse {
	if cart == nil {
		return nil
	}

	items := make([]dto.CartItemResponse, len(cart.Items))
	for i, item := range cart.Items {
		items[i] = dto.CartItemResponse{
			Product:  *ProductToResponse(&item.Product),
			Quantity: item.Quantity,
		}
	}

	return &dto.CartResponse{
		Items:             items,
		DeliveryMethod:    string(cart.DeliveryMethod),
		SelectedAddressID: cart.SelectedAddressID,
		Subtotal:          cart.Subtotal().String(),
		VAT:               cart.VAT().String(),
		Total:             cart.Total().String(),
	}
}
