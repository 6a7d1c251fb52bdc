package dto

// Request DTOs

type AddCartItemRequest struct {
	ProductID int `json:"product_id" validate:"required,min=1"`
}

type UpdateCartItemRequest struct {
	ProductID int `json:"product_id" validate:"required,min=1"`
	Quantity  int `json:"quantity" validate:"min=0"`
}

type SetDeliveryMethodRequest struct {
	DeliveryMethod string `json:"delivery_method" validate:"required,oneof=pickup delivery"`
}

type SelectAddressRequest struct {
	AddressID int `json:"address_id" validate:"required,min=1"`
}

// Response DTOs

type CartItemResponse struct {
	Product  ProductResponse `json:"product"`
	Quantity int             `json:"quantity"`
}

type CartResponse struct {
	Items             []CartItemResponse `json:"items"`
	DeliveryMethod    string             `json:"delivery_method"`
	SelectedAddressID *int               `json:"selected_address_id,omitempty"`
	Subtotal          string             `json:"subtotal"`
	VAT               string             `json:"vat"`
	Total             string             `json:"total"`
}

type CheckoutResponse struct {
	Order OrderResponse `json:"order"`
}
