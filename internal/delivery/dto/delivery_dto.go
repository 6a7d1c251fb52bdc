package dto

import "time"

// Request DTOs

type AddressRequest struct {
	RecipientName string `json:"recipient_name" validate:"required,max=200"`
	PhoneNumber   string `json:"phone_number" validate:"required,min=9,max=15"`
	StreetAddress string `json:"street_address" validate:"required,max=500"`
	City          string `json:"city" validate:"required,max=100"`
	State         string `json:"state" validate:"required,max=100"`
	PostalCode    string `json:"postal_code" validate:"required,max=20"`
	Country       string `json:"country" validate:"required,max=100"`
}

// Response DTOs

type AddressResponse struct {
	ID            int    `json:"id"`
	RecipientName string `json:"recipient_name"`
	PhoneNumber   string `json:"phone_number"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	PostalCode    string `json:"postal_code"`
	Country       string `json:"country"`
}

type AddressListResponse struct {
	Addresses []AddressResponse `json:"addresses"`
	Total     int               `json:"total"`
}

type DeliveryResponse struct {
	ID         string              `json:"id"`
	OrderID    int                 `json:"order_id"`
	Status     string              `json:"status"`
	CreatedAt  time.Time           `json:"created_at"`
	OrderItems []OrderItemResponse `json:"order_items"`
	Tab        string              `json:"tab"`
}

// DeliveryBoardResponse groups deliveries by doctor board tab. The doctor
// board has no pay column.
type DeliveryBoardResponse struct {
	Prepare   []DeliveryResponse `json:"prepare"`
	Completed []DeliveryResponse `json:"completed"`
	Total     int                `json:"total"`
}
