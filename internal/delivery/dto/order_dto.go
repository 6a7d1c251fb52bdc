package dto

import "time"

// Response DTOs

type OrderResponse struct {
	ID        int       `json:"id"`
	CartID    int       `json:"cart_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type OrderItemResponse struct {
	ProductID int              `json:"product_id"`
	Quantity  int              `json:"quantity"`
	Product   *ProductResponse `json:"product,omitempty"`
}

type OrderDetailResponse struct {
	Order      OrderResponse       `json:"order"`
	OrderItems []OrderItemResponse `json:"order_items"`
	TotalPrice float64             `json:"total_price"`
	Tab        string              `json:"tab"`
}

// OrderBoardResponse groups a patient's orders by board tab.
type OrderBoardResponse struct {
	Pay       []OrderDetailResponse `json:"pay"`
	Prepare   []OrderDetailResponse `json:"prepare"`
	Completed []OrderDetailResponse `json:"completed"`
	Total     int                   `json:"total"`
}

type PaymentResponse struct {
	ID       string        `json:"id"`
	OrderID  int           `json:"order_id"`
	Amount   float64       `json:"amount"`
	Status   string        `json:"status"`
	Provider string        `json:"provider"`
	Order    OrderResponse `json:"order"`
}
