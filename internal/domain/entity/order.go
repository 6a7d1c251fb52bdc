package entity

import (
	"strings"
	"time"
)

// Order statuses advanced by the orders service through payment and delivery
// confirmation.
const (
	OrderStatusPending         = "PENDING"
	OrderStatusReserved        = "RESERVED"
	OrderStatusPaymentPending  = "PAYMENT_PENDING"
	OrderStatusDeliveryPending = "DELIVERY_PENDING"
	OrderStatusDelivered       = "DELIVERED"
	OrderStatusCompleted       = "COMPLETED"
	OrderStatusRejected        = "REJECTED"
)

// Order is a patient's medicine purchase as held by the orders service.
type Order struct {
	ID        int       `json:"id"`
	CartID    int       `json:"cart_id"`
	PatientID int       `json:"patient_id"`
	Status    string    `json:"status"`
	OrderType string    `json:"order_type,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderItem is a line item; Product is attached by the portal's enrichment
// round-trip and stays nil when that lookup degrades.
type OrderItem struct {
	ProductID int      `json:"product_id"`
	Quantity  int      `json:"quantity"`
	Product   *Product `json:"product,omitempty"`
}

// OrderDetail is one order with its items and total as listed for a patient.
type OrderDetail struct {
	Order      Order       `json:"order"`
	OrderItems []OrderItem `json:"order_items"`
	TotalPrice float64     `json:"total_price"`
}

// Payment is a payment intent created against an order.
type Payment struct {
	ID        string    `json:"id"`
	OrderID   int       `json:"order_id"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	Provider  string    `json:"provider"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderTab is the board column an order or delivery renders under.
type OrderTab string

const (
	OrderTabPay       OrderTab = "pay"
	OrderTabPrepare   OrderTab = "prepare"
	OrderTabCompleted OrderTab = "completed"
)

// OrderStatusTab maps an order status onto the patient board tab. Unknown
// statuses land on the pay tab.
func OrderStatusTab(status string) OrderTab {
	switch strings.ToUpper(status) {
	case OrderStatusDeliveryPending:
		return OrderTabPrepare
	case OrderStatusDelivered, OrderStatusCompleted:
		return OrderTabCompleted
	default:
		return OrderTabPay
	}
}

// DeliveryStatusTab maps a delivery status onto the doctor board tab. The
// doctor board has no pay column; unknown statuses land on prepare.
func DeliveryStatusTab(status string) OrderTab {
	switch strings.ToUpper(status) {
	case OrderStatusDelivered, OrderStatusCompleted:
		return OrderTabCompleted
	default:
		return OrderTabPrepare
	}
}
