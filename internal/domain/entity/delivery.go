package entity

import "time"

// DeliveryAddress is owned by the patient, CRUD via the deliveries service.
type DeliveryAddress struct {
	ID            int    `json:"id"`
	PatientID     int    `json:"patient_id"`
	RecipientName string `json:"recipient_name"`
	PhoneNumber   string `json:"phone_number"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	PostalCode    string `json:"postal_code"`
	Country       string `json:"country"`
}

// Delivery tracks a shipped order on the doctor board. The deliveries service
// embeds the order's line items for rendering.
type Delivery struct {
	ID        string         `json:"id"`
	OrderID   int            `json:"order_id"`
	Status    string         `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	Order     *DeliveryOrder `json:"order,omitempty"`
}

type DeliveryOrder struct {
	OrderItems []OrderItem `json:"order_items"`
}
