package gateway

import (
	"context"

	"hospital-portal/internal/domain/entity"
)

// AddressDraft carries the patient-editable delivery address fields.
type AddressDraft struct {
	RecipientName string `json:"recipient_name"`
	PhoneNumber   string `json:"phone_number"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	PostalCode    string `json:"postal_code"`
	Country       string `json:"country"`
}

// DeliveriesGateway fronts the deliveries service: address book CRUD and the
// delivery status board.
type DeliveriesGateway interface {
	MyAddresses(ctx context.Context, bearer string) ([]entity.DeliveryAddress, error)
	CreateAddress(ctx context.Context, bearer string, draft *AddressDraft) (*entity.DeliveryAddress, error)
	UpdateAddress(ctx context.Context, bearer string, addressID int, draft *AddressDraft) (*entity.DeliveryAddress, error)
	DeleteAddress(ctx context.Context, bearer string, addressID int) error

	AllDeliveries(ctx context.Context, bearer string) ([]entity.Delivery, error)
	UpdateDeliveryStatus(ctx context.Context, bearer, deliveryID, status string) error
}
