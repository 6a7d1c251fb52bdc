package entity

import "time"

// Product is a medicine listed by the inventory service.
type Product struct {
	ID        int       `json:"id"`
	EnName    string    `json:"en_name"`
	ThName    string    `json:"th_name"`
	UnitPrice float64   `json:"unit_price"`
	ImagePath *string   `json:"image_path,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
