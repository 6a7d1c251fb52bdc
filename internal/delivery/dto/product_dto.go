package dto

// Response DTOs

type ProductResponse struct {
	ID        int     `json:"id"`
	EnName    string  `json:"en_name"`
	ThName    string  `json:"th_name"`
	UnitPrice float64 `json:"unit_price"`
	ImagePath *string `json:"image_path,omitempty"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
}
