package handler

import (
	"errors"
	"net/http"

	"hospital-portal/internal/usecase"
	"hospital-portal/pkg/response"
)

type ProductHandler struct {
	productUsecase usecase.ProductUsecase
}

func NewProductHandler(productUsecase usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase}
}

func (h *ProductHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productUsecase.List(r.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrNotAuthenticated) {
			response.Unauthorized(w, "Not authenticated")
			return
		}
		relayUpstreamError(w, err, "Failed to get products")
		return
	}
	response.Success(w, http.StatusOK, "Products retrieved successfully", products)
}
