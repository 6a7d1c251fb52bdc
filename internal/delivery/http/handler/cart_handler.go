package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/usecase"
	"hospital-portal/pkg/response"
	"hospital-portal/pkg/validator"

	"github.com/gorilla/mux"
)

type CartHandler struct {
	cartUsecase usecase.CartUsecase
	validator   *validator.CustomValidator
}

func NewCartHandler(cartUsecase usecase.CartUsecase, validator *validator.CustomValidator) *CartHandler {
	return &CartHandler{
		cartUsecase: cartUsecase,
		validator:   validator,
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cartUsecase.Get(r.Context())
	if err != nil {
		h.respondError(w, err, "Failed to get cart")
		return
	}
	response.Success(w, http.StatusOK, "Cart retrieved successfully", cart)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req dto.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	cart, err := h.cartUsecase.AddItem(r.Context(), &req)
	if err != nil {
		h.respondError(w, err, "Failed to add item to cart")
		return
	}
	response.Success(w, http.StatusOK, "Item added to cart", cart)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(mux.Vars(r)["productId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	cart, err := h.cartUsecase.RemoveItem(r.Context(), productID)
	if err != nil {
		h.respondError(w, err, "Failed to remove item from cart")
		return
	}
	response.Success(w, http.StatusOK, "Item removed from cart", cart)
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	cart, err := h.cartUsecase.UpdateQuantity(r.Context(), &req)
	if err != nil {
		h.respondError(w, err, "Failed to update quantity")
		return
	}
	response.Success(w, http.StatusOK, "Quantity updated", cart)
}

func (h *CartHandler) SetDeliveryMethod(w http.ResponseWriter, r *http.Request) {
	var req dto.SetDeliveryMethodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	cart, err := h.cartUsecase.SetDeliveryMethod(r.Context(), &req)
	if err != nil {
		h.respondError(w, err, "Failed to set delivery method")
		return
	}
	response.Success(w, http.StatusOK, "Delivery method set", cart)
}

func (h *CartHandler) SelectAddress(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	cart, err := h.cartUsecase.SelectAddress(r.Context(), &req)
	if err != nil {
		h.respondError(w, err, "Failed to select address")
		return
	}
	response.Success(w, http.StatusOK, "Address selected", cart)
}

func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	result, err := h.cartUsecase.Checkout(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCartEmpty):
			response.Error(w, http.StatusBadRequest, "Cart is empty")
		case errors.Is(err, usecase.ErrNoAddressSelected):
			response.Error(w, http.StatusBadRequest, "Delivery requires a selected address")
		default:
			h.respondError(w, err, "Failed to check out")
		}
		return
	}
	response.Success(w, http.StatusCreated, "Order created successfully", result)
}

func (h *CartHandler) respondError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrNotAuthenticated):
		response.Unauthorized(w, "Not authenticated")
	case errors.Is(err, usecase.ErrProductNotFound):
		response.NotFound(w, "Product not found")
	default:
		relayUpstreamError(w, err, fallback)
	}
}
