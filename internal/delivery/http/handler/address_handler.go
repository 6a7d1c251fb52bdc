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

type AddressHandler struct {
	addressUsecase usecase.AddressUsecase
	validator      *validator.CustomValidator
}

func NewAddressHandler(addressUsecase usecase.AddressUsecase, validator *validator.CustomValidator) *AddressHandler {
	return &AddressHandler{
		addressUsecase: addressUsecase,
		validator:      validator,
	}
}

func (h *AddressHandler) GetMyAddresses(w http.ResponseWriter, r *http.Request) {
	addresses, err := h.addressUsecase.MyAddresses(r.Context())
	if err != nil {
		h.respondError(w, err, "Failed to get addresses")
		return
	}
	response.Success(w, http.StatusOK, "Addresses retrieved successfully", addresses)
}

func (h *AddressHandler) CreateAddress(w http.ResponseWriter, r *http.Request) {
	var req dto.AddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	address, err := h.addressUsecase.Create(r.Context(), &req)
	if err != nil {
		h.respondError(w, err, "Failed to create address")
		return
	}
	response.Success(w, http.StatusCreated, "Address created successfully", address)
}

func (h *AddressHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	addressID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid address ID")
		return
	}

	var req dto.AddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	address, err := h.addressUsecase.Update(r.Context(), addressID, &req)
	if err != nil {
		h.respondError(w, err, "Failed to update address")
		return
	}
	response.Success(w, http.StatusOK, "Address updated successfully", address)
}

func (h *AddressHandler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	addressID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid address ID")
		return
	}

	if err := h.addressUsecase.Delete(r.Context(), addressID); err != nil {
		h.respondError(w, err, "Failed to delete address")
		return
	}
	response.Success(w, http.StatusOK, "Address deleted successfully", nil)
}

func (h *AddressHandler) respondError(w http.ResponseWriter, err error, fallback string) {
	if errors.Is(err, usecase.ErrNotAuthenticated) {
		response.Unauthorized(w, "Not authenticated")
		return
	}
	relayUpstreamError(w, err, fallback)
}
