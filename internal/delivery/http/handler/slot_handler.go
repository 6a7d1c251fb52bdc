package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/usecase"
	"hospital-portal/pkg/response"
	"hospital-portal/pkg/validator"

	"github.com/gorilla/mux"
)

type SlotHandler struct {
	slotUsecase usecase.SlotUsecase
	validator   *validator.CustomValidator
}

func NewSlotHandler(slotUsecase usecase.SlotUsecase, validator *validator.CustomValidator) *SlotHandler {
	return &SlotHandler{
		slotUsecase: slotUsecase,
		validator:   validator,
	}
}

func (h *SlotHandler) GetMySlots(w http.ResponseWriter, r *http.Request) {
	slots, err := h.slotUsecase.MySlots(r.Context())
	if err != nil {
		h.respondError(w, err, "Failed to get slots")
		return
	}
	response.Success(w, http.StatusOK, "Slots retrieved successfully", slots)
}

func (h *SlotHandler) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	slots, err := h.slotUsecase.AvailableSlots(r.Context())
	if err != nil {
		h.respondError(w, err, "Failed to get available slots")
		return
	}
	response.Success(w, http.StatusOK, "Available slots retrieved successfully", slots)
}

func (h *SlotHandler) CreateSlot(w http.ResponseWriter, r *http.Request) {
	var req dto.SlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.slotUsecase.Create(r.Context(), &req); err != nil {
		h.respondError(w, err, "Failed to create slot")
		return
	}
	response.Success(w, http.StatusCreated, "Slot created successfully", nil)
}

func (h *SlotHandler) EditSlot(w http.ResponseWriter, r *http.Request) {
	slotID := mux.Vars(r)["id"]
	if slotID == "" {
		response.Error(w, http.StatusBadRequest, "Invalid slot ID")
		return
	}

	var req dto.SlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.slotUsecase.Edit(r.Context(), slotID, &req); err != nil {
		h.respondError(w, err, "Failed to edit slot")
		return
	}
	response.Success(w, http.StatusOK, "Slot updated successfully", nil)
}

func (h *SlotHandler) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	slotID := mux.Vars(r)["id"]
	if slotID == "" {
		response.Error(w, http.StatusBadRequest, "Invalid slot ID")
		return
	}

	if err := h.slotUsecase.Delete(r.Context(), slotID); err != nil {
		h.respondError(w, err, "Failed to delete slot")
		return
	}
	response.Success(w, http.StatusOK, "Slot deleted successfully", nil)
}

func (h *SlotHandler) respondError(w http.ResponseWriter, err error, fallback string) {
	if errors.Is(err, usecase.ErrNotAuthenticated) {
		response.Unauthorized(w, "Not authenticated")
		return
	}
	relayUpstreamError(w, err, fallback)
}
