package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/service"
	"hospital-portal/internal/usecase"
	"hospital-portal/pkg/response"
	"hospital-portal/pkg/validator"
)

type WizardHandler struct {
	wizardUsecase usecase.BookingWizardUsecase
	validator     *validator.CustomValidator
}

func NewWizardHandler(wizardUsecase usecase.BookingWizardUsecase, validator *validator.CustomValidator) *WizardHandler {
	return &WizardHandler{
		wizardUsecase: wizardUsecase,
		validator:     validator,
	}
}

func (h *WizardHandler) Start(w http.ResponseWriter, r *http.Request) {
	state, err := h.wizardUsecase.Start(r.Context())
	if err != nil {
		h.respondError(w, err, "Failed to start booking")
		return
	}
	response.Success(w, http.StatusCreated, "Booking started", state)
}

func (h *WizardHandler) Current(w http.ResponseWriter, r *http.Request) {
	state, err := h.wizardUsecase.Current(r.Context())
	if err != nil {
		h.respondError(w, err, "Failed to load booking state")
		return
	}
	response.Success(w, http.StatusOK, "Booking state retrieved", state)
}

func (h *WizardHandler) SubmitPatientInfo(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitPatientInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	state, err := h.wizardUsecase.SubmitPatientInfo(r.Context(), &req)
	if err != nil {
		h.respondError(w, err, "Failed to save patient info")
		return
	}
	response.Success(w, http.StatusOK, "Patient info saved", state)
}

func (h *WizardHandler) SelectDate(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	state, err := h.wizardUsecase.SelectDate(r.Context(), &req)
	if err != nil {
		h.respondError(w, err, "Failed to select date")
		return
	}
	response.Success(w, http.StatusOK, "Date selected", state)
}

func (h *WizardHandler) SelectSlot(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	state, err := h.wizardUsecase.SelectSlot(r.Context(), &req)
	if err != nil {
		h.respondError(w, err, "Failed to select slot")
		return
	}
	response.Success(w, http.StatusOK, "Slot selected", state)
}

func (h *WizardHandler) Back(w http.ResponseWriter, r *http.Request) {
	state, err := h.wizardUsecase.Back(r.Context())
	if err != nil {
		h.respondError(w, err, "Failed to go back")
		return
	}
	response.Success(w, http.StatusOK, "Moved back one step", state)
}

func (h *WizardHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.wizardUsecase.Cancel(r.Context()); err != nil {
		h.respondError(w, err, "Failed to cancel booking")
		return
	}
	response.Success(w, http.StatusOK, "Booking cancelled", nil)
}

func (h *WizardHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	if err := h.wizardUsecase.Confirm(r.Context()); err != nil {
		h.respondError(w, err, "Failed to confirm booking")
		return
	}
	response.Success(w, http.StatusCreated, "Appointment booked successfully", nil)
}

func (h *WizardHandler) respondError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrNotAuthenticated):
		response.Unauthorized(w, "Not authenticated")
	case errors.Is(err, service.ErrWizardNotStarted):
		response.NotFound(w, "Booking has not been started")
	case errors.Is(err, usecase.ErrWizardStepMismatch):
		response.Error(w, http.StatusConflict, "Booking is not on the expected step")
	case errors.Is(err, usecase.ErrIncompleteIntake):
		response.Error(w, http.StatusBadRequest, "All intake questions must be answered")
	case errors.Is(err, usecase.ErrPastDate):
		response.Error(w, http.StatusBadRequest, "Appointment date cannot be in the past")
	case errors.Is(err, usecase.ErrSlotNotFound):
		response.NotFound(w, "Slot not found or no longer offered")
	case errors.Is(err, usecase.ErrSlotFull):
		response.Error(w, http.StatusConflict, "Slot has no remaining capacity")
	default:
		relayUpstreamError(w, err, fallback)
	}
}
