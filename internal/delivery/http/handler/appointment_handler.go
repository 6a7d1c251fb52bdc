package handler

import (
	"context"
	"errors"
	"net/http"

	"hospital-portal/internal/usecase"
	"hospital-portal/pkg/response"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase) *AppointmentHandler {
	return &AppointmentHandler{appointmentUsecase: appointmentUsecase}
}

func (h *AppointmentHandler) GetMySchedule(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.MySchedule(r.Context())
	if err != nil {
		h.respondError(w, err, "Failed to get appointments")
		return
	}
	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["id"]
	if appointmentID == "" {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	if err := h.appointmentUsecase.Cancel(r.Context(), appointmentID); err != nil {
		h.respondError(w, err, "Failed to cancel appointment")
		return
	}
	response.Success(w, http.StatusOK, "Appointment cancelled successfully", nil)
}

func (h *AppointmentHandler) GetDoctorSchedule(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.DoctorSchedule(r.Context())
	if err != nil {
		h.respondError(w, err, "Failed to get schedule")
		return
	}
	response.Success(w, http.StatusOK, "Schedule retrieved successfully", appointments)
}

func (h *AppointmentHandler) MarkReady(w http.ResponseWriter, r *http.Request) {
	h.advance(w, r, h.appointmentUsecase.MarkReady, "Appointment marked ready")
}

func (h *AppointmentHandler) MarkWaitingForPrescription(w http.ResponseWriter, r *http.Request) {
	h.advance(w, r, h.appointmentUsecase.MarkWaitingForPrescription, "Appointment waiting for prescription")
}

func (h *AppointmentHandler) MarkCompleted(w http.ResponseWriter, r *http.Request) {
	h.advance(w, r, h.appointmentUsecase.MarkCompleted, "Appointment completed")
}

func (h *AppointmentHandler) advance(w http.ResponseWriter, r *http.Request, call func(ctx context.Context, appointmentID string) error, message string) {
	appointmentID := mux.Vars(r)["id"]
	if appointmentID == "" {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	if err := call(r.Context(), appointmentID); err != nil {
		h.respondError(w, err, "Failed to update appointment")
		return
	}
	response.Success(w, http.StatusOK, message, nil)
}

func (h *AppointmentHandler) respondError(w http.ResponseWriter, err error, fallback string) {
	if errors.Is(err, usecase.ErrNotAuthenticated) {
		response.Unauthorized(w, "Not authenticated")
		return
	}
	relayUpstreamError(w, err, fallback)
}
