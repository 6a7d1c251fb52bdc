package dto

import "time"

// Request DTOs

type SlotRequest struct {
	StartTime           time.Time `json:"start_time" validate:"required"`
	EndTime             time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
	MaxAppointmentCount int       `json:"max_appointment_count" validate:"required,min=1"`
}

// Response DTOs

type SlotResponse struct {
	ID                      string    `json:"id"`
	DoctorID                int       `json:"doctor_id"`
	StartTime               time.Time `json:"start_time"`
	EndTime                 time.Time `json:"end_time"`
	MaxAppointmentCount     int       `json:"max_appointment_count"`
	CurrentAppointmentCount int       `json:"current_appointment_count"`
	IsFull                  bool      `json:"is_full"`
}

type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
	Total int            `json:"total"`
}
