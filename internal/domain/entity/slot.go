package entity

import "time"

// Slot is a doctor-defined time window with a booking capacity. Slots are
// owned by the bookings service; the portal never mutates them locally except
// to patch cached lists after a confirmed change.
type Slot struct {
	ID                      string    `json:"id"`
	DoctorID                int       `json:"doctor_id"`
	StartTime               time.Time `json:"start_time"`
	EndTime                 time.Time `json:"end_time"`
	MaxAppointmentCount     int       `json:"max_appointment_count"`
	CurrentAppointmentCount int       `json:"current_appointment_count"`
}

// IsFull reports whether the slot has no remaining capacity.
func (s *Slot) IsFull() bool {
	return s.CurrentAppointmentCount >= s.MaxAppointmentCount
}

// SlotDraft carries the doctor-editable slot fields for create/edit calls.
type SlotDraft struct {
	StartTime           time.Time `json:"start_time"`
	EndTime             time.Time `json:"end_time"`
	MaxAppointmentCount int       `json:"max_appointment_count"`
}
