package dto

import "time"

// Response DTOs

type AppointmentResponse struct {
	ID                   string    `json:"id"`
	SlotID               string    `json:"slot_id"`
	DoctorID             int       `json:"doctor_id,omitempty"`
	StartTime            time.Time `json:"start_time"`
	EndTime              time.Time `json:"end_time"`
	Status               string    `json:"status"`
	AbnormalSymptom      string    `json:"abnormal_symptom"`
	BloodTestStatus      string    `json:"blood_test_status"`
	IsMissedMedication   string    `json:"is_missed_medication"`
	IsOverdueMedication  string    `json:"is_overdue_medication"`
	IsPartnerHIVPositive string    `json:"is_partner_hiv_positive"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
