package dto

// Request DTOs

type SubmitPatientInfoRequest struct {
	AbnormalSymptom      string `json:"abnormal_symptom" validate:"required,max=500"`
	BloodTestStatus      string `json:"blood_test_status" validate:"required,max=100"`
	IsMissedMedication   string `json:"is_missed_medication" validate:"required,max=50"`
	IsOverdueMedication  string `json:"is_overdue_medication" validate:"required,max=50"`
	IsPartnerHIVPositive string `json:"is_partner_hiv_positive" validate:"required,max=50"`
}

type SelectDateRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type SelectSlotRequest struct {
	SlotID string `json:"slot_id" validate:"required"`
}

// Response DTOs

type WizardStateResponse struct {
	ID              string            `json:"id"`
	Step            int               `json:"step"`
	Intake          *IntakeResponse   `json:"intake,omitempty"`
	AppointmentDate string            `json:"appointment_date,omitempty"`
	Slot            *WizardSlotChoice `json:"slot,omitempty"`
}

type IntakeResponse struct {
	AbnormalSymptom      string `json:"abnormal_symptom"`
	BloodTestStatus      string `json:"blood_test_status"`
	IsMissedMedication   string `json:"is_missed_medication"`
	IsOverdueMedication  string `json:"is_overdue_medication"`
	IsPartnerHIVPositive string `json:"is_partner_hiv_positive"`
}

type WizardSlotChoice struct {
	SlotID          string `json:"slot_id"`
	DoctorID        int    `json:"doctor_id"`
	AppointmentTime string `json:"appointment_time"`
}
