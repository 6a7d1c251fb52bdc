package entity

import (
	"strings"
	"time"
)

// AppointmentStatus follows the ledger kept by the bookings service. Status
// only advances through doctor actions.
type AppointmentStatus string

const (
	AppointmentStatusWaiting                AppointmentStatus = "Waiting"
	AppointmentStatusReady                  AppointmentStatus = "Ready"
	AppointmentStatusWaitingForPrescription AppointmentStatus = "WaitingForPrescription"
	AppointmentStatusCompleted              AppointmentStatus = "Completed"
)

// Appointment is a patient's reservation against a slot as returned by the
// bookings schedule views.
type Appointment struct {
	ID                   string            `json:"id"`
	SlotID               string            `json:"slot_id"`
	DoctorID             int               `json:"doctor_id,omitempty"`
	StartTime            time.Time         `json:"start_time,omitempty"`
	EndTime              time.Time         `json:"end_time,omitempty"`
	Status               AppointmentStatus `json:"status,omitempty"`
	AbnormalSymptom      string            `json:"patient_abnormal_symptom"`
	BloodTestStatus      string            `json:"patient_blood_test_status"`
	IsMissedMedication   string            `json:"patient_is_missed_medication"`
	IsOverdueMedication  string            `json:"patient_is_overdue_medication"`
	IsPartnerHIVPositive string            `json:"patient_is_partner_hiv_positive"`
}

// AppointmentIntake is the composed booking payload submitted on wizard
// completion. Yes/no answers carry canonical Thai tokens.
type AppointmentIntake struct {
	SlotID               string `json:"slot_id"`
	AbnormalSymptom      string `json:"patient_abnormal_symptom"`
	BloodTestStatus      string `json:"patient_blood_test_status"`
	IsMissedMedication   string `json:"patient_is_missed_medication"`
	IsOverdueMedication  string `json:"patient_is_overdue_medication"`
	IsPartnerHIVPositive string `json:"patient_is_partner_hiv_positive"`
}

// Canonical yes/no tokens used by the bookings service intake form.
const (
	IntakeYes = "เคย"
	IntakeNo  = "ไม่เคย"
)

var intakeYesAnswers = map[string]struct{}{
	"เคย": {}, "มี": {}, "ใช่": {},
	"yes": {}, "y": {}, "true": {}, "1": {},
}

var intakeNoAnswers = map[string]struct{}{
	"ไม่เคย": {}, "ไม่มี": {}, "ไม่ใช่": {},
	"no": {}, "n": {}, "false": {}, "0": {},
}

// NormalizeYesNo maps a yes/no intake answer onto its canonical Thai token.
// Returns false for answers it does not recognize.
func NormalizeYesNo(answer string) (string, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(answer))
	if _, ok := intakeYesAnswers[trimmed]; ok {
		return IntakeYes, true
	}
	if _, ok := intakeNoAnswers[trimmed]; ok {
		return IntakeNo, true
	}
	return "", false
}
