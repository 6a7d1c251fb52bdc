package entity

import "time"

// WizardStep indexes the booking wizard's strictly linear flow.
type WizardStep int

const (
	WizardStepPatientInfo   WizardStep = 1
	WizardStepDateSelection WizardStep = 2
	WizardStepSlotSelection WizardStep = 3
	WizardStepConfirmation  WizardStep = 4
)

// IntakeAnswers holds the five step-1 intake fields as entered. Yes/no
// answers are normalized to canonical tokens on submission.
type IntakeAnswers struct {
	AbnormalSymptom      string `json:"abnormal_symptom"`
	BloodTestStatus      string `json:"blood_test_status"`
	IsMissedMedication   string `json:"is_missed_medication"`
	IsOverdueMedication  string `json:"is_overdue_medication"`
	IsPartnerHIVPositive string `json:"is_partner_hiv_positive"`
}

// Complete reports whether all five intake fields are set.
func (a *IntakeAnswers) Complete() bool {
	return a.AbnormalSymptom != "" &&
		a.BloodTestStatus != "" &&
		a.IsMissedMedication != "" &&
		a.IsOverdueMedication != "" &&
		a.IsPartnerHIVPositive != ""
}

// WizardState is the accumulated booking-wizard state for one patient
// session. It lives in Redis until confirmation or cancellation; nothing
// persists across a completed or cancelled flow.
type WizardState struct {
	ID     string        `json:"id"`
	Step   WizardStep    `json:"step"`
	Intake IntakeAnswers `json:"intake"`
	// AppointmentDate is the chosen calendar date, YYYY-MM-DD.
	AppointmentDate string `json:"appointment_date,omitempty"`
	SlotID          string `json:"slot_id,omitempty"`
	DoctorID        int    `json:"doctor_id,omitempty"`
	// AppointmentTime merges the chosen date with the slot's start clock time.
	AppointmentTime time.Time `json:"appointment_time,omitempty"`
}

func NewWizardState(id string) *WizardState {
	return &WizardState{
		ID:   id,
		Step: WizardStepPatientInfo,
	}
}

// IntakePayload composes the booking payload from the accumulated state, mapping the
// four yes/no answers to canonical tokens. The caller validates completeness
// first; unrecognized answers pass through trimmed-as-entered so the doctor
// view renders what the patient said.
func (s *WizardState) IntakePayload() *AppointmentIntake {
	return &AppointmentIntake{
		SlotID:               s.SlotID,
		AbnormalSymptom:      s.Intake.AbnormalSymptom,
		BloodTestStatus:      s.Intake.BloodTestStatus,
		IsMissedMedication:   canonicalOrRaw(s.Intake.IsMissedMedication),
		IsOverdueMedication:  canonicalOrRaw(s.Intake.IsOverdueMedication),
		IsPartnerHIVPositive: canonicalOrRaw(s.Intake.IsPartnerHIVPositive),
	}
}

func canonicalOrRaw(answer string) string {
	if canonical, ok := NormalizeYesNo(answer); ok {
		return canonical
	}
	return answer
}
