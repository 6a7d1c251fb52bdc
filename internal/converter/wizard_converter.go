package converter

import (
	"time"

	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/domain/entity"
)

// WizardStateToResponse converts a WizardState entity to WizardStateResponse DTO
func WizardStateToResponse(state *entity.WizardState) *dto.WizardStateResponse {
	if state == nil {
		return nil
	}

	response := &dto.WizardStateResponse{
		ID:              state.ID,
		Step:            int(state.Step),
		AppointmentDate: state.AppointmentDate,
	}

	if state.Step > entity.WizardStepPatientInfo {
		response.Intake = &dto.IntakeResponse{
			AbnormalSymptom:      state.Intake.AbnormalSymptom,
			BloodTestStatus:      state.Intake.BloodTestStatus,
			IsMissedMedication:   state.Intake.IsMissedMedication,
			IsOverdueMedication:  state.Intake.IsOverdueMedication,
			IsPartnerHIVPositive: state.Intake.IsPartnerHIVPositive,
		}
	}

	if state.SlotID != "" {
		response.Slot = &dto.WizardSlotChoice{
			SlotID:          state.SlotID,
			DoctorID:        state.DoctorID,
			AppointmentTime: state.AppointmentTime.Format(time.RFC3339),
		}
	}

	return response
}
