package converter

import (
	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:                   appointment.ID,
		SlotID:               appointment.SlotID,
		DoctorID:             appointment.DoctorID,
		StartTime:            appointment.StartTime,
		EndTime:              appointment.EndTime,
		Status:               string(appointment.Status),
		AbnormalSymptom:      appointment.AbnormalSymptom,
		BloodTestStatus:      appointment.BloodTestStatus,
		IsMissedMedication:   appointment.IsMissedMedication,
		IsOverdueMedication:  appointment.IsOverdueMedication,
		IsPartnerHIVPositive: appointment.IsPartnerHIVPositive,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		responses[i] = *AppointmentToResponse(&appointment)
	}
	return responses
}
