package converter

import (
	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/domain/entity"
)

// SlotToResponse converts a Slot entity to SlotResponse DTO
func SlotToResponse(slot *entity.Slot) *dto.SlotResponse {
	if slot == nil {
		return nil
	}

	return &dto.SlotResponse{
		ID:                      slot.ID,
		DoctorID:                slot.DoctorID,
		StartTime:               slot.StartTime,
		EndTime:                 slot.EndTime,
		MaxAppointmentCount:     slot.MaxAppointmentCount,
		CurrentAppointmentCount: slot.CurrentAppointmentCount,
		IsFull:                  slot.IsFull(),
	}
}

// SlotsToResponses converts a slice of Slot entities to slice of SlotResponse DTOs
func SlotsToResponses(slots []entity.Slot) []dto.SlotResponse {
	responses := make([]dto.SlotResponse, len(slots))
	for i, slot := range slots {
		responses[i] = *SlotToResponse(&slot)
	}
	return responses
}
