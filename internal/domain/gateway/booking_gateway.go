package gateway

import (
	"context"

	"hospital-portal/internal/domain/entity"
)

// BookingGateway fronts the bookings service: appointments, slots and the
// appointment status ledger. Every method is exactly one HTTP call.
type BookingGateway interface {
	AddAppointment(ctx context.Context, bearer string, intake *entity.AppointmentIntake) error
	DeleteAppointment(ctx context.Context, bearer, appointmentID string) error
	PatientSchedule(ctx context.Context, bearer string) ([]entity.Appointment, error)
	DoctorSchedule(ctx context.Context, bearer string) ([]entity.Appointment, error)

	AvailableSlots(ctx context.Context, bearer string) ([]entity.Slot, error)
	MySlots(ctx context.Context, bearer string) ([]entity.Slot, error)
	AddSlot(ctx context.Context, bearer string, draft *entity.SlotDraft) error
	EditSlot(ctx context.Context, bearer, slotID string, draft *entity.SlotDraft) error
	DeleteSlot(ctx context.Context, bearer, slotID string) error

	MarkReady(ctx context.Context, bearer, appointmentID string) error
	MarkWaitingForPrescription(ctx context.Context, bearer, appointmentID string) error
	MarkCompleted(ctx context.Context, bearer, appointmentID string) error
}
