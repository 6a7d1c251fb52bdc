package gateway

import (
	"context"

	"hospital-portal/internal/domain/entity"
	"hospital-portal/internal/domain/gateway"
	"hospital-portal/internal/infrastructure/upstream"
)

type bookingGateway struct {
	client *upstream.Client
}

func NewBookingGateway(client *upstream.Client) gateway.BookingGateway {
	return &bookingGateway{client: client}
}

// scheduleData and slotData are the bookings service's data wrappers.
type scheduleData struct {
	Schedules []entity.Appointment `json:"schedules"`
}

type slotData struct {
	Slots []entity.Slot `json:"slots"`
}

func (g *bookingGateway) AddAppointment(ctx context.Context, bearer string, intake *entity.AppointmentIntake) error {
	return g.client.Post(ctx, "/appointment-ops", bearer, intake, nil)
}

func (g *bookingGateway) DeleteAppointment(ctx context.Context, bearer, appointmentID string) error {
	return g.client.Delete(ctx, "/appointment-ops/"+appointmentID, bearer, nil)
}

func (g *bookingGateway) PatientSchedule(ctx context.Context, bearer string) ([]entity.Appointment, error) {
	var data scheduleData
	if err := g.client.Get(ctx, "/schedule-view/patient", bearer, nil, &data); err != nil {
		return nil, err
	}
	return data.Schedules, nil
}

func (g *bookingGateway) DoctorSchedule(ctx context.Context, bearer string) ([]entity.Appointment, error) {
	var data scheduleData
	if err := g.client.Get(ctx, "/schedule-view/doctor", bearer, nil, &data); err != nil {
		return nil, err
	}
	return data.Schedules, nil
}

func (g *bookingGateway) AvailableSlots(ctx context.Context, bearer string) ([]entity.Slot, error) {
	var data slotData
	if err := g.client.Get(ctx, "/slot-view", bearer, nil, &data); err != nil {
		return nil, err
	}
	return data.Slots, nil
}

func (g *bookingGateway) MySlots(ctx context.Context, bearer string) ([]entity.Slot, error) {
	var data slotData
	if err := g.client.Get(ctx, "/slot-view/view-my-slots", bearer, nil, &data); err != nil {
		return nil, err
	}
	return data.Slots, nil
}

func (g *bookingGateway) AddSlot(ctx context.Context, bearer string, draft *entity.SlotDraft) error {
	return g.client.Post(ctx, "/slot-ops", bearer, draft, nil)
}

func (g *bookingGateway) EditSlot(ctx context.Context, bearer, slotID string, draft *entity.SlotDraft) error {
	return g.client.Patch(ctx, "/slot-ops/"+slotID, bearer, draft, nil)
}

func (g *bookingGateway) DeleteSlot(ctx context.Context, bearer, slotID string) error {
	return g.client.Delete(ctx, "/slot-ops/"+slotID, bearer, nil)
}

func (g *bookingGateway) MarkReady(ctx context.Context, bearer, appointmentID string) error {
	return g.client.Patch(ctx, "/appointment-ledger/to-ready/"+appointmentID, bearer, nil, nil)
}

func (g *bookingGateway) MarkWaitingForPrescription(ctx context.Context, bearer, appointmentID string) error {
	return g.client.Patch(ctx, "/appointment-ledger/to-waiting-for-prescription/"+appointmentID, bearer, nil, nil)
}

func (g *bookingGateway) MarkCompleted(ctx context.Context, bearer, appointmentID string) error {
	return g.client.Patch(ctx, "/appointment-ledger/to-completed/"+appointmentID, bearer, nil, nil)
}
