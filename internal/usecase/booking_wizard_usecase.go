package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"hospital-portal/internal/converter"
	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/delivery/http/middleware"
	"hospital-portal/internal/domain/entity"
	"hospital-portal/internal/domain/gateway"
	"hospital-portal/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrWizardStepMismatch = errors.New("wizard is not on the expected step")
	ErrIncompleteIntake   = errors.New("all intake questions must be answered")
	ErrPastDate           = errors.New("appointment date cannot be in the past")
	ErrSlotNotFound       = errors.New("slot not found or no longer offered")
	ErrSlotFull           = errors.New("slot has no remaining capacity")
)

const appointmentDateLayout = "2006-01-02"

// BookingWizardUsecase drives the four-step appointment flow. The flow is
// strictly linear: each mutation names the step it belongs to and is rejected
// when the stored state sits on a different one. Back rewinds one step,
// Cancel discards everything.
type BookingWizardUsecase interface {
	Start(ctx context.Context) (*dto.WizardStateResponse, error)
	Current(ctx context.Context) (*dto.WizardStateResponse, error)
	SubmitPatientInfo(ctx context.Context, req *dto.SubmitPatientInfoRequest) (*dto.WizardStateResponse, error)
	SelectDate(ctx context.Context, req *dto.SelectDateRequest) (*dto.WizardStateResponse, error)
	SelectSlot(ctx context.Context, req *dto.SelectSlotRequest) (*dto.WizardStateResponse, error)
	Back(ctx context.Context) (*dto.WizardStateResponse, error)
	Cancel(ctx context.Context) error
	Confirm(ctx context.Context) error
}

type bookingWizardUsecase struct {
	log            *logrus.Logger
	bookingGateway gateway.BookingGateway
	wizardStore    *service.WizardStore
	viewCache      *service.ViewCache
	now            func() time.Time
}

func NewBookingWizardUsecase(
	log *logrus.Logger,
	bookingGateway gateway.BookingGateway,
	wizardStore *service.WizardStore,
	viewCache *service.ViewCache,
) BookingWizardUsecase {
	return &bookingWizardUsecase{
		log:            log,
		bookingGateway: bookingGateway,
		wizardStore:    wizardStore,
		viewCache:      viewCache,
		now:            time.Now,
	}
}

// Start resets the wizard to an empty step 1, discarding any earlier state.
func (u *bookingWizardUsecase) Start(ctx context.Context) (*dto.WizardStateResponse, error) {
	subject, ok := middleware.GetSubjectFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	state := entity.NewWizardState(uuid.New().String())
	if err := u.wizardStore.Save(ctx, subject, state); err != nil {
		return nil, err
	}

	return converter.WizardStateToResponse(state), nil
}

func (u *bookingWizardUsecase) Current(ctx context.Context) (*dto.WizardStateResponse, error) {
	subject, ok := middleware.GetSubjectFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	state, err := u.wizardStore.Get(ctx, subject)
	if err != nil {
		return nil, err
	}
	return converter.WizardStateToResponse(state), nil
}

func (u *bookingWizardUsecase) SubmitPatientInfo(ctx context.Context, req *dto.SubmitPatientInfoRequest) (*dto.WizardStateResponse, error) {
	subject, state, err := u.stateOnStep(ctx, entity.WizardStepPatientInfo)
	if err != nil {
		return nil, err
	}

	state.Intake = entity.IntakeAnswers{
		AbnormalSymptom:      strings.TrimSpace(req.AbnormalSymptom),
		BloodTestStatus:      strings.TrimSpace(req.BloodTestStatus),
		IsMissedMedication:   strings.TrimSpace(req.IsMissedMedication),
		IsOverdueMedication:  strings.TrimSpace(req.IsOverdueMedication),
		IsPartnerHIVPositive: strings.TrimSpace(req.IsPartnerHIVPositive),
	}
	if !state.Intake.Complete() {
		return nil, ErrIncompleteIntake
	}

	state.Step = entity.WizardStepDateSelection
	if err := u.wizardStore.Save(ctx, subject, state); err != nil {
		return nil, err
	}

	return converter.WizardStateToResponse(state), nil
}

func (u *bookingWizardUsecase) SelectDate(ctx context.Context, req *dto.SelectDateRequest) (*dto.WizardStateResponse, error) {
	subject, state, err := u.stateOnStep(ctx, entity.WizardStepDateSelection)
	if err != nil {
		return nil, err
	}

	chosen, err := time.ParseInLocation(appointmentDateLayout, req.Date, time.Local)
	if err != nil {
		return nil, ErrPastDate
	}

	// Compare calendar days, not instants: Truncate would cut at a UTC
	// boundary and reject today's date in zones ahead of UTC.
	y, m, d := u.now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	if chosen.Before(today) {
		return nil, ErrPastDate
	}

	state.AppointmentDate = req.Date
	// A new date invalidates any earlier slot choice.
	state.SlotID = ""
	state.DoctorID = 0
	state.AppointmentTime = time.Time{}
	state.Step = entity.WizardStepSlotSelection

	if err := u.wizardStore.Save(ctx, subject, state); err != nil {
		return nil, err
	}

	return converter.WizardStateToResponse(state), nil
}

// SelectSlot verifies the chosen slot against the live availability listing;
// a slot at capacity is rejected regardless of what the page last rendered.
func (u *bookingWizardUsecase) SelectSlot(ctx context.Context, req *dto.SelectSlotRequest) (*dto.WizardStateResponse, error) {
	subject, state, err := u.stateOnStep(ctx, entity.WizardStepSlotSelection)
	if err != nil {
		return nil, err
	}

	bearer, ok := middleware.GetTokenFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	slots, err := u.bookingGateway.AvailableSlots(ctx, bearer)
	if err != nil {
		u.log.Warnf("Failed to list slots for subject %s: %+v", subject, err)
		return nil, err
	}

	var slot *entity.Slot
	for i := range slots {
		if slots[i].ID == req.SlotID {
			slot = &slots[i]
			break
		}
	}
	if slot == nil {
		return nil, ErrSlotNotFound
	}
	if slot.IsFull() {
		return nil, ErrSlotFull
	}

	date, err := time.ParseInLocation(appointmentDateLayout, state.AppointmentDate, time.Local)
	if err != nil {
		return nil, ErrWizardStepMismatch
	}

	state.SlotID = slot.ID
	state.DoctorID = slot.DoctorID
	state.AppointmentTime = mergeDateAndClock(date, slot.StartTime.In(time.Local))
	state.Step = entity.WizardStepConfirmation

	if err := u.wizardStore.Save(ctx, subject, state); err != nil {
		return nil, err
	}

	return converter.WizardStateToResponse(state), nil
}

// Back rewinds one step, keeping the answers already given. Step 1 has
// nowhere to go back to.
func (u *bookingWizardUsecase) Back(ctx context.Context) (*dto.WizardStateResponse, error) {
	subject, ok := middleware.GetSubjectFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	state, err := u.wizardStore.Get(ctx, subject)
	if err != nil {
		return nil, err
	}
	if state.Step <= entity.WizardStepPatientInfo {
		return nil, ErrWizardStepMismatch
	}

	state.Step--
	if err := u.wizardStore.Save(ctx, subject, state); err != nil {
		return nil, err
	}

	return converter.WizardStateToResponse(state), nil
}

// Cancel discards all wizard state. Cancelling an unstarted wizard is a no-op.
func (u *bookingWizardUsecase) Cancel(ctx context.Context) error {
	subject, ok := middleware.GetSubjectFromContext(ctx)
	if !ok {
		return ErrNotAuthenticated
	}
	return u.wizardStore.Delete(ctx, subject)
}

// Confirm submits exactly one booking. On success the wizard state is gone
// and the cached appointments view is invalidated; on failure the state stays
// so the patient can retry or pick another slot.
func (u *bookingWizardUsecase) Confirm(ctx context.Context) error {
	subject, state, err := u.stateOnStep(ctx, entity.WizardStepConfirmation)
	if err != nil {
		return err
	}

	bearer, ok := middleware.GetTokenFromContext(ctx)
	if !ok {
		return ErrNotAuthenticated
	}

	if err := u.bookingGateway.AddAppointment(ctx, bearer, state.IntakePayload()); err != nil {
		u.log.Warnf("Booking confirmation failed for subject %s slot %s: %+v", subject, state.SlotID, err)
		return err
	}

	if err := u.wizardStore.Delete(ctx, subject); err != nil {
		// The booking went through; a stale wizard record only lingers until
		// its TTL.
		u.log.Warnf("Failed to clear wizard state for subject %s: %+v", subject, err)
	}
	if err := u.viewCache.Invalidate(ctx, subject, service.ViewPatientAppointments); err != nil {
		u.log.Warnf("Failed to invalidate appointments view for subject %s: %+v", subject, err)
	}

	return nil
}

func (u *bookingWizardUsecase) stateOnStep(ctx context.Context, step entity.WizardStep) (string, *entity.WizardState, error) {
	subject, ok := middleware.GetSubjectFromContext(ctx)
	if !ok {
		return "", nil, ErrNotAuthenticated
	}

	state, err := u.wizardStore.Get(ctx, subject)
	if err != nil {
		return "", nil, err
	}
	if state.Step != step {
		return "", nil, ErrWizardStepMismatch
	}
	return subject, state, nil
}

// mergeDateAndClock builds the appointment time from the chosen calendar
// date and the slot's start clock time; slots are daily windows, not
// date-bound records.
func mergeDateAndClock(date, clock time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, time.Local)
}
