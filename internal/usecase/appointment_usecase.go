package usecase

import (
	"context"
	"errors"

	"hospital-portal/internal/converter"
	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/delivery/http/middleware"
	"hospital-portal/internal/domain/entity"
	"hospital-portal/internal/domain/gateway"
	"hospital-portal/internal/service"

	"github.com/sirupsen/logrus"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

type AppointmentUsecase interface {
	MySchedule(ctx context.Context) (*dto.AppointmentListResponse, error)
	Cancel(ctx context.Context, appointmentID string) error
	DoctorSchedule(ctx context.Context) (*dto.AppointmentListResponse, error)
	MarkReady(ctx context.Context, appointmentID string) error
	MarkWaitingForPrescription(ctx context.Context, appointmentID string) error
	MarkCompleted(ctx context.Context, appointmentID string) error
}

type appointmentUsecase struct {
	log            *logrus.Logger
	bookingGateway gateway.BookingGateway
	viewCache      *service.ViewCache
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	bookingGateway gateway.BookingGateway,
	viewCache *service.ViewCache,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:            log,
		bookingGateway: bookingGateway,
		viewCache:      viewCache,
	}
}

// MySchedule lists the patient's appointments, serving the cached view when
// present and refilling it from the bookings service otherwise.
func (u *appointmentUsecase) MySchedule(ctx context.Context) (*dto.AppointmentListResponse, error) {
	subject, bearer, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var appointments []entity.Appointment
	hit, err := u.viewCache.Get(ctx, subject, service.ViewPatientAppointments, &appointments)
	if err != nil {
		u.log.Warnf("Appointments view read failed for subject %s: %+v", subject, err)
	}
	if !hit {
		appointments, err = u.bookingGateway.PatientSchedule(ctx, bearer)
		if err != nil {
			return nil, err
		}
		if err := u.viewCache.Put(ctx, subject, service.ViewPatientAppointments, appointments); err != nil {
			u.log.Warnf("Appointments view write failed for subject %s: %+v", subject, err)
		}
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// Cancel deletes the appointment upstream and, only after that succeeded,
// drops it from the cached view instead of refetching.
func (u *appointmentUsecase) Cancel(ctx context.Context, appointmentID string) error {
	subject, bearer, err := sessionFromContext(ctx)
	if err != nil {
		return err
	}

	if err := u.bookingGateway.DeleteAppointment(ctx, bearer, appointmentID); err != nil {
		u.log.Warnf("Appointment %s cancellation failed for subject %s: %+v", appointmentID, subject, err)
		return err
	}

	u.patchView(ctx, subject, service.ViewPatientAppointments, func(appointments []entity.Appointment) []entity.Appointment {
		kept := appointments[:0]
		for _, appointment := range appointments {
			if appointment.ID != appointmentID {
				kept = append(kept, appointment)
			}
		}
		return kept
	})

	return nil
}

func (u *appointmentUsecase) DoctorSchedule(ctx context.Context) (*dto.AppointmentListResponse, error) {
	subject, bearer, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var appointments []entity.Appointment
	hit, err := u.viewCache.Get(ctx, subject, service.ViewDoctorAppointments, &appointments)
	if err != nil {
		u.log.Warnf("Doctor schedule view read failed for subject %s: %+v", subject, err)
	}
	if !hit {
		appointments, err = u.bookingGateway.DoctorSchedule(ctx, bearer)
		if err != nil {
			return nil, err
		}
		if err := u.viewCache.Put(ctx, subject, service.ViewDoctorAppointments, appointments); err != nil {
			u.log.Warnf("Doctor schedule view write failed for subject %s: %+v", subject, err)
		}
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) MarkReady(ctx context.Context, appointmentID string) error {
	return u.advance(ctx, appointmentID, entity.AppointmentStatusReady, u.bookingGateway.MarkReady)
}

func (u *appointmentUsecase) MarkWaitingForPrescription(ctx context.Context, appointmentID string) error {
	return u.advance(ctx, appointmentID, entity.AppointmentStatusWaitingForPrescription, u.bookingGateway.MarkWaitingForPrescription)
}

func (u *appointmentUsecase) MarkCompleted(ctx context.Context, appointmentID string) error {
	return u.advance(ctx, appointmentID, entity.AppointmentStatusCompleted, u.bookingGateway.MarkCompleted)
}

// advance moves the appointment through the status ledger. The cached view
// is patched only after the bookings service confirmed the transition.
func (u *appointmentUsecase) advance(
	ctx context.Context,
	appointmentID string,
	status entity.AppointmentStatus,
	call func(ctx context.Context, bearer, appointmentID string) error,
) error {
	subject, bearer, err := sessionFromContext(ctx)
	if err != nil {
		return err
	}

	if err := call(ctx, bearer, appointmentID); err != nil {
		u.log.Warnf("Appointment %s transition to %s failed: %+v", appointmentID, status, err)
		return err
	}

	u.patchView(ctx, subject, service.ViewDoctorAppointments, func(appointments []entity.Appointment) []entity.Appointment {
		for i := range appointments {
			if appointments[i].ID == appointmentID {
				appointments[i].Status = status
				break
			}
		}
		return appointments
	})

	return nil
}

// patchView applies an in-place edit to a cached appointment collection. A
// cache miss or failure is not an error: the next list call refetches.
func (u *appointmentUsecase) patchView(ctx context.Context, subject, view string, edit func([]entity.Appointment) []entity.Appointment) {
	var appointments []entity.Appointment
	hit, err := u.viewCache.Get(ctx, subject, view, &appointments)
	if err != nil || !hit {
		return
	}
	if err := u.viewCache.Put(ctx, subject, view, edit(appointments)); err != nil {
		u.log.Warnf("Failed to patch %s view for subject %s: %+v", view, subject, err)
	}
}

// sessionFromContext pulls the authenticated subject and bearer token set by
// the auth middleware.
func sessionFromContext(ctx context.Context) (subject, bearer string, err error) {
	subject, ok := middleware.GetSubjectFromContext(ctx)
	if !ok {
		return "", "", ErrNotAuthenticated
	}
	bearer, ok = middleware.GetTokenFromContext(ctx)
	if !ok {
		return "", "", ErrNotAuthenticated
	}
	return subject, bearer, nil
}
