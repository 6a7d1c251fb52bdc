package usecase

import (
	"errors"
	"testing"
	"time"

	"hospital-portal/internal/domain/entity"
	"hospital-portal/internal/service"
	"hospital-portal/pkg/token"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAppointmentFixture(t *testing.T, gw *fakeBookingGateway) AppointmentUsecase {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	log := logrus.New()
	return NewAppointmentUsecase(log, gw, service.NewViewCache(client, log, time.Minute))
}

func TestMyScheduleServesCachedView(t *testing.T) {
	gw := &fakeBookingGateway{schedule: []entity.Appointment{
		{ID: "a1", SlotID: "s1", Status: entity.AppointmentStatusWaiting},
		{ID: "a2", SlotID: "s2", Status: entity.AppointmentStatusReady},
	}}
	u := newAppointmentFixture(t, gw)
	ctx := authedContext("42", token.RolePatient)

	list, err := u.MySchedule(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
	assert.Equal(t, 1, gw.scheduleCalls)

	// Second listing is served from the cached view.
	list, err = u.MySchedule(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
	assert.Equal(t, 1, gw.scheduleCalls)
}

func TestCancelPatchesCachedView(t *testing.T) {
	gw := &fakeBookingGateway{schedule: []entity.Appointment{
		{ID: "a1", SlotID: "s1"},
		{ID: "a2", SlotID: "s2"},
	}}
	u := newAppointmentFixture(t, gw)
	ctx := authedContext("42", token.RolePatient)

	_, err := u.MySchedule(ctx)
	require.NoError(t, err)

	require.NoError(t, u.Cancel(ctx, "a1"))
	assert.Equal(t, []string{"a1"}, gw.deleted)

	// The cancelled appointment is dropped from the view without a refetch.
	list, err := u.MySchedule(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "a2", list.Appointments[0].ID)
	assert.Equal(t, 1, gw.scheduleCalls)
}

func TestCancelFailureLeavesViewUntouched(t *testing.T) {
	gw := &fakeBookingGateway{schedule: []entity.Appointment{{ID: "a1"}}}
	u := newAppointmentFixture(t, gw)
	ctx := authedContext("42", token.RolePatient)

	_, err := u.MySchedule(ctx)
	require.NoError(t, err)

	gw.deleteErr = errors.New("bookings unavailable")
	require.Error(t, u.Cancel(ctx, "a1"))

	list, err := u.MySchedule(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
}

func TestAdvancePatchesDoctorView(t *testing.T) {
	gw := &fakeBookingGateway{schedule: []entity.Appointment{
		{ID: "a1", Status: entity.AppointmentStatusWaiting},
		{ID: "a2", Status: entity.AppointmentStatusWaiting},
	}}
	u := newAppointmentFixture(t, gw)
	ctx := authedContext("7", token.RoleDoctor)

	_, err := u.DoctorSchedule(ctx)
	require.NoError(t, err)

	require.NoError(t, u.MarkReady(ctx, "a1"))
	require.NoError(t, u.MarkWaitingForPrescription(ctx, "a2"))
	assert.Equal(t, []string{"a1:READY", "a2:WAITING_FOR_PRESCRIPTION"}, gw.transitions)

	list, err := u.DoctorSchedule(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, list.Total)
	assert.Equal(t, string(entity.AppointmentStatusReady), list.Appointments[0].Status)
	assert.Equal(t, string(entity.AppointmentStatusWaitingForPrescription), list.Appointments[1].Status)
	assert.Equal(t, 1, gw.scheduleCalls)
}
