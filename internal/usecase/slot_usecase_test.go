package usecase

import (
	"testing"
	"time"

	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/domain/entity"
	"hospital-portal/internal/service"
	"hospital-portal/pkg/token"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSlotFixture(t *testing.T, gw *fakeBookingGateway) SlotUsecase {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	log := logrus.New()
	return NewSlotUsecase(log, gw, service.NewViewCache(client, log, time.Minute))
}

func TestMySlotsCachesList(t *testing.T) {
	gw := &fakeBookingGateway{mySlots: []entity.Slot{
		{ID: "s1", DoctorID: 7, StartTime: mustClock(t, 8), EndTime: mustClock(t, 9), MaxAppointmentCount: 10},
	}}
	u := newSlotFixture(t, gw)
	ctx := authedContext("7", token.RoleDoctor)

	list, err := u.MySlots(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)

	_, err = u.MySlots(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, gw.mySlotsCalls)
}

func TestAvailableSlotsNeverCached(t *testing.T) {
	gw := &fakeBookingGateway{slots: []entity.Slot{
		{ID: "s1", MaxAppointmentCount: 2, CurrentAppointmentCount: 2},
	}}
	u := newSlotFixture(t, gw)
	ctx := authedContext("42", token.RolePatient)

	list, err := u.AvailableSlots(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.True(t, list.Slots[0].IsFull)

	// Availability moves under other patients' bookings.
	gw.slots[0].CurrentAppointmentCount = 1
	list, err = u.AvailableSlots(ctx)
	require.NoError(t, err)
	assert.False(t, list.Slots[0].IsFull)
}

func TestCreateSlotInvalidatesCachedList(t *testing.T) {
	gw := &fakeBookingGateway{mySlots: []entity.Slot{{ID: "s1"}}}
	u := newSlotFixture(t, gw)
	ctx := authedContext("7", token.RoleDoctor)

	_, err := u.MySlots(ctx)
	require.NoError(t, err)

	req := &dto.SlotRequest{StartTime: mustClock(t, 10), EndTime: mustClock(t, 11), MaxAppointmentCount: 5}
	require.NoError(t, u.Create(ctx, req))
	assert.Equal(t, []string{"add"}, gw.slotEdits)

	// The id is assigned upstream, so the next listing refetches.
	gw.mySlots = append(gw.mySlots, entity.Slot{ID: "s2"})
	list, err := u.MySlots(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
	assert.Equal(t, 2, gw.mySlotsCalls)
}

func TestEditSlotPatchesCachedList(t *testing.T) {
	gw := &fakeBookingGateway{mySlots: []entity.Slot{
		{ID: "s1", StartTime: mustClock(t, 8), EndTime: mustClock(t, 9), MaxAppointmentCount: 5},
	}}
	u := newSlotFixture(t, gw)
	ctx := authedContext("7", token.RoleDoctor)

	_, err := u.MySlots(ctx)
	require.NoError(t, err)

	req := &dto.SlotRequest{StartTime: mustClock(t, 13), EndTime: mustClock(t, 14), MaxAppointmentCount: 8}
	require.NoError(t, u.Edit(ctx, "s1", req))

	list, err := u.MySlots(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.True(t, list.Slots[0].StartTime.Equal(mustClock(t, 13)))
	assert.Equal(t, 8, list.Slots[0].MaxAppointmentCount)
	assert.Equal(t, 1, gw.mySlotsCalls)
}

func TestDeleteSlotDropsFromCachedList(t *testing.T) {
	gw := &fakeBookingGateway{mySlots: []entity.Slot{{ID: "s1"}, {ID: "s2"}}}
	u := newSlotFixture(t, gw)
	ctx := authedContext("7", token.RoleDoctor)

	_, err := u.MySlots(ctx)
	require.NoError(t, err)

	require.NoError(t, u.Delete(ctx, "s1"))
	assert.Equal(t, []string{"delete:s1"}, gw.slotEdits)

	list, err := u.MySlots(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "s2", list.Slots[0].ID)
	assert.Equal(t, 1, gw.mySlotsCalls)
}
