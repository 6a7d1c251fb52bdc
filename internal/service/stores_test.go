package service

import (
	"context"
	"testing"
	"time"

	"hospital-portal/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	return mr, redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestWizardStoreRoundTrip(t *testing.T) {
	_, client := testRedis(t)
	store := NewWizardStore(client, logrus.New(), time.Minute)
	ctx := context.Background()

	_, err := store.Get(ctx, "42")
	assert.ErrorIs(t, err, ErrWizardNotStarted)

	state := entity.NewWizardState("w1")
	state.Step = entity.WizardStepDateSelection
	state.Intake.AbnormalSymptom = "headache"
	require.NoError(t, store.Save(ctx, "42", state))

	loaded, err := store.Get(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, entity.WizardStepDateSelection, loaded.Step)
	assert.Equal(t, "headache", loaded.Intake.AbnormalSymptom)

	require.NoError(t, store.Delete(ctx, "42"))
	_, err = store.Get(ctx, "42")
	assert.ErrorIs(t, err, ErrWizardNotStarted)
}

func TestWizardStoreDropsCorruptState(t *testing.T) {
	mr, client := testRedis(t)
	store := NewWizardStore(client, logrus.New(), time.Minute)
	ctx := context.Background()

	require.NoError(t, mr.Set(wizardKeyPrefix+"42", "{not json"))

	_, err := store.Get(ctx, "42")
	assert.ErrorIs(t, err, ErrWizardNotStarted)
	assert.False(t, mr.Exists(wizardKeyPrefix+"42"))
}

func TestWizardStateExpires(t *testing.T) {
	mr, client := testRedis(t)
	store := NewWizardStore(client, logrus.New(), time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "42", entity.NewWizardState("w1")))
	mr.FastForward(2 * time.Minute)

	_, err := store.Get(ctx, "42")
	assert.ErrorIs(t, err, ErrWizardNotStarted)
}

func TestCartStoreMissReadsEmptyCart(t *testing.T) {
	_, client := testRedis(t)
	store := NewCartStore(client, logrus.New(), time.Minute)
	ctx := context.Background()

	cart, err := store.Get(ctx, "42")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, entity.DeliveryMethodDelivery, cart.DeliveryMethod)
}

func TestCartStoreRoundTrip(t *testing.T) {
	_, client := testRedis(t)
	store := NewCartStore(client, logrus.New(), time.Minute)
	ctx := context.Background()

	cart := entity.NewCart()
	cart.AddItem(entity.Product{ID: 1, EnName: "med", UnitPrice: 100})
	require.NoError(t, store.Save(ctx, "42", cart))

	loaded, err := store.Get(ctx, "42")
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, 1, loaded.Items[0].Product.ID)

	require.NoError(t, store.Delete(ctx, "42"))
	loaded, err = store.Get(ctx, "42")
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}

func TestViewCacheRoundTrip(t *testing.T) {
	_, client := testRedis(t)
	cache := NewViewCache(client, logrus.New(), time.Minute)
	ctx := context.Background()

	var slots []entity.Slot
	hit, err := cache.Get(ctx, "42", ViewMySlots, &slots)
	require.NoError(t, err)
	assert.False(t, hit)

	stored := []entity.Slot{{ID: "s1", MaxAppointmentCount: 5}}
	require.NoError(t, cache.Put(ctx, "42", ViewMySlots, stored))

	hit, err = cache.Get(ctx, "42", ViewMySlots, &slots)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, "s1", slots[0].ID)

	require.NoError(t, cache.Invalidate(ctx, "42", ViewMySlots))
	hit, err = cache.Get(ctx, "42", ViewMySlots, &slots)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestViewCacheIsPerSubjectAndView(t *testing.T) {
	_, client := testRedis(t)
	cache := NewViewCache(client, logrus.New(), time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, "42", ViewMySlots, []entity.Slot{{ID: "s1"}}))

	var slots []entity.Slot
	hit, err := cache.Get(ctx, "43", ViewMySlots, &slots)
	require.NoError(t, err)
	assert.False(t, hit)

	hit, err = cache.Get(ctx, "42", ViewMyAddresses, &slots)
	require.NoError(t, err)
	assert.False(t, hit)
}
