package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const viewKeyPrefix = "portal:view:"

// View names cached per user.
const (
	ViewPatientAppointments = "patient-appointments"
	ViewDoctorAppointments  = "doctor-appointments"
	ViewMySlots             = "my-slots"
	ViewMyAddresses         = "my-addresses"
)

// ViewCache holds a user's last-fetched collections so a confirmed mutation
// can patch the rendered list in place instead of refetching. It is never a
// source of truth: a miss always falls back to the upstream service, and
// writes happen only after the mutating call succeeded.
type ViewCache struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewViewCache(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) *ViewCache {
	return &ViewCache{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

func (c *ViewCache) key(subject, view string) string {
	return viewKeyPrefix + view + ":" + subject
}

// Get decodes the cached collection into dest. The bool reports a hit.
func (c *ViewCache) Get(ctx context.Context, subject, view string, dest interface{}) (bool, error) {
	raw, err := c.redisClient.Get(ctx, c.key(subject, view)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("view cache get %s: %w", view, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.Warnf("Dropping corrupt %s view for subject %s: %+v", view, subject, err)
		_ = c.redisClient.Del(ctx, c.key(subject, view)).Err()
		return false, nil
	}
	return true, nil
}

func (c *ViewCache) Put(ctx context.Context, subject, view string, collection interface{}) error {
	raw, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("view cache encode %s: %w", view, err)
	}
	if err := c.redisClient.Set(ctx, c.key(subject, view), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("view cache put %s: %w", view, err)
	}
	return nil
}

func (c *ViewCache) Invalidate(ctx context.Context, subject, view string) error {
	if err := c.redisClient.Del(ctx, c.key(subject, view)).Err(); err != nil {
		return fmt.Errorf("view cache invalidate %s: %w", view, err)
	}
	return nil
}
