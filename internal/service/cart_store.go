package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hospital-portal/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const cartKeyPrefix = "portal:cart:"

// CartStore persists the per-patient cart between requests. A missing or
// expired cart reads back as a fresh empty one.
type CartStore struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewCartStore(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) *CartStore {
	return &CartStore{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

func (s *CartStore) Get(ctx context.Context, subject string) (*entity.Cart, error) {
	raw, err := s.redisClient.Get(ctx, cartKeyPrefix+subject).Bytes()
	if err == redis.Nil {
		return entity.NewCart(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cart store get: %w", err)
	}

	var cart entity.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		s.log.Warnf("Dropping corrupt cart for subject %s: %+v", subject, err)
		_ = s.redisClient.Del(ctx, cartKeyPrefix+subject).Err()
		return entity.NewCart(), nil
	}

	return &cart, nil
}

func (s *CartStore) Save(ctx context.Context, subject string, cart *entity.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("cart store encode: %w", err)
	}
	if err := s.redisClient.Set(ctx, cartKeyPrefix+subject, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("cart store save: %w", err)
	}
	return nil
}

func (s *CartStore) Delete(ctx context.Context, subject string) error {
	if err := s.redisClient.Del(ctx, cartKeyPrefix+subject).Err(); err != nil {
		return fmt.Errorf("cart store delete: %w", err)
	}
	return nil
}
