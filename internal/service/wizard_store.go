package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hospital-portal/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const wizardKeyPrefix = "portal:wizard:"

// ErrWizardNotStarted is returned when no wizard state exists for the user.
var ErrWizardNotStarted = errors.New("booking wizard not started")

// WizardStore persists booking-wizard state per patient between steps. State
// is TTL-bound; an abandoned wizard simply expires.
type WizardStore struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewWizardStore(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) *WizardStore {
	return &WizardStore{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

func (s *WizardStore) Get(ctx context.Context, subject string) (*entity.WizardState, error) {
	raw, err := s.redisClient.Get(ctx, wizardKeyPrefix+subject).Bytes()
	if err == redis.Nil {
		return nil, ErrWizardNotStarted
	}
	if err != nil {
		return nil, fmt.Errorf("wizard store get: %w", err)
	}

	var state entity.WizardState
	if err := json.Unmarshal(raw, &state); err != nil {
		// Corrupt state is unrecoverable; treat as not started.
		s.log.Warnf("Dropping corrupt wizard state for subject %s: %+v", subject, err)
		_ = s.redisClient.Del(ctx, wizardKeyPrefix+subject).Err()
		return nil, ErrWizardNotStarted
	}

	return &state, nil
}

func (s *WizardStore) Save(ctx context.Context, subject string, state *entity.WizardState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("wizard store encode: %w", err)
	}
	if err := s.redisClient.Set(ctx, wizardKeyPrefix+subject, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("wizard store save: %w", err)
	}
	return nil
}

func (s *WizardStore) Delete(ctx context.Context, subject string) error {
	if err := s.redisClient.Del(ctx, wizardKeyPrefix+subject).Err(); err != nil {
		return fmt.Errorf("wizard store delete: %w", err)
	}
	return nil
}
