package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"sahara/models"
	"sahara/utils"
)

// sessionTTL bounds how long an abandoned wizard flow survives. Every save
// refreshes it, so a live flow never expires mid-step.
const sessionTTL = 30 * time.Minute

const sessionKeyPrefix = "wizard:"

// ErrSessionNotFound is returned when a session id is unknown or expired.
var ErrSessionNotFound = errors.New("wizard session not found or expired")

// SessionStore persists wizard sessions between step submissions.
type SessionStore interface {
	Save(session *models.WizardSession) error
	Get(sessionID string) (*models.WizardSession, error)
	Delete(sessionID string) error
}

// RedisSessionStore implements SessionStore on the shared Redis client.
type RedisSessionStore struct {
	Client *redis.Client
}

// NewRedisSessionStore returns a store backed by the session cache client.
func NewRedisSessionStore() *RedisSessionStore {
	return &RedisSessionStore{Client: utils.GetSessionCacheClient()}
}

func (s *RedisSessionStore) Save(session *models.WizardSession) error {
	ctx := context.Background()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal wizard session: %w", err)
	}
	if err := s.Client.Set(ctx, sessionKeyPrefix+session.SessionID, data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store wizard session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Get(sessionID string) (*models.WizardSession, error) {
	ctx := context.Background()
	data, err := s.Client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to fetch wizard session: %w", err)
	}
	var session models.WizardSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse wizard session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(sessionID string) error {
	ctx := context.Background()
	if err := s.Client.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete wizard session: %w", err)
	}
	return nil
}
