// File: services/wizard/store.go
package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"sproutly/models"
)

// ErrSessionNotFound reports a flow id with no live session (expired,
// abandoned, or never started).
var ErrSessionNotFound = errors.New("wizard session not found or expired")

// SessionStore persists wizard sessions between stage submissions. The
// orchestrator owns one explicit session object per flow and passes it
// through the store; stages never share mutable state directly.
type SessionStore interface {
	Get(ctx context.Context, flowID string) (*models.WizardSession, error)
	Put(ctx context.Context, session *models.WizardSession) error
	Delete(ctx context.Context, flowID string) error
}

// redisSessionStore keeps sessions as TTL'd JSON blobs, so an abandoned flow
// disappears on its own while its committed stages stay persisted.
type redisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore constructs a SessionStore backed by redis.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) SessionStore {
	return &redisSessionStore{client: client, ttl: ttl}
}

func sessionKey(flowID string) string {
	return "wizard:flow:" + flowID
}

func (s *redisSessionStore) Get(ctx context.Context, flowID string) (*models.WizardSession, error) {
	data, err := s.client.Get(ctx, sessionKey(flowID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read wizard session: %w", err)
	}

	var session models.WizardSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse wizard session: %w", err)
	}
	return &session, nil
}

func (s *redisSessionStore) Put(ctx context.Context, session *models.WizardSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal wizard session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(session.FlowID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store wizard session: %w", err)
	}
	return nil
}

func (s *redisSessionStore) Delete(ctx context.Context, flowID string) error {
	if err := s.client.Del(ctx, sessionKey(flowID)).Err(); err != nil {
		return fmt.Errorf("failed to delete wizard session: %w", err)
	}
	return nil
}
