package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shreyanshTechz/attendance-backend/domain"
)

// SessionRepositoryImpl implements domain.SessionRepository using Redis
type SessionRepositoryImpl struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(client *redis.Client, ttl time.Duration) domain.SessionRepository {
	return &SessionRepositoryImpl{
		client: client,
		prefix: "session:",
		ttl:    ttl,
	}
}

// Create implements domain.SessionRepository
func (r *SessionRepositoryImpl) Create(ctx context.Context, session *domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return r.client.Set(ctx, r.prefix+session.ID, data, r.ttl).Err()
}

// FindByID implements domain.SessionRepository
func (r *SessionRepositoryImpl) FindByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	data, err := r.client.Get(ctx, r.prefix+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	if session.ExpiresAt.Before(time.Now()) {
		r.client.Del(ctx, r.prefix+sessionID)
		return nil, domain.ErrSessionExpired
	}
	return &session, nil
}

// Delete implements domain.SessionRepository
func (r *SessionRepositoryImpl) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, r.prefix+sessionID).Err()
}
