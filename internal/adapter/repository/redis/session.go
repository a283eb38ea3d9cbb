package redis

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dukaanhq/dukaan/internal/domain"
)

const sessionKeyPrefix = "session:"

// SessionStore implements usecase.SessionStore with opaque random tokens.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a new SessionStore.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Create stores a new session and returns its token.
func (s *SessionStore) Create(ctx context.Context, userID string, ttl time.Duration) (string, error) {
	token := uuid.NewString()

	if err := s.client.Set(ctx, sessionKeyPrefix+token, userID, ttl).Err(); err != nil {
		return "", err
	}

	return token, nil
}

// Get resolves a session token to its user ID.
func (s *SessionStore) Get(ctx context.Context, token string) (string, error) {
	userID, err := s.client.Get(ctx, sessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrUnauthorized
	}

	return userID, err
}

// Delete revokes a session token.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKeyPrefix+token).Err()
}
