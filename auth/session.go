package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"symptom-checker/models"

	"github.com/redis/go-redis/v9"
)

// SessionData is what a session cookie resolves to on the server side.
type SessionData struct {
	UserID uint            `json:"user_id"`
	Email  string          `json:"email"`
	Role   models.UserRole `json:"role"`
}

// SessionStore keeps browser sessions in Redis under a TTL.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(addr, password string, db int, ttl time.Duration) (*SessionStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &SessionStore{
		client: client,
		ttl:    ttl,
	}, nil
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

// Create stores a new session under the given ID
func (s *SessionStore) Create(ctx context.Context, sessionID string, data SessionData) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(sessionID), jsonData, s.ttl).Err()
}

// Get resolves a session ID; returns (nil, nil) when the session is unknown
// or has expired.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (*SessionData, error) {
	val, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var data SessionData
	if err := json.Unmarshal([]byte(val), &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Delete removes a session
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKey(sessionID)).Err()
}

// Extend resets the session TTL
func (s *SessionStore) Extend(ctx context.Context, sessionID string) error {
	return s.client.Expire(ctx, sessionKey(sessionID), s.ttl).Err()
}

func (s *SessionStore) Close() error {
	return s.client.Close()
}
