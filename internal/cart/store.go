package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store persists carts per browser session.
type Store interface {
	Load(ctx context.Context, sessionID string) (*Cart, error)
	Save(ctx context.Context, c *Cart) error
	Delete(ctx context.Context, sessionID string) error
}

type redisStore struct {
	redisClient *redis.Client
	keyPrefix   string
	ttl         time.Duration
}

func NewRedisStore(redisClient *redis.Client, ttl time.Duration) Store {
	return &redisStore{
		redisClient: redisClient,
		keyPrefix:   "probagno:cart:",
		ttl:         ttl,
	}
}

// Load returns an empty cart for unknown sessions.
func (s *redisStore) Load(ctx context.Context, sessionID string) (*Cart, error) {
	val, err := s.redisClient.Get(ctx, s.keyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return New(sessionID), nil
		}
		return nil, fmt.Errorf("failed to load cart %s: %w", sessionID, err)
	}

	c := New(sessionID)
	if err := json.Unmarshal(val, c); err != nil {
		return nil, fmt.Errorf("failed to decode cart %s: %w", sessionID, err)
	}
	return c, nil
}

func (s *redisStore) Save(ctx context.Context, c *Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode cart %s: %w", c.SessionID, err)
	}
	if err := s.redisClient.Set(ctx, s.keyPrefix+c.SessionID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart %s: %w", c.SessionID, err)
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.redisClient.Del(ctx, s.keyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete cart %s: %w", sessionID, err)
	}
	return nil
}

// memoryStore keeps carts in process. It is used when Redis is disabled.
type memoryStore struct {
	mu    sync.Mutex
	carts map[string][]byte
}

func NewMemoryStore() Store {
	return &memoryStore{carts: make(map[string][]byte)}
}

func (s *memoryStore) Load(_ context.Context, sessionID string) (*Cart, error) {
	s.mu.Lock()
	data, ok := s.carts[sessionID]
	s.mu.Unlock()

	c := New(sessionID)
	if !ok {
		return c, nil
	}
	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to decode cart %s: %w", sessionID, err)
	}
	return c, nil
}

func (s *memoryStore) Save(_ context.Context, c *Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode cart %s: %w", c.SessionID, err)
	}
	s.mu.Lock()
	s.carts[c.SessionID] = data
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.carts, sessionID)
	s.mu.Unlock()
	return nil
}
