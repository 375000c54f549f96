package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"probagno/storefront/internal/domain"
)

// SnapshotStore shares the product snapshot between instances so that only
// one of them hits the backend after an invalidation.
type SnapshotStore interface {
	GetProducts(ctx context.Context) ([]domain.Product, bool, error)
	SetProducts(ctx context.Context, products []domain.Product) error
	Invalidate(ctx context.Context) error
}

type redisSnapshotStore struct {
	redisClient *redis.Client
	key         string
	ttl         time.Duration
}

func NewRedisSnapshotStore(redisClient *redis.Client, ttl time.Duration) SnapshotStore {
	return &redisSnapshotStore{
		redisClient: redisClient,
		key:         "probagno:snapshot:products",
		ttl:         ttl,
	}
}

func (s *redisSnapshotStore) GetProducts(ctx context.Context) ([]domain.Product, bool, error) {
	val, err := s.redisClient.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil // Nothing shared yet
		}
		return nil, false, fmt.Errorf("failed to get product snapshot: %w", err)
	}

	var products []domain.Product
	if err := json.Unmarshal(val, &products); err != nil {
		return nil, false, fmt.Errorf("failed to decode product snapshot: %w", err)
	}

	return products, true, nil
}

func (s *redisSnapshotStore) SetProducts(ctx context.Context, products []domain.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to encode product snapshot: %w", err)
	}

	if err := s.redisClient.Set(ctx, s.key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set product snapshot: %w", err)
	}
	return nil
}

func (s *redisSnapshotStore) Invalidate(ctx context.Context) error {
	if err := s.redisClient.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate product snapshot: %w", err)
	}
	return nil
}
