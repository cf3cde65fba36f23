package filters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
)

// KeyPrefix namespaces stored selections
const KeyPrefix = "agenda_filters_v1:"

// Client is the subset of *redis.Client the repository uses
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Repository stores filter selections in Redis as JSON
type Repository struct {
	client Client
	ttl    time.Duration
}

// NewRepository создает Redis-репозиторий фильтров. ttl 0 означает без истечения.
func NewRepository(client Client, ttl time.Duration) *Repository {
	return &Repository{client: client, ttl: ttl}
}

// Get returns nil, nil when the user has no stored selection
func (r *Repository) Get(ctx context.Context, userID string) (*domain.FilterSelection, error) {
	raw, err := r.client.Get(ctx, KeyPrefix+userID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: Get: %v", ErrRedis, err)
	}

	sel, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	return &sel, nil
}

// Save overwrites the stored selection
func (r *Repository) Save(ctx context.Context, userID string, sel domain.FilterSelection) error {
	raw, err := Encode(sel)
	if err != nil {
		return fmt.Errorf("%w: Save - encode: %v", ErrMalformed, err)
	}
	if err := r.client.Set(ctx, KeyPrefix+userID, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save: %v", ErrRedis, err)
	}
	return nil
}

// Delete removes the stored selection
func (r *Repository) Delete(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, KeyPrefix+userID).Err(); err != nil {
		return fmt.Errorf("%w: Delete: %v", ErrRedis, err)
	}
	return nil
}
