package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store persists carts in Redis keyed by session ID. A missing key is an
// empty cart, never an error.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore constructs a Store.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Load fetches the cart for a session.
func (s *Store) Load(ctx context.Context, sessionID string) (*Cart, error) {
	data, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &Cart{}, nil
		}
		return nil, fmt.Errorf("cart: load: %w", err)
	}
	var c Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("cart: decode: %w", err)
	}
	return &c, nil
}

// Save persists the cart, refreshing its TTL.
func (s *Store) Save(ctx context.Context, sessionID string, c *Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("cart: encode: %w", err)
	}
	if err := s.client.Set(ctx, s.key(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("cart: save: %w", err)
	}
	return nil
}

// Drop removes the cart for a session.
func (s *Store) Drop(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("cart: drop: %w", err)
	}
	return nil
}

func (s *Store) key(sessionID string) string {
	return "cart:" + sessionID
}
