package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
	"github.com/go-redis/redis/v8"
	"github.com/goccy/go-json"
)

const confirmationPrefix = "mixer:confirm:"

// ConfirmationStore keeps pending removals in Redis until they are confirmed
// or expire.
type ConfirmationStore struct {
	client *redis.Client
}

func NewConfirmationStore(client *redis.Client) *ConfirmationStore {
	return &ConfirmationStore{client: client}
}

func (s *ConfirmationStore) Save(ctx context.Context, token string, p domain.PendingRemoval, ttl time.Duration) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode confirmation: %w", err)
	}
	if err = s.client.Set(ctx, confirmationPrefix+token, data, ttl).Err(); err != nil {
		return fmt.Errorf("save confirmation: %w", err)
	}
	return nil
}

func (s *ConfirmationStore) Peek(ctx context.Context, token string) (*domain.PendingRemoval, error) {
	data, err := s.client.Get(ctx, confirmationPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrConfirmationNotFound
		}
		return nil, fmt.Errorf("peek confirmation: %w", err)
	}
	return decodePending(token, data)
}

// Take uses GETDEL so that of two concurrent confirmations only one gets the
// pending removal.
func (s *ConfirmationStore) Take(ctx context.Context, token string) (*domain.PendingRemoval, error) {
	data, err := s.client.GetDel(ctx, confirmationPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrConfirmationNotFound
		}
		return nil, fmt.Errorf("take confirmation: %w", err)
	}
	return decodePending(token, data)
}

func decodePending(token string, data []byte) (*domain.PendingRemoval, error) {
	var p domain.PendingRemoval
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: confirmation %s: %v", domain.ErrMalformedRecord, token, err)
	}
	return &p, nil
}
