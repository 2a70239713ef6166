package localstore

import (
	"context"

	"localfy/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// redisStore is a redis-backed KV store, useful when several app instances
// share one warm snapshot cache.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a redis-backed KV store.
func NewRedisStore(addr, password string, db int) service.KVStore {
	return &redisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

func (s *redisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", service.ErrKeyNotFound
		}

		return "", errors.Wrapf(err, "failed to read key %s", key)
	}

	return value, nil
}

func (s *redisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to write key %s", key)
	}

	return nil
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrapf(err, "failed to delete key %s", key)
	}

	return nil
}
