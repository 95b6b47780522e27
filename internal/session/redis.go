package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"innovati-portal/internal/config"
)

// RedisStore keeps sessions in Redis so they survive gateway restarts.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(cfg config.RedisConfig) *RedisStore {
	return &RedisStore{
		rdb: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

func (s *RedisStore) Put(ctx context.Context, domain Domain, id string, sess Session, ttl time.Duration) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, storageKey(domain, id), data, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, domain Domain, id string) (Session, error) {
	data, err := s.rdb.Get(ctx, storageKey(domain, id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Session{}, ErrNotFound
		}
		return Session{}, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		// Corrupted entry behaves like an absent one.
		return Session{}, ErrNotFound
	}
	return sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, domain Domain, id string) error {
	return s.rdb.Del(ctx, storageKey(domain, id)).Err()
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
