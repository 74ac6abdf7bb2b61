package redisstore

import (
	"context"
	"errors"

	"stocksinfo/internal/application"

	"github.com/redis/go-redis/v9"
)

var _ application.Settings = (*Store)(nil)

// Store keeps settings as plain Redis strings without expiry.
type Store struct {
	Client *redis.Client
	Prefix string
}

func New(client *redis.Client, prefix string) *Store {
	return &Store{Client: client, Prefix: prefix}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := s.Client.Get(ctx, s.Prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, application.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.Client.Set(ctx, s.Prefix+key, value, 0).Err()
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return s.Client.Del(ctx, s.Prefix+key).Err()
}

func (s *Store) Ping(ctx context.Context) error { return s.Client.Ping(ctx).Err() }

func (s *Store) Close() error { return s.Client.Close() }
