package store

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/plotspec/plotspec/pkg/config"
)

// RedisStore keeps figure envelopes as JSON values in redis, one key per
// figure under the plotspec namespace.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to redis and verifies the connection with a ping.
func NewRedisStore(ctx context.Context, cfg config.RedisConfig) (Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &RedisStore{client: client}, nil
}

// Put stores fig, replacing any previous version. Figures do not expire.
func (s *RedisStore) Put(ctx context.Context, fig Figure) error {
	data, err := json.Marshal(fig)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, redisKey(fig.Name), data, 0).Err()
}

// Get retrieves the figure stored under name.
func (s *RedisStore) Get(ctx context.Context, name string) (Figure, error) {
	data, err := s.client.Get(ctx, redisKey(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Figure{}, ErrNotFound
	}
	if err != nil {
		return Figure{}, err
	}

	var fig Figure
	if err := json.Unmarshal(data, &fig); err != nil {
		return Figure{}, err
	}
	return fig, nil
}

// List scans the figure namespace and returns all figures sorted by name.
func (s *RedisStore) List(ctx context.Context) ([]Figure, error) {
	var figs []Figure
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, redisKeyPrefix+"*", 100).Result()
		if err != nil {
			return nil, err
		}
		for _, key := range keys {
			name := strings.TrimPrefix(key, redisKeyPrefix)
			fig, err := s.Get(ctx, name)
			if errors.Is(err, ErrNotFound) {
				// Deleted between scan and get.
				continue
			}
			if err != nil {
				return nil, err
			}
			figs = append(figs, fig)
		}
		if next == 0 {
			break
		}
		cursor = next
	}

	slices.SortFunc(figs, func(a, b Figure) int {
		return strings.Compare(a.Name, b.Name)
	})
	return figs, nil
}

// Delete removes the figure stored under name.
func (s *RedisStore) Delete(ctx context.Context, name string) error {
	n, err := s.client.Del(ctx, redisKey(name)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Close closes the redis connection.
func (s *RedisStore) Close() error { return s.client.Close() }

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)
