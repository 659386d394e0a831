package store

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a Redis-backed implementation of the Store interface.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new RedisStore instance.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Close closes the underlying Redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Set stores a key-value pair in Redis.
func (s *RedisStore) Set(key string, value []byte, ttl time.Duration) error {
	return s.client.Set(context.Background(), key, value, ttl).Err()
}

// Get retrieves a value by its key from Redis.
func (s *RedisStore) Get(key string) ([]byte, error) {
	val, err := s.client.Get(context.Background(), key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	return val, err
}

// Delete removes a value by its key from Redis.
func (s *RedisStore) Delete(key string) error {
	return s.client.Del(context.Background(), key).Err()
}

// Del removes multiple values by their keys from Redis.
func (s *RedisStore) Del(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(context.Background(), keys...).Err()
}

// Exists checks if a key exists in Redis.
func (s *RedisStore) Exists(key string) (bool, error) {
	val, err := s.client.Exists(context.Background(), key).Result()
	if err != nil {
		return false, err
	}
	return val > 0, nil
}

// --- Set operations ---

// SAdd adds members to a Redis set.
func (s *RedisStore) SAdd(key string, members ...any) error {
	return s.client.SAdd(context.Background(), key, members...).Err()
}

// SPopN removes and returns up to count random members from a Redis set.
func (s *RedisStore) SPopN(key string, count int64) ([]string, error) {
	return s.client.SPopN(context.Background(), key, count).Result()
}

// --- Sorted set operations ---

// ZAdd adds a member with the given score to a Redis sorted set.
func (s *RedisStore) ZAdd(key string, score float64, member string) error {
	return s.client.ZAdd(context.Background(), key, redis.Z{Score: score, Member: member}).Err()
}

// ZCount returns the number of members with scores in [min, max].
func (s *RedisStore) ZCount(key string, min, max float64) (int64, error) {
	minArg := strconv.FormatFloat(min, 'f', -1, 64)
	maxArg := strconv.FormatFloat(max, 'f', -1, 64)
	return s.client.ZCount(context.Background(), key, minArg, maxArg).Result()
}

// ZRemRangeByScore removes members with scores in [min, max].
func (s *RedisStore) ZRemRangeByScore(key string, min, max float64) error {
	minArg := strconv.FormatFloat(min, 'f', -1, 64)
	maxArg := strconv.FormatFloat(max, 'f', -1, 64)
	return s.client.ZRemRangeByScore(context.Background(), key, minArg, maxArg).Err()
}

// Expire sets a time-to-live on an existing key.
func (s *RedisStore) Expire(key string, ttl time.Duration) error {
	return s.client.Expire(context.Background(), key, ttl).Err()
}
