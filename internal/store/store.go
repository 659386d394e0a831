// Package store provides a key-value storage abstraction with in-memory and
// Redis backed implementations.
package store

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a key is not found in the store.
var ErrNotFound = errors.New("key not found in store")

// Store is the interface for key-value storage operations.
type Store interface {
	// Set stores a key-value pair. A ttl of 0 means no expiration.
	Set(key string, value []byte, ttl time.Duration) error

	// Get retrieves the value for a key. Returns ErrNotFound if the key
	// does not exist.
	Get(key string) ([]byte, error)

	// Delete removes a key.
	Delete(key string) error

	// Del removes multiple keys.
	Del(keys ...string) error

	// Exists checks whether a key exists.
	Exists(key string) (bool, error)

	// Close releases any resources held by the store.
	Close() error

	// SAdd adds members to a set.
	SAdd(key string, members ...any) error

	// SPopN removes and returns up to count random members from a set.
	SPopN(key string, count int64) ([]string, error)

	// ZAdd adds a member with the given score to a sorted set.
	ZAdd(key string, score float64, member string) error

	// ZCount returns the number of members with scores in [min, max].
	ZCount(key string, min, max float64) (int64, error)

	// ZRemRangeByScore removes members with scores in [min, max].
	ZRemRangeByScore(key string, min, max float64) error

	// Expire sets a time-to-live on an existing key.
	Expire(key string, ttl time.Duration) error
}
