package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// memoryStoreItem holds the value and expiration timestamp for a key.
type memoryStoreItem struct {
	value     []byte
	expiresAt int64 // Unix-nano timestamp. 0 for no expiry.
}

// MemoryStore is an in-memory key-value store that is safe for concurrent use.
type MemoryStore struct {
	mu          sync.RWMutex
	data        map[string]any
	keyExpiries map[string]int64 // Expiry timestamps for non-item keys (sets, sorted sets)
	stopCleanup chan struct{}    // Channel to stop cleanup goroutine
}

// NOTE: This store uses the global logrus logger configured at application startup to stay aligned
// with the rest of the project. If pluggable logging is required in the future, this can be
// refactored to depend on an internal logging interface instead of the package-level logger.

// NewMemoryStore creates and returns a new MemoryStore instance.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		data:        make(map[string]any),
		keyExpiries: make(map[string]int64),
		stopCleanup: make(chan struct{}),
	}
	// Start background goroutine to periodically clean expired items
	// This prevents memory leaks from expired items that are never accessed
	go s.cleanupExpiredItems()
	return s
}

// Close cleans up resources.
func (s *MemoryStore) Close() error {
	close(s.stopCleanup)
	return nil
}

// Set stores a key-value pair.
func (s *MemoryStore) Set(key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var expiresAt int64
	if ttl > 0 {
		expiresAt = time.Now().UnixNano() + ttl.Nanoseconds()
	}

	s.data[key] = memoryStoreItem{
		value:     value,
		expiresAt: expiresAt,
	}
	return nil
}

// Get retrieves a value by its key.
func (s *MemoryStore) Get(key string) ([]byte, error) {
	s.mu.RLock()
	rawItem, exists := s.data[key]
	s.mu.RUnlock()

	if !exists {
		return nil, ErrNotFound
	}

	item, ok := rawItem.(memoryStoreItem)
	if !ok {
		return nil, fmt.Errorf("type mismatch: key '%s' holds a different data type", key)
	}

	if item.expiresAt > 0 && time.Now().UnixNano() > item.expiresAt {
		s.mu.Lock()
		delete(s.data, key)
		s.mu.Unlock()
		return nil, ErrNotFound
	}

	return item.value, nil
}

// Delete removes a value by its key.
func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	delete(s.keyExpiries, key)
	return nil
}

// Del removes multiple values by their keys.
func (s *MemoryStore) Del(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.data, key)
		delete(s.keyExpiries, key)
	}
	return nil
}

// Exists checks if a key exists.
func (s *MemoryStore) Exists(key string) (bool, error) {
	s.mu.RLock()
	rawItem, exists := s.data[key]
	s.mu.RUnlock()

	if !exists {
		return false, nil
	}

	if item, ok := rawItem.(memoryStoreItem); ok {
		if item.expiresAt > 0 && time.Now().UnixNano() > item.expiresAt {
			s.mu.Lock()
			delete(s.data, key)
			s.mu.Unlock()
			return false, nil
		}
	}

	return true, nil
}

// --- SET operations ---

// SAdd adds members to a set.
func (s *MemoryStore) SAdd(key string, members ...any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var set map[string]struct{}
	rawSet, exists := s.data[key]
	if !exists {
		set = make(map[string]struct{})
		s.data[key] = set
	} else {
		var ok bool
		set, ok = rawSet.(map[string]struct{})
		if !ok {
			return fmt.Errorf("type mismatch: key '%s' holds a different data type", key)
		}
	}

	for _, member := range members {
		set[fmt.Sprint(member)] = struct{}{}
	}
	return nil
}

// SPopN randomly removes and returns the given number of members from a set.
func (s *MemoryStore) SPopN(key string, count int64) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rawSet, exists := s.data[key]
	if !exists {
		return []string{}, nil
	}

	set, ok := rawSet.(map[string]struct{})
	if !ok {
		return nil, fmt.Errorf("type mismatch: key '%s' holds a different data type", key)
	}

	if count > int64(len(set)) {
		count = int64(len(set))
	}

	popped := make([]string, 0, count)
	for member := range set {
		if int64(len(popped)) >= count {
			break
		}
		popped = append(popped, member)
		delete(set, member)
	}

	return popped, nil
}

// --- Sorted set operations ---

// ZAdd adds a member with the given score to a sorted set, creating the set
// if it does not exist.
func (s *MemoryStore) ZAdd(key string, score float64, member string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zset map[string]float64
	rawSet, exists := s.data[key]
	if !exists {
		zset = make(map[string]float64)
		s.data[key] = zset
	} else {
		var ok bool
		zset, ok = rawSet.(map[string]float64)
		if !ok {
			return fmt.Errorf("type mismatch: key '%s' holds a different data type", key)
		}
	}

	zset[member] = score
	return nil
}

// ZCount returns the number of members whose score lies in [min, max].
func (s *MemoryStore) ZCount(key string, min, max float64) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rawSet, exists := s.data[key]
	if !exists {
		return 0, nil
	}

	zset, ok := rawSet.(map[string]float64)
	if !ok {
		return 0, fmt.Errorf("type mismatch: key '%s' holds a different data type", key)
	}

	var count int64
	for _, score := range zset {
		if score >= min && score <= max {
			count++
		}
	}
	return count, nil
}

// ZRemRangeByScore removes members whose score lies in [min, max]. The key is
// deleted when the set becomes empty so that idle sorted sets do not linger.
func (s *MemoryStore) ZRemRangeByScore(key string, min, max float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rawSet, exists := s.data[key]
	if !exists {
		return nil
	}

	zset, ok := rawSet.(map[string]float64)
	if !ok {
		return fmt.Errorf("type mismatch: key '%s' holds a different data type", key)
	}

	for member, score := range zset {
		if score >= min && score <= max {
			delete(zset, member)
		}
	}
	if len(zset) == 0 {
		delete(s.data, key)
		delete(s.keyExpiries, key)
	}
	return nil
}

// Expire sets a time-to-live on an existing key. Returns ErrNotFound if the
// key does not exist.
func (s *MemoryStore) Expire(key string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rawItem, exists := s.data[key]
	if !exists {
		return ErrNotFound
	}

	expiresAt := time.Now().UnixNano() + ttl.Nanoseconds()
	if item, ok := rawItem.(memoryStoreItem); ok {
		item.expiresAt = expiresAt
		s.data[key] = item
		return nil
	}

	// Sets and sorted sets carry no per-item expiry, so track them separately
	// and let the cleanup loop reap them.
	s.keyExpiries[key] = expiresAt
	return nil
}

// cleanupExpiredItems periodically removes expired items from the store.
// This prevents memory leaks from expired items that are never accessed again.
// Runs every 5 minutes to balance memory usage and CPU overhead.
func (s *MemoryStore) cleanupExpiredItems() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.performCleanup()
		case <-s.stopCleanup:
			logrus.Debug("MemoryStore cleanup goroutine stopped")
			return
		}
	}
}

// performCleanup scans the store and removes expired items.
func (s *MemoryStore) performCleanup() {
	now := time.Now().UnixNano()
	expiredKeys := make([]string, 0, 100) // Pre-allocate for common case

	// First pass: identify expired keys (read lock)
	s.mu.RLock()
	for key, rawItem := range s.data {
		if item, ok := rawItem.(memoryStoreItem); ok {
			if item.expiresAt > 0 && now > item.expiresAt {
				expiredKeys = append(expiredKeys, key)
			}
		}
	}
	for key, expiresAt := range s.keyExpiries {
		if now > expiresAt {
			expiredKeys = append(expiredKeys, key)
		}
	}
	s.mu.RUnlock()

	// Second pass: delete expired keys (write lock)
	if len(expiredKeys) > 0 {
		deletedCount := 0
		s.mu.Lock()
		for _, key := range expiredKeys {
			// Double-check expiration under write lock to avoid race conditions
			if rawItem, exists := s.data[key]; exists {
				if item, ok := rawItem.(memoryStoreItem); ok {
					if item.expiresAt > 0 && now > item.expiresAt {
						delete(s.data, key)
						deletedCount++
					}
				} else if expiresAt, tracked := s.keyExpiries[key]; tracked && now > expiresAt {
					delete(s.data, key)
					delete(s.keyExpiries, key)
					deletedCount++
				}
			}
		}
		s.mu.Unlock()

		if logrus.IsLevelEnabled(logrus.DebugLevel) {
			logrus.Debugf("MemoryStore cleanup: removed %d expired items", deletedCount)
		}
	}
}
