package ttlcache

// EvictReason tells an EvictCallback why an entry left the cache.
type EvictReason int

const (
	// EvictedCapacity: the entry was the oldest when an insert found the
	// cache full.
	EvictedCapacity EvictReason = iota
	// EvictedExpired: a lookup found the entry past its TTL.
	EvictedExpired
	// EvictedCleared: the entry was dropped by Clear.
	EvictedCleared
)

func (r EvictReason) String() string {
	switch r {
	case EvictedCapacity:
		return "capacity"
	case EvictedExpired:
		return "expired"
	case EvictedCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// EvictCallback is called for every entry the cache drops on its own.
// Remove does not trigger it; the caller already receives the value.
//
// It runs synchronously, after the operation that dropped the entry has
// finished changing the cache, so it may call back into the cache. A
// callback that inserts on every capacity eviction never terminates.
type EvictCallback[K comparable, V any] func(key K, value V, reason EvictReason)

type evicted[K comparable, V any] struct {
	key   K
	value V
}
