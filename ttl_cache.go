package ttlcache

import (
	"time"

	"TTLCache/internal"

	"github.com/charmbracelet/log"
)

// Cache is a bounded key-value cache whose entries expire a fixed duration
// after they are written. When full, an insert first evicts the oldest
// inserted entry; reads never change eviction order.
//
// Expiry is lazy: Get, GetMut and Entry check the TTL and purge a stale
// entry, nothing else does. A Cache is not safe for concurrent use.
type Cache[K comparable, V any] struct {
	store    internal.OrderedStore[K, *node[V]]
	settings Settings
	policy   ExpirationPolicy[K, V]
	onEvict  EvictCallback[K, V]
	logger   *log.Logger
	timeNow  func() time.Time
	stats    Stats
}

// New builds a Cache with the given capacity and TTL and default settings
// otherwise.
func New[K comparable, V any](capacity int, ttl time.Duration) (*Cache[K, V], error) {
	return NewBuilder[K, V]().
		Capacity(capacity).
		Duration(ttl).
		Build()
}

func newCache[K comparable, V any](
	capacity int,
	hasher Hasher[K],
	settings Settings,
	policy ExpirationPolicy[K, V],
	logger *log.Logger,
	onEvict EvictCallback[K, V],
	timeNow func() time.Time,
) *Cache[K, V] {
	return &Cache[K, V]{
		store:    internal.NewOrderedMap[K, *node[V]](capacity, hasher.Hash),
		settings: settings,
		policy:   policy,
		onEvict:  onEvict,
		logger:   logger,
		timeNow:  timeNow,
	}
}

func (c *Cache[K, V]) Capacity() int {
	return c.store.Cap()
}

// Len counts stored entries, including expired ones no lookup has purged yet.
func (c *Cache[K, V]) Len() int {
	return c.store.Len()
}

func (c *Cache[K, V]) IsEmpty() bool {
	return c.store.Len() == 0
}

func (c *Cache[K, V]) Settings() Settings {
	return c.settings
}

// ContainsKey reports whether key is stored. It does not look at the TTL:
// an expired entry that has not been read since still counts.
func (c *Cache[K, V]) ContainsKey(key K) bool {
	return c.store.Contains(key)
}

// Insert stores value under key with the cache's TTL and returns the value
// it replaced, if any. See InsertWithTTL.
func (c *Cache[K, V]) Insert(key K, value V) (V, bool) {
	return c.InsertWithTTL(key, value, c.settings.Duration)
}

// InsertWithTTL stores value under key, expiring d from now.
//
// A full cache evicts its oldest entry first, even when key is already
// present and the insert is an overwrite. The returned value is whatever was
// stored under key after that eviction, expired or not.
func (c *Cache[K, V]) InsertWithTTL(key K, value V, d time.Duration) (V, bool) {
	dropped := c.makeRoom()

	_, old, replaced := c.store.Insert(key, ttlEntry[V]{value: value, duration: d}.node(c.timeNow()))
	c.stats.Inserts++
	c.notify(dropped, EvictedCapacity)

	if !replaced {
		var zero V
		return zero, false
	}
	return old.value, true
}

// Get returns the value stored under key if it has not expired. An expired
// entry is purged and reported as missing.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	_, n, st := c.resolve(key)
	if st != statusValid {
		var zero V
		return zero, false
	}
	return n.value, true
}

// GetMut is Get returning a pointer to the stored value. The pointer stays
// valid until the entry is overwritten or removed.
func (c *Cache[K, V]) GetMut(key K) (*V, bool) {
	_, n, st := c.resolve(key)
	if st != statusValid {
		return nil, false
	}
	return &n.value, true
}

// Peek is Get without side effects: an expired entry reports missing but
// stays stored, and the stats are not touched.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	n, ok := c.store.Get(key)
	if !ok || n.status(c.timeNow()) != statusValid {
		var zero V
		return zero, false
	}
	return n.value, true
}

// Remove deletes key and returns its value whether or not the entry had
// expired. This deliberately differs from Get, which hides expired values.
func (c *Cache[K, V]) Remove(key K) (V, bool) {
	n, ok := c.store.Remove(key)
	if !ok {
		var zero V
		return zero, false
	}
	return n.value, true
}

// Entry resolves key once and returns a handle for reading or writing its
// slot: an *OccupiedEntry for a live entry, a *VacantEntry for an absent
// one. An expired entry is purged and Entry returns false.
func (c *Cache[K, V]) Entry(key K) (Entry[K, V], bool) {
	h, _, st := c.resolve(key)
	switch st {
	case statusValid:
		return &OccupiedEntry[K, V]{cache: c, handle: h}, true
	case statusExpired:
		return nil, false
	default:
		return &VacantEntry[K, V]{cache: c, key: key}, true
	}
}

// Clear drops every entry. Capacity and settings are kept.
func (c *Cache[K, V]) Clear() {
	var cleared []evicted[K, V]
	if c.onEvict != nil {
		cleared = make([]evicted[K, V], 0, c.store.Len())
		for {
			key, n, ok := c.store.PopOldest()
			if !ok {
				break
			}
			cleared = append(cleared, evicted[K, V]{key: key, value: n.value})
		}
	}
	c.store.Clear()
	c.notify(cleared, EvictedCleared)
}

// Keys returns the stored keys from oldest to newest, expired ones included.
func (c *Cache[K, V]) Keys() []K {
	return c.store.Keys()
}

// Oldest returns the entry the next capacity eviction would remove.
func (c *Cache[K, V]) Oldest() (K, V, bool) {
	key, n, ok := c.store.Oldest()
	if !ok {
		var zero V
		return key, zero, false
	}
	return key, n.value, true
}

func (c *Cache[K, V]) Stats() Stats {
	s := c.stats
	s.Capacity = c.store.Cap()
	s.Len = c.store.Len()
	return s
}

// makeRoom evicts oldest entries until an insert fits. The evicted pairs are
// returned so callbacks can run once the caller's own write is done.
func (c *Cache[K, V]) makeRoom() []evicted[K, V] {
	var out []evicted[K, V]
	for c.store.Len() >= c.store.Cap() {
		key, n, ok := c.store.PopOldest()
		if !ok {
			break
		}
		c.stats.Evictions++
		c.logger.Debug("evicted oldest entry", "key", key, "len", c.store.Len())
		out = append(out, evicted[K, V]{key: key, value: n.value})
	}
	return out
}

func (c *Cache[K, V]) notify(entries []evicted[K, V], reason EvictReason) {
	if c.onEvict == nil {
		return
	}
	for _, e := range entries {
		c.onEvict(e.key, e.value, reason)
	}
}

// resolve looks key up and settles its TTL status. Expired entries go
// through the policy and are either refreshed in place or purged.
func (c *Cache[K, V]) resolve(key K) (internal.Handle, *node[V], status) {
	h, ok := c.store.Lookup(key)
	if !ok {
		c.stats.Misses++
		return h, nil, statusAbsent
	}

	n := c.store.At(h)
	now := c.timeNow()
	if n.status(now) == statusValid {
		c.stats.Hits++
		return h, n, statusValid
	}

	// A refresh that is already stale on arrival is treated as an eviction.
	if value, d, ok := c.policy.OnExpired(key, n.value).Refreshed(); ok {
		if fresh := (ttlEntry[V]{value: value, duration: d}).node(now); fresh.status(now) == statusValid {
			c.store.Replace(h, fresh)
			c.stats.Refreshes++
			c.stats.Hits++
			c.logger.Debug("refreshed expired entry", "key", key, "ttl", d)
			return h, fresh, statusValid
		}
	}

	c.store.RemoveHandle(h)
	c.stats.Expirations++
	c.stats.Misses++
	c.logger.Debug("purged expired entry", "key", key, "expired", n.expiration)
	c.notify([]evicted[K, V]{{key: key, value: n.value}}, EvictedExpired)
	return h, nil, statusExpired
}
