package ttlcache

import (
	"fmt"
	"time"

	"TTLCache/internal"
)

// Entry is a resolved slot of a Cache, returned by Cache.Entry. It is either
// an *OccupiedEntry or a *VacantEntry:
//
//	e, ok := cache.Entry(key)
//	if !ok {
//		return // key had expired and was purged
//	}
//	switch e := e.(type) {
//	case *ttlcache.OccupiedEntry[string, int]:
//		*e.GetMut()++
//	case *ttlcache.VacantEntry[string, int]:
//		e.Insert(1, time.Minute)
//	}
//
// The TTL was checked when the entry was resolved and is not checked again.
// An entry must not be used after the cache has been modified by anything
// other than the entry itself.
type Entry[K comparable, V any] interface {
	Key() K
	entry()
}

// OccupiedEntry is a live slot.
type OccupiedEntry[K comparable, V any] struct {
	cache  *Cache[K, V]
	handle internal.Handle
}

func (e *OccupiedEntry[K, V]) entry() {}

func (e *OccupiedEntry[K, V]) Key() K {
	return e.cache.store.Key(e.handle)
}

func (e *OccupiedEntry[K, V]) Get() V {
	return e.cache.store.At(e.handle).value
}

func (e *OccupiedEntry[K, V]) GetMut() *V {
	return &e.cache.store.At(e.handle).value
}

// Expiration returns the instant after which the value goes stale.
func (e *OccupiedEntry[K, V]) Expiration() time.Time {
	return e.cache.store.At(e.handle).expiration
}

// Insert replaces the value and restarts the TTL at d, which need not match
// the cache's default. The slot keeps its place in eviction order. It returns
// the previous value.
func (e *OccupiedEntry[K, V]) Insert(value V, d time.Duration) V {
	n := ttlEntry[V]{value: value, duration: d}.node(e.cache.timeNow())
	old := e.cache.store.Replace(e.handle, n)
	e.cache.stats.Inserts++
	return old.value
}

// VacantEntry is a slot with no entry yet.
type VacantEntry[K comparable, V any] struct {
	cache *Cache[K, V]
	key   K
	used  bool
}

func (e *VacantEntry[K, V]) entry() {}

func (e *VacantEntry[K, V]) Key() K {
	return e.key
}

// Insert stores value with a TTL of d and returns a pointer to it. Like
// Cache.Insert, a full cache evicts its oldest entry first. A VacantEntry
// can be inserted into once.
func (e *VacantEntry[K, V]) Insert(value V, d time.Duration) *V {
	c := e.cache
	if e.used {
		panic(fmt.Sprintf("ttlcache: vacant entry for key %v inserted twice", e.key))
	}
	if c.store.Contains(e.key) {
		panic(fmt.Sprintf("ttlcache: vacant entry for key %v is no longer vacant", e.key))
	}
	e.used = true

	dropped := c.makeRoom()

	n := ttlEntry[V]{value: value, duration: d}.node(c.timeNow())
	c.store.Insert(e.key, n)
	c.stats.Inserts++
	c.notify(dropped, EvictedCapacity)
	return &n.value
}
