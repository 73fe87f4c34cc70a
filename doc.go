// Package ttlcache provides a bounded, in-process key-value cache whose
// entries expire a fixed time after they are written.
//
// # Eviction
//
// A [Cache] holds at most [Cache.Capacity] entries. An insert into a full
// cache first evicts the oldest inserted entry. Order is insertion order
// only; reading a key never changes when it will be evicted.
//
// # Expiration
//
// Expiry is lazy. [Cache.Get], [Cache.GetMut] and [Cache.Entry] check the
// entry's TTL and purge it when stale; nothing runs in the background. An
// expired entry that is never looked up stays counted by [Cache.Len] and
// reported by [Cache.ContainsKey] until it is evicted, removed or cleared.
// [Cache.Remove] returns the stored value even if it has expired.
//
// Under the [Revalidate] action an [ExpirationPolicy] decides whether an
// expired entry is dropped or refreshed with a new value.
//
// # Entries
//
// [Cache.Entry] resolves a key once and returns an [*OccupiedEntry] or
// [*VacantEntry] for reading or writing that slot without a second lookup:
//
//	e, ok := cache.Entry(key)
//	if v, isVacant := e.(*ttlcache.VacantEntry[string, int]); ok && isVacant {
//		v.Insert(42, time.Minute)
//	}
//
// A Cache is not safe for concurrent use; guard it with a mutex if it is
// shared between goroutines.
package ttlcache
