package ttlcache

import "time"

type ICache[K comparable, V any] interface {
	Capacity() int
	Len() int
	IsEmpty() bool
	ContainsKey(key K) bool
	Insert(key K, value V) (V, bool)
	InsertWithTTL(key K, value V, ttl time.Duration) (V, bool)
	Get(key K) (V, bool)
	GetMut(key K) (*V, bool)
	Remove(key K) (V, bool)
	Entry(key K) (Entry[K, V], bool)
	Clear()
}

var _ ICache[string, int] = (*Cache[string, int])(nil)
