package internal

import "fmt"

// OrderedStore is the storage capability the cache is written against: a
// unique-key map that remembers insertion order and hands out slot handles.
type OrderedStore[K comparable, V any] interface {
	Len() int
	Cap() int
	Contains(key K) bool
	Get(key K) (V, bool)
	Lookup(key K) (Handle, bool)
	At(h Handle) V
	Key(h Handle) K
	Insert(key K, value V) (h Handle, old V, replaced bool)
	Replace(h Handle, value V) V
	Remove(key K) (V, bool)
	RemoveHandle(h Handle) V
	Oldest() (K, V, bool)
	PopOldest() (K, V, bool)
	Keys() []K
	Clear()
}

var _ OrderedStore[string, int] = (*OrderedMap[string, int])(nil)

// OrderedMap is a hash map whose entries are also threaded on an
// insertion-ordered list, so the oldest entry can be found and dropped in
// O(1). Hash collisions are resolved by comparing keys with ==.
type OrderedMap[K comparable, V any] struct {
	capacity int
	hash     func(K) uint64
	index    map[uint64][]int32
	order    list[K, V]
}

func NewOrderedMap[K comparable, V any](capacity int, hash func(K) uint64) *OrderedMap[K, V] {
	m := &OrderedMap[K, V]{
		capacity: capacity,
		hash:     hash,
		index:    make(map[uint64][]int32, capacity),
	}
	m.order.Init(capacity)
	return m
}

func (m *OrderedMap[K, V]) Len() int { return m.order.Len() }

// Cap returns the capacity the map was sized for. The map does not enforce
// it; the owner decides when to PopOldest.
func (m *OrderedMap[K, V]) Cap() int { return m.capacity }

func (m *OrderedMap[K, V]) find(key K, hash uint64) int32 {
	for _, i := range m.index[hash] {
		if m.order.slots[i].key == key {
			return i
		}
	}
	return nilIndex
}

func (m *OrderedMap[K, V]) Contains(key K) bool {
	return m.find(key, m.hash(key)) != nilIndex
}

func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	i := m.find(key, m.hash(key))
	if i == nilIndex {
		var zero V
		return zero, false
	}
	return m.order.slots[i].value, true
}

func (m *OrderedMap[K, V]) Lookup(key K) (Handle, bool) {
	i := m.find(key, m.hash(key))
	if i == nilIndex {
		return Handle{Index: nilIndex}, false
	}
	return m.order.handle(i), true
}

// mustResolve panics when h no longer names a live slot: the caller kept a
// handle across a mutation that released it.
func (m *OrderedMap[K, V]) mustResolve(h Handle) int32 {
	i := m.order.resolve(h)
	if i == nilIndex {
		panic(fmt.Sprintf("internal: stale handle %d/%d", h.Index, h.Gen))
	}
	return i
}

func (m *OrderedMap[K, V]) At(h Handle) V {
	return m.order.slots[m.mustResolve(h)].value
}

func (m *OrderedMap[K, V]) Key(h Handle) K {
	return m.order.slots[m.mustResolve(h)].key
}

// Insert adds key as the newest entry. If key is already present its value
// is overwritten and it moves to the newest position, same as a fresh insert.
func (m *OrderedMap[K, V]) Insert(key K, value V) (Handle, V, bool) {
	hash := m.hash(key)
	if i := m.find(key, hash); i != nilIndex {
		s := &m.order.slots[i]
		old := s.value
		s.value = value
		m.order.moveToBack(i)
		return m.order.handle(i), old, true
	}

	i := m.order.pushBack(key, value, hash)
	m.index[hash] = append(m.index[hash], i)

	var zero V
	return m.order.handle(i), zero, false
}

// Replace overwrites the value behind h without touching insertion order.
func (m *OrderedMap[K, V]) Replace(h Handle, value V) V {
	s := &m.order.slots[m.mustResolve(h)]
	old := s.value
	s.value = value
	return old
}

func (m *OrderedMap[K, V]) Remove(key K) (V, bool) {
	i := m.find(key, m.hash(key))
	if i == nilIndex {
		var zero V
		return zero, false
	}
	_, value := m.removeAt(i)
	return value, true
}

func (m *OrderedMap[K, V]) RemoveHandle(h Handle) V {
	_, value := m.removeAt(m.mustResolve(h))
	return value
}

func (m *OrderedMap[K, V]) removeAt(i int32) (K, V) {
	hash := m.order.slots[i].hash
	chain := m.index[hash]
	for j, idx := range chain {
		if idx == i {
			chain = append(chain[:j], chain[j+1:]...)
			break
		}
	}
	if len(chain) == 0 {
		delete(m.index, hash)
	} else {
		m.index[hash] = chain
	}
	return m.order.remove(i)
}

// Oldest reports the least recently inserted entry without removing it.
func (m *OrderedMap[K, V]) Oldest() (K, V, bool) {
	if m.order.head == nilIndex {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	s := &m.order.slots[m.order.head]
	return s.key, s.value, true
}

func (m *OrderedMap[K, V]) PopOldest() (K, V, bool) {
	if m.order.head == nilIndex {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	key, value := m.removeAt(m.order.head)
	return key, value, true
}

// Keys returns the keys from oldest to newest.
func (m *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.order.Len())
	for i := m.order.head; i != nilIndex; i = m.order.slots[i].next {
		keys = append(keys, m.order.slots[i].key)
	}
	return keys
}

func (m *OrderedMap[K, V]) Clear() {
	m.order.reset()
	m.index = make(map[uint64][]int32, m.capacity)
}
