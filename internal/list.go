package internal

// Handle names a slot in the arena. Gen changes every time the slot is
// released, so a Handle kept past removal of its entry no longer resolves.
type Handle struct {
	Index int32
	Gen   uint32
}

const nilIndex int32 = -1

type slot[K comparable, V any] struct {
	key   K
	value V
	hash  uint64

	prev, next int32
	gen        uint32
	used       bool
}

// list keeps slots in insertion order: head is the oldest entry, tail the
// newest. Slots live in one slice and link to each other by index.
type list[K comparable, V any] struct {
	slots []slot[K, V]
	free  []int32
	head  int32
	tail  int32
	len   int
}

func (l *list[K, V]) Init(capacity int) *list[K, V] {
	l.slots = make([]slot[K, V], 0, capacity)
	l.free = nil
	l.head = nilIndex
	l.tail = nilIndex
	l.len = 0
	return l
}

func (l *list[K, V]) Len() int { return l.len }

// pushBack stores the pair in a free slot and links it as the newest entry.
func (l *list[K, V]) pushBack(key K, value V, hash uint64) int32 {
	var i int32
	if n := len(l.free); n > 0 {
		i = l.free[n-1]
		l.free = l.free[:n-1]
	} else {
		l.slots = append(l.slots, slot[K, V]{})
		i = int32(len(l.slots) - 1)
	}

	s := &l.slots[i]
	s.key = key
	s.value = value
	s.hash = hash
	s.used = true

	l.linkBack(i)
	l.len++

	return i
}

func (l *list[K, V]) linkBack(i int32) {
	s := &l.slots[i]
	s.prev = l.tail
	s.next = nilIndex
	if l.tail != nilIndex {
		l.slots[l.tail].next = i
	} else {
		l.head = i
	}
	l.tail = i
}

func (l *list[K, V]) unlink(i int32) {
	s := &l.slots[i]
	if s.prev != nilIndex {
		l.slots[s.prev].next = s.next
	} else {
		l.head = s.next
	}
	if s.next != nilIndex {
		l.slots[s.next].prev = s.prev
	} else {
		l.tail = s.prev
	}
	s.prev = nilIndex
	s.next = nilIndex
}

func (l *list[K, V]) moveToBack(i int32) {
	if l.tail == i {
		return
	}
	l.unlink(i)
	l.linkBack(i)
}

// remove unlinks the slot and returns it to the free list. The generation
// bump invalidates every Handle issued for it.
func (l *list[K, V]) remove(i int32) (K, V) {
	l.unlink(i)

	s := &l.slots[i]
	key, value := s.key, s.value

	var zeroK K
	var zeroV V
	s.key = zeroK
	s.value = zeroV
	s.hash = 0
	s.used = false
	s.gen++

	l.free = append(l.free, i)
	l.len--

	return key, value
}

// reset releases every live slot while keeping the backing array.
func (l *list[K, V]) reset() {
	for i := l.head; i != nilIndex; {
		next := l.slots[i].next
		l.remove(i)
		i = next
	}
	l.head = nilIndex
	l.tail = nilIndex
}

func (l *list[K, V]) handle(i int32) Handle {
	return Handle{Index: i, Gen: l.slots[i].gen}
}

// resolve maps a Handle back to its slot index, or -1 if the slot was
// released since the Handle was issued.
func (l *list[K, V]) resolve(h Handle) int32 {
	if h.Index < 0 || int(h.Index) >= len(l.slots) {
		return nilIndex
	}
	s := &l.slots[h.Index]
	if !s.used || s.gen != h.Gen {
		return nilIndex
	}
	return h.Index
}
