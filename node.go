package ttlcache

import "time"

type status int

const (
	statusAbsent status = iota
	statusValid
	statusExpired
)

// node is what the store holds for every key: the value and the absolute
// instant after which it is stale. expiration is only ever set by building
// a fresh node.
type node[V any] struct {
	value      V
	expiration time.Time
}

// ttlEntry is a value paired with the duration it should live for.
type ttlEntry[V any] struct {
	value    V
	duration time.Duration
}

func (e ttlEntry[V]) node(now time.Time) *node[V] {
	return &node[V]{
		value:      e.value,
		expiration: now.Add(e.duration),
	}
}

// status reports Valid up to and including the expiration instant.
func (n *node[V]) status(now time.Time) status {
	if now.After(n.expiration) {
		return statusExpired
	}
	return statusValid
}
