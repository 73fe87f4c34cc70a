package ttlcache

import (
	"fmt"
	"time"
)

// Action selects what happens to an entry found past its TTL.
type Action int

const (
	// Expire purges the entry and reports a miss.
	Expire Action = iota
	// Revalidate hands the entry to the configured ExpirationPolicy, which
	// may keep it alive with a refreshed value.
	Revalidate
)

func (a Action) String() string {
	switch a {
	case Expire:
		return "expire"
	case Revalidate:
		return "revalidate"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Settings is the TTL policy a Cache is built with. It does not change
// after Build.
type Settings struct {
	Action   Action
	Duration time.Duration
}

func DefaultSettings() Settings {
	return Settings{
		Action:   Expire,
		Duration: DefaultTTL,
	}
}

// Outcome is an ExpirationPolicy's verdict for one expired entry.
type Outcome[V any] struct {
	refresh  bool
	value    V
	duration time.Duration
}

// Evict drops the expired entry.
func Evict[V any]() Outcome[V] {
	return Outcome[V]{}
}

// Refresh keeps the entry, replacing its value and restarting its TTL at d.
func Refresh[V any](value V, d time.Duration) Outcome[V] {
	return Outcome[V]{refresh: true, value: value, duration: d}
}

// Refreshed returns the replacement value and duration, and false for Evict.
func (o Outcome[V]) Refreshed() (V, time.Duration, bool) {
	return o.value, o.duration, o.refresh
}

// ExpirationPolicy decides the fate of an entry that a lookup found expired.
// It runs synchronously on the lookup path and must not call back into the
// cache.
type ExpirationPolicy[K comparable, V any] interface {
	OnExpired(key K, value V) Outcome[V]
}

// PolicyFunc adapts a plain function to ExpirationPolicy.
type PolicyFunc[K comparable, V any] func(key K, value V) Outcome[V]

func (f PolicyFunc[K, V]) OnExpired(key K, value V) Outcome[V] {
	return f(key, value)
}

// ExpirePolicy is the policy behind the Expire action: always evict.
type ExpirePolicy[K comparable, V any] struct{}

func (ExpirePolicy[K, V]) OnExpired(K, V) Outcome[V] {
	return Evict[V]()
}
