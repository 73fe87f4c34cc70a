package ttlcache

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

const (
	DefaultCapacity = 1024
	DefaultTTL      = 30 * time.Second
)

var (
	ErrInvalidCapacity = errors.New("capacity must be greater than zero")
	ErrInvalidDuration = errors.New("ttl must be greater than zero")
	ErrInvalidAction   = errors.New("unknown revalidation action")
	ErrMissingPolicy   = errors.New("revalidate action needs an expiration policy")
)

// Builder collects configuration for a Cache. The zero value is not usable;
// start from NewBuilder.
type Builder[K comparable, V any] struct {
	capacity int
	hasher   Hasher[K]
	settings Settings
	policy   ExpirationPolicy[K, V]
	logger   *log.Logger
	onEvict  EvictCallback[K, V]
	timeNow  func() time.Time
}

// NewBuilder starts from 1024 entries, a 30 second TTL, the Expire action and
// the hashstructure key hasher.
func NewBuilder[K comparable, V any]() *Builder[K, V] {
	return &Builder[K, V]{
		capacity: DefaultCapacity,
		hasher:   StructureHasher[K]{},
		settings: DefaultSettings(),
		timeNow:  time.Now,
	}
}

func (b *Builder[K, V]) Capacity(capacity int) *Builder[K, V] {
	b.capacity = capacity
	return b
}

func (b *Builder[K, V]) Hasher(h Hasher[K]) *Builder[K, V] {
	b.hasher = h
	return b
}

// Duration sets the TTL given to entries written with Insert.
func (b *Builder[K, V]) Duration(d time.Duration) *Builder[K, V] {
	b.settings.Duration = d
	return b
}

func (b *Builder[K, V]) Action(a Action) *Builder[K, V] {
	b.settings.Action = a
	return b
}

// Policy sets the ExpirationPolicy consulted under the Revalidate action.
// It is ignored under Expire.
func (b *Builder[K, V]) Policy(p ExpirationPolicy[K, V]) *Builder[K, V] {
	b.policy = p
	return b
}

func (b *Builder[K, V]) Logger(l *log.Logger) *Builder[K, V] {
	b.logger = l
	return b
}

func (b *Builder[K, V]) OnEvict(f EvictCallback[K, V]) *Builder[K, V] {
	b.onEvict = f
	return b
}

// Clock replaces time.Now as the source of the current instant.
func (b *Builder[K, V]) Clock(now func() time.Time) *Builder[K, V] {
	b.timeNow = now
	return b
}

func (b *Builder[K, V]) Build() (*Cache[K, V], error) {
	if b.capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, b.capacity)
	}
	if b.settings.Duration <= 0 {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidDuration, b.settings.Duration)
	}

	var policy ExpirationPolicy[K, V]
	switch b.settings.Action {
	case Expire:
		policy = ExpirePolicy[K, V]{}
	case Revalidate:
		if b.policy == nil {
			return nil, ErrMissingPolicy
		}
		policy = b.policy
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidAction, b.settings.Action)
	}

	hasher := b.hasher
	if hasher == nil {
		hasher = StructureHasher[K]{}
	}
	logger := b.logger
	if logger == nil {
		logger = log.Default().WithPrefix("ttlcache")
	}
	timeNow := b.timeNow
	if timeNow == nil {
		timeNow = time.Now
	}

	return newCache(b.capacity, hasher, b.settings, policy, logger, b.onEvict, timeNow), nil
}

// MustBuild is like Build but panics on invalid configuration.
func (b *Builder[K, V]) MustBuild() *Cache[K, V] {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}
