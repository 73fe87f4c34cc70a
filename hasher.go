package ttlcache

import (
	"fmt"

	"github.com/mitchellh/hashstructure/v2"
)

// Hasher turns a key into the 64-bit hash the store buckets it under.
// Equal keys must hash equally; unequal keys may collide.
type Hasher[K any] interface {
	Hash(key K) uint64
}

// HasherFunc adapts a plain function to Hasher.
type HasherFunc[K any] func(key K) uint64

func (f HasherFunc[K]) Hash(key K) uint64 { return f(key) }

// StructureHasher is the default Hasher. It walks the key with hashstructure
// (FormatV2), hashing struct keys by their exported fields. Keys
// hashstructure rejects, such as channels, panic.
type StructureHasher[K any] struct {
	Options *hashstructure.HashOptions
}

func (s StructureHasher[K]) Hash(key K) uint64 {
	hash, err := hashstructure.Hash(key, hashstructure.FormatV2, s.Options)
	if err != nil {
		panic(fmt.Errorf("ttlcache: hash key %v: %w", key, err))
	}
	return hash
}
