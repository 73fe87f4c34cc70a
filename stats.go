package ttlcache

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Stats is a snapshot of a cache's counters.
type Stats struct {
	Capacity int
	Len      int

	Hits        uint64 // lookups that found a live entry
	Misses      uint64 // lookups that found nothing, including expired entries
	Inserts     uint64
	Evictions   uint64 // capacity evictions
	Expirations uint64 // entries purged by a lookup after their TTL
	Refreshes   uint64 // expired entries kept alive by the ExpirationPolicy
}

// HitRate returns hits / (hits + misses), or 0 before any lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

func (s Stats) String() string {
	return fmt.Sprintf("%s/%s entries, %s hits, %s misses (%.1f%% hit rate), %s inserts, %s evicted, %s expired, %s refreshed",
		humanize.Comma(int64(s.Len)),
		humanize.Comma(int64(s.Capacity)),
		humanize.Comma(int64(s.Hits)),
		humanize.Comma(int64(s.Misses)),
		s.HitRate()*100,
		humanize.Comma(int64(s.Inserts)),
		humanize.Comma(int64(s.Evictions)),
		humanize.Comma(int64(s.Expirations)),
		humanize.Comma(int64(s.Refreshes)),
	)
}
