package main

import (
	"fmt"
	"time"

	ttlcache "TTLCache"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
)

type workloadConfig struct {
	Keys int
	Wait time.Duration
}

// runWorkload fills the cache past capacity, reads everything back, waits
// and reads again so both eviction and lazy expiry show up in the stats.
func runWorkload(cache *ttlcache.Cache[string, string], cfg workloadConfig, logger *log.Logger, sleep func(time.Duration)) ttlcache.Stats {
	logger.Info("Starting workload",
		"capacity", humanize.Comma(int64(cache.Capacity())),
		"ttl", cache.Settings().Duration,
		"keys", cfg.Keys,
	)

	for i := 0; i < cfg.Keys; i++ {
		key := fmt.Sprintf("key-%d", i)
		cache.Insert(key, fmt.Sprintf("value-%d", i))
	}
	logger.Info("Inserted", "len", cache.Len(), "keys", cache.Keys())

	found := 0
	for i := 0; i < cfg.Keys; i++ {
		if _, ok := cache.Get(fmt.Sprintf("key-%d", i)); ok {
			found++
		}
	}
	logger.Info("First read pass", "found", found, "missing", cfg.Keys-found)

	if cfg.Wait > 0 {
		sleep(cfg.Wait)
	}

	if key, _, ok := cache.Oldest(); ok {
		_, live := cache.Peek(key)
		logger.Info("Before second pass", "key", key, "stored", cache.ContainsKey(key), "live", live)
	}

	found = 0
	for i := 0; i < cfg.Keys; i++ {
		if _, ok := cache.Get(fmt.Sprintf("key-%d", i)); ok {
			found++
		}
	}
	logger.Info("Second read pass", "found", found, "len", cache.Len())

	return cache.Stats()
}
