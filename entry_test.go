package ttlcache

import (
	"testing"
	"time"
)

func TestEntry_VacantInsert(t *testing.T) {
	cache, _ := newTestCache(t, 2, time.Minute)

	e, ok := cache.Entry("k")
	if !ok {
		t.Fatal("expected a handle for an absent key")
	}
	vacant, isVacant := e.(*VacantEntry[string, int])
	if !isVacant {
		t.Fatalf("expected a vacant entry, got %T", e)
	}
	if vacant.Key() != "k" {
		t.Errorf("expected key 'k', got %q", vacant.Key())
	}

	p := vacant.Insert(5, time.Minute)
	if *p != 5 {
		t.Errorf("expected inserted value 5, got %d", *p)
	}
	*p = 6

	if v, ok := cache.Get("k"); !ok || v != 6 {
		t.Errorf("expected 'k' to be 6, got %v %v", v, ok)
	}
}

func TestEntry_VacantInsertUsesGivenDuration(t *testing.T) {
	cache, clock := newTestCache(t, 2, time.Hour)

	e, _ := cache.Entry("k")
	e.(*VacantEntry[string, int]).Insert(1, time.Second)

	clock.Advance(2 * time.Second)
	if _, ok := cache.Get("k"); ok {
		t.Error("expected 'k' to expire after its own duration")
	}
}

func TestEntry_VacantInsertWhenFull(t *testing.T) {
	cache, _ := newTestCache(t, 2, time.Minute)
	cache.Insert("a", 1)
	cache.Insert("b", 2)

	e, _ := cache.Entry("c")
	e.(*VacantEntry[string, int]).Insert(3, time.Minute)

	if cache.Len() != 2 {
		t.Errorf("expected len to stay at capacity, got %d", cache.Len())
	}
	if cache.ContainsKey("a") {
		t.Error("expected 'a' to be evicted")
	}
}

func TestEntry_VacantInsertTwicePanics(t *testing.T) {
	cache, _ := newTestCache(t, 2, time.Minute)

	e, _ := cache.Entry("k")
	vacant := e.(*VacantEntry[string, int])
	vacant.Insert(1, time.Minute)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected second insert to panic")
		}
	}()
	vacant.Insert(2, time.Minute)
}

func TestEntry_Occupied(t *testing.T) {
	cache, clock := newTestCache(t, 2, time.Second)
	cache.Insert("k", 1)

	e, ok := cache.Entry("k")
	if !ok {
		t.Fatal("expected a handle for a live key")
	}
	occupied, isOccupied := e.(*OccupiedEntry[string, int])
	if !isOccupied {
		t.Fatalf("expected an occupied entry, got %T", e)
	}
	if occupied.Key() != "k" || occupied.Get() != 1 {
		t.Errorf("unexpected entry %s=%d", occupied.Key(), occupied.Get())
	}

	*occupied.GetMut() = 2
	if v, _ := cache.Peek("k"); v != 2 {
		t.Errorf("expected mutation through GetMut, got %d", v)
	}

	old := occupied.Insert(3, time.Hour)
	if old != 2 {
		t.Errorf("expected previous value 2, got %d", old)
	}
	if want := clock.Now().Add(time.Hour); !occupied.Expiration().Equal(want) {
		t.Errorf("expected expiration %v, got %v", want, occupied.Expiration())
	}

	clock.Advance(time.Minute)
	if v, ok := cache.Get("k"); !ok || v != 3 {
		t.Errorf("expected refreshed 'k' to be 3, got %v %v", v, ok)
	}
}

func TestEntry_OccupiedInsertKeepsOrder(t *testing.T) {
	cache, _ := newTestCache(t, 2, time.Minute)
	cache.Insert("a", 1)
	cache.Insert("b", 2)

	e, _ := cache.Entry("a")
	e.(*OccupiedEntry[string, int]).Insert(10, time.Minute)

	cache.Insert("c", 3)
	if cache.ContainsKey("a") {
		t.Error("expected 'a' to stay oldest and be evicted")
	}
}

func TestEntry_Expired(t *testing.T) {
	cache, clock := newTestCache(t, 2, time.Second)
	cache.Insert("k", 1)
	clock.Advance(2 * time.Second)

	if !cache.ContainsKey("k") {
		t.Fatal("expected expired 'k' to still be stored before lookup")
	}

	if e, ok := cache.Entry("k"); ok || e != nil {
		t.Errorf("expected no handle for an expired key, got %v", e)
	}
	if cache.ContainsKey("k") {
		t.Error("expected Entry to purge expired 'k'")
	}

	if e, ok := cache.Entry("k"); !ok {
		t.Error("expected a vacant handle once 'k' was purged")
	} else if _, isVacant := e.(*VacantEntry[string, int]); !isVacant {
		t.Errorf("expected a vacant entry, got %T", e)
	}
}

func TestEntry_StaleOccupiedPanics(t *testing.T) {
	cache, _ := newTestCache(t, 2, time.Minute)
	cache.Insert("k", 1)

	e, _ := cache.Entry("k")
	cache.Remove("k")
	cache.Insert("j", 2)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected stale occupied entry to panic")
		}
	}()
	e.(*OccupiedEntry[string, int]).Get()
}

func TestEntry_VacantInsertOnEvictReinsert(t *testing.T) {
	var cache *Cache[string, int]
	cache = NewBuilder[string, int]().
		Capacity(2).
		Duration(time.Minute).
		OnEvict(func(key string, value int, reason EvictReason) {
			if reason == EvictedCapacity && key == "a" {
				cache.Insert("re-"+key, value)
			}
		}).
		MustBuild()

	cache.Insert("a", 1)
	cache.Insert("b", 2)

	e, _ := cache.Entry("c")
	p := e.(*VacantEntry[string, int]).Insert(3, time.Minute)

	if cache.Len() > cache.Capacity() {
		t.Fatalf("len %d exceeds capacity %d", cache.Len(), cache.Capacity())
	}
	if *p != 3 {
		t.Errorf("expected inserted value 3, got %d", *p)
	}
	if got := cache.Keys(); len(got) != 2 || got[0] != "c" || got[1] != "re-a" {
		t.Errorf("unexpected keys %v", got)
	}
}
