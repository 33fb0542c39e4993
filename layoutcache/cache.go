// Package layoutcache memoizes computed texture layouts.
//
// Layout computation is deterministic, so identical (device, debug,
// resource) triples always produce identical results and can be shared
// freely. Resource creation tends to cluster around a handful of
// descriptions (swapchain-sized targets, shadow maps, mip-complete
// material textures), which makes a small LRU effective.
//
// The cache is sharded to keep lock contention low when many threads
// create resources concurrently.
package layoutcache

import (
	"hash/maphash"
	"sync"
	"sync/atomic"

	"github.com/gogpu/texlayout"
)

const (
	// shardCount must be a power of two for mask-based selection.
	shardCount = 16
	shardMask  = shardCount - 1

	// DefaultCapacity is the default number of layouts kept per shard.
	DefaultCapacity = 64
)

// Key identifies one layout computation. All fields are plain values,
// so the struct is comparable and hashable.
type Key struct {
	Dev texlayout.DevInfo
	Dbg texlayout.DebugFlags
	Res texlayout.ResourceDesc
}

// entry is one cached layout with its position in the shard's LRU
// order.
type entry struct {
	key    Key
	layout *texlayout.Layout

	newer, older *entry
}

// shard is an independently locked portion of the cache.
type shard struct {
	mu      sync.Mutex
	entries map[Key]*entry

	// LRU order: newest at the front of the intrusive list.
	newest, oldest *entry
}

// Cache is a concurrency-safe, sharded LRU cache of computed layouts.
// The zero value is not usable; call New.
//
// Cached layouts are shared between callers and must be treated as
// read-only, which Layout already requires.
type Cache struct {
	shards   [shardCount]shard
	seed     maphash.Seed
	capacity int

	hits   atomic.Uint64
	misses atomic.Uint64
}

// Stats is a snapshot of cache effectiveness counters.
type Stats struct {
	Hits   uint64
	Misses uint64
}

// New creates a cache holding up to capacity layouts per shard.
// Non-positive capacity selects DefaultCapacity.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &Cache{
		seed:     maphash.MakeSeed(),
		capacity: capacity,
	}
	for i := range c.shards {
		c.shards[i].entries = make(map[Key]*entry)
	}
	return c
}

func (c *Cache) shardFor(key Key) *shard {
	return &c.shards[maphash.Comparable(c.seed, key)&shardMask]
}

// Get returns the cached layout for a key, if present.
func (c *Cache) Get(key Key) (*texlayout.Layout, bool) {
	s := c.shardFor(key)

	s.mu.Lock()
	e, ok := s.entries[key]
	if ok {
		s.moveToFront(e)
	}
	s.mu.Unlock()

	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return e.layout, true
}

// GetOrCompute returns the cached layout for a key, computing and
// caching it on a miss. Only layouts computed without caller-owned
// slice arrays go through the cache; a cached result carries no slice
// offsets to hand out.
//
// Soft layout failures are returned and not cached: the caller is
// expected to retry with a different description anyway.
func (c *Cache) GetOrCompute(key Key) (*texlayout.Layout, error) {
	if l, ok := c.Get(key); ok {
		return l, nil
	}

	l, err := texlayout.ComputeLayout(key.Dev, &key.Res, key.Dbg, nil)
	if err != nil {
		return nil, err
	}
	c.put(key, l)
	return l, nil
}

func (c *Cache) put(key Key, l *texlayout.Layout) {
	s := c.shardFor(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		// A concurrent computation won the race; keep its result.
		s.moveToFront(e)
		return
	}

	for len(s.entries) >= c.capacity {
		victim := s.oldest
		if victim == nil {
			break
		}
		s.unlink(victim)
		delete(s.entries, victim.key)
	}

	e := &entry{key: key, layout: l}
	s.pushFront(e)
	s.entries[key] = e
}

// Stats returns a snapshot of the hit/miss counters.
func (c *Cache) Stats() Stats {
	return Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
	}
}

// Len returns the total number of cached layouts.
func (c *Cache) Len() int {
	n := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		n += len(s.entries)
		s.mu.Unlock()
	}
	return n
}

func (s *shard) pushFront(e *entry) {
	e.older = s.newest
	e.newer = nil
	if s.newest != nil {
		s.newest.newer = e
	}
	s.newest = e
	if s.oldest == nil {
		s.oldest = e
	}
}

func (s *shard) unlink(e *entry) {
	if e.newer != nil {
		e.newer.older = e.older
	} else {
		s.newest = e.older
	}
	if e.older != nil {
		e.older.newer = e.newer
	} else {
		s.oldest = e.newer
	}
	e.newer, e.older = nil, nil
}

func (s *shard) moveToFront(e *entry) {
	if s.newest == e {
		return
	}
	s.unlink(e)
	s.pushFront(e)
}
