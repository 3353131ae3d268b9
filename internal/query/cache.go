package query

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/simplelru"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultSize      = 256
	DefaultStaleTime = 30 * time.Second
)

type entry struct {
	parts     []string
	data      any
	updatedAt time.Time
	stale     bool
	epoch     uint64
}

type Stats struct {
	Hits          uint64 `json:"hits"`
	Misses        uint64 `json:"misses"`
	Invalidations uint64 `json:"invalidations"`
	Removals      uint64 `json:"removals"`
	Entries       int    `json:"entries"`
}

// Cache holds the results of reads by Key. Entries go stale after staleTime or
// when a prefix covering them is invalidated.
type Cache struct {
	mu        sync.Mutex
	entries   *simplelru.LRU[string, *entry]
	group     singleflight.Group
	staleTime time.Duration
	now       func() time.Time

	// epoch moves on every invalidation or removal. A fetch that started in an
	// older epoch stores its result as stale.
	epoch uint64
	stats Stats
}

func New(size int, staleTime time.Duration) (*Cache, error) {
	if size <= 0 {
		size = DefaultSize
	}
	entries, err := simplelru.NewLRU[string, *entry](size, nil)
	if err != nil {
		return nil, fmt.Errorf("query cache: %w", err)
	}
	return &Cache{entries: entries, staleTime: staleTime, now: time.Now}, nil
}

func (c *Cache) fresh(e *entry) bool {
	return !e.stale && c.now().Sub(e.updatedAt) < c.staleTime
}

// Fetch returns the cached value for key while it is fresh, and otherwise calls fn.
// Concurrent fetches of one key share a single call to fn. A failed call returns
// its error and leaves any earlier value in place.
func Fetch[T any](ctx context.Context, c *Cache, key Key, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	parts := key.parts()
	id := key.String()

	c.mu.Lock()
	if e, ok := c.entries.Get(id); ok && c.fresh(e) {
		c.stats.Hits++
		c.mu.Unlock()
		v, ok := e.data.(T)
		if !ok {
			return zero, fmt.Errorf("query cache: %s holds %T", id, e.data)
		}
		return v, nil
	}
	c.stats.Misses++
	epoch := c.epoch
	c.mu.Unlock()

	callCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(fmt.Sprintf("%s#%d", id, epoch), func() (any, error) {
		v, err := fn(callCtx)
		if err != nil {
			return nil, err
		}
		c.store(id, parts, v, epoch)
		return v, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		v, ok := res.Val.(T)
		if !ok {
			return zero, fmt.Errorf("query cache: %s holds %T", id, res.Val)
		}
		return v, nil
	}
}

func (c *Cache) store(id string, parts []string, data any, epoch uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	// A late fetch from an older epoch must not replace newer data.
	if e, ok := c.entries.Peek(id); ok && e.epoch > epoch {
		return
	}
	c.entries.Add(id, &entry{
		parts:     parts,
		data:      data,
		updatedAt: c.now(),
		stale:     epoch != c.epoch,
		epoch:     epoch,
	})
}

// Peek returns whatever is cached for key, fresh or not, without fetching.
func Peek[T any](c *Cache, key Key) (T, bool) {
	var zero T
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries.Peek(key.String())
	if !ok {
		return zero, false
	}
	v, ok := e.data.(T)
	return v, ok
}

func (c *Cache) match(prefix Key, fn func(id string, e *entry)) int {
	p := prefix.parts()
	n := 0
	for _, id := range c.entries.Keys() {
		e, ok := c.entries.Peek(id)
		if ok && hasPrefix(e.parts, p) {
			fn(id, e)
			n++
		}
	}
	return n
}

// Invalidate marks every entry under prefix stale and returns how many matched.
func (c *Cache) Invalidate(prefix Key) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	n := c.match(prefix, func(_ string, e *entry) { e.stale = true })
	c.stats.Invalidations += uint64(n)
	return n
}

// Remove drops every entry under prefix and returns how many matched.
func (c *Cache) Remove(prefix Key) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	var ids []string
	n := c.match(prefix, func(id string, _ *entry) { ids = append(ids, id) })
	for _, id := range ids {
		c.entries.Remove(id)
	}
	c.stats.Removals += uint64(n)
	return n
}

func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.stats
	s.Entries = c.entries.Len()
	return s
}
