package asset

import (
	"container/list"
	"context"
	"image"
	"sync"

	"golang.org/x/sync/singleflight"
)

// cacheEntry is a decoded image stored under its source.
type cacheEntry struct {
	img image.Image
	src string
}

// Cached is a Loader that keeps decoded images in memory.
//
// Entries are evicted least-recently-used once maxEntries is reached.
// Concurrent misses for the same source are collapsed into a single load.
// Cached images are shared between callers and must not be modified.
type Cached struct {
	next     Loader
	items    map[string]*list.Element
	eviction *list.List
	group    singleflight.Group
	mu       sync.Mutex
	max      int
}

// NewCached wraps next with an in-memory LRU cache.
// A non-positive maxEntries disables eviction.
func NewCached(next Loader, maxEntries int) *Cached {
	return &Cached{
		next:     next,
		items:    make(map[string]*list.Element),
		eviction: list.New(),
		max:      maxEntries,
	}
}

// Load implements Loader. Failed loads are not cached.
//
// The shared load ignores cancellation of the caller that started it.
// Each caller returns as soon as its own ctx is done.
func (c *Cached) Load(ctx context.Context, src string) (image.Image, error) {
	if img, ok := c.get(src); ok {
		return img, nil
	}

	flight := context.WithoutCancel(ctx)
	ch := c.group.DoChan(src, func() (any, error) {
		img, err := c.next.Load(flight, src)
		if err != nil {
			return nil, err
		}
		c.set(src, img)
		return img, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(image.Image), nil
	}
}

// Len returns the number of cached images.
func (c *Cached) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Purge drops every cached image.
func (c *Cached) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*list.Element)
	c.eviction.Init()
}

func (c *Cached) get(src string) (image.Image, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[src]
	if !ok {
		return nil, false
	}
	c.eviction.MoveToFront(elem)
	return elem.Value.(*cacheEntry).img, true
}

func (c *Cached) set(src string, img image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[src]; ok {
		elem.Value.(*cacheEntry).img = img
		c.eviction.MoveToFront(elem)
		return
	}

	if c.max > 0 && len(c.items) >= c.max {
		if oldest := c.eviction.Back(); oldest != nil {
			c.eviction.Remove(oldest)
			delete(c.items, oldest.Value.(*cacheEntry).src)
		}
	}

	c.items[src] = c.eviction.PushFront(&cacheEntry{src: src, img: img})
}
