package utils

import (
	"container/list"
	"sync"
)

type Cache[K comparable, V any] interface {
	Add(K, V)
	Get(K) (V, bool)
}

// Bounded map cache with FIFO eviction. Used for rendered SVG previews,
// which are pure functions of their key.
type cache[K comparable, V any] struct {
	sync.RWMutex

	entries map[K]V
	order   *list.List
	maxSize int
}

func NewCache[K comparable, V any](maxSize int) Cache[K, V] {
	return &cache[K, V]{
		entries: make(map[K]V),
		order:   list.New(),
		maxSize: maxSize,
	}
}

func (c *cache[K, V]) Add(k K, v V) {
	c.Lock()
	defer c.Unlock()

	if _, ok := c.entries[k]; ok {
		c.entries[k] = v
		return
	}
	c.entries[k] = v
	c.order.PushBack(k)
	if c.order.Len() > c.maxSize {
		oldest := c.order.Front()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(K))
	}
}

func (c *cache[K, V]) Get(k K) (V, bool) {
	c.RLock()
	defer c.RUnlock()

	v, ok := c.entries[k]
	return v, ok
}
