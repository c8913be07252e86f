package preview

import (
	"container/list"
	"sync"
)

type lruEntry struct {
	key   Key
	value string
}

// lru is a mutex-guarded least-recently-used cache of rendered previews.
type lru struct {
	capacity int
	items    map[Key]*list.Element
	order    *list.List
	mu       sync.Mutex
}

func newLRU(capacity int) *lru {
	if capacity <= 0 {
		panic("preview cache capacity must be positive")
	}
	return &lru{
		capacity: capacity,
		items:    make(map[Key]*list.Element),
		order:    list.New(),
	}
}

func (c *lru) get(key Key) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(*lruEntry).value, true
	}
	return "", false
}

func (c *lru) put(key Key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*lruEntry).value = value
		return
	}

	c.items[key] = c.order.PushFront(&lruEntry{key: key, value: value})
	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*lruEntry).key)
	}
}

func (c *lru) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
