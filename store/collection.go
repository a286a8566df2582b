package store

import (
	"sort"
	"sync"

	"storefront/codec"
	"storefront/database"
)

// collection is one entity kind's keyed map plus its monotonic id counter and
// backing resource. Writes flush the whole collection before the lock is
// released, so flushes of the same kind never interleave and every caller
// observes durability before continuing. Reads and writes of different kinds
// never contend: each kind has its own lock.
type collection[T any] struct {
	mu    sync.RWMutex
	items map[int]T
	next  int
	res   database.Resource
	key   func(T) int
	clone func(T) T
}

// loadCollection reads the backing resource and seeds the id counter at
// max(existing ids)+1, or 1 when the collection is empty.
func loadCollection[T any](res database.Resource, key func(T) int, clone func(T) T) (*collection[T], error) {
	data, err := res.Load()
	if err != nil {
		return nil, err
	}
	var list []T
	if err := codec.Unmarshal(data, &list); err != nil {
		return nil, err
	}

	c := &collection[T]{
		items: make(map[int]T, len(list)),
		next:  1,
		res:   res,
		key:   key,
		clone: clone,
	}
	for _, item := range list {
		id := key(item)
		c.items[id] = item
		if id >= c.next {
			c.next = id + 1
		}
	}
	return c, nil
}

func (c *collection[T]) get(id int) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	return c.clone(item), true
}

func (c *collection[T]) all() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sortedLocked()
}

func (c *collection[T]) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// save upserts under id, allocating the next id when id is zero. build
// receives the final id and returns the entity to store. The allocation,
// insert and flush happen under one write lock, so concurrent saves can
// neither share an id nor interleave flushes.
func (c *collection[T]) save(id int, build func(id int) T) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if id == 0 {
		id = c.next
	}
	if id >= c.next {
		c.next = id + 1
	}
	c.items[id] = c.clone(build(id))
	return id, c.flushLocked()
}

func (c *collection[T]) delete(id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return ErrNotFound
	}
	delete(c.items, id)
	return c.flushLocked()
}

func (c *collection[T]) flushLocked() error {
	data, err := codec.Marshal(c.sortedLocked())
	if err != nil {
		return persistErr(c.res.Name(), err)
	}
	if err := c.res.Flush(data); err != nil {
		return persistErr(c.res.Name(), err)
	}
	return nil
}

func (c *collection[T]) sortedLocked() []T {
	list := make([]T, 0, len(c.items))
	for _, item := range c.items {
		list = append(list, c.clone(item))
	}
	sort.Slice(list, func(i, j int) bool { return c.key(list[i]) < c.key(list[j]) })
	return list
}
