package cache

// Cache is a generic LRU cache with a soft entry limit.
//
// Insertions never evict. The limit is applied by Trim, which drops the
// least recently used entries and passes each to the eviction callback, if
// any. Owners call Trim at points where no caller still holds a key.
type Cache[K comparable, V any] struct {
	entries map[K]*entry[K, V]
	order   lruList[K]
	limit   int
	onEvict func(K, V)
}

type entry[K comparable, V any] struct {
	value V
	node  *lruNode[K]
}

// New creates a cache that Trim bounds to limit entries.
// A limit of 0 or less means unlimited.
func New[K comparable, V any](limit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]*entry[K, V]),
		limit:   limit,
	}
}

// OnEvict registers fn to be called with every entry dropped by Trim.
func (c *Cache[K, V]) OnEvict(fn func(K, V)) {
	c.onEvict = fn
}

// Get retrieves a value and marks it most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.MoveToFront(e.node)
	return e.value, true
}

// Peek retrieves a value without touching recency.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores a value, replacing any previous value for key.
func (c *Cache[K, V]) Set(key K, value V) {
	if e, ok := c.entries[key]; ok {
		e.value = value
		c.order.MoveToFront(e.node)
		return
	}
	c.entries[key] = &entry[K, V]{value: value, node: c.order.PushFront(key)}
}

// GetOrCreate returns the cached value for key or builds it with create.
// A failed create leaves the cache untouched.
func (c *Cache[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, err := create()
	if err != nil {
		var zero V
		return zero, err
	}
	c.Set(key, v)
	return v, nil
}

// Trim evicts least recently used entries until the limit holds and
// returns how many were dropped.
func (c *Cache[K, V]) Trim() int {
	if c.limit <= 0 {
		return 0
	}
	n := 0
	for len(c.entries) > c.limit {
		key, ok := c.order.RemoveOldest()
		if !ok {
			break
		}
		e := c.entries[key]
		delete(c.entries, key)
		n++
		if c.onEvict != nil {
			c.onEvict(key, e.value)
		}
	}
	return n
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	return len(c.entries)
}

// Keys returns the keys from most to least recently used.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.entries))
	for n := c.order.head; n != nil; n = n.next {
		keys = append(keys, n.key)
	}
	return keys
}
