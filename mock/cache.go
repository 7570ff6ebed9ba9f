package mock

import "github.com/chemark/rssos"

var _ rssos.Cache = (*Cache)(nil)

// Cache is a mock implementation of rssos.Cache backed by a plain map.
// Set the function fields to override individual operations.
type Cache struct {
	GetFn    func(key string) (any, bool)
	SetFn    func(key string, value any)
	HasFn    func(key string) bool
	DeleteFn func(key string)

	Values map[string]any
}

// NewCache creates a map-backed mock cache.
func NewCache() *Cache {
	return &Cache{Values: make(map[string]any)}
}

func (c *Cache) Get(key string) (any, bool) {
	if c.GetFn != nil {
		return c.GetFn(key)
	}
	v, ok := c.Values[key]
	return v, ok
}

func (c *Cache) Set(key string, value any) {
	if c.SetFn != nil {
		c.SetFn(key, value)
		return
	}
	c.Values[key] = value
}

func (c *Cache) Has(key string) bool {
	if c.HasFn != nil {
		return c.HasFn(key)
	}
	_, ok := c.Values[key]
	return ok
}

func (c *Cache) Delete(key string) {
	if c.DeleteFn != nil {
		c.DeleteFn(key)
		return
	}
	delete(c.Values, key)
}
