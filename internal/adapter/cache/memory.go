package cache

import (
	"sync"

	"reachpoint/internal/core/port"
)

// Memory is a process-local port.LocalCache for tests. The server always
// runs on Badger, in memory when CACHE_IN_MEMORY is set.
type Memory struct {
	mu sync.RWMutex
	m  map[string][]byte
}

// NewMemory returns an empty cache.
func NewMemory() *Memory {
	return &Memory{m: map[string][]byte{}}
}

func (c *Memory) Get(key string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.m[key]
	if !ok {
		return nil, port.ErrCacheMiss
	}
	return append([]byte(nil), v...), nil
}

func (c *Memory) Set(key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = append([]byte(nil), value...)
	return nil
}

func (c *Memory) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.m, key)
	return nil
}
