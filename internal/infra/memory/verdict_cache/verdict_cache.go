package infra_memory_verdict_cache

import (
	"context"
	"sync"

	"github.com/humanbelnik/wordchain/internal/model"
)

// Cache is a process local verdict store. Entries never expire.
type Cache struct {
	mu       sync.RWMutex
	verdicts map[string]model.Verdict
}

func New() *Cache {
	return &Cache{
		verdicts: make(map[string]model.Verdict),
	}
}

func (c *Cache) Lookup(ctx context.Context, word string) (model.Verdict, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.verdicts[word], nil
}

func (c *Cache) Store(ctx context.Context, word string, verdict model.Verdict) error {
	if verdict == model.VerdictUnknown {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.verdicts[word] = verdict
	return nil
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.verdicts)
}
