package cache

import (
	"context"
	"sync"

	"github.com/doclibhq/doclib-be/types"
)

// memoryCache backs deployments that run without Redis, and the tests. It
// keeps the same wholesale-overwrite contract as the Redis cache.
type memoryCache struct {
	mu          sync.Mutex
	documents   []types.LibraryDocument
	synthesized []types.SynthesizedDocument
}

func NewMemoryCache() LibraryCache {
	return &memoryCache{}
}

func (c *memoryCache) SaveDocuments(ctx context.Context, docs []types.LibraryDocument) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.documents = append([]types.LibraryDocument(nil), docs...)
	return nil
}

func (c *memoryCache) LoadDocuments(ctx context.Context) ([]types.LibraryDocument, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]types.LibraryDocument(nil), c.documents...), nil
}

func (c *memoryCache) SaveSynthesized(ctx context.Context, docs []types.SynthesizedDocument) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.synthesized = append([]types.SynthesizedDocument(nil), docs...)
	return nil
}

func (c *memoryCache) LoadSynthesized(ctx context.Context) ([]types.SynthesizedDocument, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]types.SynthesizedDocument(nil), c.synthesized...), nil
}
