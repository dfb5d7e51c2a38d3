package cache

import (
	"context"
	"encoding/json"

	"github.com/doclibhq/doclib-be/types"
	"github.com/redis/go-redis/v9"
)

type redisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) LibraryCache {
	return &redisCache{
		client: client,
	}
}

func (c *redisCache) SaveDocuments(ctx context.Context, docs []types.LibraryDocument) error {
	return c.save(ctx, DocumentsKey, docs)
}

func (c *redisCache) LoadDocuments(ctx context.Context) ([]types.LibraryDocument, error) {
	var docs []types.LibraryDocument
	if err := c.load(ctx, DocumentsKey, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (c *redisCache) SaveSynthesized(ctx context.Context, docs []types.SynthesizedDocument) error {
	return c.save(ctx, SynthesizedKey, docs)
}

func (c *redisCache) LoadSynthesized(ctx context.Context) ([]types.SynthesizedDocument, error) {
	var docs []types.SynthesizedDocument
	if err := c.load(ctx, SynthesizedKey, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (c *redisCache) save(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, 0).Err()
}

// load leaves v untouched when the key has never been written.
func (c *redisCache) load(ctx context.Context, key string, v interface{}) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, v)
}
