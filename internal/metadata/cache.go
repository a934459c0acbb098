package metadata

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const lookupCacheTTL = 24 * time.Hour

// Source is any title-metadata lookup the cache can sit in front of.
type Source interface {
	Lookup(title string) (*MovieMetadata, error)
}

// LookupCache is a Redis read-through cache over a metadata Source. Cache
// failures fall open to the upstream API; only successful lookups are
// cached, so NotFound and Transient outcomes are always re-checked.
type LookupCache struct {
	source Source
	rdb    *redis.Client
	ttl    time.Duration
}

func NewLookupCache(source Source, redisAddr string) *LookupCache {
	return &LookupCache{
		source: source,
		rdb:    redis.NewClient(&redis.Options{Addr: redisAddr}),
		ttl:    lookupCacheTTL,
	}
}

func (c *LookupCache) Lookup(title string) (*MovieMetadata, error) {
	ctx := context.Background()
	key := cacheKey(title)

	if data, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		meta := &MovieMetadata{}
		if err := json.Unmarshal(data, meta); err == nil {
			return meta, nil
		}
	}

	meta, err := c.source.Lookup(title)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(meta); err == nil {
		if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
			log.Printf("metadata: cache write for %q: %v", title, err)
		}
	}
	return meta, nil
}

func cacheKey(title string) string {
	return "omdb:title:" + strings.ToLower(strings.TrimSpace(title))
}
