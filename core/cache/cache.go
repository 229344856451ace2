package cache

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/aguilerap-jc/thecatmanor/config"
)

// redisPrefix namespaces mirrored entries so a shared Redis can serve other apps.
const redisPrefix = "catmanor:cache:"

// Cache is a thread-safe TTL key-value store. Entries can carry tags so whole
// groups (e.g. all cached Shopify products) can be dropped at once. When Redis
// is configured the entries are mirrored there as JSON, letting multiple
// instances share warm catalog data; without Redis it is purely in-process.
// Construct with New and pass by reference; the owner controls the lifetime.
type Cache struct {
	m sync.Map // key string -> cacheItem
	// tagIndex maps tag string to a *sync.Map used as a set of keys
	tagIndex sync.Map
}

func New() *Cache {
	return &Cache{}
}

type cacheItem struct {
	Value     interface{}
	ExpiresAt int64 // Unix nanoseconds; 0 means no expiration
}

// Set stores a value for a key with an optional TTL (in seconds) and optional
// tags. If ttl is 0 the value does not expire.
func (c *Cache) Set(key string, value interface{}, ttl int64, tags []string) {
	var expiresAt int64
	if ttl > 0 {
		expiresAt = time.Now().Add(time.Duration(ttl) * time.Second).UnixNano()
	}
	c.m.Store(key, cacheItem{Value: value, ExpiresAt: expiresAt})
	for _, tag := range tags {
		val, _ := c.tagIndex.LoadOrStore(tag, &sync.Map{})
		val.(*sync.Map).Store(key, struct{}{})
	}
	if config.RedisClient != nil {
		if data, err := json.Marshal(value); err == nil {
			config.RedisClient.Set(config.RedisCtx(), redisPrefix+key,
				data, time.Duration(ttl)*time.Second)
		}
	}
}

// Get retrieves a raw value. Returns (nil, false) if absent or expired.
func (c *Cache) Get(key string) (interface{}, bool) {
	v, ok := c.m.Load(key)
	if !ok {
		return nil, false
	}
	item := v.(cacheItem)
	if item.ExpiresAt > 0 && time.Now().UnixNano() > item.ExpiresAt {
		c.m.Delete(key)
		return nil, false
	}
	return item.Value, true
}

// GetInto retrieves a value and decodes it into dst (a pointer). The local map
// is consulted first, then the Redis mirror. Values pass through JSON either
// way, so dst sees the same shape regardless of where the hit came from.
func (c *Cache) GetInto(key string, dst interface{}) bool {
	if v, ok := c.Get(key); ok {
		data, err := json.Marshal(v)
		if err != nil {
			return false
		}
		return json.Unmarshal(data, dst) == nil
	}
	if config.RedisClient != nil {
		data, err := config.RedisClient.Get(config.RedisCtx(), redisPrefix+key).Bytes()
		if err == nil && json.Unmarshal(data, dst) == nil {
			return true
		}
	}
	return false
}

// Delete removes a key from the cache (and the Redis mirror).
func (c *Cache) Delete(key string) {
	c.m.Delete(key)
	c.tagIndex.Range(func(_, val interface{}) bool {
		val.(*sync.Map).Delete(key)
		return true
	})
	if config.RedisClient != nil {
		config.RedisClient.Del(config.RedisCtx(), redisPrefix+key)
	}
}

// DeleteByTag removes every key carrying the tag.
func (c *Cache) DeleteByTag(tag string) {
	val, ok := c.tagIndex.Load(tag)
	if !ok {
		return
	}
	km := val.(*sync.Map)
	km.Range(func(key, _ interface{}) bool {
		c.Delete(key.(string))
		km.Delete(key)
		return true
	})
	c.tagIndex.Delete(tag)
}

// Flush drops every entry.
func (c *Cache) Flush() {
	c.m.Range(func(key, _ interface{}) bool {
		c.Delete(key.(string))
		return true
	})
	c.tagIndex.Range(func(tag, _ interface{}) bool {
		c.tagIndex.Delete(tag)
		return true
	})
}

// Len counts live (unexpired) entries.
func (c *Cache) Len() int {
	n := 0
	now := time.Now().UnixNano()
	c.m.Range(func(_, v interface{}) bool {
		item := v.(cacheItem)
		if item.ExpiresAt == 0 || now <= item.ExpiresAt {
			n++
		}
		return true
	})
	return n
}
