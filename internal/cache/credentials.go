package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// CredentialCache хранит в Redis соответствие "шифротекст API ключа -> id
// пользователя", чтобы не ходить в базу на каждый запрос. Кэш опциональный:
// nil-кэш всегда промахивается, и гейт просто идёт в базу.
type CredentialCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCredentialCache(rdb *redis.Client, ttl time.Duration) *CredentialCache {
	return &CredentialCache{rdb: rdb, ttl: ttl}
}

func (c *CredentialCache) Get(ctx context.Context, encryptedKey string) (uint, bool) {
	if c == nil {
		return 0, false
	}
	id, err := c.rdb.Get(ctx, "apikey:"+encryptedKey).Uint64()
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func (c *CredentialCache) Set(ctx context.Context, encryptedKey string, userID uint) {
	if c == nil {
		return
	}
	c.rdb.Set(ctx, "apikey:"+encryptedKey, uint64(userID), c.ttl)
}
