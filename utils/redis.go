package utils

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

func initRedis() *redis.Client {
	if redisClient == nil {
		addr := os.Getenv("REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		redisClient = redis.NewClient(&redis.Options{Addr: addr})
	}
	return redisClient
}

// CacheGetJSON đọc cache; trả false khi miss hoặc redis lỗi (coi như miss)
func CacheGetJSON(ctx context.Context, key string, dest any) bool {
	raw, err := initRedis().Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(raw), dest) == nil
}

// CacheSetJSON ghi cache best effort, lỗi bỏ qua
func CacheSetJSON(ctx context.Context, key string, value any, ttl time.Duration) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	initRedis().Set(ctx, key, raw, ttl)
}

func CacheDelete(ctx context.Context, keys ...string) {
	initRedis().Del(ctx, keys...)
}
