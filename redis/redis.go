package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, dashboard caching disabled")
		return
	}

	Client = redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	if _, err := Client.Ping(Ctx).Result(); err != nil {
		log.Printf("Failed to connect to Redis: %v, caching disabled", err)
		Client = nil
		return
	}
	fmt.Println("Connected to Redis")
}

// CacheJSON stores v under key with a TTL. No-op when Redis is absent.
func CacheJSON(key string, v interface{}, ttl time.Duration) {
	if Client == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	Client.Set(Ctx, key, data, ttl)
}

// GetJSON loads key into v, reporting whether a cached value was found.
func GetJSON(key string, v interface{}) bool {
	if Client == nil {
		return false
	}
	data, err := Client.Get(Ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

// FlushAll clears every cached entry. Used by the admin maintenance
// endpoint.
func FlushAll() error {
	if Client == nil {
		return nil
	}
	return Client.FlushDB(Ctx).Err()
}
