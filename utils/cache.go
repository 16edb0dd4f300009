package utils

import (
	"context"
	"log"
	"time"

	"dentax/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient backs the appointment-option cache.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client. Redis being unreachable is
// not fatal: the cache is an optimization and readers fall back to Mongo.
// The client reconnects on its own once Redis comes back.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Printf("Redis cache unavailable, serving without it: %v", err)
	}
}

// GetCacheClient returns the cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}
