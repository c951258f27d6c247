// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"hotelops/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client (dashboard stats reads).
	CacheClient *redis.Client
	// EventCacheClient is the dedicated client for write-event deduplication.
	// It shares the logical DB with the asynq event queue so a claimed event
	// ID lives next to the queue that delivered it.
	EventCacheClient *redis.Client
)

// InitCache initializes the generic Redis cache client (using DB from AppConfig for general caching).
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitEventCache initializes the Redis client used for event-ID deduplication.
func InitEventCache() {
	EventCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisEventQueueDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := EventCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Event Cache): %v", err)
	}
}

// GetEventCacheClient returns the Redis client for event deduplication.
func GetEventCacheClient() *redis.Client {
	if EventCacheClient == nil {
		InitEventCache()
	}
	return EventCacheClient
}
