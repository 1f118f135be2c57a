package utils

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/uniteam/uniteam-backend/config"
)

// NewRedisClient connects to Redis. Returns nil when no address is
// configured, callers treat a nil client as "cache disabled".
func NewRedisClient(cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		log.Println("⚠️ Redis not configured, caching and status feed disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis ping failed: %v", err)
	} else {
		log.Println("✅ Redis connected")
	}

	return client
}
