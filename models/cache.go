package models

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

func InitRedis() {
	redisURL := os.Getenv("REDIS_URL")

	var opt *redis.Options
	if redisURL != "" {
		parsedOpt, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Println("Failed to parse Redis URL:", err)
			log.Println("Running without cache")
			return
		}
		opt = parsedOpt
	} else {
		addr := os.Getenv("REDIS_ADDR")
		if addr == "" {
			log.Println("REDIS_ADDR not set, running without cache")
			return
		}
		opt = &redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       0,
		}
	}

	RedisClient = redis.NewClient(opt)

	_, err := RedisClient.Ping(context.Background()).Result()
	if err != nil {
		log.Println("Redis connection failed:", err)
		log.Println("Running without cache")
		RedisClient = nil
		return
	}

	log.Println("Redis connected")
}

func CloseRedis() {
	if RedisClient != nil {
		RedisClient.Close()
	}
}

// CacheGet returns the cached value for key, or false when the cache is
// disabled or the key is missing.
func CacheGet(key string) (string, bool) {
	if RedisClient == nil {
		return "", false
	}
	val, err := RedisClient.Get(context.Background(), key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func CacheSet(key, value string, ttl time.Duration) {
	if RedisClient == nil {
		return
	}
	RedisClient.Set(context.Background(), key, value, ttl)
}
