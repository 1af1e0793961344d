package utils

import (
	"context"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/amanahdev/ramadan-companion/config"
)

var (
	redisClient  *redis.Client
	redisOnce    sync.Once
	redisEnabled = true
)

// GetRedis returns a singleton Redis client based on loaded config, or nil
// when Redis is disabled. Callers must tolerate nil and fall back to their
// in-memory paths.
func GetRedis() *redis.Client {
	if !redisEnabled {
		return nil
	}
	redisOnce.Do(func() {
		cfg := config.Get()
		redisClient = redis.NewClient(&redis.Options{
			Addr:         net.JoinHostPort(cfg.RedisHost, strconv.Itoa(cfg.RedisPort)),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			DialTimeout:  3 * time.Second,
			ReadTimeout:  2 * time.Second,
			WriteTimeout: 2 * time.Second,
		})
		// Ping to validate; errors are tolerated so in-memory fallbacks apply
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = redisClient.Ping(ctx).Err()
	})
	return redisClient
}

// DisableRedisForTest turns the Redis layer off so tests never dial out.
func DisableRedisForTest() {
	redisEnabled = false
}
