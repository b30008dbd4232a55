package utils

import (
	"context"
	"fmt"
	"os"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

// IsRedisConfigured returns true when REDIS_HOST is provided. Binaries fall
// back to in-process stores otherwise.
func IsRedisConfigured() bool {
	return os.Getenv("REDIS_HOST") != ""
}

func redisAddr() string {
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}
	return fmt.Sprintf("%s:%s", os.Getenv("REDIS_HOST"), port)
}

// GetRedisClient connects to the redis specified by env and pings it.
func GetRedisClient(ctx context.Context) (*redis.Client, error) {
	return GetRedisClientWithAddr(ctx, redisAddr(), os.Getenv("REDIS_PASSWD"))
}

func GetRedisClientWithAddr(ctx context.Context, addr string, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0, // use default DB
	})
	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, errors.Wrapf(err, "cannot reach redis at %s", addr)
	}
	return client, nil
}
