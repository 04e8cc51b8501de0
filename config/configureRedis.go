package config

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	redisAddressEnv  = "REDIS_ADDRESS"
	redisPasswordEnv = "REDIS_PASSWORD"
)

// InitRedisServer connects the client that backs refresh-token storage.
// Refresh tokens are the only Redis tenant, so database 0 is hardcoded.
func InitRedisServer(ctx context.Context) *redis.Client {
	address := GetEnvOrDefault(redisAddressEnv, "localhost:6379")

	client := redis.NewClient(&redis.Options{
		Addr:     address,
		Password: GetEnv(redisPasswordEnv),
		DB:       0,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		Logger.Fatal("Cannot connect to Redis",
			zap.String("address", address),
			zap.Error(err),
		)
	}

	return client
}
