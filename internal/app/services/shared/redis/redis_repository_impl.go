package redis

import (
	"context"
	"lablink-service/internal/app/contracts"
	"lablink-service/internal/pkg/exceptions"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

type redisRepository struct {
	Client *goredis.Client
}

func NewRedisRepository(client *goredis.Client) contracts.RedisRepository {
	return &redisRepository{
		Client: client,
	}
}

func (repo *redisRepository) Get(ctx context.Context, key string) (string, error) {
	value, err := repo.Client.Get(ctx, key).Result()
	if err != nil {
		if err == goredis.Nil {
			return "", nil
		}
		return "", exceptions.ErrRedisGet(err)
	}
	return value, nil
}

func (repo *redisRepository) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	err := repo.Client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}
