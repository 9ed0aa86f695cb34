package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Pulse-Breakout/Backend/config"
)

// InitRedis 建立 redis 客户端并 ping 一次。addr 为空表示不启用缓存，返回 nil 客户端。
func InitRedis(cfg *config.Config) (*redis.Client, error) {
	if cfg.Redis.Addr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}
