package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisBlob хранит коллекции как строки в Redis, по одной на ключ
type RedisBlob struct {
	client *redis.Client
}

func NewRedisBlob(addr, password string, db int) *RedisBlob {
	return &RedisBlob{client: redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})}
}

// NewRedisBlobFromClient оборачивает уже созданный клиент (тесты с miniredis)
func NewRedisBlobFromClient(client *redis.Client) *RedisBlob {
	return &RedisBlob{client: client}
}

// Ping проверяет соединение при старте
func (r *RedisBlob) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisBlob) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return data, nil
}

func (r *RedisBlob) Save(ctx context.Context, key string, data []byte) error {
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (r *RedisBlob) Close() error {
	return r.client.Close()
}
