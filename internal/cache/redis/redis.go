package redis

import (
	"context"
	cacherepo "distro/internal/repositories/cache"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const pkg = "redis/"

type Config struct {
	Addr     string
	Password string
	DB       int
}

type Client struct {
	redisClient *redis.Client
}

// response hides redis.Nil: a missing key yields the zero value and no error.
type response[T any] struct {
	cmd redis.Cmder
	get func() (T, error)
}

func (r response[T]) Err() error {
	if err := r.cmd.Err(); err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}

func (r response[T]) Result() (T, error) {
	res, err := r.get()
	if errors.Is(err, redis.Nil) {
		var zero T
		return zero, nil
	}
	return res, err
}

func New(ctx context.Context, cfg Config) (*Client, error) {
	op := pkg + "New"

	client := &Client{
		redisClient: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}

	if err := client.redisClient.Ping(ctx).Err(); err != nil {
		_ = client.redisClient.Close()
		return nil, fmt.Errorf("%s: ping %s: %w", op, cfg.Addr, err)
	}

	return client, nil
}

func (c *Client) Get(ctx context.Context, key string) cacherepo.CacheResponse[string] {
	cmd := c.redisClient.Get(ctx, key)
	return response[string]{cmd: cmd, get: cmd.Result}
}

func (c *Client) Set(ctx context.Context, key string, value any, expiration time.Duration) cacherepo.CacheResponse[string] {
	cmd := c.redisClient.Set(ctx, key, value, expiration)
	return response[string]{cmd: cmd, get: cmd.Result}
}

func (c *Client) Del(ctx context.Context, keys ...string) cacherepo.CacheResponse[int64] {
	cmd := c.redisClient.Del(ctx, keys...)
	return response[int64]{cmd: cmd, get: cmd.Result}
}

func (c *Client) Incr(ctx context.Context, key string) cacherepo.CacheResponse[int64] {
	cmd := c.redisClient.Incr(ctx, key)
	return response[int64]{cmd: cmd, get: cmd.Result}
}

func (c *Client) Close() error {
	return c.redisClient.Close()
}
