package cache

import (
	"context"

	"github.com/go-redis/redis/v9"
	"github.com/Bilal-BS/AI-english-Teacher-sub000/config"
)

type Client struct {
	client redis.UniversalClient
}

func Initialize(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	var client redis.UniversalClient

	if cfg.Mode == "cluster" {
		client = redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:           cfg.Cluster.Addr,
			Password:        cfg.Cluster.Password,
			PoolTimeout:     cfg.PoolTimeout,
			DialTimeout:     cfg.DialTimeout,
			ReadTimeout:     cfg.ReadTimeout,
			WriteTimeout:    cfg.WriteTimeout,
			ConnMaxIdleTime: cfg.ConnMaxIdleTime,
		})
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:            cfg.Host + ":" + cfg.Port,
			Password:        cfg.Password,
			DB:              cfg.DB,
			PoolTimeout:     cfg.PoolTimeout,
			DialTimeout:     cfg.DialTimeout,
			ReadTimeout:     cfg.ReadTimeout,
			WriteTimeout:    cfg.WriteTimeout,
			ConnMaxIdleTime: cfg.ConnMaxIdleTime,
		})
	}

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &Client{client: client}, nil
}

func (c *Client) UniversalClient() redis.UniversalClient {
	return c.client
}
