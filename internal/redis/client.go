// Package redis builds the go-redis clients shared by the battle, character, equipment
// and event log stores and by the battle guard.
package redis

import (
	"context"
	"crypto/tls"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options configures Redis client behavior
type Options struct {
	Password        string
	DB              int
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
}

// NewClient creates a Redis client for a single instance
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.New("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	redisOpts := &redis.Options{
		Addr:            endpoint,
		Password:        opts.Password,
		DB:              opts.DB,
		MinIdleConns:    opts.MinIdleConns,
		PoolSize:        opts.PoolSize,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
	}

	if opts.UseTLS {
		redisOpts.TLSConfig = &tls.Config{
			InsecureSkipVerify: true, // #nosec G402 // For self-signed certs
		}
	}

	return redis.NewClient(redisOpts), nil
}

// NewClusterClient creates a Redis client for cluster mode
func NewClusterClient(endpoints []string, opts *Options) (Client, error) {
	if len(endpoints) == 0 {
		return nil, errors.New("redis: at least one endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	clusterOpts := &redis.ClusterOptions{
		Addrs:        endpoints,
		Password:     opts.Password,
		MinIdleConns: opts.MinIdleConns,
		PoolSize:     opts.PoolSize,
		MaxRetries:   opts.MaxRetries,
	}

	if opts.UseTLS {
		clusterOpts.TLSConfig = &tls.Config{
			InsecureSkipVerify: true, // #nosec G402
		}
	}

	return redis.NewClusterClient(clusterOpts), nil
}

// Connect picks a single node or cluster client from the endpoint count and pings it
func Connect(ctx context.Context, endpoints []string, opts *Options) (Client, error) {
	var (
		client Client
		err    error
	)
	switch len(endpoints) {
	case 0:
		return nil, errors.New("redis: at least one endpoint is required")
	case 1:
		client, err = NewClient(endpoints[0], opts)
	default:
		client, err = NewClusterClient(endpoints, opts)
	}
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
