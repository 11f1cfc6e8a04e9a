// Package redis wraps the go-redis client for the repositories and lets tests
// swap in miniredis or redismock.
package redis

import (
	"context"
	"crypto/tls"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/arcanum-api/internal/errors"
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
	ReadOnly        bool // For cluster mode routing
}

// NewClient creates a Redis client for a single instance
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.InvalidArgument("redis: endpoint is required")
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
		redisOpts.TLSConfig = tlsConfig()
	}

	return redis.NewClient(redisOpts), nil
}

// NewClusterClient creates a Redis client for cluster mode
func NewClusterClient(endpoints []string, opts *Options) (Client, error) {
	if len(endpoints) == 0 {
		return nil, errors.InvalidArgument("redis: at least one endpoint is required")
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
		ReadOnly:     opts.ReadOnly,
	}

	if opts.UseTLS {
		clusterOpts.TLSConfig = tlsConfig()
	}

	return redis.NewClusterClient(clusterOpts), nil
}

// NewFailoverClient creates a Redis client with Sentinel support
func NewFailoverClient(masterName string, sentinelAddrs []string, opts *Options) (Client, error) {
	if masterName == "" {
		return nil, errors.InvalidArgument("redis: master name is required")
	}
	if len(sentinelAddrs) == 0 {
		return nil, errors.InvalidArgument("redis: at least one sentinel address is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	failoverOpts := &redis.FailoverOptions{
		MasterName:    masterName,
		SentinelAddrs: sentinelAddrs,
		Password:      opts.Password,
		DB:            opts.DB,
		MinIdleConns:  opts.MinIdleConns,
		PoolSize:      opts.PoolSize,
		MaxRetries:    opts.MaxRetries,
	}

	if opts.UseTLS {
		failoverOpts.TLSConfig = tlsConfig()
	}

	return redis.NewFailoverClient(failoverOpts), nil
}

// Connect picks the client mode from the address list and master name, then
// pings the server. A master name selects Sentinel; several addresses select
// cluster mode; otherwise a single instance is used.
func Connect(ctx context.Context, addrs string, masterName string, opts *Options) (Client, error) {
	endpoints := splitAddrs(addrs)

	var (
		client Client
		err    error
	)
	switch {
	case masterName != "":
		client, err = NewFailoverClient(masterName, endpoints, opts)
	case len(endpoints) > 1:
		client, err = NewClusterClient(endpoints, opts)
	case len(endpoints) == 1:
		client, err = NewClient(endpoints[0], opts)
	default:
		return nil, errors.InvalidArgument("redis: endpoint is required")
	}
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "redis: ping %s", addrs)
	}

	return client, nil
}

func splitAddrs(addrs string) []string {
	var endpoints []string
	for _, a := range strings.Split(addrs, ",") {
		if a = strings.TrimSpace(a); a != "" {
			endpoints = append(endpoints, a)
		}
	}
	return endpoints
}

func tlsConfig() *tls.Config {
	return &tls.Config{
		InsecureSkipVerify: true, // #nosec G402 // For self-signed certs
	}
}
