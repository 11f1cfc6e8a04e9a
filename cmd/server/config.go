package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/arcanum-api/internal/config"
	"github.com/KirkDiggler/arcanum-api/internal/redis"
)

var (
	envFile   string
	redisAddr string
)

// loadConfig reads the environment, applies explicitly set flags and
// installs the configured logger as the slog default.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}

	if f := cmd.Flags().Lookup("port"); f != nil && f.Changed {
		cfg.GRPCPort = grpcPort
	}
	if f := cmd.Flags().Lookup("redis-addr"); f != nil && f.Changed {
		cfg.RedisAddr = redisAddr
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.SetDefault(cfg.NewLogger(os.Stderr))
	return cfg, nil
}

func connectRedis(ctx context.Context, cfg *config.Config) (redis.Client, error) {
	client, err := redis.Connect(ctx, cfg.RedisAddr, cfg.RedisMasterName, cfg.RedisOptions())
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "connected to redis", "addr", cfg.RedisAddr, "db", cfg.RedisDB)
	return client, nil
}
