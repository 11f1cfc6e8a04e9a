package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so repositories accept a single, mockable
// type regardless of single, cluster or sentinel mode.
type Client interface {
	redis.UniversalClient
}
