package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/arcanum-api/internal/errors"
	"github.com/KirkDiggler/arcanum-api/internal/redis"
)

func TestConnect(t *testing.T) {
	ctx := context.Background()

	t.Run("single instance", func(t *testing.T) {
		mr := miniredis.RunT(t)

		client, err := redis.Connect(ctx, " "+mr.Addr()+" ", "", nil)
		require.NoError(t, err)
		defer func() { _ = client.Close() }()

		require.NoError(t, client.Set(ctx, "k", "v", 0).Err())
		got, err := mr.Get("k")
		require.NoError(t, err)
		assert.Equal(t, "v", got)
	})

	t.Run("password", func(t *testing.T) {
		mr := miniredis.RunT(t)
		mr.RequireAuth("secret")

		_, err := redis.Connect(ctx, mr.Addr(), "", &redis.Options{MaxRetries: -1})
		assert.Equal(t, errors.CodeUnavailable, errors.GetCode(err))

		client, err := redis.Connect(ctx, mr.Addr(), "", &redis.Options{Password: "secret"})
		require.NoError(t, err)
		_ = client.Close()
	})

	t.Run("no address", func(t *testing.T) {
		_, err := redis.Connect(ctx, " , ", "", nil)
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("unreachable", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		_, err := redis.Connect(ctx, addr, "", &redis.Options{MaxRetries: -1})
		require.Error(t, err)
		assert.Equal(t, errors.CodeUnavailable, errors.GetCode(err))
	})
}

func TestConstructorsValidateInput(t *testing.T) {
	_, err := redis.NewClient("", nil)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = redis.NewClusterClient(nil, nil)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = redis.NewFailoverClient("", []string{"localhost:26379"}, nil)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = redis.NewFailoverClient("primary", nil, nil)
	assert.True(t, errors.IsInvalidArgument(err))
}
