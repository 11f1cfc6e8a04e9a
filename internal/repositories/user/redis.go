package user

import (
	"context"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/arcanum-api/internal/errors"
	redisclient "github.com/KirkDiggler/arcanum-api/internal/redis"
	"github.com/KirkDiggler/arcanum-api/internal/repositories/schema"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis user repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed user repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.User == nil {
		return nil, errors.InvalidArgument("user cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", input.User.ID, vb)
	errors.ValidateRequired("email", input.User.Email, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	data, err := schema.Marshal(schema.ToUserRecord(input.User))
	if err != nil {
		return nil, err
	}

	emailKey := schema.UserEmailKey(input.User.Email)

	// Claim the email first so two registrations cannot both win.
	claimed, err := r.client.SetNX(ctx, emailKey, input.User.ID, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to reserve email")
	}
	if !claimed {
		return nil, errors.AlreadyExistsf("email %s is already registered", input.User.Email)
	}

	if err := r.client.Set(ctx, schema.UserKey(input.User.ID), data, 0).Err(); err != nil {
		r.client.Del(ctx, emailKey)
		return nil, errors.Wrapf(err, "failed to create user")
	}

	return &CreateOutput{User: input.User}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}

	data, err := r.client.Get(ctx, schema.UserKey(input.ID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("user %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get user")
	}

	var record schema.UserRecord
	if err := schema.Unmarshal(data, &record); err != nil {
		return nil, err
	}

	return &GetOutput{User: record.Entity()}, nil
}

func (r *redisRepository) GetByEmail(ctx context.Context, input GetByEmailInput) (*GetByEmailOutput, error) {
	if input.Email == "" {
		return nil, errors.InvalidArgument("email cannot be empty")
	}

	id, err := r.client.Get(ctx, schema.UserEmailKey(input.Email)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("user not found")
		}
		return nil, errors.Wrapf(err, "failed to look up email")
	}

	out, err := r.Get(ctx, GetInput{ID: id})
	if err != nil {
		return nil, err
	}

	return &GetByEmailOutput{User: out.User}, nil
}
