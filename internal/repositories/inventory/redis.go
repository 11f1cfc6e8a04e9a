package inventory

import (
	"context"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/arcanum-api/internal/entities"
	"github.com/KirkDiggler/arcanum-api/internal/errors"
	redisclient "github.com/KirkDiggler/arcanum-api/internal/redis"
	"github.com/KirkDiggler/arcanum-api/internal/repositories/schema"
)

const (
	errCharacterIDEmpty = "character ID cannot be empty"
	errItemIDEmpty      = "item ID cannot be empty"
	errItemNil          = "item cannot be nil"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis inventory repository.
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

// NewRedis creates a new Redis-backed inventory repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	raw, err := r.client.HGetAll(ctx, schema.InventoryKey(input.CharacterID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list inventory")
	}

	items := make([]*entities.InventoryItem, 0, len(raw))
	for itemID, data := range raw {
		var record schema.InventoryItemRecord
		if err := schema.Unmarshal([]byte(data), &record); err != nil {
			slog.WarnContext(ctx, "skipping unreadable inventory item",
				"character_id", input.CharacterID,
				"item_id", itemID,
				"error", err.Error())
			continue
		}
		items = append(items, record.Entity())
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt != items[j].CreatedAt {
			return items[i].CreatedAt < items[j].CreatedAt
		}
		return items[i].ID < items[j].ID
	})

	return &ListOutput{Items: items}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.CharacterID, input.ItemID); err != nil {
		return nil, err
	}

	data, err := r.client.HGet(ctx, schema.InventoryKey(input.CharacterID), input.ItemID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("item %s not found", input.ItemID)
		}
		return nil, errors.Wrapf(err, "failed to get item")
	}

	var record schema.InventoryItemRecord
	if err := schema.Unmarshal(data, &record); err != nil {
		return nil, err
	}

	return &GetOutput{Item: record.Entity()}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Item == nil {
		return nil, errors.InvalidArgument(errItemNil)
	}
	if err := validateKey(input.Item.CharacterID, input.Item.ID); err != nil {
		return nil, err
	}

	data, err := schema.Marshal(schema.ToInventoryItemRecord(input.Item))
	if err != nil {
		return nil, err
	}

	created, err := r.client.HSetNX(ctx, schema.InventoryKey(input.Item.CharacterID), input.Item.ID, data).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create item")
	}
	if !created {
		return nil, errors.AlreadyExistsf("item %s already exists", input.Item.ID)
	}

	return &CreateOutput{Item: input.Item}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Item == nil {
		return nil, errors.InvalidArgument(errItemNil)
	}
	if err := validateKey(input.Item.CharacterID, input.Item.ID); err != nil {
		return nil, err
	}

	key := schema.InventoryKey(input.Item.CharacterID)

	exists, err := r.client.HExists(ctx, key, input.Item.ID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check item")
	}
	if !exists {
		return nil, errors.NotFoundf("item %s not found", input.Item.ID)
	}

	data, err := schema.Marshal(schema.ToInventoryItemRecord(input.Item))
	if err != nil {
		return nil, err
	}

	if err := r.client.HSet(ctx, key, input.Item.ID, data).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update item")
	}

	return &UpdateOutput{Item: input.Item}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateKey(input.CharacterID, input.ItemID); err != nil {
		return nil, err
	}

	removed, err := r.client.HDel(ctx, schema.InventoryKey(input.CharacterID), input.ItemID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete item")
	}
	if removed == 0 {
		return nil, errors.NotFoundf("item %s not found", input.ItemID)
	}

	return &DeleteOutput{}, nil
}

func validateKey(characterID, itemID string) error {
	vb := errors.NewValidationBuilder()
	if characterID == "" {
		vb.Field("characterId", errCharacterIDEmpty)
	}
	if itemID == "" {
		vb.Field("itemId", errItemIDEmpty)
	}
	return vb.Build()
}
