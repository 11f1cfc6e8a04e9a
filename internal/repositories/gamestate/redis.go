package gamestate

import (
	"context"
	"sort"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/arcanum-api/internal/entities"
	"github.com/KirkDiggler/arcanum-api/internal/errors"
	redisclient "github.com/KirkDiggler/arcanum-api/internal/redis"
	"github.com/KirkDiggler/arcanum-api/internal/repositories/schema"
)

const errCharacterIDEmpty = "character ID cannot be empty"

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis game state repository.
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

// NewRedis creates a new Redis-backed game state repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	cmd := r.client.HGetAll(ctx, schema.GameStateKey(input.CharacterID))
	state, err := scanGameState(cmd, input.CharacterID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{GameState: state}, nil
}

func (r *redisRepository) Patch(ctx context.Context, input PatchInput) (*PatchOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.Patch.IsEmpty() {
		return nil, errors.InvalidArgument("no fields to update")
	}

	key := schema.GameStateKey(input.CharacterID)

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check game state")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("game state for character %s not found", input.CharacterID)
	}

	values := schema.GameStatePatchValues(input.Patch)
	values = append(values, schema.FieldUpdatedAt, input.UpdatedAt)

	// Named fields only, so concurrent patches of other fields survive.
	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, key, values...)
	read := pipe.HGetAll(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update game state")
	}

	state, err := scanGameState(read, input.CharacterID)
	if err != nil {
		return nil, err
	}

	return &PatchOutput{GameState: state}, nil
}

func (r *redisRepository) GetConditions(
	ctx context.Context,
	input GetConditionsInput,
) (*GetConditionsOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	ids, err := r.client.SMembers(ctx, schema.ConditionsKey(input.CharacterID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get conditions")
	}
	sort.Strings(ids)

	return &GetConditionsOutput{ConditionIDs: ids}, nil
}

func (r *redisRepository) ReplaceConditions(
	ctx context.Context,
	input ReplaceConditionsInput,
) (*ReplaceConditionsOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	ids := NormalizeConditions(input.ConditionIDs)
	key := schema.ConditionsKey(input.CharacterID)

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	if len(ids) > 0 {
		members := make([]interface{}, len(ids))
		for i, id := range ids {
			members[i] = id
		}
		pipe.SAdd(ctx, key, members...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to replace conditions")
	}

	return &ReplaceConditionsOutput{ConditionIDs: ids}, nil
}

// NormalizeConditions trims, drops empties and de-duplicates condition ids,
// returning them sorted.
func NormalizeConditions(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func scanGameState(cmd *redis.MapStringStringCmd, characterID string) (*entities.GameState, error) {
	fields, err := cmd.Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get game state")
	}
	if len(fields) == 0 {
		return nil, errors.NotFoundf("game state for character %s not found", characterID)
	}

	var record schema.GameStateRecord
	if err := cmd.Scan(&record); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to decode game state")
	}

	return record.Entity(characterID), nil
}
