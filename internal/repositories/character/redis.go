package character

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
	errCharacterNil     = "character cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
	errUserIDEmpty      = "user ID cannot be empty"
	errGameStateNil     = "game state cannot be nil"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis character repository.
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

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.Character.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}
	if input.GameState == nil {
		return nil, errors.InvalidArgument(errGameStateNil)
	}

	id := input.Character.ID
	key := schema.CharacterKey(id)

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", id)
	}

	charData, err := schema.Marshal(schema.ToCharacterRecord(input.Character))
	if err != nil {
		return nil, err
	}
	abilityData, err := schema.Marshal(schema.ToAbilityScoresRecord(input.AbilityScores))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, charData, 0)
	pipe.Set(ctx, schema.AbilitiesKey(id), abilityData, 0)
	pipe.HSet(ctx, schema.GameStateKey(id), schema.ToGameStateRecord(input.GameState).Values()...)
	if len(input.SkillKeys) > 0 {
		pipe.SAdd(ctx, schema.SkillsKey(id), toMembers(input.SkillKeys)...)
	}
	pipe.SAdd(ctx, schema.UserCharactersKey(input.Character.UserID), id)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}

	slog.DebugContext(ctx, "created character",
		"character_id", id,
		"user_id", input.Character.UserID,
		"skills", len(input.SkillKeys))

	return &CreateOutput{Character: input.Character}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	result, err := r.client.Get(ctx, schema.CharacterKey(input.ID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	var record schema.CharacterRecord
	if err := schema.Unmarshal(result, &record); err != nil {
		return nil, err
	}

	return &GetOutput{Character: record.Entity()}, nil
}

func (r *redisRepository) GetAbilityScores(
	ctx context.Context,
	input GetAbilityScoresInput,
) (*GetAbilityScoresOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	result, err := r.client.Get(ctx, schema.AbilitiesKey(input.CharacterID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("ability scores for character %s not found", input.CharacterID)
		}
		return nil, errors.Wrapf(err, "failed to get ability scores")
	}

	var record schema.AbilityScoresRecord
	if err := schema.Unmarshal(result, &record); err != nil {
		return nil, err
	}

	return &GetAbilityScoresOutput{AbilityScores: record.Entity()}, nil
}

func (r *redisRepository) ListSkills(ctx context.Context, input ListSkillsInput) (*ListSkillsOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	keys, err := r.client.SMembers(ctx, schema.SkillsKey(input.CharacterID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list skills")
	}
	sort.Strings(keys)

	return &ListSkillsOutput{SkillKeys: keys}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := schema.CharacterKey(input.Character.ID)

	data, err := schema.Marshal(schema.ToCharacterRecord(input.Character))
	if err != nil {
		return nil, err
	}

	// SET XX only writes when the key is already there.
	ok, err := r.client.SetXX(ctx, key, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}
	if !ok {
		return nil, errors.NotFoundf("character with ID %s not found", input.Character.ID)
	}

	return &UpdateOutput{Character: input.Character}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, schema.CharacterKeys(input.ID)...)
	pipe.SRem(ctx, schema.UserCharactersKey(getOutput.Character.UserID), input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByUserID(
	ctx context.Context,
	input ListByUserIDInput,
) (*ListByUserIDOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	indexKey := schema.UserCharactersKey(input.UserID)
	slog.DebugContext(ctx, "listing characters by user index",
		"user_id", input.UserID,
		"index_key", indexKey)

	characters, err := r.listByIndex(ctx, indexKey)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list characters by user index",
			"user_id", input.UserID,
			"index_key", indexKey,
			"error", err.Error())
		return nil, err
	}

	return &ListByUserIDOutput{Characters: characters}, nil
}

// listByIndex loads every character in an index set, pruning ids whose
// record is gone.
func (r *redisRepository) listByIndex(ctx context.Context, indexKey string) ([]*entities.Character, error) {
	characterIDs, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get characters from index %s", indexKey)
	}
	sort.Strings(characterIDs)

	characters := make([]*entities.Character, 0, len(characterIDs))
	for _, id := range characterIDs {
		getOutput, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "character not found, cleaning up index",
					"character_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get character %s", id)
		}
		characters = append(characters, getOutput.Character)
	}

	return characters, nil
}

func toMembers(keys []string) []interface{} {
	members := make([]interface{}, len(keys))
	for i, k := range keys {
		members[i] = k
	}
	return members
}
