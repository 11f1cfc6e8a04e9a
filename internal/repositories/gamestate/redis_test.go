package gamestate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/arcanum-api/internal/entities"
	apperrors "github.com/KirkDiggler/arcanum-api/internal/errors"
	redisclient "github.com/KirkDiggler/arcanum-api/internal/redis"
	"github.com/KirkDiggler/arcanum-api/internal/repositories/gamestate"
	"github.com/KirkDiggler/arcanum-api/internal/repositories/schema"
	"github.com/KirkDiggler/arcanum-api/internal/testutils"
)

const (
	testCharID   = "char_123"
	testStateKey = "character:char_123:game_state"
	testCondKey  = "character:char_123:conditions"
)

func int32Ptr(v int32) *int32 { return &v }

func stringPtr(v string) *string { return &v }

type RedisRepositoryTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	client    redisclient.Client
	cleanup   func()
	repo      gamestate.Repository
	ctx       context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.client, s.miniRedis, s.cleanup = testutils.CreateTestRedisServer(s.T())

	repo, err := gamestate.NewRedis(&gamestate.RedisConfig{Client: s.client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) seed() *entities.GameState {
	state := testutils.CreateTestGameState(testCharID)
	state.SpellSlotsUsed.Level1 = 1
	err := s.client.HSet(s.ctx, testStateKey, schema.ToGameStateRecord(state).Values()...).Err()
	s.Require().NoError(err)
	return state
}

func (s *RedisRepositoryTestSuite) TestGet() {
	state := s.seed()

	out, err := s.repo.Get(s.ctx, gamestate.GetInput{CharacterID: testCharID})
	s.Require().NoError(err)
	s.Equal(state, out.GameState)
}

func (s *RedisRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, gamestate.GetInput{CharacterID: testCharID})
	s.True(apperrors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, gamestate.GetInput{})
	s.True(apperrors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestPatchOnlyTouchesNamedFields() {
	s.seed()

	patch := &entities.GameStatePatch{
		CurrentHealth:   int32Ptr(4),
		ConcentratingOn: stringPtr("bless"),
	}
	patch.SpellSlotsUsed[1] = int32Ptr(2)

	out, err := s.repo.Patch(s.ctx, gamestate.PatchInput{
		CharacterID: testCharID,
		Patch:       patch,
		UpdatedAt:   testutils.TestTimestamp + 60,
	})
	s.Require().NoError(err)

	s.Equal(int32(4), out.GameState.CurrentHealth)
	s.Equal(int32(11), out.GameState.MaximumHealth)
	s.Equal(int32(1), out.GameState.SpellSlotsUsed.Level1)
	s.Equal(int32(2), out.GameState.SpellSlotsUsed.Level2)
	s.Equal("bless", out.GameState.ConcentratingOn)
	s.Equal(testutils.TestTimestamp+60, out.GameState.UpdatedAt)
}

func (s *RedisRepositoryTestSuite) TestPatchesOfDifferentFieldsCompose() {
	s.seed()

	_, err := s.repo.Patch(s.ctx, gamestate.PatchInput{
		CharacterID: testCharID,
		Patch:       &entities.GameStatePatch{CurrentGold: int32Ptr(100)},
	})
	s.Require().NoError(err)
	_, err = s.repo.Patch(s.ctx, gamestate.PatchInput{
		CharacterID: testCharID,
		Patch:       &entities.GameStatePatch{InspirationPoints: int32Ptr(2)},
	})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, gamestate.GetInput{CharacterID: testCharID})
	s.Require().NoError(err)
	s.Equal(int32(100), out.GameState.CurrentGold)
	s.Equal(int32(2), out.GameState.InspirationPoints)
}

func (s *RedisRepositoryTestSuite) TestPatchClearsConcentration() {
	s.seed()
	s.Require().NoError(s.client.HSet(s.ctx, testStateKey, schema.FieldConcentratingOn, "bless").Err())

	out, err := s.repo.Patch(s.ctx, gamestate.PatchInput{
		CharacterID: testCharID,
		Patch:       &entities.GameStatePatch{ConcentratingOn: stringPtr("")},
	})
	s.Require().NoError(err)
	s.Empty(out.GameState.ConcentratingOn)
}

func (s *RedisRepositoryTestSuite) TestPatchErrors() {
	_, err := s.repo.Patch(s.ctx, gamestate.PatchInput{CharacterID: testCharID, Patch: &entities.GameStatePatch{}})
	s.True(apperrors.IsInvalidArgument(err))

	_, err = s.repo.Patch(s.ctx, gamestate.PatchInput{CharacterID: testCharID})
	s.True(apperrors.IsInvalidArgument(err))

	_, err = s.repo.Patch(s.ctx, gamestate.PatchInput{
		CharacterID: testCharID,
		Patch:       &entities.GameStatePatch{CurrentGold: int32Ptr(1)},
	})
	s.True(apperrors.IsNotFound(err))
	s.False(s.miniRedis.Exists(testStateKey))
}

func (s *RedisRepositoryTestSuite) TestReplaceConditions() {
	out, err := s.repo.ReplaceConditions(s.ctx, gamestate.ReplaceConditionsInput{
		CharacterID:  testCharID,
		ConditionIDs: []string{"poisoned", "poisoned", ""},
	})
	s.Require().NoError(err)
	s.Equal([]string{"poisoned"}, out.ConditionIDs)

	members, err := s.miniRedis.SMembers(testCondKey)
	s.Require().NoError(err)
	s.Equal([]string{"poisoned"}, members)

	out, err = s.repo.ReplaceConditions(s.ctx, gamestate.ReplaceConditionsInput{
		CharacterID:  testCharID,
		ConditionIDs: []string{" prone ", "blinded"},
	})
	s.Require().NoError(err)
	s.Equal([]string{"blinded", "prone"}, out.ConditionIDs)

	got, err := s.repo.GetConditions(s.ctx, gamestate.GetConditionsInput{CharacterID: testCharID})
	s.Require().NoError(err)
	s.Equal([]string{"blinded", "prone"}, got.ConditionIDs)
}

func (s *RedisRepositoryTestSuite) TestReplaceConditionsWithEmptyListClears() {
	s.Require().NoError(s.client.SAdd(s.ctx, testCondKey, "stunned").Err())

	out, err := s.repo.ReplaceConditions(s.ctx, gamestate.ReplaceConditionsInput{CharacterID: testCharID})
	s.Require().NoError(err)
	s.Empty(out.ConditionIDs)
	s.False(s.miniRedis.Exists(testCondKey))

	got, err := s.repo.GetConditions(s.ctx, gamestate.GetConditionsInput{CharacterID: testCharID})
	s.Require().NoError(err)
	s.Empty(got.ConditionIDs)
}

func TestNormalizeConditions(t *testing.T) {
	assert.Equal(t, []string{"poisoned"}, gamestate.NormalizeConditions([]string{"poisoned", "poisoned", ""}))
	assert.Equal(t, []string{}, gamestate.NormalizeConditions(nil))
	assert.Equal(t, []string{"charmed", "deafened"}, gamestate.NormalizeConditions([]string{"  deafened", "charmed", "   "}))
}

func TestRedisFailures(t *testing.T) {
	ctx := context.Background()
	errConnection := errors.New("i/o timeout")

	db, mock := redismock.NewClientMock()
	repo, err := gamestate.NewRedis(&gamestate.RedisConfig{Client: db})
	require.NoError(t, err)

	mock.ExpectHGetAll(testStateKey).SetErr(errConnection)
	_, err = repo.Get(ctx, gamestate.GetInput{CharacterID: testCharID})
	assert.True(t, apperrors.IsInternal(err))

	mock.ExpectExists(testStateKey).SetErr(errConnection)
	_, err = repo.Patch(ctx, gamestate.PatchInput{
		CharacterID: testCharID,
		Patch:       &entities.GameStatePatch{CurrentGold: int32Ptr(1)},
	})
	assert.True(t, apperrors.IsInternal(err))

	mock.ExpectSMembers(testCondKey).SetErr(errConnection)
	_, err = repo.GetConditions(ctx, gamestate.GetConditionsInput{CharacterID: testCharID})
	assert.True(t, apperrors.IsInternal(err))

	assert.NoError(t, mock.ExpectationsWereMet())
}
