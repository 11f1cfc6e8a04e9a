package inventory_test

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
	"github.com/KirkDiggler/arcanum-api/internal/repositories/inventory"
	"github.com/KirkDiggler/arcanum-api/internal/testutils"
)

const (
	testCharID  = "char_123"
	testInvKey  = "character:char_123:inventory"
	testItemID  = "item_1"
	testItemID2 = "item_2"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	cleanup   func()
	repo      inventory.Repository
	ctx       context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, mr, cleanup := testutils.CreateTestRedisServer(s.T())
	s.miniRedis = mr
	s.cleanup = cleanup

	repo, err := inventory.NewRedis(&inventory.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	item := testutils.CreateTestInventoryItem(testItemID, testCharID, "Cuerda de cáñamo", 1)

	_, err := s.repo.Create(s.ctx, inventory.CreateInput{Item: item})
	s.Require().NoError(err)
	s.True(s.miniRedis.Exists(testInvKey))

	out, err := s.repo.Get(s.ctx, inventory.GetInput{CharacterID: testCharID, ItemID: testItemID})
	s.Require().NoError(err)
	s.Equal(item, out.Item)

	_, err = s.repo.Create(s.ctx, inventory.CreateInput{Item: item})
	s.True(apperrors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestListOrder() {
	late := testutils.CreateTestInventoryItem("item_a", testCharID, "Antorcha", 5)
	late.CreatedAt += 10
	first := testutils.CreateTestInventoryItem("item_z", testCharID, "Raciones", 3)
	tie := testutils.CreateTestInventoryItem("item_b", testCharID, "Odre", 1)
	tie.CreatedAt = first.CreatedAt

	for _, item := range []*entities.InventoryItem{late, first, tie} {
		_, err := s.repo.Create(s.ctx, inventory.CreateInput{Item: item})
		s.Require().NoError(err)
	}

	out, err := s.repo.List(s.ctx, inventory.ListInput{CharacterID: testCharID})
	s.Require().NoError(err)
	s.Require().Len(out.Items, 3)
	s.Equal("item_b", out.Items[0].ID)
	s.Equal("item_z", out.Items[1].ID)
	s.Equal("item_a", out.Items[2].ID)

	empty, err := s.repo.List(s.ctx, inventory.ListInput{CharacterID: "other"})
	s.Require().NoError(err)
	s.NotNil(empty.Items)
	s.Empty(empty.Items)
}

func (s *RedisRepositoryTestSuite) TestListSkipsCorruptItems() {
	s.miniRedis.HSet(testInvKey, "bad", "{")
	_, err := s.repo.Create(s.ctx, inventory.CreateInput{
		Item: testutils.CreateTestInventoryItem(testItemID, testCharID, "Daga", 2),
	})
	s.Require().NoError(err)

	out, err := s.repo.List(s.ctx, inventory.ListInput{CharacterID: testCharID})
	s.Require().NoError(err)
	s.Len(out.Items, 1)
}

func (s *RedisRepositoryTestSuite) TestUpdate() {
	item := testutils.CreateTestInventoryItem(testItemID, testCharID, "Flechas", 20)
	_, err := s.repo.Create(s.ctx, inventory.CreateInput{Item: item})
	s.Require().NoError(err)

	changed := *item
	changed.Quantity = 14
	_, err = s.repo.Update(s.ctx, inventory.UpdateInput{Item: &changed})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, inventory.GetInput{CharacterID: testCharID, ItemID: testItemID})
	s.Require().NoError(err)
	s.Equal(int32(14), out.Item.Quantity)

	missing := testutils.CreateTestInventoryItem(testItemID2, testCharID, "Nada", 1)
	_, err = s.repo.Update(s.ctx, inventory.UpdateInput{Item: missing})
	s.True(apperrors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, inventory.CreateInput{
		Item: testutils.CreateTestInventoryItem(testItemID, testCharID, "Escudo", 1),
	})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, inventory.DeleteInput{CharacterID: testCharID, ItemID: testItemID})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, inventory.GetInput{CharacterID: testCharID, ItemID: testItemID})
	s.True(apperrors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, inventory.DeleteInput{CharacterID: testCharID, ItemID: testItemID})
	s.True(apperrors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	_, err := s.repo.Get(s.ctx, inventory.GetInput{})
	s.True(apperrors.IsInvalidArgument(err))
	s.Len(apperrors.FieldErrors(err), 2)

	_, err = s.repo.Create(s.ctx, inventory.CreateInput{})
	s.True(apperrors.IsInvalidArgument(err))

	_, err = s.repo.List(s.ctx, inventory.ListInput{})
	s.True(apperrors.IsInvalidArgument(err))
}

func TestRedisFailures(t *testing.T) {
	ctx := context.Background()
	errConnection := errors.New("broken pipe")

	db, mock := redismock.NewClientMock()
	repo, err := inventory.NewRedis(&inventory.RedisConfig{Client: db})
	require.NoError(t, err)

	mock.ExpectHGetAll(testInvKey).SetErr(errConnection)
	_, err = repo.List(ctx, inventory.ListInput{CharacterID: testCharID})
	assert.True(t, apperrors.IsInternal(err))

	mock.ExpectHDel(testInvKey, testItemID).SetErr(errConnection)
	_, err = repo.Delete(ctx, inventory.DeleteInput{CharacterID: testCharID, ItemID: testItemID})
	assert.True(t, apperrors.IsInternal(err))

	mock.ExpectHExists(testInvKey, testItemID).SetErr(errConnection)
	_, err = repo.Update(ctx, inventory.UpdateInput{
		Item: testutils.CreateTestInventoryItem(testItemID, testCharID, "Daga", 1),
	})
	assert.True(t, apperrors.IsInternal(err))

	assert.NoError(t, mock.ExpectationsWereMet())
}
