package character_test

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/arcanum-api/internal/entities"
	"github.com/KirkDiggler/arcanum-api/internal/errors"
	inventoryrepo "github.com/KirkDiggler/arcanum-api/internal/repositories/inventory"
	characterservice "github.com/KirkDiggler/arcanum-api/internal/services/character"
	"github.com/KirkDiggler/arcanum-api/internal/testutils"
)

func (s *OrchestratorTestSuite) TestAddInventoryItem() {
	char := s.expectOwned()
	s.mockItemIDGen.EXPECT().Generate().Return("item-9")

	expected := &entities.InventoryItem{
		ID:          "item-9",
		CharacterID: char.ID,
		Name:        "Cuerda de cáñamo",
		Quantity:    1,
		CreatedAt:   s.clock.Now().Unix(),
		UpdatedAt:   s.clock.Now().Unix(),
	}
	s.mockInvRepo.EXPECT().
		Create(s.ctx, inventoryrepo.CreateInput{Item: expected}).
		Return(&inventoryrepo.CreateOutput{Item: expected}, nil)

	out, err := s.orchestrator.AddInventoryItem(s.ctx, &characterservice.AddInventoryItemInput{
		UserID:      ownerID,
		CharacterID: char.ID,
		Name:        "  Cuerda de cáñamo ",
	})
	s.Require().NoError(err)
	s.Equal(expected, out.Item)
}

func (s *OrchestratorTestSuite) TestAddInventoryItemZeroQuantity() {
	char := s.expectOwned()
	s.mockItemIDGen.EXPECT().Generate().Return("item-9")
	s.mockInvRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input inventoryrepo.CreateInput) (*inventoryrepo.CreateOutput, error) {
			s.Equal(int32(0), input.Item.Quantity)
			return &inventoryrepo.CreateOutput{Item: input.Item}, nil
		})

	_, err := s.orchestrator.AddInventoryItem(s.ctx, &characterservice.AddInventoryItemInput{
		UserID:      ownerID,
		CharacterID: char.ID,
		Name:        "Raciones",
		Quantity:    ptr(int32(0)),
	})
	s.NoError(err)
}

func (s *OrchestratorTestSuite) TestAddInventoryItemValidation() {
	_, err := s.orchestrator.AddInventoryItem(s.ctx, &characterservice.AddInventoryItemInput{
		UserID:      ownerID,
		CharacterID: testutils.TestCharacterID,
		Name:        " ",
		Quantity:    ptr(int32(-1)),
	})
	s.Require().Error(err)
	fields := errors.FieldErrors(err)
	s.Contains(fields, "name")
	s.Contains(fields, "quantity")
}

func (s *OrchestratorTestSuite) TestAddInventoryItemNotOwned() {
	char := s.expectOwned()

	_, err := s.orchestrator.AddInventoryItem(s.ctx, &characterservice.AddInventoryItemInput{
		UserID:      strangerID,
		CharacterID: char.ID,
		Name:        "Antorcha",
	})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestUpdateInventoryItem() {
	char := s.expectOwned()
	existing := testutils.CreateTestInventoryItem("item-1", char.ID, "Antorcha", 5)
	s.mockInvRepo.EXPECT().
		Get(s.ctx, inventoryrepo.GetInput{CharacterID: char.ID, ItemID: "item-1"}).
		Return(&inventoryrepo.GetOutput{Item: existing}, nil)
	s.mockInvRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input inventoryrepo.UpdateInput) (*inventoryrepo.UpdateOutput, error) {
			s.Equal("Antorcha", input.Item.Name)
			s.Equal(int32(3), input.Item.Quantity)
			s.Equal(existing.CreatedAt, input.Item.CreatedAt)
			s.Equal(s.clock.Now().Unix(), input.Item.UpdatedAt)
			return &inventoryrepo.UpdateOutput{Item: input.Item}, nil
		})

	out, err := s.orchestrator.UpdateInventoryItem(s.ctx, &characterservice.UpdateInventoryItemInput{
		UserID:      ownerID,
		CharacterID: char.ID,
		ItemID:      "item-1",
		Patch:       &entities.InventoryItemPatch{Quantity: ptr(int32(3))},
	})
	s.Require().NoError(err)
	s.Equal(int32(3), out.Item.Quantity)
}

func (s *OrchestratorTestSuite) TestUpdateInventoryItemValidation() {
	_, err := s.orchestrator.UpdateInventoryItem(s.ctx, &characterservice.UpdateInventoryItemInput{
		UserID:      ownerID,
		CharacterID: testutils.TestCharacterID,
		ItemID:      "item-1",
		Patch:       &entities.InventoryItemPatch{},
	})
	s.Contains(errors.FieldErrors(err), "item")

	_, err = s.orchestrator.UpdateInventoryItem(s.ctx, &characterservice.UpdateInventoryItemInput{
		UserID:      ownerID,
		CharacterID: testutils.TestCharacterID,
		Patch:       &entities.InventoryItemPatch{Name: ptr("  ")},
	})
	fields := errors.FieldErrors(err)
	s.Contains(fields, "itemId")
	s.Contains(fields, "name")
}

func (s *OrchestratorTestSuite) TestUpdateInventoryItemNotFound() {
	char := s.expectOwned()
	s.mockInvRepo.EXPECT().
		Get(s.ctx, inventoryrepo.GetInput{CharacterID: char.ID, ItemID: "item-x"}).
		Return(nil, errors.NotFound("item not found"))

	_, err := s.orchestrator.UpdateInventoryItem(s.ctx, &characterservice.UpdateInventoryItemInput{
		UserID:      ownerID,
		CharacterID: char.ID,
		ItemID:      "item-x",
		Patch:       &entities.InventoryItemPatch{Quantity: ptr(int32(1))},
	})
	s.True(errors.IsNotFound(err))
	s.Equal("inventory item item-x not found", errors.GetMessage(err))
}

func (s *OrchestratorTestSuite) TestDeleteInventoryItem() {
	char := s.expectOwned()
	s.mockInvRepo.EXPECT().
		Delete(s.ctx, inventoryrepo.DeleteInput{CharacterID: char.ID, ItemID: "item-1"}).
		Return(&inventoryrepo.DeleteOutput{}, nil)

	_, err := s.orchestrator.DeleteInventoryItem(s.ctx, &characterservice.DeleteInventoryItemInput{
		UserID:      ownerID,
		CharacterID: char.ID,
		ItemID:      "item-1",
	})
	s.NoError(err)
}

func (s *OrchestratorTestSuite) TestDeleteInventoryItemNotFound() {
	char := s.expectOwned()
	s.mockInvRepo.EXPECT().
		Delete(s.ctx, inventoryrepo.DeleteInput{CharacterID: char.ID, ItemID: "item-1"}).
		Return(nil, errors.NotFound("item not found"))

	_, err := s.orchestrator.DeleteInventoryItem(s.ctx, &characterservice.DeleteInventoryItemInput{
		UserID:      ownerID,
		CharacterID: char.ID,
		ItemID:      "item-1",
	})
	s.True(errors.IsNotFound(err))

	_, err = s.orchestrator.DeleteInventoryItem(s.ctx, &characterservice.DeleteInventoryItemInput{
		UserID:      ownerID,
		CharacterID: char.ID,
	})
	s.True(errors.IsInvalidArgument(err))
}
