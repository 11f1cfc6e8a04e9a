// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/arcanum-api/internal/entities"
	characterrepo "github.com/KirkDiggler/arcanum-api/internal/repositories/character"
	charactermock "github.com/KirkDiggler/arcanum-api/internal/repositories/character/mock"
	gamestaterepo "github.com/KirkDiggler/arcanum-api/internal/repositories/gamestate"
	gamestatemock "github.com/KirkDiggler/arcanum-api/internal/repositories/gamestate/mock"
	inventoryrepo "github.com/KirkDiggler/arcanum-api/internal/repositories/inventory"
	inventorymock "github.com/KirkDiggler/arcanum-api/internal/repositories/inventory/mock"
)

// SheetRows are the companion rows returned while loading a sheet
type SheetRows struct {
	AbilityScores entities.AbilityScores
	GameState     *entities.GameState
	SkillKeys     []string
	ConditionIDs  []string
	Inventory     []*entities.InventoryItem
}

// ExpectCharacterGet sets up a mock expectation for getting a character
func ExpectCharacterGet(
	ctx context.Context, mockRepo *charactermock.MockRepository,
	characterID string, character *entities.Character, err error,
) *gomock.Call {
	out := &characterrepo.GetOutput{Character: character}
	if err != nil {
		out = nil
	}
	return mockRepo.EXPECT().
		Get(ctx, characterrepo.GetInput{ID: characterID}).
		Return(out, err)
}

// ExpectSheetLoad sets up the reads made while assembling a sheet. The reads
// run concurrently, so they match any context.
func ExpectSheetLoad(
	mockCharRepo *charactermock.MockRepository,
	mockStateRepo *gamestatemock.MockRepository,
	mockInvRepo *inventorymock.MockRepository,
	characterID string, rows SheetRows,
) {
	mockCharRepo.EXPECT().
		GetAbilityScores(gomock.Any(), characterrepo.GetAbilityScoresInput{CharacterID: characterID}).
		Return(&characterrepo.GetAbilityScoresOutput{AbilityScores: rows.AbilityScores}, nil)

	mockCharRepo.EXPECT().
		ListSkills(gomock.Any(), characterrepo.ListSkillsInput{CharacterID: characterID}).
		Return(&characterrepo.ListSkillsOutput{SkillKeys: rows.SkillKeys}, nil)

	mockStateRepo.EXPECT().
		Get(gomock.Any(), gamestaterepo.GetInput{CharacterID: characterID}).
		Return(&gamestaterepo.GetOutput{GameState: rows.GameState}, nil)

	mockStateRepo.EXPECT().
		GetConditions(gomock.Any(), gamestaterepo.GetConditionsInput{CharacterID: characterID}).
		Return(&gamestaterepo.GetConditionsOutput{ConditionIDs: rows.ConditionIDs}, nil)

	mockInvRepo.EXPECT().
		List(gomock.Any(), inventoryrepo.ListInput{CharacterID: characterID}).
		Return(&inventoryrepo.ListOutput{Items: rows.Inventory}, nil)
}

// ExpectCharacterCreate accepts a create and echoes the character back
func ExpectCharacterCreate(ctx context.Context, mockRepo *charactermock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.CreateInput) (*characterrepo.CreateOutput, error) {
			return &characterrepo.CreateOutput{Character: input.Character}, nil
		})
}

// ExpectCharacterUpdate accepts an update and echoes the character back
func ExpectCharacterUpdate(ctx context.Context, mockRepo *charactermock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.UpdateInput) (*characterrepo.UpdateOutput, error) {
			return &characterrepo.UpdateOutput{Character: input.Character}, nil
		})
}
