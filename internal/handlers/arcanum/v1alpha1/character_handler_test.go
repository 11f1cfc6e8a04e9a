package v1alpha1_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	arcanumv1alpha1 "github.com/KirkDiggler/arcanum-api/internal/api/arcanum/v1alpha1"
	"github.com/KirkDiggler/arcanum-api/internal/auth"
	"github.com/KirkDiggler/arcanum-api/internal/engine"
	"github.com/KirkDiggler/arcanum-api/internal/entities"
	"github.com/KirkDiggler/arcanum-api/internal/errors"
	"github.com/KirkDiggler/arcanum-api/internal/handlers/arcanum/v1alpha1"
	"github.com/KirkDiggler/arcanum-api/internal/services/character"
	charactermock "github.com/KirkDiggler/arcanum-api/internal/services/character/mock"
)

const testUserID = "user-123"

type CharacterHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *charactermock.MockService
	handler     *v1alpha1.CharacterHandler
	ctx         context.Context
}

func TestCharacterHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CharacterHandlerTestSuite))
}

func (s *CharacterHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = charactermock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewCharacterHandler(&v1alpha1.CharacterHandlerConfig{
		CharacterService: s.mockService,
	})
	s.Require().NoError(err)
	s.handler = handler
	s.ctx = auth.WithUserID(context.Background(), testUserID)
}

func (s *CharacterHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CharacterHandlerTestSuite) testSheet() *entities.CharacterSheet {
	return &entities.CharacterSheet{
		ID:     "char-1",
		UserID: testUserID,
		NameEs: "Thorin",
		Race:   entities.LocalizedRef{ID: "dwarf", NameEs: "Enano", NameEn: "Dwarf"},
		Class:  entities.LocalizedRef{ID: "cleric", NameEs: "Clérigo", NameEn: "Cleric"},
		Level:  1,
		Skills: []entities.SheetEntry{
			{Key: "medicine", Ability: entities.AbilityWisdom, NameEs: "Medicina", NameEn: "Medicine", Modifier: 5, Proficient: true},
		},
		Health:  entities.Health{Current: 11, Maximum: 11},
		HitDice: "1d8",
	}
}

func (s *CharacterHandlerTestSuite) TestNewRequiresService() {
	_, err := v1alpha1.NewCharacterHandler(&v1alpha1.CharacterHandlerConfig{})
	s.Require().Error(err)

	_, err = v1alpha1.NewCharacterHandler(nil)
	s.Require().Error(err)
}

func (s *CharacterHandlerTestSuite) TestCreateCharacter() {
	req := &arcanumv1alpha1.CreateCharacterRequest{
		NameEs:             "Thorin",
		RaceID:             "dwarf",
		SubraceID:          "hill-dwarf",
		ClassID:            "cleric",
		SkillProficiencies: []string{"medicine"},
		AbilityScores: arcanumv1alpha1.StartingAbilityScores{
			Wisdom: arcanumv1alpha1.Int(15),
		},
		Personality: &arcanumv1alpha1.Personality{Ideals: "Fe"},
	}

	wis := int32(15)
	s.mockService.EXPECT().
		CreateCharacter(s.ctx, &character.CreateCharacterInput{
			UserID: testUserID,
			Request: &engine.CreationRequest{
				NameEs:             "Thorin",
				RaceID:             "dwarf",
				SubraceID:          "hill-dwarf",
				ClassID:            "cleric",
				SkillProficiencies: []string{"medicine"},
				AbilityScores:      engine.StartingAbilityScores{Wisdom: &wis},
				Personality:        entities.Personality{Ideals: "Fe"},
			},
		}).
		Return(&character.CreateCharacterOutput{
			Sheet: s.testSheet(),
			Warnings: []engine.ValidationWarning{
				{Field: "subclassId", Message: "available from level 3", Code: engine.CodeSubclassLevelGate},
			},
		}, nil)

	resp, err := s.handler.CreateCharacter(s.ctx, req)
	s.Require().NoError(err)
	s.Equal("char-1", resp.Character.ID)
	s.Equal("Thorin", resp.Character.DisplayName)
	s.Equal("Enano", resp.Character.Race.DisplayName)
	s.Nil(resp.Character.Subrace)
	s.Equal("Medicina", resp.Character.Skills[0].DisplayName)
	s.Empty(resp.Character.ActiveConditions)
	s.NotNil(resp.Character.ActiveConditions)
	s.Require().Len(resp.Warnings, 1)
	s.Equal(engine.CodeSubclassLevelGate, resp.Warnings[0].Code)
}

func (s *CharacterHandlerTestSuite) TestCreateCharacterValidationFailure() {
	s.mockService.EXPECT().
		CreateCharacter(s.ctx, gomock.Any()).
		Return(nil, errors.NewValidationBuilder().RequiredField("nameEs").Build())

	_, err := s.handler.CreateCharacter(s.ctx, &arcanumv1alpha1.CreateCharacterRequest{})
	s.Require().Error(err)
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *CharacterHandlerTestSuite) TestGetCharacterSheetInEnglish() {
	ctx := metadata.NewIncomingContext(s.ctx, metadata.Pairs("accept-language", "en-US,en;q=0.9"))

	s.mockService.EXPECT().
		GetCharacterSheet(ctx, &character.GetCharacterSheetInput{
			UserID:      testUserID,
			CharacterID: "char-1",
		}).
		Return(&character.GetCharacterSheetOutput{Sheet: s.testSheet()}, nil)

	resp, err := s.handler.GetCharacterSheet(ctx, &arcanumv1alpha1.GetCharacterSheetRequest{CharacterID: "char-1"})
	s.Require().NoError(err)
	s.Equal("Dwarf", resp.Character.Race.DisplayName)
	s.Equal("Cleric", resp.Character.Class.DisplayName)
	s.Equal("Medicine", resp.Character.Skills[0].DisplayName)
	// no English name stored
	s.Equal("Thorin", resp.Character.DisplayName)
	s.Equal(int32(11), resp.Character.Health.Current)
}

func (s *CharacterHandlerTestSuite) TestGetCharacterSheetNotFound() {
	s.mockService.EXPECT().
		GetCharacterSheet(s.ctx, gomock.Any()).
		Return(nil, errors.NotFoundf("character %s not found", "char-x"))

	_, err := s.handler.GetCharacterSheet(s.ctx, &arcanumv1alpha1.GetCharacterSheetRequest{CharacterID: "char-x"})
	s.Require().Error(err)
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *CharacterHandlerTestSuite) TestWithoutCallerPassesEmptyUser() {
	ctx := context.Background()
	s.mockService.EXPECT().
		ListCharacters(ctx, &character.ListCharactersInput{}).
		Return(nil, errors.Unauthenticated("caller identity is required"))

	_, err := s.handler.ListCharacters(ctx, &arcanumv1alpha1.ListCharactersRequest{})
	s.Require().Error(err)
	s.Equal(codes.Unauthenticated, status.Code(err))
}

func (s *CharacterHandlerTestSuite) TestListCharacters() {
	s.mockService.EXPECT().
		ListCharacters(s.ctx, &character.ListCharactersInput{UserID: testUserID, OwnerID: "user-other"}).
		Return(nil, errors.PermissionDenied("cannot list characters of another user"))

	_, err := s.handler.ListCharacters(s.ctx, &arcanumv1alpha1.ListCharactersRequest{OwnerID: "user-other"})
	s.Equal(codes.PermissionDenied, status.Code(err))

	s.mockService.EXPECT().
		ListCharacters(s.ctx, &character.ListCharactersInput{UserID: testUserID}).
		Return(&character.ListCharactersOutput{
			Characters: []*character.CharacterSummary{
				{ID: "char-2", NameEs: "Lia", Race: entities.LocalizedRef{ID: "elf", NameEs: "Elfo"}, Level: 2},
				{ID: "char-1", NameEs: "Thorin", Race: entities.LocalizedRef{ID: "orphan"}},
			},
		}, nil)

	resp, err := s.handler.ListCharacters(s.ctx, &arcanumv1alpha1.ListCharactersRequest{})
	s.Require().NoError(err)
	s.Require().Len(resp.Characters, 2)
	s.Equal("char-2", resp.Characters[0].ID)
	s.Equal("Elfo", resp.Characters[0].Race.DisplayName)
	s.Equal("orphan", resp.Characters[1].Race.ID)
	s.Empty(resp.Characters[1].Race.DisplayName)
}

func (s *CharacterHandlerTestSuite) TestUpdateGameState() {
	hp := int32(4)
	slot := int32(1)
	concentration := ""

	s.mockService.EXPECT().
		UpdateGameState(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *character.UpdateGameStateInput) (*character.UpdateGameStateOutput, error) {
			s.Equal("char-1", input.CharacterID)
			s.Equal(testUserID, input.UserID)
			s.Require().NotNil(input.Patch)
			s.Equal(&hp, input.Patch.CurrentHealth)
			s.Nil(input.Patch.MaximumHealth)
			s.Nil(input.Patch.SpellSlotsUsed[0])
			s.Equal(&slot, input.Patch.SpellSlotsUsed[2])
			s.Equal(&concentration, input.Patch.ConcentratingOn)

			return &character.UpdateGameStateOutput{
				GameState: &entities.GameState{
					CharacterID:    "char-1",
					CurrentHealth:  4,
					MaximumHealth:  11,
					SpellSlotsUsed: entities.SpellSlots{Level3: 1},
				},
			}, nil
		})

	resp, err := s.handler.UpdateGameState(s.ctx, &arcanumv1alpha1.UpdateGameStateRequest{
		CharacterID: "char-1",
		Patch: &arcanumv1alpha1.GameStatePatch{
			CurrentHealth:   &hp,
			SpellSlotsUsed:  &arcanumv1alpha1.SpellSlotsPatch{Level3: &slot},
			ConcentratingOn: &concentration,
		},
	})
	s.Require().NoError(err)
	s.Equal(int32(4), resp.GameState.CurrentHealth)
	s.Equal(int32(1), resp.GameState.SpellSlotsUsed.Level3)
	s.Nil(resp.GameState.ConcentratingOn)
}

func (s *CharacterHandlerTestSuite) TestUpdateGameStateWithoutPatch() {
	s.mockService.EXPECT().
		UpdateGameState(s.ctx, &character.UpdateGameStateInput{UserID: testUserID, CharacterID: "char-1"}).
		Return(nil, errors.NewValidationBuilder().Field("gameState", "nothing to update").Build())

	_, err := s.handler.UpdateGameState(s.ctx, &arcanumv1alpha1.UpdateGameStateRequest{CharacterID: "char-1"})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *CharacterHandlerTestSuite) TestReplaceConditions() {
	s.mockService.EXPECT().
		ReplaceConditions(s.ctx, &character.ReplaceConditionsInput{
			UserID:       testUserID,
			CharacterID:  "char-1",
			ConditionIDs: nil,
		}).
		Return(&character.ReplaceConditionsOutput{}, nil)

	resp, err := s.handler.ReplaceConditions(s.ctx, &arcanumv1alpha1.ReplaceConditionsRequest{CharacterID: "char-1"})
	s.Require().NoError(err)
	s.NotNil(resp.ConditionIDs)
	s.Empty(resp.ConditionIDs)
}

func (s *CharacterHandlerTestSuite) TestInventory() {
	qty := int32(3)
	name := "Antorcha"

	s.mockService.EXPECT().
		AddInventoryItem(s.ctx, &character.AddInventoryItemInput{
			UserID:      testUserID,
			CharacterID: "char-1",
			Name:        "Antorcha",
			Quantity:    &qty,
		}).
		Return(&character.AddInventoryItemOutput{
			Item: &entities.InventoryItem{ID: "item-1", CharacterID: "char-1", Name: "Antorcha", Quantity: 3},
		}, nil)

	added, err := s.handler.AddInventoryItem(s.ctx, &arcanumv1alpha1.AddInventoryItemRequest{
		CharacterID: "char-1",
		Name:        "Antorcha",
		Quantity:    &qty,
	})
	s.Require().NoError(err)
	s.Equal("item-1", added.Item.ID)

	s.mockService.EXPECT().
		UpdateInventoryItem(s.ctx, &character.UpdateInventoryItemInput{
			UserID:      testUserID,
			CharacterID: "char-1",
			ItemID:      "item-1",
			Patch:       &entities.InventoryItemPatch{Name: &name},
		}).
		Return(&character.UpdateInventoryItemOutput{
			Item: &entities.InventoryItem{ID: "item-1", Name: "Antorcha", Quantity: 3},
		}, nil)

	updated, err := s.handler.UpdateInventoryItem(s.ctx, &arcanumv1alpha1.UpdateInventoryItemRequest{
		CharacterID: "char-1",
		ItemID:      "item-1",
		Name:        &name,
	})
	s.Require().NoError(err)
	s.Equal(int32(3), updated.Item.Quantity)

	s.mockService.EXPECT().
		DeleteInventoryItem(s.ctx, &character.DeleteInventoryItemInput{
			UserID:      testUserID,
			CharacterID: "char-1",
			ItemID:      "item-1",
		}).
		Return(nil, errors.NotFoundf("inventory item %s not found", "item-1"))

	_, err = s.handler.DeleteInventoryItem(s.ctx, &arcanumv1alpha1.DeleteInventoryItemRequest{
		CharacterID: "char-1",
		ItemID:      "item-1",
	})
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *CharacterHandlerTestSuite) TestAdvanceAndDelete() {
	level := int32(3)
	s.mockService.EXPECT().
		AdvanceCharacter(s.ctx, &character.AdvanceCharacterInput{
			UserID:      testUserID,
			CharacterID: "char-1",
			Level:       &level,
		}).
		Return(&character.AdvanceCharacterOutput{Sheet: s.testSheet()}, nil)

	resp, err := s.handler.AdvanceCharacter(s.ctx, &arcanumv1alpha1.AdvanceCharacterRequest{
		CharacterID: "char-1",
		Level:       &level,
	})
	s.Require().NoError(err)
	s.Equal("char-1", resp.Character.ID)

	s.mockService.EXPECT().
		DeleteCharacter(s.ctx, &character.DeleteCharacterInput{UserID: testUserID, CharacterID: "char-1"}).
		Return(&character.DeleteCharacterOutput{}, nil)

	_, err = s.handler.DeleteCharacter(s.ctx, &arcanumv1alpha1.DeleteCharacterRequest{CharacterID: "char-1"})
	s.Require().NoError(err)
}
