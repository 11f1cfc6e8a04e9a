package character_test

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/arcanum-api/internal/engine"
	"github.com/KirkDiggler/arcanum-api/internal/entities"
	"github.com/KirkDiggler/arcanum-api/internal/errors"
	gamestaterepo "github.com/KirkDiggler/arcanum-api/internal/repositories/gamestate"
	characterservice "github.com/KirkDiggler/arcanum-api/internal/services/character"
	"github.com/KirkDiggler/arcanum-api/internal/testutils"
)

func ptr[T any](v T) *T {
	return &v
}

func (s *OrchestratorTestSuite) expectPatch(characterID string, check func(*entities.GameStatePatch)) {
	s.mockStateRepo.EXPECT().
		Patch(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input gamestaterepo.PatchInput) (*gamestaterepo.PatchOutput, error) {
			s.Equal(characterID, input.CharacterID)
			s.Equal(s.clock.Now().Unix(), input.UpdatedAt)
			check(input.Patch)

			state := input.Patch.ApplyTo(*testutils.CreateTestGameState(characterID))
			state.UpdatedAt = input.UpdatedAt
			return &gamestaterepo.PatchOutput{GameState: &state}, nil
		})
}

func (s *OrchestratorTestSuite) TestUpdateGameState() {
	char := s.expectOwned()
	s.expectPatch(char.ID, func(p *entities.GameStatePatch) {
		s.Equal(int32(4), *p.CurrentHealth)
		s.Equal(int32(25), *p.CurrentGold)
		s.Equal("Bendecir", *p.ConcentratingOn)
		s.Nil(p.MaximumHealth)
		s.Equal(int32(1), *p.SpellSlotsUsed[0])
		s.Nil(p.SpellSlotsUsed[1])
	})

	patch := &entities.GameStatePatch{
		CurrentHealth:   ptr(int32(4)),
		CurrentGold:     ptr(int32(25)),
		ConcentratingOn: ptr("  Bendecir "),
	}
	patch.SpellSlotsUsed[0] = ptr(int32(1))

	out, err := s.orchestrator.UpdateGameState(s.ctx, &characterservice.UpdateGameStateInput{
		UserID:      ownerID,
		CharacterID: char.ID,
		Patch:       patch,
	})
	s.Require().NoError(err)
	s.Equal(int32(4), out.GameState.CurrentHealth)
	s.Equal(int32(11), out.GameState.MaximumHealth)
	s.Equal(int32(25), out.GameState.CurrentGold)
	s.Equal("Bendecir", out.GameState.ConcentratingOn)

	// the caller's patch is left untouched
	s.Equal("  Bendecir ", *patch.ConcentratingOn)
}

func (s *OrchestratorTestSuite) TestUpdateGameStateUnclampedKeepsOverflow() {
	char := s.expectOwned()
	s.expectPatch(char.ID, func(p *entities.GameStatePatch) {
		s.Equal(int32(30), *p.CurrentHealth)
	})

	out, err := s.orchestrator.UpdateGameState(s.ctx, &characterservice.UpdateGameStateInput{
		UserID:      ownerID,
		CharacterID: char.ID,
		Patch:       &entities.GameStatePatch{CurrentHealth: ptr(int32(30))},
	})
	s.Require().NoError(err)
	s.Equal(int32(30), out.GameState.CurrentHealth)
}

func (s *OrchestratorTestSuite) TestUpdateGameStateClampPolicy() {
	o := s.newOrchestrator(engine.HealthPolicyClamp)

	s.Run("current above maximum", func() {
		char := s.expectOwned()
		s.mockStateRepo.EXPECT().
			Get(s.ctx, gamestaterepo.GetInput{CharacterID: char.ID}).
			Return(&gamestaterepo.GetOutput{GameState: testutils.CreateTestGameState(char.ID)}, nil)
		s.expectPatch(char.ID, func(p *entities.GameStatePatch) {
			s.Equal(int32(11), *p.CurrentHealth)
		})

		out, err := o.UpdateGameState(s.ctx, &characterservice.UpdateGameStateInput{
			UserID:      ownerID,
			CharacterID: char.ID,
			Patch:       &entities.GameStatePatch{CurrentHealth: ptr(int32(30))},
		})
		s.Require().NoError(err)
		s.Equal(int32(11), out.GameState.CurrentHealth)
	})

	s.Run("maximum lowered below current", func() {
		char := s.expectOwned()
		s.mockStateRepo.EXPECT().
			Get(s.ctx, gamestaterepo.GetInput{CharacterID: char.ID}).
			Return(&gamestaterepo.GetOutput{GameState: testutils.CreateTestGameState(char.ID)}, nil)
		s.expectPatch(char.ID, func(p *entities.GameStatePatch) {
			s.Equal(int32(5), *p.MaximumHealth)
			s.Require().NotNil(p.CurrentHealth)
			s.Equal(int32(5), *p.CurrentHealth)
		})

		_, err := o.UpdateGameState(s.ctx, &characterservice.UpdateGameStateInput{
			UserID:      ownerID,
			CharacterID: char.ID,
			Patch:       &entities.GameStatePatch{MaximumHealth: ptr(int32(5))},
		})
		s.Require().NoError(err)
	})

	s.Run("maximum raised leaves current alone", func() {
		char := s.expectOwned()
		s.mockStateRepo.EXPECT().
			Get(s.ctx, gamestaterepo.GetInput{CharacterID: char.ID}).
			Return(&gamestaterepo.GetOutput{GameState: testutils.CreateTestGameState(char.ID)}, nil)
		s.expectPatch(char.ID, func(p *entities.GameStatePatch) {
			s.Nil(p.CurrentHealth)
		})

		_, err := o.UpdateGameState(s.ctx, &characterservice.UpdateGameStateInput{
			UserID:      ownerID,
			CharacterID: char.ID,
			Patch:       &entities.GameStatePatch{MaximumHealth: ptr(int32(20))},
		})
		s.Require().NoError(err)
	})

	s.Run("gold only skips the health read", func() {
		char := s.expectOwned()
		s.expectPatch(char.ID, func(p *entities.GameStatePatch) {
			s.Nil(p.CurrentHealth)
		})

		_, err := o.UpdateGameState(s.ctx, &characterservice.UpdateGameStateInput{
			UserID:      ownerID,
			CharacterID: char.ID,
			Patch:       &entities.GameStatePatch{CurrentGold: ptr(int32(3))},
		})
		s.Require().NoError(err)
	})
}

func (s *OrchestratorTestSuite) TestUpdateGameStateValidation() {
	testCases := []struct {
		name  string
		patch *entities.GameStatePatch
		field string
	}{
		{name: "nil patch", patch: nil, field: "gameState"},
		{name: "empty patch", patch: &entities.GameStatePatch{}, field: "gameState"},
		{name: "negative gold", patch: &entities.GameStatePatch{CurrentGold: ptr(int32(-1))}, field: "currentGold"},
		{name: "negative inspiration", patch: &entities.GameStatePatch{InspirationPoints: ptr(int32(-2))}, field: "inspirationPoints"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.UpdateGameState(s.ctx, &characterservice.UpdateGameStateInput{
				UserID:      ownerID,
				CharacterID: testutils.TestCharacterID,
				Patch:       tc.patch,
			})
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(errors.FieldErrors(err), tc.field)
		})
	}

	s.Run("negative spell slot", func() {
		patch := &entities.GameStatePatch{}
		patch.SpellSlotsUsed[2] = ptr(int32(-1))

		_, err := s.orchestrator.UpdateGameState(s.ctx, &characterservice.UpdateGameStateInput{
			UserID:      ownerID,
			CharacterID: testutils.TestCharacterID,
			Patch:       patch,
		})
		s.Contains(errors.FieldErrors(err), "spellSlotsUsed.level3")
	})
}

func (s *OrchestratorTestSuite) TestUpdateGameStateMissingState() {
	char := s.expectOwned()
	s.mockStateRepo.EXPECT().
		Patch(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("game state not found"))

	_, err := s.orchestrator.UpdateGameState(s.ctx, &characterservice.UpdateGameStateInput{
		UserID:      ownerID,
		CharacterID: char.ID,
		Patch:       &entities.GameStatePatch{CurrentGold: ptr(int32(1))},
	})
	s.True(errors.IsDataLoss(err))
}

func (s *OrchestratorTestSuite) TestUpdateGameStateNotOwned() {
	char := s.expectOwned()

	_, err := s.orchestrator.UpdateGameState(s.ctx, &characterservice.UpdateGameStateInput{
		UserID:      strangerID,
		CharacterID: char.ID,
		Patch:       &entities.GameStatePatch{CurrentGold: ptr(int32(1))},
	})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestReplaceConditions() {
	char := s.expectOwned()
	s.mockStateRepo.EXPECT().
		ReplaceConditions(s.ctx, gamestaterepo.ReplaceConditionsInput{
			CharacterID:  char.ID,
			ConditionIDs: []string{"blinded", "poisoned"},
		}).
		Return(&gamestaterepo.ReplaceConditionsOutput{ConditionIDs: []string{"blinded", "poisoned"}}, nil)

	out, err := s.orchestrator.ReplaceConditions(s.ctx, &characterservice.ReplaceConditionsInput{
		UserID:       ownerID,
		CharacterID:  char.ID,
		ConditionIDs: []string{" poisoned", "blinded", "poisoned", ""},
	})
	s.Require().NoError(err)
	s.Equal([]string{"blinded", "poisoned"}, out.ConditionIDs)
}

func (s *OrchestratorTestSuite) TestReplaceConditionsClear() {
	char := s.expectOwned()
	s.mockStateRepo.EXPECT().
		ReplaceConditions(s.ctx, gamestaterepo.ReplaceConditionsInput{
			CharacterID:  char.ID,
			ConditionIDs: []string{},
		}).
		Return(&gamestaterepo.ReplaceConditionsOutput{ConditionIDs: []string{}}, nil)

	out, err := s.orchestrator.ReplaceConditions(s.ctx, &characterservice.ReplaceConditionsInput{
		UserID:      ownerID,
		CharacterID: char.ID,
	})
	s.Require().NoError(err)
	s.Empty(out.ConditionIDs)
}
