package character

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/arcanum-api/internal/engine"
	"github.com/KirkDiggler/arcanum-api/internal/entities"
	"github.com/KirkDiggler/arcanum-api/internal/errors"
	gamestaterepo "github.com/KirkDiggler/arcanum-api/internal/repositories/gamestate"
	"github.com/KirkDiggler/arcanum-api/internal/services/character"
)

// Play state methods

// UpdateGameState writes the fields named by the patch and returns the
// merged state
func (o *Orchestrator) UpdateGameState(
	ctx context.Context,
	input *character.UpdateGameStateInput,
) (*character.UpdateGameStateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireCaller(input.UserID); err != nil {
		return nil, err
	}

	patch, err := normalizeGameStatePatch(input.CharacterID, input.Patch)
	if err != nil {
		return nil, err
	}

	char, err := o.loadOwned(ctx, input.UserID, input.CharacterID)
	if err != nil {
		return nil, err
	}

	if o.healthPolicy == engine.HealthPolicyClamp && (patch.CurrentHealth != nil || patch.MaximumHealth != nil) {
		patch, err = o.boundHealth(ctx, char.ID, patch)
		if err != nil {
			return nil, err
		}
	}

	out, err := o.gameStateRepo.Patch(ctx, gamestaterepo.PatchInput{
		CharacterID: char.ID,
		Patch:       patch,
		UpdatedAt:   o.clock.Now().Unix(),
	})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.DataLossf("character %s has no game state", char.ID)
		}
		return nil, errors.Wrap(err, "failed to update game state")
	}

	slog.DebugContext(ctx, "game state updated", "character_id", char.ID)

	return &character.UpdateGameStateOutput{GameState: out.GameState}, nil
}

// boundHealth rewrites the patch so current health stays within the policy
// bounds after the merge.
func (o *Orchestrator) boundHealth(
	ctx context.Context,
	characterID string,
	patch *entities.GameStatePatch,
) (*entities.GameStatePatch, error) {
	current, err := o.gameStateRepo.Get(ctx, gamestaterepo.GetInput{CharacterID: characterID})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.DataLossf("character %s has no game state", characterID)
		}
		return nil, errors.Wrap(err, "failed to load game state")
	}

	bounded := o.healthPolicy.Apply(patch.ApplyTo(*current.GameState))
	if patch.CurrentHealth == nil && bounded.CurrentHealth == current.GameState.CurrentHealth {
		return patch, nil
	}

	out := *patch
	out.CurrentHealth = &bounded.CurrentHealth
	return &out, nil
}

// ReplaceConditions sets the active conditions to exactly the given ids
func (o *Orchestrator) ReplaceConditions(
	ctx context.Context,
	input *character.ReplaceConditionsInput,
) (*character.ReplaceConditionsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireCaller(input.UserID); err != nil {
		return nil, err
	}

	char, err := o.loadOwned(ctx, input.UserID, input.CharacterID)
	if err != nil {
		return nil, err
	}

	out, err := o.gameStateRepo.ReplaceConditions(ctx, gamestaterepo.ReplaceConditionsInput{
		CharacterID:  char.ID,
		ConditionIDs: gamestaterepo.NormalizeConditions(input.ConditionIDs),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to replace conditions")
	}

	return &character.ReplaceConditionsOutput{ConditionIDs: out.ConditionIDs}, nil
}
