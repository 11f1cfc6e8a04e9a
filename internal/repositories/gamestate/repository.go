// Package gamestate persists the mutable play state of characters: hit
// points, gold, inspiration, used spell slots, concentration and active
// conditions.
package gamestate

//go:generate mockgen -destination=mock/mock_repository.go -package=gamestatemock github.com/KirkDiggler/arcanum-api/internal/repositories/gamestate Repository

import (
	"context"

	"github.com/KirkDiggler/arcanum-api/internal/entities"
)

// Repository defines the interface for game state persistence
type Repository interface {
	// Get retrieves the game state of a character
	// Returns errors.NotFound if no game state exists
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Patch writes only the fields the patch names and returns the stored
	// state after the write
	// Returns errors.InvalidArgument for an empty patch
	// Returns errors.NotFound if no game state exists
	Patch(ctx context.Context, input PatchInput) (*PatchOutput, error)

	// GetConditions returns the active condition ids, sorted
	GetConditions(ctx context.Context, input GetConditionsInput) (*GetConditionsOutput, error)

	// ReplaceConditions replaces the condition set with exactly the given ids
	ReplaceConditions(ctx context.Context, input ReplaceConditionsInput) (*ReplaceConditionsOutput, error)
}

// GetInput defines the input for getting game state
type GetInput struct {
	CharacterID string
}

// GetOutput defines the output for getting game state
type GetOutput struct {
	GameState *entities.GameState
}

// PatchInput defines the input for a partial game state update
type PatchInput struct {
	CharacterID string
	Patch       *entities.GameStatePatch
	UpdatedAt   int64
}

// PatchOutput defines the output for a partial game state update
type PatchOutput struct {
	GameState *entities.GameState
}

// GetConditionsInput defines the input for reading conditions
type GetConditionsInput struct {
	CharacterID string
}

// GetConditionsOutput defines the output for reading conditions
type GetConditionsOutput struct {
	ConditionIDs []string
}

// ReplaceConditionsInput defines the input for replacing conditions
type ReplaceConditionsInput struct {
	CharacterID  string
	ConditionIDs []string
}

// ReplaceConditionsOutput defines the output for replacing conditions
type ReplaceConditionsOutput struct {
	ConditionIDs []string
}
