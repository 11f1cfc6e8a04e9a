// Package character defines the interface for character operations
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/KirkDiggler/arcanum-api/internal/services/character Service

import (
	"context"

	"github.com/KirkDiggler/arcanum-api/internal/engine"
	"github.com/KirkDiggler/arcanum-api/internal/entities"
)

// Service defines the interface for character operations. Every input
// carries UserID, the authenticated caller; character-scoped operations
// report a character owned by someone else exactly like a missing one.
type Service interface {
	// Character lifecycle
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	GetCharacterSheet(ctx context.Context, input *GetCharacterSheetInput) (*GetCharacterSheetOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	AdvanceCharacter(ctx context.Context, input *AdvanceCharacterInput) (*AdvanceCharacterOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	// Play state
	UpdateGameState(ctx context.Context, input *UpdateGameStateInput) (*UpdateGameStateOutput, error)
	ReplaceConditions(ctx context.Context, input *ReplaceConditionsInput) (*ReplaceConditionsOutput, error)

	// Inventory
	AddInventoryItem(ctx context.Context, input *AddInventoryItemInput) (*AddInventoryItemOutput, error)
	UpdateInventoryItem(ctx context.Context, input *UpdateInventoryItemInput) (*UpdateInventoryItemOutput, error)
	DeleteInventoryItem(ctx context.Context, input *DeleteInventoryItemInput) (*DeleteInventoryItemOutput, error)
}

// CreateCharacterInput defines the request for creating a character
type CreateCharacterInput struct {
	UserID  string
	Request *engine.CreationRequest
}

// CreateCharacterOutput defines the response for creating a character
type CreateCharacterOutput struct {
	Sheet    *entities.CharacterSheet
	Warnings []engine.ValidationWarning
}

// GetCharacterSheetInput defines the request for reading a sheet
type GetCharacterSheetInput struct {
	UserID      string
	CharacterID string
}

// GetCharacterSheetOutput defines the response for reading a sheet
type GetCharacterSheetOutput struct {
	Sheet *entities.CharacterSheet
}

// ListCharactersInput defines the request for listing characters. OwnerID
// defaults to the caller; any other owner is refused.
type ListCharactersInput struct {
	UserID  string
	OwnerID string
}

// CharacterSummary is one row of a character list
type CharacterSummary struct {
	ID         string
	NameEs     string
	NameEn     string
	Race       entities.LocalizedRef
	Class      entities.LocalizedRef
	Level      int32
	Experience int32
	CreatedAt  int64
	UpdatedAt  int64
}

// ListCharactersOutput defines the response for listing characters
type ListCharactersOutput struct {
	Characters []*CharacterSummary
}

// AdvanceCharacterInput sets experience and/or level. Nil fields are kept.
type AdvanceCharacterInput struct {
	UserID      string
	CharacterID string
	Experience  *int32
	Level       *int32
}

// AdvanceCharacterOutput defines the response for advancing a character
type AdvanceCharacterOutput struct {
	Sheet *entities.CharacterSheet
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	UserID      string
	CharacterID string
}

// DeleteCharacterOutput defines the response for deleting a character
type DeleteCharacterOutput struct{}

// UpdateGameStateInput defines a partial game state update
type UpdateGameStateInput struct {
	UserID      string
	CharacterID string
	Patch       *entities.GameStatePatch
}

// UpdateGameStateOutput returns the stored state after the update
type UpdateGameStateOutput struct {
	GameState *entities.GameState
}

// ReplaceConditionsInput defines the request for replacing conditions
type ReplaceConditionsInput struct {
	UserID       string
	CharacterID  string
	ConditionIDs []string
}

// ReplaceConditionsOutput returns the persisted condition set
type ReplaceConditionsOutput struct {
	ConditionIDs []string
}

// AddInventoryItemInput defines the request for adding an item. Quantity
// defaults to 1 when nil.
type AddInventoryItemInput struct {
	UserID      string
	CharacterID string
	Name        string
	Quantity    *int32
}

// AddInventoryItemOutput defines the response for adding an item
type AddInventoryItemOutput struct {
	Item *entities.InventoryItem
}

// UpdateInventoryItemInput defines a partial item update
type UpdateInventoryItemInput struct {
	UserID      string
	CharacterID string
	ItemID      string
	Patch       *entities.InventoryItemPatch
}

// UpdateInventoryItemOutput defines the response for updating an item
type UpdateInventoryItemOutput struct {
	Item *entities.InventoryItem
}

// DeleteInventoryItemInput defines the request for deleting an item
type DeleteInventoryItemInput struct {
	UserID      string
	CharacterID string
	ItemID      string
}

// DeleteInventoryItemOutput defines the response for deleting an item
type DeleteInventoryItemOutput struct{}
