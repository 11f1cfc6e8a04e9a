// Package inventory provides the interface for inventory item persistence
package inventory

//go:generate mockgen -destination=mock/mock_repository.go -package=inventorymock github.com/KirkDiggler/arcanum-api/internal/repositories/inventory Repository

import (
	"context"

	"github.com/KirkDiggler/arcanum-api/internal/entities"
)

// Repository stores inventory items keyed by (character id, item id)
type Repository interface {
	// List returns a character's items ordered by creation time, then id
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Get retrieves one item
	// Returns errors.NotFound if the item doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Create stores a new item
	// Returns errors.AlreadyExists if the item id is taken
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Update replaces an existing item
	// Returns errors.NotFound if the item doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes an item
	// Returns errors.NotFound if the item doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// ListInput defines the input for listing items
type ListInput struct {
	CharacterID string
}

// ListOutput defines the output for listing items
type ListOutput struct {
	Items []*entities.InventoryItem
}

// GetInput defines the input for getting an item
type GetInput struct {
	CharacterID string
	ItemID      string
}

// GetOutput defines the output for getting an item
type GetOutput struct {
	Item *entities.InventoryItem
}

// CreateInput defines the input for creating an item
type CreateInput struct {
	Item *entities.InventoryItem
}

// CreateOutput defines the output for creating an item
type CreateOutput struct {
	Item *entities.InventoryItem
}

// UpdateInput defines the input for updating an item
type UpdateInput struct {
	Item *entities.InventoryItem
}

// UpdateOutput defines the output for updating an item
type UpdateOutput struct {
	Item *entities.InventoryItem
}

// DeleteInput defines the input for deleting an item
type DeleteInput struct {
	CharacterID string
	ItemID      string
}

// DeleteOutput defines the output for deleting an item
type DeleteOutput struct{}
