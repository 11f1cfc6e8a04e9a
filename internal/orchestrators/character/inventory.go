package character

import (
	"context"

	"github.com/KirkDiggler/arcanum-api/internal/entities"
	"github.com/KirkDiggler/arcanum-api/internal/errors"
	inventoryrepo "github.com/KirkDiggler/arcanum-api/internal/repositories/inventory"
	"github.com/KirkDiggler/arcanum-api/internal/services/character"
)

// Inventory methods

// AddInventoryItem adds an item to an owned character
func (o *Orchestrator) AddInventoryItem(
	ctx context.Context,
	input *character.AddInventoryItemInput,
) (*character.AddInventoryItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireCaller(input.UserID); err != nil {
		return nil, err
	}

	name, quantity, err := validateNewItem(input)
	if err != nil {
		return nil, err
	}

	char, err := o.loadOwned(ctx, input.UserID, input.CharacterID)
	if err != nil {
		return nil, err
	}

	now := o.clock.Now().Unix()
	out, err := o.inventoryRepo.Create(ctx, inventoryrepo.CreateInput{
		Item: &entities.InventoryItem{
			ID:          o.itemIDGenerator.Generate(),
			CharacterID: char.ID,
			Name:        name,
			Quantity:    quantity,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add inventory item")
	}

	return &character.AddInventoryItemOutput{Item: out.Item}, nil
}

// UpdateInventoryItem applies a partial update to an item
func (o *Orchestrator) UpdateInventoryItem(
	ctx context.Context,
	input *character.UpdateInventoryItemInput,
) (*character.UpdateInventoryItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireCaller(input.UserID); err != nil {
		return nil, err
	}

	patch, err := normalizeItemPatch(input)
	if err != nil {
		return nil, err
	}

	char, err := o.loadOwned(ctx, input.UserID, input.CharacterID)
	if err != nil {
		return nil, err
	}

	existing, err := o.inventoryRepo.Get(ctx, inventoryrepo.GetInput{
		CharacterID: char.ID,
		ItemID:      input.ItemID,
	})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, itemNotFound(input.ItemID)
		}
		return nil, errors.Wrap(err, "failed to get inventory item")
	}

	item := patch.ApplyTo(*existing.Item)
	item.UpdatedAt = o.clock.Now().Unix()

	out, err := o.inventoryRepo.Update(ctx, inventoryrepo.UpdateInput{Item: &item})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, itemNotFound(input.ItemID)
		}
		return nil, errors.Wrap(err, "failed to update inventory item")
	}

	return &character.UpdateInventoryItemOutput{Item: out.Item}, nil
}

// DeleteInventoryItem removes an item from an owned character
func (o *Orchestrator) DeleteInventoryItem(
	ctx context.Context,
	input *character.DeleteInventoryItemInput,
) (*character.DeleteInventoryItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireCaller(input.UserID); err != nil {
		return nil, err
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterId", input.CharacterID, vb)
	errors.ValidateRequired("itemId", input.ItemID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	char, err := o.loadOwned(ctx, input.UserID, input.CharacterID)
	if err != nil {
		return nil, err
	}

	_, err = o.inventoryRepo.Delete(ctx, inventoryrepo.DeleteInput{
		CharacterID: char.ID,
		ItemID:      input.ItemID,
	})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, itemNotFound(input.ItemID)
		}
		return nil, errors.Wrap(err, "failed to delete inventory item")
	}

	return &character.DeleteInventoryItemOutput{}, nil
}

func itemNotFound(id string) error {
	return errors.NotFoundf("inventory item %s not found", id)
}
