package character

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/arcanum-api/internal/engine"
	"github.com/KirkDiggler/arcanum-api/internal/entities"
	"github.com/KirkDiggler/arcanum-api/internal/errors"
	"github.com/KirkDiggler/arcanum-api/internal/services/character"
)

const metaCreationCodes = "creation_codes"

// creationFailure folds every creation error into one validation failure.
func creationFailure(verrs []engine.ValidationError) error {
	vb := errors.NewValidationBuilder()
	codes := make([]string, 0, len(verrs))
	for _, v := range verrs {
		vb.Field(v.Field, v.Message)
		codes = append(codes, v.Code)
	}

	err := vb.Build()
	if err == nil {
		return errors.InvalidArgument("character creation failed validation")
	}

	var typed *errors.Error
	if errors.As(err, &typed) {
		return typed.WithMeta(metaCreationCodes, strings.Join(codes, ","))
	}
	return err
}

func validateAdvance(input *character.AdvanceCharacterInput) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterId", input.CharacterID, vb)

	if input.Experience == nil && input.Level == nil {
		vb.Field("advancement", "nothing to update")
	}
	if input.Experience != nil {
		errors.ValidateNonNegative("experience", *input.Experience, vb)
	}
	if input.Level != nil {
		errors.ValidateRange("level", int(*input.Level), int(entities.MinLevel), int(entities.MaxLevel), vb)
	}

	return vb.Build()
}

// normalizeGameStatePatch trims concentration and rejects empty or negative
// patches.
func normalizeGameStatePatch(characterID string, patch *entities.GameStatePatch) (*entities.GameStatePatch, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterId", characterID, vb)

	if patch.IsEmpty() {
		vb.Field("gameState", "nothing to update")
		return nil, vb.Build()
	}

	out := *patch
	if out.ConcentratingOn != nil {
		trimmed := strings.TrimSpace(*out.ConcentratingOn)
		out.ConcentratingOn = &trimmed
	}

	checkNonNegative(vb, "currentHealth", out.CurrentHealth)
	checkNonNegative(vb, "maximumHealth", out.MaximumHealth)
	checkNonNegative(vb, "currentGold", out.CurrentGold)
	checkNonNegative(vb, "inspirationPoints", out.InspirationPoints)
	for i, n := range out.SpellSlotsUsed {
		checkNonNegative(vb, fmt.Sprintf("spellSlotsUsed.level%d", i+1), n)
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}
	return &out, nil
}

func checkNonNegative(vb *errors.ValidationBuilder, field string, n *int32) {
	if n != nil {
		errors.ValidateNonNegative(field, *n, vb)
	}
}

func validateNewItem(input *character.AddInventoryItemInput) (string, int32, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterId", input.CharacterID, vb)

	name := strings.TrimSpace(input.Name)
	if name == "" {
		vb.RequiredField("name")
	}

	quantity := int32(1)
	if input.Quantity != nil {
		quantity = *input.Quantity
		errors.ValidateNonNegative("quantity", quantity, vb)
	}

	return name, quantity, vb.Build()
}

func normalizeItemPatch(input *character.UpdateInventoryItemInput) (*entities.InventoryItemPatch, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterId", input.CharacterID, vb)
	errors.ValidateRequired("itemId", input.ItemID, vb)

	if input.Patch.IsEmpty() {
		vb.Field("item", "nothing to update")
		return nil, vb.Build()
	}

	out := *input.Patch
	if out.Name != nil {
		name := strings.TrimSpace(*out.Name)
		if name == "" {
			vb.RequiredField("name")
		}
		out.Name = &name
	}
	checkNonNegative(vb, "quantity", out.Quantity)

	if err := vb.Build(); err != nil {
		return nil, err
	}
	return &out, nil
}
