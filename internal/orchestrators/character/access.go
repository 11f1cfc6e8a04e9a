package character

import (
	"context"

	"github.com/KirkDiggler/arcanum-api/internal/entities"
	"github.com/KirkDiggler/arcanum-api/internal/errors"
	characterrepo "github.com/KirkDiggler/arcanum-api/internal/repositories/character"
)

func requireCaller(userID string) error {
	if userID == "" {
		return errors.Unauthenticated("caller identity is required")
	}
	return nil
}

// loadOwned returns the character if userID owns it. A character owned by
// someone else is reported exactly like a missing one.
func (o *Orchestrator) loadOwned(ctx context.Context, userID, characterID string) (*entities.Character, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterId", characterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: characterID})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, characterNotFound(characterID)
		}
		return nil, errors.Wrap(err, "failed to get character")
	}

	if !out.Character.OwnedBy(userID) {
		return nil, characterNotFound(characterID)
	}

	return out.Character, nil
}

func characterNotFound(id string) error {
	return errors.NotFoundf("character %s not found", id)
}
