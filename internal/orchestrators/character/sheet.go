package character

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/arcanum-api/internal/engine"
	"github.com/KirkDiggler/arcanum-api/internal/entities"
	"github.com/KirkDiggler/arcanum-api/internal/errors"
	characterrepo "github.com/KirkDiggler/arcanum-api/internal/repositories/character"
	gamestaterepo "github.com/KirkDiggler/arcanum-api/internal/repositories/gamestate"
	inventoryrepo "github.com/KirkDiggler/arcanum-api/internal/repositories/inventory"
)

// sheetParts is everything stored beside a character record.
type sheetParts struct {
	abilities  entities.AbilityScores
	state      *entities.GameState
	skills     []string
	conditions []string
	inventory  []*entities.InventoryItem
}

// loadParts reads the companion rows of a character concurrently. Missing
// ability scores or game state mean the character is incomplete.
func (o *Orchestrator) loadParts(ctx context.Context, characterID string) (*sheetParts, error) {
	parts := &sheetParts{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		out, err := o.characterRepo.GetAbilityScores(gctx, characterrepo.GetAbilityScoresInput{
			CharacterID: characterID,
		})
		if err != nil {
			if errors.IsNotFound(err) {
				return errors.DataLossf("character %s has no ability scores", characterID)
			}
			return errors.Wrap(err, "failed to load ability scores")
		}
		parts.abilities = out.AbilityScores
		return nil
	})

	g.Go(func() error {
		out, err := o.gameStateRepo.Get(gctx, gamestaterepo.GetInput{CharacterID: characterID})
		if err != nil {
			if errors.IsNotFound(err) {
				return errors.DataLossf("character %s has no game state", characterID)
			}
			return errors.Wrap(err, "failed to load game state")
		}
		parts.state = out.GameState
		return nil
	})

	g.Go(func() error {
		out, err := o.characterRepo.ListSkills(gctx, characterrepo.ListSkillsInput{CharacterID: characterID})
		if err != nil {
			return errors.Wrap(err, "failed to load skills")
		}
		parts.skills = out.SkillKeys
		return nil
	})

	g.Go(func() error {
		out, err := o.gameStateRepo.GetConditions(gctx, gamestaterepo.GetConditionsInput{CharacterID: characterID})
		if err != nil {
			return errors.Wrap(err, "failed to load conditions")
		}
		parts.conditions = out.ConditionIDs
		return nil
	})

	g.Go(func() error {
		out, err := o.inventoryRepo.List(gctx, inventoryrepo.ListInput{CharacterID: characterID})
		if err != nil {
			return errors.Wrap(err, "failed to load inventory")
		}
		parts.inventory = out.Items
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return parts, nil
}

func (o *Orchestrator) buildSheet(ctx context.Context, char *entities.Character) (*entities.CharacterSheet, error) {
	parts, err := o.loadParts(ctx, char.ID)
	if err != nil {
		return nil, err
	}

	defs, err := o.engine.ResolveDefinitions(char)
	if err != nil {
		return nil, err
	}

	return o.engine.AssembleSheet(&engine.AssembleSheetInput{
		Character:     char,
		AbilityScores: parts.abilities,
		GameState:     *parts.state,
		SkillKeys:     parts.skills,
		Definitions:   defs,
		ConditionIDs:  parts.conditions,
		Inventory:     parts.inventory,
	})
}
