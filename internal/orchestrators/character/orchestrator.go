// Package character implements the character orchestrator
package character

import (
	"context"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/arcanum-api/internal/engine"
	"github.com/KirkDiggler/arcanum-api/internal/entities"
	"github.com/KirkDiggler/arcanum-api/internal/errors"
	"github.com/KirkDiggler/arcanum-api/internal/pkg/clock"
	"github.com/KirkDiggler/arcanum-api/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/arcanum-api/internal/repositories/character"
	gamestaterepo "github.com/KirkDiggler/arcanum-api/internal/repositories/gamestate"
	inventoryrepo "github.com/KirkDiggler/arcanum-api/internal/repositories/inventory"
	"github.com/KirkDiggler/arcanum-api/internal/services/character"
)

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo   characterrepo.Repository
	GameStateRepo   gamestaterepo.Repository
	InventoryRepo   inventoryrepo.Repository
	Engine          engine.Engine
	IDGenerator     idgen.Generator
	ItemIDGenerator idgen.Generator

	// Clock defaults to the system clock.
	Clock clock.Clock
	// HealthPolicy defaults to engine.HealthPolicyUnclamped.
	HealthPolicy engine.HealthPolicy
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.GameStateRepo == nil {
		vb.RequiredField("GameStateRepo")
	}
	if c.InventoryRepo == nil {
		vb.RequiredField("InventoryRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.ItemIDGenerator == nil {
		vb.RequiredField("ItemIDGenerator")
	}
	if c.HealthPolicy != "" && !c.HealthPolicy.Valid() {
		vb.InvalidField("HealthPolicy", "unknown policy "+string(c.HealthPolicy))
	}

	return vb.Build()
}

// Orchestrator implements the character.Service interface
type Orchestrator struct {
	characterRepo   characterrepo.Repository
	gameStateRepo   gamestaterepo.Repository
	inventoryRepo   inventoryrepo.Repository
	engine          engine.Engine
	idGenerator     idgen.Generator
	itemIDGenerator idgen.Generator
	clock           clock.Clock
	healthPolicy    engine.HealthPolicy
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	policy := cfg.HealthPolicy
	if policy == "" {
		policy = engine.HealthPolicyUnclamped
	}

	return &Orchestrator{
		characterRepo:   cfg.CharacterRepo,
		gameStateRepo:   cfg.GameStateRepo,
		inventoryRepo:   cfg.InventoryRepo,
		engine:          cfg.Engine,
		idGenerator:     cfg.IDGenerator,
		itemIDGenerator: cfg.ItemIDGenerator,
		clock:           c,
		healthPolicy:    policy,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ character.Service = (*Orchestrator)(nil)

// Character lifecycle methods

// CreateCharacter validates a creation request, stores the new character and
// returns its sheet
func (o *Orchestrator) CreateCharacter(
	ctx context.Context,
	input *character.CreateCharacterInput,
) (*character.CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireCaller(input.UserID); err != nil {
		return nil, err
	}

	validation, err := o.engine.ValidateCreation(&engine.ValidateCreationInput{Request: input.Request})
	if err != nil {
		return nil, err
	}
	if !validation.IsValid {
		return nil, creationFailure(validation.Errors)
	}

	result := validation.Result
	now := o.clock.Now().Unix()

	char := result.Character
	char.ID = o.idGenerator.Generate()
	char.UserID = input.UserID
	char.CreatedAt = now
	char.UpdatedAt = now

	state := result.GameState
	state.CharacterID = char.ID
	state.UpdatedAt = now

	_, err = o.characterRepo.Create(ctx, characterrepo.CreateInput{
		Character:     &char,
		AbilityScores: result.AbilityScores,
		GameState:     &state,
		SkillKeys:     result.SkillKeys,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character")
	}

	defs, err := o.engine.ResolveDefinitions(&char)
	if err != nil {
		return nil, err
	}

	sheet, err := o.engine.AssembleSheet(&engine.AssembleSheetInput{
		Character:     &char,
		AbilityScores: result.AbilityScores,
		GameState:     state,
		SkillKeys:     result.SkillKeys,
		Definitions:   defs,
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "character created",
		"character_id", char.ID,
		"user_id", char.UserID,
		"race_id", char.RaceID,
		"class_id", char.ClassID,
		"warnings", len(validation.Warnings))

	return &character.CreateCharacterOutput{
		Sheet:    sheet,
		Warnings: validation.Warnings,
	}, nil
}

// GetCharacterSheet loads an owned character and assembles its sheet
func (o *Orchestrator) GetCharacterSheet(
	ctx context.Context,
	input *character.GetCharacterSheetInput,
) (*character.GetCharacterSheetOutput, error) {
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

	sheet, err := o.buildSheet(ctx, char)
	if err != nil {
		return nil, err
	}

	return &character.GetCharacterSheetOutput{Sheet: sheet}, nil
}

// ListCharacters returns summaries of the caller's characters, most recently
// updated first
func (o *Orchestrator) ListCharacters(
	ctx context.Context,
	input *character.ListCharactersInput,
) (*character.ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireCaller(input.UserID); err != nil {
		return nil, err
	}

	owner := input.OwnerID
	if owner == "" {
		owner = input.UserID
	}
	if owner != input.UserID {
		return nil, errors.PermissionDenied("cannot list characters of another user")
	}

	out, err := o.characterRepo.ListByUserID(ctx, characterrepo.ListByUserIDInput{UserID: owner})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	summaries := make([]*character.CharacterSummary, 0, len(out.Characters))
	for _, char := range out.Characters {
		if char == nil {
			continue
		}
		summaries = append(summaries, o.summarize(ctx, char))
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		if summaries[i].UpdatedAt != summaries[j].UpdatedAt {
			return summaries[i].UpdatedAt > summaries[j].UpdatedAt
		}
		return summaries[i].ID < summaries[j].ID
	})

	return &character.ListCharactersOutput{Characters: summaries}, nil
}

// AdvanceCharacter sets experience and level. Level never goes down.
func (o *Orchestrator) AdvanceCharacter(
	ctx context.Context,
	input *character.AdvanceCharacterInput,
) (*character.AdvanceCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireCaller(input.UserID); err != nil {
		return nil, err
	}
	if err := validateAdvance(input); err != nil {
		return nil, err
	}

	char, err := o.loadOwned(ctx, input.UserID, input.CharacterID)
	if err != nil {
		return nil, err
	}

	if input.Level != nil && *input.Level < char.Level {
		return nil, errors.NewValidationBuilder().
			Fieldf("level", "cannot decrease from %d to %d", char.Level, *input.Level).
			Build()
	}

	updated := *char
	if input.Experience != nil {
		updated.Experience = *input.Experience
	}
	if input.Level != nil {
		updated.Level = *input.Level
	}
	updated.UpdatedAt = o.clock.Now().Unix()

	if _, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: &updated}); err != nil {
		return nil, errors.Wrap(err, "failed to update character")
	}

	sheet, err := o.buildSheet(ctx, &updated)
	if err != nil {
		return nil, err
	}

	if updated.Level != char.Level {
		slog.InfoContext(ctx, "character advanced",
			"character_id", updated.ID,
			"from_level", char.Level,
			"to_level", updated.Level)
	}

	return &character.AdvanceCharacterOutput{Sheet: sheet}, nil
}

// DeleteCharacter removes an owned character with everything stored for it
func (o *Orchestrator) DeleteCharacter(
	ctx context.Context,
	input *character.DeleteCharacterInput,
) (*character.DeleteCharacterOutput, error) {
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

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: char.ID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete character")
	}

	slog.InfoContext(ctx, "character deleted", "character_id", char.ID, "user_id", char.UserID)

	return &character.DeleteCharacterOutput{}, nil
}

func (o *Orchestrator) summarize(ctx context.Context, char *entities.Character) *character.CharacterSummary {
	summary := &character.CharacterSummary{
		ID:         char.ID,
		NameEs:     char.NameEs,
		NameEn:     char.NameEn,
		Race:       entities.LocalizedRef{ID: char.RaceID},
		Class:      entities.LocalizedRef{ID: char.ClassID},
		Level:      char.Level,
		Experience: char.Experience,
		CreatedAt:  char.CreatedAt,
		UpdatedAt:  char.UpdatedAt,
	}

	defs, err := o.engine.ResolveDefinitions(char)
	if err != nil {
		// A listing still shows characters whose race or class left the catalog.
		slog.WarnContext(ctx, "character references unknown definitions",
			"character_id", char.ID,
			"error", err.Error())
		return summary
	}

	summary.Race = entities.LocalizedRef{ID: defs.Race.ID, NameEs: defs.Race.NameEs, NameEn: defs.Race.NameEn}
	summary.Class = entities.LocalizedRef{ID: defs.Class.ID, NameEs: defs.Class.NameEs, NameEn: defs.Class.NameEn}
	return summary
}
