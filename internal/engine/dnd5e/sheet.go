package dnd5e

import (
	"fmt"

	"github.com/KirkDiggler/arcanum-api/internal/engine"
	"github.com/KirkDiggler/arcanum-api/internal/entities"
	"github.com/KirkDiggler/arcanum-api/internal/errors"
)

// ResolveDefinitions implements engine.Engine. A character whose race or
// class is no longer in the catalog is reported as data loss.
func (e *Engine) ResolveDefinitions(character *entities.Character) (*engine.Definitions, error) {
	if character == nil {
		return nil, errors.Internal("character is required")
	}

	race, ok := e.catalog.Race(character.RaceID)
	if !ok {
		return nil, errors.DataLossf("character %s references unknown race %q", character.ID, character.RaceID)
	}
	class, ok := e.catalog.Class(character.ClassID)
	if !ok {
		return nil, errors.DataLossf("character %s references unknown class %q", character.ID, character.ClassID)
	}

	defs := &engine.Definitions{Race: &race, Class: &class}
	if sr, ok := e.catalog.Subrace(race.ID, character.SubraceID); ok {
		defs.Subrace = &sr
	}
	if sc, ok := e.catalog.Subclass(class.ID, character.SubclassID); ok {
		defs.Subclass = &sc
	}
	if bg, ok := e.catalog.Background(character.BackgroundID); ok {
		defs.Background = &bg
	}
	if al, ok := e.catalog.Alignment(character.AlignmentID); ok {
		defs.Alignment = &al
	}

	return defs, nil
}

// AssembleSheet implements engine.Engine
func (e *Engine) AssembleSheet(input *engine.AssembleSheetInput) (*entities.CharacterSheet, error) {
	switch {
	case input == nil:
		return nil, errors.Internal("assemble input is required")
	case input.Character == nil:
		return nil, errors.Internal("character is required")
	case input.Definitions == nil || input.Definitions.Race == nil || input.Definitions.Class == nil:
		return nil, errors.Internal("race and class definitions are required")
	}

	char := input.Character
	defs := input.Definitions
	race := defs.Race
	class := defs.Class

	derived := e.ComputeDerivedStats(&engine.ComputeDerivedStatsInput{
		AbilityScores:      input.AbilityScores,
		Level:              char.Level,
		Class:              *class,
		SkillProficiencies: input.SkillKeys,
	})

	sheet := &entities.CharacterSheet{
		ID:     char.ID,
		UserID: char.UserID,
		NameEs: char.NameEs,
		NameEn: char.NameEn,

		Race:  entities.LocalizedRef{ID: race.ID, NameEs: race.NameEs, NameEn: race.NameEn},
		Class: entities.LocalizedRef{ID: class.ID, NameEs: class.NameEs, NameEn: class.NameEn},

		Level:       char.Level,
		Experience:  char.Experience,
		Personality: char.Personality,

		Abilities:         input.AbilityScores,
		AbilityModifiers:  derived.Modifiers,
		ProficiencyBonus:  derived.ProficiencyBonus,
		SavingThrows:      derived.SavingThrows,
		Skills:            derived.Skills,
		PassivePerception: derived.PassivePerception,
		ArmorClass:        derived.ArmorClass,
		Initiative:        derived.Initiative,
		Speed:             race.Speed,

		Health: entities.Health{
			Current: input.GameState.CurrentHealth,
			Maximum: input.GameState.MaximumHealth,
		},
		HitDice:      fmt.Sprintf("1d%d", class.HitDie),
		HitDiceTotal: char.Level,

		Gold:            input.GameState.CurrentGold,
		Inspiration:     input.GameState.InspirationPoints,
		SpellSlots:      input.GameState.SpellSlotsUsed,
		SpellSlotsTotal: e.SpellSlotsTotal(class.ID, char.Level),

		ActiveConditions: append([]string{}, input.ConditionIDs...),
		Inventory:        make([]entities.SheetItem, 0, len(input.Inventory)),

		CreatedAt: char.CreatedAt,
		UpdatedAt: char.UpdatedAt,
	}

	if defs.Subrace != nil {
		sheet.Subrace = &entities.LocalizedRef{ID: defs.Subrace.ID, NameEs: defs.Subrace.NameEs, NameEn: defs.Subrace.NameEn}
	}
	if defs.Subclass != nil {
		sheet.Subclass = &entities.LocalizedRef{ID: defs.Subclass.ID, NameEs: defs.Subclass.NameEs, NameEn: defs.Subclass.NameEn}
	}
	if defs.Background != nil {
		sheet.Background = &entities.LocalizedRef{ID: defs.Background.ID, NameEs: defs.Background.NameEs, NameEn: defs.Background.NameEn}
	}
	if defs.Alignment != nil {
		sheet.Alignment = &entities.LocalizedRef{ID: defs.Alignment.ID, NameEs: defs.Alignment.NameEs, NameEn: defs.Alignment.NameEn}
	}

	if input.GameState.ConcentratingOn != "" {
		target := input.GameState.ConcentratingOn
		sheet.ConcentratingOn = &target
	}

	for _, item := range input.Inventory {
		if item == nil {
			continue
		}
		sheet.Inventory = append(sheet.Inventory, entities.SheetItem{
			ID:       item.ID,
			Name:     item.Name,
			Quantity: item.Quantity,
		})
	}

	// Race, subrace, background, subclass. Repeats are kept.
	traits := append([]string{}, race.Traits...)
	if defs.Subrace != nil {
		traits = append(traits, defs.Subrace.Traits...)
	}
	if defs.Background != nil && defs.Background.Feature != "" {
		traits = append(traits, defs.Background.Feature)
	}
	if defs.Subclass != nil {
		traits = append(traits, defs.Subclass.Features...)
	}
	sheet.TraitsAndFeatures = traits

	return sheet, nil
}
