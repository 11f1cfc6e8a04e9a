// Package engine defines the sheet derivation rules: ability math, spell slot
// progression, creation validation and sheet assembly.
//
// Every operation is pure. Given the same inputs and catalog it returns the
// same result, never blocks and touches no storage, so implementations are
// safe to share between goroutines.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/arcanum-api/internal/engine Engine

import "github.com/KirkDiggler/arcanum-api/internal/entities"

// Engine provides game mechanics and rules calculations
type Engine interface {
	// ComputeDerivedStats derives modifiers, proficiency, saves and skills.
	ComputeDerivedStats(input *ComputeDerivedStatsInput) *ComputeDerivedStatsOutput

	// SpellSlotsTotal returns the total slots per spell level for a class at
	// a level. Levels outside [1,20] are clamped.
	SpellSlotsTotal(classID string, level int32) entities.SpellSlots

	// ValidateCreation checks a creation request against the catalog and
	// builds the starting records. Rule violations are reported in the
	// output; the error is reserved for a missing request.
	ValidateCreation(input *ValidateCreationInput) (*ValidateCreationOutput, error)

	// ResolveDefinitions looks up the catalog definitions a character
	// references. Unknown optional ids resolve to nil.
	ResolveDefinitions(character *entities.Character) (*Definitions, error)

	// AssembleSheet projects stored state and definitions into a sheet.
	AssembleSheet(input *AssembleSheetInput) (*entities.CharacterSheet, error)

	// Utility methods
	AbilityModifier(score int32) int32
	ProficiencyBonus(level int32) int32
}
