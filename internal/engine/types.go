package engine

import (
	"github.com/KirkDiggler/arcanum-api/internal/catalog"
	"github.com/KirkDiggler/arcanum-api/internal/entities"
)

// Validation error codes reported by ValidateCreation.
const (
	CodeRequired           = "REQUIRED"
	CodeUnknownRace        = "UNKNOWN_RACE"
	CodeUnknownClass       = "UNKNOWN_CLASS"
	CodeSubraceMismatch    = "SUBRACE_MISMATCH"
	CodeSubclassMismatch   = "SUBCLASS_MISMATCH"
	CodeUnknownBackground  = "UNKNOWN_BACKGROUND"
	CodeUnknownAlignment   = "UNKNOWN_ALIGNMENT"
	CodeUnknownSkill       = "UNKNOWN_SKILL"
	CodeTooManyClassSkills = "TOO_MANY_CLASS_SKILLS"
	CodeSubclassLevelGate  = "SUBCLASS_LEVEL_GATE"
)

// ComputeDerivedStatsInput contains what the calculator needs
type ComputeDerivedStatsInput struct {
	AbilityScores      entities.AbilityScores
	Level              int32
	Class              catalog.Class
	SkillProficiencies []string
}

// ComputeDerivedStatsOutput contains derived numbers for a sheet
type ComputeDerivedStatsOutput struct {
	Modifiers         entities.AbilityModifiers
	ProficiencyBonus  int32
	SavingThrows      []entities.SheetEntry
	Skills            []entities.SheetEntry
	PassivePerception int32
	ArmorClass        int32
	Initiative        int32
}

// StartingAbilityScores are the requested base scores. Nil means not given.
type StartingAbilityScores struct {
	Strength     *int32
	Dexterity    *int32
	Constitution *int32
	Intelligence *int32
	Wisdom       *int32
	Charisma     *int32
}

// Get returns the requested score for an ability, or nil.
func (s StartingAbilityScores) Get(a entities.Ability) *int32 {
	switch a {
	case entities.AbilityStrength:
		return s.Strength
	case entities.AbilityDexterity:
		return s.Dexterity
	case entities.AbilityConstitution:
		return s.Constitution
	case entities.AbilityIntelligence:
		return s.Intelligence
	case entities.AbilityWisdom:
		return s.Wisdom
	case entities.AbilityCharisma:
		return s.Charisma
	}
	return nil
}

// CreationRequest is a request to create a character
type CreationRequest struct {
	NameEs             string
	NameEn             string
	RaceID             string
	SubraceID          string
	ClassID            string
	SubclassID         string
	BackgroundID       string
	AlignmentID        string
	SkillProficiencies []string
	AbilityScores      StartingAbilityScores
	Personality        entities.Personality
}

// ValidateCreationInput contains the request to validate
type ValidateCreationInput struct {
	Request *CreationRequest
}

// ValidateCreationOutput contains validation results and, when valid, the
// records to persist.
type ValidateCreationOutput struct {
	IsValid  bool
	Errors   []ValidationError
	Warnings []ValidationWarning
	Result   *CreationResult
}

// CreationResult holds the starting records of a new character. ID, UserID
// and timestamps are left for the caller to stamp.
type CreationResult struct {
	Character     entities.Character
	AbilityScores entities.AbilityScores
	GameState     entities.GameState
	SkillKeys     []string
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
	Code    string
}

// ValidationWarning represents a validation warning
type ValidationWarning struct {
	Field   string
	Message string
	Code    string
}

// Definitions are the catalog entries a character points at. Race and Class
// are always set; the rest are nil when absent.
type Definitions struct {
	Race       *catalog.Race
	Subrace    *catalog.Subrace
	Class      *catalog.Class
	Subclass   *catalog.Subclass
	Background *catalog.Background
	Alignment  *catalog.Alignment
}

// AssembleSheetInput contains everything a sheet is built from
type AssembleSheetInput struct {
	Character     *entities.Character
	AbilityScores entities.AbilityScores
	GameState     entities.GameState
	SkillKeys     []string
	Definitions   *Definitions
	ConditionIDs  []string
	Inventory     []*entities.InventoryItem
}
