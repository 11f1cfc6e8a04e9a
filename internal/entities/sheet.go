package entities

// CharacterSheet is the display projection of a character. It is computed on
// read and never stored.
type CharacterSheet struct {
	ID     string
	UserID string
	NameEs string
	NameEn string

	Race       LocalizedRef
	Subrace    *LocalizedRef
	Class      LocalizedRef
	Subclass   *LocalizedRef
	Background *LocalizedRef
	Alignment  *LocalizedRef

	Level       int32
	Experience  int32
	Personality Personality

	Abilities         AbilityScores
	AbilityModifiers  AbilityModifiers
	ProficiencyBonus  int32
	SavingThrows      []SheetEntry
	Skills            []SheetEntry
	PassivePerception int32
	ArmorClass        int32
	Initiative        int32
	Speed             int32

	Health       Health
	HitDice      string
	HitDiceTotal int32

	Gold            int32
	Inspiration     int32
	SpellSlots      SpellSlots
	SpellSlotsTotal SpellSlots
	// ConcentratingOn is nil when the character is not concentrating.
	ConcentratingOn  *string
	ActiveConditions []string
	Inventory        []SheetItem

	TraitsAndFeatures []string

	CreatedAt int64
	UpdatedAt int64
}

// LocalizedRef is a catalog id with its display names.
type LocalizedRef struct {
	ID     string
	NameEs string
	NameEn string
}

// SheetEntry is one saving throw or skill line.
type SheetEntry struct {
	Key        string
	Ability    Ability
	NameEs     string
	NameEn     string
	Modifier   int32
	Proficient bool
}

// Health is current and maximum hit points.
type Health struct {
	Current int32
	Maximum int32
}

// SheetItem is an inventory line on the sheet.
type SheetItem struct {
	ID       string
	Name     string
	Quantity int32
}
