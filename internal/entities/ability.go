package entities

// Ability names one of the six ability scores.
type Ability string

// Abilities
const (
	AbilityStrength     Ability = "strength"
	AbilityDexterity    Ability = "dexterity"
	AbilityConstitution Ability = "constitution"
	AbilityIntelligence Ability = "intelligence"
	AbilityWisdom       Ability = "wisdom"
	AbilityCharisma     Ability = "charisma"
)

// Abilities lists the six abilities in sheet order.
var Abilities = []Ability{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

// Valid reports whether a is one of the six abilities.
func (a Ability) Valid() bool {
	switch a {
	case AbilityStrength, AbilityDexterity, AbilityConstitution,
		AbilityIntelligence, AbilityWisdom, AbilityCharisma:
		return true
	}
	return false
}

// AbilityScores holds the six core ability scores
type AbilityScores struct {
	Strength     int32
	Dexterity    int32
	Constitution int32
	Intelligence int32
	Wisdom       int32
	Charisma     int32
}

// Get returns the score for an ability. Unknown abilities read as 0.
func (s AbilityScores) Get(a Ability) int32 {
	switch a {
	case AbilityStrength:
		return s.Strength
	case AbilityDexterity:
		return s.Dexterity
	case AbilityConstitution:
		return s.Constitution
	case AbilityIntelligence:
		return s.Intelligence
	case AbilityWisdom:
		return s.Wisdom
	case AbilityCharisma:
		return s.Charisma
	}
	return 0
}

// Add increases the score for an ability by n.
func (s *AbilityScores) Add(a Ability, n int32) {
	switch a {
	case AbilityStrength:
		s.Strength += n
	case AbilityDexterity:
		s.Dexterity += n
	case AbilityConstitution:
		s.Constitution += n
	case AbilityIntelligence:
		s.Intelligence += n
	case AbilityWisdom:
		s.Wisdom += n
	case AbilityCharisma:
		s.Charisma += n
	}
}

// AbilityModifiers mirrors AbilityScores for the derived modifiers.
type AbilityModifiers = AbilityScores
