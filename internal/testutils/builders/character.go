// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/arcanum-api/internal/engine"
	"github.com/KirkDiggler/arcanum-api/internal/entities"
)

// CharacterBuilder provides a fluent interface for building test Character instances
type CharacterBuilder struct {
	character *entities.Character
}

// NewCharacterBuilder creates a new builder for a level 1 human fighter
func NewCharacterBuilder() *CharacterBuilder {
	return &CharacterBuilder{
		character: &entities.Character{
			ID:        "char-test-123",
			UserID:    "user-test-123",
			NameEs:    "Personaje de Prueba",
			RaceID:    "human",
			ClassID:   "fighter",
			Level:     1,
			CreatedAt: 1736937000,
			UpdatedAt: 1736937000,
		},
	}
}

// WithID sets the character ID
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.character.ID = id
	return b
}

// WithUserID sets the owning user
func (b *CharacterBuilder) WithUserID(userID string) *CharacterBuilder {
	b.character.UserID = userID
	return b
}

// WithNames sets the Spanish and English names
func (b *CharacterBuilder) WithNames(nameEs, nameEn string) *CharacterBuilder {
	b.character.NameEs = nameEs
	b.character.NameEn = nameEn
	return b
}

// WithRace sets the race and optionally subrace
func (b *CharacterBuilder) WithRace(raceID string, subraceID ...string) *CharacterBuilder {
	b.character.RaceID = raceID
	b.character.SubraceID = ""
	if len(subraceID) > 0 {
		b.character.SubraceID = subraceID[0]
	}
	return b
}

// WithClass sets the class and optionally subclass
func (b *CharacterBuilder) WithClass(classID string, subclassID ...string) *CharacterBuilder {
	b.character.ClassID = classID
	b.character.SubclassID = ""
	if len(subclassID) > 0 {
		b.character.SubclassID = subclassID[0]
	}
	return b
}

// WithBackground sets the background
func (b *CharacterBuilder) WithBackground(backgroundID string) *CharacterBuilder {
	b.character.BackgroundID = backgroundID
	return b
}

// WithAlignment sets the alignment
func (b *CharacterBuilder) WithAlignment(alignmentID string) *CharacterBuilder {
	b.character.AlignmentID = alignmentID
	return b
}

// WithLevel sets level and experience
func (b *CharacterBuilder) WithLevel(level, experience int32) *CharacterBuilder {
	b.character.Level = level
	b.character.Experience = experience
	return b
}

// WithUpdatedAt sets the update timestamp
func (b *CharacterBuilder) WithUpdatedAt(ts int64) *CharacterBuilder {
	b.character.UpdatedAt = ts
	return b
}

// Build returns a copy of the built character
func (b *CharacterBuilder) Build() *entities.Character {
	c := *b.character
	return &c
}

// CreationRequestBuilder builds engine.CreationRequest values
type CreationRequestBuilder struct {
	request *engine.CreationRequest
}

// NewCreationRequestBuilder starts from a valid human fighter request
func NewCreationRequestBuilder() *CreationRequestBuilder {
	return &CreationRequestBuilder{
		request: &engine.CreationRequest{
			NameEs:  "Personaje de Prueba",
			RaceID:  "human",
			ClassID: "fighter",
		},
	}
}

// WithName sets the Spanish name
func (b *CreationRequestBuilder) WithName(nameEs string) *CreationRequestBuilder {
	b.request.NameEs = nameEs
	return b
}

// WithRace sets race and subrace
func (b *CreationRequestBuilder) WithRace(raceID, subraceID string) *CreationRequestBuilder {
	b.request.RaceID = raceID
	b.request.SubraceID = subraceID
	return b
}

// WithClass sets class and subclass
func (b *CreationRequestBuilder) WithClass(classID, subclassID string) *CreationRequestBuilder {
	b.request.ClassID = classID
	b.request.SubclassID = subclassID
	return b
}

// WithBackground sets the background
func (b *CreationRequestBuilder) WithBackground(backgroundID string) *CreationRequestBuilder {
	b.request.BackgroundID = backgroundID
	return b
}

// WithSkills sets the requested skill proficiencies
func (b *CreationRequestBuilder) WithSkills(keys ...string) *CreationRequestBuilder {
	b.request.SkillProficiencies = keys
	return b
}

// WithAbilityScore sets one starting score
func (b *CreationRequestBuilder) WithAbilityScore(a entities.Ability, score int32) *CreationRequestBuilder {
	v := score
	switch a {
	case entities.AbilityStrength:
		b.request.AbilityScores.Strength = &v
	case entities.AbilityDexterity:
		b.request.AbilityScores.Dexterity = &v
	case entities.AbilityConstitution:
		b.request.AbilityScores.Constitution = &v
	case entities.AbilityIntelligence:
		b.request.AbilityScores.Intelligence = &v
	case entities.AbilityWisdom:
		b.request.AbilityScores.Wisdom = &v
	case entities.AbilityCharisma:
		b.request.AbilityScores.Charisma = &v
	}
	return b
}

// Build returns a copy of the built request
func (b *CreationRequestBuilder) Build() *engine.CreationRequest {
	r := *b.request
	return &r
}
