package testutils

import (
	"github.com/KirkDiggler/arcanum-api/internal/entities"
)

// Fixture defaults.
const (
	TestCharacterName = "Thorin Escudo de Roble"
	TestUserID        = "user-test-001"
	TestCharacterID   = "char-test-001"
	TestTimestamp     = int64(1736937000)
)

// CreateTestCharacter creates a level 1 hill dwarf cleric owned by userID
func CreateTestCharacter(id, userID string) *entities.Character {
	return &entities.Character{
		ID:           id,
		UserID:       userID,
		NameEs:       TestCharacterName,
		NameEn:       "Thorin Oakenshield",
		RaceID:       "dwarf",
		SubraceID:    "hill-dwarf",
		ClassID:      "cleric",
		SubclassID:   "life-domain",
		BackgroundID: "acolyte",
		AlignmentID:  "lawful-good",
		Level:        1,
		Personality: entities.Personality{
			Ideals: "Tradición",
			Bonds:  "Mi clan",
			Flaws:  "Terco",
		},
		CreatedAt: TestTimestamp,
		UpdatedAt: TestTimestamp,
	}
}

// CreateTestAbilityScores returns the scores of the test character after
// racial bonuses.
func CreateTestAbilityScores() entities.AbilityScores {
	return entities.AbilityScores{
		Strength:     14,
		Dexterity:    10,
		Constitution: 16,
		Intelligence: 10,
		Wisdom:       16,
		Charisma:     8,
	}
}

// CreateTestGameState creates a starting game state for a character
func CreateTestGameState(characterID string) *entities.GameState {
	return &entities.GameState{
		CharacterID:   characterID,
		CurrentHealth: 11,
		MaximumHealth: 11,
		UpdatedAt:     TestTimestamp,
	}
}

// CreateTestInventoryItem creates an inventory item for a character
func CreateTestInventoryItem(id, characterID, name string, quantity int32) *entities.InventoryItem {
	return &entities.InventoryItem{
		ID:          id,
		CharacterID: characterID,
		Name:        name,
		Quantity:    quantity,
		CreatedAt:   TestTimestamp,
		UpdatedAt:   TestTimestamp,
	}
}

// CreateTestUser creates a user with a placeholder password hash
func CreateTestUser(id, email string) *entities.User {
	return &entities.User{
		ID:           id,
		Username:     "thorin",
		Email:        email,
		PasswordHash: "$2a$04$placeholderhashplaceholderhashplaceholderhashpl",
		CreatedAt:    TestTimestamp,
		UpdatedAt:    TestTimestamp,
	}
}
