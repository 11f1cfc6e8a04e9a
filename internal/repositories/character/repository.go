// Package character provides the interface for character persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/arcanum-api/internal/repositories/character Repository

import (
	"context"

	"github.com/KirkDiggler/arcanum-api/internal/entities"
)

// Repository stores characters together with the ability scores, starting
// game state and skill proficiencies created alongside them.
type Repository interface {
	// Create stores a character and its companion rows in one transaction
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if character with same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if character doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetAbilityScores retrieves the ability scores of a character
	// Returns errors.NotFound if the row doesn't exist
	GetAbilityScores(ctx context.Context, input GetAbilityScoresInput) (*GetAbilityScoresOutput, error)

	// ListSkills returns the proficient skill keys of a character, sorted
	ListSkills(ctx context.Context, input ListSkillsInput) (*ListSkillsOutput, error)

	// Update replaces the character record
	// Returns errors.NotFound if character doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a character and every row keyed by it
	// Returns errors.NotFound if character doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByUserID retrieves all characters owned by a user
	// Returns errors.InvalidArgument for empty user IDs
	ListByUserID(ctx context.Context, input ListByUserIDInput) (*ListByUserIDOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	Character     *entities.Character
	AbilityScores entities.AbilityScores
	GameState     *entities.GameState
	SkillKeys     []string
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	Character *entities.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *entities.Character
}

// GetAbilityScoresInput defines the input for getting ability scores
type GetAbilityScoresInput struct {
	CharacterID string
}

// GetAbilityScoresOutput defines the output for getting ability scores
type GetAbilityScoresOutput struct {
	AbilityScores entities.AbilityScores
}

// ListSkillsInput defines the input for listing skill proficiencies
type ListSkillsInput struct {
	CharacterID string
}

// ListSkillsOutput defines the output for listing skill proficiencies
type ListSkillsOutput struct {
	SkillKeys []string
}

// UpdateInput defines the input for updating a character
type UpdateInput struct {
	Character *entities.Character
}

// UpdateOutput defines the output for updating a character
type UpdateOutput struct {
	Character *entities.Character
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}

// ListByUserIDInput defines the input for listing characters by user
type ListByUserIDInput struct {
	UserID string
}

// ListByUserIDOutput defines the output for listing characters by user
type ListByUserIDOutput struct {
	Characters []*entities.Character
}
