package entities

// MinLevel and MaxLevel bound character level.
const (
	MinLevel int32 = 1
	MaxLevel int32 = 20
)

// Character is the persisted base record of a player character. Ability
// scores, game state, skills, conditions and inventory are stored beside it
// under the same ID.
type Character struct {
	ID     string
	UserID string

	NameEs string
	NameEn string

	RaceID       string
	SubraceID    string
	ClassID      string
	SubclassID   string
	BackgroundID string
	AlignmentID  string

	Level      int32
	Experience int32

	Personality Personality

	CreatedAt int64
	UpdatedAt int64
}

// Personality is freeform roleplay text.
type Personality struct {
	Ideals string
	Bonds  string
	Flaws  string
}

// OwnedBy reports whether userID owns the character.
func (c *Character) OwnedBy(userID string) bool {
	return c != nil && userID != "" && c.UserID == userID
}
