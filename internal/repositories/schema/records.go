package schema

import (
	"encoding/json"
	"strconv"

	"github.com/KirkDiggler/arcanum-api/internal/entities"
	"github.com/KirkDiggler/arcanum-api/internal/errors"
)

// CharacterRecord is the stored form of entities.Character.
type CharacterRecord struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	NameEs       string `json:"name_es"`
	NameEn       string `json:"name_en,omitempty"`
	RaceID       string `json:"race_id"`
	SubraceID    string `json:"subrace_id,omitempty"`
	ClassID      string `json:"class_id"`
	SubclassID   string `json:"subclass_id,omitempty"`
	BackgroundID string `json:"background_id,omitempty"`
	AlignmentID  string `json:"alignment_id,omitempty"`
	Level        int32  `json:"level"`
	Experience   int32  `json:"experience"`
	Ideals       string `json:"ideals,omitempty"`
	Bonds        string `json:"bonds,omitempty"`
	Flaws        string `json:"flaws,omitempty"`
	CreatedAt    int64  `json:"created_at"`
	UpdatedAt    int64  `json:"updated_at"`
}

// ToCharacterRecord maps a character to its stored form.
func ToCharacterRecord(c *entities.Character) CharacterRecord {
	return CharacterRecord{
		ID:           c.ID,
		UserID:       c.UserID,
		NameEs:       c.NameEs,
		NameEn:       c.NameEn,
		RaceID:       c.RaceID,
		SubraceID:    c.SubraceID,
		ClassID:      c.ClassID,
		SubclassID:   c.SubclassID,
		BackgroundID: c.BackgroundID,
		AlignmentID:  c.AlignmentID,
		Level:        c.Level,
		Experience:   c.Experience,
		Ideals:       c.Personality.Ideals,
		Bonds:        c.Personality.Bonds,
		Flaws:        c.Personality.Flaws,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// Entity maps the record back to a character.
func (r CharacterRecord) Entity() *entities.Character {
	return &entities.Character{
		ID:           r.ID,
		UserID:       r.UserID,
		NameEs:       r.NameEs,
		NameEn:       r.NameEn,
		RaceID:       r.RaceID,
		SubraceID:    r.SubraceID,
		ClassID:      r.ClassID,
		SubclassID:   r.SubclassID,
		BackgroundID: r.BackgroundID,
		AlignmentID:  r.AlignmentID,
		Level:        r.Level,
		Experience:   r.Experience,
		Personality: entities.Personality{
			Ideals: r.Ideals,
			Bonds:  r.Bonds,
			Flaws:  r.Flaws,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// AbilityScoresRecord is the stored form of entities.AbilityScores.
type AbilityScoresRecord struct {
	Strength     int32 `json:"strength"`
	Dexterity    int32 `json:"dexterity"`
	Constitution int32 `json:"constitution"`
	Intelligence int32 `json:"intelligence"`
	Wisdom       int32 `json:"wisdom"`
	Charisma     int32 `json:"charisma"`
}

// ToAbilityScoresRecord maps ability scores to their stored form.
func ToAbilityScoresRecord(s entities.AbilityScores) AbilityScoresRecord {
	return AbilityScoresRecord(s)
}

// Entity maps the record back to ability scores.
func (r AbilityScoresRecord) Entity() entities.AbilityScores {
	return entities.AbilityScores(r)
}

// Game state hash fields.
const (
	FieldCurrentHealth     = "current_health"
	FieldMaximumHealth     = "maximum_health"
	FieldCurrentGold       = "current_gold"
	FieldInspirationPoints = "inspiration_points"
	FieldConcentratingOn   = "concentrating_on"
	FieldUpdatedAt         = "updated_at"
)

// SpellSlotField is the hash field of used slots at a spell level (1-9).
func SpellSlotField(level int) string {
	return "spell_slots_level_" + strconv.Itoa(level)
}

// GameStateRecord is the game state hash. Each field is written on its own
// so partial updates only touch what they name.
type GameStateRecord struct {
	CurrentHealth     int32  `redis:"current_health"`
	MaximumHealth     int32  `redis:"maximum_health"`
	CurrentGold       int32  `redis:"current_gold"`
	InspirationPoints int32  `redis:"inspiration_points"`
	SpellSlotsLevel1  int32  `redis:"spell_slots_level_1"`
	SpellSlotsLevel2  int32  `redis:"spell_slots_level_2"`
	SpellSlotsLevel3  int32  `redis:"spell_slots_level_3"`
	SpellSlotsLevel4  int32  `redis:"spell_slots_level_4"`
	SpellSlotsLevel5  int32  `redis:"spell_slots_level_5"`
	SpellSlotsLevel6  int32  `redis:"spell_slots_level_6"`
	SpellSlotsLevel7  int32  `redis:"spell_slots_level_7"`
	SpellSlotsLevel8  int32  `redis:"spell_slots_level_8"`
	SpellSlotsLevel9  int32  `redis:"spell_slots_level_9"`
	ConcentratingOn   string `redis:"concentrating_on"`
	UpdatedAt         int64  `redis:"updated_at"`
}

// ToGameStateRecord maps a game state to its hash form.
func ToGameStateRecord(s *entities.GameState) GameStateRecord {
	slots := s.SpellSlotsUsed
	return GameStateRecord{
		CurrentHealth:     s.CurrentHealth,
		MaximumHealth:     s.MaximumHealth,
		CurrentGold:       s.CurrentGold,
		InspirationPoints: s.InspirationPoints,
		SpellSlotsLevel1:  slots.Level1,
		SpellSlotsLevel2:  slots.Level2,
		SpellSlotsLevel3:  slots.Level3,
		SpellSlotsLevel4:  slots.Level4,
		SpellSlotsLevel5:  slots.Level5,
		SpellSlotsLevel6:  slots.Level6,
		SpellSlotsLevel7:  slots.Level7,
		SpellSlotsLevel8:  slots.Level8,
		SpellSlotsLevel9:  slots.Level9,
		ConcentratingOn:   s.ConcentratingOn,
		UpdatedAt:         s.UpdatedAt,
	}
}

// Entity maps the hash back to a game state.
func (r GameStateRecord) Entity(characterID string) *entities.GameState {
	return &entities.GameState{
		CharacterID:       characterID,
		CurrentHealth:     r.CurrentHealth,
		MaximumHealth:     r.MaximumHealth,
		CurrentGold:       r.CurrentGold,
		InspirationPoints: r.InspirationPoints,
		SpellSlotsUsed: entities.SpellSlots{
			Level1: r.SpellSlotsLevel1,
			Level2: r.SpellSlotsLevel2,
			Level3: r.SpellSlotsLevel3,
			Level4: r.SpellSlotsLevel4,
			Level5: r.SpellSlotsLevel5,
			Level6: r.SpellSlotsLevel6,
			Level7: r.SpellSlotsLevel7,
			Level8: r.SpellSlotsLevel8,
			Level9: r.SpellSlotsLevel9,
		},
		ConcentratingOn: r.ConcentratingOn,
		UpdatedAt:       r.UpdatedAt,
	}
}

// Values flattens the record into ordered HSET field/value pairs.
func (r GameStateRecord) Values() []interface{} {
	values := []interface{}{
		FieldCurrentHealth, r.CurrentHealth,
		FieldMaximumHealth, r.MaximumHealth,
		FieldCurrentGold, r.CurrentGold,
		FieldInspirationPoints, r.InspirationPoints,
	}
	slots := []int32{
		r.SpellSlotsLevel1, r.SpellSlotsLevel2, r.SpellSlotsLevel3,
		r.SpellSlotsLevel4, r.SpellSlotsLevel5, r.SpellSlotsLevel6,
		r.SpellSlotsLevel7, r.SpellSlotsLevel8, r.SpellSlotsLevel9,
	}
	for i, used := range slots {
		values = append(values, SpellSlotField(i+1), used)
	}
	return append(values,
		FieldConcentratingOn, r.ConcentratingOn,
		FieldUpdatedAt, r.UpdatedAt,
	)
}

// GameStatePatchValues returns ordered HSET field/value pairs for the fields
// a patch names.
func GameStatePatchValues(p *entities.GameStatePatch) []interface{} {
	var values []interface{}
	if p == nil {
		return values
	}
	if p.CurrentHealth != nil {
		values = append(values, FieldCurrentHealth, *p.CurrentHealth)
	}
	if p.MaximumHealth != nil {
		values = append(values, FieldMaximumHealth, *p.MaximumHealth)
	}
	if p.CurrentGold != nil {
		values = append(values, FieldCurrentGold, *p.CurrentGold)
	}
	if p.InspirationPoints != nil {
		values = append(values, FieldInspirationPoints, *p.InspirationPoints)
	}
	for i, used := range p.SpellSlotsUsed {
		if used != nil {
			values = append(values, SpellSlotField(i+1), *used)
		}
	}
	if p.ConcentratingOn != nil {
		values = append(values, FieldConcentratingOn, *p.ConcentratingOn)
	}
	return values
}

// InventoryItemRecord is the stored form of an inventory item.
type InventoryItemRecord struct {
	ID          string `json:"id"`
	CharacterID string `json:"character_id"`
	Name        string `json:"name"`
	Quantity    int32  `json:"quantity"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

// ToInventoryItemRecord maps an item to its stored form.
func ToInventoryItemRecord(i *entities.InventoryItem) InventoryItemRecord {
	return InventoryItemRecord(*i)
}

// Entity maps the record back to an item.
func (r InventoryItemRecord) Entity() *entities.InventoryItem {
	item := entities.InventoryItem(r)
	return &item
}

// UserRecord is the stored form of a user.
type UserRecord struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	CreatedAt    int64  `json:"created_at"`
	UpdatedAt    int64  `json:"updated_at"`
}

// ToUserRecord maps a user to its stored form.
func ToUserRecord(u *entities.User) UserRecord {
	return UserRecord(*u)
}

// Entity maps the record back to a user.
func (r UserRecord) Entity() *entities.User {
	user := entities.User(r)
	return &user
}

// Marshal encodes a JSON record.
func Marshal(record interface{}) ([]byte, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal record")
	}
	return data, nil
}

// Unmarshal decodes a JSON record. Corrupt data is reported as data loss.
func Unmarshal(data []byte, record interface{}) error {
	if err := json.Unmarshal(data, record); err != nil {
		return errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal record")
	}
	return nil
}
