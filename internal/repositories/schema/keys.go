// Package schema defines the Redis key layout and the stored record shapes
// shared by the repositories. Entities never carry storage tags; each record
// type has explicit mappers to and from its entity.
package schema

import "strings"

const (
	userKeyPrefix       = "user:"
	userEmailKeyPrefix  = "user:email:"
	characterKeyPrefix  = "character:"
	userCharactersIndex = "character:user:"
)

// UserKey holds the JSON user record.
func UserKey(userID string) string {
	return userKeyPrefix + userID
}

// UserEmailKey maps a normalized email to a user id.
func UserEmailKey(email string) string {
	return userEmailKeyPrefix + strings.ToLower(email)
}

// CharacterKey holds the JSON character record.
func CharacterKey(characterID string) string {
	return characterKeyPrefix + characterID
}

// UserCharactersKey is the set of character ids owned by a user.
func UserCharactersKey(userID string) string {
	return userCharactersIndex + userID
}

// AbilitiesKey holds the JSON ability scores of a character.
func AbilitiesKey(characterID string) string {
	return characterKeyPrefix + characterID + ":abilities"
}

// GameStateKey is the game state hash of a character.
func GameStateKey(characterID string) string {
	return characterKeyPrefix + characterID + ":game_state"
}

// SkillsKey is the set of proficient skill keys.
func SkillsKey(characterID string) string {
	return characterKeyPrefix + characterID + ":skills"
}

// ConditionsKey is the set of active condition ids.
func ConditionsKey(characterID string) string {
	return characterKeyPrefix + characterID + ":conditions"
}

// InventoryKey is the inventory hash, item id to JSON item.
func InventoryKey(characterID string) string {
	return characterKeyPrefix + characterID + ":inventory"
}

// CharacterKeys lists every key owned by a character, record first.
func CharacterKeys(characterID string) []string {
	return []string{
		CharacterKey(characterID),
		AbilitiesKey(characterID),
		GameStateKey(characterID),
		SkillsKey(characterID),
		ConditionsKey(characterID),
		InventoryKey(characterID),
	}
}

// CharacterScanPattern matches every character key and its companions.
const CharacterScanPattern = characterKeyPrefix + "*"

// CharacterIDFromKey returns the id of a main character key. Companion keys
// and the per-user index are rejected.
func CharacterIDFromKey(key string) (string, bool) {
	id, ok := strings.CutPrefix(key, characterKeyPrefix)
	if !ok || id == "" || strings.Contains(id, ":") {
		return "", false
	}
	return id, true
}
