package catalog

import (
	"regexp"
	"strings"

	"github.com/KirkDiggler/arcanum-api/internal/entities"
)

// SkillCount is the size of the fixed skill list.
const SkillCount = 18

var skills = [SkillCount]Skill{
	{Key: "acrobatics", Ability: entities.AbilityDexterity, NameEs: "Acrobacias", NameEn: "Acrobatics"},
	{Key: "animal-handling", Ability: entities.AbilityWisdom, NameEs: "Trato con Animales", NameEn: "Animal Handling"},
	{Key: "arcana", Ability: entities.AbilityIntelligence, NameEs: "Arcano", NameEn: "Arcana"},
	{Key: "athletics", Ability: entities.AbilityStrength, NameEs: "Atletismo", NameEn: "Athletics"},
	{Key: "deception", Ability: entities.AbilityCharisma, NameEs: "Engaño", NameEn: "Deception"},
	{Key: "history", Ability: entities.AbilityIntelligence, NameEs: "Historia", NameEn: "History"},
	{Key: "insight", Ability: entities.AbilityWisdom, NameEs: "Perspicacia", NameEn: "Insight"},
	{Key: "intimidation", Ability: entities.AbilityCharisma, NameEs: "Intimidación", NameEn: "Intimidation"},
	{Key: "investigation", Ability: entities.AbilityIntelligence, NameEs: "Investigación", NameEn: "Investigation"},
	{Key: "medicine", Ability: entities.AbilityWisdom, NameEs: "Medicina", NameEn: "Medicine"},
	{Key: "nature", Ability: entities.AbilityIntelligence, NameEs: "Naturaleza", NameEn: "Nature"},
	{Key: "perception", Ability: entities.AbilityWisdom, NameEs: "Percepción", NameEn: "Perception"},
	{Key: "performance", Ability: entities.AbilityCharisma, NameEs: "Interpretación", NameEn: "Performance"},
	{Key: "persuasion", Ability: entities.AbilityCharisma, NameEs: "Persuasión", NameEn: "Persuasion"},
	{Key: "religion", Ability: entities.AbilityIntelligence, NameEs: "Religión", NameEn: "Religion"},
	{Key: "sleight-of-hand", Ability: entities.AbilityDexterity, NameEs: "Juego de Manos", NameEn: "Sleight of Hand"},
	{Key: "stealth", Ability: entities.AbilityDexterity, NameEs: "Sigilo", NameEn: "Stealth"},
	{Key: "survival", Ability: entities.AbilityWisdom, NameEs: "Supervivencia", NameEn: "Survival"},
}

// backgroundSkillNames maps the English skill names used by background data
// to skill keys, including known misspellings.
var backgroundSkillNames = map[string]string{
	"Acrobatics":      "acrobatics",
	"Animal Handling": "animal-handling",
	"Arcana":          "arcana",
	"Athletics":       "athletics",
	"Deception":       "deception",
	"History":         "history",
	"Insight":         "insight",
	"Intimidation":    "intimidation",
	"Investigation":   "investigation",
	"Medicine":        "medicine",
	"Nature":          "nature",
	"Perception":      "perception",
	"Performance":     "performance",
	"Persuasion":      "persuasion",
	"Persuation":      "persuasion",
	"Religion":        "religion",
	"Sleight of Hand": "sleight-of-hand",
	"Stealth":         "stealth",
	"Survival":        "survival",
}

var (
	whitespacePattern = regexp.MustCompile(`\s+`)
	slugStripPattern  = regexp.MustCompile(`[^a-z0-9-]`)
)

// SkillKeyForBackgroundName returns the skill key for a background skill
// name. Names missing from the correction table are slugified: lowercased,
// whitespace runs turned into "-", anything outside [a-z0-9-] dropped.
func SkillKeyForBackgroundName(name string) string {
	if key, ok := backgroundSkillNames[name]; ok {
		return key
	}
	slug := whitespacePattern.ReplaceAllString(strings.ToLower(name), "-")
	return slugStripPattern.ReplaceAllString(slug, "")
}

// casterTypes is the fixed spell slot progression partition. Classes not
// listed are non-casters.
var casterTypes = map[string]CasterType{
	"bard":      CasterFull,
	"cleric":    CasterFull,
	"druid":     CasterFull,
	"sorcerer":  CasterFull,
	"wizard":    CasterFull,
	"artificer": CasterHalf,
	"paladin":   CasterHalf,
	"ranger":    CasterHalf,
}

var abilityNames = map[entities.Ability][2]string{
	entities.AbilityStrength:     {"Fuerza", "Strength"},
	entities.AbilityDexterity:    {"Destreza", "Dexterity"},
	entities.AbilityConstitution: {"Constitución", "Constitution"},
	entities.AbilityIntelligence: {"Inteligencia", "Intelligence"},
	entities.AbilityWisdom:       {"Sabiduría", "Wisdom"},
	entities.AbilityCharisma:     {"Carisma", "Charisma"},
}
