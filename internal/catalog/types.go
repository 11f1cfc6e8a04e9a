package catalog

import "github.com/KirkDiggler/arcanum-api/internal/entities"

// Race is a playable race. Ability bonuses are sparse; a missing ability is 0.
type Race struct {
	ID             string                     `yaml:"id"`
	NameEs         string                     `yaml:"name_es"`
	NameEn         string                     `yaml:"name_en"`
	DescriptionEs  string                     `yaml:"description_es"`
	DescriptionEn  string                     `yaml:"description_en"`
	AbilityBonuses map[entities.Ability]int32 `yaml:"ability_bonuses"`
	Speed          int32                      `yaml:"speed"`
	Size           string                     `yaml:"size"`
	Languages      []string                   `yaml:"languages"`
	Traits         []string                   `yaml:"traits"`
	Subraces       []Subrace                  `yaml:"subraces"`
}

// Subrace adds its bonuses and traits on top of the parent race.
type Subrace struct {
	ID             string                     `yaml:"id"`
	NameEs         string                     `yaml:"name_es"`
	NameEn         string                     `yaml:"name_en"`
	DescriptionEs  string                     `yaml:"description_es"`
	DescriptionEn  string                     `yaml:"description_en"`
	AbilityBonuses map[entities.Ability]int32 `yaml:"ability_bonuses"`
	Traits         []string                   `yaml:"traits"`
}

// Class is a character class.
type Class struct {
	ID            string             `yaml:"id"`
	NameEs        string             `yaml:"name_es"`
	NameEn        string             `yaml:"name_en"`
	DescriptionEs string             `yaml:"description_es"`
	DescriptionEn string             `yaml:"description_en"`
	HitDie        int32              `yaml:"hit_die"`
	SavingThrows  []entities.Ability `yaml:"saving_throws"`
	SkillOptions  []string           `yaml:"skill_options"`
	// SkillChoices is how many SkillOptions may be picked at creation.
	SkillChoices int32      `yaml:"skill_choices"`
	Subclasses   []Subclass `yaml:"subclasses"`
}

// HasSavingThrow reports whether the class is proficient in saves for a.
func (c Class) HasSavingThrow(a entities.Ability) bool {
	for _, st := range c.SavingThrows {
		if st == a {
			return true
		}
	}
	return false
}

// HasSkillOption reports whether key is one of the class skill options.
func (c Class) HasSkillOption(key string) bool {
	for _, opt := range c.SkillOptions {
		if opt == key {
			return true
		}
	}
	return false
}

// Subclass is a class specialization gated by level.
type Subclass struct {
	ID            string   `yaml:"id"`
	NameEs        string   `yaml:"name_es"`
	NameEn        string   `yaml:"name_en"`
	DescriptionEs string   `yaml:"description_es"`
	DescriptionEn string   `yaml:"description_en"`
	MinLevel      int32    `yaml:"min_level"`
	Features      []string `yaml:"features"`
}

// Background grants skill proficiencies by English skill name. Some names in
// the source data are misspelled; see SkillKeyForBackgroundName.
type Background struct {
	ID                 string   `yaml:"id"`
	NameEs             string   `yaml:"name_es"`
	NameEn             string   `yaml:"name_en"`
	DescriptionEs      string   `yaml:"description_es"`
	DescriptionEn      string   `yaml:"description_en"`
	SkillProficiencies []string `yaml:"skill_proficiencies"`
	ToolProficiencies  []string `yaml:"tool_proficiencies"`
	Languages          []string `yaml:"languages"`
	Equipment          []string `yaml:"equipment"`
	Feature            string   `yaml:"feature"`
}

// Alignment is one of the nine alignments.
type Alignment struct {
	ID           string `yaml:"id"`
	NameEs       string `yaml:"name_es"`
	NameEn       string `yaml:"name_en"`
	Abbreviation string `yaml:"abbreviation"`
}

// Condition is a status effect that can be active on a character.
type Condition struct {
	ID            string `yaml:"id"`
	NameEs        string `yaml:"name_es"`
	NameEn        string `yaml:"name_en"`
	DescriptionEs string `yaml:"description_es"`
	DescriptionEn string `yaml:"description_en"`
}

// Spell is a spell definition. Level 0 is a cantrip.
type Spell struct {
	ID            string   `yaml:"id"`
	NameEs        string   `yaml:"name_es"`
	NameEn        string   `yaml:"name_en"`
	Level         int32    `yaml:"level"`
	School        string   `yaml:"school"`
	CastingTime   string   `yaml:"casting_time"`
	Range         string   `yaml:"range"`
	Components    []string `yaml:"components"`
	Duration      string   `yaml:"duration"`
	Concentration bool     `yaml:"concentration"`
	Classes       []string `yaml:"classes"`
	DescriptionEs string   `yaml:"description_es"`
	DescriptionEn string   `yaml:"description_en"`
}

// AbilityInfo carries the display names of an ability.
type AbilityInfo struct {
	Ability entities.Ability
	NameEs  string
	NameEn  string
}

// Skill is one entry of the fixed skill list.
type Skill struct {
	Key     string
	Ability entities.Ability
	NameEs  string
	NameEn  string
}

// CasterType is a class's spell slot progression.
type CasterType string

// Caster types
const (
	CasterNone CasterType = "none"
	CasterFull CasterType = "full"
	CasterHalf CasterType = "half"
)

// SpellFilter narrows Spells. Zero values match everything.
type SpellFilter struct {
	ClassID string
	Level   *int32
}
