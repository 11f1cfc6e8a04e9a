// Package catalog holds the read-only ruleset: races, classes, backgrounds,
// alignments, conditions, spells and the fixed skill list.
//
// A Catalog is built once at startup and injected wherever rules data is
// needed. It is never mutated after New returns, so it is safe for
// concurrent use. Lookups hand out copies of the definitions; the slices
// inside them are shared and must be treated as read-only.
package catalog

import (
	"fmt"

	"github.com/KirkDiggler/arcanum-api/internal/entities"
	"github.com/KirkDiggler/arcanum-api/internal/errors"
)

// DefaultSkillChoices is the class skill allowance when data leaves it unset.
const DefaultSkillChoices int32 = 2

// Data is the raw ruleset content a Catalog is built from.
type Data struct {
	Races       []Race       `yaml:"races"`
	Classes     []Class      `yaml:"classes"`
	Backgrounds []Background `yaml:"backgrounds"`
	Alignments  []Alignment  `yaml:"alignments"`
	Conditions  []Condition  `yaml:"conditions"`
	Spells      []Spell      `yaml:"spells"`
}

// Catalog is the immutable ruleset.
type Catalog struct {
	races       []Race
	classes     []Class
	backgrounds []Background
	alignments  []Alignment
	conditions  []Condition
	spells      []Spell

	raceIndex       map[string]int
	classIndex      map[string]int
	backgroundIndex map[string]int
	alignmentIndex  map[string]int
	conditionIndex  map[string]int
	spellIndex      map[string]int
	skillIndex      map[string]int
}

// New validates data and builds a Catalog from it.
func New(data Data) (*Catalog, error) {
	if err := validate(&data); err != nil {
		return nil, errors.Wrap(err, "invalid catalog data")
	}

	for i := range data.Classes {
		if data.Classes[i].SkillChoices == 0 {
			data.Classes[i].SkillChoices = DefaultSkillChoices
		}
	}

	c := &Catalog{
		races:       data.Races,
		classes:     data.Classes,
		backgrounds: data.Backgrounds,
		alignments:  data.Alignments,
		conditions:  data.Conditions,
		spells:      data.Spells,
		skillIndex:  make(map[string]int, SkillCount),
	}
	c.raceIndex = indexBy(c.races, func(r Race) string { return r.ID })
	c.classIndex = indexBy(c.classes, func(cl Class) string { return cl.ID })
	c.backgroundIndex = indexBy(c.backgrounds, func(b Background) string { return b.ID })
	c.alignmentIndex = indexBy(c.alignments, func(a Alignment) string { return a.ID })
	c.conditionIndex = indexBy(c.conditions, func(cd Condition) string { return cd.ID })
	c.spellIndex = indexBy(c.spells, func(s Spell) string { return s.ID })
	for i, s := range skills {
		c.skillIndex[s.Key] = i
	}

	return c, nil
}

func indexBy[T any](items []T, id func(T) string) map[string]int {
	index := make(map[string]int, len(items))
	for i, item := range items {
		index[id(item)] = i
	}
	return index
}

// Race returns the race with the given id.
func (c *Catalog) Race(id string) (Race, bool) {
	i, ok := c.raceIndex[id]
	if !ok {
		return Race{}, false
	}
	return c.races[i], true
}

// Subrace returns a subrace of raceID. A subrace of another race is not found.
func (c *Catalog) Subrace(raceID, id string) (Subrace, bool) {
	race, ok := c.Race(raceID)
	if !ok {
		return Subrace{}, false
	}
	for _, sr := range race.Subraces {
		if sr.ID == id {
			return sr, true
		}
	}
	return Subrace{}, false
}

// Class returns the class with the given id.
func (c *Catalog) Class(id string) (Class, bool) {
	i, ok := c.classIndex[id]
	if !ok {
		return Class{}, false
	}
	return c.classes[i], true
}

// Subclass returns a subclass of classID. A subclass of another class is not
// found.
func (c *Catalog) Subclass(classID, id string) (Subclass, bool) {
	class, ok := c.Class(classID)
	if !ok {
		return Subclass{}, false
	}
	for _, sc := range class.Subclasses {
		if sc.ID == id {
			return sc, true
		}
	}
	return Subclass{}, false
}

// Background returns the background with the given id.
func (c *Catalog) Background(id string) (Background, bool) {
	i, ok := c.backgroundIndex[id]
	if !ok {
		return Background{}, false
	}
	return c.backgrounds[i], true
}

// Alignment returns the alignment with the given id.
func (c *Catalog) Alignment(id string) (Alignment, bool) {
	i, ok := c.alignmentIndex[id]
	if !ok {
		return Alignment{}, false
	}
	return c.alignments[i], true
}

// Condition returns the condition with the given id.
func (c *Catalog) Condition(id string) (Condition, bool) {
	i, ok := c.conditionIndex[id]
	if !ok {
		return Condition{}, false
	}
	return c.conditions[i], true
}

// Spell returns the spell with the given id.
func (c *Catalog) Spell(id string) (Spell, bool) {
	i, ok := c.spellIndex[id]
	if !ok {
		return Spell{}, false
	}
	return c.spells[i], true
}

// Skill returns the skill with the given key.
func (c *Catalog) Skill(key string) (Skill, bool) {
	i, ok := c.skillIndex[key]
	if !ok {
		return Skill{}, false
	}
	return skills[i], true
}

// Ability returns the display names of an ability.
func (c *Catalog) Ability(a entities.Ability) (AbilityInfo, bool) {
	names, ok := abilityNames[a]
	if !ok {
		return AbilityInfo{}, false
	}
	return AbilityInfo{Ability: a, NameEs: names[0], NameEn: names[1]}, true
}

// CasterType returns the spell slot progression of a class id.
func (c *Catalog) CasterType(classID string) CasterType {
	if t, ok := casterTypes[classID]; ok {
		return t
	}
	return CasterNone
}

// Races lists races in catalog order.
func (c *Catalog) Races() []Race {
	return append([]Race(nil), c.races...)
}

// Classes lists classes in catalog order.
func (c *Catalog) Classes() []Class {
	return append([]Class(nil), c.classes...)
}

// Backgrounds lists backgrounds in catalog order.
func (c *Catalog) Backgrounds() []Background {
	return append([]Background(nil), c.backgrounds...)
}

// Alignments lists alignments in catalog order.
func (c *Catalog) Alignments() []Alignment {
	return append([]Alignment(nil), c.alignments...)
}

// Conditions lists conditions in catalog order.
func (c *Catalog) Conditions() []Condition {
	return append([]Condition(nil), c.conditions...)
}

// Skills lists the fixed skills in sheet order.
func (c *Catalog) Skills() []Skill {
	return append([]Skill(nil), skills[:]...)
}

// Spells lists spells matching filter in catalog order.
func (c *Catalog) Spells(filter SpellFilter) []Spell {
	var out []Spell
	for _, s := range c.spells {
		if filter.Level != nil && s.Level != *filter.Level {
			continue
		}
		if filter.ClassID != "" && !contains(s.Classes, filter.ClassID) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func validate(data *Data) error {
	vb := errors.NewValidationBuilder()

	checkIDs("races", len(data.Races), func(i int) string { return data.Races[i].ID }, vb)
	checkIDs("classes", len(data.Classes), func(i int) string { return data.Classes[i].ID }, vb)
	checkIDs("backgrounds", len(data.Backgrounds), func(i int) string { return data.Backgrounds[i].ID }, vb)
	checkIDs("alignments", len(data.Alignments), func(i int) string { return data.Alignments[i].ID }, vb)
	checkIDs("conditions", len(data.Conditions), func(i int) string { return data.Conditions[i].ID }, vb)
	checkIDs("spells", len(data.Spells), func(i int) string { return data.Spells[i].ID }, vb)

	for i, race := range data.Races {
		field := fmt.Sprintf("races[%s]", race.ID)
		checkIDs(field+".subraces", len(race.Subraces), func(j int) string { return race.Subraces[j].ID }, vb)
		checkBonuses(field, race.AbilityBonuses, vb)
		for _, sr := range race.Subraces {
			checkBonuses(fmt.Sprintf("%s.subraces[%s]", field, sr.ID), sr.AbilityBonuses, vb)
		}
		if race.Speed <= 0 {
			vb.Fieldf(field, "speed must be positive (entry %d)", i)
		}
	}

	for _, class := range data.Classes {
		field := fmt.Sprintf("classes[%s]", class.ID)
		switch class.HitDie {
		case 6, 8, 10, 12:
		default:
			vb.Fieldf(field, "hit die %d is not one of 6, 8, 10, 12", class.HitDie)
		}
		for _, st := range class.SavingThrows {
			if !st.Valid() {
				vb.Fieldf(field, "unknown saving throw ability %q", st)
			}
		}
		for _, opt := range class.SkillOptions {
			if !isSkillKey(opt) {
				vb.Fieldf(field, "unknown skill option %q", opt)
			}
		}
		if class.SkillChoices < 0 {
			vb.Field(field, "skill choices must not be negative")
		}
		checkIDs(field+".subclasses", len(class.Subclasses), func(j int) string { return class.Subclasses[j].ID }, vb)
	}

	return vb.Build()
}

func checkIDs(field string, n int, id func(int) string, vb *errors.ValidationBuilder) {
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		v := id(i)
		if v == "" {
			vb.Fieldf(field, "entry %d has no id", i)
			continue
		}
		if seen[v] {
			vb.Fieldf(field, "duplicate id %q", v)
		}
		seen[v] = true
	}
}

func checkBonuses(field string, bonuses map[entities.Ability]int32, vb *errors.ValidationBuilder) {
	for ability := range bonuses {
		if !ability.Valid() {
			vb.Fieldf(field, "unknown ability %q in bonuses", ability)
		}
	}
}

func isSkillKey(key string) bool {
	for _, s := range skills {
		if s.Key == key {
			return true
		}
	}
	return false
}
