package v1alpha1

import (
	"fmt"

	arcanumv1alpha1 "github.com/KirkDiggler/arcanum-api/internal/api/arcanum/v1alpha1"
	"github.com/KirkDiggler/arcanum-api/internal/catalog"
	"github.com/KirkDiggler/arcanum-api/internal/entities"
	"github.com/KirkDiggler/arcanum-api/internal/pkg/locale"
)

func hitDie(sides int32) string {
	return fmt.Sprintf("d%d", sides)
}

func convertBonusesToWire(bonuses map[entities.Ability]int32) map[string]int32 {
	out := make(map[string]int32, len(bonuses))
	for a, n := range bonuses {
		out[string(a)] = n
	}
	return out
}

func convertRaceToWire(r catalog.Race, lang locale.Lang) *arcanumv1alpha1.Race {
	subraces := make([]*arcanumv1alpha1.Subrace, 0, len(r.Subraces))
	for _, sr := range r.Subraces {
		subraces = append(subraces, convertSubraceToWire(r.ID, sr, lang))
	}

	return &arcanumv1alpha1.Race{
		ID:             r.ID,
		NameEs:         r.NameEs,
		NameEn:         r.NameEn,
		DisplayName:    lang.Pick(r.NameEs, r.NameEn),
		Description:    lang.Pick(r.DescriptionEs, r.DescriptionEn),
		AbilityBonuses: convertBonusesToWire(r.AbilityBonuses),
		Speed:          r.Speed,
		Size:           r.Size,
		Languages:      r.Languages,
		Traits:         r.Traits,
		Subraces:       subraces,
	}
}

func convertSubraceToWire(raceID string, sr catalog.Subrace, lang locale.Lang) *arcanumv1alpha1.Subrace {
	return &arcanumv1alpha1.Subrace{
		ID:             sr.ID,
		RaceID:         raceID,
		NameEs:         sr.NameEs,
		NameEn:         sr.NameEn,
		DisplayName:    lang.Pick(sr.NameEs, sr.NameEn),
		Description:    lang.Pick(sr.DescriptionEs, sr.DescriptionEn),
		AbilityBonuses: convertBonusesToWire(sr.AbilityBonuses),
		Traits:         sr.Traits,
	}
}

func convertSubclassToWire(classID string, sc catalog.Subclass, lang locale.Lang) *arcanumv1alpha1.Subclass {
	return &arcanumv1alpha1.Subclass{
		ID:          sc.ID,
		ClassID:     classID,
		NameEs:      sc.NameEs,
		NameEn:      sc.NameEn,
		DisplayName: lang.Pick(sc.NameEs, sc.NameEn),
		Description: lang.Pick(sc.DescriptionEs, sc.DescriptionEn),
		MinLevel:    sc.MinLevel,
		Features:    sc.Features,
	}
}

func convertBackgroundToWire(b catalog.Background, lang locale.Lang) *arcanumv1alpha1.Background {
	keys := make([]string, 0, len(b.SkillProficiencies))
	for _, name := range b.SkillProficiencies {
		keys = append(keys, catalog.SkillKeyForBackgroundName(name))
	}

	return &arcanumv1alpha1.Background{
		ID:                 b.ID,
		NameEs:             b.NameEs,
		NameEn:             b.NameEn,
		DisplayName:        lang.Pick(b.NameEs, b.NameEn),
		Description:        lang.Pick(b.DescriptionEs, b.DescriptionEn),
		SkillProficiencies: b.SkillProficiencies,
		SkillKeys:          keys,
		ToolProficiencies:  b.ToolProficiencies,
		Languages:          b.Languages,
		Equipment:          b.Equipment,
		Feature:            b.Feature,
	}
}

func convertConditionToWire(c catalog.Condition, lang locale.Lang) *arcanumv1alpha1.Condition {
	return &arcanumv1alpha1.Condition{
		ID:          c.ID,
		NameEs:      c.NameEs,
		NameEn:      c.NameEn,
		DisplayName: lang.Pick(c.NameEs, c.NameEn),
		Description: lang.Pick(c.DescriptionEs, c.DescriptionEn),
	}
}

func convertSpellToWire(sp catalog.Spell, lang locale.Lang) *arcanumv1alpha1.Spell {
	return &arcanumv1alpha1.Spell{
		ID:            sp.ID,
		NameEs:        sp.NameEs,
		NameEn:        sp.NameEn,
		DisplayName:   lang.Pick(sp.NameEs, sp.NameEn),
		Description:   lang.Pick(sp.DescriptionEs, sp.DescriptionEn),
		Level:         sp.Level,
		School:        sp.School,
		CastingTime:   sp.CastingTime,
		Range:         sp.Range,
		Components:    sp.Components,
		Duration:      sp.Duration,
		Concentration: sp.Concentration,
		Classes:       sp.Classes,
	}
}

func convertSpellSlotsToWire(s entities.SpellSlots) *arcanumv1alpha1.SpellSlots {
	return &arcanumv1alpha1.SpellSlots{
		Level1: s.Level1,
		Level2: s.Level2,
		Level3: s.Level3,
		Level4: s.Level4,
		Level5: s.Level5,
		Level6: s.Level6,
		Level7: s.Level7,
		Level8: s.Level8,
		Level9: s.Level9,
	}
}
