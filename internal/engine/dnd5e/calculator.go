package dnd5e

import (
	"github.com/KirkDiggler/arcanum-api/internal/engine"
	"github.com/KirkDiggler/arcanum-api/internal/entities"
)

const perceptionSkill = "perception"

// AbilityModifier returns floor((score-10)/2) for any score.
func AbilityModifier(score int32) int32 {
	diff := score - 10
	modifier := diff / 2
	// Go truncates toward zero; step down for negative odd differences.
	if diff < 0 && diff%2 != 0 {
		modifier--
	}
	return modifier
}

// ProficiencyBonus returns floor((level-1)/4)+2 with level clamped to [1,20].
func ProficiencyBonus(level int32) int32 {
	return (clampLevel(level)-1)/4 + 2
}

func clampLevel(level int32) int32 {
	if level < entities.MinLevel {
		return entities.MinLevel
	}
	if level > entities.MaxLevel {
		return entities.MaxLevel
	}
	return level
}

// AbilityModifier implements engine.Engine
func (e *Engine) AbilityModifier(score int32) int32 {
	return AbilityModifier(score)
}

// ProficiencyBonus implements engine.Engine
func (e *Engine) ProficiencyBonus(level int32) int32 {
	return ProficiencyBonus(level)
}

// ComputeDerivedStats implements engine.Engine
func (e *Engine) ComputeDerivedStats(input *engine.ComputeDerivedStatsInput) *engine.ComputeDerivedStatsOutput {
	scores := input.AbilityScores

	var mods entities.AbilityModifiers
	for _, a := range entities.Abilities {
		mods.Add(a, AbilityModifier(scores.Get(a)))
	}
	profBonus := ProficiencyBonus(input.Level)

	savingThrows := make([]entities.SheetEntry, 0, len(entities.Abilities))
	for _, a := range entities.Abilities {
		info, _ := e.catalog.Ability(a)
		proficient := input.Class.HasSavingThrow(a)
		modifier := mods.Get(a)
		if proficient {
			modifier += profBonus
		}
		savingThrows = append(savingThrows, entities.SheetEntry{
			Key:        string(a),
			Ability:    a,
			NameEs:     info.NameEs,
			NameEn:     info.NameEn,
			Modifier:   modifier,
			Proficient: proficient,
		})
	}

	proficientSkills := make(map[string]bool, len(input.SkillProficiencies))
	for _, key := range input.SkillProficiencies {
		proficientSkills[key] = true
	}

	catalogSkills := e.catalog.Skills()
	skills := make([]entities.SheetEntry, 0, len(catalogSkills))
	passivePerception := 10 + mods.Wisdom
	for _, skill := range catalogSkills {
		proficient := proficientSkills[skill.Key]
		modifier := mods.Get(skill.Ability)
		if proficient {
			modifier += profBonus
		}
		skills = append(skills, entities.SheetEntry{
			Key:        skill.Key,
			Ability:    skill.Ability,
			NameEs:     skill.NameEs,
			NameEn:     skill.NameEn,
			Modifier:   modifier,
			Proficient: proficient,
		})
		if skill.Key == perceptionSkill {
			passivePerception = 10 + modifier
		}
	}

	return &engine.ComputeDerivedStatsOutput{
		Modifiers:         mods,
		ProficiencyBonus:  profBonus,
		SavingThrows:      savingThrows,
		Skills:            skills,
		PassivePerception: passivePerception,
		ArmorClass:        10 + mods.Dexterity,
		Initiative:        mods.Dexterity,
	}
}
