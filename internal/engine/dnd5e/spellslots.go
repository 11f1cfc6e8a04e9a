package dnd5e

import (
	"github.com/KirkDiggler/arcanum-api/internal/catalog"
	"github.com/KirkDiggler/arcanum-api/internal/entities"
)

// halfCasterMaxSpellLevel is the highest spell level a half caster reaches.
const halfCasterMaxSpellLevel = 5

// fullCasterSlots is the full caster slot table. Row = character level - 1,
// column = spell level - 1.
var fullCasterSlots = [entities.MaxLevel][entities.MaxSpellLevel]int32{
	{2, 0, 0, 0, 0, 0, 0, 0, 0},
	{3, 0, 0, 0, 0, 0, 0, 0, 0},
	{4, 2, 0, 0, 0, 0, 0, 0, 0},
	{4, 3, 0, 0, 0, 0, 0, 0, 0},
	{4, 3, 2, 0, 0, 0, 0, 0, 0},
	{4, 3, 3, 0, 0, 0, 0, 0, 0},
	{4, 3, 3, 1, 0, 0, 0, 0, 0},
	{4, 3, 3, 2, 0, 0, 0, 0, 0},
	{4, 3, 3, 3, 1, 0, 0, 0, 0},
	{4, 3, 3, 3, 2, 0, 0, 0, 0},
	{4, 3, 3, 3, 2, 1, 0, 0, 0},
	{4, 3, 3, 3, 2, 1, 0, 0, 0},
	{4, 3, 3, 3, 2, 1, 1, 0, 0},
	{4, 3, 3, 3, 2, 1, 1, 0, 0},
	{4, 3, 3, 3, 2, 1, 1, 1, 0},
	{4, 3, 3, 3, 2, 1, 1, 1, 0},
	{4, 3, 3, 3, 2, 1, 1, 1, 1},
	{4, 3, 3, 3, 3, 1, 1, 1, 1},
	{4, 3, 3, 3, 3, 2, 1, 1, 1},
	{4, 3, 3, 3, 3, 2, 2, 1, 1},
}

// SpellSlotsForCaster returns total slots for a progression at a level.
// Level is clamped to [1,20].
func SpellSlotsForCaster(caster catalog.CasterType, level int32) entities.SpellSlots {
	level = clampLevel(level)

	switch caster {
	case catalog.CasterFull:
		return entities.NewSpellSlots(fullCasterSlots[level-1])
	case catalog.CasterHalf:
		effective := level / 2
		if effective == 0 {
			return entities.SpellSlots{}
		}
		row := fullCasterSlots[effective-1]
		for i := halfCasterMaxSpellLevel; i < entities.MaxSpellLevel; i++ {
			row[i] = 0
		}
		return entities.NewSpellSlots(row)
	default:
		return entities.SpellSlots{}
	}
}

// SpellSlotsTotal implements engine.Engine
func (e *Engine) SpellSlotsTotal(classID string, level int32) entities.SpellSlots {
	return SpellSlotsForCaster(e.catalog.CasterType(classID), level)
}
