package v1alpha1

import (
	arcanumv1alpha1 "github.com/KirkDiggler/arcanum-api/internal/api/arcanum/v1alpha1"
	"github.com/KirkDiggler/arcanum-api/internal/entities"
	"github.com/KirkDiggler/arcanum-api/internal/pkg/locale"
)

func convertRefToWire(ref *entities.LocalizedRef, lang locale.Lang) *arcanumv1alpha1.LocalizedRef {
	if ref == nil {
		return nil
	}
	return &arcanumv1alpha1.LocalizedRef{
		ID:          ref.ID,
		NameEs:      ref.NameEs,
		NameEn:      ref.NameEn,
		DisplayName: lang.Pick(ref.NameEs, ref.NameEn),
	}
}

func convertAbilityScoresToWire(s entities.AbilityScores) *arcanumv1alpha1.AbilityScores {
	return &arcanumv1alpha1.AbilityScores{
		Strength:     s.Strength,
		Dexterity:    s.Dexterity,
		Constitution: s.Constitution,
		Intelligence: s.Intelligence,
		Wisdom:       s.Wisdom,
		Charisma:     s.Charisma,
	}
}

func convertEntriesToWire(entries []entities.SheetEntry, lang locale.Lang) []*arcanumv1alpha1.SheetEntry {
	out := make([]*arcanumv1alpha1.SheetEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, &arcanumv1alpha1.SheetEntry{
			Key:         e.Key,
			Ability:     string(e.Ability),
			NameEs:      e.NameEs,
			NameEn:      e.NameEn,
			DisplayName: lang.Pick(e.NameEs, e.NameEn),
			Modifier:    e.Modifier,
			Proficient:  e.Proficient,
		})
	}
	return out
}

func convertSheetToWire(sheet *entities.CharacterSheet, lang locale.Lang) *arcanumv1alpha1.CharacterSheet {
	if sheet == nil {
		return nil
	}

	inventory := make([]*arcanumv1alpha1.InventoryItem, 0, len(sheet.Inventory))
	for _, item := range sheet.Inventory {
		inventory = append(inventory, &arcanumv1alpha1.InventoryItem{
			ID:       item.ID,
			Name:     item.Name,
			Quantity: item.Quantity,
		})
	}

	conditions := sheet.ActiveConditions
	if conditions == nil {
		conditions = []string{}
	}
	traits := sheet.TraitsAndFeatures
	if traits == nil {
		traits = []string{}
	}

	return &arcanumv1alpha1.CharacterSheet{
		ID:          sheet.ID,
		UserID:      sheet.UserID,
		NameEs:      sheet.NameEs,
		NameEn:      sheet.NameEn,
		DisplayName: lang.Pick(sheet.NameEs, sheet.NameEn),
		Race:        convertRefToWire(&sheet.Race, lang),
		Subrace:     convertRefToWire(sheet.Subrace, lang),
		Class:       convertRefToWire(&sheet.Class, lang),
		Subclass:    convertRefToWire(sheet.Subclass, lang),
		Background:  convertRefToWire(sheet.Background, lang),
		Alignment:   convertRefToWire(sheet.Alignment, lang),
		Level:       sheet.Level,
		Experience:  sheet.Experience,
		Personality: &arcanumv1alpha1.Personality{
			Ideals: sheet.Personality.Ideals,
			Bonds:  sheet.Personality.Bonds,
			Flaws:  sheet.Personality.Flaws,
		},

		Abilities:         convertAbilityScoresToWire(sheet.Abilities),
		AbilityModifiers:  convertAbilityScoresToWire(sheet.AbilityModifiers),
		ProficiencyBonus:  sheet.ProficiencyBonus,
		SavingThrows:      convertEntriesToWire(sheet.SavingThrows, lang),
		Skills:            convertEntriesToWire(sheet.Skills, lang),
		PassivePerception: sheet.PassivePerception,
		ArmorClass:        sheet.ArmorClass,
		Initiative:        sheet.Initiative,
		Speed:             sheet.Speed,

		Health: &arcanumv1alpha1.Health{
			Current: sheet.Health.Current,
			Maximum: sheet.Health.Maximum,
		},
		HitDice:      sheet.HitDice,
		HitDiceTotal: sheet.HitDiceTotal,

		Gold:              sheet.Gold,
		Inspiration:       sheet.Inspiration,
		SpellSlots:        convertSpellSlotsToWire(sheet.SpellSlots),
		SpellSlotsTotal:   convertSpellSlotsToWire(sheet.SpellSlotsTotal),
		ConcentratingOn:   sheet.ConcentratingOn,
		ActiveConditions:  conditions,
		Inventory:         inventory,
		TraitsAndFeatures: traits,

		CreatedAt: sheet.CreatedAt,
		UpdatedAt: sheet.UpdatedAt,
	}
}

func convertGameStateToWire(state *entities.GameState) *arcanumv1alpha1.GameState {
	if state == nil {
		return nil
	}

	var concentrating *string
	if state.ConcentratingOn != "" {
		c := state.ConcentratingOn
		concentrating = &c
	}

	return &arcanumv1alpha1.GameState{
		CharacterID:       state.CharacterID,
		CurrentHealth:     state.CurrentHealth,
		MaximumHealth:     state.MaximumHealth,
		CurrentGold:       state.CurrentGold,
		InspirationPoints: state.InspirationPoints,
		SpellSlotsUsed:    convertSpellSlotsToWire(state.SpellSlotsUsed),
		ConcentratingOn:   concentrating,
		UpdatedAt:         state.UpdatedAt,
	}
}

func convertItemToWire(item *entities.InventoryItem) *arcanumv1alpha1.InventoryItem {
	if item == nil {
		return nil
	}
	return &arcanumv1alpha1.InventoryItem{
		ID:        item.ID,
		Name:      item.Name,
		Quantity:  item.Quantity,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}
