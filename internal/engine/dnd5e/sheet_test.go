package dnd5e_test

import (
	"github.com/KirkDiggler/arcanum-api/internal/engine"
	"github.com/KirkDiggler/arcanum-api/internal/entities"
	"github.com/KirkDiggler/arcanum-api/internal/errors"
)

func (s *EngineTestSuite) sheetInput() *engine.AssembleSheetInput {
	character := &entities.Character{
		ID:           "char-1",
		UserID:       "user-1",
		NameEs:       "Bruenor",
		NameEn:       "Bruenor",
		RaceID:       "dwarf",
		SubraceID:    "hill-dwarf",
		ClassID:      "cleric",
		SubclassID:   "life-domain",
		BackgroundID: "acolyte",
		AlignmentID:  "lawful-good",
		Level:        3,
		Experience:   900,
		CreatedAt:    1700000000,
		UpdatedAt:    1700000100,
	}

	defs, err := s.engine.ResolveDefinitions(character)
	s.Require().NoError(err)

	return &engine.AssembleSheetInput{
		Character: character,
		AbilityScores: entities.AbilityScores{
			Strength: 14, Dexterity: 10, Constitution: 16,
			Intelligence: 10, Wisdom: 15, Charisma: 8,
		},
		GameState: entities.GameState{
			CharacterID:       "char-1",
			CurrentHealth:     30,
			MaximumHealth:     24,
			CurrentGold:       15,
			InspirationPoints: 1,
			SpellSlotsUsed:    entities.SpellSlots{Level1: 1},
		},
		SkillKeys:    []string{"insight", "religion", "medicine"},
		Definitions:  defs,
		ConditionIDs: []string{"poisoned", "blinded"},
		Inventory: []*entities.InventoryItem{
			{ID: "item-1", CharacterID: "char-1", Name: "Maza", Quantity: 1},
			{ID: "item-2", CharacterID: "char-1", Name: "Antorcha", Quantity: 5},
		},
	}
}

func (s *EngineTestSuite) TestResolveDefinitions() {
	s.Run("optional ids absent", func() {
		defs, err := s.engine.ResolveDefinitions(&entities.Character{ID: "c", RaceID: "human", ClassID: "fighter"})
		s.Require().NoError(err)
		s.Assert().Equal("human", defs.Race.ID)
		s.Assert().Equal("fighter", defs.Class.ID)
		s.Assert().Nil(defs.Subrace)
		s.Assert().Nil(defs.Subclass)
		s.Assert().Nil(defs.Background)
		s.Assert().Nil(defs.Alignment)
	})

	s.Run("unknown race is data loss", func() {
		_, err := s.engine.ResolveDefinitions(&entities.Character{ID: "c", RaceID: "gone", ClassID: "fighter"})
		s.Assert().True(errors.IsDataLoss(err))
	})

	s.Run("unknown class is data loss", func() {
		_, err := s.engine.ResolveDefinitions(&entities.Character{ID: "c", RaceID: "human", ClassID: "gone"})
		s.Assert().True(errors.IsDataLoss(err))
	})

	s.Run("nil character", func() {
		_, err := s.engine.ResolveDefinitions(nil)
		s.Assert().True(errors.IsInternal(err))
	})
}

func (s *EngineTestSuite) TestAssembleSheet() {
	sheet, err := s.engine.AssembleSheet(s.sheetInput())
	s.Require().NoError(err)

	s.Assert().Equal("char-1", sheet.ID)
	s.Assert().Equal(entities.LocalizedRef{ID: "dwarf", NameEs: "Enano", NameEn: "Dwarf"}, sheet.Race)
	s.Require().NotNil(sheet.Subrace)
	s.Assert().Equal("hill-dwarf", sheet.Subrace.ID)
	s.Require().NotNil(sheet.Subclass)
	s.Assert().Equal("life-domain", sheet.Subclass.ID)
	s.Require().NotNil(sheet.Background)
	s.Require().NotNil(sheet.Alignment)
	s.Assert().Equal("Lawful Good", sheet.Alignment.NameEn)

	s.Assert().Equal(int32(2), sheet.ProficiencyBonus)
	s.Assert().Equal(int32(3), sheet.AbilityModifiers.Constitution)
	s.Assert().Len(sheet.SavingThrows, 6)
	s.Assert().Len(sheet.Skills, 18)
	// Perception is not proficient: 10 + wis 2.
	s.Assert().Equal(int32(12), sheet.PassivePerception)
	s.Assert().Equal(int32(10), sheet.ArmorClass)
	s.Assert().Equal(int32(0), sheet.Initiative)
	s.Assert().Equal(int32(25), sheet.Speed)

	// Health passes through unclamped.
	s.Assert().Equal(entities.Health{Current: 30, Maximum: 24}, sheet.Health)
	s.Assert().Equal("1d8", sheet.HitDice)
	s.Assert().Equal(int32(3), sheet.HitDiceTotal)

	s.Assert().Equal(int32(15), sheet.Gold)
	s.Assert().Equal(int32(1), sheet.Inspiration)
	s.Assert().Equal(entities.SpellSlots{Level1: 1}, sheet.SpellSlots)
	s.Assert().Equal([9]int32{4, 2, 0, 0, 0, 0, 0, 0, 0}, sheet.SpellSlotsTotal.Array())
	s.Assert().Nil(sheet.ConcentratingOn)

	s.Assert().Equal([]string{"poisoned", "blinded"}, sheet.ActiveConditions)
	s.Assert().Equal([]entities.SheetItem{
		{ID: "item-1", Name: "Maza", Quantity: 1},
		{ID: "item-2", Name: "Antorcha", Quantity: 5},
	}, sheet.Inventory)
	s.Assert().Equal(int64(1700000000), sheet.CreatedAt)
	s.Assert().Equal(int64(1700000100), sheet.UpdatedAt)
}

func (s *EngineTestSuite) TestAssembleSheetTraitOrder() {
	input := s.sheetInput()
	defs := input.Definitions

	var want []string
	want = append(want, defs.Race.Traits...)
	want = append(want, defs.Subrace.Traits...)
	want = append(want, defs.Background.Feature)
	want = append(want, defs.Subclass.Features...)

	sheet, err := s.engine.AssembleSheet(input)
	s.Require().NoError(err)
	s.Assert().Equal(want, sheet.TraitsAndFeatures)
}

func (s *EngineTestSuite) TestAssembleSheetKeepsDuplicateTraits() {
	input := s.sheetInput()
	sub := *input.Definitions.Subrace
	sub.Traits = append([]string{}, input.Definitions.Race.Traits[0])
	input.Definitions.Subrace = &sub

	sheet, err := s.engine.AssembleSheet(input)
	s.Require().NoError(err)

	count := 0
	for _, t := range sheet.TraitsAndFeatures {
		if t == input.Definitions.Race.Traits[0] {
			count++
		}
	}
	s.Assert().Equal(2, count)
}

func (s *EngineTestSuite) TestAssembleSheetIsIdempotent() {
	first, err := s.engine.AssembleSheet(s.sheetInput())
	s.Require().NoError(err)
	second, err := s.engine.AssembleSheet(s.sheetInput())
	s.Require().NoError(err)

	s.Assert().Equal(first, second)
}

func (s *EngineTestSuite) TestAssembleSheetConcentration() {
	input := s.sheetInput()
	input.GameState.ConcentratingOn = "bless"

	sheet, err := s.engine.AssembleSheet(input)
	s.Require().NoError(err)
	s.Require().NotNil(sheet.ConcentratingOn)
	s.Assert().Equal("bless", *sheet.ConcentratingOn)
}

func (s *EngineTestSuite) TestAssembleSheetWithoutOptionalData() {
	character := &entities.Character{ID: "c", UserID: "u", NameEs: "Solo", RaceID: "human", ClassID: "fighter", Level: 1}
	defs, err := s.engine.ResolveDefinitions(character)
	s.Require().NoError(err)

	sheet, err := s.engine.AssembleSheet(&engine.AssembleSheetInput{
		Character:   character,
		Definitions: defs,
	})
	s.Require().NoError(err)

	s.Assert().Nil(sheet.Subrace)
	s.Assert().Nil(sheet.Subclass)
	s.Assert().Nil(sheet.Background)
	s.Assert().Nil(sheet.Alignment)
	s.Assert().NotNil(sheet.ActiveConditions)
	s.Assert().Empty(sheet.ActiveConditions)
	s.Assert().NotNil(sheet.Inventory)
	s.Assert().Equal(entities.SpellSlots{}, sheet.SpellSlotsTotal)
	s.Assert().Equal("1d10", sheet.HitDice)
}

func (s *EngineTestSuite) TestAssembleSheetProgrammerErrors() {
	_, err := s.engine.AssembleSheet(nil)
	s.Assert().True(errors.IsInternal(err))

	_, err = s.engine.AssembleSheet(&engine.AssembleSheetInput{})
	s.Assert().True(errors.IsInternal(err))

	input := s.sheetInput()
	input.Definitions.Class = nil
	_, err = s.engine.AssembleSheet(input)
	s.Assert().True(errors.IsInternal(err))
}
