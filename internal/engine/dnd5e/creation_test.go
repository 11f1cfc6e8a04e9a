package dnd5e_test

import (
	"github.com/KirkDiggler/arcanum-api/internal/engine"
	"github.com/KirkDiggler/arcanum-api/internal/entities"
	"github.com/KirkDiggler/arcanum-api/internal/errors"
)

func int32Ptr(v int32) *int32 { return &v }

func (s *EngineTestSuite) validate(req *engine.CreationRequest) *engine.ValidateCreationOutput {
	out, err := s.engine.ValidateCreation(&engine.ValidateCreationInput{Request: req})
	s.Require().NoError(err)
	s.Require().NotNil(out)
	return out
}

func errorCodes(out *engine.ValidateCreationOutput) []string {
	codes := make([]string, 0, len(out.Errors))
	for _, e := range out.Errors {
		codes = append(codes, e.Code)
	}
	return codes
}

func (s *EngineTestSuite) TestValidateCreationNilRequest() {
	out, err := s.engine.ValidateCreation(&engine.ValidateCreationInput{})
	s.Assert().Nil(out)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestValidateCreationRequiredFields() {
	out := s.validate(&engine.CreationRequest{NameEs: "   "})

	s.Assert().False(out.IsValid)
	s.Assert().Nil(out.Result)
	s.Assert().Equal([]string{engine.CodeRequired, engine.CodeRequired, engine.CodeRequired}, errorCodes(out))
	s.Assert().Equal("nameEs", out.Errors[0].Field)
	s.Assert().Equal("raceId", out.Errors[1].Field)
	s.Assert().Equal("classId", out.Errors[2].Field)
}

func (s *EngineTestSuite) TestValidateCreationUnknownIDs() {
	out := s.validate(&engine.CreationRequest{
		NameEs:       "Thorin",
		RaceID:       "hobbit",
		ClassID:      "gunslinger",
		BackgroundID: "astronaut",
		AlignmentID:  "chaotic-awesome",
	})

	s.Assert().False(out.IsValid)
	s.Assert().ElementsMatch([]string{
		engine.CodeUnknownRace,
		engine.CodeUnknownClass,
		engine.CodeUnknownBackground,
		engine.CodeUnknownAlignment,
	}, errorCodes(out))
}

func (s *EngineTestSuite) TestValidateCreationSubraceMismatch() {
	out := s.validate(&engine.CreationRequest{
		NameEs:    "Legolas",
		RaceID:    "elf",
		SubraceID: "hill-dwarf",
		ClassID:   "ranger",
	})

	s.Assert().False(out.IsValid)
	s.Assert().Equal([]string{engine.CodeSubraceMismatch}, errorCodes(out))
	s.Assert().Equal("subraceId", out.Errors[0].Field)
}

func (s *EngineTestSuite) TestValidateCreationRejectsSubclassOfAnotherClass() {
	_, exists := s.catalog.Subclass("fighter", "champion")
	s.Require().True(exists)

	out := s.validate(&engine.CreationRequest{
		NameEs:     "Gandalf",
		RaceID:     "human",
		ClassID:    "wizard",
		SubclassID: "champion",
	})

	s.Assert().False(out.IsValid)
	s.Assert().Equal([]string{engine.CodeSubclassMismatch}, errorCodes(out))
}

func (s *EngineTestSuite) TestValidateCreationRejectsTooManyClassSkills() {
	out := s.validate(&engine.CreationRequest{
		NameEs:             "Conan",
		RaceID:             "human",
		ClassID:            "fighter",
		SkillProficiencies: []string{"athletics", "perception", "survival"},
	})

	s.Assert().False(out.IsValid)
	s.Assert().Equal([]string{engine.CodeTooManyClassSkills}, errorCodes(out))
}

func (s *EngineTestSuite) TestValidateCreationSkillCapOnlyCountsClassOptions() {
	out := s.validate(&engine.CreationRequest{
		NameEs:             "Conan",
		RaceID:             "human",
		ClassID:            "fighter",
		SkillProficiencies: []string{"Athletics", " athletics ", "perception", "arcana", ""},
	})

	s.Assert().True(out.IsValid, out.Errors)
	s.Assert().Equal([]string{"arcana", "athletics", "perception"}, out.Result.SkillKeys)
}

func (s *EngineTestSuite) TestValidateCreationRejectsUnknownSkill() {
	out := s.validate(&engine.CreationRequest{
		NameEs:             "Conan",
		RaceID:             "human",
		ClassID:            "fighter",
		SkillProficiencies: []string{"juggling"},
	})

	s.Assert().False(out.IsValid)
	s.Assert().Equal([]string{engine.CodeUnknownSkill}, errorCodes(out))
}

func (s *EngineTestSuite) TestValidateCreationSubclassLevelGateWarns() {
	out := s.validate(&engine.CreationRequest{
		NameEs:     "Conan",
		RaceID:     "human",
		ClassID:    "fighter",
		SubclassID: "champion",
	})

	s.Assert().True(out.IsValid)
	s.Require().Len(out.Warnings, 1)
	s.Assert().Equal(engine.CodeSubclassLevelGate, out.Warnings[0].Code)
	s.Assert().Equal("champion", out.Result.Character.SubclassID)

	out = s.validate(&engine.CreationRequest{
		NameEs:     "Aria",
		RaceID:     "human",
		ClassID:    "cleric",
		SubclassID: "life-domain",
	})
	s.Assert().True(out.IsValid)
	s.Assert().Empty(out.Warnings)
}

func (s *EngineTestSuite) TestValidateCreationStartingHitPoints() {
	out := s.validate(&engine.CreationRequest{
		NameEs:    "Bruenor",
		RaceID:    "dwarf",
		SubraceID: "hill-dwarf",
		ClassID:   "cleric",
		AbilityScores: engine.StartingAbilityScores{
			Constitution: int32Ptr(12),
		},
	})

	s.Require().True(out.IsValid, out.Errors)
	s.Assert().Equal(int32(14), out.Result.AbilityScores.Constitution)
	s.Assert().Equal(int32(10), out.Result.GameState.CurrentHealth)
	s.Assert().Equal(int32(10), out.Result.GameState.MaximumHealth)
	s.Assert().Equal(int32(1), out.Result.Character.Level)
}

func (s *EngineTestSuite) TestValidateCreationHitPointsUseClampedConstitution() {
	out := s.validate(&engine.CreationRequest{
		NameEs:  "Frail",
		RaceID:  "elf",
		ClassID: "sorcerer",
		AbilityScores: engine.StartingAbilityScores{
			Constitution: int32Ptr(1),
		},
	})

	s.Require().True(out.IsValid)
	// Constitution clamps to 8 (-1): 6 - 1 = 5.
	s.Assert().Equal(int32(5), out.Result.GameState.MaximumHealth)
}

func (s *EngineTestSuite) TestValidateCreationAbilityScores() {
	out := s.validate(&engine.CreationRequest{
		NameEs:    "Gimli",
		RaceID:    "dwarf",
		SubraceID: "mountain-dwarf",
		ClassID:   "fighter",
		AbilityScores: engine.StartingAbilityScores{
			Strength:     int32Ptr(25),
			Dexterity:    int32Ptr(3),
			Constitution: int32Ptr(20),
		},
	})

	s.Require().True(out.IsValid)
	s.Assert().Equal(entities.AbilityScores{
		Strength:     22,
		Dexterity:    8,
		Constitution: 22,
		Intelligence: 10,
		Wisdom:       10,
		Charisma:     10,
	}, out.Result.AbilityScores)
}

func (s *EngineTestSuite) TestValidateCreationBackgroundSkills() {
	out := s.validate(&engine.CreationRequest{
		NameEs:             "Mira",
		NameEn:             " Mira ",
		RaceID:             "human",
		ClassID:            "bard",
		BackgroundID:       "guild-artisan",
		AlignmentID:        "neutral-good",
		SkillProficiencies: []string{"performance", "insight"},
		Personality:        entities.Personality{Ideals: "Comunidad"},
	})

	s.Require().True(out.IsValid, out.Errors)
	s.Assert().Equal([]string{"insight", "performance", "persuasion"}, out.Result.SkillKeys)
	s.Assert().Equal("Mira", out.Result.Character.NameEn)
	s.Assert().Equal("guild-artisan", out.Result.Character.BackgroundID)
	s.Assert().Equal("Comunidad", out.Result.Character.Personality.Ideals)
	s.Assert().Equal(entities.GameState{CurrentHealth: 8, MaximumHealth: 8}, out.Result.GameState)
}
