package catalog_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/arcanum-api/internal/catalog"
	"github.com/KirkDiggler/arcanum-api/internal/entities"
	"github.com/KirkDiggler/arcanum-api/internal/errors"
)

type CatalogTestSuite struct {
	suite.Suite
	catalog *catalog.Catalog
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) SetupSuite() {
	c, err := catalog.LoadDefault()
	s.Require().NoError(err)
	s.catalog = c
}

func (s *CatalogTestSuite) TestDefaultContents() {
	s.Assert().Len(s.catalog.Races(), 9)
	s.Assert().Len(s.catalog.Classes(), 13)
	s.Assert().Len(s.catalog.Backgrounds(), 13)
	s.Assert().Len(s.catalog.Alignments(), 9)
	s.Assert().Len(s.catalog.Conditions(), 15)
	s.Assert().Len(s.catalog.Skills(), catalog.SkillCount)
	s.Assert().NotEmpty(s.catalog.Spells(catalog.SpellFilter{}))
}

func (s *CatalogTestSuite) TestRaceAndSubraceLookup() {
	dwarf, ok := s.catalog.Race("dwarf")
	s.Require().True(ok)
	s.Assert().Equal("Enano", dwarf.NameEs)
	s.Assert().Equal(int32(2), dwarf.AbilityBonuses[entities.AbilityConstitution])
	s.Assert().Equal(int32(0), dwarf.AbilityBonuses[entities.AbilityStrength])

	hill, ok := s.catalog.Subrace("dwarf", "hill-dwarf")
	s.Require().True(ok)
	s.Assert().Equal(int32(1), hill.AbilityBonuses[entities.AbilityWisdom])

	_, ok = s.catalog.Subrace("elf", "hill-dwarf")
	s.Assert().False(ok, "subrace of another race must not resolve")

	_, ok = s.catalog.Race("warforged")
	s.Assert().False(ok)
}

func (s *CatalogTestSuite) TestClassAndSubclassLookup() {
	wizard, ok := s.catalog.Class("wizard")
	s.Require().True(ok)
	s.Assert().Equal(int32(6), wizard.HitDie)
	s.Assert().Equal(catalog.DefaultSkillChoices, wizard.SkillChoices)
	s.Assert().True(wizard.HasSavingThrow(entities.AbilityIntelligence))
	s.Assert().False(wizard.HasSavingThrow(entities.AbilityStrength))
	s.Assert().True(wizard.HasSkillOption("arcana"))

	_, ok = s.catalog.Subclass("wizard", "school-of-evocation")
	s.Assert().True(ok)
	_, ok = s.catalog.Subclass("fighter", "school-of-evocation")
	s.Assert().False(ok, "subclass of another class must not resolve")
}

func (s *CatalogTestSuite) TestCasterTypes() {
	for _, id := range []string{"bard", "cleric", "druid", "sorcerer", "wizard"} {
		s.Assert().Equal(catalog.CasterFull, s.catalog.CasterType(id), id)
	}
	for _, id := range []string{"artificer", "paladin", "ranger"} {
		s.Assert().Equal(catalog.CasterHalf, s.catalog.CasterType(id), id)
	}
	for _, id := range []string{"fighter", "rogue", "warlock", "unknown"} {
		s.Assert().Equal(catalog.CasterNone, s.catalog.CasterType(id), id)
	}
}

func (s *CatalogTestSuite) TestBackgroundSkillsResolveToCatalogSkills() {
	for _, bg := range s.catalog.Backgrounds() {
		for _, name := range bg.SkillProficiencies {
			key := catalog.SkillKeyForBackgroundName(name)
			_, ok := s.catalog.Skill(key)
			s.Assert().Truef(ok, "background %s skill %q resolved to unknown key %q", bg.ID, name, key)
		}
	}
}

func (s *CatalogTestSuite) TestSkillKeyForBackgroundName() {
	testCases := []struct {
		name     string
		expected string
	}{
		{"Persuasion", "persuasion"},
		{"Persuation", "persuasion"},
		{"Sleight of Hand", "sleight-of-hand"},
		{"Animal Handling", "animal-handling"},
		{"Thieves'  Cant", "thieves-cant"},
		{"Lore (Ancient)", "lore-ancient"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, catalog.SkillKeyForBackgroundName(tc.name))
		})
	}
}

func (s *CatalogTestSuite) TestSkillsAreInSheetOrder() {
	list := s.catalog.Skills()
	s.Require().Len(list, catalog.SkillCount)
	s.Assert().Equal("acrobatics", list[0].Key)
	s.Assert().Equal("survival", list[catalog.SkillCount-1].Key)

	perception, ok := s.catalog.Skill("perception")
	s.Require().True(ok)
	s.Assert().Equal(entities.AbilityWisdom, perception.Ability)
	s.Assert().Equal("Percepción", perception.NameEs)

	list[0].Key = "mutated"
	again := s.catalog.Skills()
	s.Assert().Equal("acrobatics", again[0].Key, "callers must not be able to mutate the catalog")
}

func (s *CatalogTestSuite) TestSpellFilter() {
	level := int32(1)
	clericLevelOne := s.catalog.Spells(catalog.SpellFilter{ClassID: "cleric", Level: &level})
	s.Require().NotEmpty(clericLevelOne)
	for _, spell := range clericLevelOne {
		s.Assert().Equal(int32(1), spell.Level)
		s.Assert().Contains(spell.Classes, "cleric")
	}

	fireball, ok := s.catalog.Spell("fireball")
	s.Require().True(ok)
	s.Assert().Equal(int32(3), fireball.Level)
}

func (s *CatalogTestSuite) TestAlignmentAndCondition() {
	al, ok := s.catalog.Alignment("chaotic-good")
	s.Require().True(ok)
	s.Assert().Equal("CB", al.Abbreviation)

	poisoned, ok := s.catalog.Condition("poisoned")
	s.Require().True(ok)
	s.Assert().Equal("Envenenado", poisoned.NameEs)
}

func (s *CatalogTestSuite) TestNewRejectsInvalidData() {
	_, err := catalog.New(catalog.Data{
		Races: []catalog.Race{
			{ID: "elf", Speed: 30},
			{ID: "elf", Speed: 30},
		},
		Classes: []catalog.Class{
			{ID: "fighter", HitDie: 7, SavingThrows: []entities.Ability{"luck"}, SkillOptions: []string{"flying"}},
		},
	})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	fields := errors.FieldErrors(err)
	s.Assert().Contains(fields, "races")
	s.Assert().Len(fields["classes[fighter]"], 3)
}

func (s *CatalogTestSuite) TestLoadMergesFiles() {
	fsys := fstest.MapFS{
		"a.yaml": {Data: []byte(`
races:
  - id: human
    name_es: Humano
    name_en: Human
    speed: 30
    ability_bonuses: {strength: 1}
`)},
		"b.yaml": {Data: []byte(`
classes:
  - id: fighter
    name_es: Guerrero
    name_en: Fighter
    hit_die: 10
    saving_throws: [strength, constitution]
    skill_options: [athletics]
    skill_choices: 1
`)},
		"ignored.txt": {Data: []byte("not yaml")},
	}

	c, err := catalog.Load(fsys)
	s.Require().NoError(err)

	human, ok := c.Race("human")
	s.Require().True(ok)
	s.Assert().Equal(int32(1), human.AbilityBonuses[entities.AbilityStrength])

	fighter, ok := c.Class("fighter")
	s.Require().True(ok)
	s.Assert().Equal(int32(1), fighter.SkillChoices)
}

func (s *CatalogTestSuite) TestLoadErrors() {
	_, err := catalog.Load(fstest.MapFS{})
	s.Assert().True(errors.GetCode(err) == errors.CodeFailedPrecondition)

	_, err = catalog.Load(fstest.MapFS{"bad.yaml": {Data: []byte("races: [")}})
	s.Assert().Error(err)
}

func (s *CatalogTestSuite) TestAbilityNames() {
	for _, a := range entities.Abilities {
		info, ok := s.catalog.Ability(a)
		s.Require().True(ok, a)
		s.Assert().NotEmpty(info.NameEs)
		s.Assert().NotEmpty(info.NameEn)
	}
	con, _ := s.catalog.Ability(entities.AbilityConstitution)
	s.Assert().Equal("Constitución", con.NameEs)

	_, ok := s.catalog.Ability("luck")
	s.Assert().False(ok)
}
