package dnd5e

import (
	"fmt"
	"sort"
	"strings"

	"github.com/KirkDiggler/arcanum-api/internal/catalog"
	"github.com/KirkDiggler/arcanum-api/internal/engine"
	"github.com/KirkDiggler/arcanum-api/internal/entities"
	"github.com/KirkDiggler/arcanum-api/internal/errors"
)

// Starting score bounds applied before racial bonuses.
const (
	MinStartingScore     int32 = 8
	MaxStartingScore     int32 = 20
	DefaultStartingScore int32 = 10
)

// ValidateCreation implements engine.Engine
func (e *Engine) ValidateCreation(input *engine.ValidateCreationInput) (*engine.ValidateCreationOutput, error) {
	if input == nil || input.Request == nil {
		return nil, errors.InvalidArgument("creation request is required")
	}

	req := normalizeRequest(input.Request)
	v := &creationValidation{}

	if req.NameEs == "" {
		v.fail("nameEs", "name is required", engine.CodeRequired)
	}
	if req.RaceID == "" {
		v.fail("raceId", "race is required", engine.CodeRequired)
	}
	if req.ClassID == "" {
		v.fail("classId", "class is required", engine.CodeRequired)
	}

	var (
		race       catalog.Race
		subrace    *catalog.Subrace
		class      catalog.Class
		background *catalog.Background
		raceOK     bool
		classOK    bool
	)

	if req.RaceID != "" {
		race, raceOK = e.catalog.Race(req.RaceID)
		if !raceOK {
			v.fail("raceId", fmt.Sprintf("unknown race %q", req.RaceID), engine.CodeUnknownRace)
		}
	}
	if req.ClassID != "" {
		class, classOK = e.catalog.Class(req.ClassID)
		if !classOK {
			v.fail("classId", fmt.Sprintf("unknown class %q", req.ClassID), engine.CodeUnknownClass)
		}
	}

	if req.SubraceID != "" && raceOK {
		sr, ok := e.catalog.Subrace(race.ID, req.SubraceID)
		if ok {
			subrace = &sr
		} else {
			v.fail("subraceId",
				fmt.Sprintf("subrace %q does not belong to race %q", req.SubraceID, race.ID),
				engine.CodeSubraceMismatch)
		}
	}

	if req.SubclassID != "" && classOK {
		sc, ok := e.catalog.Subclass(class.ID, req.SubclassID)
		switch {
		case !ok:
			v.fail("subclassId",
				fmt.Sprintf("subclass %q does not belong to class %q", req.SubclassID, class.ID),
				engine.CodeSubclassMismatch)
		case sc.MinLevel > entities.MinLevel:
			v.warn("subclassId",
				fmt.Sprintf("subclass %q is normally chosen at level %d", sc.ID, sc.MinLevel),
				engine.CodeSubclassLevelGate)
		}
	}

	if req.BackgroundID != "" {
		bg, ok := e.catalog.Background(req.BackgroundID)
		if ok {
			background = &bg
		} else {
			v.fail("backgroundId", fmt.Sprintf("unknown background %q", req.BackgroundID), engine.CodeUnknownBackground)
		}
	}
	if req.AlignmentID != "" {
		if _, ok := e.catalog.Alignment(req.AlignmentID); !ok {
			v.fail("alignmentId", fmt.Sprintf("unknown alignment %q", req.AlignmentID), engine.CodeUnknownAlignment)
		}
	}

	var classSkills int32
	for _, key := range req.SkillProficiencies {
		if _, ok := e.catalog.Skill(key); !ok {
			v.fail("skillProficiencies", fmt.Sprintf("unknown skill %q", key), engine.CodeUnknownSkill)
			continue
		}
		if classOK && class.HasSkillOption(key) {
			classSkills++
		}
	}
	if classOK && classSkills > class.SkillChoices {
		v.fail("skillProficiencies",
			fmt.Sprintf("class %q allows %d skill choices, got %d", class.ID, class.SkillChoices, classSkills),
			engine.CodeTooManyClassSkills)
	}

	output := &engine.ValidateCreationOutput{
		IsValid:  len(v.errors) == 0,
		Errors:   v.errors,
		Warnings: v.warnings,
	}
	if !output.IsValid {
		return output, nil
	}

	scores := startingScores(req.AbilityScores)
	for ability, bonus := range race.AbilityBonuses {
		scores.Add(ability, bonus)
	}
	if subrace != nil {
		for ability, bonus := range subrace.AbilityBonuses {
			scores.Add(ability, bonus)
		}
	}

	hp := class.HitDie + AbilityModifier(scores.Constitution)
	if hp < 1 {
		hp = 1
	}

	output.Result = &engine.CreationResult{
		Character: entities.Character{
			NameEs:       req.NameEs,
			NameEn:       req.NameEn,
			RaceID:       race.ID,
			SubraceID:    req.SubraceID,
			ClassID:      class.ID,
			SubclassID:   req.SubclassID,
			BackgroundID: req.BackgroundID,
			AlignmentID:  req.AlignmentID,
			Level:        entities.MinLevel,
			Personality:  req.Personality,
		},
		AbilityScores: scores,
		GameState: entities.GameState{
			CurrentHealth: hp,
			MaximumHealth: hp,
		},
		SkillKeys: skillSet(req.SkillProficiencies, background),
	}

	return output, nil
}

type creationValidation struct {
	errors   []engine.ValidationError
	warnings []engine.ValidationWarning
}

func (v *creationValidation) fail(field, message, code string) {
	v.errors = append(v.errors, engine.ValidationError{Field: field, Message: message, Code: code})
}

func (v *creationValidation) warn(field, message, code string) {
	v.warnings = append(v.warnings, engine.ValidationWarning{Field: field, Message: message, Code: code})
}

func normalizeRequest(in *engine.CreationRequest) engine.CreationRequest {
	out := *in
	out.NameEs = strings.TrimSpace(in.NameEs)
	out.NameEn = strings.TrimSpace(in.NameEn)
	out.RaceID = strings.TrimSpace(in.RaceID)
	out.SubraceID = strings.TrimSpace(in.SubraceID)
	out.ClassID = strings.TrimSpace(in.ClassID)
	out.SubclassID = strings.TrimSpace(in.SubclassID)
	out.BackgroundID = strings.TrimSpace(in.BackgroundID)
	out.AlignmentID = strings.TrimSpace(in.AlignmentID)

	seen := make(map[string]bool, len(in.SkillProficiencies))
	out.SkillProficiencies = make([]string, 0, len(in.SkillProficiencies))
	for _, key := range in.SkillProficiencies {
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out.SkillProficiencies = append(out.SkillProficiencies, key)
	}
	return out
}

// startingScores clamps requested scores to [8,20], defaulting missing ones to 10.
func startingScores(requested engine.StartingAbilityScores) entities.AbilityScores {
	var scores entities.AbilityScores
	for _, a := range entities.Abilities {
		score := DefaultStartingScore
		if v := requested.Get(a); v != nil {
			score = *v
		}
		switch {
		case score < MinStartingScore:
			score = MinStartingScore
		case score > MaxStartingScore:
			score = MaxStartingScore
		}
		scores.Add(a, score)
	}
	return scores
}

// skillSet is the chosen skills plus background skills, sorted.
func skillSet(chosen []string, background *catalog.Background) []string {
	set := make(map[string]bool, len(chosen)+2)
	for _, key := range chosen {
		set[key] = true
	}
	if background != nil {
		for _, name := range background.SkillProficiencies {
			if key := catalog.SkillKeyForBackgroundName(name); key != "" {
				set[key] = true
			}
		}
	}

	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
