package v1alpha1

import (
	"context"

	arcanumv1alpha1 "github.com/KirkDiggler/arcanum-api/internal/api/arcanum/v1alpha1"
	"github.com/KirkDiggler/arcanum-api/internal/catalog"
	"github.com/KirkDiggler/arcanum-api/internal/engine"
	"github.com/KirkDiggler/arcanum-api/internal/engine/dnd5e"
	"github.com/KirkDiggler/arcanum-api/internal/entities"
	"github.com/KirkDiggler/arcanum-api/internal/errors"
	"github.com/KirkDiggler/arcanum-api/internal/pkg/locale"
)

// CatalogHandlerConfig holds dependencies for the catalog handler
type CatalogHandlerConfig struct {
	Catalog *catalog.Catalog
	Engine  engine.Engine
}

// Validate ensures all required dependencies are present
func (c *CatalogHandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	vb := errors.NewValidationBuilder()
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	return vb.Build()
}

// CatalogHandler serves the read-only ruleset catalog
type CatalogHandler struct {
	catalog *catalog.Catalog
	engine  engine.Engine
}

var _ arcanumv1alpha1.CatalogServiceServer = (*CatalogHandler)(nil)

// NewCatalogHandler creates a new catalog handler with the given configuration
func NewCatalogHandler(cfg *CatalogHandlerConfig) (*CatalogHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &CatalogHandler{
		catalog: cfg.Catalog,
		engine:  cfg.Engine,
	}, nil
}

// AuthFuncOverride makes the catalog public.
func (h *CatalogHandler) AuthFuncOverride(ctx context.Context, _ string) (context.Context, error) {
	return ctx, nil
}

// ListRaces lists every race with its subraces
func (h *CatalogHandler) ListRaces(
	ctx context.Context,
	_ *arcanumv1alpha1.ListRacesRequest,
) (*arcanumv1alpha1.ListRacesResponse, error) {
	return &arcanumv1alpha1.ListRacesResponse{
		Races: h.races(locale.FromIncomingContext(ctx)),
	}, nil
}

func (h *CatalogHandler) GetRace(
	ctx context.Context,
	req *arcanumv1alpha1.GetRaceRequest,
) (*arcanumv1alpha1.GetRaceResponse, error) {
	if req.RaceID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("raceId is required"))
	}

	race, ok := h.catalog.Race(req.RaceID)
	if !ok {
		return nil, errors.ToGRPCError(errors.NotFoundf("race %s not found", req.RaceID))
	}

	return &arcanumv1alpha1.GetRaceResponse{
		Race: convertRaceToWire(race, locale.FromIncomingContext(ctx)),
	}, nil
}

func (h *CatalogHandler) GetSubrace(
	ctx context.Context,
	req *arcanumv1alpha1.GetSubraceRequest,
) (*arcanumv1alpha1.GetSubraceResponse, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("raceId", req.RaceID, vb)
	errors.ValidateRequired("subraceId", req.SubraceID, vb)
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	subrace, ok := h.catalog.Subrace(req.RaceID, req.SubraceID)
	if !ok {
		return nil, errors.ToGRPCError(errors.NotFoundf("subrace %s of race %s not found", req.SubraceID, req.RaceID))
	}

	return &arcanumv1alpha1.GetSubraceResponse{
		Subrace: convertSubraceToWire(req.RaceID, subrace, locale.FromIncomingContext(ctx)),
	}, nil
}

// ListClasses lists every class with its subclasses
func (h *CatalogHandler) ListClasses(
	ctx context.Context,
	_ *arcanumv1alpha1.ListClassesRequest,
) (*arcanumv1alpha1.ListClassesResponse, error) {
	return &arcanumv1alpha1.ListClassesResponse{
		Classes: h.classes(locale.FromIncomingContext(ctx)),
	}, nil
}

func (h *CatalogHandler) GetClass(
	ctx context.Context,
	req *arcanumv1alpha1.GetClassRequest,
) (*arcanumv1alpha1.GetClassResponse, error) {
	if req.ClassID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("classId is required"))
	}

	class, ok := h.catalog.Class(req.ClassID)
	if !ok {
		return nil, errors.ToGRPCError(errors.NotFoundf("class %s not found", req.ClassID))
	}

	return &arcanumv1alpha1.GetClassResponse{
		Class: h.convertClassToWire(class, locale.FromIncomingContext(ctx)),
	}, nil
}

func (h *CatalogHandler) GetSubclass(
	ctx context.Context,
	req *arcanumv1alpha1.GetSubclassRequest,
) (*arcanumv1alpha1.GetSubclassResponse, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("classId", req.ClassID, vb)
	errors.ValidateRequired("subclassId", req.SubclassID, vb)
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	subclass, ok := h.catalog.Subclass(req.ClassID, req.SubclassID)
	if !ok {
		return nil, errors.ToGRPCError(errors.NotFoundf("subclass %s of class %s not found", req.SubclassID, req.ClassID))
	}

	return &arcanumv1alpha1.GetSubclassResponse{
		Subclass: convertSubclassToWire(req.ClassID, subclass, locale.FromIncomingContext(ctx)),
	}, nil
}

func (h *CatalogHandler) ListBackgrounds(
	ctx context.Context,
	_ *arcanumv1alpha1.ListBackgroundsRequest,
) (*arcanumv1alpha1.ListBackgroundsResponse, error) {
	return &arcanumv1alpha1.ListBackgroundsResponse{
		Backgrounds: h.backgrounds(locale.FromIncomingContext(ctx)),
	}, nil
}

func (h *CatalogHandler) GetBackground(
	ctx context.Context,
	req *arcanumv1alpha1.GetBackgroundRequest,
) (*arcanumv1alpha1.GetBackgroundResponse, error) {
	if req.BackgroundID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("backgroundId is required"))
	}

	background, ok := h.catalog.Background(req.BackgroundID)
	if !ok {
		return nil, errors.ToGRPCError(errors.NotFoundf("background %s not found", req.BackgroundID))
	}

	return &arcanumv1alpha1.GetBackgroundResponse{
		Background: convertBackgroundToWire(background, locale.FromIncomingContext(ctx)),
	}, nil
}

func (h *CatalogHandler) ListAlignments(
	ctx context.Context,
	_ *arcanumv1alpha1.ListAlignmentsRequest,
) (*arcanumv1alpha1.ListAlignmentsResponse, error) {
	return &arcanumv1alpha1.ListAlignmentsResponse{
		Alignments: h.alignments(locale.FromIncomingContext(ctx)),
	}, nil
}

func (h *CatalogHandler) ListSkills(
	ctx context.Context,
	_ *arcanumv1alpha1.ListSkillsRequest,
) (*arcanumv1alpha1.ListSkillsResponse, error) {
	return &arcanumv1alpha1.ListSkillsResponse{
		Skills: h.skills(locale.FromIncomingContext(ctx)),
	}, nil
}

func (h *CatalogHandler) ListConditions(
	ctx context.Context,
	_ *arcanumv1alpha1.ListConditionsRequest,
) (*arcanumv1alpha1.ListConditionsResponse, error) {
	lang := locale.FromIncomingContext(ctx)
	conditions := h.catalog.Conditions()

	out := make([]*arcanumv1alpha1.Condition, 0, len(conditions))
	for _, c := range conditions {
		out = append(out, convertConditionToWire(c, lang))
	}

	return &arcanumv1alpha1.ListConditionsResponse{Conditions: out}, nil
}

func (h *CatalogHandler) GetCondition(
	ctx context.Context,
	req *arcanumv1alpha1.GetConditionRequest,
) (*arcanumv1alpha1.GetConditionResponse, error) {
	if req.ConditionID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("conditionId is required"))
	}

	condition, ok := h.catalog.Condition(req.ConditionID)
	if !ok {
		return nil, errors.ToGRPCError(errors.NotFoundf("condition %s not found", req.ConditionID))
	}

	return &arcanumv1alpha1.GetConditionResponse{
		Condition: convertConditionToWire(condition, locale.FromIncomingContext(ctx)),
	}, nil
}

// ListSpells lists spells, optionally narrowed to a class and a spell level
func (h *CatalogHandler) ListSpells(
	ctx context.Context,
	req *arcanumv1alpha1.ListSpellsRequest,
) (*arcanumv1alpha1.ListSpellsResponse, error) {
	if req.Level != nil {
		vb := errors.NewValidationBuilder()
		errors.ValidateRange("level", int(*req.Level), 0, entities.MaxSpellLevel, vb)
		if err := vb.Build(); err != nil {
			return nil, errors.ToGRPCError(err)
		}
	}
	if req.ClassID != "" {
		if _, ok := h.catalog.Class(req.ClassID); !ok {
			return nil, errors.ToGRPCError(errors.NotFoundf("class %s not found", req.ClassID))
		}
	}

	lang := locale.FromIncomingContext(ctx)
	spells := h.catalog.Spells(catalog.SpellFilter{
		ClassID: req.ClassID,
		Level:   req.Level,
	})

	out := make([]*arcanumv1alpha1.Spell, 0, len(spells))
	for _, sp := range spells {
		out = append(out, convertSpellToWire(sp, lang))
	}

	return &arcanumv1alpha1.ListSpellsResponse{Spells: out}, nil
}

func (h *CatalogHandler) GetSpell(
	ctx context.Context,
	req *arcanumv1alpha1.GetSpellRequest,
) (*arcanumv1alpha1.GetSpellResponse, error) {
	if req.SpellID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("spellId is required"))
	}

	spell, ok := h.catalog.Spell(req.SpellID)
	if !ok {
		return nil, errors.ToGRPCError(errors.NotFoundf("spell %s not found", req.SpellID))
	}

	return &arcanumv1alpha1.GetSpellResponse{
		Spell: convertSpellToWire(spell, locale.FromIncomingContext(ctx)),
	}, nil
}

// GetCharacterCreationOptions returns everything a creation form needs in
// one call
func (h *CatalogHandler) GetCharacterCreationOptions(
	ctx context.Context,
	_ *arcanumv1alpha1.GetCharacterCreationOptionsRequest,
) (*arcanumv1alpha1.GetCharacterCreationOptionsResponse, error) {
	lang := locale.FromIncomingContext(ctx)

	abilities := make([]*arcanumv1alpha1.AbilityInfo, 0, len(entities.Abilities))
	for _, a := range entities.Abilities {
		info, ok := h.catalog.Ability(a)
		if !ok {
			continue
		}
		abilities = append(abilities, &arcanumv1alpha1.AbilityInfo{
			Ability:     string(info.Ability),
			NameEs:      info.NameEs,
			NameEn:      info.NameEn,
			DisplayName: lang.Pick(info.NameEs, info.NameEn),
		})
	}

	return &arcanumv1alpha1.GetCharacterCreationOptionsResponse{
		Races:            h.races(lang),
		Classes:          h.classes(lang),
		Backgrounds:      h.backgrounds(lang),
		Alignments:       h.alignments(lang),
		Skills:           h.skills(lang),
		Abilities:        abilities,
		MinStartingScore: dnd5e.MinStartingScore,
		MaxStartingScore: dnd5e.MaxStartingScore,
	}, nil
}

// GetSpellSlots returns the total spell slots of a class at a level
func (h *CatalogHandler) GetSpellSlots(
	_ context.Context,
	req *arcanumv1alpha1.GetSpellSlotsRequest,
) (*arcanumv1alpha1.GetSpellSlotsResponse, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("classId", req.ClassID, vb)
	errors.ValidateRange("level", int(req.Level), int(entities.MinLevel), int(entities.MaxLevel), vb)
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	if _, ok := h.catalog.Class(req.ClassID); !ok {
		return nil, errors.ToGRPCError(errors.NotFoundf("class %s not found", req.ClassID))
	}

	slots := h.engine.SpellSlotsTotal(req.ClassID, req.Level)

	return &arcanumv1alpha1.GetSpellSlotsResponse{
		ClassID:    req.ClassID,
		Level:      req.Level,
		CasterType: string(h.catalog.CasterType(req.ClassID)),
		SpellSlots: convertSpellSlotsToWire(slots),
	}, nil
}

func (h *CatalogHandler) races(lang locale.Lang) []*arcanumv1alpha1.Race {
	races := h.catalog.Races()
	out := make([]*arcanumv1alpha1.Race, 0, len(races))
	for _, r := range races {
		out = append(out, convertRaceToWire(r, lang))
	}
	return out
}

func (h *CatalogHandler) classes(lang locale.Lang) []*arcanumv1alpha1.Class {
	classes := h.catalog.Classes()
	out := make([]*arcanumv1alpha1.Class, 0, len(classes))
	for _, c := range classes {
		out = append(out, h.convertClassToWire(c, lang))
	}
	return out
}

func (h *CatalogHandler) backgrounds(lang locale.Lang) []*arcanumv1alpha1.Background {
	backgrounds := h.catalog.Backgrounds()
	out := make([]*arcanumv1alpha1.Background, 0, len(backgrounds))
	for _, b := range backgrounds {
		out = append(out, convertBackgroundToWire(b, lang))
	}
	return out
}

func (h *CatalogHandler) alignments(lang locale.Lang) []*arcanumv1alpha1.Alignment {
	alignments := h.catalog.Alignments()
	out := make([]*arcanumv1alpha1.Alignment, 0, len(alignments))
	for _, a := range alignments {
		out = append(out, &arcanumv1alpha1.Alignment{
			ID:           a.ID,
			NameEs:       a.NameEs,
			NameEn:       a.NameEn,
			DisplayName:  lang.Pick(a.NameEs, a.NameEn),
			Abbreviation: a.Abbreviation,
		})
	}
	return out
}

func (h *CatalogHandler) skills(lang locale.Lang) []*arcanumv1alpha1.Skill {
	skills := h.catalog.Skills()
	out := make([]*arcanumv1alpha1.Skill, 0, len(skills))
	for _, sk := range skills {
		out = append(out, &arcanumv1alpha1.Skill{
			Key:         sk.Key,
			Ability:     string(sk.Ability),
			NameEs:      sk.NameEs,
			NameEn:      sk.NameEn,
			DisplayName: lang.Pick(sk.NameEs, sk.NameEn),
		})
	}
	return out
}

func (h *CatalogHandler) convertClassToWire(c catalog.Class, lang locale.Lang) *arcanumv1alpha1.Class {
	savingThrows := make([]string, 0, len(c.SavingThrows))
	for _, a := range c.SavingThrows {
		savingThrows = append(savingThrows, string(a))
	}

	subclasses := make([]*arcanumv1alpha1.Subclass, 0, len(c.Subclasses))
	for _, sc := range c.Subclasses {
		subclasses = append(subclasses, convertSubclassToWire(c.ID, sc, lang))
	}

	return &arcanumv1alpha1.Class{
		ID:           c.ID,
		NameEs:       c.NameEs,
		NameEn:       c.NameEn,
		DisplayName:  lang.Pick(c.NameEs, c.NameEn),
		Description:  lang.Pick(c.DescriptionEs, c.DescriptionEn),
		HitDie:       hitDie(c.HitDie),
		SavingThrows: savingThrows,
		SkillOptions: c.SkillOptions,
		SkillChoices: c.SkillChoices,
		CasterType:   string(h.catalog.CasterType(c.ID)),
		Subclasses:   subclasses,
	}
}
