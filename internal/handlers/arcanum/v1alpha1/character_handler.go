package v1alpha1

import (
	"context"

	arcanumv1alpha1 "github.com/KirkDiggler/arcanum-api/internal/api/arcanum/v1alpha1"
	"github.com/KirkDiggler/arcanum-api/internal/auth"
	"github.com/KirkDiggler/arcanum-api/internal/engine"
	"github.com/KirkDiggler/arcanum-api/internal/entities"
	"github.com/KirkDiggler/arcanum-api/internal/errors"
	"github.com/KirkDiggler/arcanum-api/internal/pkg/locale"
	"github.com/KirkDiggler/arcanum-api/internal/services/character"
)

// CharacterHandlerConfig holds dependencies for the character handler
type CharacterHandlerConfig struct {
	CharacterService character.Service
}

// Validate ensures all required dependencies are present
func (c *CharacterHandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.CharacterService == nil {
		return errors.InvalidArgument("character service is required")
	}
	return nil
}

// CharacterHandler implements the character gRPC service. Every call acts
// as the user the auth interceptor put on the context.
type CharacterHandler struct {
	characterService character.Service
}

var _ arcanumv1alpha1.CharacterServiceServer = (*CharacterHandler)(nil)

// NewCharacterHandler creates a new character handler with the given configuration
func NewCharacterHandler(cfg *CharacterHandlerConfig) (*CharacterHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &CharacterHandler{
		characterService: cfg.CharacterService,
	}, nil
}

func callerID(ctx context.Context) string {
	userID, _ := auth.UserIDFromContext(ctx)
	return userID
}

// CreateCharacter validates and stores a new character
func (h *CharacterHandler) CreateCharacter(
	ctx context.Context,
	req *arcanumv1alpha1.CreateCharacterRequest,
) (*arcanumv1alpha1.CreateCharacterResponse, error) {
	output, err := h.characterService.CreateCharacter(ctx, &character.CreateCharacterInput{
		UserID:  callerID(ctx),
		Request: convertCreationRequestFromWire(req),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	warnings := make([]*arcanumv1alpha1.ValidationWarning, 0, len(output.Warnings))
	for _, w := range output.Warnings {
		warnings = append(warnings, &arcanumv1alpha1.ValidationWarning{
			Field:   w.Field,
			Message: w.Message,
			Code:    w.Code,
		})
	}

	return &arcanumv1alpha1.CreateCharacterResponse{
		Character: convertSheetToWire(output.Sheet, locale.FromIncomingContext(ctx)),
		Warnings:  warnings,
	}, nil
}

// GetCharacterSheet returns the assembled sheet of an owned character
func (h *CharacterHandler) GetCharacterSheet(
	ctx context.Context,
	req *arcanumv1alpha1.GetCharacterSheetRequest,
) (*arcanumv1alpha1.GetCharacterSheetResponse, error) {
	output, err := h.characterService.GetCharacterSheet(ctx, &character.GetCharacterSheetInput{
		UserID:      callerID(ctx),
		CharacterID: req.CharacterID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &arcanumv1alpha1.GetCharacterSheetResponse{
		Character: convertSheetToWire(output.Sheet, locale.FromIncomingContext(ctx)),
	}, nil
}

func (h *CharacterHandler) ListCharacters(
	ctx context.Context,
	req *arcanumv1alpha1.ListCharactersRequest,
) (*arcanumv1alpha1.ListCharactersResponse, error) {
	output, err := h.characterService.ListCharacters(ctx, &character.ListCharactersInput{
		UserID:  callerID(ctx),
		OwnerID: req.OwnerID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	lang := locale.FromIncomingContext(ctx)
	summaries := make([]*arcanumv1alpha1.CharacterSummary, 0, len(output.Characters))
	for _, c := range output.Characters {
		summaries = append(summaries, &arcanumv1alpha1.CharacterSummary{
			ID:          c.ID,
			NameEs:      c.NameEs,
			NameEn:      c.NameEn,
			DisplayName: lang.Pick(c.NameEs, c.NameEn),
			Race:        convertRefToWire(&c.Race, lang),
			Class:       convertRefToWire(&c.Class, lang),
			Level:       c.Level,
			Experience:  c.Experience,
			CreatedAt:   c.CreatedAt,
			UpdatedAt:   c.UpdatedAt,
		})
	}

	return &arcanumv1alpha1.ListCharactersResponse{Characters: summaries}, nil
}

// UpdateGameState applies a partial update to the mutable play state
func (h *CharacterHandler) UpdateGameState(
	ctx context.Context,
	req *arcanumv1alpha1.UpdateGameStateRequest,
) (*arcanumv1alpha1.UpdateGameStateResponse, error) {
	output, err := h.characterService.UpdateGameState(ctx, &character.UpdateGameStateInput{
		UserID:      callerID(ctx),
		CharacterID: req.CharacterID,
		Patch:       convertGameStatePatchFromWire(req.Patch),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &arcanumv1alpha1.UpdateGameStateResponse{
		GameState: convertGameStateToWire(output.GameState),
	}, nil
}

func (h *CharacterHandler) ReplaceConditions(
	ctx context.Context,
	req *arcanumv1alpha1.ReplaceConditionsRequest,
) (*arcanumv1alpha1.ReplaceConditionsResponse, error) {
	output, err := h.characterService.ReplaceConditions(ctx, &character.ReplaceConditionsInput{
		UserID:       callerID(ctx),
		CharacterID:  req.CharacterID,
		ConditionIDs: req.ConditionIDs,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	ids := output.ConditionIDs
	if ids == nil {
		ids = []string{}
	}
	return &arcanumv1alpha1.ReplaceConditionsResponse{ConditionIDs: ids}, nil
}

func (h *CharacterHandler) AddInventoryItem(
	ctx context.Context,
	req *arcanumv1alpha1.AddInventoryItemRequest,
) (*arcanumv1alpha1.AddInventoryItemResponse, error) {
	output, err := h.characterService.AddInventoryItem(ctx, &character.AddInventoryItemInput{
		UserID:      callerID(ctx),
		CharacterID: req.CharacterID,
		Name:        req.Name,
		Quantity:    req.Quantity,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &arcanumv1alpha1.AddInventoryItemResponse{
		Item: convertItemToWire(output.Item),
	}, nil
}

func (h *CharacterHandler) UpdateInventoryItem(
	ctx context.Context,
	req *arcanumv1alpha1.UpdateInventoryItemRequest,
) (*arcanumv1alpha1.UpdateInventoryItemResponse, error) {
	output, err := h.characterService.UpdateInventoryItem(ctx, &character.UpdateInventoryItemInput{
		UserID:      callerID(ctx),
		CharacterID: req.CharacterID,
		ItemID:      req.ItemID,
		Patch: &entities.InventoryItemPatch{
			Name:     req.Name,
			Quantity: req.Quantity,
		},
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &arcanumv1alpha1.UpdateInventoryItemResponse{
		Item: convertItemToWire(output.Item),
	}, nil
}

func (h *CharacterHandler) DeleteInventoryItem(
	ctx context.Context,
	req *arcanumv1alpha1.DeleteInventoryItemRequest,
) (*arcanumv1alpha1.DeleteInventoryItemResponse, error) {
	_, err := h.characterService.DeleteInventoryItem(ctx, &character.DeleteInventoryItemInput{
		UserID:      callerID(ctx),
		CharacterID: req.CharacterID,
		ItemID:      req.ItemID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &arcanumv1alpha1.DeleteInventoryItemResponse{}, nil
}

// AdvanceCharacter sets experience and level, returning the new sheet
func (h *CharacterHandler) AdvanceCharacter(
	ctx context.Context,
	req *arcanumv1alpha1.AdvanceCharacterRequest,
) (*arcanumv1alpha1.AdvanceCharacterResponse, error) {
	output, err := h.characterService.AdvanceCharacter(ctx, &character.AdvanceCharacterInput{
		UserID:      callerID(ctx),
		CharacterID: req.CharacterID,
		Experience:  req.Experience,
		Level:       req.Level,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &arcanumv1alpha1.AdvanceCharacterResponse{
		Character: convertSheetToWire(output.Sheet, locale.FromIncomingContext(ctx)),
	}, nil
}

func (h *CharacterHandler) DeleteCharacter(
	ctx context.Context,
	req *arcanumv1alpha1.DeleteCharacterRequest,
) (*arcanumv1alpha1.DeleteCharacterResponse, error) {
	_, err := h.characterService.DeleteCharacter(ctx, &character.DeleteCharacterInput{
		UserID:      callerID(ctx),
		CharacterID: req.CharacterID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &arcanumv1alpha1.DeleteCharacterResponse{}, nil
}

func convertCreationRequestFromWire(req *arcanumv1alpha1.CreateCharacterRequest) *engine.CreationRequest {
	if req == nil {
		return nil
	}

	out := &engine.CreationRequest{
		NameEs:             req.NameEs,
		NameEn:             req.NameEn,
		RaceID:             req.RaceID,
		SubraceID:          req.SubraceID,
		ClassID:            req.ClassID,
		SubclassID:         req.SubclassID,
		BackgroundID:       req.BackgroundID,
		AlignmentID:        req.AlignmentID,
		SkillProficiencies: req.SkillProficiencies,
		AbilityScores: engine.StartingAbilityScores{
			Strength:     req.AbilityScores.Strength.Value,
			Dexterity:    req.AbilityScores.Dexterity.Value,
			Constitution: req.AbilityScores.Constitution.Value,
			Intelligence: req.AbilityScores.Intelligence.Value,
			Wisdom:       req.AbilityScores.Wisdom.Value,
			Charisma:     req.AbilityScores.Charisma.Value,
		},
	}
	if req.Personality != nil {
		out.Personality = entities.Personality{
			Ideals: req.Personality.Ideals,
			Bonds:  req.Personality.Bonds,
			Flaws:  req.Personality.Flaws,
		}
	}
	return out
}

func convertGameStatePatchFromWire(p *arcanumv1alpha1.GameStatePatch) *entities.GameStatePatch {
	if p == nil {
		return nil
	}

	out := &entities.GameStatePatch{
		CurrentHealth:     p.CurrentHealth,
		MaximumHealth:     p.MaximumHealth,
		CurrentGold:       p.CurrentGold,
		InspirationPoints: p.InspirationPoints,
		ConcentratingOn:   p.ConcentratingOn,
	}
	if s := p.SpellSlotsUsed; s != nil {
		out.SpellSlotsUsed = [entities.MaxSpellLevel]*int32{
			s.Level1, s.Level2, s.Level3,
			s.Level4, s.Level5, s.Level6,
			s.Level7, s.Level8, s.Level9,
		}
	}
	return out
}
