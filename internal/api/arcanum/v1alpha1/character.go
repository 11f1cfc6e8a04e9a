package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

const CharacterServiceName = "arcanum.v1alpha1.CharacterService"

const (
	CharacterServiceCreateCharacter     = "/" + CharacterServiceName + "/CreateCharacter"
	CharacterServiceGetCharacterSheet   = "/" + CharacterServiceName + "/GetCharacterSheet"
	CharacterServiceListCharacters      = "/" + CharacterServiceName + "/ListCharacters"
	CharacterServiceUpdateGameState     = "/" + CharacterServiceName + "/UpdateGameState"
	CharacterServiceReplaceConditions   = "/" + CharacterServiceName + "/ReplaceConditions"
	CharacterServiceAddInventoryItem    = "/" + CharacterServiceName + "/AddInventoryItem"
	CharacterServiceUpdateInventoryItem = "/" + CharacterServiceName + "/UpdateInventoryItem"
	CharacterServiceDeleteInventoryItem = "/" + CharacterServiceName + "/DeleteInventoryItem"
	CharacterServiceAdvanceCharacter    = "/" + CharacterServiceName + "/AdvanceCharacter"
	CharacterServiceDeleteCharacter     = "/" + CharacterServiceName + "/DeleteCharacter"
)

// StartingAbilityScores are the requested base scores. Values that are not
// numbers are treated as missing.
type StartingAbilityScores struct {
	Strength     LooseInt `json:"strength"`
	Dexterity    LooseInt `json:"dexterity"`
	Constitution LooseInt `json:"constitution"`
	Intelligence LooseInt `json:"intelligence"`
	Wisdom       LooseInt `json:"wisdom"`
	Charisma     LooseInt `json:"charisma"`
}

type Personality struct {
	Ideals string `json:"ideals"`
	Bonds  string `json:"bonds"`
	Flaws  string `json:"flaws"`
}

type AbilityScores struct {
	Strength     int32 `json:"strength"`
	Dexterity    int32 `json:"dexterity"`
	Constitution int32 `json:"constitution"`
	Intelligence int32 `json:"intelligence"`
	Wisdom       int32 `json:"wisdom"`
	Charisma     int32 `json:"charisma"`
}

type SheetEntry struct {
	Key         string `json:"key"`
	Ability     string `json:"ability"`
	NameEs      string `json:"nameEs"`
	NameEn      string `json:"nameEn"`
	DisplayName string `json:"displayName"`
	Modifier    int32  `json:"modifier"`
	Proficient  bool   `json:"proficient"`
}

type Health struct {
	Current int32 `json:"current"`
	Maximum int32 `json:"maximum"`
}

type InventoryItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Quantity  int32  `json:"quantity"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	UpdatedAt int64  `json:"updatedAt,omitempty"`
}

type CharacterSheet struct {
	ID          string        `json:"id"`
	UserID      string        `json:"userId"`
	NameEs      string        `json:"nameEs"`
	NameEn      string        `json:"nameEn"`
	DisplayName string        `json:"displayName"`
	Race        *LocalizedRef `json:"race"`
	Subrace     *LocalizedRef `json:"subrace"`
	Class       *LocalizedRef `json:"class"`
	Subclass    *LocalizedRef `json:"subclass"`
	Background  *LocalizedRef `json:"background"`
	Alignment   *LocalizedRef `json:"alignment"`
	Level       int32         `json:"level"`
	Experience  int32         `json:"experience"`
	Personality *Personality  `json:"personality"`

	Abilities         *AbilityScores `json:"abilities"`
	AbilityModifiers  *AbilityScores `json:"abilityModifiers"`
	ProficiencyBonus  int32          `json:"proficiencyBonus"`
	SavingThrows      []*SheetEntry  `json:"savingThrows"`
	Skills            []*SheetEntry  `json:"skills"`
	PassivePerception int32          `json:"passivePerception"`
	ArmorClass        int32          `json:"armorClass"`
	Initiative        int32          `json:"initiative"`
	Speed             int32          `json:"speed"`

	Health       *Health `json:"health"`
	HitDice      string  `json:"hitDice"`
	HitDiceTotal int32   `json:"hitDiceTotal"`

	Gold              int32            `json:"gold"`
	Inspiration       int32            `json:"inspiration"`
	SpellSlots        *SpellSlots      `json:"spellSlots"`
	SpellSlotsTotal   *SpellSlots      `json:"spellSlotsTotal"`
	ConcentratingOn   *string          `json:"concentratingOn"`
	ActiveConditions  []string         `json:"activeConditions"`
	Inventory         []*InventoryItem `json:"inventory"`
	TraitsAndFeatures []string         `json:"traitsAndFeatures"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

type CharacterSummary struct {
	ID          string        `json:"id"`
	NameEs      string        `json:"nameEs"`
	NameEn      string        `json:"nameEn"`
	DisplayName string        `json:"displayName"`
	Race        *LocalizedRef `json:"race"`
	Class       *LocalizedRef `json:"class"`
	Level       int32         `json:"level"`
	Experience  int32         `json:"experience"`
	CreatedAt   int64         `json:"createdAt"`
	UpdatedAt   int64         `json:"updatedAt"`
}

type GameState struct {
	CharacterID       string      `json:"characterId"`
	CurrentHealth     int32       `json:"currentHealth"`
	MaximumHealth     int32       `json:"maximumHealth"`
	CurrentGold       int32       `json:"currentGold"`
	InspirationPoints int32       `json:"inspirationPoints"`
	SpellSlotsUsed    *SpellSlots `json:"spellSlotsUsed"`
	ConcentratingOn   *string     `json:"concentratingOn"`
	UpdatedAt         int64       `json:"updatedAt"`
}

// SpellSlotsPatch names the spell levels whose used count changes.
type SpellSlotsPatch struct {
	Level1 *int32 `json:"level1,omitempty"`
	Level2 *int32 `json:"level2,omitempty"`
	Level3 *int32 `json:"level3,omitempty"`
	Level4 *int32 `json:"level4,omitempty"`
	Level5 *int32 `json:"level5,omitempty"`
	Level6 *int32 `json:"level6,omitempty"`
	Level7 *int32 `json:"level7,omitempty"`
	Level8 *int32 `json:"level8,omitempty"`
	Level9 *int32 `json:"level9,omitempty"`
}

// GameStatePatch carries only the fields to change. An empty
// concentratingOn clears concentration.
type GameStatePatch struct {
	CurrentHealth     *int32           `json:"currentHealth,omitempty"`
	MaximumHealth     *int32           `json:"maximumHealth,omitempty"`
	CurrentGold       *int32           `json:"currentGold,omitempty"`
	InspirationPoints *int32           `json:"inspirationPoints,omitempty"`
	SpellSlotsUsed    *SpellSlotsPatch `json:"spellSlotsUsed,omitempty"`
	ConcentratingOn   *string          `json:"concentratingOn,omitempty"`
}

type ValidationWarning struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

type CreateCharacterRequest struct {
	NameEs             string                `json:"nameEs"`
	NameEn             string                `json:"nameEn"`
	RaceID             string                `json:"raceId"`
	SubraceID          string                `json:"subraceId"`
	ClassID            string                `json:"classId"`
	SubclassID         string                `json:"subclassId"`
	BackgroundID       string                `json:"backgroundId"`
	AlignmentID        string                `json:"alignmentId"`
	SkillProficiencies []string              `json:"skillProficiencies"`
	AbilityScores      StartingAbilityScores `json:"abilityScores"`
	Personality        *Personality          `json:"personality,omitempty"`
}

type CreateCharacterResponse struct {
	Character *CharacterSheet      `json:"character"`
	Warnings  []*ValidationWarning `json:"warnings"`
}

type GetCharacterSheetRequest struct {
	CharacterID string `json:"characterId"`
}

type GetCharacterSheetResponse struct {
	Character *CharacterSheet `json:"character"`
}

type ListCharactersRequest struct {
	// OwnerID defaults to the caller.
	OwnerID string `json:"ownerId,omitempty"`
}

type ListCharactersResponse struct {
	Characters []*CharacterSummary `json:"characters"`
}

type UpdateGameStateRequest struct {
	CharacterID string          `json:"characterId"`
	Patch       *GameStatePatch `json:"patch"`
}

type UpdateGameStateResponse struct {
	GameState *GameState `json:"gameState"`
}

type ReplaceConditionsRequest struct {
	CharacterID  string   `json:"characterId"`
	ConditionIDs []string `json:"conditionIds"`
}

type ReplaceConditionsResponse struct {
	ConditionIDs []string `json:"conditionIds"`
}

type AddInventoryItemRequest struct {
	CharacterID string `json:"characterId"`
	Name        string `json:"name"`
	Quantity    *int32 `json:"quantity,omitempty"`
}

type AddInventoryItemResponse struct {
	Item *InventoryItem `json:"item"`
}

type UpdateInventoryItemRequest struct {
	CharacterID string  `json:"characterId"`
	ItemID      string  `json:"itemId"`
	Name        *string `json:"name,omitempty"`
	Quantity    *int32  `json:"quantity,omitempty"`
}

type UpdateInventoryItemResponse struct {
	Item *InventoryItem `json:"item"`
}

type DeleteInventoryItemRequest struct {
	CharacterID string `json:"characterId"`
	ItemID      string `json:"itemId"`
}

type DeleteInventoryItemResponse struct{}

type AdvanceCharacterRequest struct {
	CharacterID string `json:"characterId"`
	Experience  *int32 `json:"experience,omitempty"`
	Level       *int32 `json:"level,omitempty"`
}

type AdvanceCharacterResponse struct {
	Character *CharacterSheet `json:"character"`
}

type DeleteCharacterRequest struct {
	CharacterID string `json:"characterId"`
}

type DeleteCharacterResponse struct{}

// CharacterServiceServer is the server API for CharacterService.
type CharacterServiceServer interface {
	CreateCharacter(context.Context, *CreateCharacterRequest) (*CreateCharacterResponse, error)
	GetCharacterSheet(context.Context, *GetCharacterSheetRequest) (*GetCharacterSheetResponse, error)
	ListCharacters(context.Context, *ListCharactersRequest) (*ListCharactersResponse, error)
	UpdateGameState(context.Context, *UpdateGameStateRequest) (*UpdateGameStateResponse, error)
	ReplaceConditions(context.Context, *ReplaceConditionsRequest) (*ReplaceConditionsResponse, error)
	AddInventoryItem(context.Context, *AddInventoryItemRequest) (*AddInventoryItemResponse, error)
	UpdateInventoryItem(context.Context, *UpdateInventoryItemRequest) (*UpdateInventoryItemResponse, error)
	DeleteInventoryItem(context.Context, *DeleteInventoryItemRequest) (*DeleteInventoryItemResponse, error)
	AdvanceCharacter(context.Context, *AdvanceCharacterRequest) (*AdvanceCharacterResponse, error)
	DeleteCharacter(context.Context, *DeleteCharacterRequest) (*DeleteCharacterResponse, error)
}

func characterServer(srv any) CharacterServiceServer {
	return srv.(CharacterServiceServer)
}

var CharacterService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: CharacterServiceName,
	HandlerType: (*CharacterServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateCharacter",
			Handler: unary(CharacterServiceCreateCharacter, func(srv any, ctx context.Context, in *CreateCharacterRequest) (*CreateCharacterResponse, error) {
				return characterServer(srv).CreateCharacter(ctx, in)
			}),
		},
		{
			MethodName: "GetCharacterSheet",
			Handler: unary(CharacterServiceGetCharacterSheet, func(srv any, ctx context.Context, in *GetCharacterSheetRequest) (*GetCharacterSheetResponse, error) {
				return characterServer(srv).GetCharacterSheet(ctx, in)
			}),
		},
		{
			MethodName: "ListCharacters",
			Handler: unary(CharacterServiceListCharacters, func(srv any, ctx context.Context, in *ListCharactersRequest) (*ListCharactersResponse, error) {
				return characterServer(srv).ListCharacters(ctx, in)
			}),
		},
		{
			MethodName: "UpdateGameState",
			Handler: unary(CharacterServiceUpdateGameState, func(srv any, ctx context.Context, in *UpdateGameStateRequest) (*UpdateGameStateResponse, error) {
				return characterServer(srv).UpdateGameState(ctx, in)
			}),
		},
		{
			MethodName: "ReplaceConditions",
			Handler: unary(CharacterServiceReplaceConditions, func(srv any, ctx context.Context, in *ReplaceConditionsRequest) (*ReplaceConditionsResponse, error) {
				return characterServer(srv).ReplaceConditions(ctx, in)
			}),
		},
		{
			MethodName: "AddInventoryItem",
			Handler: unary(CharacterServiceAddInventoryItem, func(srv any, ctx context.Context, in *AddInventoryItemRequest) (*AddInventoryItemResponse, error) {
				return characterServer(srv).AddInventoryItem(ctx, in)
			}),
		},
		{
			MethodName: "UpdateInventoryItem",
			Handler: unary(CharacterServiceUpdateInventoryItem, func(srv any, ctx context.Context, in *UpdateInventoryItemRequest) (*UpdateInventoryItemResponse, error) {
				return characterServer(srv).UpdateInventoryItem(ctx, in)
			}),
		},
		{
			MethodName: "DeleteInventoryItem",
			Handler: unary(CharacterServiceDeleteInventoryItem, func(srv any, ctx context.Context, in *DeleteInventoryItemRequest) (*DeleteInventoryItemResponse, error) {
				return characterServer(srv).DeleteInventoryItem(ctx, in)
			}),
		},
		{
			MethodName: "AdvanceCharacter",
			Handler: unary(CharacterServiceAdvanceCharacter, func(srv any, ctx context.Context, in *AdvanceCharacterRequest) (*AdvanceCharacterResponse, error) {
				return characterServer(srv).AdvanceCharacter(ctx, in)
			}),
		},
		{
			MethodName: "DeleteCharacter",
			Handler: unary(CharacterServiceDeleteCharacter, func(srv any, ctx context.Context, in *DeleteCharacterRequest) (*DeleteCharacterResponse, error) {
				return characterServer(srv).DeleteCharacter(ctx, in)
			}),
		},
	},
	Metadata: "arcanum/v1alpha1/character.json",
}

func RegisterCharacterServiceServer(s grpc.ServiceRegistrar, srv CharacterServiceServer) {
	s.RegisterService(&CharacterService_ServiceDesc, srv)
}

// CharacterServiceClient is the client API for CharacterService.
type CharacterServiceClient interface {
	CreateCharacter(ctx context.Context, in *CreateCharacterRequest, opts ...grpc.CallOption) (*CreateCharacterResponse, error)
	GetCharacterSheet(ctx context.Context, in *GetCharacterSheetRequest, opts ...grpc.CallOption) (*GetCharacterSheetResponse, error)
	ListCharacters(ctx context.Context, in *ListCharactersRequest, opts ...grpc.CallOption) (*ListCharactersResponse, error)
	UpdateGameState(ctx context.Context, in *UpdateGameStateRequest, opts ...grpc.CallOption) (*UpdateGameStateResponse, error)
	ReplaceConditions(ctx context.Context, in *ReplaceConditionsRequest, opts ...grpc.CallOption) (*ReplaceConditionsResponse, error)
	AddInventoryItem(ctx context.Context, in *AddInventoryItemRequest, opts ...grpc.CallOption) (*AddInventoryItemResponse, error)
	UpdateInventoryItem(ctx context.Context, in *UpdateInventoryItemRequest, opts ...grpc.CallOption) (*UpdateInventoryItemResponse, error)
	DeleteInventoryItem(ctx context.Context, in *DeleteInventoryItemRequest, opts ...grpc.CallOption) (*DeleteInventoryItemResponse, error)
	AdvanceCharacter(ctx context.Context, in *AdvanceCharacterRequest, opts ...grpc.CallOption) (*AdvanceCharacterResponse, error)
	DeleteCharacter(ctx context.Context, in *DeleteCharacterRequest, opts ...grpc.CallOption) (*DeleteCharacterResponse, error)
}

type characterServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCharacterServiceClient(cc grpc.ClientConnInterface) CharacterServiceClient {
	return &characterServiceClient{cc: cc}
}

func (c *characterServiceClient) CreateCharacter(ctx context.Context, in *CreateCharacterRequest, opts ...grpc.CallOption) (*CreateCharacterResponse, error) {
	return invoke[CreateCharacterResponse](ctx, c.cc, CharacterServiceCreateCharacter, in, opts)
}

func (c *characterServiceClient) GetCharacterSheet(ctx context.Context, in *GetCharacterSheetRequest, opts ...grpc.CallOption) (*GetCharacterSheetResponse, error) {
	return invoke[GetCharacterSheetResponse](ctx, c.cc, CharacterServiceGetCharacterSheet, in, opts)
}

func (c *characterServiceClient) ListCharacters(ctx context.Context, in *ListCharactersRequest, opts ...grpc.CallOption) (*ListCharactersResponse, error) {
	return invoke[ListCharactersResponse](ctx, c.cc, CharacterServiceListCharacters, in, opts)
}

func (c *characterServiceClient) UpdateGameState(ctx context.Context, in *UpdateGameStateRequest, opts ...grpc.CallOption) (*UpdateGameStateResponse, error) {
	return invoke[UpdateGameStateResponse](ctx, c.cc, CharacterServiceUpdateGameState, in, opts)
}

func (c *characterServiceClient) ReplaceConditions(ctx context.Context, in *ReplaceConditionsRequest, opts ...grpc.CallOption) (*ReplaceConditionsResponse, error) {
	return invoke[ReplaceConditionsResponse](ctx, c.cc, CharacterServiceReplaceConditions, in, opts)
}

func (c *characterServiceClient) AddInventoryItem(ctx context.Context, in *AddInventoryItemRequest, opts ...grpc.CallOption) (*AddInventoryItemResponse, error) {
	return invoke[AddInventoryItemResponse](ctx, c.cc, CharacterServiceAddInventoryItem, in, opts)
}

func (c *characterServiceClient) UpdateInventoryItem(ctx context.Context, in *UpdateInventoryItemRequest, opts ...grpc.CallOption) (*UpdateInventoryItemResponse, error) {
	return invoke[UpdateInventoryItemResponse](ctx, c.cc, CharacterServiceUpdateInventoryItem, in, opts)
}

func (c *characterServiceClient) DeleteInventoryItem(ctx context.Context, in *DeleteInventoryItemRequest, opts ...grpc.CallOption) (*DeleteInventoryItemResponse, error) {
	return invoke[DeleteInventoryItemResponse](ctx, c.cc, CharacterServiceDeleteInventoryItem, in, opts)
}

func (c *characterServiceClient) AdvanceCharacter(ctx context.Context, in *AdvanceCharacterRequest, opts ...grpc.CallOption) (*AdvanceCharacterResponse, error) {
	return invoke[AdvanceCharacterResponse](ctx, c.cc, CharacterServiceAdvanceCharacter, in, opts)
}

func (c *characterServiceClient) DeleteCharacter(ctx context.Context, in *DeleteCharacterRequest, opts ...grpc.CallOption) (*DeleteCharacterResponse, error) {
	return invoke[DeleteCharacterResponse](ctx, c.cc, CharacterServiceDeleteCharacter, in, opts)
}
