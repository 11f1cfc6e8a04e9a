package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

const CatalogServiceName = "arcanum.v1alpha1.CatalogService"

const (
	CatalogServiceListRaces                   = "/" + CatalogServiceName + "/ListRaces"
	CatalogServiceGetRace                     = "/" + CatalogServiceName + "/GetRace"
	CatalogServiceGetSubrace                  = "/" + CatalogServiceName + "/GetSubrace"
	CatalogServiceListClasses                 = "/" + CatalogServiceName + "/ListClasses"
	CatalogServiceGetClass                    = "/" + CatalogServiceName + "/GetClass"
	CatalogServiceGetSubclass                 = "/" + CatalogServiceName + "/GetSubclass"
	CatalogServiceListBackgrounds             = "/" + CatalogServiceName + "/ListBackgrounds"
	CatalogServiceGetBackground               = "/" + CatalogServiceName + "/GetBackground"
	CatalogServiceListAlignments              = "/" + CatalogServiceName + "/ListAlignments"
	CatalogServiceListSkills                  = "/" + CatalogServiceName + "/ListSkills"
	CatalogServiceListConditions              = "/" + CatalogServiceName + "/ListConditions"
	CatalogServiceGetCondition                = "/" + CatalogServiceName + "/GetCondition"
	CatalogServiceListSpells                  = "/" + CatalogServiceName + "/ListSpells"
	CatalogServiceGetSpell                    = "/" + CatalogServiceName + "/GetSpell"
	CatalogServiceGetCharacterCreationOptions = "/" + CatalogServiceName + "/GetCharacterCreationOptions"
	CatalogServiceGetSpellSlots               = "/" + CatalogServiceName + "/GetSpellSlots"
)

// Catalog entries

type Race struct {
	ID             string           `json:"id"`
	NameEs         string           `json:"nameEs"`
	NameEn         string           `json:"nameEn"`
	DisplayName    string           `json:"displayName"`
	Description    string           `json:"description"`
	AbilityBonuses map[string]int32 `json:"abilityBonuses"`
	Speed          int32            `json:"speed"`
	Size           string           `json:"size"`
	Languages      []string         `json:"languages"`
	Traits         []string         `json:"traits"`
	Subraces       []*Subrace       `json:"subraces"`
}

type Subrace struct {
	ID             string           `json:"id"`
	RaceID         string           `json:"raceId"`
	NameEs         string           `json:"nameEs"`
	NameEn         string           `json:"nameEn"`
	DisplayName    string           `json:"displayName"`
	Description    string           `json:"description"`
	AbilityBonuses map[string]int32 `json:"abilityBonuses"`
	Traits         []string         `json:"traits"`
}

type Class struct {
	ID           string      `json:"id"`
	NameEs       string      `json:"nameEs"`
	NameEn       string      `json:"nameEn"`
	DisplayName  string      `json:"displayName"`
	Description  string      `json:"description"`
	HitDie       string      `json:"hitDie"`
	SavingThrows []string    `json:"savingThrows"`
	SkillOptions []string    `json:"skillOptions"`
	SkillChoices int32       `json:"skillChoices"`
	CasterType   string      `json:"casterType"`
	Subclasses   []*Subclass `json:"subclasses"`
}

type Subclass struct {
	ID          string   `json:"id"`
	ClassID     string   `json:"classId"`
	NameEs      string   `json:"nameEs"`
	NameEn      string   `json:"nameEn"`
	DisplayName string   `json:"displayName"`
	Description string   `json:"description"`
	MinLevel    int32    `json:"minLevel"`
	Features    []string `json:"features"`
}

type Background struct {
	ID                 string   `json:"id"`
	NameEs             string   `json:"nameEs"`
	NameEn             string   `json:"nameEn"`
	DisplayName        string   `json:"displayName"`
	Description        string   `json:"description"`
	SkillProficiencies []string `json:"skillProficiencies"`
	SkillKeys          []string `json:"skillKeys"`
	ToolProficiencies  []string `json:"toolProficiencies"`
	Languages          []string `json:"languages"`
	Equipment          []string `json:"equipment"`
	Feature            string   `json:"feature"`
}

type Alignment struct {
	ID           string `json:"id"`
	NameEs       string `json:"nameEs"`
	NameEn       string `json:"nameEn"`
	DisplayName  string `json:"displayName"`
	Abbreviation string `json:"abbreviation"`
}

type Skill struct {
	Key         string `json:"key"`
	Ability     string `json:"ability"`
	NameEs      string `json:"nameEs"`
	NameEn      string `json:"nameEn"`
	DisplayName string `json:"displayName"`
}

type AbilityInfo struct {
	Ability     string `json:"ability"`
	NameEs      string `json:"nameEs"`
	NameEn      string `json:"nameEn"`
	DisplayName string `json:"displayName"`
}

type Condition struct {
	ID          string `json:"id"`
	NameEs      string `json:"nameEs"`
	NameEn      string `json:"nameEn"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
}

type Spell struct {
	ID            string   `json:"id"`
	NameEs        string   `json:"nameEs"`
	NameEn        string   `json:"nameEn"`
	DisplayName   string   `json:"displayName"`
	Description   string   `json:"description"`
	Level         int32    `json:"level"`
	School        string   `json:"school"`
	CastingTime   string   `json:"castingTime"`
	Range         string   `json:"range"`
	Components    []string `json:"components"`
	Duration      string   `json:"duration"`
	Concentration bool     `json:"concentration"`
	Classes       []string `json:"classes"`
}

// SpellSlots holds one count per spell level, level1 first.
type SpellSlots struct {
	Level1 int32 `json:"level1"`
	Level2 int32 `json:"level2"`
	Level3 int32 `json:"level3"`
	Level4 int32 `json:"level4"`
	Level5 int32 `json:"level5"`
	Level6 int32 `json:"level6"`
	Level7 int32 `json:"level7"`
	Level8 int32 `json:"level8"`
	Level9 int32 `json:"level9"`
}

// Requests and responses

type ListRacesRequest struct{}

type ListRacesResponse struct {
	Races []*Race `json:"races"`
}

type GetRaceRequest struct {
	RaceID string `json:"raceId"`
}

type GetRaceResponse struct {
	Race *Race `json:"race"`
}

type GetSubraceRequest struct {
	RaceID    string `json:"raceId"`
	SubraceID string `json:"subraceId"`
}

type GetSubraceResponse struct {
	Subrace *Subrace `json:"subrace"`
}

type ListClassesRequest struct{}

type ListClassesResponse struct {
	Classes []*Class `json:"classes"`
}

type GetClassRequest struct {
	ClassID string `json:"classId"`
}

type GetClassResponse struct {
	Class *Class `json:"class"`
}

type GetSubclassRequest struct {
	ClassID    string `json:"classId"`
	SubclassID string `json:"subclassId"`
}

type GetSubclassResponse struct {
	Subclass *Subclass `json:"subclass"`
}

type ListBackgroundsRequest struct{}

type ListBackgroundsResponse struct {
	Backgrounds []*Background `json:"backgrounds"`
}

type GetBackgroundRequest struct {
	BackgroundID string `json:"backgroundId"`
}

type GetBackgroundResponse struct {
	Background *Background `json:"background"`
}

type ListAlignmentsRequest struct{}

type ListAlignmentsResponse struct {
	Alignments []*Alignment `json:"alignments"`
}

type ListSkillsRequest struct{}

type ListSkillsResponse struct {
	Skills []*Skill `json:"skills"`
}

type ListConditionsRequest struct{}

type ListConditionsResponse struct {
	Conditions []*Condition `json:"conditions"`
}

type GetConditionRequest struct {
	ConditionID string `json:"conditionId"`
}

type GetConditionResponse struct {
	Condition *Condition `json:"condition"`
}

type ListSpellsRequest struct {
	ClassID string `json:"classId,omitempty"`
	Level   *int32 `json:"level,omitempty"`
}

type ListSpellsResponse struct {
	Spells []*Spell `json:"spells"`
}

type GetSpellRequest struct {
	SpellID string `json:"spellId"`
}

type GetSpellResponse struct {
	Spell *Spell `json:"spell"`
}

type GetCharacterCreationOptionsRequest struct{}

type GetCharacterCreationOptionsResponse struct {
	Races            []*Race        `json:"races"`
	Classes          []*Class       `json:"classes"`
	Backgrounds      []*Background  `json:"backgrounds"`
	Alignments       []*Alignment   `json:"alignments"`
	Skills           []*Skill       `json:"skills"`
	Abilities        []*AbilityInfo `json:"abilities"`
	MinStartingScore int32          `json:"minStartingScore"`
	MaxStartingScore int32          `json:"maxStartingScore"`
}

type GetSpellSlotsRequest struct {
	ClassID string `json:"classId"`
	Level   int32  `json:"level"`
}

type GetSpellSlotsResponse struct {
	ClassID    string      `json:"classId"`
	Level      int32       `json:"level"`
	CasterType string      `json:"casterType"`
	SpellSlots *SpellSlots `json:"spellSlots"`
}

// CatalogServiceServer is the server API for CatalogService.
type CatalogServiceServer interface {
	ListRaces(context.Context, *ListRacesRequest) (*ListRacesResponse, error)
	GetRace(context.Context, *GetRaceRequest) (*GetRaceResponse, error)
	GetSubrace(context.Context, *GetSubraceRequest) (*GetSubraceResponse, error)
	ListClasses(context.Context, *ListClassesRequest) (*ListClassesResponse, error)
	GetClass(context.Context, *GetClassRequest) (*GetClassResponse, error)
	GetSubclass(context.Context, *GetSubclassRequest) (*GetSubclassResponse, error)
	ListBackgrounds(context.Context, *ListBackgroundsRequest) (*ListBackgroundsResponse, error)
	GetBackground(context.Context, *GetBackgroundRequest) (*GetBackgroundResponse, error)
	ListAlignments(context.Context, *ListAlignmentsRequest) (*ListAlignmentsResponse, error)
	ListSkills(context.Context, *ListSkillsRequest) (*ListSkillsResponse, error)
	ListConditions(context.Context, *ListConditionsRequest) (*ListConditionsResponse, error)
	GetCondition(context.Context, *GetConditionRequest) (*GetConditionResponse, error)
	ListSpells(context.Context, *ListSpellsRequest) (*ListSpellsResponse, error)
	GetSpell(context.Context, *GetSpellRequest) (*GetSpellResponse, error)
	GetCharacterCreationOptions(context.Context, *GetCharacterCreationOptionsRequest) (*GetCharacterCreationOptionsResponse, error)
	GetSpellSlots(context.Context, *GetSpellSlotsRequest) (*GetSpellSlotsResponse, error)
}

func catalogServer(srv any) CatalogServiceServer {
	return srv.(CatalogServiceServer)
}

var CatalogService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: CatalogServiceName,
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListRaces",
			Handler: unary(CatalogServiceListRaces, func(srv any, ctx context.Context, in *ListRacesRequest) (*ListRacesResponse, error) {
				return catalogServer(srv).ListRaces(ctx, in)
			}),
		},
		{
			MethodName: "GetRace",
			Handler: unary(CatalogServiceGetRace, func(srv any, ctx context.Context, in *GetRaceRequest) (*GetRaceResponse, error) {
				return catalogServer(srv).GetRace(ctx, in)
			}),
		},
		{
			MethodName: "GetSubrace",
			Handler: unary(CatalogServiceGetSubrace, func(srv any, ctx context.Context, in *GetSubraceRequest) (*GetSubraceResponse, error) {
				return catalogServer(srv).GetSubrace(ctx, in)
			}),
		},
		{
			MethodName: "ListClasses",
			Handler: unary(CatalogServiceListClasses, func(srv any, ctx context.Context, in *ListClassesRequest) (*ListClassesResponse, error) {
				return catalogServer(srv).ListClasses(ctx, in)
			}),
		},
		{
			MethodName: "GetClass",
			Handler: unary(CatalogServiceGetClass, func(srv any, ctx context.Context, in *GetClassRequest) (*GetClassResponse, error) {
				return catalogServer(srv).GetClass(ctx, in)
			}),
		},
		{
			MethodName: "GetSubclass",
			Handler: unary(CatalogServiceGetSubclass, func(srv any, ctx context.Context, in *GetSubclassRequest) (*GetSubclassResponse, error) {
				return catalogServer(srv).GetSubclass(ctx, in)
			}),
		},
		{
			MethodName: "ListBackgrounds",
			Handler: unary(CatalogServiceListBackgrounds, func(srv any, ctx context.Context, in *ListBackgroundsRequest) (*ListBackgroundsResponse, error) {
				return catalogServer(srv).ListBackgrounds(ctx, in)
			}),
		},
		{
			MethodName: "GetBackground",
			Handler: unary(CatalogServiceGetBackground, func(srv any, ctx context.Context, in *GetBackgroundRequest) (*GetBackgroundResponse, error) {
				return catalogServer(srv).GetBackground(ctx, in)
			}),
		},
		{
			MethodName: "ListAlignments",
			Handler: unary(CatalogServiceListAlignments, func(srv any, ctx context.Context, in *ListAlignmentsRequest) (*ListAlignmentsResponse, error) {
				return catalogServer(srv).ListAlignments(ctx, in)
			}),
		},
		{
			MethodName: "ListSkills",
			Handler: unary(CatalogServiceListSkills, func(srv any, ctx context.Context, in *ListSkillsRequest) (*ListSkillsResponse, error) {
				return catalogServer(srv).ListSkills(ctx, in)
			}),
		},
		{
			MethodName: "ListConditions",
			Handler: unary(CatalogServiceListConditions, func(srv any, ctx context.Context, in *ListConditionsRequest) (*ListConditionsResponse, error) {
				return catalogServer(srv).ListConditions(ctx, in)
			}),
		},
		{
			MethodName: "GetCondition",
			Handler: unary(CatalogServiceGetCondition, func(srv any, ctx context.Context, in *GetConditionRequest) (*GetConditionResponse, error) {
				return catalogServer(srv).GetCondition(ctx, in)
			}),
		},
		{
			MethodName: "ListSpells",
			Handler: unary(CatalogServiceListSpells, func(srv any, ctx context.Context, in *ListSpellsRequest) (*ListSpellsResponse, error) {
				return catalogServer(srv).ListSpells(ctx, in)
			}),
		},
		{
			MethodName: "GetSpell",
			Handler: unary(CatalogServiceGetSpell, func(srv any, ctx context.Context, in *GetSpellRequest) (*GetSpellResponse, error) {
				return catalogServer(srv).GetSpell(ctx, in)
			}),
		},
		{
			MethodName: "GetCharacterCreationOptions",
			Handler: unary(CatalogServiceGetCharacterCreationOptions, func(srv any, ctx context.Context, in *GetCharacterCreationOptionsRequest) (*GetCharacterCreationOptionsResponse, error) {
				return catalogServer(srv).GetCharacterCreationOptions(ctx, in)
			}),
		},
		{
			MethodName: "GetSpellSlots",
			Handler: unary(CatalogServiceGetSpellSlots, func(srv any, ctx context.Context, in *GetSpellSlotsRequest) (*GetSpellSlotsResponse, error) {
				return catalogServer(srv).GetSpellSlots(ctx, in)
			}),
		},
	},
	Metadata: "arcanum/v1alpha1/catalog.json",
}

func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogService_ServiceDesc, srv)
}

// CatalogServiceClient is the client API for CatalogService.
type CatalogServiceClient interface {
	ListRaces(ctx context.Context, in *ListRacesRequest, opts ...grpc.CallOption) (*ListRacesResponse, error)
	GetRace(ctx context.Context, in *GetRaceRequest, opts ...grpc.CallOption) (*GetRaceResponse, error)
	GetSubrace(ctx context.Context, in *GetSubraceRequest, opts ...grpc.CallOption) (*GetSubraceResponse, error)
	ListClasses(ctx context.Context, in *ListClassesRequest, opts ...grpc.CallOption) (*ListClassesResponse, error)
	GetClass(ctx context.Context, in *GetClassRequest, opts ...grpc.CallOption) (*GetClassResponse, error)
	GetSubclass(ctx context.Context, in *GetSubclassRequest, opts ...grpc.CallOption) (*GetSubclassResponse, error)
	ListBackgrounds(ctx context.Context, in *ListBackgroundsRequest, opts ...grpc.CallOption) (*ListBackgroundsResponse, error)
	GetBackground(ctx context.Context, in *GetBackgroundRequest, opts ...grpc.CallOption) (*GetBackgroundResponse, error)
	ListAlignments(ctx context.Context, in *ListAlignmentsRequest, opts ...grpc.CallOption) (*ListAlignmentsResponse, error)
	ListSkills(ctx context.Context, in *ListSkillsRequest, opts ...grpc.CallOption) (*ListSkillsResponse, error)
	ListConditions(ctx context.Context, in *ListConditionsRequest, opts ...grpc.CallOption) (*ListConditionsResponse, error)
	GetCondition(ctx context.Context, in *GetConditionRequest, opts ...grpc.CallOption) (*GetConditionResponse, error)
	ListSpells(ctx context.Context, in *ListSpellsRequest, opts ...grpc.CallOption) (*ListSpellsResponse, error)
	GetSpell(ctx context.Context, in *GetSpellRequest, opts ...grpc.CallOption) (*GetSpellResponse, error)
	GetCharacterCreationOptions(ctx context.Context, in *GetCharacterCreationOptionsRequest, opts ...grpc.CallOption) (*GetCharacterCreationOptionsResponse, error)
	GetSpellSlots(ctx context.Context, in *GetSpellSlotsRequest, opts ...grpc.CallOption) (*GetSpellSlotsResponse, error)
}

type catalogServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCatalogServiceClient(cc grpc.ClientConnInterface) CatalogServiceClient {
	return &catalogServiceClient{cc: cc}
}

func (c *catalogServiceClient) ListRaces(ctx context.Context, in *ListRacesRequest, opts ...grpc.CallOption) (*ListRacesResponse, error) {
	return invoke[ListRacesResponse](ctx, c.cc, CatalogServiceListRaces, in, opts)
}

func (c *catalogServiceClient) GetRace(ctx context.Context, in *GetRaceRequest, opts ...grpc.CallOption) (*GetRaceResponse, error) {
	return invoke[GetRaceResponse](ctx, c.cc, CatalogServiceGetRace, in, opts)
}

func (c *catalogServiceClient) GetSubrace(ctx context.Context, in *GetSubraceRequest, opts ...grpc.CallOption) (*GetSubraceResponse, error) {
	return invoke[GetSubraceResponse](ctx, c.cc, CatalogServiceGetSubrace, in, opts)
}

func (c *catalogServiceClient) ListClasses(ctx context.Context, in *ListClassesRequest, opts ...grpc.CallOption) (*ListClassesResponse, error) {
	return invoke[ListClassesResponse](ctx, c.cc, CatalogServiceListClasses, in, opts)
}

func (c *catalogServiceClient) GetClass(ctx context.Context, in *GetClassRequest, opts ...grpc.CallOption) (*GetClassResponse, error) {
	return invoke[GetClassResponse](ctx, c.cc, CatalogServiceGetClass, in, opts)
}

func (c *catalogServiceClient) GetSubclass(ctx context.Context, in *GetSubclassRequest, opts ...grpc.CallOption) (*GetSubclassResponse, error) {
	return invoke[GetSubclassResponse](ctx, c.cc, CatalogServiceGetSubclass, in, opts)
}

func (c *catalogServiceClient) ListBackgrounds(ctx context.Context, in *ListBackgroundsRequest, opts ...grpc.CallOption) (*ListBackgroundsResponse, error) {
	return invoke[ListBackgroundsResponse](ctx, c.cc, CatalogServiceListBackgrounds, in, opts)
}

func (c *catalogServiceClient) GetBackground(ctx context.Context, in *GetBackgroundRequest, opts ...grpc.CallOption) (*GetBackgroundResponse, error) {
	return invoke[GetBackgroundResponse](ctx, c.cc, CatalogServiceGetBackground, in, opts)
}

func (c *catalogServiceClient) ListAlignments(ctx context.Context, in *ListAlignmentsRequest, opts ...grpc.CallOption) (*ListAlignmentsResponse, error) {
	return invoke[ListAlignmentsResponse](ctx, c.cc, CatalogServiceListAlignments, in, opts)
}

func (c *catalogServiceClient) ListSkills(ctx context.Context, in *ListSkillsRequest, opts ...grpc.CallOption) (*ListSkillsResponse, error) {
	return invoke[ListSkillsResponse](ctx, c.cc, CatalogServiceListSkills, in, opts)
}

func (c *catalogServiceClient) ListConditions(ctx context.Context, in *ListConditionsRequest, opts ...grpc.CallOption) (*ListConditionsResponse, error) {
	return invoke[ListConditionsResponse](ctx, c.cc, CatalogServiceListConditions, in, opts)
}

func (c *catalogServiceClient) GetCondition(ctx context.Context, in *GetConditionRequest, opts ...grpc.CallOption) (*GetConditionResponse, error) {
	return invoke[GetConditionResponse](ctx, c.cc, CatalogServiceGetCondition, in, opts)
}

func (c *catalogServiceClient) ListSpells(ctx context.Context, in *ListSpellsRequest, opts ...grpc.CallOption) (*ListSpellsResponse, error) {
	return invoke[ListSpellsResponse](ctx, c.cc, CatalogServiceListSpells, in, opts)
}

func (c *catalogServiceClient) GetSpell(ctx context.Context, in *GetSpellRequest, opts ...grpc.CallOption) (*GetSpellResponse, error) {
	return invoke[GetSpellResponse](ctx, c.cc, CatalogServiceGetSpell, in, opts)
}

func (c *catalogServiceClient) GetCharacterCreationOptions(ctx context.Context, in *GetCharacterCreationOptionsRequest, opts ...grpc.CallOption) (*GetCharacterCreationOptionsResponse, error) {
	return invoke[GetCharacterCreationOptionsResponse](ctx, c.cc, CatalogServiceGetCharacterCreationOptions, in, opts)
}

func (c *catalogServiceClient) GetSpellSlots(ctx context.Context, in *GetSpellSlotsRequest, opts ...grpc.CallOption) (*GetSpellSlotsResponse, error) {
	return invoke[GetSpellSlotsResponse](ctx, c.cc, CatalogServiceGetSpellSlots, in, opts)
}
