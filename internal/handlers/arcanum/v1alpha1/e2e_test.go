package v1alpha1_test

import (
	"context"
	"encoding/json"
	"net"
	"testing"

	grpcauth "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	arcanumv1alpha1 "github.com/KirkDiggler/arcanum-api/internal/api/arcanum/v1alpha1"
	"github.com/KirkDiggler/arcanum-api/internal/auth"
	"github.com/KirkDiggler/arcanum-api/internal/catalog"
	"github.com/KirkDiggler/arcanum-api/internal/engine/dnd5e"
	"github.com/KirkDiggler/arcanum-api/internal/handlers/arcanum/v1alpha1"
	accountorch "github.com/KirkDiggler/arcanum-api/internal/orchestrators/account"
	characterorch "github.com/KirkDiggler/arcanum-api/internal/orchestrators/character"
	"github.com/KirkDiggler/arcanum-api/internal/pkg/clock"
	"github.com/KirkDiggler/arcanum-api/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/arcanum-api/internal/repositories/character"
	gamestaterepo "github.com/KirkDiggler/arcanum-api/internal/repositories/gamestate"
	inventoryrepo "github.com/KirkDiggler/arcanum-api/internal/repositories/inventory"
	userrepo "github.com/KirkDiggler/arcanum-api/internal/repositories/user"
	"github.com/KirkDiggler/arcanum-api/internal/testutils"
)

// EndToEndTestSuite serves every arcanum service over bufconn with the auth
// interceptor, the JSON codec and Redis-backed storage on miniredis.
type EndToEndTestSuite struct {
	suite.Suite
	ctx       context.Context
	cleanup   func()
	server    *grpc.Server
	conn      *grpc.ClientConn
	accounts  arcanumv1alpha1.AccountServiceClient
	catalog   arcanumv1alpha1.CatalogServiceClient
	character arcanumv1alpha1.CharacterServiceClient
}

func TestEndToEndTestSuite(t *testing.T) {
	suite.Run(t, new(EndToEndTestSuite))
}

func (s *EndToEndTestSuite) SetupTest() {
	s.ctx = context.Background()

	client, _, cleanup := testutils.CreateTestRedisServer(s.T())
	s.cleanup = cleanup

	cat, err := catalog.LoadDefault()
	s.Require().NoError(err)
	eng, err := dnd5e.New(&dnd5e.Config{Catalog: cat})
	s.Require().NoError(err)

	clk := clock.NewFixed(testutils.TestTimestamp)
	tokens, err := auth.NewTokenManager(&auth.TokenManagerConfig{
		Secret: "end-to-end-test-secret",
		Clock:  clk,
	})
	s.Require().NoError(err)

	users, err := userrepo.NewRedis(&userrepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	characters, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	states, err := gamestaterepo.NewRedis(&gamestaterepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	inventory, err := inventoryrepo.NewRedis(&inventoryrepo.RedisConfig{Client: client})
	s.Require().NoError(err)

	accountService, err := accountorch.New(&accountorch.Config{
		UserRepo:     users,
		Tokens:       tokens,
		IDGenerator:  idgen.NewSequential("user"),
		Clock:        clk,
		PasswordCost: bcrypt.MinCost,
	})
	s.Require().NoError(err)
	characterService, err := characterorch.New(&characterorch.Config{
		CharacterRepo:   characters,
		GameStateRepo:   states,
		InventoryRepo:   inventory,
		Engine:          eng,
		IDGenerator:     idgen.NewSequential("char"),
		ItemIDGenerator: idgen.NewSequential("item"),
		Clock:           clk,
	})
	s.Require().NoError(err)

	accountHandler, err := v1alpha1.NewAccountHandler(&v1alpha1.AccountHandlerConfig{AccountService: accountService})
	s.Require().NoError(err)
	catalogHandler, err := v1alpha1.NewCatalogHandler(&v1alpha1.CatalogHandlerConfig{Catalog: cat, Engine: eng})
	s.Require().NoError(err)
	characterHandler, err := v1alpha1.NewCharacterHandler(&v1alpha1.CharacterHandlerConfig{CharacterService: characterService})
	s.Require().NoError(err)

	s.server = grpc.NewServer(
		grpc.ChainUnaryInterceptor(grpcauth.UnaryServerInterceptor(auth.AuthFunc(tokens))),
	)
	arcanumv1alpha1.RegisterAccountServiceServer(s.server, accountHandler)
	arcanumv1alpha1.RegisterCatalogServiceServer(s.server, catalogHandler)
	arcanumv1alpha1.RegisterCharacterServiceServer(s.server, characterHandler)

	lis := bufconn.Listen(1024 * 1024)
	go func() {
		_ = s.server.Serve(lis)
	}()

	s.conn, err = grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)

	s.accounts = arcanumv1alpha1.NewAccountServiceClient(s.conn)
	s.catalog = arcanumv1alpha1.NewCatalogServiceClient(s.conn)
	s.character = arcanumv1alpha1.NewCharacterServiceClient(s.conn)
}

func (s *EndToEndTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
	s.cleanup()
}

func (s *EndToEndTestSuite) register(username, email string) context.Context {
	resp, err := s.accounts.Register(s.ctx, &arcanumv1alpha1.RegisterRequest{
		Username: username,
		Email:    email,
		Password: "secreto",
	})
	s.Require().NoError(err)
	s.Require().NotEmpty(resp.Token)
	return metadata.AppendToOutgoingContext(s.ctx, "authorization", "bearer "+resp.Token)
}

func (s *EndToEndTestSuite) TestCatalogIsPublic() {
	resp, err := s.catalog.ListRaces(s.ctx, &arcanumv1alpha1.ListRacesRequest{})
	s.Require().NoError(err)
	s.NotEmpty(resp.Races)
	s.Equal("Enano", resp.Races[0].DisplayName)

	en := metadata.AppendToOutgoingContext(s.ctx, "accept-language", "en-GB")
	race, err := s.catalog.GetRace(en, &arcanumv1alpha1.GetRaceRequest{RaceID: "dwarf"})
	s.Require().NoError(err)
	s.Equal("Dwarf", race.Race.DisplayName)
}

func (s *EndToEndTestSuite) TestCharacterServiceRequiresToken() {
	_, err := s.character.ListCharacters(s.ctx, &arcanumv1alpha1.ListCharactersRequest{})
	s.Equal(codes.Unauthenticated, status.Code(err))

	bad := metadata.AppendToOutgoingContext(s.ctx, "authorization", "bearer not-a-token")
	_, err = s.character.ListCharacters(bad, &arcanumv1alpha1.ListCharactersRequest{})
	s.Equal(codes.Unauthenticated, status.Code(err))
}

func (s *EndToEndTestSuite) TestLogin() {
	s.register("ana", "Ana@Example.com")

	resp, err := s.accounts.Login(s.ctx, &arcanumv1alpha1.LoginRequest{Email: "ana@example.com", Password: "secreto"})
	s.Require().NoError(err)
	s.Equal("ana@example.com", resp.User.Email)

	_, err = s.accounts.Login(s.ctx, &arcanumv1alpha1.LoginRequest{Email: "ana@example.com", Password: "wrong!"})
	s.Equal(codes.Unauthenticated, status.Code(err))
}

func (s *EndToEndTestSuite) TestCreateWithLooseAbilityScores() {
	ctx := s.register("ana", "ana@example.com")

	// constitution is not a number and reads as missing; wisdom is truncated
	raw := json.RawMessage(`{
		"nameEs": "Thorin",
		"raceId": "dwarf",
		"subraceId": "hill-dwarf",
		"classId": "cleric",
		"backgroundId": "acolyte",
		"skillProficiencies": ["medicine"],
		"abilityScores": {"constitution": "14", "wisdom": 15.7}
	}`)

	resp := &arcanumv1alpha1.CreateCharacterResponse{}
	err := s.conn.Invoke(ctx, arcanumv1alpha1.CharacterServiceCreateCharacter, raw, resp,
		grpc.CallContentSubtype(arcanumv1alpha1.CodecName))
	s.Require().NoError(err)

	sheet := resp.Character
	s.Require().NotNil(sheet)
	s.Equal("char_1", sheet.ID)
	s.Equal(int32(12), sheet.Abilities.Constitution)
	s.Equal(int32(16), sheet.Abilities.Wisdom)
	s.Equal(int32(9), sheet.Health.Maximum)
	s.Equal("1d8", sheet.HitDice)
	s.Nil(sheet.ConcentratingOn)
}

func (s *EndToEndTestSuite) TestValidationFailureCarriesFieldDetails() {
	ctx := s.register("ana", "ana@example.com")

	_, err := s.character.CreateCharacter(ctx, &arcanumv1alpha1.CreateCharacterRequest{
		RaceID:  "kobold",
		ClassID: "fighter",
	})
	s.Require().Error(err)

	st := status.Convert(err)
	s.Equal(codes.InvalidArgument, st.Code())

	fields := map[string]bool{}
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			for _, v := range br.FieldViolations {
				fields[v.Field] = true
			}
		}
	}
	s.True(fields["nameEs"])
	s.True(fields["raceId"])
}

func (s *EndToEndTestSuite) TestPlaySessionAndOwnership() {
	owner := s.register("ana", "ana@example.com")
	stranger := s.register("bob", "bob@example.com")

	created, err := s.character.CreateCharacter(owner, &arcanumv1alpha1.CreateCharacterRequest{
		NameEs:  "Lia",
		NameEn:  "Lia the Bold",
		RaceID:  "human",
		ClassID: "fighter",
	})
	s.Require().NoError(err)
	id := created.Character.ID

	_, err = s.character.GetCharacterSheet(stranger, &arcanumv1alpha1.GetCharacterSheetRequest{CharacterID: id})
	s.Equal(codes.NotFound, status.Code(err))

	hp := int32(3)
	gold := int32(15)
	state, err := s.character.UpdateGameState(owner, &arcanumv1alpha1.UpdateGameStateRequest{
		CharacterID: id,
		Patch:       &arcanumv1alpha1.GameStatePatch{CurrentHealth: &hp, CurrentGold: &gold},
	})
	s.Require().NoError(err)
	s.Equal(int32(3), state.GameState.CurrentHealth)
	s.Equal(created.Character.Health.Maximum, state.GameState.MaximumHealth)

	conditions, err := s.character.ReplaceConditions(owner, &arcanumv1alpha1.ReplaceConditionsRequest{
		CharacterID:  id,
		ConditionIDs: []string{" poisoned ", "poisoned", ""},
	})
	s.Require().NoError(err)
	s.Equal([]string{"poisoned"}, conditions.ConditionIDs)

	item, err := s.character.AddInventoryItem(owner, &arcanumv1alpha1.AddInventoryItemRequest{CharacterID: id, Name: "Cuerda"})
	s.Require().NoError(err)
	s.Equal(int32(1), item.Item.Quantity)

	en := metadata.AppendToOutgoingContext(owner, "accept-language", "en")
	sheet, err := s.character.GetCharacterSheet(en, &arcanumv1alpha1.GetCharacterSheetRequest{CharacterID: id})
	s.Require().NoError(err)
	s.Equal("Lia the Bold", sheet.Character.DisplayName)
	s.Equal("Human", sheet.Character.Race.DisplayName)
	s.Equal(int32(3), sheet.Character.Health.Current)
	s.Equal(int32(15), sheet.Character.Gold)
	s.Equal([]string{"poisoned"}, sheet.Character.ActiveConditions)
	s.Require().Len(sheet.Character.Inventory, 1)
	s.Equal("Cuerda", sheet.Character.Inventory[0].Name)

	list, err := s.character.ListCharacters(stranger, &arcanumv1alpha1.ListCharactersRequest{})
	s.Require().NoError(err)
	s.Empty(list.Characters)

	_, err = s.character.DeleteCharacter(owner, &arcanumv1alpha1.DeleteCharacterRequest{CharacterID: id})
	s.Require().NoError(err)

	_, err = s.character.GetCharacterSheet(owner, &arcanumv1alpha1.GetCharacterSheetRequest{CharacterID: id})
	s.Equal(codes.NotFound, status.Code(err))
}
