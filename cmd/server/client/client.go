// Package client provides test commands for the arcanum gRPC services
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	arcanumv1alpha1 "github.com/KirkDiggler/arcanum-api/internal/api/arcanum/v1alpha1"
	"github.com/KirkDiggler/arcanum-api/internal/pkg/locale"
)

// TokenEnv is read when --token is not given.
const TokenEnv = "ARCANUM_TOKEN"

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	token      string
	lang       string
	jsonOutput bool
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the arcanum services",
	Long:  `Client commands allow you to exercise arcanum by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&token, "token", "", "bearer token (default $"+TokenEnv+")")
	ClientCmd.PersistentFlags().StringVar(&lang, "lang", "es", "accept-language sent with every request")
	ClientCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	// Account commands
	ClientCmd.AddCommand(registerCmd)
	ClientCmd.AddCommand(loginCmd)

	// Catalog commands
	ClientCmd.AddCommand(listRacesCmd)
	ClientCmd.AddCommand(listClassesCmd)
	ClientCmd.AddCommand(getClassCmd)
	ClientCmd.AddCommand(listSpellsCmd)
	ClientCmd.AddCommand(spellSlotsCmd)

	// Character commands
	ClientCmd.AddCommand(createCharacterCmd)
	ClientCmd.AddCommand(getCharacterCmd)
	ClientCmd.AddCommand(listCharactersCmd)
	ClientCmd.AddCommand(updateStateCmd)
	ClientCmd.AddCommand(deleteCharacterCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}
	return conn, cleanup, nil
}

// requestContext carries the timeout, language and, when known, the token.
func requestContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)

	pairs := []string{locale.MetadataKey, lang}
	bearer := token
	if bearer == "" {
		bearer = os.Getenv(TokenEnv)
	}
	if bearer != "" {
		pairs = append(pairs, "authorization", "bearer "+bearer)
	}
	return metadata.AppendToOutgoingContext(ctx, pairs...), cancel
}

func createAccountClient() (arcanumv1alpha1.AccountServiceClient, func(), error) {
	conn, cleanup, err := createConnection()
	if err != nil {
		return nil, nil, err
	}
	return arcanumv1alpha1.NewAccountServiceClient(conn), cleanup, nil
}

func createCatalogClient() (arcanumv1alpha1.CatalogServiceClient, func(), error) {
	conn, cleanup, err := createConnection()
	if err != nil {
		return nil, nil, err
	}
	return arcanumv1alpha1.NewCatalogServiceClient(conn), cleanup, nil
}

func createCharacterClient() (arcanumv1alpha1.CharacterServiceClient, func(), error) {
	conn, cleanup, err := createConnection()
	if err != nil {
		return nil, nil, err
	}
	return arcanumv1alpha1.NewCharacterServiceClient(conn), cleanup, nil
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal response to JSON: %w", err)
	}
	fmt.Println(string(b))
	return nil
}
