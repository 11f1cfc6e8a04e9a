package client

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	arcanumv1alpha1 "github.com/KirkDiggler/arcanum-api/internal/api/arcanum/v1alpha1"
)

var (
	username string
	email    string
	password string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and print its token",
	RunE:  runRegister,
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and print a token",
	RunE:  runLogin,
}

func init() {
	registerCmd.Flags().StringVar(&username, "username", "", "Display name")
	registerCmd.Flags().StringVar(&email, "email", "", "Email address")
	registerCmd.Flags().StringVar(&password, "password", "", "Password")
	loginCmd.Flags().StringVar(&email, "email", "", "Email address")
	loginCmd.Flags().StringVar(&password, "password", "", "Password")
}

func runRegister(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createAccountClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	log.Printf("Registering %s on %s...", email, serverAddr)

	resp, err := client.Register(ctx, &arcanumv1alpha1.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("failed to register: %w", err)
	}

	if jsonOutput {
		return printJSON(resp)
	}
	fmt.Printf("Registered %s (ID: %s)\n", resp.User.Username, resp.User.ID)
	fmt.Printf("export %s=%s\n", TokenEnv, resp.Token)
	return nil
}

func runLogin(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createAccountClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.Login(ctx, &arcanumv1alpha1.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("failed to log in: %w", err)
	}

	if jsonOutput {
		return printJSON(resp)
	}
	fmt.Printf("export %s=%s\n", TokenEnv, resp.Token)
	return nil
}
