// Package account implements registration and login
package account

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/KirkDiggler/arcanum-api/internal/auth"
	"github.com/KirkDiggler/arcanum-api/internal/entities"
	"github.com/KirkDiggler/arcanum-api/internal/errors"
	"github.com/KirkDiggler/arcanum-api/internal/pkg/clock"
	"github.com/KirkDiggler/arcanum-api/internal/pkg/idgen"
	userrepo "github.com/KirkDiggler/arcanum-api/internal/repositories/user"
	"github.com/KirkDiggler/arcanum-api/internal/services/account"
)

// errBadCredentials is returned for an unknown email and a wrong password
// alike.
const errBadCredentials = "invalid email or password"

// Config holds the dependencies for the account orchestrator
type Config struct {
	UserRepo     userrepo.Repository
	Tokens       *auth.TokenManager
	IDGenerator  idgen.Generator
	Clock        clock.Clock
	PasswordCost int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.UserRepo == nil {
		vb.RequiredField("UserRepo")
	}
	if c.Tokens == nil {
		vb.RequiredField("Tokens")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.PasswordCost < 0 {
		vb.InvalidField("PasswordCost", "must not be negative")
	}

	return vb.Build()
}

// Orchestrator implements the account.Service interface
type Orchestrator struct {
	userRepo     userrepo.Repository
	tokens       *auth.TokenManager
	idGenerator  idgen.Generator
	clock        clock.Clock
	passwordCost int
}

// New creates a new account orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &Orchestrator{
		userRepo:     cfg.UserRepo,
		tokens:       cfg.Tokens,
		idGenerator:  cfg.IDGenerator,
		clock:        c,
		passwordCost: cfg.PasswordCost,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ account.Service = (*Orchestrator)(nil)

// Register creates an account and returns a token for it
func (o *Orchestrator) Register(ctx context.Context, input *account.RegisterInput) (*account.RegisterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	username := strings.TrimSpace(input.Username)
	email := NormalizeEmail(input.Email)

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("username", username, vb)
	if email == "" {
		vb.RequiredField("email")
	} else if !validEmail(email) {
		vb.InvalidField("email", "not an email address")
	}
	if input.Password == "" {
		vb.RequiredField("password")
	} else {
		errors.ValidateMinLength("password", input.Password, auth.MinPasswordLength, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, o.passwordCost)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "password cannot be used")
	}

	now := o.clock.Now().Unix()
	out, err := o.userRepo.Create(ctx, userrepo.CreateInput{
		User: &entities.User{
			ID:           o.idGenerator.Generate(),
			Username:     username,
			Email:        email,
			PasswordHash: hash,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	})
	if err != nil {
		if errors.IsAlreadyExists(err) {
			return nil, errors.AlreadyExists("email is already registered")
		}
		return nil, errors.Wrap(err, "failed to create user")
	}

	token, err := o.tokens.Issue(out.User)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "user registered", "user_id", out.User.ID)

	return &account.RegisterOutput{User: out.User, Token: token}, nil
}

// Login checks credentials and returns a fresh token
func (o *Orchestrator) Login(ctx context.Context, input *account.LoginInput) (*account.LoginOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	email := NormalizeEmail(input.Email)

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("email", email, vb)
	if input.Password == "" {
		vb.RequiredField("password")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.userRepo.GetByEmail(ctx, userrepo.GetByEmailInput{Email: email})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.Unauthenticated(errBadCredentials)
		}
		return nil, errors.Wrap(err, "failed to look up user")
	}

	if !auth.CheckPassword(out.User.PasswordHash, input.Password) {
		slog.DebugContext(ctx, "login rejected", "user_id", out.User.ID)
		return nil, errors.Unauthenticated(errBadCredentials)
	}

	token, err := o.tokens.Issue(out.User)
	if err != nil {
		return nil, err
	}

	return &account.LoginOutput{User: out.User, Token: token}, nil
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validEmail accepts a bare address, without a display name.
func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
