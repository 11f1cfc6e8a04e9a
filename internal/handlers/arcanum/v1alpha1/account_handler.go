// Package v1alpha1 handles the arcanum grpc service interfaces
package v1alpha1

import (
	"context"

	arcanumv1alpha1 "github.com/KirkDiggler/arcanum-api/internal/api/arcanum/v1alpha1"
	"github.com/KirkDiggler/arcanum-api/internal/entities"
	"github.com/KirkDiggler/arcanum-api/internal/errors"
	"github.com/KirkDiggler/arcanum-api/internal/services/account"
)

// AccountHandlerConfig holds dependencies for the account handler
type AccountHandlerConfig struct {
	AccountService account.Service
}

// Validate ensures all required dependencies are present
func (c *AccountHandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.AccountService == nil {
		return errors.InvalidArgument("account service is required")
	}
	return nil
}

// AccountHandler implements the account gRPC service
type AccountHandler struct {
	accountService account.Service
}

var _ arcanumv1alpha1.AccountServiceServer = (*AccountHandler)(nil)

// NewAccountHandler creates a new account handler with the given configuration
func NewAccountHandler(cfg *AccountHandlerConfig) (*AccountHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &AccountHandler{
		accountService: cfg.AccountService,
	}, nil
}

// AuthFuncOverride lets register and login through without a token.
func (h *AccountHandler) AuthFuncOverride(ctx context.Context, _ string) (context.Context, error) {
	return ctx, nil
}

// Register creates an account and returns a session token
func (h *AccountHandler) Register(
	ctx context.Context,
	req *arcanumv1alpha1.RegisterRequest,
) (*arcanumv1alpha1.RegisterResponse, error) {
	output, err := h.accountService.Register(ctx, &account.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &arcanumv1alpha1.RegisterResponse{
		User:  convertUserToWire(output.User),
		Token: output.Token,
	}, nil
}

// Login exchanges credentials for a session token
func (h *AccountHandler) Login(
	ctx context.Context,
	req *arcanumv1alpha1.LoginRequest,
) (*arcanumv1alpha1.LoginResponse, error) {
	output, err := h.accountService.Login(ctx, &account.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &arcanumv1alpha1.LoginResponse{
		User:  convertUserToWire(output.User),
		Token: output.Token,
	}, nil
}

func convertUserToWire(user *entities.User) *arcanumv1alpha1.User {
	if user == nil {
		return nil
	}
	return &arcanumv1alpha1.User{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
