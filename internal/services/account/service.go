// Package account defines the interface for registration and login
package account

//go:generate mockgen -destination=mock/mock_service.go -package=accountmock github.com/KirkDiggler/arcanum-api/internal/services/account Service

import (
	"context"

	"github.com/KirkDiggler/arcanum-api/internal/entities"
)

// Service defines the interface for account operations
type Service interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}

// RegisterInput defines the request for creating an account
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// RegisterOutput returns the new user and a bearer token
type RegisterOutput struct {
	User  *entities.User
	Token string
}

// LoginInput defines the request for logging in
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput returns the user and a bearer token
type LoginOutput struct {
	User  *entities.User
	Token string
}
