package auth

import (
	"context"
	"log/slog"

	grpcauth "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"

	"github.com/KirkDiggler/arcanum-api/internal/errors"
)

// AuthFunc returns a grpcauth.AuthFunc that requires a bearer token and
// stores its subject in the context. Services that implement
// grpcauth.ServiceAuthFuncOverride skip it.
func AuthFunc(tokens *TokenManager) grpcauth.AuthFunc {
	return func(ctx context.Context) (context.Context, error) {
		raw, err := grpcauth.AuthFromMD(ctx, "bearer")
		if err != nil {
			return nil, err
		}

		claims, err := tokens.Verify(raw)
		if err != nil {
			slog.DebugContext(ctx, "rejected bearer token", "error", err.Error())
			return nil, errors.ToGRPCError(err)
		}

		return WithUserID(ctx, claims.Subject), nil
	}
}
