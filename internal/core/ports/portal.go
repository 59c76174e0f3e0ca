package ports

import (
	"context"

	"github.com/jobhive/portal-client/internal/core/domain"
)

// IdentityAPI is the slice of the gateway the session service depends on:
// login, registration, and the current-identity fetch used during
// rehydration.
type IdentityAPI interface {
	Login(ctx context.Context, email, password string) (*domain.AuthResult, error)
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResult, error)
	Me(ctx context.Context) (*domain.User, error)
}
