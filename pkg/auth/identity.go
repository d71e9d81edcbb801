package auth

import (
	"context"
	"errors"
)

var ErrInvalidToken = errors.New("invalid token")

// Identity is the verified caller as reported by the identity provider.
type Identity struct {
	ID    string
	Email string
	Name  string
}

type Verifier interface {
	Verify(ctx context.Context, rawToken string) (*Identity, error)
}

type ContextKey string

const IdentityKey ContextKey = "identity"

func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, identity)
}

// IdentityFrom returns the caller stored by Middleware, or nil for anonymous requests.
func IdentityFrom(ctx context.Context) *Identity {
	identity, _ := ctx.Value(IdentityKey).(*Identity)
	return identity
}
