package auth

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.uber.org/zap"
)

type idTokenClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// OIDCVerifier checks ID tokens issued by an external provider, e.g. Firebase
// (issuer https://securetoken.google.com/<project>, audience <project>).
type OIDCVerifier struct {
	verifier *oidc.IDTokenVerifier
}

func NewOIDCVerifier(ctx context.Context, issuerURL, audience string) (*OIDCVerifier, error) {
	provider, err := oidc.NewProvider(ctx, issuerURL)
	if err != nil {
		return nil, fmt.Errorf("can't discover oidc provider %s: %w", issuerURL, err)
	}
	return &OIDCVerifier{verifier: provider.Verifier(&oidc.Config{ClientID: audience})}, nil
}

func (v *OIDCVerifier) Verify(ctx context.Context, rawToken string) (*Identity, error) {
	idToken, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		zap.L().Debug("oidc token rejected", zap.Error(err))
		return nil, ErrInvalidToken
	}

	var claims idTokenClaims
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("%w: claims", ErrInvalidToken)
	}
	if idToken.Subject == "" {
		return nil, fmt.Errorf("%w: empty subject", ErrInvalidToken)
	}

	return &Identity{ID: idToken.Subject, Email: claims.Email, Name: claims.Name}, nil
}
