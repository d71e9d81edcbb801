package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

const issuer = "charity"

type Claims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.StandardClaims
}

// JWTVerifier accepts HS256 tokens signed with a shared secret. It is meant for
// local runs and tests; production deployments verify provider tokens with OIDC.
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

func (s *JWTVerifier) GenerateToken(identity Identity, expirationTime time.Time) (string, error) {
	claims := Claims{
		Email: identity.Email,
		Name:  identity.Name,
		StandardClaims: jwt.StandardClaims{
			Subject:   identity.ID,
			ExpiresAt: expirationTime.Unix(),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTVerifier) Verify(_ context.Context, rawToken string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(rawToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Subject == "" || claims.Issuer != issuer {
		return nil, fmt.Errorf("%w: claims", ErrInvalidToken)
	}

	return &Identity{ID: claims.Subject, Email: claims.Email, Name: claims.Name}, nil
}
