package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	verifier := NewJWTVerifier("test-secret")

	tests := []struct {
		name           string
		identity       Identity
		expirationTime time.Time
	}{
		{
			name:           "Valid Token",
			identity:       Identity{ID: "uid-1", Email: "amina@example.com", Name: "Amina"},
			expirationTime: time.Now().Add(time.Hour),
		},
		{
			name:           "Expired Token",
			identity:       Identity{ID: "uid-1"},
			expirationTime: time.Now().Add(-time.Hour),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := verifier.GenerateToken(tt.identity, tt.expirationTime)

			assert.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func TestJWTVerifier_Verify(t *testing.T) {
	verifier := NewJWTVerifier("test-secret")

	tests := []struct {
		name        string
		tokenString string
		setup       func() string
		expected    *Identity
		expectError bool
	}{
		{
			name: "Valid Token",
			setup: func() string {
				token, _ := verifier.GenerateToken(Identity{ID: "uid-1", Email: "amina@example.com", Name: "Amina"}, time.Now().Add(time.Hour))
				return token
			},
			expected: &Identity{ID: "uid-1", Email: "amina@example.com", Name: "Amina"},
		},
		{
			name:        "Invalid Token",
			tokenString: "invalid.token.string",
			expectError: true,
		},
		{
			name: "Expired Token",
			setup: func() string {
				token, _ := verifier.GenerateToken(Identity{ID: "uid-1"}, time.Now().Add(-time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Wrong Secret",
			setup: func() string {
				token, _ := NewJWTVerifier("other-secret").GenerateToken(Identity{ID: "uid-1"}, time.Now().Add(time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Missing Subject",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
					ExpiresAt: time.Now().Add(time.Hour).Unix(),
					Issuer:    issuer,
				})
				signedToken, _ := token.SignedString([]byte("test-secret"))
				return signedToken
			},
			expectError: true,
		},
		{
			name: "Foreign Issuer",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
					Subject:   "uid-1",
					ExpiresAt: time.Now().Add(time.Hour).Unix(),
					Issuer:    "someone-else",
				})
				signedToken, _ := token.SignedString([]byte("test-secret"))
				return signedToken
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenString := tt.tokenString
			if tt.setup != nil {
				tokenString = tt.setup()
			}

			identity, err := verifier.Verify(context.Background(), tokenString)

			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalidToken)
				assert.Nil(t, identity)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, identity)
		})
	}
}
