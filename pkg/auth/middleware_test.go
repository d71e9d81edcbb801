package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	verifier := NewJWTVerifier("test-secret")
	validToken, err := verifier.GenerateToken(Identity{ID: "uid-1", Name: "Amina"}, time.Now().Add(time.Hour))
	require.NoError(t, err)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectedID     string
	}{
		{name: "Missing header", header: "", expectedStatus: http.StatusUnauthorized},
		{name: "Not a bearer token", header: "Basic Zm9vOmJhcg==", expectedStatus: http.StatusUnauthorized},
		{name: "Invalid token", header: "Bearer garbage", expectedStatus: http.StatusUnauthorized},
		{name: "Valid token", header: "Bearer " + validToken, expectedStatus: http.StatusOK, expectedID: "uid-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen *Identity
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = IdentityFrom(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			Middleware(verifier)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedID == "" {
				assert.Nil(t, seen)
				return
			}
			require.NotNil(t, seen)
			assert.Equal(t, tt.expectedID, seen.ID)
		})
	}
}
