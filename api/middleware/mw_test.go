package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/EO-DataHub/eodhp-admin-services/internal/authn"
	"github.com/golang-jwt/jwt"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTMiddleware_MissingHeader(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached without a token")
	})

	req := httptest.NewRequest(http.MethodGet, "/accounts/pending", nil)
	w := httptest.NewRecorder()
	JWTMiddleware(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTMiddleware_InvalidFormat(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached with a malformed header")
	})

	req := httptest.NewRequest(http.MethodGet, "/accounts/pending", nil)
	req.Header.Add("Authorization", "Basic abc")
	w := httptest.NewRecorder()
	JWTMiddleware(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTMiddleware_PopulatesClaims(t *testing.T) {
	in := authn.Claims{Username: "operator"}
	in.RealmAccess.Roles = []string{authn.AdminRole}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, in).SignedString([]byte("secret"))
	require.NoError(t, err)

	var got authn.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Context().Value(ClaimsKey).(authn.Claims)
		assert.Equal(t, token, r.Context().Value(TokenKey))
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	req.Header.Add("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	JWTMiddleware(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "operator", got.Username)
}

func TestRequireRole(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireRole(authn.AdminRole)(ok)

	logger := zerolog.Nop()
	base := logger.WithContext(context.Background())

	admin := authn.Claims{Username: "operator"}
	admin.RealmAccess.Roles = []string{authn.AdminRole}

	tests := []struct {
		name   string
		ctx    context.Context
		status int
	}{
		{"no claims", base, http.StatusUnauthorized},
		{"missing role", context.WithValue(base, ClaimsKey, authn.Claims{Username: "viewer"}), http.StatusForbidden},
		{"admin", context.WithValue(base, ClaimsKey, admin), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/clients", nil).WithContext(tt.ctx)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestWithLogger(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotNil(t, zerolog.Ctx(r.Context()))
		w.WriteHeader(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	WithLogger(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/clients", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
