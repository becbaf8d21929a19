package authn

import (
	"testing"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

func TestParseClaims(t *testing.T) {
	in := Claims{Username: "operator", Email: "op@example.com"}
	in.Subject = "user-1"
	in.RealmAccess.Roles = []string{"default-roles", AdminRole}

	claims, err := ParseClaims(signedToken(t, in))
	require.NoError(t, err)

	assert.Equal(t, "operator", claims.Username)
	assert.Equal(t, "user-1", claims.Subject)
	assert.True(t, claims.HasRole(AdminRole))
	assert.False(t, claims.HasRole("workspace_owner"))
}

func TestParseClaims_NotAJWT(t *testing.T) {
	_, err := ParseClaims("not-a-token")
	assert.Error(t, err)
}
