package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/samadhan-service/internal/auth"
	"github.com/spec-kit/samadhan-service/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := auth.NewTokenManager("unit-test-secret", 15)

	token, exp, err := tm.GenerateToken("user-42", domain.RoleCitizen)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.False(t, exp.IsZero())

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
	assert.Equal(t, domain.RoleCitizen, claims.Role)
}

func TestTokenCarriesAdminRole(t *testing.T) {
	tm := auth.NewTokenManager("unit-test-secret", 15)

	token, _, err := tm.GenerateToken("admin-1", domain.RoleAdmin)
	require.NoError(t, err)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	issuer := auth.NewTokenManager("secret-a", 15)
	verifier := auth.NewTokenManager("secret-b", 15)

	token, _, err := issuer.GenerateToken("user-42", domain.RoleCitizen)
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.Error(t, err)
}

func TestTokenRejectsGarbage(t *testing.T) {
	tm := auth.NewTokenManager("unit-test-secret", 15)
	_, err := tm.ParseToken("not.a.jwt")
	assert.Error(t, err)
}
