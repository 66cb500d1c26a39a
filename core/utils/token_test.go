package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateToken(userID, "ana@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateAndParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestTokenExpired(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "ana@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateAndParseToken(token)
	assert.Error(t, err)
}

func TestTokenGarbage(t *testing.T) {
	_, err := ValidateAndParseToken("not-a-token")
	assert.Error(t, err)

	_, err = ValidateAndParseToken("")
	assert.Error(t, err)
}
