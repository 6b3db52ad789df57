package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventdirectory/internal/domain"
)

func TestJWTTokens_IssueAndVerify(t *testing.T) {
	tokens := NewJWTTokens("test-secret", 24*time.Hour)

	token, err := tokens.Issue("user-123", "u@example.com", domain.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := jwt.ParseWithClaims(token, &jwtClaims{}, func(t *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(*jwtClaims)
	require.True(t, ok)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "u@example.com", claims.Email)
	assert.Equal(t, "ADMIN", claims.Role)

	userID, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestJWTTokens_VerifyRejectsBadTokens(t *testing.T) {
	tokens := NewJWTTokens("test-secret", time.Hour)

	_, err := tokens.Verify("not-a-token")
	require.Error(t, err)

	other := NewJWTTokens("other-secret", time.Hour)
	token, err := other.Issue("user-1", "u@example.com", domain.RoleUser)
	require.NoError(t, err)
	_, err = tokens.Verify(token)
	require.Error(t, err)
}

func TestJWTTokens_VerifyRejectsExpired(t *testing.T) {
	tokens := NewJWTTokens("test-secret", -time.Minute)
	token, err := tokens.Issue("user-1", "u@example.com", domain.RoleUser)
	require.NoError(t, err)

	_, err = tokens.Verify(token)
	require.Error(t, err)
}
