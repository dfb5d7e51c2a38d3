package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doclibhq/doclib-be/types"
)

func TestGenerateAndParseUserToken(t *testing.T) {
	user := &types.User{ID: "user-1", Email: "alice@example.com"}

	token, err := GenerateUserToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseUserToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.ID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestParseUserToken_Garbage(t *testing.T) {
	_, err := ParseUserToken("not.a.token")
	assert.Error(t, err)
}

func TestParseUserToken_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := GenerateUserToken(&types.User{ID: "user-1", Email: "alice@example.com"})
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	_, err = ParseUserToken(token)
	assert.Error(t, err)
}
