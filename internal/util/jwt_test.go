package util

import (
	"testing"
	"time"

	"learnify_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *model.User {
	u := &model.User{
		Username: "alice",
		Email:    "alice@example.com",
		Role:     model.Instructor,
	}
	u.ID = 42
	return u
}

func TestGenerateAndParseJWT(t *testing.T) {
	user := testUser()

	token, err := GenerateJWT(user, "test-secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, model.Instructor, claims.Role)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT(testUser(), "test-secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestParseJWTRejectsExpired(t *testing.T) {
	token, err := GenerateJWT(testUser(), "test-secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, "test-secret")
	assert.Error(t, err)
}

func TestParseJWTRejectsGarbage(t *testing.T) {
	_, err := ParseJWT("not-a-token", "test-secret")
	assert.Error(t, err)
}

func TestIsTokenValidChecksSubject(t *testing.T) {
	user := testUser()
	token, err := GenerateJWT(user, "test-secret", time.Hour)
	require.NoError(t, err)

	assert.True(t, IsTokenValid(token, "test-secret", user))

	other := &model.User{Username: "bob"}
	assert.False(t, IsTokenValid(token, "test-secret", other))
}

func TestBase64SecretsAndRawSecretsMatch(t *testing.T) {
	// A base64 secret must sign with its decoded bytes, so the raw-byte
	// fallback for the same string must not verify it.
	token, err := GenerateJWT(testUser(), "c2VjcmV0LWtleS1mb3ItdGVzdHM=", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "c2VjcmV0LWtleS1mb3ItdGVzdHM=")
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
}
