package service

import (
	"testing"
	"time"

	"learnify_backend/internal/config"
	"learnify_backend/internal/model"
	"learnify_backend/internal/repository"
	"learnify_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthFixture(t *testing.T) (*AuthService, *gorm.DB) {
	db := setupTestDB(t)
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpireTime = time.Hour

	svc := NewAuthService(repository.NewUserRepository(db), cfg)
	return svc, db
}

func TestRegisterAndLogin(t *testing.T) {
	svc, db := newAuthFixture(t)

	user := &model.User{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	}
	token, err := svc.Register(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, model.Student, user.Role, "role defaults to student")
	assert.True(t, user.Active)

	var stored model.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.NotEqual(t, "secret123", stored.Password, "password must be hashed")

	loginToken, loggedIn, err := svc.Login("alice", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, loginToken)
	assert.Equal(t, user.ID, loggedIn.ID)

	claims, err := util.ParseJWT(loginToken, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Register(&model.User{Username: "alice", Email: "a1@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Register(&model.User{Username: "alice", Email: "a2@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, util.ErrUsernameRegistered)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Register(&model.User{Username: "alice", Email: "same@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Register(&model.User{Username: "bob", Email: "same@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestLoginBadPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Register(&model.User{Username: "alice", Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, _, err = svc.Login("alice", "wrong")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	_, _, err = svc.Login("nobody", "secret123")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestLoginDeactivatedAccount(t *testing.T) {
	svc, db := newAuthFixture(t)

	user := &model.User{Username: "alice", Email: "alice@example.com", Password: "secret123"}
	_, err := svc.Register(user)
	require.NoError(t, err)

	require.NoError(t, db.Model(&model.User{}).Where("id = ?", user.ID).Update("active", false).Error)

	_, _, err = svc.Login("alice", "secret123")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}
