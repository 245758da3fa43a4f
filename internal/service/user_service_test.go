package service

import (
	"testing"

	"learnify_backend/internal/model"
	"learnify_backend/internal/repository"
	"learnify_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newUserFixture(t *testing.T) (*UserService, *gorm.DB) {
	db := setupTestDB(t)
	return NewUserService(repository.NewUserRepository(db)), db
}

func TestUpdateKeepsPasswordWhenBlank(t *testing.T) {
	svc, db := newUserFixture(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("original"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := &model.User{
		Username: "alice",
		Email:    "alice@example.com",
		Password: string(hash),
		Role:     model.Student,
		Active:   true,
	}
	require.NoError(t, db.Create(user).Error)

	updated, err := svc.Update(user.ID, &model.User{FirstName: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, "Alice", updated.FirstName)
	assert.Equal(t, string(hash), updated.Password, "blank password must keep the stored hash")

	updated, err = svc.Update(user.ID, &model.User{Password: "newpass123"})
	require.NoError(t, err)
	assert.NotEqual(t, string(hash), updated.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("newpass123")))
}

func TestUpdateRejectsTakenUsername(t *testing.T) {
	svc, db := newUserFixture(t)

	createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	_, err := svc.Update(bob.ID, &model.User{Username: "alice"})
	assert.ErrorIs(t, err, util.ErrUsernameRegistered)
}

func TestSetActiveAndRole(t *testing.T) {
	svc, db := newUserFixture(t)
	user := createTestUser(t, db, "alice")

	require.NoError(t, svc.SetActive(user.ID, false))
	got, err := svc.Get(user.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)

	require.NoError(t, svc.SetRole(user.ID, model.Instructor))
	got, err = svc.Get(user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.Instructor, got.Role)

	assert.ErrorIs(t, svc.SetRole(user.ID, model.UserRole("superuser")), util.ErrInvalidRole)
}
