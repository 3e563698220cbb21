package service

import (
	"testing"

	"quizapp_backend/internal/model"
	"quizapp_backend/internal/repository"
	"quizapp_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := newTestDB(t)
	return NewAuthService(repository.NewUserRepository(db))
}

func TestRegisterAndVerify(t *testing.T) {
	svc := newAuthService(t)

	user := &model.User{Name: "Alice", Username: "alice", Role: model.Author}
	require.NoError(t, svc.Register(user, "correct horse battery"))
	require.NotZero(t, user.ID)

	got, err := svc.Verify("alice", "correct horse battery")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, model.Author, got.Role)

	_, err = svc.Verify("alice", "wrong password")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	_, err = svc.Verify("nobody", "correct horse battery")
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestRegisterHashesPassword(t *testing.T) {
	svc := newAuthService(t)

	user := &model.User{Name: "Alice", Username: "alice", Role: model.Respondent}
	require.NoError(t, svc.Register(user, "secret-password"))

	stored, err := svc.UserRepo.FindByUsername("alice")
	require.NoError(t, err)
	assert.NotEqual(t, "secret-password", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newAuthService(t)

	first := &model.User{Name: "Alice", Username: "alice", Role: model.Author}
	require.NoError(t, svc.Register(first, "password-one"))

	second := &model.User{Name: "Another Alice", Username: "alice", Role: model.Respondent}
	err := svc.Register(second, "password-two")
	assert.ErrorIs(t, err, util.ErrDuplicateUsername)

	// The failed attempt must not have written anything.
	var count int64
	require.NoError(t, svc.UserRepo.DB.Model(&model.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	got, err := svc.Verify("alice", "password-one")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc := newAuthService(t)

	user := &model.User{Name: "Eve", Username: "eve", Role: model.UserRole("admin")}
	err := svc.Register(user, "whatever-pass")
	assert.ErrorIs(t, err, util.ErrInvalidRole)
}
