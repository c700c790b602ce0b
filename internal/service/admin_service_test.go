package service

import (
	"testing"

	"github.com/guanzhi08/aces-unit-test/internal/repository"
	"github.com/guanzhi08/aces-unit-test/internal/util"
	"github.com/guanzhi08/aces-unit-test/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAdminService(t *testing.T) (*AdminService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	require.NoError(t, database.SeedAdminPassword(db, "admin123"))
	svc := NewAdminService(repository.NewAdminRepository(db), repository.NewUserRepository(db))
	return svc, db
}

func TestAdminSessionLifecycle(t *testing.T) {
	svc, _ := newAdminService(t)

	token, err := svc.Login("admin123")
	require.NoError(t, err)
	assert.Len(t, token, 64)

	valid, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.True(t, valid)

	require.NoError(t, svc.Logout(token))

	valid, err = svc.VerifyToken(token)
	require.NoError(t, err)
	assert.False(t, valid)

	// logout is idempotent
	assert.NoError(t, svc.Logout(token))
}

func TestAdminLoginWrongPassword(t *testing.T) {
	svc, _ := newAdminService(t)

	_, err := svc.Login("nope")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestAdminSessionsAreIndependent(t *testing.T) {
	svc, _ := newAdminService(t)

	first, err := svc.Login("admin123")
	require.NoError(t, err)
	second, err := svc.Login("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	require.NoError(t, svc.Logout(first))

	valid, err := svc.VerifyToken(second)
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestVerifyTokenFailsClosed(t *testing.T) {
	svc, _ := newAdminService(t)

	for _, token := range []string{"", "   ", "deadbeef"} {
		valid, err := svc.VerifyToken(token)
		require.NoError(t, err)
		assert.False(t, valid)
	}
}

func TestChangeAdminPassword(t *testing.T) {
	svc, _ := newAdminService(t)

	assert.ErrorIs(t, svc.ChangePassword("wrong", "newpass"), util.ErrInvalidCredentials)
	assert.ErrorIs(t, svc.ChangePassword("admin123", "   "), util.ErrPasswordRequired)

	require.NoError(t, svc.ChangePassword("admin123", "newpass"))

	_, err := svc.Login("admin123")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	_, err = svc.Login("newpass")
	assert.NoError(t, err)
}

func TestSeedAdminPasswordIsIdempotent(t *testing.T) {
	svc, db := newAdminService(t)

	require.NoError(t, svc.ChangePassword("admin123", "rotated"))

	// A restart re-runs the seed; the rotated password must survive.
	require.NoError(t, database.SeedAdminPassword(db, "admin123"))

	_, err := svc.Login("rotated")
	assert.NoError(t, err)
}

func TestAdminUserManagement(t *testing.T) {
	svc, db := newAdminService(t)
	accounts := NewAccountService(repository.NewUserRepository(db))

	_, err := accounts.Create("alice", "s3cret")
	require.NoError(t, err)
	_, err = accounts.Create("bob", "hunter2")
	require.NoError(t, err)

	users, err := svc.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)

	require.NoError(t, svc.ResetPassword("alice", "fresh"))
	_, err = accounts.Login("alice", "s3cret")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
	_, err = accounts.Login("alice", "fresh")
	assert.NoError(t, err)

	assert.ErrorIs(t, svc.ResetPassword("ghost", "pw"), util.ErrUserNotFound)

	require.NoError(t, svc.DeleteUser("bob"))
	assert.ErrorIs(t, svc.DeleteUser("bob"), util.ErrUserNotFound)

	users, err = svc.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 1)
}
