package service

import (
	"testing"

	"github.com/guanzhi08/aces-unit-test/internal/repository"
	"github.com/guanzhi08/aces-unit-test/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccountService(t *testing.T) *AccountService {
	t.Helper()
	return NewAccountService(repository.NewUserRepository(newTestDB(t)))
}

func TestCreateAccountStoresDigestOnly(t *testing.T) {
	svc := newAccountService(t)

	user, err := svc.Create("alice", "s3cret")
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "s3cret", user.Password)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestCreateAccountTrimsFields(t *testing.T) {
	svc := newAccountService(t)

	user, err := svc.Create("  alice  ", "  s3cret  ")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = svc.Login("alice", "s3cret")
	assert.NoError(t, err)
}

func TestCreateAccountRejectsBlankFields(t *testing.T) {
	svc := newAccountService(t)

	for _, c := range []struct{ username, password string }{
		{"", "pw"},
		{"   ", "pw"},
		{"alice", ""},
		{"alice", "   "},
	} {
		_, err := svc.Create(c.username, c.password)
		assert.ErrorIs(t, err, util.ErrCredentialsRequired)
	}
}

func TestCreateAccountDuplicateUsername(t *testing.T) {
	svc := newAccountService(t)

	_, err := svc.Create("alice", "s3cret")
	require.NoError(t, err)

	_, err = svc.Create("alice", "other")
	assert.ErrorIs(t, err, util.ErrUsernameTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAccountService(t)

	_, err := svc.Create("alice", "s3cret")
	require.NoError(t, err)

	_, err = svc.Login("alice", "wrong")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newAccountService(t)

	_, err := svc.Login("ghost", "whatever")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}
