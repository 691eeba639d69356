package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-sniper/config"
	"go-sniper/database"
	"go-sniper/models"
)

func newTestService(t *testing.T) (*Service, *database.DB) {
	t.Helper()

	cfg := config.Config{DBPath: ":memory:", JWTSecret: "test-secret", JWTExpiry: time.Hour}
	db, err := database.New(cfg)
	require.NoError(t, err)

	return NewService(db, cfg), db
}

func TestService_Register(t *testing.T) {
	svc, _ := newTestService(t)

	user, token, err := svc.Register("alice", "A@X.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "a@x.com", user.Email, "email is stored lowercased")
	assert.Equal(t, models.RoleUser, user.Role)
	assert.True(t, user.IsActive)
	assert.True(t, user.Preferences.Notifications)
	assert.NotEqual(t, "secret1", user.PasswordHash)
}

func TestService_RegisterConflicts(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.Register("alice", "a@x.com", "secret1")
	require.NoError(t, err)

	_, _, err = svc.Register("alice", "b@y.com", "secret2")
	assert.ErrorIs(t, err, models.ErrConflict, "duplicate handle")

	_, _, err = svc.Register("bob", "a@x.com", "secret2")
	assert.ErrorIs(t, err, models.ErrConflict, "duplicate email")
}

func TestService_RegisterValidation(t *testing.T) {
	svc, _ := newTestService(t)

	cases := []struct {
		name            string
		username, email string
		password        string
	}{
		{"short username", "al", "a@x.com", "secret1"},
		{"empty email", "alice", "", "secret1"},
		{"short password", "alice", "a@x.com", "12345"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Register(tc.username, tc.email, tc.password)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func TestService_Login(t *testing.T) {
	svc, _ := newTestService(t)

	registered, _, err := svc.Register("alice", "a@x.com", "secret1")
	require.NoError(t, err)
	assert.Nil(t, registered.LastLogin)

	user, token, err := svc.Login("a@x.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotNil(t, user.LastLogin)
}

func TestService_LoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.Register("alice", "a@x.com", "secret1")
	require.NoError(t, err)

	_, _, wrongPassword := svc.Login("a@x.com", "wrong")
	_, _, unknownEmail := svc.Login("nouser@x.com", "anything")

	assert.ErrorIs(t, wrongPassword, models.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, models.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestService_Authenticate(t *testing.T) {
	svc, db := newTestService(t)

	registered, token, err := svc.Register("alice", "a@x.com", "secret1")
	require.NoError(t, err)

	user, err := svc.Authenticate("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, err = svc.Authenticate("")
	assert.ErrorIs(t, err, models.ErrUnauthenticated)
	_, err = svc.Authenticate(token)
	assert.ErrorIs(t, err, models.ErrUnauthenticated, "missing Bearer prefix")
	_, err = svc.Authenticate("Bearer garbage")
	assert.ErrorIs(t, err, models.ErrUnauthenticated)

	// A valid token stops resolving once the account is deactivated.
	registered.IsActive = false
	require.NoError(t, db.SaveUser(registered))
	_, err = svc.Authenticate("Bearer " + token)
	assert.ErrorIs(t, err, models.ErrUnauthenticated)
}

func TestService_TokenValidAfterLogout(t *testing.T) {
	// Logout is stateless: no revocation exists, tokens stay valid
	// until natural expiry.
	svc, _ := newTestService(t)

	_, token, err := svc.Register("alice", "a@x.com", "secret1")
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = svc.Authenticate("Bearer " + token)
		assert.NoError(t, err)
	}
}

func TestService_RequireRole(t *testing.T) {
	svc, _ := newTestService(t)

	member := &models.User{Role: models.RoleUser}
	admin := &models.User{Role: models.RoleAdmin}

	assert.NoError(t, svc.RequireRole(admin, models.RoleAdmin))
	assert.NoError(t, svc.RequireRole(member, models.RoleUser, models.RoleAdmin))
	assert.ErrorIs(t, svc.RequireRole(member, models.RoleAdmin), models.ErrForbidden)
}
