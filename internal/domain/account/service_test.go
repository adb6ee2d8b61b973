package account

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkful/forkful/internal/session"
)

type mockStore struct {
	login      *LoginResult
	adminLogin *AdminLoginResult
	profile    *Profile
	err        error

	registered *Registration
	lastUserID string
}

func (m *mockStore) Login(_ context.Context, _, _ string) (*LoginResult, error) {
	return m.login, m.err
}

func (m *mockStore) Register(_ context.Context, reg Registration) error {
	m.registered = &reg
	return m.err
}

func (m *mockStore) AdminLogin(_ context.Context, _, _ string) (*AdminLoginResult, error) {
	return m.adminLogin, m.err
}

func (m *mockStore) Profile(_ context.Context, userID string) (*Profile, error) {
	m.lastUserID = userID
	return m.profile, m.err
}

func newService(t *testing.T, store Store) (*Service, *session.Store) {
	t.Helper()
	sessions := session.NewStore(filepath.Join(t.TempDir(), "session.yaml"))
	return NewService(store, sessions), sessions
}

func TestService_Login(t *testing.T) {
	t.Run("persists token and user id", func(t *testing.T) {
		svc, sessions := newService(t, &mockStore{
			login: &LoginResult{Token: "tok", UserID: "u1"},
		})

		sess, err := svc.Login(context.Background(), "a@b.c", "secret")
		require.NoError(t, err)
		assert.Equal(t, "u1", sess.UserID)

		stored, err := sessions.Load()
		require.NoError(t, err)
		assert.Equal(t, "tok", stored.Token)
		assert.Equal(t, "u1", stored.UserID)
	})

	t.Run("keeps the admin identity", func(t *testing.T) {
		svc, sessions := newService(t, &mockStore{
			login: &LoginResult{Token: "tok", UserID: "u1"},
		})
		require.NoError(t, sessions.Save(session.Session{AdminToken: "at", AdminID: "a1"}))

		_, err := svc.Login(context.Background(), "a@b.c", "secret")
		require.NoError(t, err)

		stored, err := sessions.Load()
		require.NoError(t, err)
		assert.Equal(t, "at", stored.AdminToken)
		assert.Equal(t, "u1", stored.UserID)
	})

	t.Run("failed login leaves no session", func(t *testing.T) {
		svc, sessions := newService(t, &mockStore{err: errors.New("bad credentials")})

		_, err := svc.Login(context.Background(), "a@b.c", "nope")
		assert.Error(t, err)

		stored, err := sessions.Load()
		require.NoError(t, err)
		assert.False(t, stored.Authenticated())
	})
}

func TestService_Register(t *testing.T) {
	store := &mockStore{}
	svc, sessions := newService(t, store)

	reg := Registration{
		Name: "Ada", Email: "ada@example.com", Age: 30,
		Gender: "female", ContactNo: "555-0100", Address: "1 Main St", Password: "pw",
	}
	require.NoError(t, svc.Register(context.Background(), reg))
	require.NotNil(t, store.registered)
	assert.Equal(t, reg, *store.registered)

	// Registering does not log in.
	stored, err := sessions.Load()
	require.NoError(t, err)
	assert.False(t, stored.Authenticated())
}

func TestService_AdminLogin(t *testing.T) {
	svc, sessions := newService(t, &mockStore{
		adminLogin: &AdminLoginResult{Token: "at", AdminID: "a1", Username: "root"},
	})
	require.NoError(t, sessions.Save(session.Session{Token: "ut", UserID: "u1"}))

	sess, err := svc.AdminLogin(context.Background(), "root", "pw")
	require.NoError(t, err)
	assert.Equal(t, "a1", sess.AdminID)
	assert.Equal(t, "root", sess.AdminUsername)
	// User identity preserved.
	assert.Equal(t, "u1", sess.UserID)
}

func TestService_Logout(t *testing.T) {
	svc, sessions := newService(t, &mockStore{})
	require.NoError(t, sessions.Save(session.Session{Token: "tok", UserID: "u1"}))

	require.NoError(t, svc.Logout())

	stored, err := sessions.Load()
	require.NoError(t, err)
	assert.Equal(t, session.Session{}, stored)
}

func TestService_Profile(t *testing.T) {
	t.Run("no session", func(t *testing.T) {
		store := &mockStore{}
		svc, _ := newService(t, store)

		_, err := svc.Profile(context.Background(), session.Session{})
		assert.ErrorIs(t, err, session.ErrNotAuthenticated)
		assert.Empty(t, store.lastUserID)
	})

	t.Run("fetches by user id", func(t *testing.T) {
		store := &mockStore{profile: &Profile{Name: "Ada", Email: "ada@example.com"}}
		svc, _ := newService(t, store)

		p, err := svc.Profile(context.Background(), session.Session{UserID: "u1"})
		require.NoError(t, err)
		assert.Equal(t, "Ada", p.Name)
		assert.Equal(t, "u1", store.lastUserID)
	})
}
