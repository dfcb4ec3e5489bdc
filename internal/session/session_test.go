package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/me4war/meshwar-client/internal/models"
	"github.com/me4war/meshwar-client/internal/store"
)

type fakeAuth struct {
	result *models.LoginResult
	err    error
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	return f.result, f.err
}

func newTestStore(t *testing.T, auth Authenticator) (*Store, *store.Local) {
	t.Helper()
	local := store.NewLocal(store.NewMemStore())
	return NewStore(local, auth), local
}

func TestStore_Login(t *testing.T) {
	token := makeToken(t, map[string]interface{}{
		claimName:   "Sara",
		claimUserID: "11",
	})
	auth := &fakeAuth{result: &models.LoginResult{Token: token, IsVerifiedDriver: true}}
	s, local := newTestStore(t, auth)

	assert.False(t, s.IsLoggedIn())
	assert.Nil(t, s.CurrentUser())

	err := s.Login(context.Background(), "sara@example.com", "pw")
	assert.NoError(t, err)

	// Identity and flags change together with the login
	assert.True(t, s.IsLoggedIn())
	assert.True(t, s.IsVerifiedDriver())
	assert.Equal(t, "11", s.CurrentUserID())
	user := s.CurrentUser()
	assert.NotNil(t, user)
	assert.Equal(t, "Sara", user.Name)

	// Token is persisted before Login returns
	persisted, ok := local.Token()
	assert.True(t, ok)
	assert.Equal(t, token, persisted)
	assert.True(t, local.VerifiedDriver())

	got, ok := s.Token()
	assert.True(t, ok)
	assert.Equal(t, token, got)
}

func TestStore_LoginFailure(t *testing.T) {
	t.Run("auth error", func(t *testing.T) {
		s, _ := newTestStore(t, &fakeAuth{err: errors.New("boom")})
		err := s.Login(context.Background(), "a@b.c", "pw")
		assert.Error(t, err)
		assert.False(t, s.IsLoggedIn())
	})

	t.Run("empty token in response", func(t *testing.T) {
		s, _ := newTestStore(t, &fakeAuth{result: &models.LoginResult{}})
		err := s.Login(context.Background(), "a@b.c", "pw")
		assert.ErrorIs(t, err, ErrLoginRejected)
		assert.False(t, s.IsLoggedIn())
	})
}

func TestStore_Logout(t *testing.T) {
	token := makeToken(t, map[string]interface{}{claimUserID: "5"})
	auth := &fakeAuth{result: &models.LoginResult{Token: token, IsVerifiedDriver: true}}
	s, local := newTestStore(t, auth)

	assert.NoError(t, s.Login(context.Background(), "x@y.z", "pw"))
	s.Logout()

	assert.False(t, s.IsLoggedIn())
	assert.False(t, s.IsVerifiedDriver())
	assert.Nil(t, s.CurrentUser())
	assert.Equal(t, "", s.CurrentUserID())
	_, ok := local.Token()
	assert.False(t, ok)
}

func TestStore_RestoreFromDisk(t *testing.T) {
	token := makeToken(t, map[string]interface{}{
		claimName:   "Omar",
		claimUserID: "9",
	})
	local := store.NewLocal(store.NewMemStore())
	assert.NoError(t, local.SetToken(token))
	assert.NoError(t, local.SetVerifiedDriver(true))

	// A new store restores the session without any network call
	s := NewStore(local, &fakeAuth{err: errors.New("network must not be used")})
	assert.True(t, s.IsLoggedIn())
	assert.True(t, s.IsVerifiedDriver())
	assert.Equal(t, "9", s.CurrentUserID())
	user := s.CurrentUser()
	assert.NotNil(t, user)
	assert.Equal(t, "Omar", user.Name)
}

func TestStore_Subscribe(t *testing.T) {
	token := makeToken(t, map[string]interface{}{claimName: "Nour", claimUserID: "3"})
	auth := &fakeAuth{result: &models.LoginResult{Token: token, IsVerifiedDriver: false}}
	s, _ := newTestStore(t, auth)

	ch, cancel := s.Subscribe()
	defer cancel()

	// The current state arrives immediately
	initial := <-ch
	assert.False(t, initial.LoggedIn)
	assert.Nil(t, initial.User)

	assert.NoError(t, s.Login(context.Background(), "n@example.com", "pw"))
	afterLogin := <-ch
	assert.True(t, afterLogin.LoggedIn)
	assert.NotNil(t, afterLogin.User)
	assert.Equal(t, "Nour", afterLogin.User.Name)

	s.Logout()
	afterLogout := <-ch
	assert.False(t, afterLogout.LoggedIn)
	assert.False(t, afterLogout.VerifiedDriver)
	assert.Nil(t, afterLogout.User)
}

func TestStore_SubscribeCancel(t *testing.T) {
	s, _ := newTestStore(t, &fakeAuth{})
	ch, cancel := s.Subscribe()
	<-ch
	cancel()

	// Cancelling twice is safe and the channel is closed
	cancel()
	_, open := <-ch
	assert.False(t, open)
}
