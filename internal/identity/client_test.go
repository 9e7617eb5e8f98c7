package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProvider is a hand-written Provider with overridable behaviour
type mockProvider struct {
	AuthenticateFunc func(ctx context.Context, email, password string) (*Session, error)
	VerifyFunc       func(ctx context.Context, token string) (*User, error)
	SignOutFunc      func(ctx context.Context, uid string) error
}

func (m *mockProvider) Authenticate(ctx context.Context, email, password string) (*Session, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, email, password)
	}
	return &Session{User: User{UID: "u1", Email: email}, Token: "token-u1"}, nil
}

func (m *mockProvider) CreateIdentity(ctx context.Context, email, password string) (*Session, error) {
	return &Session{User: User{UID: "new", Email: email}, Token: "token-new"}, nil
}

func (m *mockProvider) UpdateDisplayName(ctx context.Context, uid, name string) error { return nil }

func (m *mockProvider) SignOut(ctx context.Context, uid string) error {
	if m.SignOutFunc != nil {
		return m.SignOutFunc(ctx, uid)
	}
	return nil
}

func (m *mockProvider) SendPasswordReset(ctx context.Context, email string) error { return nil }

func (m *mockProvider) ResetPassword(ctx context.Context, token, newPassword string) error {
	return nil
}

func (m *mockProvider) Verify(ctx context.Context, token string) (*User, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, token)
	}
	return nil, ErrSessionExpired
}

func (m *mockProvider) ListIdentities(ctx context.Context) ([]User, error) { return nil, nil }

func recv(t *testing.T, ch <-chan *User) *User {
	t.Helper()
	select {
	case u := <-ch:
		return u
	case <-time.After(2 * time.Second):
		t.Fatal("no notification received")
		return nil
	}
}

func TestClient_StartWithoutTokenNotifiesSignedOut(t *testing.T) {
	client := NewClient(&mockProvider{})
	ch := make(chan *User, 4)
	client.Subscribe(func(u *User) { ch <- u })

	client.Start(context.Background(), "")

	assert.Nil(t, recv(t, ch))
	assert.Nil(t, client.CurrentUser())
}

func TestClient_StartRestoresStoredToken(t *testing.T) {
	client := NewClient(&mockProvider{
		VerifyFunc: func(ctx context.Context, token string) (*User, error) {
			if token == "stored" {
				return &User{UID: "u7", Email: "x@y.com"}, nil
			}
			return nil, ErrSessionExpired
		},
	})
	ch := make(chan *User, 4)
	client.Subscribe(func(u *User) { ch <- u })

	client.Start(context.Background(), "stored")

	user := recv(t, ch)
	require.NotNil(t, user)
	assert.Equal(t, "u7", user.UID)
	assert.Equal(t, "stored", client.Token())
}

func TestClient_SignInAndSignOutNotify(t *testing.T) {
	client := NewClient(&mockProvider{})
	ch := make(chan *User, 4)
	unsubscribe := client.Subscribe(func(u *User) { ch <- u })

	require.NoError(t, client.SignIn(context.Background(), "a@b.com", "secret1"))
	user := recv(t, ch)
	require.NotNil(t, user)
	assert.Equal(t, "a@b.com", user.Email)

	require.NoError(t, client.SignOut(context.Background()))
	assert.Nil(t, recv(t, ch))

	unsubscribe()
	unsubscribe()
	require.NoError(t, client.SignIn(context.Background(), "a@b.com", "secret1"))
	assert.Empty(t, ch)
}

func TestClient_SignInErrorLeavesStateUntouched(t *testing.T) {
	client := NewClient(&mockProvider{
		AuthenticateFunc: func(ctx context.Context, email, password string) (*Session, error) {
			return nil, ErrInvalidCredential
		},
	})
	ch := make(chan *User, 4)
	client.Subscribe(func(u *User) { ch <- u })

	err := client.SignIn(context.Background(), "a@b.com", "bad")
	assert.ErrorIs(t, err, ErrInvalidCredential)
	assert.Empty(t, ch)
}

func TestClient_SignOutClearsLocalUserWhenProviderFails(t *testing.T) {
	client := NewClient(&mockProvider{
		SignOutFunc: func(ctx context.Context, uid string) error { return errors.New("store down") },
	})
	require.NoError(t, client.SignIn(context.Background(), "a@b.com", "secret1"))

	err := client.SignOut(context.Background())
	assert.Error(t, err)
	assert.Nil(t, client.CurrentUser())
}
