package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/mrraghuvarun/talent/internal/domain/auth"
)

func TestStaticAuthenticator_Login(t *testing.T) {
	a := NewStaticAuthenticator()
	ctx := context.Background()

	res, err := a.Login(ctx, domainauth.Credentials{Email: "admin@example.com", Password: "admin-pass"})
	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleAdmin, res.Viewer.Role)
	assert.Equal(t, "token-admin", res.Token)

	_, err = a.Login(ctx, domainauth.Credentials{Email: "admin@example.com", Password: "nope"})
	assert.ErrorIs(t, err, ErrBadCredentials)
	assert.Equal(t, 2, a.Calls())
}

func TestMemorySessionStore_SaveGetDelete(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	sess := domainauth.Session{
		ID:        "default",
		Viewer:    domainauth.ViewerContext{UserID: "1", Role: domainauth.RoleAdmin},
		Token:     "t",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, sess, got)

	require.NoError(t, store.Delete(ctx, "default"))
	_, err = store.Get(ctx, "default")
	assert.Equal(t, ErrNotFound, err)
}

func TestMemorySessionStore_EmptyID(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	assert.Error(t, store.Save(ctx, domainauth.Session{}))
	_, err := store.Get(ctx, "")
	assert.Equal(t, ErrNotFound, err)
	assert.NoError(t, store.Delete(ctx, ""))
}
