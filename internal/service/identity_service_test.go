package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/pkg/tokens"
)

func newIdentityService(t *testing.T, store *fakeStore, ttl time.Duration) (IIdentityService, *tokens.Service) {
	t.Helper()
	tokenService, err := tokens.NewService("test-secret", "HS256", ttl)
	require.NoError(t, err)
	return NewIdentityService(tokenService, &fakeUowFactory{store: store}, noopLogger{}), tokenService
}

func TestResolveValidToken(t *testing.T) {
	store := newFakeStore()
	user := store.addUser("alice@example.com")

	svc, tokenService := newIdentityService(t, store, time.Hour)
	token, err := tokenService.Issue(user.Id, user.Email)
	require.NoError(t, err)

	identity := svc.Resolve(context.Background(), token)

	require.True(t, identity.Authenticated())
	assert.Equal(t, user.Id, identity.User().Id)
	assert.Equal(t, user.Email, identity.User().Email)
}

func TestResolveMissingTokenIsAnonymous(t *testing.T) {
	svc, _ := newIdentityService(t, newFakeStore(), time.Hour)

	identity := svc.Resolve(context.Background(), "")

	assert.False(t, identity.Authenticated())
	assert.Nil(t, identity.User())
}

func TestResolveGarbageTokenIsAnonymous(t *testing.T) {
	svc, _ := newIdentityService(t, newFakeStore(), time.Hour)

	for _, token := range []string{"garbage", "a.b.c", "Bearer something"} {
		identity := svc.Resolve(context.Background(), token)
		assert.False(t, identity.Authenticated(), "token %q should resolve anonymous", token)
	}
}

func TestResolveExpiredTokenIsAnonymous(t *testing.T) {
	store := newFakeStore()
	user := store.addUser("alice@example.com")

	svc, tokenService := newIdentityService(t, store, -time.Minute)
	token, err := tokenService.Issue(user.Id, user.Email)
	require.NoError(t, err)

	identity := svc.Resolve(context.Background(), token)

	assert.False(t, identity.Authenticated())
}

func TestResolveTokenForDeletedUserIsAnonymous(t *testing.T) {
	store := newFakeStore()
	user := store.addUser("alice@example.com")

	svc, tokenService := newIdentityService(t, store, time.Hour)
	token, err := tokenService.Issue(user.Id, user.Email)
	require.NoError(t, err)

	delete(store.users, user.Id)

	identity := svc.Resolve(context.Background(), token)

	assert.False(t, identity.Authenticated())
}
