package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/dto"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/pkg/access"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/pkg/apperror"
)

func newSessionService(store *fakeStore, adminEmails ...string) ISessionService {
	guard := access.NewGuard(adminEmails)
	return NewSessionService(&fakeUowFactory{store: store}, guard, nil, noopLogger{})
}

func TestClaimLinksAnonymousSessions(t *testing.T) {
	store := newFakeStore()
	user := store.addUser("alice@example.com")
	s1 := store.addSession(nil)
	s2 := store.addSession(nil)

	svc := newSessionService(store)
	res, err := svc.Claim(context.Background(), access.Authenticated(user), &dto.ClaimSessionsRequest{
		SessionIds: []string{s1.Id.String(), s2.Id.String()},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, res.Claimed)
	assert.Equal(t, 2, res.Processed)
	assert.Equal(t, dto.ClaimStatusClaimed, res.Details[0].Status)
	assert.Equal(t, 1, store.commits)
	assert.Equal(t, 0, store.rollbacks)

	for _, session := range []uuid.UUID{s1.Id, s2.Id} {
		got := store.sessions[session]
		require.NotNil(t, got.UserId)
		assert.Equal(t, user.Id, *got.UserId)
	}
}

func TestClaimIsIdempotent(t *testing.T) {
	store := newFakeStore()
	user := store.addUser("alice@example.com")
	session := store.addSession(nil)

	svc := newSessionService(store)
	identity := access.Authenticated(user)
	req := &dto.ClaimSessionsRequest{SessionIds: []string{session.Id.String()}}

	first, err := svc.Claim(context.Background(), identity, req)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Claimed)

	second, err := svc.Claim(context.Background(), identity, req)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Claimed)
	assert.Equal(t, 1, second.AlreadyOwnedByUser)
	assert.Equal(t, dto.ClaimStatusAlreadyOwnedByUser, second.Details[0].Status)
}

func TestClaimNeverReassignsOwnedSessions(t *testing.T) {
	store := newFakeStore()
	owner := store.addUser("owner@example.com")
	claimant := store.addUser("claimant@example.com")
	session := store.addSession(&owner.Id)

	svc := newSessionService(store)
	res, err := svc.Claim(context.Background(), access.Authenticated(claimant), &dto.ClaimSessionsRequest{
		SessionIds: []string{session.Id.String()},
	})

	require.NoError(t, err)
	assert.Equal(t, 0, res.Claimed)
	assert.Equal(t, 1, res.OwnedByAnotherUser)
	assert.Equal(t, owner.Id, *store.sessions[session.Id].UserId)
}

func TestClaimDeduplicatesAndTallies(t *testing.T) {
	store := newFakeStore()
	user := store.addUser("alice@example.com")
	anonymous := store.addSession(nil)
	mine := store.addSession(&user.Id)
	missing := uuid.New()

	svc := newSessionService(store)
	res, err := svc.Claim(context.Background(), access.Authenticated(user), &dto.ClaimSessionsRequest{
		SessionIds: []string{
			anonymous.Id.String(),
			anonymous.Id.String(), // duplicate, counted once
			mine.Id.String(),
			missing.String(),
			"not-a-uuid",
			"",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 4, res.Processed)
	assert.Equal(t, 1, res.Claimed)
	assert.Equal(t, 1, res.AlreadyOwnedByUser)
	assert.Equal(t, 2, res.NotFound)
	assert.Equal(t, 0, res.OwnedByAnotherUser)
	assert.Len(t, res.Details, 4)
}

func TestClaimWithNoEffectRollsBack(t *testing.T) {
	store := newFakeStore()
	user := store.addUser("alice@example.com")
	mine := store.addSession(&user.Id)

	svc := newSessionService(store)
	res, err := svc.Claim(context.Background(), access.Authenticated(user), &dto.ClaimSessionsRequest{
		SessionIds: []string{mine.Id.String()},
	})

	require.NoError(t, err)
	assert.Equal(t, 0, res.Claimed)
	assert.Equal(t, 0, store.commits)
	assert.Equal(t, 1, store.rollbacks)
}

func TestClaimRequiresAuthentication(t *testing.T) {
	store := newFakeStore()
	session := store.addSession(nil)

	svc := newSessionService(store)
	_, err := svc.Claim(context.Background(), access.Anonymous(), &dto.ClaimSessionsRequest{
		SessionIds: []string{session.Id.String()},
	})

	assert.True(t, apperror.IsKind(err, apperror.KindAuthenticationRequired))
}

func TestCreateSessionForOtherUser(t *testing.T) {
	store := newFakeStore()
	alice := store.addUser("alice@example.com")
	bob := store.addUser("bob@example.com")
	admin := store.addUser("admin@example.com")

	svc := newSessionService(store, "admin@example.com")
	ctx := context.Background()

	// Anonymous caller naming an owner gets 401.
	_, err := svc.Create(ctx, access.Anonymous(), &dto.CreateSessionRequest{UserId: &alice.Id})
	assert.True(t, apperror.IsKind(err, apperror.KindAuthenticationRequired))

	// A different non-admin user gets 403.
	_, err = svc.Create(ctx, access.Authenticated(bob), &dto.CreateSessionRequest{UserId: &alice.Id})
	assert.True(t, apperror.IsKind(err, apperror.KindForbidden))

	// An unknown owner is 404 regardless of who asks.
	unknown := uuid.New()
	_, err = svc.Create(ctx, access.Authenticated(admin), &dto.CreateSessionRequest{UserId: &unknown})
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))

	// Admin may create on behalf of anyone.
	res, err := svc.Create(ctx, access.Authenticated(admin), &dto.CreateSessionRequest{UserId: &alice.Id})
	require.NoError(t, err)
	assert.Equal(t, alice.Id, *res.UserId)

	// Without a user_id the session is anonymous, from any caller.
	res, err = svc.Create(ctx, access.Anonymous(), &dto.CreateSessionRequest{})
	require.NoError(t, err)
	assert.Nil(t, res.UserId)
}

func TestGetAllSessionsIsAdminOnly(t *testing.T) {
	store := newFakeStore()
	user := store.addUser("alice@example.com")
	admin := store.addUser("admin@example.com")
	store.addSession(nil)
	store.addSession(&user.Id)

	svc := newSessionService(store, "admin@example.com")
	ctx := context.Background()

	_, err := svc.GetAll(ctx, access.Anonymous())
	assert.True(t, apperror.IsKind(err, apperror.KindAuthenticationRequired))

	_, err = svc.GetAll(ctx, access.Authenticated(user))
	assert.True(t, apperror.IsKind(err, apperror.KindForbidden))

	sessions, err := svc.GetAll(ctx, access.Authenticated(admin))
	require.NoError(t, err)
	assert.Len(t, sessions, 2)
}

func TestGetByUserIsOwnerOrAdmin(t *testing.T) {
	store := newFakeStore()
	alice := store.addUser("alice@example.com")
	bob := store.addUser("bob@example.com")
	admin := store.addUser("admin@example.com")
	store.addSession(&alice.Id)
	store.addSession(&alice.Id)
	store.addSession(&bob.Id)

	svc := newSessionService(store, "admin@example.com")
	ctx := context.Background()

	sessions, err := svc.GetByUser(ctx, access.Authenticated(alice), alice.Id)
	require.NoError(t, err)
	assert.Len(t, sessions, 2)

	_, err = svc.GetByUser(ctx, access.Authenticated(bob), alice.Id)
	assert.True(t, apperror.IsKind(err, apperror.KindForbidden))

	sessions, err = svc.GetByUser(ctx, access.Authenticated(admin), alice.Id)
	require.NoError(t, err)
	assert.Len(t, sessions, 2)
}
