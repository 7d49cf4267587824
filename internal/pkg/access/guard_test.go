package access

import (
	"testing"

	"github.com/google/uuid"

	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/entity"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/pkg/apperror"
)

func user(email string) *entity.User {
	return &entity.User{Id: uuid.New(), Email: email}
}

func ownedSession(ownerId uuid.UUID) *entity.ChatSession {
	return &entity.ChatSession{Id: uuid.New(), UserId: &ownerId}
}

func anonymousSession() *entity.ChatSession {
	return &entity.ChatSession{Id: uuid.New()}
}

func wantKind(t *testing.T, err error, kind apperror.Kind) {
	t.Helper()
	if !apperror.IsKind(err, kind) {
		t.Errorf("error = %v, want kind %d", err, kind)
	}
}

func TestAuthorizeSessionAccessDecisionTable(t *testing.T) {
	guard := NewGuard([]string{"admin@example.com"})

	owner := user("alice@example.com")
	stranger := user("bob@example.com")
	admin := user("admin@example.com")

	tests := []struct {
		name     string
		identity Identity
		session  *entity.ChatSession
		wantErr  apperror.Kind // 0 = allow
	}{
		{"anonymous session, anonymous identity", Anonymous(), anonymousSession(), 0},
		{"anonymous session, authenticated identity", Authenticated(stranger), anonymousSession(), 0},
		{"owned session, owner", Authenticated(owner), ownedSession(owner.Id), 0},
		{"owned session, admin", Authenticated(admin), ownedSession(owner.Id), 0},
		{"owned session, non-owner", Authenticated(stranger), ownedSession(owner.Id), apperror.KindForbidden},
		{"owned session, anonymous identity", Anonymous(), ownedSession(owner.Id), apperror.KindAuthenticationRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := guard.AuthorizeSessionAccess(tt.identity, tt.session)
			if tt.wantErr == 0 {
				if err != nil {
					t.Errorf("AuthorizeSessionAccess() = %v, want allow", err)
				}
				return
			}
			wantKind(t, err, tt.wantErr)
		})
	}
}

func TestAuthorizeSessionAccessNilSessionIsNotFound(t *testing.T) {
	guard := NewGuard(nil)

	// NotFound must win even for anonymous callers, so a 404 never turns
	// into a 401 that would reveal resource existence.
	wantKind(t, guard.AuthorizeSessionAccess(Anonymous(), nil), apperror.KindNotFound)
	wantKind(t, guard.AuthorizeSessionAccess(Authenticated(user("a@b.c")), nil), apperror.KindNotFound)
}

func TestIsAdminCaseInsensitive(t *testing.T) {
	guard := NewGuard([]string{"  Admin@Example.COM "})

	if !guard.IsAdmin(Authenticated(user("ADMIN@example.com"))) {
		t.Error("admin match should be case-insensitive")
	}
	if guard.IsAdmin(Authenticated(user("someone@example.com"))) {
		t.Error("non-listed email should not be admin")
	}
	if guard.IsAdmin(Anonymous()) {
		t.Error("anonymous identity can never be admin")
	}
}

func TestRequireAuthenticated(t *testing.T) {
	guard := NewGuard(nil)

	u := user("alice@example.com")
	got, err := guard.RequireAuthenticated(Authenticated(u))
	if err != nil || got != u {
		t.Errorf("RequireAuthenticated(authenticated) = (%v, %v), want user", got, err)
	}

	_, err = guard.RequireAuthenticated(Anonymous())
	wantKind(t, err, apperror.KindAuthenticationRequired)
}

func TestRequireAdmin(t *testing.T) {
	guard := NewGuard([]string{"admin@example.com"})

	_, err := guard.RequireAdmin(Anonymous())
	wantKind(t, err, apperror.KindAuthenticationRequired)

	_, err = guard.RequireAdmin(Authenticated(user("bob@example.com")))
	wantKind(t, err, apperror.KindForbidden)

	if _, err := guard.RequireAdmin(Authenticated(user("admin@example.com"))); err != nil {
		t.Errorf("RequireAdmin(admin) = %v, want allow", err)
	}
}

func TestRequireOwnerOrAdmin(t *testing.T) {
	guard := NewGuard([]string{"admin@example.com"})

	owner := user("alice@example.com")
	admin := user("admin@example.com")
	stranger := user("bob@example.com")

	if _, err := guard.RequireOwnerOrAdmin(Authenticated(owner), owner.Id); err != nil {
		t.Errorf("owner should pass, got %v", err)
	}
	if _, err := guard.RequireOwnerOrAdmin(Authenticated(admin), owner.Id); err != nil {
		t.Errorf("admin should pass, got %v", err)
	}

	_, err := guard.RequireOwnerOrAdmin(Authenticated(stranger), owner.Id)
	wantKind(t, err, apperror.KindForbidden)

	_, err = guard.RequireOwnerOrAdmin(Anonymous(), owner.Id)
	wantKind(t, err, apperror.KindAuthenticationRequired)
}
