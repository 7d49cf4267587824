// Package access encodes the ownership and admin rules for sessions and
// messages. Decision table:
//
//	session owner | identity                      | decision
//	none          | any (including Anonymous)     | allow
//	U             | Authenticated(U)              | allow
//	U             | Authenticated(V != U), admin  | allow
//	U             | Authenticated(V != U)         | forbidden
//	U             | Anonymous                     | authentication required
//
// A missing session is always NotFound, checked before any identity rule, so
// error codes never reveal whether a resource exists to unauthorized callers.
package access

import (
	"strings"

	"github.com/google/uuid"

	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/entity"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/pkg/apperror"
)

type Guard struct {
	adminEmails map[string]struct{}
}

// NewGuard builds the engine from the configured admin allow-list. Emails
// are normalized to lower case; admin-hood is derived from this set on every
// check rather than stored on users.
func NewGuard(adminEmails []string) *Guard {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			admins[e] = struct{}{}
		}
	}
	return &Guard{adminEmails: admins}
}

func (g *Guard) IsAdmin(identity Identity) bool {
	if !identity.Authenticated() {
		return false
	}
	_, ok := g.adminEmails[strings.ToLower(identity.User().Email)]
	return ok
}

// RequireAuthenticated is used where anonymous access is never acceptable.
func (g *Guard) RequireAuthenticated(identity Identity) (*entity.User, error) {
	if !identity.Authenticated() {
		return nil, apperror.AuthenticationRequired()
	}
	return identity.User(), nil
}

func (g *Guard) RequireAdmin(identity Identity) (*entity.User, error) {
	user, err := g.RequireAuthenticated(identity)
	if err != nil {
		return nil, err
	}
	if !g.IsAdmin(identity) {
		return nil, apperror.Forbidden("admin privileges required")
	}
	return user, nil
}

// RequireOwnerOrAdmin allows the target user themselves or an admin.
func (g *Guard) RequireOwnerOrAdmin(identity Identity, targetUserId uuid.UUID) (*entity.User, error) {
	user, err := g.RequireAuthenticated(identity)
	if err != nil {
		return nil, err
	}
	if user.Id == targetUserId || g.IsAdmin(identity) {
		return user, nil
	}
	return nil, apperror.Forbidden("forbidden")
}

// AuthorizeSessionAccess implements the decision table. The same rule covers
// read and write: anonymous sessions are open to anyone holding the id,
// owned sessions to the owner or an admin. A nil session yields NotFound
// before any identity check.
func (g *Guard) AuthorizeSessionAccess(identity Identity, session *entity.ChatSession) error {
	if session == nil {
		return apperror.NotFound("session")
	}
	if session.Anonymous() {
		return nil
	}
	if !identity.Authenticated() {
		return apperror.AuthenticationRequired()
	}
	if session.OwnedBy(identity.User().Id) || g.IsAdmin(identity) {
		return nil
	}
	return apperror.Forbidden("forbidden")
}
