package access

import (
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/entity"
)

// Identity is the resolved actor for a single request: Anonymous or
// Authenticated(user). It is derived once per request and passed explicitly
// to every guard; it is never cached beyond the request.
type Identity struct {
	user *entity.User
}

func Anonymous() Identity {
	return Identity{}
}

func Authenticated(user *entity.User) Identity {
	return Identity{user: user}
}

func (i Identity) Authenticated() bool {
	return i.user != nil
}

// User returns the authenticated user, or nil for Anonymous.
func (i Identity) User() *entity.User {
	return i.user
}
