package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatSession is anonymous while UserId is nil: possession of the id is the
// only credential. Claiming sets UserId exactly once (nil -> user); ownership
// is never reassigned afterwards.
type ChatSession struct {
	Id        uuid.UUID
	UserId    *uuid.UUID
	Title     *string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// OwnedBy reports whether the session is owned by the given user.
func (s *ChatSession) OwnedBy(userId uuid.UUID) bool {
	return s.UserId != nil && *s.UserId == userId
}

// Anonymous reports whether the session has no owner.
func (s *ChatSession) Anonymous() bool {
	return s.UserId == nil
}
