package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionRequest struct {
	UserId *uuid.UUID `json:"user_id" validate:"omitempty"`
	Title  *string    `json:"title" validate:"omitempty,max=200"`
}

type SessionResponse struct {
	Id        uuid.UUID  `json:"id"`
	UserId    *uuid.UUID `json:"user_id"`
	Title     *string    `json:"title"`
	CreatedAt time.Time  `json:"created_at"`
}

type ClaimSessionsRequest struct {
	SessionIds []string `json:"sessionIds" validate:"required,min=1"`
}

// Per-id claim outcomes.
const (
	ClaimStatusClaimed            = "claimed"
	ClaimStatusAlreadyOwnedByUser = "already_owned_by_user"
	ClaimStatusOwnedByAnotherUser = "owned_by_another_user"
	ClaimStatusNotFound           = "not_found"
)

type ClaimSessionDetail struct {
	SessionId string `json:"sessionId"`
	Status    string `json:"status"`
}

type ClaimSessionsResponse struct {
	Claimed            int                  `json:"claimed"`
	AlreadyOwnedByUser int                  `json:"already_owned_by_user"`
	OwnedByAnotherUser int                  `json:"owned_by_another_user"`
	NotFound           int                  `json:"not_found"`
	Processed          int                  `json:"processed"`
	Details            []ClaimSessionDetail `json:"details"`
}
