package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateMessageRequest struct {
	SessionId uuid.UUID `json:"session_id" validate:"required"`
	Role      string    `json:"role" validate:"required,oneof=user assistant system"`
	Content   string    `json:"content" validate:"required"`
}

type MessageResponse struct {
	Id        uuid.UUID `json:"id"`
	SessionId uuid.UUID `json:"session_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
