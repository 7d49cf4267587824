package dto

import "github.com/google/uuid"

type ChatRequest struct {
	SessionId uuid.UUID `json:"sessionId" validate:"required"`
	Message   string    `json:"message" validate:"required"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatHistoryResponse struct {
	SessionId uuid.UUID     `json:"sessionId"`
	Messages  []ChatMessage `json:"messages"`
}
