package dto

import (
	"time"

	"github.com/google/uuid"
)

type SessionResponse struct {
	Id            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	LastMessageAt time.Time `json:"last_message_at"`
}

type CreateSessionRequest struct {
	Title string `json:"title"`
}

type MessageResponse struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type AppendMessageRequest struct {
	SessionId string `json:"sessionId" validate:"required"`
	Role      string `json:"role"`
	Content   string `json:"content"`
}

// AppendMessageResponse has two shapes. A plain append (role assistant
// or system) fills Message only; a user append runs the completion
// relay and fills UserMessage and AssistantMessage.
type AppendMessageResponse struct {
	Message          *MessageResponse `json:"message,omitempty"`
	UserMessage      *MessageResponse `json:"userMessage,omitempty"`
	AssistantMessage *MessageResponse `json:"assistantMessage,omitempty"`
}
