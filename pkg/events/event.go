package events

import (
	"time"

	"github.com/google/uuid"
)

// ChatActivityEvent is published on every persisted message so the
// audit consumer can record conversation activity out of the request
// path. Content is deliberately not included.
type ChatActivityEvent struct {
	SessionId uuid.UUID `json:"session_id"`
	UserId    uuid.UUID `json:"user_id"`
	MessageId uuid.UUID `json:"message_id"`
	Role      string    `json:"role"`
	At        time.Time `json:"at"`
}
