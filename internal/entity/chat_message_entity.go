package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is append-only: rows are never mutated after insert and
// are only removed when their session is deleted.
type ChatMessage struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	// UserId is denormalized from the session so list/append queries can
	// carry the ownership predicate without a join.
	UserId    uuid.UUID
	Role      string
	Content   string
	CreatedAt time.Time
}
