package contract

import (
	"context"

	"printing-support-be/internal/entity"
	"printing-support-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChatSessionRepository interface {
	Create(ctx context.Context, session *entity.ChatSession) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error)
	// Touch bumps updated_at and last_message_at after an append.
	Touch(ctx context.Context, id uuid.UUID) error
	// Delete removes sessions matching the specs and reports how many
	// rows went away, so callers can tell absence from success.
	Delete(ctx context.Context, specs ...specification.Specification) (int64, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
