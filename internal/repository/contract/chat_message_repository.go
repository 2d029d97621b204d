package contract

import (
	"context"

	"printing-support-be/internal/entity"
	"printing-support-be/internal/repository/specification"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error)
	Delete(ctx context.Context, specs ...specification.Specification) (int64, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
