package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	Id     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId uuid.UUID `gorm:"type:uuid;not null;index"` // ownership filter column
	Title  string    `gorm:"type:text;not null"`
	// LastMessageAt drives the recents ordering; touched on every append.
	LastMessageAt time.Time `gorm:"not null;default:now();index"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}
