package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is read-only from this service's perspective. Accounts are
// created by an out-of-scope registration flow; login only looks one up
// and compares the password hash.
type User struct {
	Id           uuid.UUID
	Email        string
	Phone        string
	PasswordHash string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
}

// DisplayName is what the widget shows after a successful login.
func (u *User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
