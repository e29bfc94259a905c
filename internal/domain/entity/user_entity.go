package entity

import (
	"time"
)

// User is the aggregate root for the student account domain.
// PasswordHash holds a bcrypt hash; the plaintext password never lives
// on this struct past registration input.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
