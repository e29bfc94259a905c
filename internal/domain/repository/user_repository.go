package repository

import (
	"errors"

	"github.com/oksasatya/student-portal-api/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no user matches the given id or email.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when a create collides with an existing
	// account on the normalized email. The store's uniqueness constraint is
	// the single arbiter; concurrent registrations for the same email resolve
	// here, not via application locking.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the interface for student account persistence.
// Accounts are created once and read back; this boundary never updates
// or deletes them.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
