package user

import (
	"time"

	ierr "github.com/orderpulse/orderpulse/internal/errors"
)

// User represents the domain model for a user account. The report core
// only ever reads users; writes happen through the seeder.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate validates the user
func (u *User) Validate() error {
	if u.ID == "" {
		return ierr.NewError("id is required").Mark(ierr.ErrValidation)
	}
	if u.Username == "" {
		return ierr.NewError("username is required").Mark(ierr.ErrValidation)
	}
	if u.CreatedAt.IsZero() {
		return ierr.NewError("created_at is required").Mark(ierr.ErrValidation)
	}
	return nil
}
