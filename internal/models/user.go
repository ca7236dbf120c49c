package models

import "time"

// UserRole distinguishes travellers from administrators
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// User represents an account of the demo. There is no password field:
// passwords are accepted at login but never stored or checked.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsAdmin reports whether the user may access the admin surface.
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
