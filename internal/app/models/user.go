package models

import "time"

// User represents a registered account. Password holds the bcrypt hash and is
// never serialized to API responses.
type User struct {
	ID         int64
	Name       string
	Email      string
	Password   string
	Image      string
	Role       Role
	Phone      *string
	Bio        *string
	Education  *string
	Skills     *string
	Experience *string
	Location   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsAdmin reports whether the account has the administrator role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
