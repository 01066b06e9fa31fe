package domain

import "time"

// User is a registered account. PasswordHash never leaves the account service.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanDeleteSweets reports whether the user may remove catalog items.
func (u *User) CanDeleteSweets() bool {
	return u != nil && u.IsAdmin
}
