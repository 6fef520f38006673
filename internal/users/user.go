package users

import "time"

// User is an account record. PasswordHash is a bcrypt hash, never the raw password.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
