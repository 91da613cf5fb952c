package entity

import (
	"time"
)

// User owns bucket lists. Passwords are stored as bcrypt hashes in Password field.
type User struct {
	ID        int64
	Username  string
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
