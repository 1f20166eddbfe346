package domain

import "time"

// RoleAdmin is the only role the system issues. It is carried in access
// tokens and checked on every write route.
const RoleAdmin = "admin"

type Admin struct {
	ID           string
	FullName     string
	Username     string
	Email        string
	PasswordHash string // bcrypt encoded
	CreatedAt    time.Time
}
