package models

import "time"

// User defines the login credential model based on the 'users' table.
// Profile data lives in the members and applicants tables, keyed by the
// same email.
type User struct {
	UID          string    `json:"uid" db:"uid"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
