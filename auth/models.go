// Package auth handles user registration, login, token issuance, and the
// bearer-token middleware guarding the dog routes.
package auth

import "time"

// User represents a user record as stored in the database.
type User struct {
	ID             int       `json:"id"`
	Username       string    `json:"username"`
	HashedPassword string    `json:"-"` // never exposed
	CreatedAt      time.Time `json:"created_at"`
}
