// Package users implements the user directory: lookups of user records and
// the public view of a user that is safe to return to clients.
package users

// PublicUser is the subset of a user record exposed through the API.
// The password hash never leaves the service layer.
// @Description Public user information
type PublicUser struct {
	// The ID of the user
	// example: 1
	ID int `json:"id"`
	// The username of the user
	// example: "testuser1"
	Username string `json:"username"`
}
