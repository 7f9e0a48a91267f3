package auth

import "github.com/user/dogadopt-go/users"

// RegisterRequest is the registration payload.
// @Description User registration details
type RegisterRequest struct {
	Username string `json:"username" example:"testuser1" validate:"required,min=3"`
	Password string `json:"password" example:"password123" validate:"required,min=6"`
}

// LoginRequest is the login payload.
// @Description User login credentials
type LoginRequest struct {
	Username string `json:"username" example:"testuser1" validate:"required"`
	Password string `json:"password" example:"password123" validate:"required"`
}

// RegisterResponse is returned on successful registration.
type RegisterResponse struct {
	Message string           `json:"message" example:"User registered successfully"`
	User    users.PublicUser `json:"user"`
}

// LoginResponse is returned on successful login. Token is an opaque bearer
// credential for the Authorization header.
type LoginResponse struct {
	Message string           `json:"message" example:"Login successful"`
	Token   string           `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User    users.PublicUser `json:"user"`
}
