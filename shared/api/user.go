package api

import "github.com/cosmiccommons/c3site/shared/domain"

// Request DTOs

// RegisterUserRequest is the client-facing user contract. It carries the
// plaintext password and is only ever handed to the hashing layer.
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=8"`
}

// Response DTOs

type UserResponse struct {
	domain.User
}
