package model

import "time"

// User is a registered customer. The password hash never leaves the server.
type User struct {
	ID           string    `json:"_id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password"`
	CreatedAt    time.Time `json:"-" bson:"createdAt"`
}

// UserProfile is the projection returned by a successful login.
type UserProfile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SignupRequest represents the request payload for creating an account.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the request payload for a credential check.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
