package models

import "time"

type User struct {
	Username     string
	PasswordHash []byte
	CreatedAt    time.Time
}

// Credentials is the body of /auth/login/ and /auth/signup/.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is returned by both auth endpoints.
type TokenResponse struct {
	Token string `json:"token"`
}
