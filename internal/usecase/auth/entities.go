package auth

import "time"

type RegisterInput struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
}

type LoginInput struct {
	Email    string
	Password string
}

// Principal is the authenticated caller behind a bearer token.
type Principal struct {
	UserID    uint64
	Name      string
	TokenID   string
	ExpiresAt time.Time
}

type UserDTO struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type TokenDTO struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type RegisterDTO struct {
	User  UserDTO  `json:"user"`
	Token TokenDTO `json:"token"`
}
