package model

import "time"

// User is the credential-store record. PasswordHash is a bcrypt hash with
// embedded salt and cost; the plaintext password never touches this struct.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is what protected handlers see after authorization: the public
// slice of a user record, no credential material.
type Identity struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Email    string `json:"email"`
}

// TokenPair is the login response body. The two tokens are independently
// signed and independently verifiable.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
