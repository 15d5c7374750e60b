package dto

import "time"

// UserRegisterRequest describes citizen registration payload.
type UserRegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserLoginRequest describes login payload.
type UserLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries a signed session token.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AnonymousTokenResponse carries a freshly minted anonymous identity token.
type AnonymousTokenResponse struct {
	Token string `json:"token"`
}
