package model

import "time"

// User represents a user in the database. PasswordHash never leaves the
// service boundary.
type User struct {
	ID           string
	Name         string
	About        string
	Avatar       string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// SignupRequest represents a user registration request. Name, about and
// avatar are optional; defaults are applied when omitted.
type SignupRequest struct {
	Name     string `json:"name"`
	About    string `json:"about"`
	Avatar   string `json:"avatar"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries the issued session token. Login returns nothing
// else.
type TokenResponse struct {
	Token string `json:"token"`
}

// UpdateProfileRequest represents a profile update request.
type UpdateProfileRequest struct {
	Name  string `json:"name"`
	About string `json:"about"`
}

// UpdateAvatarRequest represents an avatar update request.
type UpdateAvatarRequest struct {
	Avatar string `json:"avatar"`
}

// UserResponse represents user data safe for API responses (no sensitive
// fields).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	About     string    `json:"about"`
	Avatar    string    `json:"avatar"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse strips the user record down to its client-safe fields.
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		About:     u.About,
		Avatar:    u.Avatar,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
