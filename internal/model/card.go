package model

import "time"

// Card represents a card record in the database. OwnerID is immutable
// and is the sole authorization key for deletion.
type Card struct {
	ID        string
	Name      string
	Link      string
	OwnerID   string
	CreatedAt time.Time
}

// CreateCardRequest represents a card creation request.
type CreateCardRequest struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

// CardResponse represents a card with its owner and like set resolved to
// full user objects for direct client consumption.
type CardResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Link      string         `json:"link"`
	Owner     UserResponse   `json:"owner"`
	Likes     []UserResponse `json:"likes"`
	CreatedAt time.Time      `json:"created_at"`
}
