package model

import "time"

// AccountID identifies a registered player account
type AccountID string

// Account is a registered player with a main wallet
type Account struct {
	ID           AccountID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Balance      float64   `json:"balance"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
