package model

import "time"

// HostID uniquely identifies a host account
type HostID string

// Host is an account that may drive games through the HTTP API.
// PasswordHash is a bcrypt hash; API responses use their own types and
// never expose it.
type Host struct {
	ID           HostID    `json:"id"`
	Username     string    `json:"username"`
	DisplayName  string    `json:"display_name"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}
