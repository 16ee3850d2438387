package request

import "github.com/quizhost/quizhost/internal/model"

// RegisterRequest creates a host account
type RegisterRequest struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
}

// LoginRequest authenticates a host
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PackGame selects a stored question pack as a game's question source
type PackGame struct {
	Pack        string   `json:"pack"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Teams       []string `json:"teams"`
	PerCategory int      `json:"per_category"`
}

// CreateGameRequest creates a game from either an inline configuration
// document or a stored pack. Exactly one of the two must be set.
type CreateGameRequest struct {
	Config   *model.GameConfig `json:"config,omitempty"`
	FromPack *PackGame         `json:"from_pack,omitempty"`
}

// MemberRequest carries a member identifier for enroll/withdraw
type MemberRequest struct {
	MemberID string `json:"member_id"`
}

// BuzzRequest records a team buzzing in
type BuzzRequest struct {
	Team string `json:"team"`
}

// RoleRequest binds an external role handle to a team
type RoleRequest struct {
	RoleID string `json:"role_id"`
}

// PointsRequest awards (or deducts, if negative) points
type PointsRequest struct {
	Points int `json:"points"`
}
