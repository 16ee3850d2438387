package model

import "time"

// GuildSession tracks which game, if any, a guild is currently running.
// It replaces the ambient one-game-per-process global of older bots:
// every operation is addressed to a guild explicitly.
type GuildSession struct {
	GuildID     GuildID       `json:"guild_id"`
	CurrentGame *GameID       `json:"current_game"`
	History     []GameSummary `json:"history"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// GameSummary is a lightweight record of a finished game
type GameSummary struct {
	GameID      GameID         `json:"game_id"`
	Name        string         `json:"name"`
	FinalScores map[string]int `json:"final_scores"`
	Winners     []string       `json:"winners"`
	EndedAt     time.Time      `json:"ended_at"`
}
