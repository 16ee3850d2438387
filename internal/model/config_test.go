package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *GameConfig {
	return &GameConfig{
		Game: GameInfo{
			Name:        "Trivia Night",
			Teams:       []string{"Red", "Blue"},
			Categories:  []string{"History", "Science"},
			PerCategory: 2,
		},
		Questions: map[string][]QuestionConfig{
			"History": {
				{Question: "Q1", Answer: "A1", Value: 100},
				{Question: "Q2", Answer: "A2", Value: 200},
			},
			"Science": {
				{Question: "Q3", Answer: "A3", Value: 100},
				{Question: "Q4", Answer: "A4", Value: 200},
			},
		},
	}
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestConfigValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"missing name", func(c *GameConfig) { c.Game.Name = "" }},
		{"no teams", func(c *GameConfig) { c.Game.Teams = nil }},
		{"blank team name", func(c *GameConfig) { c.Game.Teams = []string{"Red", " "} }},
		{"duplicate team names", func(c *GameConfig) { c.Game.Teams = []string{"Red", "Red"} }},
		{"no categories", func(c *GameConfig) { c.Game.Categories = nil }},
		{"zero per_category", func(c *GameConfig) { c.Game.PerCategory = 0 }},
		{"category without questions", func(c *GameConfig) { c.Game.Categories = append(c.Game.Categories, "Sport") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
