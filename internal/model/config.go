package model

import (
	"fmt"
	"strings"
)

// GameConfig is the nested configuration document a game is constructed from
type GameConfig struct {
	Game      GameInfo                    `json:"game" yaml:"game"`
	Questions map[string][]QuestionConfig `json:"questions" yaml:"questions"`
}

// GameInfo holds the game-level fields of a configuration document
type GameInfo struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Teams       []string `json:"teams" yaml:"teams"`
	Categories  []string `json:"categories" yaml:"categories"`
	PerCategory int      `json:"per_category" yaml:"per_category"`
}

// QuestionConfig is a single question entry in a configuration document
// or question pack
type QuestionConfig struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
	Value    int    `json:"value" yaml:"value"`
}

// Validate checks the structural requirements of the document. Question
// field validation happens when the questions themselves are constructed.
func (c *GameConfig) Validate() error {
	if strings.TrimSpace(c.Game.Name) == "" {
		return fmt.Errorf("%w: game name is required", ErrInvalidConfig)
	}
	if len(c.Game.Teams) == 0 {
		return fmt.Errorf("%w: at least one team is required", ErrInvalidConfig)
	}

	seen := make(map[string]struct{}, len(c.Game.Teams))
	for _, name := range c.Game.Teams {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: team names must not be empty", ErrInvalidConfig)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: duplicate team name %q", ErrInvalidConfig, name)
		}
		seen[name] = struct{}{}
	}

	if len(c.Game.Categories) == 0 {
		return fmt.Errorf("%w: at least one category is required", ErrInvalidConfig)
	}
	if c.Game.PerCategory <= 0 {
		return fmt.Errorf("%w: per_category must be a positive integer", ErrInvalidConfig)
	}

	for _, cat := range c.Game.Categories {
		if len(c.Questions[cat]) == 0 {
			return fmt.Errorf("%w: no questions for category %q", ErrInvalidConfig, cat)
		}
	}

	return nil
}
