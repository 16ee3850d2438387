package model

import (
	"fmt"
	"strings"
	"time"
)

// QuestionPack is a reusable set of questions, loaded from a catalog file
// or uploaded through the API. Games can be built from a stored pack
// instead of inline questions.
type QuestionPack struct {
	Name       string                      `json:"name" yaml:"name"`
	Categories map[string][]QuestionConfig `json:"categories" yaml:"categories"`
	LoadedAt   time.Time                   `json:"loaded_at" yaml:"-"`
}

// Validate checks the pack's structural requirements
func (p *QuestionPack) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: pack name is required", ErrInvalidPack)
	}
	if len(p.Categories) == 0 {
		return fmt.Errorf("%w: at least one category is required", ErrInvalidPack)
	}
	for cat, questions := range p.Categories {
		if strings.TrimSpace(cat) == "" {
			return fmt.Errorf("%w: category names must not be empty", ErrInvalidPack)
		}
		if len(questions) == 0 {
			return fmt.Errorf("%w: no questions for category %q", ErrInvalidPack, cat)
		}
	}
	return nil
}
