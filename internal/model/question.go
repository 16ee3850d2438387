package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// QuestionID uniquely identifies a question for the lifetime of its game
type QuestionID string

// Question is a single clue on the trivia board
type Question struct {
	ID       QuestionID `json:"id"`
	Category string     `json:"category"`
	Prompt   string     `json:"prompt"`
	Answer   string     `json:"answer"`
	Value    int        `json:"value"`
	Answered bool       `json:"answered"`
}

// NewQuestion creates a question with a freshly generated identifier
func NewQuestion(category, prompt, answer string, value int) (*Question, error) {
	if strings.TrimSpace(category) == "" {
		return nil, fmt.Errorf("%w: category is required", ErrInvalidQuestion)
	}
	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("%w: prompt is required", ErrInvalidQuestion)
	}
	if strings.TrimSpace(answer) == "" {
		return nil, fmt.Errorf("%w: answer is required", ErrInvalidQuestion)
	}
	if value <= 0 {
		return nil, fmt.Errorf("%w: value must be a positive integer, got %d", ErrInvalidQuestion, value)
	}

	return &Question{
		ID:       QuestionID(uuid.NewString()),
		Category: category,
		Prompt:   prompt,
		Answer:   answer,
		Value:    value,
	}, nil
}

// MarkAnswered flips the answered flag. Once answered, a question never
// reverts within a game; answering again returns ErrQuestionAnswered.
func (q *Question) MarkAnswered() error {
	if q.Answered {
		return ErrQuestionAnswered
	}
	q.Answered = true
	return nil
}
