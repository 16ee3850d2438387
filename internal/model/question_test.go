package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuestion(t *testing.T) {
	q, err := NewQuestion("History", "First president of the USA?", "Washington", 100)
	require.NoError(t, err)

	assert.NotEmpty(t, q.ID)
	assert.Equal(t, "History", q.Category)
	assert.Equal(t, "First president of the USA?", q.Prompt)
	assert.Equal(t, "Washington", q.Answer)
	assert.Equal(t, 100, q.Value)
	assert.False(t, q.Answered)
}

func TestNewQuestionUniqueIDs(t *testing.T) {
	q1, err := NewQuestion("History", "Q1", "A1", 100)
	require.NoError(t, err)
	q2, err := NewQuestion("History", "Q1", "A1", 100)
	require.NoError(t, err)

	assert.NotEqual(t, q1.ID, q2.ID)
}

func TestNewQuestionValidation(t *testing.T) {
	tests := []struct {
		name     string
		category string
		prompt   string
		answer   string
		value    int
	}{
		{"empty category", "", "Q", "A", 100},
		{"blank category", "   ", "Q", "A", 100},
		{"empty prompt", "History", "", "A", 100},
		{"empty answer", "History", "Q", "", 100},
		{"zero value", "History", "Q", "A", 0},
		{"negative value", "History", "Q", "A", -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewQuestion(tt.category, tt.prompt, tt.answer, tt.value)
			assert.ErrorIs(t, err, ErrInvalidQuestion)
		})
	}
}

func TestMarkAnswered(t *testing.T) {
	q, err := NewQuestion("History", "Q", "A", 100)
	require.NoError(t, err)

	require.NoError(t, q.MarkAnswered())
	assert.True(t, q.Answered)

	assert.ErrorIs(t, q.MarkAnswered(), ErrQuestionAnswered)
	assert.True(t, q.Answered)
}
