package model

import (
	"strconv"
	"time"
)

// GameID uniquely identifies a game
type GameID string

// GuildID identifies the guild (Discord server) a game belongs to.
// It is opaque to the engine.
type GuildID string

// GameState represents the current phase of a game. States only move
// forward; a guild gets a fresh game rather than a rewound one.
type GameState string

const (
	GameStateConfigured GameState = "configured" // Built from config, not yet public
	GameStateAnnounced  GameState = "announced"  // Roster collection open
	GameStateStarted    GameState = "started"    // Teams balanced, question flow live
	GameStateEnded      GameState = "ended"      // Final scores frozen
)

// AnsweredMask is the board sentinel shown in place of an answered
// question's value
const AnsweredMask = "XXXX"

// Board is the category-by-value grid view: per category, the point value
// of each unanswered question (in input order) or AnsweredMask
type Board map[string][]string

// Game is a single trivia game owned by one guild session
type Game struct {
	ID          GameID    `json:"id"`
	GuildID     GuildID   `json:"guild_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	State       GameState `json:"state"`

	Teams       []*Team     `json:"teams"`
	Players     []MemberID  `json:"players"`
	Categories  []string    `json:"categories"`
	PerCategory int         `json:"per_category"`
	Questions   []*Question `json:"questions"`

	// Buzzes records, per shown question, the teams that have buzzed in,
	// in buzz order. Entries survive re-display of the same question so a
	// team cannot buzz twice.
	Buzzes map[QuestionID][]string `json:"buzzes"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	StartedAt *time.Time `json:"started_at,omitempty"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
}

// TeamByName returns the team with the given name, or nil if not found.
// Teams are keyed by name, unique within a game.
func (g *Game) TeamByName(name string) *Team {
	for _, t := range g.Teams {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// QuestionByID returns the question with the given identifier, or nil.
// A linear scan; games hold dozens of questions, not thousands.
func (g *Game) QuestionByID(id QuestionID) *Question {
	for _, q := range g.Questions {
		if q.ID == id {
			return q
		}
	}
	return nil
}

// QuestionsByCategory returns the category's questions in input order
func (g *Game) QuestionsByCategory(category string) []*Question {
	var questions []*Question
	for _, q := range g.Questions {
		if q.Category == category {
			questions = append(questions, q)
		}
	}
	return questions
}

// IsEnrolled reports whether the member is on the enrollment list
func (g *Game) IsEnrolled(id MemberID) bool {
	for _, m := range g.Players {
		if m == id {
			return true
		}
	}
	return false
}

// HasBuzzed reports whether the team has already buzzed on the question
func (g *Game) HasBuzzed(id QuestionID, teamName string) bool {
	for _, name := range g.Buzzes[id] {
		if name == teamName {
			return true
		}
	}
	return false
}

// Board renders the grid view for the presentation layer
func (g *Game) Board() Board {
	board := make(Board, len(g.Categories))
	for _, cat := range g.Categories {
		questions := g.QuestionsByCategory(cat)
		cells := make([]string, len(questions))
		for i, q := range questions {
			if q.Answered {
				cells[i] = AnsweredMask
			} else {
				cells[i] = strconv.Itoa(q.Value)
			}
		}
		board[cat] = cells
	}
	return board
}

// Winners returns every team whose score equals the maximum. The result is
// well-defined for ties and for all-zero or negative scores; it is empty
// only when the game has no teams.
func (g *Game) Winners() []*Team {
	if len(g.Teams) == 0 {
		return nil
	}

	top := g.Teams[0].Score
	for _, t := range g.Teams[1:] {
		if t.Score > top {
			top = t.Score
		}
	}

	var winners []*Team
	for _, t := range g.Teams {
		if t.Score == top {
			winners = append(winners, t)
		}
	}
	return winners
}
