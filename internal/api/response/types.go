package response

import (
	"time"

	"github.com/quizhost/quizhost/internal/model"
	"github.com/quizhost/quizhost/internal/services/auth"
	"github.com/quizhost/quizhost/internal/services/scoring"
)

// Host represents a host account in API responses
type Host struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

// HostFromModel converts a model.Host to a response Host
func HostFromModel(h *model.Host) Host {
	return Host{
		ID:          string(h.ID),
		Username:    h.Username,
		DisplayName: h.DisplayName,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Host         Host   `json:"host"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Host:         HostFromModel(&s.Host),
		SessionToken: s.Token,
	}
}

// Team represents a team
type Team struct {
	Name    string   `json:"name"`
	RoleID  string   `json:"role_id,omitempty"`
	Members []string `json:"members"`
	Score   int      `json:"score"`
}

// TeamFromModel converts model.Team
func TeamFromModel(t *model.Team) Team {
	members := make([]string, len(t.Members))
	for i, m := range t.Members {
		members[i] = string(m)
	}
	return Team{
		Name:    t.Name,
		RoleID:  string(t.RoleID),
		Members: members,
		Score:   t.Score,
	}
}

// Question represents a question. The answer is included only by the
// reveal endpoints; the board and game views keep it hidden.
type Question struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Prompt   string `json:"prompt"`
	Answer   string `json:"answer,omitempty"`
	Value    int    `json:"value"`
	Answered bool   `json:"answered"`
}

// QuestionFromModel converts model.Question without revealing the answer
func QuestionFromModel(q *model.Question) Question {
	return Question{
		ID:       string(q.ID),
		Category: q.Category,
		Prompt:   q.Prompt,
		Value:    q.Value,
		Answered: q.Answered,
	}
}

// QuestionWithAnswer converts model.Question including the answer
func QuestionWithAnswer(q *model.Question) Question {
	resp := QuestionFromModel(q)
	resp.Answer = q.Answer
	return resp
}

// GameState represents the current game state
type GameState struct {
	ID          string              `json:"id"`
	GuildID     string              `json:"guild_id"`
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	State       string              `json:"state"`
	Teams       []Team              `json:"teams"`
	Players     []string            `json:"players"`
	Categories  []string            `json:"categories"`
	Questions   []Question          `json:"questions"`
	Buzzes      map[string][]string `json:"buzzes,omitempty"`
}

// GameStateFromModel converts model.Game to response GameState
func GameStateFromModel(g *model.Game) GameState {
	teams := make([]Team, len(g.Teams))
	for i, t := range g.Teams {
		teams[i] = TeamFromModel(t)
	}

	players := make([]string, len(g.Players))
	for i, p := range g.Players {
		players[i] = string(p)
	}

	questions := make([]Question, len(g.Questions))
	for i, q := range g.Questions {
		questions[i] = QuestionFromModel(q)
	}

	buzzes := make(map[string][]string, len(g.Buzzes))
	for qid, teams := range g.Buzzes {
		buzzes[string(qid)] = teams
	}

	return GameState{
		ID:          string(g.ID),
		GuildID:     string(g.GuildID),
		Name:        g.Name,
		Description: g.Description,
		State:       string(g.State),
		Teams:       teams,
		Players:     players,
		Categories:  g.Categories,
		Questions:   questions,
		Buzzes:      buzzes,
	}
}

// Board is the category-by-value grid view
type Board struct {
	Categories map[string][]string `json:"categories"`
}

// BoardFromModel converts model.Board
func BoardFromModel(b model.Board) Board {
	return Board{Categories: b}
}

// Standing is one leaderboard row
type Standing struct {
	Name    string   `json:"name"`
	Score   int      `json:"score"`
	Members []string `json:"members"`
}

// Standings is the ordered leaderboard plus the winning teams
type Standings struct {
	Standings []Standing `json:"standings"`
	Winners   []string   `json:"winners"`
}

// StandingsFromModel builds the leaderboard response
func StandingsFromModel(rows []scoring.TeamStanding, winners []*model.Team) Standings {
	standings := make([]Standing, len(rows))
	for i, row := range rows {
		members := make([]string, len(row.Members))
		for j, m := range row.Members {
			members[j] = string(m)
		}
		standings[i] = Standing{Name: row.Name, Score: row.Score, Members: members}
	}

	names := make([]string, len(winners))
	for i, t := range winners {
		names[i] = t.Name
	}

	return Standings{Standings: standings, Winners: names}
}

// GameSummary represents a finished game
type GameSummary struct {
	GameID      string         `json:"game_id"`
	Name        string         `json:"name"`
	FinalScores map[string]int `json:"final_scores"`
	Winners     []string       `json:"winners"`
	EndedAt     time.Time      `json:"ended_at"`
}

// GameSummaryFromModel converts model.GameSummary
func GameSummaryFromModel(s *model.GameSummary) GameSummary {
	return GameSummary{
		GameID:      string(s.GameID),
		Name:        s.Name,
		FinalScores: s.FinalScores,
		Winners:     s.Winners,
		EndedAt:     s.EndedAt,
	}
}

// Pack represents a question pack
type Pack struct {
	Name       string         `json:"name"`
	Categories map[string]int `json:"categories"`
	LoadedAt   time.Time      `json:"loaded_at"`
}

// PackFromModel converts model.QuestionPack, reporting question counts
// rather than question contents
func PackFromModel(p *model.QuestionPack) Pack {
	categories := make(map[string]int, len(p.Categories))
	for cat, questions := range p.Categories {
		categories[cat] = len(questions)
	}
	return Pack{
		Name:       p.Name,
		Categories: categories,
		LoadedAt:   p.LoadedAt,
	}
}
