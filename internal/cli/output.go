package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/quizhost/quizhost/internal/api/response"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Output renders API responses for the terminal
type Output struct {
	w      io.Writer
	format string
}

// NewOutput creates an Output writing to w
func NewOutput(w io.Writer, format string) *Output {
	return &Output{w: w, format: format}
}

// JSON returns true when the output format is json
func (o *Output) JSON() bool {
	return o.format == OutputJSON
}

// PrintJSON writes data as indented JSON
func (o *Output) PrintJSON(data any) error {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// Printf writes formatted text
func (o *Output) Printf(format string, args ...any) {
	fmt.Fprintf(o.w, format, args...)
}

// Println writes a line of text
func (o *Output) Println(args ...any) {
	fmt.Fprintln(o.w, args...)
}

// PrintGame renders a game state
func (o *Output) PrintGame(g response.GameState) error {
	if o.JSON() {
		return o.PrintJSON(g)
	}

	o.Printf("Game: %s [%s]\n", g.Name, g.State)
	if g.Description != "" {
		o.Printf("  %s\n", g.Description)
	}
	o.Printf("Guild: %s  ID: %s\n", g.GuildID, g.ID)
	o.Printf("Players enrolled: %d\n", len(g.Players))
	for _, t := range g.Teams {
		o.Printf("  %s: %d points, %d members\n", t.Name, t.Score, len(t.Members))
	}
	return nil
}

// PrintBoard renders the category grid
func (o *Output) PrintBoard(b response.Board) error {
	if o.JSON() {
		return o.PrintJSON(b)
	}

	categories := make([]string, 0, len(b.Categories))
	for cat := range b.Categories {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	for _, cat := range categories {
		o.Printf("%-20s %s\n", cat, strings.Join(b.Categories[cat], "  "))
	}
	return nil
}

// PrintStandings renders the leaderboard
func (o *Output) PrintStandings(s response.Standings) error {
	if o.JSON() {
		return o.PrintJSON(s)
	}

	for i, row := range s.Standings {
		o.Printf("%d. %-20s %d\n", i+1, row.Name, row.Score)
	}
	if len(s.Winners) > 0 {
		o.Printf("Leading: %s\n", strings.Join(s.Winners, ", "))
	}
	return nil
}

// PrintQuestion renders a question
func (o *Output) PrintQuestion(q response.Question) error {
	if o.JSON() {
		return o.PrintJSON(q)
	}

	o.Printf("[%s for %d] %s\n", q.Category, q.Value, q.Prompt)
	if q.Answer != "" {
		o.Printf("Answer: %s\n", q.Answer)
	}
	if q.Answered {
		o.Println("(answered)")
	}
	return nil
}

// PrintSummary renders a finished-game summary
func (o *Output) PrintSummary(s response.GameSummary) error {
	if o.JSON() {
		return o.PrintJSON(s)
	}

	o.Printf("Game over: %s\n", s.Name)

	names := make([]string, 0, len(s.FinalScores))
	for name := range s.FinalScores {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return s.FinalScores[names[i]] > s.FinalScores[names[j]]
	})
	for _, name := range names {
		o.Printf("  %-20s %d\n", name, s.FinalScores[name])
	}
	o.Printf("Winners: %s\n", strings.Join(s.Winners, ", "))
	return nil
}
