package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildGame(t *testing.T) *Game {
	t.Helper()

	game := &Game{
		ID:         "GAME1",
		GuildID:    "guild-1",
		Name:       "Trivia Night",
		State:      GameStateStarted,
		Categories: []string{"History", "Science"},
		Buzzes:     make(map[QuestionID][]string),
	}

	for _, spec := range []struct {
		category string
		value    int
	}{
		{"History", 100},
		{"History", 200},
		{"Science", 100},
	} {
		q, err := NewQuestion(spec.category, "Q", "A", spec.value)
		require.NoError(t, err)
		game.Questions = append(game.Questions, q)
	}

	return game
}

func TestBoard(t *testing.T) {
	game := buildGame(t)

	board := game.Board()
	assert.Equal(t, Board{
		"History": {"100", "200"},
		"Science": {"100"},
	}, board)
}

func TestBoardMasksAnswered(t *testing.T) {
	game := buildGame(t)
	require.NoError(t, game.Questions[0].MarkAnswered())

	board := game.Board()
	assert.Equal(t, []string{AnsweredMask, "200"}, board["History"])
	assert.Equal(t, []string{"100"}, board["Science"])
}

func TestWinners(t *testing.T) {
	game := buildGame(t)
	game.Teams = []*Team{
		{Name: "Red", Score: 10},
		{Name: "Blue", Score: 10},
		{Name: "Green", Score: 5},
	}

	winners := game.Winners()
	require.Len(t, winners, 2)
	assert.Equal(t, "Red", winners[0].Name)
	assert.Equal(t, "Blue", winners[1].Name)
}

func TestWinnersAllZero(t *testing.T) {
	game := buildGame(t)
	game.Teams = []*Team{
		{Name: "Red"},
		{Name: "Blue"},
		{Name: "Green"},
	}

	assert.Len(t, game.Winners(), 3)
}

func TestWinnersNegativeScores(t *testing.T) {
	game := buildGame(t)
	game.Teams = []*Team{
		{Name: "Red", Score: -100},
		{Name: "Blue", Score: -50},
	}

	winners := game.Winners()
	require.Len(t, winners, 1)
	assert.Equal(t, "Blue", winners[0].Name)
}

func TestWinnersNoTeams(t *testing.T) {
	game := buildGame(t)
	assert.Empty(t, game.Winners())
}

func TestTeamByName(t *testing.T) {
	game := buildGame(t)
	game.Teams = []*Team{NewTeam("Red"), NewTeam("Blue")}

	assert.Equal(t, game.Teams[1], game.TeamByName("Blue"))
	assert.Nil(t, game.TeamByName("Green"))
}

func TestQuestionByID(t *testing.T) {
	game := buildGame(t)

	assert.Equal(t, game.Questions[1], game.QuestionByID(game.Questions[1].ID))
	assert.Nil(t, game.QuestionByID("missing"))
}

func TestHasBuzzed(t *testing.T) {
	game := buildGame(t)
	qid := game.Questions[0].ID
	game.Buzzes[qid] = []string{"Red"}

	assert.True(t, game.HasBuzzed(qid, "Red"))
	assert.False(t, game.HasBuzzed(qid, "Blue"))
	assert.False(t, game.HasBuzzed("missing", "Red"))
}

// A game survives a marshal/unmarshal cycle with its board intact, which
// is what the redis and bolt backends rely on.
func TestGameJSONRoundTrip(t *testing.T) {
	game := buildGame(t)
	game.Teams = []*Team{NewTeam("Red"), NewTeam("Blue")}
	game.Teams[0].AddPoints(300)
	require.NoError(t, game.Questions[2].MarkAnswered())
	game.Buzzes[game.Questions[0].ID] = []string{"Red", "Blue"}

	data, err := json.Marshal(game)
	require.NoError(t, err)

	var restored Game
	require.NoError(t, json.Unmarshal(data, &restored))

	assert.Equal(t, game.ID, restored.ID)
	assert.Equal(t, game.State, restored.State)
	assert.Equal(t, game.Board(), restored.Board())
	assert.Equal(t, game.Buzzes, restored.Buzzes)
	assert.Equal(t, 300, restored.TeamByName("Red").Score)
}
