package scoring

import (
	"sort"
	"time"

	"github.com/quizhost/quizhost/internal/model"
)

// Service computes standings, winners, and end-of-game summaries
type Service struct{}

// New creates a new scoring Service
func New() *Service {
	return &Service{}
}

// TeamStanding is one row of the leaderboard
type TeamStanding struct {
	Name    string
	Score   int
	Members []model.MemberID
}

// Standings returns teams ordered by score descending. The sort is stable,
// so equally-scored teams keep their configuration order.
func (s *Service) Standings(game *model.Game) []TeamStanding {
	standings := make([]TeamStanding, 0, len(game.Teams))
	for _, t := range game.Teams {
		standings = append(standings, TeamStanding{
			Name:    t.Name,
			Score:   t.Score,
			Members: t.Members,
		})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Score > standings[j].Score
	})

	return standings
}

// Winners returns every team at the maximum score. Ties produce multiple
// winners; all-zero or all-negative scoreboards still produce a result.
func (s *Service) Winners(game *model.Game) []*model.Team {
	return game.Winners()
}

// Summarize produces the record kept in a guild session's history
func (s *Service) Summarize(game *model.Game, endedAt time.Time) *model.GameSummary {
	finalScores := make(map[string]int, len(game.Teams))
	for _, t := range game.Teams {
		finalScores[t.Name] = t.Score
	}

	winners := game.Winners()
	winnerNames := make([]string, 0, len(winners))
	for _, t := range winners {
		winnerNames = append(winnerNames, t.Name)
	}

	return &model.GameSummary{
		GameID:      game.ID,
		Name:        game.Name,
		FinalScores: finalScores,
		Winners:     winnerNames,
		EndedAt:     endedAt,
	}
}
