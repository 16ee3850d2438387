// Package presenter defines the typed contract for presentation-layer side
// effects the game engine requests. The Discord adapter (external to this
// repository) implements it; the engine never reaches into the presentation
// layer by name.
package presenter

import (
	"context"
	"log/slog"

	"github.com/quizhost/quizhost/internal/model"
)

// Presenter is the set of presentation operations the engine may request
type Presenter interface {
	// AnnounceGame tells the presentation layer a game is open for enrollment
	AnnounceGame(ctx context.Context, guildID model.GuildID, name, description string) error

	// AssignTeamRole grants a member their team's role handle
	AssignTeamRole(ctx context.Context, guildID model.GuildID, member model.MemberID, role model.RoleID) error
}

// LogPresenter logs requested presentation actions. It stands in when no
// real presentation layer is attached, e.g. in the standalone server.
type LogPresenter struct {
	logger *slog.Logger
}

// NewLogPresenter creates a LogPresenter
func NewLogPresenter(logger *slog.Logger) *LogPresenter {
	return &LogPresenter{logger: logger}
}

var _ Presenter = (*LogPresenter)(nil)

func (p *LogPresenter) AnnounceGame(ctx context.Context, guildID model.GuildID, name, description string) error {
	p.logger.Info("announce game",
		slog.String("guild_id", string(guildID)),
		slog.String("name", name),
	)
	return nil
}

func (p *LogPresenter) AssignTeamRole(ctx context.Context, guildID model.GuildID, member model.MemberID, role model.RoleID) error {
	p.logger.Info("assign team role",
		slog.String("guild_id", string(guildID)),
		slog.String("member_id", string(member)),
		slog.String("role_id", string(role)),
	)
	return nil
}
