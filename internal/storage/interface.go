package storage

import (
	"context"

	"github.com/quizhost/quizhost/internal/model"
)

// Storage defines the interface for data persistence. Implementations must
// return the model sentinel errors on lookup misses.
type Storage interface {
	// Guild session operations
	SaveSession(ctx context.Context, session *model.GuildSession) error
	GetSession(ctx context.Context, guildID model.GuildID) (*model.GuildSession, error)
	DeleteSession(ctx context.Context, guildID model.GuildID) error

	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error

	// Host operations
	SaveHost(ctx context.Context, host *model.Host) error
	GetHost(ctx context.Context, id model.HostID) (*model.Host, error)
	GetHostByUsername(ctx context.Context, username string) (*model.Host, error)

	// Question pack operations
	SavePack(ctx context.Context, pack *model.QuestionPack) error
	GetPack(ctx context.Context, name string) (*model.QuestionPack, error)
	ListPacks(ctx context.Context) ([]string, error)
	DeletePack(ctx context.Context, name string) error
}
