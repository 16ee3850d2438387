package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quizhost/quizhost/internal/model"
	"github.com/quizhost/quizhost/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// All values are stored as JSON, which doubles as the game snapshot
// format: a saved game restored from Redis is equivalent to the original.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Guild session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.GuildSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(session.GuildID), data, s.cfg.SessionTTL).Err()
}

func (s *Storage) GetSession(ctx context.Context, guildID model.GuildID) (*model.GuildSession, error) {
	data, err := s.client.Get(ctx, sessionKey(guildID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	var session model.GuildSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, guildID model.GuildID) error {
	return s.client.Del(ctx, sessionKey(guildID)).Err()
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, gameKey(game.ID), data, s.cfg.GameTTL).Err()
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	data, err := s.client.Get(ctx, gameKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}

	var game model.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	return s.client.Del(ctx, gameKey(id)).Err()
}

// Host operations

func (s *Storage) SaveHost(ctx context.Context, host *model.Host) error {
	data, err := json.Marshal(host)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, hostKey(host.ID), data, 0) // No TTL
	pipe.Set(ctx, usernameIndexKey(host.Username), string(host.ID), 0)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetHost(ctx context.Context, id model.HostID) (*model.Host, error) {
	data, err := s.client.Get(ctx, hostKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrHostNotFound
		}
		return nil, err
	}

	var host model.Host
	if err := json.Unmarshal(data, &host); err != nil {
		return nil, err
	}
	return &host, nil
}

func (s *Storage) GetHostByUsername(ctx context.Context, username string) (*model.Host, error) {
	id, err := s.client.Get(ctx, usernameIndexKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrHostNotFound
		}
		return nil, err
	}

	return s.GetHost(ctx, model.HostID(id))
}

// Question pack operations

func (s *Storage) SavePack(ctx context.Context, pack *model.QuestionPack) error {
	data, err := json.Marshal(pack)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, packKey(pack.Name), data, 0)
	pipe.SAdd(ctx, packIndexKey(), pack.Name)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPack(ctx context.Context, name string) (*model.QuestionPack, error) {
	data, err := s.client.Get(ctx, packKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPackNotFound
		}
		return nil, err
	}

	var pack model.QuestionPack
	if err := json.Unmarshal(data, &pack); err != nil {
		return nil, err
	}
	return &pack, nil
}

func (s *Storage) ListPacks(ctx context.Context) ([]string, error) {
	names, err := s.client.SMembers(ctx, packIndexKey()).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

func (s *Storage) DeletePack(ctx context.Context, name string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, packKey(name))
	pipe.SRem(ctx, packIndexKey(), name)
	_, err := pipe.Exec(ctx)
	return err
}
