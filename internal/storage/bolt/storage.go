package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	bolt "go.etcd.io/bbolt"

	"github.com/quizhost/quizhost/internal/model"
	"github.com/quizhost/quizhost/internal/storage"
)

// Bucket names
var (
	bucketSessions  = []byte("sessions")
	bucketGames     = []byte("games")
	bucketHosts     = []byte("hosts")
	bucketUsernames = []byte("host_usernames")
	bucketPacks     = []byte("packs")
)

// Storage is a bbolt-backed implementation of the storage interface,
// for single-host bot deployments that want durability without running
// a Redis instance.
type Storage struct {
	db *bolt.DB
}

// New opens (or creates) the database file and ensures buckets exist
func New(path string) (*Storage, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("opening bolt database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketSessions, bucketGames, bucketHosts, bucketUsernames, bucketPacks} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating buckets: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database file
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) put(bucket []byte, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put([]byte(key), data)
	})
}

func (s *Storage) get(bucket []byte, key string, out any, notFound error) error {
	return s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucket).Get([]byte(key))
		if data == nil {
			return notFound
		}
		return json.Unmarshal(data, out)
	})
}

func (s *Storage) delete(bucket []byte, key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Delete([]byte(key))
	})
}

// Guild session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.GuildSession) error {
	return s.put(bucketSessions, string(session.GuildID), session)
}

func (s *Storage) GetSession(ctx context.Context, guildID model.GuildID) (*model.GuildSession, error) {
	var session model.GuildSession
	if err := s.get(bucketSessions, string(guildID), &session, model.ErrSessionNotFound); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, guildID model.GuildID) error {
	return s.delete(bucketSessions, string(guildID))
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	return s.put(bucketGames, string(game.ID), game)
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	var game model.Game
	if err := s.get(bucketGames, string(id), &game, model.ErrGameNotFound); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	return s.delete(bucketGames, string(id))
}

// Host operations

func (s *Storage) SaveHost(ctx context.Context, host *model.Host) error {
	data, err := json.Marshal(host)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(bucketHosts).Put([]byte(host.ID), data); err != nil {
			return err
		}
		return tx.Bucket(bucketUsernames).Put([]byte(host.Username), []byte(host.ID))
	})
}

func (s *Storage) GetHost(ctx context.Context, id model.HostID) (*model.Host, error) {
	var host model.Host
	if err := s.get(bucketHosts, string(id), &host, model.ErrHostNotFound); err != nil {
		return nil, err
	}
	return &host, nil
}

func (s *Storage) GetHostByUsername(ctx context.Context, username string) (*model.Host, error) {
	var host *model.Host
	err := s.db.View(func(tx *bolt.Tx) error {
		id := tx.Bucket(bucketUsernames).Get([]byte(username))
		if id == nil {
			return model.ErrHostNotFound
		}
		data := tx.Bucket(bucketHosts).Get(id)
		if data == nil {
			return model.ErrHostNotFound
		}
		host = &model.Host{}
		return json.Unmarshal(data, host)
	})
	if err != nil {
		return nil, err
	}
	return host, nil
}

// Question pack operations

func (s *Storage) SavePack(ctx context.Context, pack *model.QuestionPack) error {
	return s.put(bucketPacks, pack.Name, pack)
}

func (s *Storage) GetPack(ctx context.Context, name string) (*model.QuestionPack, error) {
	var pack model.QuestionPack
	if err := s.get(bucketPacks, name, &pack, model.ErrPackNotFound); err != nil {
		return nil, err
	}
	return &pack, nil
}

func (s *Storage) ListPacks(ctx context.Context) ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketPacks).ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

func (s *Storage) DeletePack(ctx context.Context, name string) error {
	return s.delete(bucketPacks, name)
}
