package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/quizhost/quizhost/internal/model"
	"github.com/quizhost/quizhost/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	sessions      map[model.GuildID]*model.GuildSession
	games         map[model.GameID]*model.Game
	hosts         map[model.HostID]*model.Host
	usernameIndex map[string]model.HostID
	packs         map[string]*model.QuestionPack
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		sessions:      make(map[model.GuildID]*model.GuildSession),
		games:         make(map[model.GameID]*model.Game),
		hosts:         make(map[model.HostID]*model.Host),
		usernameIndex: make(map[string]model.HostID),
		packs:         make(map[string]*model.QuestionPack),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Guild session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.GuildSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.GuildID] = session
	return nil
}

func (s *Storage) GetSession(ctx context.Context, guildID model.GuildID) (*model.GuildSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[guildID]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, guildID model.GuildID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, guildID)
	return nil
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = game
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return game, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
	return nil
}

// Host operations

func (s *Storage) SaveHost(ctx context.Context, host *model.Host) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hosts[host.ID] = host
	s.usernameIndex[host.Username] = host.ID
	return nil
}

func (s *Storage) GetHost(ctx context.Context, id model.HostID) (*model.Host, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	host, ok := s.hosts[id]
	if !ok {
		return nil, model.ErrHostNotFound
	}
	return host, nil
}

func (s *Storage) GetHostByUsername(ctx context.Context, username string) (*model.Host, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrHostNotFound
	}
	host, ok := s.hosts[id]
	if !ok {
		return nil, model.ErrHostNotFound
	}
	return host, nil
}

// Question pack operations

func (s *Storage) SavePack(ctx context.Context, pack *model.QuestionPack) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.packs[pack.Name] = pack
	return nil
}

func (s *Storage) GetPack(ctx context.Context, name string) (*model.QuestionPack, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pack, ok := s.packs[name]
	if !ok {
		return nil, model.ErrPackNotFound
	}
	return pack, nil
}

func (s *Storage) ListPacks(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.packs))
	for name := range s.packs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *Storage) DeletePack(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.packs, name)
	return nil
}
