package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/quizhost/quizhost/internal/dependencies/clock"
	"github.com/quizhost/quizhost/internal/model"
	"github.com/quizhost/quizhost/internal/storage"
)

// Service manages the question-pack catalog: reusable question sets
// loaded from YAML files or uploaded through the API, stored behind the
// storage interface so games can be built from them later.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new catalog Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// LoadFromFile parses a YAML question pack and stores it
func (s *Service) LoadFromFile(ctx context.Context, path string) (*model.QuestionPack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pack file: %w", err)
	}

	var pack model.QuestionPack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidPack, err)
	}

	if err := s.SavePack(ctx, &pack); err != nil {
		return nil, err
	}

	s.logger.Info("question pack loaded",
		slog.String("pack", pack.Name),
		slog.String("path", path),
		slog.Int("categories", len(pack.Categories)),
	)

	return &pack, nil
}

// SavePack validates and stores a pack
func (s *Service) SavePack(ctx context.Context, pack *model.QuestionPack) error {
	if err := pack.Validate(); err != nil {
		return err
	}
	pack.LoadedAt = s.clock.Now()
	return s.storage.SavePack(ctx, pack)
}

// GetPack retrieves a pack by name
func (s *Service) GetPack(ctx context.Context, name string) (*model.QuestionPack, error) {
	return s.storage.GetPack(ctx, name)
}

// ListPacks returns the stored pack names
func (s *Service) ListPacks(ctx context.Context) ([]string, error) {
	return s.storage.ListPacks(ctx)
}

// DeletePack removes a pack from the catalog
func (s *Service) DeletePack(ctx context.Context, name string) error {
	return s.storage.DeletePack(ctx, name)
}
