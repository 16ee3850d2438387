package factory

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/gorilla/mux"

	"github.com/quizhost/quizhost/internal/api"
	"github.com/quizhost/quizhost/internal/dependencies/clock"
	"github.com/quizhost/quizhost/internal/dependencies/random"
	"github.com/quizhost/quizhost/internal/presenter"
	"github.com/quizhost/quizhost/internal/services/auth"
	"github.com/quizhost/quizhost/internal/services/catalog"
	"github.com/quizhost/quizhost/internal/services/game"
	"github.com/quizhost/quizhost/internal/services/scoring"
	"github.com/quizhost/quizhost/internal/services/session"
	"github.com/quizhost/quizhost/internal/storage"
	boltstorage "github.com/quizhost/quizhost/internal/storage/bolt"
	memorystorage "github.com/quizhost/quizhost/internal/storage/memory"
	redisstorage "github.com/quizhost/quizhost/internal/storage/redis"
)

// Storage backend selectors
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageBolt   = "bolt"
)

// Config holds application configuration
type Config struct {
	StorageType string
	RedisConfig redisstorage.Config
	BoltPath    string
	AuthConfig  auth.Config
	Logger      *slog.Logger
}

// App holds the constructed application components
type App struct {
	Storage        storage.Storage
	Presenter      presenter.Presenter
	AuthService    *auth.Service
	GameCtrl       *game.Controller
	SessionCtrl    *session.Controller
	ScoringService *scoring.Service
	CatalogService *catalog.Service
	Logger         *slog.Logger

	closer io.Closer
}

// NewApp wires storage, services, and presentation from configuration
func NewApp(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var (
		store  storage.Storage
		closer io.Closer
	)
	switch cfg.StorageType {
	case StorageMemory, "":
		store = memorystorage.New()
	case StorageRedis:
		s, err := redisstorage.New(cfg.RedisConfig)
		if err != nil {
			return nil, fmt.Errorf("creating redis storage: %w", err)
		}
		store = s
		closer = s
	case StorageBolt:
		s, err := boltstorage.New(cfg.BoltPath)
		if err != nil {
			return nil, fmt.Errorf("creating bolt storage: %w", err)
		}
		store = s
		closer = s
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.StorageType)
	}

	clk := clock.New()
	// Gameplay randomness (shuffles, game IDs) has no security requirement
	rnd := random.NewPseudo()
	pres := presenter.NewLogPresenter(logger)

	scoringService := scoring.New()
	gameCtrl := game.NewController(store, pres, clk, rnd, logger)
	sessionCtrl := session.NewController(store, gameCtrl, scoringService, clk, logger)
	authService := auth.New(store, clk, cfg.AuthConfig, logger)
	catalogService := catalog.New(store, clk, logger)

	return &App{
		Storage:        store,
		Presenter:      pres,
		AuthService:    authService,
		GameCtrl:       gameCtrl,
		SessionCtrl:    sessionCtrl,
		ScoringService: scoringService,
		CatalogService: catalogService,
		Logger:         logger,
		closer:         closer,
	}, nil
}

// Router builds the API router over the app's services
func (a *App) Router() *mux.Router {
	return api.NewRouter(api.RouterConfig{
		AuthService:    a.AuthService,
		SessionCtrl:    a.SessionCtrl,
		GameCtrl:       a.GameCtrl,
		ScoringService: a.ScoringService,
		CatalogService: a.CatalogService,
		Logger:         a.Logger,
	})
}

// Close releases storage resources
func (a *App) Close() error {
	if a.closer != nil {
		return a.closer.Close()
	}
	return nil
}
