package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/quizhost/quizhost/internal/dependencies/mocks"
	"github.com/quizhost/quizhost/internal/services/auth"
	"github.com/quizhost/quizhost/internal/services/catalog"
	"github.com/quizhost/quizhost/internal/services/game"
	"github.com/quizhost/quizhost/internal/services/scoring"
	"github.com/quizhost/quizhost/internal/services/session"
	memorystorage "github.com/quizhost/quizhost/internal/storage/memory"
)

// TestApp is an App plus handles on its mocked dependencies
type TestApp struct {
	*App
	Clock         *mocks.MockClock
	Random        *mocks.MockRandom
	MockPresenter *mocks.MockPresenter
}

// NewTestApp wires the application over in-memory storage and mocked
// clock, randomness, and presentation, for integration-style tests
func NewTestApp(logger *slog.Logger) *TestApp {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	store := memorystorage.New()
	clk := &mocks.MockClock{CurrentTime: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	rnd := mocks.NewMockRandom()
	pres := mocks.NewMockPresenter()

	scoringService := scoring.New()
	gameCtrl := game.NewController(store, pres, clk, rnd, logger)
	sessionCtrl := session.NewController(store, gameCtrl, scoringService, clk, logger)
	authService := auth.New(store, clk, auth.DefaultConfig(), logger)
	catalogService := catalog.New(store, clk, logger)

	return &TestApp{
		App: &App{
			Storage:        store,
			Presenter:      pres,
			AuthService:    authService,
			GameCtrl:       gameCtrl,
			SessionCtrl:    sessionCtrl,
			ScoringService: scoringService,
			CatalogService: catalogService,
			Logger:         logger,
		},
		Clock:         clk,
		Random:        rnd,
		MockPresenter: pres,
	}
}
