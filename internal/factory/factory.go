package factory

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mcoot/othello-arena/internal/dependencies/clock"
	"github.com/mcoot/othello-arena/internal/dependencies/random"
	"github.com/mcoot/othello-arena/internal/model"
	"github.com/mcoot/othello-arena/internal/services/board"
	"github.com/mcoot/othello-arena/internal/services/bot"
	"github.com/mcoot/othello-arena/internal/services/game"
)

// App contains all wired application components
type App struct {
	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	BoardService *board.Service
	BotService   *bot.Service

	Logger *slog.Logger

	newID func() model.GameID
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// Seed makes the random agents reproducible (optional)
	// If nil, agents draw from crypto/rand
	Seed *uint64
}

// New creates a new application with all dependencies wired
func New(cfg Config) *App {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var rnd random.Random = random.New()
	if cfg.Seed != nil {
		rnd = random.NewSeeded(*cfg.Seed)
	}

	return newWithDependencies(clock.New(), rnd, logger, func() model.GameID {
		return model.GameID(uuid.NewString())
	})
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(clk clock.Clock, rnd random.Random, logger *slog.Logger, newID func() model.GameID) *App {
	boardService := board.New(logger)
	botService := bot.NewService(boardService, rnd, logger)

	return &App{
		Clock:        clk,
		Random:       rnd,
		BoardService: boardService,
		BotService:   botService,
		Logger:       logger,
		newID:        newID,
	}
}

// NewMatch creates a controller for a fresh game between two named strategies
func (a *App) NewMatch(settings model.Settings, black, white string) (*game.Controller, error) {
	blackAgent, err := a.BotService.Agent(black)
	if err != nil {
		return nil, fmt.Errorf("black agent: %w", err)
	}
	whiteAgent, err := a.BotService.Agent(white)
	if err != nil {
		return nil, fmt.Errorf("white agent: %w", err)
	}

	return a.NewMatchWithAgents(settings, [2]game.Agent{blackAgent, whiteAgent})
}

// NewMatchWithAgents creates a controller for a fresh game between the
// given agents, indexed by side
func (a *App) NewMatchWithAgents(settings model.Settings, agents [2]game.Agent) (*game.Controller, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	g := model.NewGame(a.newID(), settings, a.Clock.Now())
	a.Logger.Info("match created",
		slog.String("game_id", string(g.ID)),
		slog.Int("size", settings.Size),
	)
	return game.NewController(g, agents, a.BoardService, a.Clock, a.Logger), nil
}
