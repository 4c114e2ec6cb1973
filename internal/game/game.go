package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/careers/internal/board"
	"github.com/samdwyer/careers/internal/entity"
	"github.com/samdwyer/careers/internal/gamedata"
	"github.com/samdwyer/careers/internal/telemetry"
	"github.com/samdwyer/careers/internal/ui"
)

// Game holds the entire game state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	board    *board.Board
	careers  *gamedata.CareerRegistry
	session  *Session
	logFile  *os.File
	state    State
	status   string
	running  bool
}

// New creates a new game instance on the terminal.
func New(ctx context.Context, cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	g, err := newWithScreen(ctx, cfg, screen)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

// newWithScreen creates a game drawing on the given screen.
func newWithScreen(ctx context.Context, cfg Config, screen *ui.Screen) (*Game, error) {
	b, err := board.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load board: %w", err)
	}
	careers, err := gamedata.LoadCareerRegistry()
	if err != nil {
		return nil, fmt.Errorf("load careers: %w", err)
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.New(logFile, "careers: ", log.LstdFlags)

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen, careers),
		board:    b,
		careers:  careers,
		session:  NewSession(b, logger, cfg.MaxPlayers, entity.WithLocale(cfg.LocaleTag())),
		logFile:  logFile,
		state:    StateSetup,
		running:  true,
	}, nil
}

// Run executes the setup dialogs and then the main game loop.
func (g *Game) Run(ctx context.Context) error {
	defer g.Close()

	stop := g.interruptOnCancel(ctx)
	defer stop()

	tracer := telemetry.Tracer("game")

	// Setup (traced)
	initCtx, initSpan := tracer.Start(ctx, "game.init")
	err := g.setup(initCtx)
	initSpan.SetAttributes(
		attribute.String("session.id", g.session.ID),
		attribute.Int("session.players", len(g.session.Players())),
		attribute.Int("board.spaces", g.board.Len()),
		attribute.Int("careers", g.careers.Count()),
	)
	initSpan.End()
	if errors.Is(err, ui.ErrCancelled) || errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return err
	}

	g.state = StatePlay
	g.status = g.turnStatus()

	// Main game loop
	for g.running {
		g.renderer.Render(ui.View{
			Board:   g.board,
			Players: g.session.Players(),
			Active:  g.session.ActiveIndex(),
			Status:  g.status,
		})

		g.handleInput(ctx)
	}

	return nil
}

// interruptOnCancel wakes the blocked event loop once ctx is done. The
// returned func stops the watcher.
func (g *Game) interruptOnCancel(ctx context.Context) func() {
	screen := g.screen
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-done:
		}
	}()
	return func() { close(done) }
}

// setup asks for the player count and each player's goal.
func (g *Game) setup(ctx context.Context) error {
	count, err := ui.NewSetupDialog(g.screen, g.cfg.MaxPlayers).PromptCount(ctx)
	if err != nil {
		return err
	}

	g.state = StateGoals
	var prompter entity.GoalPrompter
	if !g.cfg.SkipGoals {
		prompter = ui.NewGoalDialog(g.screen)
	}
	return g.session.Bootstrap(ctx, count, prompter)
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventInterrupt:
		if ctx.Err() != nil {
			g.running = false
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyEnter:
		g.advance(ctx)
	case tcell.KeyTab:
		g.session.NextTurn()
		g.status = g.turnStatus()

	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			g.advance(ctx)
		case 'q', 'Q':
			g.running = false
		}
	}
}

// advance moves the active player one space.
func (g *Game) advance(ctx context.Context) {
	p, space := g.session.AdvanceActive(ctx)
	if p == nil {
		return
	}
	g.status = fmt.Sprintf("%s moved to %s. %s", p.Name(), space.Name, g.turnStatus())
}

// turnStatus describes whose turn it is and who has met their goal.
func (g *Game) turnStatus() string {
	active := g.session.Active()
	if active == nil {
		return ""
	}
	status := fmt.Sprintf("%s to move (Space: advance, Tab: skip, q: quit)", active.Name())

	winners := g.session.Winners()
	if len(winners) == 0 {
		return status
	}
	names := make([]string, len(winners))
	for i, w := range winners {
		names[i] = w.Name()
	}
	return fmt.Sprintf("Goal met: %s. %s", strings.Join(names, ", "), status)
}

// State returns the current game state.
func (g *Game) State() State { return g.state }

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
	if g.logFile != nil {
		g.logFile.Close()
		g.logFile = nil
	}
}
