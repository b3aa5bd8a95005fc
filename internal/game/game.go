package game

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/fogmaze/internal/gamedata"
	"github.com/samdwyer/fogmaze/internal/telemetry"
	"github.com/samdwyer/fogmaze/internal/ui"
)

// Game ties a session to the terminal: it draws frames and feeds key
// presses to the session one at a time.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	log      *logrus.Logger
	running  bool
}

// New validates cfg, builds the first world, and takes over the terminal.
// Configuration problems are reported before the screen is touched.
func New(ctx context.Context, cfg Config, log *logrus.Logger) (*Game, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	gen, err := cfg.NewGenerator()
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	span.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.String("game.generator", cfg.Generator),
		attribute.Int("game.rows", cfg.Rows),
		attribute.Int("game.cols", cfg.Cols),
	)
	log.WithField("seed", seed).Info("Starting game")

	session, err := NewSession(ctx, Options{
		Rows:             cfg.Rows,
		Cols:             cfg.Cols,
		Generator:        gen,
		Rand:             rand.New(rand.NewSource(seed)),
		RequireReachable: cfg.RequireReachable,
		Logger:           log,
	})
	if err != nil {
		return nil, err
	}

	palette, err := gamedata.LoadPalette()
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, palette),
		session:  session,
		log:      log,
		running:  true,
	}, nil
}

// Run executes the main game loop until the player quits, dies and
// dismisses the final message, or ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	// Wake the blocking poll when the context ends
	stop := context.AfterFunc(ctx, func() {
		_ = g.screen.Interrupt()
	})
	defer stop()

	for g.running {
		g.renderer.Render(g.session.Frame())
		g.handleInput(ctx)
	}
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case nil:
		g.running = false
	case *tcell.EventInterrupt:
		if ctx.Err() != nil {
			g.running = false
		}
	case *tcell.EventKey:
		g.dispatch(ctx, CommandForKey(ev.Key(), ev.Rune()))
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// dispatch applies one command. Once the player is dead any key ends the
// loop, so the death message stays up until it is acknowledged.
func (g *Game) dispatch(ctx context.Context, cmd Command) {
	if g.session.State() == StateDead || cmd == CommandQuit {
		g.running = false
		return
	}

	if err := g.session.Apply(ctx, cmd); err != nil && !errors.Is(err, ErrSessionOver) {
		g.log.WithError(err).WithField("command", cmd.String()).Error("Command failed")
	}
}

// Session returns the session the game is driving.
func (g *Game) Session() *Session {
	return g.session
}
