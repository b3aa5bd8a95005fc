package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/fogmaze/internal/entity"
	"github.com/samdwyer/fogmaze/internal/interaction"
	"github.com/samdwyer/fogmaze/internal/logging"
	"github.com/samdwyer/fogmaze/internal/telemetry"
	"github.com/samdwyer/fogmaze/internal/world"
)

var (
	// ErrSessionOver is returned by AttemptMove while the player is dead.
	ErrSessionOver = errors.New("session is over, reset to play again")
	// ErrInvalidDirection is returned for directions outside the four
	// compass points.
	ErrInvalidDirection = errors.New("invalid direction")
)

const welcomeMessage = "Welcome! Use WASD to move around."

// Options configures a Session. Generator is required; everything else
// has a usable zero value.
type Options struct {
	Rows, Cols int
	Generator  world.Generator
	Placer     world.Placer // defaults to world.RandomPlacer
	Rand       *rand.Rand   // defaults to a time-seeded source

	RequireReachable bool
	Logger           *logrus.Logger
}

// Session is one playthrough: it owns the world and the player and routes
// commands to them. It is not safe for concurrent use; one goroutine
// drives it and each call completes before the next starts.
type Session struct {
	id     string
	opts   Options
	log    *logrus.Entry
	world  *world.State
	player entity.Player
	state  State
	last   interaction.Result
	status string
}

// NewSession builds the first world and places the player at full health
// with no money. Invalid options fail with a *world.ConfigError and no
// session is returned.
func NewSession(ctx context.Context, opts Options) (*Session, error) {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Placer == nil {
		opts.Placer = world.RandomPlacer{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	s := &Session{
		id:   uuid.NewString(),
		opts: opts,
	}
	s.log = opts.Logger.WithField("session_id", s.id)

	ctx, span := telemetry.Tracer("game").Start(ctx, "session.new")
	defer span.End()
	span.SetAttributes(attribute.String("session.id", s.id))

	w, err := s.buildWorld(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	s.install(w, 0)

	s.log.WithFields(logrus.Fields{
		"rows":     opts.Rows,
		"cols":     opts.Cols,
		"player":   s.player.Pos.String(),
		"features": w.RemainingFeatures(),
	}).Info("Session started")
	return s, nil
}

func (s *Session) buildWorld(ctx context.Context) (*world.State, error) {
	return world.Build(ctx, world.BuildOptions{
		Rows:             s.opts.Rows,
		Cols:             s.opts.Cols,
		Generator:        s.opts.Generator,
		Placer:           s.opts.Placer,
		Rand:             s.opts.Rand,
		RequireReachable: s.opts.RequireReachable,
	})
}

// install swaps in a new world and a fresh player carrying money.
func (s *Session) install(w *world.State, money int) {
	s.world = w
	s.player = entity.NewPlayer(w.Player(), money)
	s.state = StateActive
	s.last = interaction.Result{Outcome: interaction.OutcomeNothing}
	s.status = welcomeMessage
}

// AttemptMove tries to step the player one cell in dir.
//
// Walking into a wall, or off the edge of the grid, is an ordinary
// OutcomeBlocked result: nothing moves and the fog is re-evaluated at the
// current position. While the session is dead the move is rejected with
// ErrSessionOver and nothing changes.
func (s *Session) AttemptMove(ctx context.Context, dir world.Direction) (interaction.Result, error) {
	if !dir.Valid() {
		return interaction.Result{}, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}
	if s.state == StateDead {
		return interaction.Result{}, ErrSessionOver
	}

	_, span := telemetry.Tracer("game").Start(ctx, "session.move")
	defer span.End()

	from := s.world.Player()
	next := from.Add(dir)

	kind, err := s.world.Grid.Get(next)
	if err != nil || !kind.IsPassable() {
		result, _ := interaction.Resolve(world.TileWall, s.player)
		if err := s.world.Reveal(); err != nil {
			return interaction.Result{}, err
		}
		s.last = result
		s.status = fmt.Sprintf("%v %s", from, result.Message)
		s.traceMove(span, dir, result)
		s.log.WithFields(logrus.Fields{"direction": dir.String(), "at": from.String()}).Debug("Move blocked")
		return result, nil
	}

	prev, err := s.world.MovePlayer(next)
	if err != nil {
		span.RecordError(err)
		return interaction.Result{}, err
	}

	result, player := interaction.Resolve(prev, s.player)
	player.Pos = s.world.Player()
	s.player = player
	if err := s.world.Reveal(); err != nil {
		return interaction.Result{}, err
	}

	s.last = result
	s.status = fmt.Sprintf("%v %s", next, result.Message)
	if result.Outcome == interaction.OutcomeDeath {
		s.state = StateDead
	}
	s.traceMove(span, dir, result)

	entry := s.log.WithFields(logrus.Fields{
		"direction": dir.String(),
		"to":        next.String(),
		"outcome":   result.Outcome.String(),
		"health":    s.player.Health,
		"money":     s.player.Money,
	})
	switch result.Outcome {
	case interaction.OutcomeDeath:
		entry.Info("Player died")
	case interaction.OutcomeTreasureFound:
		entry.Info("Treasure collected")
	default:
		entry.Debug("Player moved")
	}
	return result, nil
}

func (s *Session) traceMove(span trace.Span, dir world.Direction, result interaction.Result) {
	span.SetAttributes(
		attribute.String("session.id", s.id),
		attribute.String("move.direction", dir.String()),
		attribute.String("move.outcome", result.Outcome.String()),
		attribute.Int("player.row", s.player.Pos.Row),
		attribute.Int("player.col", s.player.Pos.Col),
		attribute.Int("player.health", s.player.Health),
		attribute.Int("player.money", s.player.Money),
	)
}

// Reset replaces the world with a freshly generated one, restores health,
// keeps the money, and makes the session active again. It works from any
// state. If generation fails the current world is kept.
func (s *Session) Reset(ctx context.Context) error {
	ctx, span := telemetry.Tracer("game").Start(ctx, "session.reset")
	defer span.End()

	w, err := s.buildWorld(ctx)
	if err != nil {
		span.RecordError(err)
		s.log.WithError(err).Error("Reset failed")
		return err
	}

	money := s.player.Money
	s.install(w, money)

	span.SetAttributes(
		attribute.String("session.id", s.id),
		attribute.Int("player.money", money),
	)
	s.log.WithFields(logrus.Fields{
		"money":    money,
		"player":   s.player.Pos.String(),
		"features": w.RemainingFeatures(),
	}).Info("World reset")
	return nil
}

// RevealAll lifts the fog from every cell. It does nothing once the
// player is dead.
func (s *Session) RevealAll(ctx context.Context) {
	if s.state != StateActive {
		return
	}
	_, span := telemetry.Tracer("game").Start(ctx, "session.reveal_all")
	defer span.End()

	s.world.RevealAll()
	s.status = "The fog lifts."
	s.log.Debug("Fog cleared")
}

// Apply routes a command to a move, a reset, or a full reveal. Quit and
// unknown commands are no-ops here; the input loop handles quitting.
func (s *Session) Apply(ctx context.Context, cmd Command) error {
	if dir, ok := cmd.Direction(); ok {
		_, err := s.AttemptMove(ctx, dir)
		if errors.Is(err, ErrSessionOver) {
			s.status = "You are dead. Press R to start over."
		}
		return err
	}

	switch cmd {
	case CommandReset:
		return s.Reset(ctx)
	case CommandRevealAll:
		s.RevealAll(ctx)
	}
	return nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// State returns the session's lifecycle state.
func (s *Session) State() State { return s.state }

// Player returns a copy of the player's stats.
func (s *Session) Player() entity.Player { return s.player }

// World returns the current world. It is replaced on Reset.
func (s *Session) World() *world.State { return s.world }

// LastResult returns the result of the most recent move.
func (s *Session) LastResult() interaction.Result { return s.last }

// Status returns a short human-readable line about the last command.
func (s *Session) Status() string { return s.status }
