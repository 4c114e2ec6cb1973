package game

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/careers/internal/board"
	"github.com/samdwyer/careers/internal/entity"
	"github.com/samdwyer/careers/internal/telemetry"
)

var (
	// ErrPlayerCount is returned for a player count outside 1..MaxPlayers.
	ErrPlayerCount = errors.New("invalid player count")
	// ErrStarted is returned when a session is bootstrapped twice.
	ErrStarted = errors.New("session already started")
)

// Session owns the players of one game, in turn order.
type Session struct {
	ID string

	board      *board.Board
	logger     *log.Logger
	maxPlayers int
	playerOpts []entity.Option

	players []*entity.Player
	active  int
}

// NewSession creates an empty session on the given board.
// Player options are applied to every player the session creates.
func NewSession(b *board.Board, logger *log.Logger, maxPlayers int, playerOpts ...entity.Option) *Session {
	return &Session{
		ID:         uuid.NewString(),
		board:      b,
		logger:     logger,
		maxPlayers: maxPlayers,
		playerOpts: append([]entity.Option{entity.WithLogger(logger)}, playerOpts...),
	}
}

// CheckPlayerCount returns an error unless count is within 1..limit.
func CheckPlayerCount(count, limit int) error {
	if err := validate.Var(count, fmt.Sprintf("min=1,max=%d", limit)); err != nil {
		return fmt.Errorf("%w: %d (choose 1 to %d)", ErrPlayerCount, count, limit)
	}
	return nil
}

// Bootstrap creates count players one at a time.
//
// When prompter is non-nil each player declares a goal before the next
// player is created. Every player is rendered once created.
func (s *Session) Bootstrap(ctx context.Context, count int, prompter entity.GoalPrompter) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.bootstrap")
	defer span.End()

	span.SetAttributes(
		attribute.String("session.id", s.ID),
		attribute.Int("session.player_count", count),
		attribute.Bool("session.collect_goals", prompter != nil),
	)

	if len(s.players) > 0 {
		return ErrStarted
	}
	if err := CheckPlayerCount(count, s.maxPlayers); err != nil {
		span.RecordError(err)
		return err
	}

	for i := 1; i <= count; i++ {
		p := entity.NewPlayer(i, s.board, s.playerOpts...)
		if prompter != nil {
			if err := p.CollectGoal(ctx, prompter); err != nil {
				s.board.Remove(p.Token())
				span.RecordError(err)
				return err
			}
		}
		p.Render()
		s.players = append(s.players, p)
		s.logger.Printf("%s joined session %s with goal %+v", p.ID(), s.ID, p.Goal())
	}

	return nil
}

// Players returns the players in turn order.
func (s *Session) Players() []*entity.Player {
	players := make([]*entity.Player, len(s.players))
	copy(players, s.players)
	return players
}

// ActiveIndex returns the position of the player whose turn it is.
func (s *Session) ActiveIndex() int { return s.active }

// Active returns the player whose turn it is, or nil before bootstrap.
func (s *Session) Active() *entity.Player {
	if len(s.players) == 0 {
		return nil
	}
	return s.players[s.active]
}

// NextTurn passes the turn to the following player.
func (s *Session) NextTurn() {
	if len(s.players) == 0 {
		return
	}
	s.active = (s.active + 1) % len(s.players)
}

// AdvanceActive moves the active player one space, re-renders them, and
// passes the turn. It returns the player who moved and where they landed.
func (s *Session) AdvanceActive(ctx context.Context) (*entity.Player, *board.Space) {
	p := s.Active()
	if p == nil {
		return nil, nil
	}
	space := p.Advance(ctx)
	p.Render()
	s.NextTurn()
	return p, space
}

// Winners returns the players who have met their goals.
func (s *Session) Winners() []*entity.Player {
	var winners []*entity.Player
	for _, p := range s.players {
		if p.HasMetGoal() {
			winners = append(winners, p)
		}
	}
	return winners
}
