package entity

import (
	"context"
	"fmt"
	"io"
	"log"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/samdwyer/careers/internal/board"
	"github.com/samdwyer/careers/internal/goal"
	"github.com/samdwyer/careers/internal/stats"
	"github.com/samdwyer/careers/internal/telemetry"
)

// GoalPrompter asks a player to declare a goal and waits for the answer.
//
// A submitted response must already satisfy goal.Validate. A dismissed
// response carries whatever the form held and is accepted as-is.
type GoalPrompter interface {
	PromptGoal(ctx context.Context, req goal.Request) (goal.Response, error)
}

// Player is one participant: identity, goal, current levels and token.
type Player struct {
	id    string
	name  string
	index int

	goal       stats.Triple
	current    stats.Triple
	salary     int
	degree     string
	experience stats.Experience

	board     *board.Board
	token     *board.Token
	scorecard *Scorecard

	printer *message.Printer
	logger  *log.Logger
}

// Option configures a Player.
type Option func(*Player)

// WithLogger sets where the player writes movement traces.
func WithLogger(l *log.Logger) Option {
	return func(p *Player) { p.logger = l }
}

// WithLocale sets the locale used to group digits in dollar amounts.
func WithLocale(tag language.Tag) Option {
	return func(p *Player) { p.printer = message.NewPrinter(tag) }
}

// NewPlayer creates the player with the given 1-based index.
// Its token is placed on the board's start space.
func NewPlayer(index int, b *board.Board, opts ...Option) *Player {
	id := fmt.Sprintf("player%d", index)
	p := &Player{
		id:        id,
		name:      fmt.Sprintf("Player %d", index),
		index:     index,
		current:   stats.Starting(),
		salary:    stats.StartingSalary,
		degree:    stats.NoDegree,
		board:     b,
		token:     b.NewToken(id),
		scorecard: NewScorecard(),
		printer:   message.NewPrinter(language.AmericanEnglish),
		logger:    log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ID returns the player identifier (e.g., "player1").
func (p *Player) ID() string { return p.id }

// Name returns the display name (e.g., "Player 1").
func (p *Player) Name() string { return p.name }

// Index returns the 1-based player number.
func (p *Player) Index() int { return p.index }

// Goal returns the declared goal.
func (p *Player) Goal() stats.Triple { return p.goal }

// Current returns the current levels.
func (p *Player) Current() stats.Triple { return p.current }

// Salary returns the player's salary.
func (p *Player) Salary() int { return p.salary }

// Degree returns the player's degree.
func (p *Player) Degree() string { return p.degree }

// Experience returns the experience levels.
func (p *Player) Experience() stats.Experience { return p.experience }

// Token returns the player's token.
func (p *Player) Token() *board.Token { return p.token }

// Space returns the space the player's token is on.
func (p *Player) Space() *board.Space { return p.token.Space() }

// Scorecard returns the player's display widget.
func (p *Player) Scorecard() *Scorecard { return p.scorecard }

// SetGoal replaces the goal.
func (p *Player) SetGoal(g stats.Triple) { p.goal = g }

// SetCurrent replaces the current levels.
func (p *Player) SetCurrent(c stats.Triple) { p.current = c }

// SetSalary replaces the salary.
func (p *Player) SetSalary(salary int) { p.salary = salary }

// SetDegree replaces the degree.
func (p *Player) SetDegree(degree string) { p.degree = degree }

// AddExperience raises the experience level for a career.
func (p *Player) AddExperience(c stats.Career, n int) { p.experience.Add(c, n) }

// CollectGoal asks the prompter for this player's goal and blocks until it answers.
func (p *Player) CollectGoal(ctx context.Context, prompter GoalPrompter) error {
	tracer := telemetry.Tracer("entity")
	ctx, span := tracer.Start(ctx, "player.collect_goal")
	defer span.End()

	if err := ctx.Err(); err != nil {
		return err
	}

	resp, err := prompter.PromptGoal(ctx, goal.Request{PlayerName: p.name})
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("collect goal for %s: %w", p.id, err)
	}
	if resp.Submitted {
		if err := goal.Validate(resp.Goal); err != nil {
			span.RecordError(err)
			return fmt.Errorf("collect goal for %s: %w", p.id, err)
		}
	}

	p.goal = resp.Goal

	span.SetAttributes(
		attribute.String("player.id", p.id),
		attribute.Bool("goal.submitted", resp.Submitted),
		attribute.Int("goal.happiness", p.goal.Happiness),
		attribute.Int("goal.fame", p.goal.Fame),
		attribute.Int("goal.fortune", p.goal.Fortune),
		attribute.Int("goal.points", goal.Points(p.goal)),
	)
	return nil
}

// Render writes the player's state into its scorecard.
func (p *Player) Render() {
	sc := p.scorecard
	sc.Title.set(p.id, p.name)

	sc.Happiness.Goal.set(raw(p.goal.Happiness), hearts(p.goal.Happiness))
	sc.Fame.Goal.set(raw(p.goal.Fame), stars(p.goal.Fame))
	sc.Fortune.Goal.set(raw(p.goal.Fortune), dollars(p.printer, p.goal.Fortune))

	sc.Happiness.Current.set(raw(p.current.Happiness), hearts(p.current.Happiness))
	sc.Fame.Current.set(raw(p.current.Fame), stars(p.current.Fame))
	sc.Fortune.Current.set(raw(p.current.Fortune), dollars(p.printer, p.current.Fortune))

	sc.Salary.set(raw(p.salary), dollars(p.printer, p.salary))
	sc.Degree.set(p.degree, p.degree)

	for _, c := range stats.Careers() {
		level := raw(p.experience.Level(c))
		sc.Experience[c].set(level, level)
	}

	if p.HasMetGoal() {
		sc.MetGoal.set("true", "Goal met!")
	} else {
		sc.MetGoal.set("false", "")
	}
}

// Advance moves the token one step along the board and returns the new space.
func (p *Player) Advance(ctx context.Context) *board.Space {
	tracer := telemetry.Tracer("entity")
	_, span := tracer.Start(ctx, "player.advance")
	defer span.End()

	from := p.token.Space()
	to := p.board.Step(from)
	p.board.Move(p.token, to)

	span.SetAttributes(
		attribute.String("player.id", p.id),
		attribute.String("space.from", from.ID),
		attribute.String("space.to", to.ID),
		attribute.String("space.kind", to.Kind.String()),
		attribute.Bool("space.redirected", to != from.Next() && to != from.Branch()),
	)
	p.logger.Printf("%s passed space #%s.%s.", p.id, to.ID, to.Kind)

	return to
}

// HasMetGoal returns true if every current level has reached its goal.
func (p *Player) HasMetGoal() bool {
	return p.current.Covers(p.goal)
}
