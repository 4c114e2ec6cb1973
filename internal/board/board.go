package board

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/careers/internal/gamedata"
	"github.com/samdwyer/careers/internal/stats"
	"github.com/samdwyer/careers/internal/telemetry"
)

var (
	// ErrEmptyTrack is returned when a board has no track spaces.
	ErrEmptyTrack = errors.New("board has no track")
	// ErrDuplicateSpace is returned when two spaces share an id.
	ErrDuplicateSpace = errors.New("duplicate space")
	// ErrUnknownSpace is returned when a reference names no space.
	ErrUnknownSpace = errors.New("unknown space")
	// ErrRedirectChain is returned when a redirect targets another redirect.
	ErrRedirectChain = errors.New("redirect target redirects")
	// ErrBadPath is returned for empty or nested career paths.
	ErrBadPath = errors.New("invalid career path")
	// ErrUnknownCareer is returned when a space names no known career.
	ErrUnknownCareer = errors.New("unknown career")
)

// Board holds every space and the tokens placed on them.
type Board struct {
	spaces map[string]*Space
	track  []*Space
	start  *Space
}

// Build creates a board from its definition.
//
// The track is a loop. A career space leads onto its path, and the last
// space of a path leads back to the track space after the career space.
func Build(ctx context.Context, def *gamedata.BoardDef) (*Board, error) {
	tracer := telemetry.Tracer("board")
	_, span := tracer.Start(ctx, "board.build")
	defer span.End()

	if len(def.Track) == 0 {
		return nil, ErrEmptyTrack
	}

	b := &Board{spaces: make(map[string]*Space)}

	// Create spaces
	for i := range def.Track {
		sd := &def.Track[i]
		s, err := b.add(sd)
		if err != nil {
			return nil, err
		}
		b.track = append(b.track, s)

		if !sd.IsCareer() {
			continue
		}
		if len(sd.Path) == 0 {
			return nil, fmt.Errorf("space %q: %w: empty", sd.ID, ErrBadPath)
		}
		s.Kind = KindCareer
		for j := range sd.Path {
			if sd.Path[j].IsCareer() {
				return nil, fmt.Errorf("space %q: %w: nested path", sd.Path[j].ID, ErrBadPath)
			}
			ps, err := b.add(&sd.Path[j])
			if err != nil {
				return nil, err
			}
			s.path = append(s.path, ps)
		}
	}

	// Link sequences
	careers := 0
	for i, s := range b.track {
		exit := b.track[(i+1)%len(b.track)]
		s.next = exit
		if s.Kind != KindCareer {
			continue
		}
		careers++
		for j, ps := range s.path {
			if j+1 < len(s.path) {
				ps.next = s.path[j+1]
			} else {
				ps.next = exit
			}
		}
	}

	// Resolve redirects
	for i := range def.Track {
		if err := b.linkRedirect(&def.Track[i]); err != nil {
			return nil, err
		}
		for j := range def.Track[i].Path {
			if err := b.linkRedirect(&def.Track[i].Path[j]); err != nil {
				return nil, err
			}
		}
	}
	for _, s := range b.spaces {
		if s.redirect != nil && s.redirect.redirect != nil {
			return nil, fmt.Errorf("space %q: %w: %q", s.ID, ErrRedirectChain, s.redirect.ID)
		}
	}

	start, ok := b.spaces[def.Start]
	if !ok {
		return nil, fmt.Errorf("start %q: %w", def.Start, ErrUnknownSpace)
	}
	b.start = start

	span.SetAttributes(
		attribute.Int("board.spaces", len(b.spaces)),
		attribute.Int("board.track_length", len(b.track)),
		attribute.Int("board.careers", careers),
		attribute.String("board.start", start.ID),
	)

	return b, nil
}

// Load builds the board from the embedded layout.
func Load(ctx context.Context) (*Board, error) {
	def, err := gamedata.LoadBoard()
	if err != nil {
		return nil, err
	}
	return Build(ctx, def)
}

// add registers a space from its definition.
func (b *Board) add(sd *gamedata.SpaceDef) (*Space, error) {
	if _, dup := b.spaces[sd.ID]; dup {
		return nil, fmt.Errorf("space %q: %w", sd.ID, ErrDuplicateSpace)
	}
	if sd.Career != "" {
		if _, ok := stats.ParseCareer(sd.Career); !ok {
			return nil, fmt.Errorf("space %q: %w: %q", sd.ID, ErrUnknownCareer, sd.Career)
		}
	}
	s := &Space{
		ID:     sd.ID,
		Name:   sd.Name,
		Kind:   KindOrdinary,
		Career: sd.Career,
	}
	b.spaces[sd.ID] = s
	return s, nil
}

// linkRedirect points a space at its href target.
func (b *Board) linkRedirect(sd *gamedata.SpaceDef) error {
	if sd.Href == "" {
		return nil
	}
	target, ok := b.spaces[sd.Href]
	if !ok {
		return fmt.Errorf("space %q: redirect to %q: %w", sd.ID, sd.Href, ErrUnknownSpace)
	}
	b.spaces[sd.ID].redirect = target
	return nil
}

// Start returns the space where new tokens are placed.
func (b *Board) Start() *Space { return b.start }

// Space returns the space with the given id, or nil if not found.
func (b *Board) Space(id string) *Space { return b.spaces[id] }

// Track returns the outer loop in traversal order.
func (b *Board) Track() []*Space { return b.track }

// Len returns the number of spaces on the board, paths included.
func (b *Board) Len() int { return len(b.spaces) }

// Step returns the space a token on from moves to in one step.
//
// A career space leads to the head of its path rather than its successor.
// If the space reached carries a redirect, the redirect target is returned
// instead. Redirects are followed once.
func (b *Board) Step(from *Space) *Space {
	next := from.next
	if from.Kind == KindCareer {
		next = from.Branch()
	}
	if next.redirect != nil {
		next = next.redirect
	}
	return next
}

// NewToken creates a token on the start space.
func (b *Board) NewToken(id string) *Token {
	t := &Token{ID: id, space: b.start}
	b.start.attach(t)
	return t
}

// Move detaches a token from its space and attaches it to another.
func (b *Board) Move(t *Token, to *Space) {
	if t.space != nil {
		t.space.detach(t)
	}
	to.attach(t)
	t.space = to
}

// Remove takes a token off the board.
func (b *Board) Remove(t *Token) {
	if t.space != nil {
		t.space.detach(t)
		t.space = nil
	}
}
