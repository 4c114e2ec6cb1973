// Package board provides the game board as a directed graph of spaces.
package board

// Kind distinguishes spaces that branch from those that do not.
type Kind int

const (
	// KindOrdinary spaces lead to their successor.
	KindOrdinary Kind = iota
	// KindCareer spaces lead onto the first space of their path.
	KindCareer
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindOrdinary:
		return "ordinary"
	case KindCareer:
		return "career"
	default:
		return "unknown"
	}
}

// Space is a node on the board.
type Space struct {
	ID     string
	Name   string
	Kind   Kind
	Career string // Career id, empty off career paths

	next     *Space   // Successor in the space's own sequence
	path     []*Space // Sub-sequence, career spaces only
	redirect *Space   // Jump target when a token lands here
	tokens   []*Token // Occupants in arrival order
}

// Next returns the space that follows this one in its sequence.
func (s *Space) Next() *Space { return s.next }

// Branch returns the first space of a career space's path, or nil.
func (s *Space) Branch() *Space {
	if len(s.path) == 0 {
		return nil
	}
	return s.path[0]
}

// Path returns the sub-sequence entered from a career space.
func (s *Space) Path() []*Space { return s.path }

// Redirect returns the space a token landing here jumps to, or nil.
func (s *Space) Redirect() *Space { return s.redirect }

// Tokens returns the tokens currently on this space.
func (s *Space) Tokens() []*Token {
	tokens := make([]*Token, len(s.tokens))
	copy(tokens, s.tokens)
	return tokens
}

// Holds returns true if the token is on this space.
func (s *Space) Holds(t *Token) bool {
	for _, occupant := range s.tokens {
		if occupant == t {
			return true
		}
	}
	return false
}

func (s *Space) attach(t *Token) {
	s.tokens = append(s.tokens, t)
}

func (s *Space) detach(t *Token) {
	for i, occupant := range s.tokens {
		if occupant == t {
			s.tokens = append(s.tokens[:i], s.tokens[i+1:]...)
			return
		}
	}
}

// Token marks a player's position. While on the board it is on exactly one space.
type Token struct {
	ID    string
	space *Space
}

// Space returns the space holding the token, or nil once removed.
func (t *Token) Space() *Space { return t.space }
