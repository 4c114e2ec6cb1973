// Package entity provides the players and the widgets that display them.
package entity

import "github.com/samdwyer/careers/internal/stats"

// Field is a single display slot holding a raw value and its display text.
type Field struct {
	Value string
	Text  string
}

// set stores a value and its display text.
func (f *Field) set(value, text string) {
	f.Value = value
	f.Text = text
}

// Pair shows a goal next to the current level.
type Pair struct {
	Goal    *Field
	Current *Field
}

func newPair() Pair {
	return Pair{Goal: &Field{}, Current: &Field{}}
}

// Scorecard is a player's display widget.
// Every field handle is allocated once, in NewScorecard, and never replaced.
type Scorecard struct {
	Title      *Field
	Happiness  Pair
	Fame       Pair
	Fortune    Pair
	Salary     *Field
	Degree     *Field
	Experience [stats.NumCareers]*Field // In stats.Careers() order
	MetGoal    *Field
}

// NewScorecard allocates a blank scorecard.
func NewScorecard() *Scorecard {
	sc := &Scorecard{
		Title:     &Field{},
		Happiness: newPair(),
		Fame:      newPair(),
		Fortune:   newPair(),
		Salary:    &Field{},
		Degree:    &Field{},
		MetGoal:   &Field{},
	}
	for i := range sc.Experience {
		sc.Experience[i] = &Field{}
	}
	return sc
}
