// Package stats provides the resource levels tracked for each player.
package stats

// Triple holds a level for each of the three scored resources.
// It is used both for a player's goal and for their current standing.
type Triple struct {
	Happiness int `validate:"min=0"`
	Fame      int `validate:"min=0"`
	Fortune   int `validate:"min=0"` // In dollars, not points
}

// Covers returns true if every level in t is at least the matching level in target.
func (t Triple) Covers(target Triple) bool {
	return t.Happiness >= target.Happiness &&
		t.Fame >= target.Fame &&
		t.Fortune >= target.Fortune
}

const (
	// StartingFortune is the stake every player begins with.
	StartingFortune = 10000
	// StartingSalary is every player's salary at creation.
	StartingSalary = 10000
	// NoDegree is the degree a player starts without.
	NoDegree = "None"
)

// Starting returns the current levels a new player begins with.
func Starting() Triple {
	return Triple{Fortune: StartingFortune}
}
