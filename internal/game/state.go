// Package game provides the main game loop and session management.
package game

// State represents the current game state.
type State int

const (
	// StateSetup is waiting for the player count.
	StateSetup State = iota
	// StateGoals is collecting each player's goal in turn.
	StateGoals
	// StatePlay is the main loop where tokens move around the board.
	StatePlay
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateSetup:
		return "setup"
	case StateGoals:
		return "goals"
	case StatePlay:
		return "play"
	default:
		return "unknown"
	}
}
