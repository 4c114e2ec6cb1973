package gamedata

// SpaceDef defines one board space loaded from JSON.
//
// A space with a Path is a career space: entering it leads onto the path
// instead of along the track. Href names a space the token jumps to when it
// lands here.
type SpaceDef struct {
	ID     string     `json:"id"`               // Unique identifier (e.g., "payday")
	Name   string     `json:"name"`             // Display name (e.g., "Payday")
	Career string     `json:"career,omitempty"` // Career id for career spaces and their paths
	Href   string     `json:"href,omitempty"`   // Redirect target space id
	Path   []SpaceDef `json:"path,omitempty"`   // Sub-sequence entered from a career space
}

// IsCareer returns true if the space branches into a path.
func (s *SpaceDef) IsCareer() bool {
	return s.Path != nil
}

// BoardDef represents the structure of board.json.
type BoardDef struct {
	Start string     `json:"start"` // Space id where tokens are placed at creation
	Track []SpaceDef `json:"track"` // Outer loop in traversal order
}

// LoadBoard loads the board layout from the embedded board.json file.
func LoadBoard() (*BoardDef, error) {
	def, err := Load[BoardDef]("board.json")
	if err != nil {
		return nil, err
	}
	return &def, nil
}
