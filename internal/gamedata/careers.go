package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/careers/internal/stats"
)

// CareerDef defines a career loaded from JSON.
type CareerDef struct {
	ID     string `json:"id"`     // Identifier matching stats.Career (e.g., "sailing")
	Name   string `json:"name"`   // Display name (e.g., "Sailing")
	Symbol string `json:"symbol"` // Single character drawn on career spaces
	Color  string `json:"color"`  // Hex color code (e.g., "#00FF00")
}

// SymbolRune returns the symbol as a rune for rendering.
func (c *CareerDef) SymbolRune() rune {
	if len(c.Symbol) == 0 {
		return '?'
	}
	return rune(c.Symbol[0])
}

// TCellColor returns the color as a tcell.Color.
func (c *CareerDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(c.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// CareersFile represents the structure of careers.json.
type CareersFile struct {
	Careers []CareerDef `json:"careers"`
}

// CareerRegistry holds loaded career definitions indexed by stats.Career.
type CareerRegistry struct {
	byCareer map[stats.Career]*CareerDef
	all      []CareerDef
}

// NewCareerRegistry creates a registry from loaded career definitions.
// Every definition must name a known career, and every career must be defined.
func NewCareerRegistry(careers []CareerDef) (*CareerRegistry, error) {
	registry := &CareerRegistry{
		byCareer: make(map[stats.Career]*CareerDef, len(careers)),
		all:      careers,
	}
	for i := range careers {
		c, ok := stats.ParseCareer(careers[i].ID)
		if !ok {
			return nil, fmt.Errorf("unknown career %q", careers[i].ID)
		}
		if _, dup := registry.byCareer[c]; dup {
			return nil, fmt.Errorf("duplicate career %q", careers[i].ID)
		}
		registry.byCareer[c] = &careers[i]
	}
	for _, c := range stats.Careers() {
		if registry.byCareer[c] == nil {
			return nil, fmt.Errorf("missing career %q", c.ID())
		}
	}
	return registry, nil
}

// LoadCareerRegistry loads and creates a registry from the embedded careers.json.
func LoadCareerRegistry() (*CareerRegistry, error) {
	file, err := Load[CareersFile]("careers.json")
	if err != nil {
		return nil, err
	}
	return NewCareerRegistry(file.Careers)
}

// Get returns the definition for a career.
func (r *CareerRegistry) Get(c stats.Career) *CareerDef {
	return r.byCareer[c]
}

// GetByID returns the definition with the given id, or nil if not found.
func (r *CareerRegistry) GetByID(id string) *CareerDef {
	c, ok := stats.ParseCareer(id)
	if !ok {
		return nil
	}
	return r.byCareer[c]
}

// Count returns the number of careers in the registry.
func (r *CareerRegistry) Count() int {
	return len(r.all)
}
