package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/careers/internal/board"
	"github.com/samdwyer/careers/internal/entity"
	"github.com/samdwyer/careers/internal/gamedata"
	"github.com/samdwyer/careers/internal/stats"
)

const (
	cellWidth     = 16 // Board cell width, tokens included
	scorecardW    = 26
	scorecardRows = 9
)

var (
	spaceStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	redirectStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkGray).Italic(true)
	tokenStyle    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	activeStyle   = tokenStyle.Reverse(true)
	labelStyle    = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	valueStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	metStyle      = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
)

// View is everything the renderer draws in one frame.
type View struct {
	Board   *board.Board
	Players []*entity.Player
	Active  int    // Index into Players of the player to move
	Status  string // Message shown on the bottom line
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	careers *gamedata.CareerRegistry
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, careers *gamedata.CareerRegistry) *Renderer {
	return &Renderer{screen: screen, careers: careers}
}

// Render draws the board, the scorecards and the status line.
//
// Each track space gets a row. A career space's path continues to the right
// of it on the same row.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	owners := make(map[*board.Token]*entity.Player, len(v.Players))
	for _, p := range v.Players {
		owners[p.Token()] = p
	}
	var active *entity.Player
	if v.Active >= 0 && v.Active < len(v.Players) {
		active = v.Players[v.Active]
	}

	track := v.Board.Track()
	for row, s := range track {
		r.drawSpace(0, row, s, owners, active)
		for col, ps := range s.Path() {
			r.drawSpace((col+1)*cellWidth, row, ps, owners, active)
		}
	}

	width, height := r.screen.Size()
	perRow := max(width/scorecardW, 1)
	top := len(track) + 1
	for i, p := range v.Players {
		x := (i % perRow) * scorecardW
		y := top + (i/perRow)*scorecardRows
		r.drawScorecard(x, y, p.Scorecard(), i == v.Active)
	}

	r.RenderMessage(v.Status, height-1)
	r.screen.Show()
}

// drawSpace draws a space's occupants followed by its name. The active
// player's space is underlined.
func (r *Renderer) drawSpace(x, y int, s *board.Space, owners map[*board.Token]*entity.Player, active *entity.Player) {
	for _, tok := range s.Tokens() {
		owner := owners[tok]
		if owner == nil {
			continue
		}
		style := tokenStyle
		if owner == active {
			style = activeStyle
		}
		r.screen.SetContent(x, y, rune('0'+owner.Index()), style)
		x++
	}

	style := r.spaceStyle(s)
	name := s.Name
	if s.Redirect() != nil {
		style = redirectStyle
		name += ">" + s.Redirect().Name
	}
	if active != nil && s.Holds(active.Token()) {
		style = style.Underline(true)
	}
	r.screen.DrawText(x+1, y, name, style, cellWidth-len(s.Tokens())-2)
}

// spaceStyle colors career spaces and their paths by career.
func (r *Renderer) spaceStyle(s *board.Space) tcell.Style {
	if def := r.careers.GetByID(s.Career); def != nil {
		style := tcell.StyleDefault.Foreground(def.TCellColor())
		if s.Kind == board.KindCareer {
			style = style.Bold(true)
		}
		return style
	}
	return spaceStyle
}

// drawScorecard draws a player's scorecard fields.
func (r *Renderer) drawScorecard(x, y int, sc *entity.Scorecard, active bool) {
	titleStyle := valueStyle.Bold(true)
	if active {
		titleStyle = titleStyle.Reverse(true)
	}
	r.screen.DrawText(x, y, sc.Title.Text, titleStyle, scorecardW-1)

	pair := func(row int, label string, p entity.Pair) {
		nx := r.screen.DrawText(x, y+row, label, labelStyle, 0)
		r.screen.DrawText(nx, y+row, p.Goal.Text+" / "+p.Current.Text, valueStyle, scorecardW-1-len(label))
	}
	single := func(row int, label string, f *entity.Field) {
		nx := r.screen.DrawText(x, y+row, label, labelStyle, 0)
		r.screen.DrawText(nx, y+row, f.Text, valueStyle, scorecardW-1-len(label))
	}

	pair(1, "Happy  ", sc.Happiness)
	pair(2, "Fame   ", sc.Fame)
	pair(3, "Fortune", sc.Fortune)
	single(4, "Salary ", sc.Salary)
	single(5, "Degree ", sc.Degree)

	var exp strings.Builder
	for _, c := range stats.Careers() {
		symbol := '?'
		if def := r.careers.Get(c); def != nil {
			symbol = def.SymbolRune()
		}
		fmt.Fprintf(&exp, "%c%s ", symbol, sc.Experience[c].Text)
	}
	r.screen.DrawText(x, y+6, exp.String(), labelStyle, scorecardW-1)

	if sc.MetGoal.Text != "" {
		r.screen.DrawText(x, y+7, sc.MetGoal.Text, metStyle, scorecardW-1)
	}
}

// RenderMessage displays a message at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
	}
}
