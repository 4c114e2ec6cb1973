package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
)

// SetupDialog asks how many players will play.
type SetupDialog struct {
	screen     *Screen
	maxPlayers int
	input      string
	message    string
}

// NewSetupDialog creates a setup dialog accepting 1..maxPlayers players.
func NewSetupDialog(screen *Screen, maxPlayers int) *SetupDialog {
	return &SetupDialog{screen: screen, maxPlayers: maxPlayers}
}

// PromptCount shows the dialog and blocks until a valid count is entered.
// Escape or Ctrl-C returns ErrCancelled.
func (d *SetupDialog) PromptCount(ctx context.Context) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		d.draw()

		switch ev := d.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if count, done, err := d.handleKey(ev); done {
				return count, err
			}
		case *tcell.EventInterrupt:
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		case *tcell.EventResize:
			d.screen.Sync()
		}
	}
}

// handleKey applies one key press. done is true once the dialog closes.
func (d *SetupDialog) handleKey(ev *tcell.EventKey) (count int, done bool, err error) {
	switch {
	case isCancel(ev) || ev.Key() == tcell.KeyEscape:
		return 0, true, ErrCancelled
	case isBackspace(ev):
		if len(d.input) > 0 {
			d.input = d.input[:len(d.input)-1]
		}
	case ev.Key() == tcell.KeyEnter:
		n, _ := strconv.Atoi(d.input)
		if n < 1 || n > d.maxPlayers {
			d.message = fmt.Sprintf("Choose between 1 and %d players.", d.maxPlayers)
			return 0, false, nil
		}
		return n, true, nil
	case ev.Key() == tcell.KeyRune:
		if r := ev.Rune(); r >= '0' && r <= '9' && len(d.input) < 2 {
			d.input += string(r)
		}
	}
	return 0, false, nil
}

func (d *SetupDialog) draw() {
	b := drawBox(d.screen, "New Game", 5)
	x := b.line(2, "Number of players: ", dialogStyle)
	d.screen.DrawText(x, b.y+2, fmt.Sprintf("%-3s", d.input), focusStyle, 0)
	if d.message != "" {
		b.line(3, d.message, invalidStyle)
	}
	b.line(5, "Enter to start, Esc to quit", hintStyle)
	d.screen.Show()
}
