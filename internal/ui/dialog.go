package ui

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// ErrCancelled is returned when the player quits from a dialog.
var ErrCancelled = errors.New("cancelled")

const dialogWidth = 44

var (
	dialogStyle  = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	focusStyle   = dialogStyle.Reverse(true)
	invalidStyle = dialogStyle.Foreground(tcell.ColorRed).Bold(true)
	hintStyle    = dialogStyle.Foreground(tcell.ColorSilver)
)

// box is a modal panel centered on the screen.
type box struct {
	screen *Screen
	x, y   int
	width  int
	height int
}

// drawBox clears the screen and draws an empty panel with a title.
func drawBox(screen *Screen, title string, lines int) box {
	screen.Clear()
	w, h := screen.Size()
	b := box{
		screen: screen,
		width:  dialogWidth,
		height: lines + 2,
	}
	b.x = max((w-b.width)/2, 0)
	b.y = max((h-b.height)/2, 0)

	for y := b.y; y < b.y+b.height; y++ {
		for x := b.x; x < b.x+b.width; x++ {
			screen.SetContent(x, y, ' ', dialogStyle)
		}
	}
	b.line(0, title, dialogStyle.Bold(true))
	return b
}

// line writes text on the given content row, 0 being the title row.
func (b box) line(row int, text string, style tcell.Style) int {
	return b.screen.DrawText(b.x+2, b.y+row, text, style, b.width-4)
}

// at writes text at a column offset on a content row.
func (b box) at(row, col int, text string, style tcell.Style) int {
	return b.screen.DrawText(b.x+2+col, b.y+row, text, style, b.width-4-col)
}

// isCancel reports whether a key quits the game outright.
func isCancel(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyCtrlC
}

// isBackspace reports whether a key deletes the previous character.
func isBackspace(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyBackspace || ev.Key() == tcell.KeyBackspace2
}
