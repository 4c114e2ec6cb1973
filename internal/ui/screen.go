// Package ui provides terminal rendering and modal dialogs using tcell.
package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Screen wraps tcell.Screen with a simplified interface.
type Screen struct {
	screen tcell.Screen
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewScreenFrom(s)
}

// NewScreenFrom initializes an existing tcell screen, such as a simulation screen.
func NewScreenFrom(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent waits for and returns the next terminal event.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// PostEvent queues an event for PollEvent, such as an interrupt that wakes
// a blocked event loop.
func (s *Screen) PostEvent(ev tcell.Event) error {
	return s.screen.PostEvent(ev)
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent sets a single cell's content at the given position.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// DrawText writes text starting at the given position, clipped to maxWidth
// cells when maxWidth is positive. Wide characters take two cells. It returns
// the x after the last cell drawn.
func (s *Screen) DrawText(x, y int, text string, style tcell.Style, maxWidth int) int {
	drawn := 0
	state := -1
	for text != "" {
		var cluster string
		var width int
		cluster, text, width, state = uniseg.FirstGraphemeClusterInString(text, state)
		if width < 1 {
			width = 1
		}
		if maxWidth > 0 && drawn+width > maxWidth {
			break
		}
		runes := []rune(cluster)
		s.screen.SetContent(x, y, runes[0], runes[1:], style)
		x += width
		drawn += width
	}
	return x
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Sync forces a complete redraw of the screen.
func (s *Screen) Sync() {
	s.screen.Sync()
}
