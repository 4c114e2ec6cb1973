package ui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/careers/internal/goal"
)

// GoalDialog asks a player for their goal. It implements entity.GoalPrompter.
type GoalDialog struct {
	screen *Screen
	form   *goal.Form
	title  string
}

// NewGoalDialog creates a goal dialog drawn on the given screen.
func NewGoalDialog(screen *Screen) *GoalDialog {
	return &GoalDialog{screen: screen, form: goal.NewForm()}
}

// PromptGoal resets the form and blocks until it is submitted or dismissed.
//
// Enter submits, and is refused until the total is 60 points. Escape
// dismisses the dialog and returns whatever the fields hold. Ctrl-C returns
// ErrCancelled.
func (d *GoalDialog) PromptGoal(ctx context.Context, req goal.Request) (goal.Response, error) {
	d.form.Reset()
	d.title = req.PlayerName

	for {
		if err := ctx.Err(); err != nil {
			return goal.Response{}, err
		}
		d.draw()

		switch ev := d.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if resp, done, err := d.handleKey(ev); done {
				return resp, err
			}
		case *tcell.EventInterrupt:
			if err := ctx.Err(); err != nil {
				return goal.Response{}, err
			}
		case *tcell.EventResize:
			d.screen.Sync()
		}
	}
}

// handleKey applies one key press. done is true once the dialog closes.
func (d *GoalDialog) handleKey(ev *tcell.EventKey) (resp goal.Response, done bool, err error) {
	switch {
	case isCancel(ev):
		return goal.Response{}, true, ErrCancelled
	case ev.Key() == tcell.KeyEscape:
		return d.form.Dismiss(), true, nil
	case ev.Key() == tcell.KeyEnter:
		resp, err := d.form.Submit()
		if err != nil {
			return goal.Response{}, false, nil
		}
		return resp, true, nil
	case ev.Key() == tcell.KeyTab || ev.Key() == tcell.KeyDown:
		d.form.FocusNext()
	case ev.Key() == tcell.KeyBacktab || ev.Key() == tcell.KeyUp:
		d.form.FocusPrev()
	case isBackspace(ev):
		d.form.Backspace()
	case ev.Key() == tcell.KeyRune:
		d.form.Type(ev.Rune())
	}
	return goal.Response{}, false, nil
}

var goalFields = []struct {
	field goal.Field
	unit  string
}{
	{goal.FieldHappiness, "♥s"},
	{goal.FieldFame, "★s"},
	{goal.FieldFortune, "$"},
}

func (d *GoalDialog) draw() {
	b := drawBox(d.screen, d.title+": set your goals", 9)

	for i, f := range goalFields {
		row := 2 + i
		b.at(row, 0, f.field.String(), dialogStyle)
		style := dialogStyle.Underline(true)
		if d.form.Focus() == f.field {
			style = focusStyle
		}
		x := b.at(row, 11, fmt.Sprintf("%-10s", d.form.Input(f.field)), style)
		d.screen.DrawText(x+1, b.y+row, f.unit, hintStyle, 0)
	}

	totalStyle := dialogStyle.Bold(true)
	if d.form.Validity() != "" {
		totalStyle = invalidStyle
	}
	b.at(6, 0, "Total", dialogStyle)
	b.at(6, 11, fmt.Sprintf("%d / %d points", d.form.Total(), goal.TargetPoints), totalStyle)
	if msg := d.form.Message(); msg != "" {
		b.line(7, msg, invalidStyle)
	}
	b.line(9, fmt.Sprintf("$%d = 1 point. Tab moves, Enter submits", goal.FortunePerPoint), hintStyle)
	d.screen.Show()
}
