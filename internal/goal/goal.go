// Package goal models the goal declaration each player makes before play.
//
// A goal is a stats.Triple whose scoring points must total TargetPoints.
// Happiness and fame count one point per level; fortune counts one point per
// FortunePerPoint dollars, rounded down.
package goal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/samdwyer/careers/internal/stats"
)

const (
	// TargetPoints is the number of scoring points every goal must total.
	TargetPoints = 60
	// FortunePerPoint is the number of dollars that make one scoring point.
	FortunePerPoint = 10000
	// TotalMessage is shown to the player when a goal does not total TargetPoints.
	TotalMessage = "The total points must add up to 60."
)

// ErrTotal is returned when a goal does not total TargetPoints.
var ErrTotal = errors.New(TotalMessage)

var validate = validator.New()

// Points returns the scoring points a triple is worth.
func Points(t stats.Triple) int {
	return t.Happiness + t.Fame + t.Fortune/FortunePerPoint
}

// Validate checks that a triple is an acceptable goal.
func Validate(t stats.Triple) error {
	if err := validate.Struct(t); err != nil {
		return formatValidationError(err)
	}
	if Points(t) != TargetPoints {
		return ErrTotal
	}
	return nil
}

// formatValidationError converts validator errors into readable messages.
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}
	messages := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		messages = append(messages, fmt.Sprintf("%s must not be negative (got %v)",
			strings.ToLower(e.Field()), e.Value()))
	}
	return fmt.Errorf("invalid goal: %s", strings.Join(messages, "; "))
}

// Request asks for one player's goal.
type Request struct {
	PlayerName string
}

// Response carries the goal a player declared.
// Submitted is false when the player dismissed the dialog instead of
// submitting it; Goal then holds whatever the form fields held.
type Response struct {
	Goal      stats.Triple
	Submitted bool
}
