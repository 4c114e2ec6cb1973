package goal

import (
	"strconv"

	"github.com/samdwyer/careers/internal/stats"
)

// Field identifies one of the numeric inputs on the goal form.
type Field int

const (
	FieldHappiness Field = iota
	FieldFame
	FieldFortune

	fieldCount
)

// maxDigits bounds the length of each numeric input.
const maxDigits = 9

// String returns the field label.
func (f Field) String() string {
	switch f {
	case FieldHappiness:
		return "Happiness"
	case FieldFame:
		return "Fame"
	case FieldFortune:
		return "Fortune"
	default:
		return "Unknown"
	}
}

// Form holds the state of a goal dialog independent of how it is drawn.
// Empty inputs count as zero.
type Form struct {
	inputs  [fieldCount]string
	focus   Field
	message string
}

// NewForm returns an empty form focused on happiness.
func NewForm() *Form {
	return &Form{}
}

// Reset clears every input and the inline message.
func (f *Form) Reset() {
	f.inputs = [fieldCount]string{}
	f.focus = FieldHappiness
	f.message = ""
}

// Focus returns the field receiving input.
func (f *Form) Focus() Field { return f.focus }

// FocusNext moves input focus to the following field, wrapping around.
func (f *Form) FocusNext() {
	f.focus = (f.focus + 1) % fieldCount
}

// FocusPrev moves input focus to the preceding field, wrapping around.
func (f *Form) FocusPrev() {
	f.focus = (f.focus + fieldCount - 1) % fieldCount
}

// Type appends a digit to the focused field. Non-digits are ignored.
// It returns true if the input changed.
func (f *Form) Type(r rune) bool {
	if r < '0' || r > '9' {
		return false
	}
	in := f.inputs[f.focus]
	if len(in) >= maxDigits {
		return false
	}
	if in == "0" {
		in = ""
	}
	f.inputs[f.focus] = in + string(r)
	return true
}

// Backspace removes the last digit of the focused field.
func (f *Form) Backspace() {
	in := f.inputs[f.focus]
	if len(in) > 0 {
		f.inputs[f.focus] = in[:len(in)-1]
	}
}

// Set replaces the value of a field.
func (f *Form) Set(field Field, value int) {
	if field < 0 || field >= fieldCount || value < 0 {
		return
	}
	f.inputs[field] = strconv.Itoa(value)
}

// Input returns the raw text of a field.
func (f *Form) Input(field Field) string {
	if field < 0 || field >= fieldCount {
		return ""
	}
	return f.inputs[field]
}

// Value returns the numeric value of a field.
func (f *Form) Value(field Field) int {
	n, err := strconv.Atoi(f.Input(field))
	if err != nil {
		return 0
	}
	return n
}

// Values returns the form contents as a triple.
func (f *Form) Values() stats.Triple {
	return stats.Triple{
		Happiness: f.Value(FieldHappiness),
		Fame:      f.Value(FieldFame),
		Fortune:   f.Value(FieldFortune),
	}
}

// Total returns the scoring points of the current inputs.
func (f *Form) Total() int {
	return Points(f.Values())
}

// Validity returns the message for the total output, or "" if the total is valid.
func (f *Form) Validity() string {
	if f.Total() != TargetPoints {
		return TotalMessage
	}
	return ""
}

// Message returns the inline message left by the last rejected submission.
func (f *Form) Message() string { return f.message }

// Submit accepts the form if it holds a valid goal.
// On failure the inline message is set and the form should stay open.
func (f *Form) Submit() (Response, error) {
	values := f.Values()
	if err := Validate(values); err != nil {
		f.message = err.Error()
		return Response{}, err
	}
	f.message = ""
	return Response{Goal: values, Submitted: true}, nil
}

// Dismiss closes the form without validation, keeping whatever it holds.
func (f *Form) Dismiss() Response {
	return Response{Goal: f.Values()}
}
