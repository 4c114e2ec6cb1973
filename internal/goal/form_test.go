package goal

import (
	"errors"
	"testing"

	"github.com/samdwyer/careers/internal/stats"
)

func typeString(f *Form, s string) {
	for _, r := range s {
		f.Type(r)
	}
}

func TestFormTotal(t *testing.T) {
	f := NewForm()

	if f.Total() != 0 {
		t.Errorf("empty Total() = %d, want 0", f.Total())
	}
	if f.Validity() != TotalMessage {
		t.Errorf("empty Validity() = %q, want %q", f.Validity(), TotalMessage)
	}

	typeString(f, "10")
	f.FocusNext()
	typeString(f, "20")
	f.FocusNext()
	typeString(f, "305000")

	if got := f.Total(); got != 60 {
		t.Errorf("Total() = %d, want 60", got)
	}
	if f.Validity() != "" {
		t.Errorf("Validity() = %q, want empty", f.Validity())
	}
}

func TestFormTypeIgnoresNonDigits(t *testing.T) {
	f := NewForm()

	if f.Type('x') {
		t.Error("Type('x') should be ignored")
	}
	typeString(f, "0")
	typeString(f, "07")
	if got := f.Input(FieldHappiness); got != "7" {
		t.Errorf("Input(Happiness) = %q, want \"7\"", got)
	}

	typeString(f, "1234567890123")
	if got := len(f.Input(FieldHappiness)); got != maxDigits {
		t.Errorf("input length = %d, want %d", got, maxDigits)
	}

	f.Backspace()
	if got := len(f.Input(FieldHappiness)); got != maxDigits-1 {
		t.Errorf("input length after Backspace = %d, want %d", got, maxDigits-1)
	}
}

func TestFormFocusWraps(t *testing.T) {
	f := NewForm()

	f.FocusPrev()
	if f.Focus() != FieldFortune {
		t.Errorf("FocusPrev() from first = %v, want Fortune", f.Focus())
	}
	f.FocusNext()
	if f.Focus() != FieldHappiness {
		t.Errorf("FocusNext() from last = %v, want Happiness", f.Focus())
	}
}

func TestFormSubmitRejectsWrongTotal(t *testing.T) {
	f := NewForm()
	f.Set(FieldHappiness, 10)
	f.Set(FieldFame, 10)

	_, err := f.Submit()
	if !errors.Is(err, ErrTotal) {
		t.Fatalf("Submit() = %v, want ErrTotal", err)
	}
	if f.Message() != TotalMessage {
		t.Errorf("Message() = %q, want %q", f.Message(), TotalMessage)
	}

	f.Set(FieldFortune, 400000)
	resp, err := f.Submit()
	if err != nil {
		t.Fatalf("Submit() after fix = %v", err)
	}
	want := stats.Triple{Happiness: 10, Fame: 10, Fortune: 400000}
	if !resp.Submitted || resp.Goal != want {
		t.Errorf("Submit() = %+v, want submitted %+v", resp, want)
	}
	if f.Message() != "" {
		t.Errorf("Message() after accepted submit = %q, want empty", f.Message())
	}
}

func TestFormDismissKeepsRawValues(t *testing.T) {
	f := NewForm()
	f.Set(FieldFame, 5)

	resp := f.Dismiss()
	if resp.Submitted {
		t.Error("Dismiss() should not report a submission")
	}
	want := stats.Triple{Fame: 5}
	if resp.Goal != want {
		t.Errorf("Dismiss().Goal = %+v, want %+v", resp.Goal, want)
	}
}

func TestFormReset(t *testing.T) {
	f := NewForm()
	f.Set(FieldHappiness, 1)
	f.FocusNext()
	f.Submit()

	f.Reset()

	if f.Values() != (stats.Triple{}) {
		t.Errorf("Values() after Reset = %+v, want zero", f.Values())
	}
	if f.Focus() != FieldHappiness {
		t.Errorf("Focus() after Reset = %v, want Happiness", f.Focus())
	}
	if f.Message() != "" {
		t.Errorf("Message() after Reset = %q, want empty", f.Message())
	}
}
