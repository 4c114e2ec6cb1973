package board

import (
	"context"
	"errors"
	"testing"

	"github.com/samdwyer/careers/internal/gamedata"
)

// testDef returns a small board:
//
//	a -> b(career: b1 -> b2) -> c(href e) -> d -> e -> a
func testDef() *gamedata.BoardDef {
	return &gamedata.BoardDef{
		Start: "a",
		Track: []gamedata.SpaceDef{
			{ID: "a", Name: "A"},
			{ID: "b", Name: "B", Career: "sailing", Path: []gamedata.SpaceDef{
				{ID: "b1", Name: "B1", Career: "sailing"},
				{ID: "b2", Name: "B2", Career: "sailing"},
			}},
			{ID: "c", Name: "C", Href: "e"},
			{ID: "d", Name: "D"},
			{ID: "e", Name: "E"},
		},
	}
}

func mustBuild(t *testing.T, def *gamedata.BoardDef) *Board {
	t.Helper()
	b, err := Build(context.Background(), def)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return b
}

func TestBuildLinks(t *testing.T) {
	b := mustBuild(t, testDef())

	if b.Start().ID != "a" {
		t.Errorf("Start() = %q, want \"a\"", b.Start().ID)
	}
	if b.Len() != 7 {
		t.Errorf("Len() = %d, want 7", b.Len())
	}
	if len(b.Track()) != 5 {
		t.Errorf("len(Track()) = %d, want 5", len(b.Track()))
	}

	tests := []struct {
		id       string
		next     string
		kind     Kind
		redirect string
	}{
		{"a", "b", KindOrdinary, ""},
		{"b", "c", KindCareer, ""},
		{"b1", "b2", KindOrdinary, ""},
		{"b2", "c", KindOrdinary, ""},
		{"c", "d", KindOrdinary, "e"},
		{"e", "a", KindOrdinary, ""},
	}

	for _, tt := range tests {
		s := b.Space(tt.id)
		if s == nil {
			t.Fatalf("Space(%q) = nil", tt.id)
		}
		if s.Next().ID != tt.next {
			t.Errorf("Space(%q).Next() = %q, want %q", tt.id, s.Next().ID, tt.next)
		}
		if s.Kind != tt.kind {
			t.Errorf("Space(%q).Kind = %v, want %v", tt.id, s.Kind, tt.kind)
		}
		var redirect string
		if s.Redirect() != nil {
			redirect = s.Redirect().ID
		}
		if redirect != tt.redirect {
			t.Errorf("Space(%q).Redirect() = %q, want %q", tt.id, redirect, tt.redirect)
		}
	}

	if head := b.Space("b").Branch(); head == nil || head.ID != "b1" {
		t.Errorf("Space(\"b\").Branch() = %v, want b1", head)
	}
	if b.Space("a").Branch() != nil {
		t.Error("ordinary space should have no branch")
	}
}

func TestStep(t *testing.T) {
	b := mustBuild(t, testDef())

	tests := []struct {
		name string
		from string
		want string
	}{
		{"ordinary to successor", "d", "e"},
		{"career enters path", "b", "b1"},
		{"path continues", "b1", "b2"},
		{"path exits to track, then redirect", "b2", "e"},
		{"ordinary onto career space", "a", "b"},
		{"track wraps", "e", "a"},
	}

	for _, tt := range tests {
		got := b.Step(b.Space(tt.from))
		if got.ID != tt.want {
			t.Errorf("%s: Step(%q) = %q, want %q", tt.name, tt.from, got.ID, tt.want)
		}
	}
}

func TestStepRedirectNotAdjacent(t *testing.T) {
	b := mustBuild(t, testDef())

	// "c" is the physical successor of "b2", but it redirects to "e"
	got := b.Step(b.Space("b2"))
	if got.ID == "c" || got.ID != "e" {
		t.Errorf("Step(\"b2\") = %q, want \"e\"", got.ID)
	}
}

func TestTokenMove(t *testing.T) {
	b := mustBuild(t, testDef())

	tok := b.NewToken("player1")
	other := b.NewToken("player2")

	if tok.Space() != b.Start() || !b.Start().Holds(tok) {
		t.Fatal("NewToken should place the token on the start space")
	}

	for i := 0; i < 12; i++ {
		b.Move(tok, b.Step(tok.Space()))

		holders := 0
		for _, id := range []string{"a", "b", "b1", "b2", "c", "d", "e"} {
			if b.Space(id).Holds(tok) {
				holders++
			}
		}
		if holders != 1 {
			t.Fatalf("after %d moves token is on %d spaces, want 1", i+1, holders)
		}
		if !tok.Space().Holds(tok) {
			t.Fatalf("after %d moves Space() does not hold the token", i+1)
		}
	}

	if !b.Start().Holds(other) {
		t.Error("moving one token should not disturb another")
	}
}

func TestTokensOrder(t *testing.T) {
	b := mustBuild(t, testDef())
	first := b.NewToken("player1")
	second := b.NewToken("player2")

	b.Move(first, b.Space("d"))
	b.Move(second, b.Space("d"))

	tokens := b.Space("d").Tokens()
	if len(tokens) != 2 || tokens[0] != first || tokens[1] != second {
		t.Errorf("Tokens() not in arrival order: %v", tokens)
	}
	if len(b.Start().Tokens()) != 0 {
		t.Errorf("start should be empty, has %d tokens", len(b.Start().Tokens()))
	}
}

func TestRemove(t *testing.T) {
	b := mustBuild(t, testDef())
	tok := b.NewToken("player1")

	b.Remove(tok)

	if tok.Space() != nil {
		t.Errorf("Space() after Remove = %v, want nil", tok.Space())
	}
	if b.Start().Holds(tok) {
		t.Error("start still holds a removed token")
	}

	b.Move(tok, b.Space("d"))
	if !b.Space("d").Holds(tok) {
		t.Error("a removed token can be placed again")
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*gamedata.BoardDef)
		want   error
	}{
		{"empty track", func(d *gamedata.BoardDef) { d.Track = nil }, ErrEmptyTrack},
		{"duplicate id", func(d *gamedata.BoardDef) { d.Track[3].ID = "a" }, ErrDuplicateSpace},
		{"duplicate path id", func(d *gamedata.BoardDef) { d.Track[1].Path[1].ID = "d" }, ErrDuplicateSpace},
		{"unknown start", func(d *gamedata.BoardDef) { d.Start = "zz" }, ErrUnknownSpace},
		{"unknown href", func(d *gamedata.BoardDef) { d.Track[2].Href = "zz" }, ErrUnknownSpace},
		{"redirect chain", func(d *gamedata.BoardDef) { d.Track[4].Href = "a" }, ErrRedirectChain},
		{"self redirect", func(d *gamedata.BoardDef) { d.Track[3].Href = "d" }, ErrRedirectChain},
		{"empty path", func(d *gamedata.BoardDef) { d.Track[1].Path = []gamedata.SpaceDef{} }, ErrBadPath},
		{"nested path", func(d *gamedata.BoardDef) {
			d.Track[1].Path[0].Path = []gamedata.SpaceDef{{ID: "x"}}
		}, ErrBadPath},
		{"unknown career", func(d *gamedata.BoardDef) { d.Track[1].Career = "pirate" }, ErrUnknownCareer},
	}

	for _, tt := range tests {
		def := testDef()
		tt.mutate(def)
		_, err := Build(context.Background(), def)
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: Build() = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestLoadEmbeddedBoard(t *testing.T) {
	b, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// A full lap from the start returns to the start without getting stuck
	tok := b.NewToken("player1")
	seen := map[string]bool{}
	for i := 0; i < b.Len()*2; i++ {
		b.Move(tok, b.Step(tok.Space()))
		seen[tok.Space().ID] = true
	}
	if !seen[b.Start().ID] {
		t.Error("token never returned to the start space")
	}

	for _, s := range b.Track() {
		if s.Kind == KindCareer && s.Branch() == nil {
			t.Errorf("career space %q has no branch", s.ID)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindOrdinary, "ordinary"},
		{KindCareer, "career"},
		{Kind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
