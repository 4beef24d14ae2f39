package tui

import (
	"strings"
	"testing"

	"github.com/verte-zerg/typereader/internal/session"
)

func statuses(s string) []session.Status {
	out := make([]session.Status, 0, len(s))
	for _, c := range s {
		switch c {
		case '+':
			out = append(out, session.StatusCorrect)
		case 'x':
			out = append(out, session.StatusIncorrect)
		default:
			out = append(out, session.StatusPending)
		}
	}
	return out
}

func TestBuildStyledRunesCursor(t *testing.T) {
	runes := buildStyledRunes([]rune("ab"), statuses("+."), 1)
	if len(runes) != 2 {
		t.Fatalf("expected 2 runes, got %d", len(runes))
	}
	if runes[0].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style for first rune")
	}
	if runes[1].s != currentWordStyle.Underline(true).Render("b") {
		t.Fatalf("expected underlined cursor on second rune")
	}
}

func TestBuildStyledRunesNoCursorWhenComplete(t *testing.T) {
	runes := buildStyledRunes([]rune("a"), statuses("+"), -1)
	if len(runes) != 1 {
		t.Fatalf("expected 1 rune, got %d", len(runes))
	}
	if runes[0].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style for completed rune")
	}
}

func TestBuildStyledRunesKeepsTargetOnMistype(t *testing.T) {
	runes := buildStyledRunes([]rune("ab"), statuses("+x"), -1)
	if runes[1].s != incorrectStyle.Render("b") {
		t.Fatalf("expected incorrect style to show the target rune")
	}
}

func TestBuildStyledRunesWordHighlighting(t *testing.T) {
	runes := buildStyledRunes([]rune("one two"), statuses("+......"), 1)
	if runes[0].s != correctStyle.Render("o") {
		t.Fatalf("expected correct style for typed rune")
	}
	if runes[2].s != currentWordStyle.Render("e") {
		t.Fatalf("expected current word style for untyped in current word")
	}
	if runes[4].s != pendingStyle.Render("t") {
		t.Fatalf("expected pending style for next word")
	}
	if runes[6].s != pendingStyle.Render("o") {
		t.Fatalf("expected pending style for next word")
	}
}

func TestBuildStyledRunesWrongSpaceDot(t *testing.T) {
	runes := buildStyledRunes([]rune("a b"), statuses("+x."), 2)
	if len(runes) != 3 {
		t.Fatalf("expected 3 runes, got %d", len(runes))
	}
	if runes[1].s != incorrectStyle.Render(string(wrongSpace)) {
		t.Fatalf("expected dot for wrong space")
	}
	if !runes[1].isSpace {
		t.Fatalf("expected wrong space to stay a break point")
	}
}

func TestWrapStyledRunesBreaksAtSpaces(t *testing.T) {
	runes := buildStyledRunes([]rune("one two three"), statuses("............."), -1)
	out := wrapStyledRunes(runes, 8)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}
	if !strings.Contains(lines[0], "t") || strings.Contains(lines[1], "w") {
		t.Fatalf("unexpected wrap: %q", out)
	}
}

func TestWrapStyledRunesLongWord(t *testing.T) {
	runes := buildStyledRunes([]rune("abcdef"), statuses("......"), -1)
	out := wrapStyledRunes(runes, 4)
	if got := strings.Count(out, "\n"); got != 1 {
		t.Fatalf("expected hard break inside long word, got %d breaks: %q", got, out)
	}
}

func TestWrapStyledRunesNoWidth(t *testing.T) {
	runes := buildStyledRunes([]rune("a b"), statuses("..."), -1)
	if out := wrapStyledRunes(runes, 0); strings.Contains(out, "\n") {
		t.Fatalf("expected single line, got %q", out)
	}
}
