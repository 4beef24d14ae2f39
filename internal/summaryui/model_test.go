package summaryui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/typereader/internal/model"
	"github.com/verte-zerg/typereader/internal/stats"
)

func sampleSummary() stats.Summary {
	return stats.Summarize([]model.ChunkStats{
		{Index: 0, Chars: 20, Words: 4, ElapsedMs: 6000, WPM: 40, Cursor: 20, Mistakes: 2,
			Misses: []model.CharMiss{{Char: "e", Count: 2}}},
		{Index: 1, Chars: 25, Words: 5, ElapsedMs: 5000, WPM: 60, Cursor: 25},
	})
}

func TestOverviewShowsCards(t *testing.T) {
	m := NewModel(sampleSummary())
	m.SetSize(100, 40)
	out := m.View()
	for _, want := range []string{"Overview", "Avg WPM", "50.0", "Best WPM", "Most missed: e"} {
		if !strings.Contains(out, want) {
			t.Fatalf("overview missing %q:\n%s", want, out)
		}
	}
}

func TestTabsCycle(t *testing.T) {
	m := NewModel(sampleSummary())
	m.SetSize(100, 40)
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.ActiveTab() != "Chunks" {
		t.Fatalf("expected Chunks tab, got %s", m.ActiveTab())
	}
	if out := m.View(); !strings.Contains(out, "Mistakes") {
		t.Fatalf("expected chunk table header:\n%s", out)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.ActiveTab() != "Misses" {
		t.Fatalf("expected Misses tab, got %s", m.ActiveTab())
	}
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.ActiveTab() != "Misses" {
		t.Fatalf("expected wrap to Misses, got %s", m.ActiveTab())
	}
}

func TestEmptyMisses(t *testing.T) {
	m := NewModel(stats.Summarize([]model.ChunkStats{{Chars: 5, Words: 1, ElapsedMs: 1000, WPM: 60, Cursor: 5}}))
	m.SetSize(80, 30)
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if out := m.View(); !strings.Contains(out, "No missed characters") {
		t.Fatalf("expected clean-run message:\n%s", out)
	}
}

func TestQuitKey(t *testing.T) {
	m := NewModel(sampleSummary())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestSmoothingWindowBounds(t *testing.T) {
	m := NewModel(sampleSummary())
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("-")})
	if m.window != 1 {
		t.Fatalf("expected window to stay at 1, got %d", m.window)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("=")})
	if m.window != 2 {
		t.Fatalf("expected window 2, got %d", m.window)
	}
}
