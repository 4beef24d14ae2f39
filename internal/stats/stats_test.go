package stats

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/typereader/internal/model"
)

func TestWordsPerMinute(t *testing.T) {
	if got := WordsPerMinute(11, 0); got != 0 {
		t.Fatalf("expected 0 for zero elapsed, got %d", got)
	}
	if got := WordsPerMinute(50, time.Minute); got != 10 {
		t.Fatalf("expected 10, got %d", got)
	}
	if got := WordsPerMinute(54, time.Minute); got != 10 {
		t.Fatalf("expected floored 10, got %d", got)
	}
}

func TestAccuracy(t *testing.T) {
	cases := []struct {
		cursor, mistakes, want int
	}{
		{0, 0, 100},
		{10, 0, 100},
		{0, 3, 0},
		{10, 1, 90},
		{3, 1, 67},
		{2, 5, 0},
	}
	for _, c := range cases {
		if got := Accuracy(c.cursor, c.mistakes); got != c.want {
			t.Fatalf("Accuracy(%d, %d) = %d, want %d", c.cursor, c.mistakes, got, c.want)
		}
	}
}

func TestFormatElapsed(t *testing.T) {
	if got := FormatElapsed(65300); got != "1:05.3" {
		t.Fatalf("unexpected elapsed format: %q", got)
	}
}

func TestSummarize(t *testing.T) {
	chunks := []model.ChunkStats{
		{Index: 0, Chars: 20, Words: 4, ElapsedMs: 6000, Mistakes: 2, WPM: 40, Cursor: 20,
			Misses: []model.CharMiss{{Char: "e", Count: 2}}},
		{Index: 1, Chars: 10, Words: 2, ElapsedMs: 4000, Mistakes: 0, WPM: 30, Cursor: 10},
	}
	s := Summarize(chunks)
	if s.TotalMistakes != 2 || s.TotalChars != 30 || s.TotalWords != 6 || s.TotalElapsedMs != 10000 {
		t.Fatalf("unexpected totals: %+v", s)
	}
	if s.AvgWPM != 35 || s.BestWPM != 40 {
		t.Fatalf("unexpected wpm: avg=%f best=%d", s.AvgWPM, s.BestWPM)
	}
	if s.Accuracy != 93 {
		t.Fatalf("expected 93%% accuracy, got %d", s.Accuracy)
	}
	if s.Chunks[0].Accuracy != 90 || s.Chunks[1].Accuracy != 100 {
		t.Fatalf("unexpected per-chunk accuracy: %+v", s.Chunks)
	}
	if len(s.Misses) != 1 || s.Misses[0].Char != "e" {
		t.Fatalf("unexpected misses: %+v", s.Misses)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Accuracy != 100 || len(s.Chunks) != 0 {
		t.Fatalf("unexpected empty summary: %+v", s)
	}
	var buf bytes.Buffer
	if err := RenderSummary(&buf, s); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "No chunks completed.") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestRenderSummary(t *testing.T) {
	s := Summarize([]model.ChunkStats{
		{Index: 0, Chars: 11, Words: 3, ElapsedMs: 5000, Mistakes: 1, WPM: 26, Cursor: 11,
			Misses: []model.CharMiss{{Char: " ", Count: 1}}},
		{Index: 1, Chars: 5, Words: 1, ElapsedMs: 2000, WPM: 30, Cursor: 5},
	})
	var buf bytes.Buffer
	if err := RenderSummary(&buf, s); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, needle := range []string{
		"Chunks: 2",
		"Words read: 4",
		"Characters read: 16",
		"Total mistakes: 1",
		"Total time: 0:07.0",
		"Best WPM: 30",
		"WPM trend: [",
		"Per-Chunk",
		"Most Missed",
		"<space>",
	} {
		if !strings.Contains(out, needle) {
			t.Fatalf("summary missing %q:\n%s", needle, out)
		}
	}
}

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{2, 4, 6}, 2)
	want := []float64{2, 3, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: want %f, got %f", i, want[i], got[i])
		}
	}
}
