// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"
)

const sparkChars = " .:-=+*#%@"

// WordsPerMinute returns floor(chars / 5 / minutes), or 0 when no time has passed.
func WordsPerMinute(chars int, elapsed time.Duration) int {
	if elapsed <= 0 || chars <= 0 {
		return 0
	}
	minutes := elapsed.Minutes()
	if minutes <= 0 {
		return 0
	}
	return int(math.Floor(float64(chars) / 5.0 / minutes))
}

// Accuracy returns the accuracy percentage for cursor typed characters and
// mistakes mismatched keystrokes. It is 100 without mistakes and never negative.
func Accuracy(cursor, mistakes int) int {
	if mistakes == 0 {
		return 100
	}
	if cursor <= 0 {
		return 0
	}
	acc := int(math.Round(float64(cursor-mistakes) / float64(cursor) * 100))
	if acc < 0 {
		return 0
	}
	return acc
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// FormatElapsed renders milliseconds as m:ss.t.
func FormatElapsed(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	d := time.Duration(ms) * time.Millisecond
	minutes := int(d / time.Minute)
	seconds := float64(d%time.Minute) / float64(time.Second)
	return fmt.Sprintf("%d:%04.1f", minutes, seconds)
}

// RenderSummary prints totals, the per-chunk table and the most missed characters.
func RenderSummary(w io.Writer, s Summary) error {
	if len(s.Chunks) == 0 {
		_, err := fmt.Fprintln(w, "No chunks completed.")
		return err
	}
	lines := []string{
		"Summary",
		fmt.Sprintf("Chunks: %d", len(s.Chunks)),
		fmt.Sprintf("Words read: %d", s.TotalWords),
		fmt.Sprintf("Characters read: %d", s.TotalChars),
		fmt.Sprintf("Total time: %s", FormatElapsed(s.TotalElapsedMs)),
		fmt.Sprintf("Total mistakes: %d", s.TotalMistakes),
		fmt.Sprintf("Accuracy: %d%%", s.Accuracy),
		fmt.Sprintf("Avg WPM: %.1f", s.AvgWPM),
		fmt.Sprintf("Best WPM: %d", s.BestWPM),
	}
	if len(s.Chunks) > 1 {
		lines = append(lines, fmt.Sprintf("WPM trend: [%s]", Sparkline(s.WPMSeries())))
	}
	lines = append(lines, "")
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if err := RenderChunkTable(w, s.Chunks); err != nil {
		return err
	}
	return RenderMissTable(w, s.Misses, 10)
}

// RenderChunkTable prints per-chunk WPM, time and mistakes.
func RenderChunkTable(w io.Writer, chunks []ChunkRow) error {
	if _, err := fmt.Fprintln(w, "Per-Chunk"); err != nil {
		return err
	}
	headers := []string{"Chunk", "Words", "Chars", "Time", "WPM", "Mistakes", "Accuracy"}
	rows := make([][]string, 0, len(chunks))
	for _, c := range chunks {
		rows = append(rows, c.Cells())
	}
	rightAlign := map[int]bool{0: true, 1: true, 2: true, 3: true, 4: true, 5: true, 6: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderMissTable prints the top characters mistyped during the run.
func RenderMissTable(w io.Writer, misses []MissRow, top int) error {
	if len(misses) == 0 {
		_, err := fmt.Fprintln(w, "No missed characters.")
		return err
	}
	if top > 0 && len(misses) > top {
		misses = misses[:top]
	}
	if _, err := fmt.Fprintln(w, "Most Missed"); err != nil {
		return err
	}
	headers := []string{"Char", "Misses", "Share"}
	rows := make([][]string, 0, len(misses))
	for _, m := range misses {
		rows = append(rows, []string{
			CharLabel(m.Char),
			fmt.Sprintf("%d", m.Count),
			fmt.Sprintf("%.1f%%", m.Share*100),
		})
	}
	for _, line := range formatTable(headers, rows, map[int]bool{1: true, 2: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// CharLabel makes whitespace characters readable in tables.
func CharLabel(ch string) string {
	switch ch {
	case " ":
		return "<space>"
	case "\u00a0":
		return "<nbsp>"
	default:
		return ch
	}
}
