package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/typereader/internal/model"
)

// ChunkRow is a completed chunk with its derived accuracy.
type ChunkRow struct {
	model.ChunkStats
	Accuracy int
}

// Cells formats the row for the per-chunk table.
func (c ChunkRow) Cells() []string {
	return []string{
		fmt.Sprintf("%d", c.Index+1),
		fmt.Sprintf("%d", c.Words),
		fmt.Sprintf("%d", c.Chars),
		FormatElapsed(c.ElapsedMs),
		fmt.Sprintf("%d", c.WPM),
		fmt.Sprintf("%d", c.Mistakes),
		fmt.Sprintf("%d%%", c.Accuracy),
	}
}

// Summary aggregates the stats of every completed chunk in a run.
type Summary struct {
	Chunks         []ChunkRow
	TotalMistakes  int
	TotalChars     int
	TotalWords     int
	TotalElapsedMs int64
	AvgWPM         float64
	BestWPM        int
	Accuracy       int
	Misses         []MissRow
}

// Summarize aggregates per-chunk stats in order.
func Summarize(chunks []model.ChunkStats) Summary {
	s := Summary{Accuracy: 100}
	if len(chunks) == 0 {
		return s
	}
	s.Chunks = make([]ChunkRow, 0, len(chunks))
	var wpmSum int
	var cursorSum int
	for _, c := range chunks {
		s.Chunks = append(s.Chunks, ChunkRow{
			ChunkStats: c,
			Accuracy:   Accuracy(c.Cursor, c.Mistakes),
		})
		s.TotalMistakes += c.Mistakes
		s.TotalChars += c.Chars
		s.TotalWords += c.Words
		s.TotalElapsedMs += c.ElapsedMs
		cursorSum += c.Cursor
		wpmSum += c.WPM
		if c.WPM > s.BestWPM {
			s.BestWPM = c.WPM
		}
	}
	s.AvgWPM = float64(wpmSum) / float64(len(chunks))
	s.Accuracy = Accuracy(cursorSum, s.TotalMistakes)
	s.Misses = MergeMisses(chunks)
	return s
}

// WPMSeries returns the per-chunk WPM values.
func (s Summary) WPMSeries() []float64 {
	out := make([]float64, len(s.Chunks))
	for i, c := range s.Chunks {
		out[i] = float64(c.WPM)
	}
	return out
}

// AccuracySeries returns the per-chunk accuracy percentages.
func (s Summary) AccuracySeries() []float64 {
	out := make([]float64, len(s.Chunks))
	for i, c := range s.Chunks {
		out[i] = float64(c.Accuracy)
	}
	return out
}

// RenderCurvesWithSize plots per-chunk WPM and accuracy, smoothed over window chunks.
func RenderCurvesWithSize(w io.Writer, s Summary, window, totalWidth, height int, useColor bool) error {
	if len(s.Chunks) < 2 {
		return nil
	}
	width := 0
	if totalWidth > 0 {
		width = PlotWidthFor(totalWidth)
	}
	return PlotSeriesWithColor(w, "Per-Chunk Curves", []Series{
		{Name: "WPM", Values: MovingAverage(s.WPMSeries(), window)},
		{Name: "Accuracy", Values: MovingAverage(s.AccuracySeries(), window)},
	}, width, height, useColor)
}
