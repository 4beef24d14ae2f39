package stats

import (
	"sort"

	"github.com/verte-zerg/typereader/internal/model"
)

// MissRow is a character with its merged miss count across chunks.
type MissRow struct {
	Char  string
	Count int
	Share float64
}

// MergeMisses sums per-chunk misses by character, most missed first.
func MergeMisses(chunks []model.ChunkStats) []MissRow {
	counts := map[string]int{}
	total := 0
	for _, c := range chunks {
		for _, m := range c.Misses {
			counts[m.Char] += m.Count
			total += m.Count
		}
	}
	if total == 0 {
		return nil
	}
	rows := make([]MissRow, 0, len(counts))
	for ch, n := range counts {
		rows = append(rows, MissRow{
			Char:  ch,
			Count: n,
			Share: float64(n) / float64(total),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count == rows[j].Count {
			return rows[i].Char < rows[j].Char
		}
		return rows[i].Count > rows[j].Count
	})
	return rows
}
