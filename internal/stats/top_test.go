package stats

import (
	"testing"

	"github.com/verte-zerg/typereader/internal/model"
)

func TestTopMisses(t *testing.T) {
	chunks := []model.ChunkStats{
		{Misses: []model.CharMiss{{Char: "b", Count: 3}, {Char: " ", Count: 1}}},
		{Misses: []model.CharMiss{{Char: " ", Count: 3}, {Char: "c", Count: 1}}},
	}
	rows := MergeMisses(chunks)
	top := TopMisses(rows, 2)
	if len(top) != 2 {
		t.Fatalf("expected 2 chars, got %d", len(top))
	}
	if top[0] != "<space>" || top[1] != "b" {
		t.Fatalf("unexpected order: %v", top)
	}
	if rows[0].Share != 0.5 {
		t.Fatalf("expected share 0.5, got %f", rows[0].Share)
	}
}

func TestMergeMissesEmpty(t *testing.T) {
	if rows := MergeMisses([]model.ChunkStats{{}}); rows != nil {
		t.Fatalf("expected no rows, got %v", rows)
	}
}
