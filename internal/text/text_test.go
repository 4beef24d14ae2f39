package text

import (
	"strings"
	"testing"
)

func TestChunkSingle(t *testing.T) {
	chunks := Chunk("the cat sat", 30)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != "the cat sat" {
		t.Fatalf("unexpected chunk: %q", chunks[0])
	}
	if len([]rune(chunks[0])) != 11 {
		t.Fatalf("expected 11 characters, got %d", len([]rune(chunks[0])))
	}
}

func TestChunkPreservesWordOrder(t *testing.T) {
	src := "one  two\tthree\nfour five six seven"
	for size := 1; size <= 8; size++ {
		chunks := Chunk(src, size)
		var words []string
		for i, c := range chunks {
			n := len(strings.Fields(c))
			if i < len(chunks)-1 && n != size {
				t.Fatalf("size %d: chunk %d has %d words", size, i, n)
			}
			if n == 0 || n > size {
				t.Fatalf("size %d: chunk %d has %d words", size, i, n)
			}
			words = append(words, strings.Fields(c)...)
		}
		if strings.Join(words, " ") != strings.Join(strings.Fields(src), " ") {
			t.Fatalf("size %d: words reordered: %v", size, words)
		}
	}
}

func TestChunkLastShorter(t *testing.T) {
	chunks := Chunk("a b c d e", 2)
	expected := []string{"a b", "c d", "e"}
	if len(chunks) != len(expected) {
		t.Fatalf("expected %d chunks, got %d", len(expected), len(chunks))
	}
	for i := range expected {
		if chunks[i] != expected[i] {
			t.Fatalf("chunk %d: expected %q, got %q", i, expected[i], chunks[i])
		}
	}
}

func TestChunkEmptyAndClamp(t *testing.T) {
	if chunks := Chunk("   \n ", 3); len(chunks) != 0 {
		t.Fatalf("expected no chunks, got %v", chunks)
	}
	if chunks := Chunk("a b", 0); len(chunks) != 2 {
		t.Fatalf("expected size clamped to 1, got %v", chunks)
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize("it’s “fine”\r\nok´")
	if got != `it's "fine" ok`+"`" {
		t.Fatalf("unexpected normalized text: %q", got)
	}
	if Chunk(Normalize("end.\nnext"), 5)[0] != "end. next" {
		t.Fatalf("expected line break to separate words")
	}
}

func TestIsPunctuation(t *testing.T) {
	for _, r := range ".,!?:;-()[]'\"`" {
		if !IsPunctuation(r) {
			t.Fatalf("expected %q to be punctuation", r)
		}
	}
	for _, r := range "aZ0 _" {
		if IsPunctuation(r) {
			t.Fatalf("expected %q not to be punctuation", r)
		}
	}
}
