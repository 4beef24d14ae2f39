// Package model defines shared data structures.
package model

import "time"

// DefaultChunkSize is the number of words per chunk when none is configured.
const DefaultChunkSize = 30

// Options defines practice settings. Immutable for the duration of a run.
type Options struct {
	ChunkSize           int
	CaseSensitive       bool
	PunctuationRequired bool
	MistakesAllowed     bool
	ShowStats           bool
}

// DefaultOptions returns the settings used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		ChunkSize:           DefaultChunkSize,
		CaseSensitive:       true,
		PunctuationRequired: true,
	}
}

// ChunkStats captures a completed chunk.
type ChunkStats struct {
	Index     int
	Chars     int
	Words     int
	StartedAt time.Time
	ElapsedMs int64
	Mistakes  int
	WPM       int
	Cursor    int
	Misses    []CharMiss
}

// CharMiss counts mistakes made while a character was expected.
type CharMiss struct {
	Char  string
	Count int
}
