// Package session implements the per-chunk typing state machine.
package session

import (
	"sort"
	"time"
	"unicode"

	"github.com/verte-zerg/typereader/internal/model"
	"github.com/verte-zerg/typereader/internal/stats"
	"github.com/verte-zerg/typereader/internal/text"
)

// Phase is the lifecycle state of a session.
type Phase int

const (
	// PhaseIdle means no keystroke has been accepted yet.
	PhaseIdle Phase = iota
	// PhaseActive means the timer is running.
	PhaseActive
	// PhaseComplete is terminal; stats are final.
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Status is the render state of a single character.
type Status int

const (
	StatusPending Status = iota
	StatusCorrect
	StatusIncorrect
)

// Result describes the effect of one keystroke.
type Result struct {
	Accepted  bool
	Matched   bool
	Advanced  int
	Completed bool
}

// Live is the display-only estimate refreshed by the ticker.
type Live struct {
	Elapsed time.Duration
	WPM     int
}

// Session tracks typing progress through one chunk.
type Session struct {
	opts   model.Options
	target []rune
	status []Status

	phase     Phase
	cursor    int
	mistakes  int
	startedAt time.Time
	misses    map[rune]int

	stats model.ChunkStats
}

// New creates a session for chunk. An empty chunk is complete immediately.
func New(chunk string, opts model.Options) *Session {
	target := []rune(chunk)
	s := &Session{
		opts:   opts,
		target: target,
		status: make([]Status, len(target)),
		misses: map[rune]int{},
	}
	if len(target) == 0 {
		s.phase = PhaseComplete
	}
	return s
}

// Type feeds one typed rune into the session.
func (s *Session) Type(r rune, now time.Time) Result {
	if s.phase == PhaseComplete || s.cursor >= len(s.target) {
		return Result{}
	}
	if s.phase == PhaseIdle {
		s.phase = PhaseActive
		s.startedAt = now
	}

	res := Result{Accepted: true}
	expected := s.target[s.cursor]
	if s.matches(expected, r) {
		res.Matched = true
		s.status[s.cursor] = StatusCorrect
		s.cursor++
		res.Advanced++
		if !s.opts.PunctuationRequired && s.cursor < len(s.target) && text.IsPunctuation(s.target[s.cursor]) {
			s.status[s.cursor] = StatusCorrect
			s.cursor++
			res.Advanced++
		}
	} else {
		s.mistakes++
		s.misses[expected]++
		s.status[s.cursor] = StatusIncorrect
		if s.opts.MistakesAllowed {
			s.cursor++
			res.Advanced++
		}
	}

	if s.cursor >= len(s.target) {
		s.finish(now)
		res.Completed = true
	}
	return res
}

func (s *Session) matches(expected, typed rune) bool {
	if typed == expected {
		return true
	}
	if typed == ' ' && (expected == ' ' || expected == '\u00a0') {
		return true
	}
	if !s.opts.CaseSensitive && unicode.ToLower(typed) == unicode.ToLower(expected) {
		return true
	}
	return false
}

func (s *Session) finish(now time.Time) {
	s.phase = PhaseComplete
	elapsed := now.Sub(s.startedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	s.stats = model.ChunkStats{
		Chars:     len(s.target),
		Words:     text.WordCount(string(s.target)),
		StartedAt: s.startedAt,
		ElapsedMs: elapsed.Milliseconds(),
		Mistakes:  s.mistakes,
		WPM:       stats.WordsPerMinute(len(s.target), elapsed),
		Cursor:    s.cursor,
		Misses:    s.missList(),
	}
}

func (s *Session) missList() []model.CharMiss {
	if len(s.misses) == 0 {
		return nil
	}
	out := make([]model.CharMiss, 0, len(s.misses))
	for r, n := range s.misses {
		out = append(out, model.CharMiss{Char: string(r), Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Char < out[j].Char
		}
		return out[i].Count > out[j].Count
	})
	return out
}

// Live returns the running elapsed time and WPM estimate.
func (s *Session) Live(now time.Time) Live {
	switch s.phase {
	case PhaseActive:
		elapsed := now.Sub(s.startedAt)
		if elapsed < 0 {
			elapsed = 0
		}
		return Live{Elapsed: elapsed, WPM: stats.WordsPerMinute(s.cursor, elapsed)}
	case PhaseComplete:
		return Live{
			Elapsed: time.Duration(s.stats.ElapsedMs) * time.Millisecond,
			WPM:     s.stats.WPM,
		}
	default:
		return Live{}
	}
}

// Stats returns the finalized chunk stats once the session is complete.
func (s *Session) Stats() (model.ChunkStats, bool) {
	if s.phase != PhaseComplete {
		return model.ChunkStats{}, false
	}
	return s.stats, true
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Cursor returns the index of the next character to type.
func (s *Session) Cursor() int { return s.cursor }

// Len returns the chunk length in runes.
func (s *Session) Len() int { return len(s.target) }

// Mistakes returns the number of mismatched keystrokes so far.
func (s *Session) Mistakes() int { return s.mistakes }

// Accuracy returns the accuracy percentage for the keystrokes so far.
func (s *Session) Accuracy() int { return stats.Accuracy(s.cursor, s.mistakes) }

// Target returns the chunk runes. The slice must not be modified.
func (s *Session) Target() []rune { return s.target }

// Statuses returns a copy of the per-character status.
func (s *Session) Statuses() []Status {
	out := make([]Status, len(s.status))
	copy(out, s.status)
	return out
}
