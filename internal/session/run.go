package session

import (
	"github.com/verte-zerg/typereader/internal/model"
	"github.com/verte-zerg/typereader/internal/text"
)

// Run walks through the chunks of one practice text.
type Run struct {
	opts    model.Options
	chunks  []string
	index   int
	current *Session
	results []model.ChunkStats
}

// NewRun normalizes and chunks src and prepares the first session.
func NewRun(src string, opts model.Options) *Run {
	r := &Run{
		opts:   opts,
		chunks: text.Chunk(text.Normalize(src), opts.ChunkSize),
	}
	if len(r.chunks) > 0 {
		r.current = New(r.chunks[0], opts)
	}
	return r
}

// Options returns the settings of the run.
func (r *Run) Options() model.Options { return r.opts }

// Current returns the session for the chunk being typed, or nil when the run has no chunks.
func (r *Run) Current() *Session { return r.current }

// Index returns the zero-based index of the current chunk.
func (r *Run) Index() int { return r.index }

// Total returns the number of chunks.
func (r *Run) Total() int { return len(r.chunks) }

// Chunks returns the chunk texts.
func (r *Run) Chunks() []string { return r.chunks }

// Advance records the completed chunk and moves to the next one.
// It returns false when the current chunk is not complete or there is no next chunk.
func (r *Run) Advance() bool {
	if r.current == nil {
		return false
	}
	st, ok := r.current.Stats()
	if !ok {
		return false
	}
	if len(r.results) == r.index {
		st.Index = r.index
		r.results = append(r.results, st)
	}
	if r.index+1 >= len(r.chunks) {
		return false
	}
	r.index++
	r.current = New(r.chunks[r.index], r.opts)
	return true
}

// Done reports whether every chunk has been completed and recorded.
func (r *Run) Done() bool {
	return len(r.results) == len(r.chunks)
}

// Results returns the recorded stats in chunk order.
func (r *Run) Results() []model.ChunkStats {
	out := make([]model.ChunkStats, len(r.results))
	copy(out, r.results)
	return out
}
