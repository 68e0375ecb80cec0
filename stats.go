package logout

import "sync/atomic"

// stats counters are shared across With clones for a global picture.
type stats struct {
	lines       atomic.Uint64
	writeErrors atomic.Uint64
	fallbacks   atomic.Uint64
}

// StatsSnapshot is a point-in-time counters snapshot.
type StatsSnapshot struct {
	Lines       uint64 // lines written to the primary writer
	WriteErrors uint64 // failed primary writes and recovered formatting panics
	Fallbacks   uint64 // lines recovered through the fallback writer
}

func (s *stats) snapshot() StatsSnapshot {
	return StatsSnapshot{
		Lines:       s.lines.Load(),
		WriteErrors: s.writeErrors.Load(),
		Fallbacks:   s.fallbacks.Load(),
	}
}

func (s *stats) reset() {
	s.lines.Store(0)
	s.writeErrors.Store(0)
	s.fallbacks.Store(0)
}
