package searcher

import (
	"time"

	"github.com/rs/zerolog"
)

// Stats counts the work done by one search call.
type Stats struct {
	Nodes       int64 // plays made
	Evaluations int64 // scalar evaluator calls
	Batches     int64 // bulk evaluator calls
	Leaves      int64 // positions sent in bulk
	Cutoffs     int64
	TableHits   int64
	Duration    time.Duration
}

// Add accumulates o into s. Durations add up, so the sum of parallel calls
// reports total work time, not wall time.
func (s *Stats) Add(o Stats) {
	s.Nodes += o.Nodes
	s.Evaluations += o.Evaluations
	s.Batches += o.Batches
	s.Leaves += o.Leaves
	s.Cutoffs += o.Cutoffs
	s.TableHits += o.TableHits
	s.Duration += o.Duration
}

func (s Stats) MarshalZerologObject(e *zerolog.Event) {
	e.Int64("nodes", s.Nodes).
		Int64("evaluations", s.Evaluations).
		Int64("batches", s.Batches).
		Int64("leaves", s.Leaves).
		Int64("cutoffs", s.Cutoffs).
		Int64("table_hits", s.TableHits).
		Dur("duration", s.Duration)
}
