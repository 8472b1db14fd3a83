package searcher

import (
	"math"
	"time"

	"gamesolver/game"
)

// Minimax values g for p with explicit max and min levels. Leaves are always
// valued for p; p maximizes at the root.
func (s *Searcher[G, A]) Minimax(g G, depth int, p game.Player) (float64, Stats) {
	checkDepth(depth)
	start := time.Now()
	r := s.newRun()
	v := r.minimax(g.Clone(), depth, true, p)
	r.stats.Duration = time.Since(start)
	return v, r.stats
}

func (r *run[G, A]) minimax(g G, depth int, maximizing bool, p game.Player) float64 {
	if depth == 0 || g.Status().Terminal() {
		return r.value(g, p)
	}
	best := math.Inf(-1)
	if !maximizing {
		best = math.Inf(1)
	}
	moved := false
	for a := range g.LegalActions() {
		moved = true
		undo := g.Play(a)
		r.stats.Nodes++
		v := r.minimax(g, depth-1, !maximizing, p)
		g.Reverse(undo)
		if maximizing {
			best = max(best, v)
		} else {
			best = min(best, v)
		}
	}
	if !moved {
		noActions(g)
	}
	return best
}
