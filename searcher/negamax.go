package searcher

import (
	"math"
	"time"

	"gamesolver/game"
)

// Negamax values g for p, relying on value(p) == -value(p.Other()) to use a
// single maximizing rule at every level.
func (s *Searcher[G, A]) Negamax(g G, depth int, p game.Player) (float64, Stats) {
	checkDepth(depth)
	start := time.Now()
	r := s.newRun()
	v := r.negamax(g.Clone(), depth, p)
	r.stats.Duration = time.Since(start)
	return v, r.stats
}

func (r *run[G, A]) negamax(g G, depth int, p game.Player) float64 {
	if depth == 0 || g.Status().Terminal() {
		return r.value(g, p)
	}
	best := math.Inf(-1)
	moved := false
	for a := range g.LegalActions() {
		moved = true
		undo := g.Play(a)
		r.stats.Nodes++
		best = max(best, -r.negamax(g, depth-1, p.Other()))
		g.Reverse(undo)
	}
	if !moved {
		noActions(g)
	}
	return best
}
