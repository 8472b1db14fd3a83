package searcher

import (
	"math"
	"time"

	"gamesolver/game"
)

// AlphaBeta values g for p with fail-soft alpha-beta negamax. It returns the
// same value as Negamax. With a batch depth set, subtrees of at most that many
// plies are valued by batched negamax instead.
func (s *Searcher[G, A]) AlphaBeta(g G, depth int, p game.Player) (float64, Stats) {
	checkDepth(depth)
	start := time.Now()
	r := s.newRun()
	v := r.alphabeta(g.Clone(), depth, math.Inf(-1), math.Inf(1), p)
	r.stats.Duration = time.Since(start)
	return v, r.stats
}

func (r *run[G, A]) alphabeta(g G, depth int, alpha, beta float64, p game.Player) float64 {
	if depth == 0 || g.Status().Terminal() {
		return r.value(g, p)
	}
	if r.batchDepth > 0 && depth <= r.batchDepth {
		return r.batch(g, depth, p)
	}

	key := tableKey{uid: g.UID(), depth: depth}
	if r.table != nil {
		if v, ok := r.table.probe(key, alpha, beta); ok {
			r.stats.TableHits++
			return v
		}
	}

	alpha0 := alpha
	val := math.Inf(-1)
	moved := false
	for a := range g.LegalActions() {
		moved = true
		undo := g.Play(a)
		r.stats.Nodes++
		val = max(val, -r.alphabeta(g, depth-1, -beta, -alpha, p.Other()))
		g.Reverse(undo)
		alpha = max(alpha, val)
		if alpha >= beta {
			r.stats.Cutoffs++
			break
		}
	}
	if !moved {
		noActions(g)
	}

	if r.table != nil {
		r.table.store(key, val, alpha0, beta)
	}
	return val
}
