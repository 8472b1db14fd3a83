package searcher

import (
	"fmt"
	"math"
	"time"

	"gamesolver/game"
)

// Batch values g for p with batched negamax: the positions exactly depth
// plies away are collected first and valued in a single bulk call, then the
// tree is walked again reading leaf values from a table keyed by UID.
// Evaluators without a bulk form are called once per leaf.
func (s *Searcher[G, A]) Batch(g G, depth int, p game.Player) (float64, Stats) {
	checkDepth(depth)
	start := time.Now()
	r := s.newRun()
	v := r.batch(g.Clone(), depth, p)
	r.stats.Duration = time.Since(start)
	return v, r.stats
}

func (r *run[G, A]) batch(g G, depth int, p game.Player) float64 {
	if depth == 0 || g.Status().Terminal() {
		return r.value(g, p)
	}

	seen := make(map[game.UID]struct{})
	var leaves []G
	r.leaves(g, depth, seen, &leaves)

	// Leaves an even number of plies away have p to value, the others its opponent.
	horizon := p
	if depth%2 == 1 {
		horizon = p.Other()
	}
	values := r.bulkValues(leaves, horizon)
	lookup := make(map[game.UID]float64, len(leaves))
	for i, leaf := range leaves {
		lookup[leaf.UID()] = values[i]
	}
	return r.rewalk(g, depth, p, lookup)
}

// leaves appends a clone of every distinct unfinished position exactly depth
// plies below g. Finished positions are valued directly by rewalk.
func (r *run[G, A]) leaves(g G, depth int, seen map[game.UID]struct{}, out *[]G) {
	if g.Status().Terminal() {
		return
	}
	if depth == 0 {
		if _, ok := seen[g.UID()]; !ok {
			seen[g.UID()] = struct{}{}
			*out = append(*out, g.Clone())
		}
		return
	}
	for a := range g.LegalActions() {
		undo := g.Play(a)
		r.stats.Nodes++
		r.leaves(g, depth-1, seen, out)
		g.Reverse(undo)
	}
}

func (r *run[G, A]) bulkValues(leaves []G, p game.Player) []float64 {
	if len(leaves) == 0 {
		return nil
	}
	if r.bulk == nil {
		values := make([]float64, len(leaves))
		for i, leaf := range leaves {
			values[i] = r.value(leaf, p)
		}
		return values
	}
	r.stats.Batches++
	r.stats.Leaves += int64(len(leaves))
	values := r.bulk.Values(leaves, p)
	if len(values) != len(leaves) {
		panic(fmt.Sprintf("searcher: bulk evaluator returned %d values for %d positions", len(values), len(leaves)))
	}
	return values
}

// rewalk is negamax with leaf values read from lookup.
func (r *run[G, A]) rewalk(g G, depth int, p game.Player, lookup map[game.UID]float64) float64 {
	if g.Status().Terminal() {
		return r.value(g, p)
	}
	if depth == 0 {
		v, ok := lookup[g.UID()]
		if !ok {
			panic(fmt.Sprintf("searcher: leaf missing from batch\n%v", g))
		}
		return v
	}
	best := math.Inf(-1)
	moved := false
	for a := range g.LegalActions() {
		moved = true
		undo := g.Play(a)
		r.stats.Nodes++
		best = max(best, -r.rewalk(g, depth-1, p.Other(), lookup))
		g.Reverse(undo)
	}
	if !moved {
		noActions(g)
	}
	return best
}
