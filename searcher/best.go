package searcher

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"gamesolver/game"
)

type ActionValue[A comparable] struct {
	Action A
	Value  float64
}

// ActionValues values every legal action of g for p, searching depth-1 plies
// below each with the configured algorithm. Values follow the order of
// g.LegalActions().
func (s *Searcher[G, A]) ActionValues(g G, depth int, p game.Player) ([]ActionValue[A], Stats) {
	if depth < 1 {
		panic(fmt.Sprintf("searcher: action values need depth >= 1, got %d", depth))
	}
	if g.Status().Terminal() {
		panic(fmt.Sprintf("searcher: no action to choose on a finished game (%v)", g.Status()))
	}
	start := time.Now()
	root := g.Clone()
	actions := slices.Collect(root.LegalActions())
	if len(actions) == 0 {
		noActions(root)
	}

	values := make([]ActionValue[A], len(actions))
	var stats Stats
	if s.goroutines <= 1 || len(actions) == 1 {
		r := s.newRun()
		for i, a := range actions {
			values[i] = ActionValue[A]{a, r.child(root, a, depth, p, s.algorithm)}
		}
		stats = r.stats
	} else {
		runs := make([]*run[G, A], len(actions))
		var eg errgroup.Group
		eg.SetLimit(s.goroutines)
		for i, a := range actions {
			eg.Go(func() error {
				runs[i] = s.newRun()
				values[i] = ActionValue[A]{a, runs[i].child(root.Clone(), a, depth, p, s.algorithm)}
				return nil
			})
		}
		_ = eg.Wait()
		for _, r := range runs {
			stats.Add(r.stats)
		}
	}
	stats.Duration = time.Since(start)
	return values, stats
}

// child values the action a of g for p, searching depth-1 plies below it.
func (r *run[G, A]) child(g G, a A, depth int, p game.Player, algorithm Algorithm) float64 {
	undo := g.Play(a)
	r.stats.Nodes++
	defer g.Reverse(undo)

	switch algorithm {
	case Minimax:
		return r.minimax(g, depth-1, false, p)
	case Negamax:
		return -r.negamax(g, depth-1, p.Other())
	case Batch:
		return -r.batch(g, depth-1, p.Other())
	default:
		return -r.alphabeta(g, depth-1, math.Inf(-1), math.Inf(1), p.Other())
	}
}

// BestAction returns an action of g with the highest value for p and that
// value. Actions tied on the highest value are picked from uniformly with the
// searcher's seeded source.
func (s *Searcher[G, A]) BestAction(g G, depth int, p game.Player) (A, float64, Stats) {
	values, stats := s.ActionValues(g, depth, p)
	best := lo.MaxBy(values, func(a, b ActionValue[A]) bool {
		return a.Value > b.Value
	})
	ties := lo.Filter(values, func(v ActionValue[A], _ int) bool {
		return v.Value == best.Value
	})
	pick := ties[s.intn(len(ties))]
	return pick.Action, pick.Value, stats
}
