// Package evaluator holds the position evaluators agents search with. Every
// evaluator here is anti-symmetric: Value(g, p) == -Value(g, p.Other()).
package evaluator

import (
	"math"

	"gamesolver/game"
)

// WinScore is the magnitude finite evaluators give a decided game. It is kept
// well above any heuristic score so a found win always dominates.
const WinScore = 100000

// Position is the least a board must expose to be evaluated.
type Position interface {
	Status() game.Status
}

// terminal scores a finished game for p: win if p won, -win if p lost, 0 on
// a draw. ok is false while the game is in progress.
func terminal(s game.Status, p game.Player, win float64) (float64, bool) {
	if !s.Terminal() {
		return 0, false
	}
	winner, ok := s.Winner()
	switch {
	case !ok:
		return 0, true
	case winner == p:
		return win, true
	default:
		return -win, true
	}
}

// Outcome knows only the rules: +Inf for a won game, -Inf for a lost one and
// 0 otherwise. It has no bulk form, so batched search falls back to Value.
type Outcome[G Position] struct{}

func (Outcome[G]) Value(g G, p game.Player) float64 {
	v, _ := terminal(g.Status(), p, math.Inf(1))
	return v
}
