package evaluator

import (
	"sync"

	"github.com/samber/lo"

	"gamesolver/game"
	"gamesolver/game/bitboard"
)

// Grid is a board whose cells can be read one by one.
type Grid interface {
	Position
	Size() (width, height int)
	Tile(x, y int) game.Tile
}

// DefaultWeights scores a window by how many pieces of a single player it holds.
var DefaultWeights = [bitboard.Connect + 1]float64{0, 1, 8, 64, WinScore}

// Lines is the classic open-window heuristic. Every window of four cells that
// holds pieces of only one player adds Weights[n] to that player's score,
// n being the number of pieces, and takes the same amount from the opponent.
type Lines[G Grid] struct {
	Weights [bitboard.Connect + 1]float64
}

func NewLines[G Grid]() Lines[G] {
	return Lines[G]{Weights: DefaultWeights}
}

func (l Lines[G]) Value(g G, p game.Player) float64 {
	if v, ok := terminal(g.Status(), p, WinScore); ok {
		return v
	}
	mine, theirs := game.TileOf(p), game.TileOf(p.Other())
	score := 0.0
	for _, w := range windows(g.Size()) {
		m, t := 0, 0
		for _, c := range w {
			switch g.Tile(c[0], c[1]) {
			case mine:
				m++
			case theirs:
				t++
			}
		}
		switch {
		case t == 0:
			score += l.Weights[m]
		case m == 0:
			score -= l.Weights[t]
		}
	}
	return score
}

// Values scores each board in turn. It exists so batched search can be
// driven, and checked, with a cheap evaluator.
func (l Lines[G]) Values(gs []G, p game.Player) []float64 {
	return lo.Map(gs, func(g G, _ int) float64 {
		return l.Value(g, p)
	})
}

var windowCache sync.Map // [2]int -> [][bitboard.Connect][2]int

func windows(width, height int) [][bitboard.Connect][2]int {
	key := [2]int{width, height}
	if w, ok := windowCache.Load(key); ok {
		return w.([][bitboard.Connect][2]int)
	}
	w, _ := windowCache.LoadOrStore(key, bitboard.Windows(width, height))
	return w.([][bitboard.Connect][2]int)
}
