package stack4

import (
	"slices"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"gamesolver/game"
	"gamesolver/game/bitboard"
)

func randomBoard(rng *rand.Rand, rule Rule, plies int) *Board {
	b := NewWithRule(rule)
	for i := 0; i < plies && b.Status() == game.InProgress; i++ {
		actions := slices.Collect(b.LegalActions())
		b.Play(actions[rng.Intn(len(actions))])
	}
	return b
}

// fill occupies cells directly, without win checks.
func fill(b *Board, tile game.Tile, cells ...Action) *Board {
	for _, c := range cells {
		b.cells = bitboard.Set(b.cells, bitboard.Index(c.X, c.Y, Size), tile)
	}
	return b
}

func emptyCells(b *Board) []Action {
	var cells []Action
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if b.Tile(x, y) == game.Empty {
				cells = append(cells, Action{x, y})
			}
		}
	}
	return cells
}

// edgeCells is the FromEdges rule written out directly: the first empty cell
// of every row and column, seen from both ends.
func edgeCells(b *Board) []Action {
	var cells []Action
	first := func(walk func(i int) Action) {
		for i := 0; i < Size; i++ {
			if a := walk(i); b.Tile(a.X, a.Y) == game.Empty {
				cells = append(cells, a)
				return
			}
		}
	}
	for line := 0; line < Size; line++ {
		first(func(i int) Action { return Action{line, i} })
		first(func(i int) Action { return Action{line, Size - 1 - i} })
		first(func(i int) Action { return Action{i, line} })
		first(func(i int) Action { return Action{Size - 1 - i, line} })
	}
	return lo.Uniq(cells)
}

func requireNoDuplicates(t *testing.T, actions []Action) {
	t.Helper()
	require.Len(t, lo.Uniq(actions), len(actions), "Legal actions should not repeat")
}

func TestLegalActions(t *testing.T) {
	t.Run("empty board", func(t *testing.T) {
		require.Len(t, slices.Collect(New().LegalActions()), Size*Size)
		require.Len(t, slices.Collect(NewWithRule(FromEdges).LegalActions()), 4*Size-4,
			"Only the perimeter is reachable from the edges")
	})

	t.Run("anywhere yields every empty cell once", func(t *testing.T) {
		rng := rand.New(rand.NewSource(11))
		for i := 0; i < 100; i++ {
			b := randomBoard(rng, Anywhere, rng.Intn(40))
			got := slices.Collect(b.LegalActions())
			requireNoDuplicates(t, got)
			if b.Status() == game.InProgress {
				require.ElementsMatch(t, emptyCells(b), got, "board\n%v", b)
			}
		}
	})

	t.Run("anywhere reaches cells behind occupied edges", func(t *testing.T) {
		var border []Action
		for i := 0; i < Size; i++ {
			border = append(border, Action{i, 0}, Action{i, Size - 1}, Action{0, i}, Action{Size - 1, i})
		}
		b := fill(New(), game.TileOf(game.First), lo.Uniq(border)...)
		got := slices.Collect(b.LegalActions())
		requireNoDuplicates(t, got)
		require.Len(t, got, (Size-2)*(Size-2))
		require.ElementsMatch(t, emptyCells(b), got)
	})

	t.Run("from edges matches the first empty cell per line", func(t *testing.T) {
		rng := rand.New(rand.NewSource(12))
		for i := 0; i < 100; i++ {
			b := randomBoard(rng, FromEdges, rng.Intn(50))
			if b.Status() != game.InProgress {
				continue
			}
			got := slices.Collect(b.LegalActions())
			requireNoDuplicates(t, got)
			require.ElementsMatch(t, edgeCells(b), got, "board\n%v", b)
		}
	})

	t.Run("snapshot survives plays while iterating", func(t *testing.T) {
		b := New()
		n := 0
		for a := range b.LegalActions() {
			n++
			undo := b.Play(a)
			b.Reverse(undo)
		}
		require.Equal(t, Size*Size, n)
	})
}

func TestPlay(t *testing.T) {
	t.Run("four in a row anywhere on the board", func(t *testing.T) {
		b := New()
		for _, a := range []Action{{4, 4}, {0, 0}, {5, 5}, {0, 1}, {6, 6}, {0, 2}} {
			b.Play(a)
			require.Equal(t, game.InProgress, b.Status())
		}
		b.Play(Action{3, 3})
		require.Equal(t, game.Won(game.First), b.Status())
	})

	t.Run("second player wins", func(t *testing.T) {
		b := New()
		for _, a := range []Action{{7, 7}, {0, 0}, {7, 5}, {0, 1}, {5, 7}, {0, 2}, {2, 6}} {
			b.Play(a)
		}
		b.Play(Action{0, 3})
		require.Equal(t, game.Won(game.Second), b.Status())
	})

	t.Run("filling the board without a line is a draw", func(t *testing.T) {
		pattern := [2]string{"XXOOXXOO", "OOXXOOXX"}
		b := New()
		for y := 0; y < Size; y++ {
			for x := 0; x < Size; x++ {
				if x == 0 && y == Size-1 {
					continue
				}
				tile := game.TileOf(game.First)
				if pattern[y%2][x] == 'O' {
					tile = game.TileOf(game.Second)
				}
				fill(b, tile, Action{x, y})
			}
		}
		b.player = game.Second
		require.Equal(t, []Action{{0, Size - 1}}, slices.Collect(b.LegalActions()))

		b.Play(Action{0, Size - 1})
		require.Equal(t, game.Draw, b.Status())
		require.Empty(t, slices.Collect(b.LegalActions()))
	})

	t.Run("illegal plays panic", func(t *testing.T) {
		b := New()
		b.Play(Action{2, 2})
		require.Panics(t, func() { b.Play(Action{2, 2}) }, "Cell is occupied")
		require.Panics(t, func() { b.Play(Action{Size, 0}) }, "Cell out of bounds")
		require.Panics(t, func() { b.Play(Action{0, -1}) }, "Cell out of bounds")

		edges := NewWithRule(FromEdges)
		require.Panics(t, func() { edges.Play(Action{3, 3}) }, "Interior cell is not reachable from an edge")
		edges.Play(Action{0, 3})
		require.NotPanics(t, func() { edges.Play(Action{1, 3}) }, "Cell behind an occupied edge cell is reachable")
	})
}

func TestReverse(t *testing.T) {
	t.Run("play then reverse restores the board", func(t *testing.T) {
		rng := rand.New(rand.NewSource(13))
		for _, rule := range []Rule{Anywhere, FromEdges} {
			for i := 0; i < 30; i++ {
				b := randomBoard(rng, rule, rng.Intn(40))
				if b.Status() != game.InProgress {
					continue
				}
				for a := range b.LegalActions() {
					before := *b
					b.Reverse(b.Play(a))
					require.Equal(t, before, *b, "reverse of %v on\n%v", a, b)
				}
			}
		}
	})

	t.Run("double reverse panics", func(t *testing.T) {
		b := New()
		b.Play(Action{1, 1})
		undo := b.Play(Action{2, 2})
		b.Reverse(undo)
		require.Panics(t, func() { b.Reverse(undo) })
	})
}

func TestSymmetries(t *testing.T) {
	require.Len(t, New().Symmetries(), 1, "Empty board is invariant")

	corner := New()
	corner.Play(Action{0, 0})
	require.Len(t, corner.Symmetries(), 4, "A corner piece lands on each corner")

	b := New()
	b.Play(Action{1, 0})
	syms := b.Symmetries()
	require.Len(t, syms, 8)
	require.Equal(t, b.UID(), syms[0].UID())

	for _, s := range syms {
		require.Equal(t, b.Player(), s.Player())
		require.Equal(t, 1, Size*Size-len(emptyCells(s)))
	}

	edges := NewWithRule(FromEdges)
	for _, s := range edges.Symmetries() {
		require.Equal(t, FromEdges, s.Rule(), "Images keep the placement rule")
	}
}

func TestClone(t *testing.T) {
	b := NewWithRule(FromEdges)
	b.Play(Action{0, 3})
	c := b.Clone()
	c.Play(Action{7, 3})

	require.NotEqual(t, b.UID(), c.UID())
	require.Equal(t, game.Second, b.Player())
	require.Equal(t, FromEdges, c.Rule())
}
