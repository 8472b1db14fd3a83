package connect4

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"gamesolver/game"
	"gamesolver/game/bitboard"
)

// randomBoard plays up to plies random moves and stops early on a finished game.
func randomBoard(rng *rand.Rand, plies int) *Board {
	b := New()
	for i := 0; i < plies && b.Status() == game.InProgress; i++ {
		actions := slices.Collect(b.LegalActions())
		b.Play(actions[rng.Intn(len(actions))])
	}
	return b
}

// drawnBut returns a full board with no line of four except that the top
// cell of column 0 is empty and the second player is to move into it.
func drawnBut() *Board {
	pattern := [2]string{"XXOOXXO", "OOXXOOX"}
	b := &Board{player: game.Second}
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if x == 0 && y == Height-1 {
				continue
			}
			tile := game.TileOf(game.First)
			if pattern[y%2][x] == 'O' {
				tile = game.TileOf(game.Second)
			}
			b.cells = bitboard.Set(b.cells, bitboard.Index(x, y, Width), tile)
			b.heights[x]++
		}
	}
	return b
}

func TestPlay(t *testing.T) {
	t.Run("vertical four wins on the fourth piece only", func(t *testing.T) {
		b := New()
		for i, col := range []Action{3, 2, 3, 2, 3, 2} {
			b.Play(col)
			require.Equal(t, game.InProgress, b.Status(), "no win expected after play %d", i)
		}
		b.Play(3)
		require.Equal(t, game.Won(game.First), b.Status())
	})

	t.Run("horizontal four", func(t *testing.T) {
		b := Replay(0, 0, 1, 1, 2, 2, 3)
		require.Equal(t, game.Won(game.First), b.Status())
	})

	t.Run("diagonal four", func(t *testing.T) {
		b := Replay(0, 1, 1, 2, 3, 2, 2, 3, 3, 6)
		require.Equal(t, game.InProgress, b.Status())
		b.Play(3)
		require.Equal(t, game.Won(game.First), b.Status(), "0,0 1,1 2,2 3,3 diagonal")
	})

	t.Run("pieces land on the lowest empty cell", func(t *testing.T) {
		b := Replay(4, 4, 4)
		require.Equal(t, game.TileOf(game.First), b.Tile(4, 0))
		require.Equal(t, game.TileOf(game.Second), b.Tile(4, 1))
		require.Equal(t, game.TileOf(game.First), b.Tile(4, 2))
		require.Equal(t, game.Empty, b.Tile(4, 3))
		require.Equal(t, game.Second, b.Player())
	})

	t.Run("filling the last cell without a line is a draw", func(t *testing.T) {
		b := drawnBut()
		require.NotEmpty(t, slices.Collect(b.LegalActions()))
		b.Play(0)
		require.Equal(t, game.Draw, b.Status())
		require.Empty(t, slices.Collect(b.LegalActions()), "A drawn board has no legal action left")
	})

	t.Run("illegal plays panic", func(t *testing.T) {
		b := Replay(0, 0, 0, 0, 0, 0)
		require.Panics(t, func() { b.Play(0) }, "Column 0 is full")
		require.Panics(t, func() { b.Play(Width) }, "Column out of range")

		won := Replay(3, 2, 3, 2, 3, 2, 3)
		require.Panics(t, func() { won.Play(0) }, "Game is over")
	})
}

func TestReverse(t *testing.T) {
	t.Run("play then reverse restores the board", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		for i := 0; i < 50; i++ {
			b := randomBoard(rng, rng.Intn(30))
			if b.Status() != game.InProgress {
				continue
			}
			for a := range b.LegalActions() {
				before := *b
				undo := b.Play(a)
				b.Reverse(undo)
				require.Equal(t, before, *b, "reverse of %d on\n%v", a, b)
			}
		}
	})

	t.Run("reverse reopens a won game", func(t *testing.T) {
		b := Replay(3, 2, 3, 2, 3, 2)
		undo := b.Play(3)
		b.Reverse(undo)
		require.Equal(t, game.InProgress, b.Status())
		require.Equal(t, game.First, b.Player())
	})

	t.Run("double reverse panics", func(t *testing.T) {
		b := New()
		undo := b.Play(1)
		b.Reverse(undo)
		require.Panics(t, func() { b.Reverse(undo) })
	})

	t.Run("reverse out of order panics", func(t *testing.T) {
		b := New()
		first := b.Play(1)
		b.Play(2)
		require.Panics(t, func() { b.Reverse(first) })
	})
}

func TestLegalActions(t *testing.T) {
	t.Run("empty board", func(t *testing.T) {
		require.Equal(t, []Action{0, 1, 2, 3, 4, 5, 6}, slices.Collect(New().LegalActions()))
	})

	t.Run("full columns are skipped", func(t *testing.T) {
		b := Replay(2, 2, 2, 2, 2, 2)
		require.Equal(t, []Action{0, 1, 3, 4, 5, 6}, slices.Collect(b.LegalActions()))
	})

	t.Run("snapshot survives plays while iterating", func(t *testing.T) {
		b := Replay(0, 0, 0, 0, 0)
		var got []Action
		for a := range b.LegalActions() {
			got = append(got, a)
			undo := b.Play(a)
			b.Reverse(undo)
		}
		require.Equal(t, []Action{0, 1, 2, 3, 4, 5, 6}, got)
	})

	t.Run("sequence is single use", func(t *testing.T) {
		seq := New().LegalActions()
		for range seq {
			break
		}
		require.Equal(t, []Action{1, 2, 3, 4, 5, 6}, slices.Collect(seq))
		require.Empty(t, slices.Collect(seq))
	})
}

func TestSymmetries(t *testing.T) {
	require.Len(t, New().Symmetries(), 1, "Empty board is its own mirror")

	b := Replay(0, 1)
	syms := b.Symmetries()
	require.Len(t, syms, 2)
	require.Equal(t, b.UID(), syms[0].UID(), "First symmetry is the board itself")
	require.Equal(t, Replay(6, 5).UID(), syms[1].UID())

	mirror := syms[1]
	mirror.Play(6)
	require.Equal(t, game.TileOf(game.First), mirror.Tile(6, 1), "Mirrored heights follow the mirrored cells")
}

func TestVectorize(t *testing.T) {
	b := Replay(0, 6)
	v := b.Vectorize(game.First)
	require.Len(t, v, Width*Height)
	require.Equal(t, 1.0, v[0])
	require.Equal(t, -1.0, v[6])

	other := b.Vectorize(game.Second)
	for i := range v {
		require.Equal(t, -v[i], other[i], "cell %d should flip sign with the player", i)
	}
}
