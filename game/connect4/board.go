// Package connect4 implements the gravity-drop board: pieces are dropped into
// a column and land on the lowest empty cell.
package connect4

import (
	"fmt"
	"iter"

	"github.com/samber/lo"

	"gamesolver/game"
	"gamesolver/game/bitboard"
)

const (
	Width  = 7
	Height = 6
)

// Action is a column index.
type Action int

var _ game.Game[Action, *Board] = (*Board)(nil)

type Board struct {
	cells   game.UID
	heights [Width]uint8 // pieces per column
	player  game.Player
	status  game.Status
}

// New returns an empty board with the first player to move.
func New() *Board {
	return &Board{player: game.First}
}

// Replay returns the board reached by playing actions from the initial position.
func Replay(actions ...Action) *Board {
	b := New()
	for _, a := range actions {
		b.Play(a)
	}
	return b
}

// Play drops a piece for the player to move into column col.
func (b *Board) Play(col Action) game.Undo[Action] {
	if b.status != game.InProgress {
		panic(fmt.Sprintf("connect4: play %d on a finished game (%v)", col, b.status))
	}
	if col < 0 || col >= Width || b.heights[col] >= Height {
		panic(fmt.Sprintf("connect4: illegal action %d", col))
	}
	x, y := int(col), int(b.heights[col])
	b.cells = bitboard.Set(b.cells, bitboard.Index(x, y, Width), game.TileOf(b.player))
	b.heights[col]++

	switch {
	case bitboard.Connects(b.cells, Width, Height, x, y):
		b.status = game.Won(b.player)
	case b.full():
		b.status = game.Draw
	default:
		b.status = game.InProgress
	}
	b.player = b.player.Other()
	return game.NewUndo(col, b.cells)
}

// Reverse removes the top piece of the column played by the matching Play.
func (b *Board) Reverse(undo game.Undo[Action]) {
	undo.Verify(b.cells)
	col := undo.Action()
	b.heights[col]--
	b.cells = bitboard.Set(b.cells, bitboard.Index(int(col), int(b.heights[col]), Width), game.Empty)
	b.status = game.InProgress
	b.player = b.player.Other()
}

func (b *Board) full() bool {
	for _, h := range b.heights {
		if h < Height {
			return false
		}
	}
	return true
}

func (b *Board) Status() game.Status {
	return b.status
}

func (b *Board) Player() game.Player {
	return b.player
}

// LegalActions yields the columns with room left, left to right.
func (b *Board) LegalActions() iter.Seq[Action] {
	heights := b.heights
	col := Action(0)
	return func(yield func(Action) bool) {
		for col < Width {
			a := col
			col++
			if heights[a] < Height && !yield(a) {
				return
			}
		}
	}
}

func (b *Board) Vectorize(p game.Player) []float64 {
	return bitboard.Vectorize(b.cells, Width, Height, p)
}

// Symmetries returns the board and its left-right mirror image.
func (b *Board) Symmetries() []*Board {
	mirror := *b
	mirror.cells = bitboard.Remap(b.cells, Width, Height, func(x, y int) (int, int) {
		return Width - 1 - x, y
	})
	for x := 0; x < Width; x++ {
		mirror.heights[x] = b.heights[Width-1-x]
	}
	return lo.UniqBy([]*Board{b.Clone(), &mirror}, func(m *Board) game.UID {
		return m.cells
	})
}

func (b *Board) UID() game.UID {
	return b.cells
}

func (b *Board) Clone() *Board {
	c := *b
	return &c
}

func (b *Board) Size() (width, height int) {
	return Width, Height
}

func (b *Board) Tile(x, y int) game.Tile {
	return bitboard.Get(b.cells, bitboard.Index(x, y, Width))
}

func (b *Board) String() string {
	return bitboard.Render(b.cells, Width, Height)
}
