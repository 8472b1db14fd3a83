// Package stack4 implements the free-placement 8x8 board. An action names the
// cell to occupy.
package stack4

import (
	"fmt"
	"iter"

	"github.com/samber/lo"

	"gamesolver/game"
	"gamesolver/game/bitboard"
)

const Size = 8

// Rule decides which empty cells are legal.
type Rule uint8

const (
	// Anywhere allows every empty cell.
	Anywhere Rule = iota
	// FromEdges allows a cell only if it is the first empty cell met when
	// walking a row or column inward from one of the four edges.
	FromEdges
)

type Action struct {
	X, Y int
}

var _ game.Game[Action, *Board] = (*Board)(nil)

type Board struct {
	cells  game.UID
	player game.Player
	status game.Status
	rule   Rule
}

// New returns an empty board under the Anywhere rule.
func New() *Board {
	return NewWithRule(Anywhere)
}

func NewWithRule(rule Rule) *Board {
	return &Board{player: game.First, rule: rule}
}

// Play occupies the cell a for the player to move.
func (b *Board) Play(a Action) game.Undo[Action] {
	if b.status != game.InProgress {
		panic(fmt.Sprintf("stack4: play %v on a finished game (%v)", a, b.status))
	}
	if a.X < 0 || a.Y < 0 || a.X >= Size || a.Y >= Size || b.Tile(a.X, a.Y) != game.Empty {
		panic(fmt.Sprintf("stack4: illegal action %v", a))
	}
	if b.rule == FromEdges && !b.reachable(a.X, a.Y) {
		panic(fmt.Sprintf("stack4: action %v is not reachable from an edge", a))
	}
	b.cells = bitboard.Set(b.cells, bitboard.Index(a.X, a.Y, Size), game.TileOf(b.player))

	switch {
	case bitboard.Connects(b.cells, Size, Size, a.X, a.Y):
		b.status = game.Won(b.player)
	case b.full():
		b.status = game.Draw
	default:
		b.status = game.InProgress
	}
	b.player = b.player.Other()
	return game.NewUndo(a, b.cells)
}

func (b *Board) Reverse(undo game.Undo[Action]) {
	undo.Verify(b.cells)
	a := undo.Action()
	b.cells = bitboard.Set(b.cells, bitboard.Index(a.X, a.Y, Size), game.Empty)
	b.status = game.InProgress
	b.player = b.player.Other()
}

// reachable reports whether every cell between (x, y) and some edge, along
// its row or column, is occupied.
func (b *Board) reachable(x, y int) bool {
	blocked := func(dx, dy int) bool {
		for cx, cy := x+dx, y+dy; cx >= 0 && cy >= 0 && cx < Size && cy < Size; cx, cy = cx+dx, cy+dy {
			if b.Tile(cx, cy) == game.Empty {
				return true
			}
		}
		return false
	}
	return !blocked(-1, 0) || !blocked(1, 0) || !blocked(0, -1) || !blocked(0, 1)
}

// full reports whether no legal action is left.
func (b *Board) full() bool {
	s := scan{board: *b}
	_, ok := s.next()
	return !ok
}

func (b *Board) Status() game.Status {
	return b.status
}

func (b *Board) Player() game.Player {
	return b.player
}

func (b *Board) Rule() Rule {
	return b.rule
}

func (b *Board) LegalActions() iter.Seq[Action] {
	s := &scan{board: *b}
	return func(yield func(Action) bool) {
		for a, ok := s.next(); ok; a, ok = s.next() {
			if !yield(a) {
				return
			}
		}
	}
}

// scan walks the board from each of the four edges in turn, line by line,
// stepping inward from the edge. seen holds the cells already yielded so a
// cell reachable from several edges comes out once.
type scan struct {
	board Board
	side  int // 0..4, 4 once exhausted
	line  int
	step  int // distance from the edge
	seen  uint64
}

func (s *scan) next() (Action, bool) {
	for s.side < 4 {
		for s.line < Size {
			for s.step < Size {
				x, y := cellOn(s.side, s.line, s.step)
				s.step++
				if s.board.Tile(x, y) != game.Empty {
					continue
				}
				if s.board.rule == FromEdges {
					s.step = Size
				}
				bit := uint64(1) << (x + y*Size)
				if s.seen&bit != 0 {
					continue
				}
				s.seen |= bit
				return Action{X: x, Y: y}, true
			}
			s.step = 0
			s.line++
		}
		s.line = 0
		s.side++
	}
	return Action{}, false
}

// cellOn maps a (side, line, step) scan position to board coordinates. Sides
// are the bottom, right, top and left edges, each a quarter turn from the last.
func cellOn(side, line, step int) (int, int) {
	switch side {
	case 0:
		return line, step
	case 1:
		return Size - 1 - step, line
	case 2:
		return Size - 1 - line, Size - 1 - step
	default:
		return step, Size - 1 - line
	}
}

func (b *Board) Vectorize(p game.Player) []float64 {
	return bitboard.Vectorize(b.cells, Size, Size, p)
}

// Symmetries returns the distinct images of the board under the rotations and
// reflections of the square.
func (b *Board) Symmetries() []*Board {
	images := make([]*Board, 0, 8)
	for _, mirror := range []bool{false, true} {
		for turns := 0; turns < 4; turns++ {
			img := *b
			img.cells = bitboard.Remap(b.cells, Size, Size, func(x, y int) (int, int) {
				if mirror {
					x = Size - 1 - x
				}
				for i := 0; i < turns; i++ {
					x, y = Size-1-y, x
				}
				return x, y
			})
			images = append(images, &img)
		}
	}
	return lo.UniqBy(images, func(img *Board) game.UID {
		return img.cells
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
	return Size, Size
}

func (b *Board) Tile(x, y int) game.Tile {
	return bitboard.Get(b.cells, bitboard.Index(x, y, Size))
}

func (b *Board) String() string {
	return bitboard.Render(b.cells, Size, Size)
}
