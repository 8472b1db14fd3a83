// Package bitboard packs a grid of tiles into a game.UID, two bits per cell,
// cell (x, y) living at bit index 2*(x + y*width). Lanes never straddle the
// Hi/Lo boundary since the index is always even.
package bitboard

import (
	"strings"

	"gamesolver/game"
)

// Connect is the line length that wins.
const Connect = 4

// directions holds one orientation of each line: horizontal, vertical and
// both diagonals. Win checks walk each one both ways.
var directions = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

func Index(x, y, width int) int {
	return 2 * (x + y*width)
}

func Get(b game.UID, i int) game.Tile {
	if i < 64 {
		return game.Tile(b.Lo >> i & 3)
	}
	return game.Tile(b.Hi >> (i - 64) & 3)
}

func Set(b game.UID, i int, t game.Tile) game.UID {
	if i < 64 {
		b.Lo = b.Lo&^(3<<i) | uint64(t)<<i
	} else {
		j := i - 64
		b.Hi = b.Hi&^(3<<j) | uint64(t)<<j
	}
	return b
}

// Connects reports whether the piece at (x, y) is part of a line of at least
// Connect same-player pieces. Only lines through (x, y) are inspected.
func Connects(b game.UID, width, height, x, y int) bool {
	t := Get(b, Index(x, y, width))
	if t == game.Empty {
		return false
	}
	for _, d := range directions {
		n := 1 + run(b, width, height, x, y, d[0], d[1], t) + run(b, width, height, x, y, -d[0], -d[1], t)
		if n >= Connect {
			return true
		}
	}
	return false
}

// run counts contiguous t tiles from (x, y) exclusive in direction (dx, dy).
func run(b game.UID, width, height, x, y, dx, dy int, t game.Tile) int {
	n := 0
	for i := 1; i < Connect; i++ {
		cx, cy := x+dx*i, y+dy*i
		if cx < 0 || cy < 0 || cx >= width || cy >= height {
			break
		}
		if Get(b, Index(cx, cy, width)) != t {
			break
		}
		n++
	}
	return n
}

// Vectorize returns one feature per cell, row by row from the bottom left.
func Vectorize(b game.UID, width, height int, p game.Player) []float64 {
	v := make([]float64, width*height)
	mine, theirs := game.TileOf(p), game.TileOf(p.Other())
	for i := range v {
		switch Get(b, 2*i) {
		case mine:
			v[i] = 1
		case theirs:
			v[i] = -1
		}
	}
	return v
}

// Remap moves every cell (x, y) to f(x, y). f must be a bijection of the grid.
func Remap(b game.UID, width, height int, f func(x, y int) (int, int)) game.UID {
	var out game.UID
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			t := Get(b, Index(x, y, width))
			if t == game.Empty {
				continue
			}
			nx, ny := f(x, y)
			out = Set(out, Index(nx, ny, width), t)
		}
	}
	return out
}

// Render draws the grid top row first: '.' empty, 'X' first, 'O' second.
func Render(b game.UID, width, height int) string {
	var sb strings.Builder
	for y := height - 1; y >= 0; y-- {
		for x := 0; x < width; x++ {
			switch Get(b, Index(x, y, width)) {
			case game.TileOf(game.First):
				sb.WriteByte('X')
			case game.TileOf(game.Second):
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Windows lists every run of Connect consecutive cells on a width x height
// grid as (x, y) pairs, in all four line directions.
func Windows(width, height int) [][Connect][2]int {
	var out [][Connect][2]int
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			for _, d := range directions {
				ex, ey := x+d[0]*(Connect-1), y+d[1]*(Connect-1)
				if ex < 0 || ey < 0 || ex >= width || ey >= height {
					continue
				}
				var w [Connect][2]int
				for i := range w {
					w[i] = [2]int{x + d[0]*i, y + d[1]*i}
				}
				out = append(out, w)
			}
		}
	}
	return out
}
