package game

// Player is one of the two sides. Its value is also the 2-bit code stored in
// a board cell.
type Player uint8

const (
	First  Player = 1
	Second Player = 2
)

// Other returns the opponent.
func (p Player) Other() Player {
	return 3 - p
}

func (p Player) String() string {
	switch p {
	case First:
		return "first"
	case Second:
		return "second"
	default:
		return "invalid"
	}
}

// Tile is the state of one cell: Empty or occupied by a player.
type Tile uint8

const Empty Tile = 0

func TileOf(p Player) Tile {
	return Tile(p)
}

// Owner returns the player occupying the tile, if any.
func (t Tile) Owner() (Player, bool) {
	if t == Empty {
		return 0, false
	}
	return Player(t), true
}
