package game

// Status is the outcome state of a game.
type Status uint8

const (
	InProgress Status = iota
	Draw
	FirstWon
	SecondWon
)

// Won returns the status of a game won by p.
func Won(p Player) Status {
	if p == First {
		return FirstWon
	}
	return SecondWon
}

// Terminal reports whether no further action may be played.
func (s Status) Terminal() bool {
	return s != InProgress
}

// Winner returns the winning player of a won game.
func (s Status) Winner() (Player, bool) {
	switch s {
	case FirstWon:
		return First, true
	case SecondWon:
		return Second, true
	default:
		return 0, false
	}
}

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Draw:
		return "draw"
	case FirstWon:
		return "won by first"
	case SecondWon:
		return "won by second"
	default:
		return "invalid"
	}
}
