package engine

import (
	"errors"
	"time"

	"gamesolver/game"
)

var ErrIllegalAction = errors.New("illegal action")

type Engine[G game.Game[A, G], A comparable] interface {
	// Run plays a game to its end.
	Run() (Result[G, A], error)
}

type Move[A comparable] struct {
	Step     int
	Player   game.Player
	Action   A
	Duration time.Duration // time the agent took to choose
}

type Result[G game.Game[A, G], A comparable] struct {
	Status    game.Status
	Moves     []Move[A]
	Board     G // final position
	StartTime time.Time
	Duration  time.Duration
}
