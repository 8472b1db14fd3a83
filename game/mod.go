package game

import "iter"

// UID identifies a board's occupancy pattern. Boards pack two bits per cell
// into the 128 bits of Hi:Lo, so the packed cells themselves are the identity.
type UID struct {
	Hi uint64
	Lo uint64
}

// Game is the contract any two-player board must satisfy to be searched.
// A is the action type and G the concrete board type (usually a pointer).
//
// Play and Reverse mutate the board in place and must be paired in strict
// LIFO order: every Undo returned by Play is handed back to Reverse exactly
// once, after all plays made on top of it have been reversed.
type Game[A comparable, G any] interface {
	// Play applies a legal action for the player to move. Playing an
	// illegal action or playing on a finished game panics.
	Play(action A) Undo[A]
	// Reverse undoes the most recent Play.
	Reverse(undo Undo[A])

	Status() Status
	Player() Player

	// LegalActions snapshots the board and lazily yields its legal actions.
	// The sequence is single-use.
	LegalActions() iter.Seq[A]

	// Vectorize returns one feature per cell: 1 for cells owned by p,
	// -1 for the opponent's cells and 0 for empty ones.
	Vectorize(p Player) []float64

	// Symmetries returns all boards equal to this one under the game's
	// geometric symmetries, including itself.
	Symmetries() []G

	UID() UID
	Clone() G
}
