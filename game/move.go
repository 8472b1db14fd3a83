package game

import "fmt"

// Undo is the token returned by Play. It must be consumed by the matching
// Reverse, which restores the board to the state before the play.
type Undo[A any] struct {
	action A
	after  UID
}

// NewUndo records action together with the board identity right after it was
// played.
func NewUndo[A any](action A, after UID) Undo[A] {
	return Undo[A]{action: action, after: after}
}

func (u Undo[A]) Action() A {
	return u.action
}

// Verify panics unless the board identity is still the one left by the play
// that produced the token. A mismatch means a reverse out of LIFO order or a
// token reversed twice.
func (u Undo[A]) Verify(current UID) {
	if current != u.after {
		panic(fmt.Sprintf("reverse of %v out of order: board %x:%x, expected %x:%x",
			u.action, current.Hi, current.Lo, u.after.Hi, u.after.Lo))
	}
}
