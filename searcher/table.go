package searcher

import "gamesolver/game"

type bound uint8

const (
	exact bound = iota
	lower       // true value >= value
	upper       // true value <= value
)

type tableKey struct {
	uid   game.UID
	depth int
}

type tableEntry struct {
	value float64
	bound bound
}

// table caches alpha-beta results for one search call. The UID fixes the
// player to move and, within a call, the player being maximized, so
// (UID, remaining depth) is a sound key. Newer entries replace older ones.
type table map[tableKey]tableEntry

// probe returns a stored value that settles the node for the window
// (alpha, beta).
func (t table) probe(k tableKey, alpha, beta float64) (float64, bool) {
	e, ok := t[k]
	if !ok {
		return 0, false
	}
	switch {
	case e.bound == exact,
		e.bound == lower && e.value >= beta,
		e.bound == upper && e.value <= alpha:
		return e.value, true
	}
	return 0, false
}

// store records a fail-soft result searched with the window (alpha, beta).
func (t table) store(k tableKey, value, alpha, beta float64) {
	e := tableEntry{value: value, bound: exact}
	switch {
	case value <= alpha:
		e.bound = upper
	case value >= beta:
		e.bound = lower
	}
	t[k] = e
}
