// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines sharing the root actions of a search.
const GO_ROUTINES = 4

// DEPTH defines the number of plies searched per move.
const DEPTH = 6

// BATCH_DEPTH defines how many plies above the leaves alpha-beta hands over to batched negamax.
const BATCH_DEPTH = 0

// ALGORITHM defines the search algorithm by name.
const ALGORITHM = "alphabeta"

// GAME defines the board played by default.
const GAME = "connect4"

// EVALUATOR defines the position evaluator by name.
const EVALUATOR = "lines"
