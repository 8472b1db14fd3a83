// Package searcher implements depth-limited game-tree search over any
// game.Game: minimax, negamax, alpha-beta negamax (optionally with a
// transposition table and a batched frontier) and batched negamax.
//
// A Searcher holds configuration only. Every entry point clones the board it
// is given and works on that clone, so concurrent calls never share a board.
package searcher

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"lukechampine.com/frand"

	"gamesolver/game"
)

type Algorithm uint8

const (
	Minimax Algorithm = iota
	Negamax
	AlphaBeta
	Batch
)

var algorithmNames = map[Algorithm]string{
	Minimax:   "minimax",
	Negamax:   "negamax",
	AlphaBeta: "alphabeta",
	Batch:     "batch",
}

var ErrUnknownAlgorithm = errors.New("unknown search algorithm")

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", a)
}

func ParseAlgorithm(name string) (Algorithm, error) {
	for a, n := range algorithmNames {
		if n == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownAlgorithm)
}

type Searcher[G game.Game[A, G], A comparable] struct {
	settings
	evaluate game.Evaluator[G]

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// New returns a searcher valuing frontier positions with evaluate. By default
// it runs plain alpha-beta on one goroutine with a random tie-break seed.
func New[G game.Game[A, G], A comparable](evaluate game.Evaluator[G], options ...Option) *Searcher[G, A] {
	if evaluate == nil {
		panic("searcher: nil evaluator")
	}
	s := &Searcher[G, A]{
		settings: settings{ // Default values
			algorithm:  AlphaBeta,
			goroutines: 1,
		},
		evaluate: evaluate,
	}
	for _, option := range options {
		option(&s.settings)
	}
	if s.seed == 0 {
		s.seed = frand.Uint64n(math.MaxUint64) + 1
		log.Debug().Uint64("seed", s.seed).Msg("Picked tie-break seed")
	}
	s.rng = rand.New(rand.NewSource(s.seed))
	return s
}

func (s *Searcher[G, A]) Algorithm() Algorithm {
	return s.algorithm
}

// Seed returns the tie-break seed. A searcher built WithSeed(Seed()) breaks
// ties the same way.
func (s *Searcher[G, A]) Seed() uint64 {
	return s.seed
}

func (s *Searcher[G, A]) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// Search values g for p with the configured algorithm.
func (s *Searcher[G, A]) Search(g G, depth int, p game.Player) (float64, Stats) {
	switch s.algorithm {
	case Minimax:
		return s.Minimax(g, depth, p)
	case Negamax:
		return s.Negamax(g, depth, p)
	case Batch:
		return s.Batch(g, depth, p)
	default:
		return s.AlphaBeta(g, depth, p)
	}
}

// run carries the state of one search call.
type run[G game.Game[A, G], A comparable] struct {
	evaluate   game.Evaluator[G]
	bulk       game.BatchEvaluator[G] // nil when evaluate has no bulk form
	batchDepth int
	table      table // nil unless transpositions are enabled
	stats      Stats
}

func (s *Searcher[G, A]) newRun() *run[G, A] {
	r := &run[G, A]{
		evaluate:   s.evaluate,
		batchDepth: s.batchDepth,
	}
	if bulk, ok := s.evaluate.(game.BatchEvaluator[G]); ok {
		r.bulk = bulk
	}
	if s.transpositions {
		r.table = make(table)
	}
	return r
}

func (r *run[G, A]) value(g G, p game.Player) float64 {
	r.stats.Evaluations++
	return r.evaluate.Value(g, p)
}

func checkDepth(depth int) {
	if depth < 0 {
		panic(fmt.Sprintf("searcher: negative depth %d", depth))
	}
}

func noActions(g any) {
	panic(fmt.Sprintf("searcher: no legal action on a game in progress\n%v", g))
}
