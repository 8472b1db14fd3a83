package agent

import (
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"gamesolver/game"
	"gamesolver/searcher"
)

type Agent[G game.Game[A, G], A comparable] interface {
	// ChooseAction returns the action p plays on g. g is left unchanged.
	ChooseAction(g G, p game.Player) A
}

type searchingAgent[G game.Game[A, G], A comparable] struct {
	searcher *searcher.Searcher[G, A]
	depth    int
}

// NewSearching returns an agent playing the best action found by s, searching
// depth plies ahead.
func NewSearching[G game.Game[A, G], A comparable](s *searcher.Searcher[G, A], depth int) Agent[G, A] {
	if depth < 1 {
		panic(fmt.Sprintf("agent: search depth must be at least 1, got %d", depth))
	}
	return searchingAgent[G, A]{searcher: s, depth: depth}
}

func (a searchingAgent[G, A]) ChooseAction(g G, p game.Player) A {
	action, value, stats := a.searcher.BestAction(g, a.depth, p)
	log.Debug().
		Stringer("player", p).
		Str("action", fmt.Sprint(action)).
		Float64("value", value).
		Str("algorithm", a.searcher.Algorithm().String()).
		Int("depth", a.depth).
		Object("stats", stats).
		Msg("Chose action")
	return action
}

type randomAgent[G game.Game[A, G], A comparable] struct {
	mu  *sync.Mutex
	rng *rand.Rand
}

// NewRandom returns an agent picking uniformly among the legal actions.
func NewRandom[G game.Game[A, G], A comparable](seed uint64) Agent[G, A] {
	return randomAgent[G, A]{
		mu:  &sync.Mutex{},
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (a randomAgent[G, A]) ChooseAction(g G, p game.Player) A {
	actions := slices.Collect(g.LegalActions())
	if len(actions) == 0 {
		panic(fmt.Sprintf("agent: no legal action for %v\n%v", p, g))
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return actions[a.rng.Intn(len(actions))]
}
