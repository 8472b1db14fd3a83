package engine

import (
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog/log"

	"gamesolver/agent"
	"gamesolver/game"
)

type Local[G game.Game[A, G], A comparable] struct {
	board  G
	agents [2]agent.Agent[G, A]
}

// LocalEngine sets up a game from g, which is copied, between first and
// second in the same process.
func LocalEngine[G game.Game[A, G], A comparable](g G, first, second agent.Agent[G, A]) *Local[G, A] {
	if first == nil || second == nil {
		panic("engine: need two agents")
	}
	return &Local[G, A]{
		board:  g.Clone(),
		agents: [2]agent.Agent[G, A]{first, second},
	}
}

// Run executes the game loop until the game is decided. An agent choosing an
// illegal action ends the game with ErrIllegalAction and the result so far.
func (e *Local[G, A]) Run() (Result[G, A], error) {
	result := Result[G, A]{StartTime: time.Now()}
	finish := func() {
		result.Status = e.board.Status()
		result.Board = e.board.Clone()
		result.Duration = time.Since(result.StartTime)
	}

	log.Info().Msgf("%v is starting", e.board.Player())
	for step := 1; !e.board.Status().Terminal(); step++ {
		p := e.board.Player()
		start := time.Now()
		action := e.agents[p-game.First].ChooseAction(e.board.Clone(), p)
		elapsed := time.Since(start)

		if !slices.Contains(slices.Collect(e.board.LegalActions()), action) {
			finish()
			return result, fmt.Errorf("step %d, %v chose %v: %w", step, p, action, ErrIllegalAction)
		}
		e.board.Play(action)
		result.Moves = append(result.Moves, Move[A]{Step: step, Player: p, Action: action, Duration: elapsed})

		log.Debug().
			Int("step", step).
			Stringer("player", p).
			Str("action", fmt.Sprint(action)).
			Dur("duration", elapsed).
			Msg("Played")
	}
	finish()

	log.Info().Msgf("game over after %d moves: %v", len(result.Moves), result.Status)
	return result, nil
}
