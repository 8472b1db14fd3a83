package agent

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"gamesolver/evaluator"
	"gamesolver/game"
	"gamesolver/game/connect4"
	"gamesolver/game/stack4"
	"gamesolver/searcher"
)

func TestSearchingAgent(t *testing.T) {
	t.Run("takes the win", func(t *testing.T) {
		s := searcher.New[*connect4.Board, connect4.Action](evaluator.NewLines[*connect4.Board](), searcher.WithSeed(3))
		a := NewSearching(s, 3)
		b := connect4.Replay(3, 2, 3, 2, 3, 2)
		before := *b

		require.Equal(t, connect4.Action(3), a.ChooseAction(b, game.First))
		require.Equal(t, before, *b, "Board should be left unchanged")
	})

	t.Run("blocks the loss", func(t *testing.T) {
		s := searcher.New[*connect4.Board, connect4.Action](evaluator.Outcome[*connect4.Board]{}, searcher.WithSeed(4))
		a := NewSearching(s, 2)
		// Second to move, First threatens column 3.
		b := connect4.Replay(3, 2, 3, 2, 3)
		require.Equal(t, connect4.Action(3), a.ChooseAction(b, game.Second))
	})

	t.Run("depth below one panics", func(t *testing.T) {
		s := searcher.New[*connect4.Board, connect4.Action](evaluator.Outcome[*connect4.Board]{})
		require.Panics(t, func() { NewSearching(s, 0) })
	})
}

func TestRandomAgent(t *testing.T) {
	t.Run("legal and reproducible", func(t *testing.T) {
		first := NewRandom[*stack4.Board, stack4.Action](9)
		second := NewRandom[*stack4.Board, stack4.Action](9)
		b := stack4.NewWithRule(stack4.FromEdges)
		for b.Status() == game.InProgress {
			a := first.ChooseAction(b, b.Player())
			require.Equal(t, a, second.ChooseAction(b, b.Player()))
			require.Contains(t, slices.Collect(b.LegalActions()), a)
			b.Play(a)
		}
	})
}
