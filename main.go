package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gamesolver/agent"
	"gamesolver/engine"
	"gamesolver/evaluator"
	"gamesolver/game"
	"gamesolver/game/connect4"
	"gamesolver/game/stack4"
	"gamesolver/meta"
	"gamesolver/searcher"
)

var (
	ErrUnknownGame      = errors.New("unknown game")
	ErrUnknownEvaluator = errors.New("unknown evaluator")
	ErrUnknownOpponent  = errors.New("unknown opponent")
)

type config struct {
	game           string
	evaluator      string
	algorithm      string
	opponent       string
	depth          int
	batchDepth     int
	goroutines     int
	transpositions bool
	seed           uint64
	record         string
	verbose        bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.game, "game", meta.GAME, "Board to play: connect4, stack4 or stack4-edges")
	flag.StringVar(&cfg.evaluator, "evaluator", meta.EVALUATOR, "Position evaluator: outcome, lines or neural")
	flag.StringVar(&cfg.algorithm, "algorithm", meta.ALGORITHM, "Search algorithm: minimax, negamax, alphabeta or batch")
	flag.StringVar(&cfg.opponent, "opponent", "search", "Second player: search or random")
	flag.IntVar(&cfg.depth, "depth", meta.DEPTH, "Plies searched per move")
	flag.IntVar(&cfg.batchDepth, "batch", meta.BATCH_DEPTH, "Plies above the leaves valued in one batch by alpha-beta")
	flag.IntVar(&cfg.goroutines, "goroutines", meta.GO_ROUTINES, "Goroutines sharing the root actions")
	flag.BoolVar(&cfg.transpositions, "transpositions", false, "Use a transposition table in alpha-beta")
	flag.Uint64Var(&cfg.seed, "seed", 0, "Tie-break seed, 0 for a random one")
	flag.StringVar(&cfg.record, "record", "", "Write the moves as CSV to this file")
	flag.BoolVar(&cfg.verbose, "verbose", false, "Log every move")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("game failed")
	}
}

func run(cfg config) error {
	switch cfg.game {
	case "connect4":
		return play[*connect4.Board, connect4.Action](connect4.New(), cfg)
	case "stack4":
		return play[*stack4.Board, stack4.Action](stack4.New(), cfg)
	case "stack4-edges":
		return play[*stack4.Board, stack4.Action](stack4.NewWithRule(stack4.FromEdges), cfg)
	}
	return fmt.Errorf("%q: %w", cfg.game, ErrUnknownGame)
}

// board is what the binary needs from a game: search and every evaluator.
type board[A comparable, G any] interface {
	game.Game[A, G]
	Size() (width, height int)
	Tile(x, y int) game.Tile
}

func play[G board[A, G], A comparable](g G, cfg config) error {
	if cfg.depth < 1 {
		return fmt.Errorf("search depth must be at least 1, got %d", cfg.depth)
	}
	evaluate, err := newEvaluator[G, A](g, cfg)
	if err != nil {
		return err
	}
	algorithm, err := searcher.ParseAlgorithm(cfg.algorithm)
	if err != nil {
		return err
	}
	options := []searcher.Option{
		searcher.WithAlgorithm(algorithm),
		searcher.WithBatchDepth(cfg.batchDepth),
		searcher.WithGoroutines(cfg.goroutines),
		searcher.WithSeed(cfg.seed),
	}
	if cfg.transpositions {
		options = append(options, searcher.WithTranspositions())
	}
	s := searcher.New[G, A](evaluate, options...)

	first := agent.NewSearching(s, cfg.depth)
	var second agent.Agent[G, A]
	switch cfg.opponent {
	case "search":
		second = first
	case "random":
		second = agent.NewRandom[G, A](s.Seed() + 1)
	default:
		return fmt.Errorf("%q: %w", cfg.opponent, ErrUnknownOpponent)
	}

	log.Info().
		Str("game", cfg.game).
		Str("evaluator", cfg.evaluator).
		Stringer("algorithm", algorithm).
		Int("depth", cfg.depth).
		Int("batch_depth", cfg.batchDepth).
		Uint64("seed", s.Seed()).
		Msg("starting game")

	result, err := engine.LocalEngine(g, first, second).Run()
	if err != nil {
		return fmt.Errorf("play %s: %w", cfg.game, err)
	}
	log.Info().
		Stringer("status", result.Status).
		Int("moves", len(result.Moves)).
		Dur("duration", result.Duration).
		Msgf("final position\n%v", result.Board)

	if cfg.record != "" {
		f, err := os.Create(cfg.record)
		if err != nil {
			return fmt.Errorf("failed to create move record: %w", err)
		}
		if err := engine.WriteMoves(f, result.Moves); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to close move record: %w", err)
		}
		log.Info().Str("path", cfg.record).Msg("stored move record")
	}
	return nil
}

func newEvaluator[G board[A, G], A comparable](g G, cfg config) (game.Evaluator[G], error) {
	switch cfg.evaluator {
	case "outcome":
		return evaluator.Outcome[G]{}, nil
	case "lines":
		return evaluator.NewLines[G](), nil
	case "neural":
		width, height := g.Size()
		network := evaluator.DefaultNeuralConfig(width * height)
		network.Replicas = cfg.goroutines
		return evaluator.NewNeural[G](network), nil
	}
	return nil, fmt.Errorf("%q: %w", cfg.evaluator, ErrUnknownEvaluator)
}
