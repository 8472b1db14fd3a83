package evaluator

import (
	"math"

	deep "github.com/patrikeh/go-deep"
	"golang.org/x/sync/errgroup"

	"gamesolver/game"
)

// Features is a board that can be turned into network inputs.
type Features interface {
	Position
	Vectorize(p game.Player) []float64
}

// NeuralConfig describes the network behind a Neural evaluator.
type NeuralConfig struct {
	Inputs   int
	Hidden   []int
	Weights  [][][]float64 // nil for a freshly initialized network
	Replicas int           // copies of the network used by Values, at least 1
}

func DefaultNeuralConfig(inputs int) NeuralConfig {
	return NeuralConfig{
		Inputs:   inputs,
		Hidden:   []int{64, 32},
		Replicas: 4,
	}
}

// Neural scores a position with a regression network over Vectorize(p). The
// raw output is squashed with tanh and made odd in the features, so scores
// lie in (-1, 1) and flip sign with the player. Decided games score ±WinScore.
//
// A go-deep network keeps activations inside its neurons, so each replica is
// checked out of a pool by exactly one goroutine at a time.
type Neural[G Features] struct {
	network  *deep.Neural // never evaluated, source of Weights
	replicas chan *deep.Neural
}

func NewNeural[G Features](config NeuralConfig) *Neural[G] {
	if config.Inputs <= 0 {
		panic("evaluator: network needs at least one input")
	}
	if config.Replicas < 1 {
		config.Replicas = 1
	}
	layout := append(append([]int{}, config.Hidden...), 1)
	network := deep.NewNeural(&deep.Config{
		Inputs:     config.Inputs,
		Layout:     layout,
		Activation: deep.ActivationReLU,
		Mode:       deep.ModeRegression,
		Weight:     deep.NewNormal(0.1, 0.0),
		Bias:       true,
	})
	if config.Weights != nil {
		network.ApplyWeights(config.Weights)
	}

	n := &Neural[G]{
		network:  network,
		replicas: make(chan *deep.Neural, config.Replicas),
	}
	dump := network.Dump()
	for i := 0; i < config.Replicas; i++ {
		n.replicas <- deep.FromDump(dump)
	}
	return n
}

// Weights returns a copy of the network weights, suitable for NeuralConfig.
func (n *Neural[G]) Weights() [][][]float64 {
	return n.network.Dump().Weights
}

func (n *Neural[G]) Value(g G, p game.Player) float64 {
	if v, ok := terminal(g.Status(), p, WinScore); ok {
		return v
	}
	network := <-n.replicas
	defer func() { n.replicas <- network }()
	return score(network, g.Vectorize(p))
}

// Values scores gs in one contiguous chunk per replica. Each chunk holds a
// single replica while it runs, so concurrent calls share the pool.
func (n *Neural[G]) Values(gs []G, p game.Player) []float64 {
	out := make([]float64, len(gs))
	chunks := cap(n.replicas)
	size := (len(gs) + chunks - 1) / chunks
	var eg errgroup.Group
	for i := 0; i < chunks; i++ {
		lo, hi := i*size, min((i+1)*size, len(gs))
		if lo >= hi {
			break
		}
		eg.Go(func() error {
			network := <-n.replicas
			defer func() { n.replicas <- network }()
			for j := lo; j < hi; j++ {
				if v, ok := terminal(gs[j].Status(), p, WinScore); ok {
					out[j] = v
					continue
				}
				out[j] = score(network, gs[j].Vectorize(p))
			}
			return nil
		})
	}
	_ = eg.Wait()
	return out
}

// score evaluates features and their negation, the opponent's view of the
// same board, and keeps the odd part of the squashed outputs.
func score(network *deep.Neural, features []float64) float64 {
	mine := math.Tanh(network.Predict(features)[0])
	for i := range features {
		features[i] = -features[i]
	}
	theirs := math.Tanh(network.Predict(features)[0])
	return (mine - theirs) / 2
}
