package game

// Evaluator scores a position for player p; higher is better for p.
// Won and lost positions score with a large magnitude (or ±Inf), draws with 0.
// Evaluators must be pure: the same board and player always give the same value.
type Evaluator[G any] interface {
	Value(g G, p Player) float64
}

// BatchEvaluator additionally scores many positions in one call. The result
// has the same length and order as gs and agrees pointwise with Value.
type BatchEvaluator[G any] interface {
	Evaluator[G]
	Values(gs []G, p Player) []float64
}

// EvaluatorFunc adapts a plain function to an Evaluator.
type EvaluatorFunc[G any] func(g G, p Player) float64

func (f EvaluatorFunc[G]) Value(g G, p Player) float64 {
	return f(g, p)
}
