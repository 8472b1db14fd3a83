package searcher

// Option configures a Searcher. Invalid values are ignored and the default kept.
type Option func(s *settings)

type settings struct {
	algorithm      Algorithm
	batchDepth     int
	goroutines     int
	transpositions bool
	seed           uint64
}

func WithAlgorithm(algorithm Algorithm) Option {
	return func(s *settings) {
		if _, ok := algorithmNames[algorithm]; ok {
			s.algorithm = algorithm
		}
	}
}

// WithBatchDepth makes alpha-beta hand every subtree of at most depth plies
// to batched negamax. Zero keeps pure alpha-beta.
func WithBatchDepth(depth int) Option {
	return func(s *settings) {
		if depth >= 0 {
			s.batchDepth = depth
		}
	}
}

// WithGoroutines spreads the root actions of ActionValues and BestAction over
// up to n goroutines.
func WithGoroutines(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.goroutines = n
		}
	}
}

// WithTranspositions enables a per-call transposition table in alpha-beta.
func WithTranspositions() Option {
	return func(s *settings) {
		s.transpositions = true
	}
}

// WithSeed fixes the tie-break seed. Zero keeps a random seed.
func WithSeed(seed uint64) Option {
	return func(s *settings) {
		if seed != 0 {
			s.seed = seed
		}
	}
}
