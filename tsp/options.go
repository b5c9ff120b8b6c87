// Package tsp — solver configuration.
//
// MetaHeuristicParams is a functional-options struct in the same shape as
// dijkstra.Options: a plain struct built through Option funcs, with
// panicking constructors for literal arguments that are nonsensical on
// their face (negative counts, out-of-[0,1] probabilities) and a separate
// construction-time cross-field validation pass (validateParams) for
// combinations that can only be judged once every field is set.
package tsp

import "go.uber.org/zap"

// MutationOperator selects which permutation operator mutates an offspring.
type MutationOperator int

const (
	// LeftRotation rotates the mutated segment left by one position. This is
	// the operator the reference implementation wires by default.
	LeftRotation MutationOperator = iota
	// RightRotation rotates the mutated segment right by one position.
	RightRotation
	// SwapOperator exchanges two positions.
	SwapOperator
	// Inversion reverses a contiguous segment (2-opt-style).
	Inversion
)

// ParentSelectionStrategy selects how parents are drawn from the population.
type ParentSelectionStrategy int

const (
	// TournamentSelection draws k individuals uniformly and keeps the best.
	TournamentSelection ParentSelectionStrategy = iota
	// ExponentialRankingSelection biases selection by exponential rank weight.
	ExponentialRankingSelection
)

// CrossoverVariant selects the order-crossover cut scheme.
type CrossoverVariant int

const (
	// SingleCutOrderCrossover uses one random cut point (classic OX).
	SingleCutOrderCrossover CrossoverVariant = iota
	// TwoCutOrderCrossover uses two random cut points delimiting the copied
	// segment (the "order_alt" variant).
	TwoCutOrderCrossover
)

// LocalSearchMode selects the neighborhood-descent strategy applied between
// generations.
type LocalSearchMode int

const (
	// NoLocalSearch disables the per-generation local-search pass. The
	// exhaustive pass in Init and the windowed pass in Finalize still run.
	NoLocalSearch LocalSearchMode = iota
	// ExhaustiveLocalSearch evaluates the full O(N^2) neighborhood per individual.
	ExhaustiveLocalSearch
	// WindowedLocalSearch samples a bounded neighborhood window per individual.
	WindowedLocalSearch
)

// localSearchStagnationPeriod is the fixed cadence (in stagnant generations)
// of the per-generation local-search pass: the pass runs whenever the
// stagnation counter is not a multiple of 20, and is skipped when it is.
const localSearchStagnationPeriod = 20

// MetaHeuristicParams configures Solver. Zero value is not valid; build one
// with DefaultParams and Option funcs.
type MetaHeuristicParams struct {
	MutationProbability             float64
	CrossoverRate                   float64
	Mu                               int
	Lambda                           int
	TournamentK                      int
	MaxGenerationsWithoutImprovement int
	MaxGenerations                   int
	IncludeHeuristicSeed             bool
	MutationOp                       MutationOperator
	CrossoverVariant                 CrossoverVariant
	ParentSelection                  ParentSelectionStrategy
	LocalSearch                      LocalSearchMode
	Seed                             int64
	Logger                           *zap.Logger
}


// Option configures a MetaHeuristicParams.
type Option func(*MetaHeuristicParams)

// WithMutationProbability sets the per-position mutation draw probability.
// Panics if p is outside [0, 1].
func WithMutationProbability(p float64) Option {
	return func(o *MetaHeuristicParams) {
		if p < 0 || p > 1 {
			panic(ErrInvalidParams.Error())
		}
		o.MutationProbability = p
	}
}

// WithCrossoverRate sets the recombination gate probability. Panics if r is
// outside [0, 1].
func WithCrossoverRate(r float64) Option {
	return func(o *MetaHeuristicParams) {
		if r < 0 || r > 1 {
			panic(ErrInvalidParams.Error())
		}
		o.CrossoverRate = r
	}
}

// WithMu sets the number of survivors kept each generation. Panics if mu <= 0.
func WithMu(mu int) Option {
	return func(o *MetaHeuristicParams) {
		if mu <= 0 {
			panic(ErrInvalidParams.Error())
		}
		o.Mu = mu
	}
}

// WithLambda sets the number of offspring produced each generation. Panics
// if lambda <= 0.
func WithLambda(lambda int) Option {
	return func(o *MetaHeuristicParams) {
		if lambda <= 0 {
			panic(ErrInvalidParams.Error())
		}
		o.Lambda = lambda
	}
}

// WithTournamentK sets the tournament sample size. Panics if k <= 1.
func WithTournamentK(k int) Option {
	return func(o *MetaHeuristicParams) {
		if k <= 1 {
			panic(ErrInvalidParams.Error())
		}
		o.TournamentK = k
	}
}

// WithMaxGenerationsWithoutImprovement sets the stagnation cap. Panics if
// nonpositive.
func WithMaxGenerationsWithoutImprovement(n int) Option {
	return func(o *MetaHeuristicParams) {
		if n <= 0 {
			panic(ErrInvalidParams.Error())
		}
		o.MaxGenerationsWithoutImprovement = n
	}
}

// WithMaxGenerations sets the hard generation cap. Panics if nonpositive.
func WithMaxGenerations(n int) Option {
	return func(o *MetaHeuristicParams) {
		if n <= 0 {
			panic(ErrInvalidParams.Error())
		}
		o.MaxGenerations = n
	}
}

// WithIncludeHeuristicSeed toggles seeding the initial population with the
// farthest-insertion tour verbatim, alongside its shuffled derivatives.
func WithIncludeHeuristicSeed(include bool) Option {
	return func(o *MetaHeuristicParams) { o.IncludeHeuristicSeed = include }
}

// WithMutationOperator selects the mutation operator applied to offspring.
func WithMutationOperator(op MutationOperator) Option {
	return func(o *MetaHeuristicParams) { o.MutationOp = op }
}

// WithCrossoverVariant selects the order-crossover cut scheme.
func WithCrossoverVariant(v CrossoverVariant) Option {
	return func(o *MetaHeuristicParams) { o.CrossoverVariant = v }
}

// WithParentSelection selects the parent-selection strategy.
func WithParentSelection(s ParentSelectionStrategy) Option {
	return func(o *MetaHeuristicParams) { o.ParentSelection = s }
}

// WithLocalSearch selects the local-search mode of the per-generation pass.
func WithLocalSearch(m LocalSearchMode) Option {
	return func(o *MetaHeuristicParams) { o.LocalSearch = m }
}

// WithSeed pins the RNG seed for reproducible runs. seed==0 falls back to
// the package's deterministic default stream.
func WithSeed(seed int64) Option {
	return func(o *MetaHeuristicParams) { o.Seed = seed }
}

// WithLogger installs a zap.Logger the solver uses to emit one structured
// row per generation. A nil logger (the default) disables monitoring output.
func WithLogger(logger *zap.Logger) Option {
	return func(o *MetaHeuristicParams) { o.Logger = logger }
}

// DefaultParams returns the reference parameter set, then applies opts.
//
// Defaults mirror the reference metaheuristic's own defaults: mu=40,
// lambda=60, tournament_k=13, max_n_generations=408,
// max_n_generations_without_improvement=177, crossover_rate≈0.9255,
// mutation_probability≈0.0183.
func DefaultParams(opts ...Option) MetaHeuristicParams {
	p := MetaHeuristicParams{
		MutationProbability:             0.0183177033,
		CrossoverRate:                   0.9254767404,
		Mu:                               40,
		Lambda:                           60,
		TournamentK:                      13,
		MaxGenerationsWithoutImprovement: 177,
		MaxGenerations:                   408,
		IncludeHeuristicSeed:             true,
		MutationOp:                       LeftRotation,
		CrossoverVariant:                 SingleCutOrderCrossover,
		ParentSelection:                  TournamentSelection,
		LocalSearch:                      WindowedLocalSearch,
		Seed:                             0,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}
