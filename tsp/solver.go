// Package tsp — the evolutionary solver's state machine.
//
// Solver drives the steady-state (mu, lambda) search end to end: Init seeds
// the population via farthest insertion, Iterate repeatedly selects,
// recombines, mutates, and replaces it, Finalize polishes once more and
// hands back the best tour seen. The solver never parses files, never talks
// to a CLI, and never decides what "complete" a DistanceMatrix needs to be
// — all of that lives outside this package.
package tsp

import (
	"math/rand"

	"go.uber.org/zap"
)

// Solver runs one evolutionary search over a DistanceMatrix.
type Solver struct {
	dist   DistanceMatrix
	params MetaHeuristicParams
	rng    *rand.Rand
	logger *zap.Logger

	population []*Tour
	best       *Tour

	generations          int
	generationsNoImprove int
	stopFlag             uint32
}

// NewSolver validates params and dist, and returns a Solver ready for Run.
//
// Complexity: O(n^2) for matrix validation.
func NewSolver(dist DistanceMatrix, params MetaHeuristicParams) (*Solver, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}
	if _, err := validateDistanceMatrix(dist); err != nil {
		return nil, err
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Solver{
		dist:   dist,
		params: params,
		rng:    rngFromSeed(params.Seed),
		logger: logger,
	}, nil
}

// init builds the farthest-insertion seed, the initial population, and runs
// one exhaustive local-search pass over it, per the Init state.
//
// Complexity: O(n^2) for the seed, O(mu*n) for the population, O(mu*n^3) for
// the exhaustive local-search pass.
func (s *Solver) init() error {
	seed, err := FarthestInsertion(s.dist)
	if err != nil {
		return err
	}

	mu := s.params.Mu
	s.population = make([]*Tour, 0, mu)
	if s.params.IncludeHeuristicSeed {
		s.population = append(s.population, seed.Clone())
	}
	for len(s.population) < mu {
		// Each shuffled individual draws from its own derived substream
		// (keyed by its position in the population) rather than consuming
		// s.rng directly, so the composition of the initial population
		// doesn't depend on draw order the way a single shared stream would.
		memberRNG := deriveRNG(s.rng, uint64(len(s.population)))
		shuffled, err := shuffleKeepingDepot(seed.Raw(), memberRNG)
		if err != nil {
			return err
		}
		t, err := NewTour(shuffled, s.dist)
		if err != nil {
			return err
		}
		s.population = append(s.population, t)
	}

	for _, t := range s.population {
		if _, err := ExhaustiveLocalSearchPass(t); err != nil {
			return err
		}
	}

	best, err := argminCost(s.population)
	if err != nil {
		return err
	}
	s.best = best.Clone()
	return nil
}

// shuffleKeepingDepot returns a copy of perm shuffled except for position 0,
// which stays pinned to perm[0] (the depot city).
//
// Complexity: O(n).
func shuffleKeepingDepot(perm []int, rng *rand.Rand) ([]int, error) {
	n := len(perm)
	if n < 1 {
		return nil, ErrDimensionMismatch
	}
	out := CopyTour(perm)
	tail := out[1:]
	shuffleIntsInPlace(tail, rng)
	return out, nil
}

// argminCost returns the lowest-cost member of population.
func argminCost(population []*Tour) (*Tour, error) {
	if len(population) == 0 {
		return nil, ErrDimensionMismatch
	}
	best := population[0]
	bestCost, err := best.Cost()
	if err != nil {
		return nil, err
	}
	for _, t := range population[1:] {
		c, err := t.Cost()
		if err != nil {
			return nil, err
		}
		if c < bestCost {
			best, bestCost = t, c
		}
	}
	return best, nil
}

// shouldContinue implements should_continue(): the loop keeps running while
// the stop flag is unset and neither generation cap has been reached.
func (s *Solver) shouldContinue() bool {
	if s.stopped() {
		return false
	}
	if s.generationsNoImprove >= s.params.MaxGenerationsWithoutImprovement {
		return false
	}
	if s.generations >= s.params.MaxGenerations {
		return false
	}
	return true
}

// iterate runs one generation: select, recombine, mutate, replace, elitism,
// bookkeeping, and the periodic windowed local-search pass.
func (s *Solver) iterate() error {
	mating, err := SelectParents(s.population, s.params.Lambda, s.params.TournamentK, s.params.ParentSelection, s.rng)
	if err != nil {
		return err
	}

	offspring, err := sequentialCrossover(mating, s.params.CrossoverVariant, s.params.CrossoverRate, s.rng)
	if err != nil {
		return err
	}

	for _, child := range offspring {
		if err := mutateOffspring(child, s.params.MutationOp, s.params.MutationProbability, s.rng); err != nil {
			return err
		}
	}

	newPopulation, err := ReplaceGenerational(offspring, s.params.Mu, s.rng)
	if err != nil {
		return err
	}
	if err := ApplyElitism(newPopulation, mating); err != nil {
		return err
	}
	s.population = newPopulation

	s.generations++

	if s.params.LocalSearch != NoLocalSearch && s.generationsNoImprove%localSearchStagnationPeriod != 0 {
		for _, t := range s.population {
			var err error
			if s.params.LocalSearch == ExhaustiveLocalSearch {
				_, err = ExhaustiveLocalSearchPass(t)
			} else {
				_, err = WindowedLocalSearchPass(t, s.rng)
			}
			if err != nil {
				return err
			}
		}
	}

	prevBestCost, err := s.best.Cost()
	if err != nil {
		return err
	}
	candidate, err := argminCost(s.population)
	if err != nil {
		return err
	}
	candidateCost, err := candidate.Cost()
	if err != nil {
		return err
	}

	avg, err := averageCost(s.population)
	if err != nil {
		return err
	}

	if candidateCost < prevBestCost {
		s.best = candidate.Clone()
		s.generationsNoImprove = 0
	} else {
		s.generationsNoImprove++
	}

	bestCost, _ := s.best.Cost()
	s.logger.Debug("generation",
		zap.Int("generation", s.generations),
		zap.Float64("previous_best_cost", prevBestCost),
		zap.Float64("current_best_cost", bestCost),
		zap.Float64("average_cost", avg),
		zap.Int("stagnation", s.generationsNoImprove),
	)
	return nil
}

// averageCost returns the mean cost across population.
func averageCost(population []*Tour) (float64, error) {
	var sum float64
	for _, t := range population {
		c, err := t.Cost()
		if err != nil {
			return 0, err
		}
		sum += c
	}
	return sum / float64(len(population)), nil
}

// finalize runs one last windowed local-search pass and updates best_solution.
func (s *Solver) finalize() error {
	for _, t := range s.population {
		if _, err := WindowedLocalSearchPass(t, s.rng); err != nil {
			return err
		}
	}
	candidate, err := argminCost(s.population)
	if err != nil {
		return err
	}
	candidateCost, err := candidate.Cost()
	if err != nil {
		return err
	}
	bestCost, err := s.best.Cost()
	if err != nil {
		return err
	}
	if candidateCost < bestCost {
		s.best = candidate.Clone()
	}
	return nil
}

// Run drives Init -> Iterate* -> Finalize and returns the best tour found.
// interrupted reports whether the stop flag terminated the loop early.
//
// Complexity: O(max_n_generations * lambda * n) plus whatever local-search
// passes fire along the way.
func (s *Solver) Run() (Result, error) {
	if err := s.init(); err != nil {
		return Result{}, err
	}

	for s.shouldContinue() {
		if err := s.iterate(); err != nil {
			return Result{}, err
		}
	}

	interrupted := s.stopped()

	if err := s.finalize(); err != nil {
		return Result{}, err
	}

	return Result{
		Tour:           s.best.Perm(),
		Cost:           mustCost(s.best),
		Generations:    s.generations,
		WasInterrupted: interrupted,
	}, nil
}

func mustCost(t *Tour) float64 {
	c, err := t.Cost()
	if err != nil {
		return 0
	}
	return c
}
