// Package tsp — parent selection, generational replacement, and elitism.
package tsp

import (
	"math"
	"math/rand"
	"sort"
)

// TournamentSelect draws lambda parents from population: each draw samples
// k distinct members uniformly and keeps the one of minimum cost.
//
// Complexity: O(lambda*k).
func TournamentSelect(population []*Tour, lambda, k int, rng *rand.Rand) ([]*Tour, error) {
	mu := len(population)
	if k < 1 || k > mu || lambda < 1 {
		return nil, ErrInvalidParams
	}

	mating := make([]*Tour, 0, lambda)
	for i := 0; i < lambda; i++ {
		idx, err := SampleIndexes(0, mu, k, rng)
		if err != nil {
			return nil, err
		}
		best := population[idx[0]]
		bestCost, err := best.Cost()
		if err != nil {
			return nil, err
		}
		for _, j := range idx[1:] {
			c, err := population[j].Cost()
			if err != nil {
				return nil, err
			}
			if c < bestCost {
				best = population[j]
				bestCost = c
			}
		}
		mating = append(mating, best.Clone())
	}
	return mating, nil
}

// ExponentialRankingSelect draws lambda parents from population with
// replacement, weighted by exponential rank: the population is sorted by
// descending cost so rank 0 is the worst individual and rank mu-1 the
// best; weight(r) = 1 - exp(-r), normalized to sum to 1.
//
// Complexity: O(mu*log(mu) + lambda).
func ExponentialRankingSelect(population []*Tour, lambda int, rng *rand.Rand) ([]*Tour, error) {
	mu := len(population)
	if lambda < 1 || mu < 1 {
		return nil, ErrInvalidParams
	}

	ranked := make([]*Tour, mu)
	copy(ranked, population)
	costs := make([]float64, mu)
	for i, t := range ranked {
		c, err := t.Cost()
		if err != nil {
			return nil, err
		}
		costs[i] = c
	}
	sort.Slice(ranked, func(i, j int) bool {
		ci, _ := ranked[i].Cost()
		cj, _ := ranked[j].Cost()
		return ci > cj
	})

	weights := make([]float64, mu)
	for r := 0; r < mu; r++ {
		weights[r] = 1 - math.Exp(-float64(r))
	}

	idx, err := WeightedSample(weights, lambda, true, rng)
	if err != nil {
		return nil, err
	}
	mating := make([]*Tour, lambda)
	for i, j := range idx {
		mating[i] = ranked[j].Clone()
	}
	return mating, nil
}

// SelectParents dispatches to the configured parent-selection strategy.
func SelectParents(population []*Tour, lambda, k int, strategy ParentSelectionStrategy, rng *rand.Rand) ([]*Tour, error) {
	switch strategy {
	case TournamentSelection:
		return TournamentSelect(population, lambda, k, rng)
	case ExponentialRankingSelection:
		return ExponentialRankingSelect(population, lambda, rng)
	default:
		return nil, ErrInvalidParams
	}
}

// ReplaceGenerational implements (mu, lambda) replacement: mu survivors are
// drawn from the lambda offspring without replacement, with probability
// proportional to offspring cost.
//
// This reproduces the reference metaheuristic verbatim: higher-cost
// offspring are *more* likely to survive, the opposite of typical
// fitness-proportional selection. Not "fixed" — preserved intentionally.
//
// Complexity: O(mu*lambda).
func ReplaceGenerational(offspring []*Tour, mu int, rng *rand.Rand) ([]*Tour, error) {
	lambda := len(offspring)
	if mu < 1 || mu > lambda {
		return nil, ErrInvalidParams
	}

	weights := make([]float64, lambda)
	for i, t := range offspring {
		c, err := t.Cost()
		if err != nil {
			return nil, err
		}
		weights[i] = c
	}

	idx, err := WeightedSample(weights, mu, false, rng)
	if err != nil {
		return nil, err
	}
	survivors := make([]*Tour, mu)
	for i, j := range idx {
		survivors[i] = offspring[j]
	}
	return survivors, nil
}

// ApplyElitism carries the best mating-pool member into position 1 of
// population when the new population's own best individual regressed
// relative to it. Position 0 is left untouched, reserved for the
// solver-level best-so-far bookkeeping.
//
// Complexity: O(mu + lambda).
func ApplyElitism(population, matingPool []*Tour) error {
	if len(population) < 2 || len(matingPool) == 0 {
		return ErrDimensionMismatch
	}

	bestParent := matingPool[0]
	bestParentCost, err := bestParent.Cost()
	if err != nil {
		return err
	}
	for _, t := range matingPool[1:] {
		c, err := t.Cost()
		if err != nil {
			return err
		}
		if c < bestParentCost {
			bestParent = t
			bestParentCost = c
		}
	}

	newBestCost, err := population[0].Cost()
	if err != nil {
		return err
	}
	for _, t := range population[1:] {
		c, err := t.Cost()
		if err != nil {
			return err
		}
		if c < newBestCost {
			newBestCost = c
		}
	}

	if newBestCost > bestParentCost {
		population[1] = bestParent.Clone()
	}
	return nil
}
