// Package tsp provides a steady-state evolutionary solver for the symmetric
// Traveling Salesman Problem.
//
// A Tour is a permutation of city indices [0, N) with the depot (city 0)
// always held at position 0. The population evolves generation by
// generation: parents are drawn by tournament or exponential-rank
// selection, offspring are produced by order crossover (OX) and mutated by
// one of four permutation operators, and a (mu, lambda) replacement with
// elitism produces the next generation. An optional local-search pass
// (exhaustive or windowed) tightens individuals between generations.
//
// The solver never reads files, parses CLI flags, or prints a report; it
// consumes a DistanceMatrix built by an external collaborator and runs
// until a generation/stagnation budget is exhausted or a cooperative stop
// signal trips at a generation boundary.
package tsp
