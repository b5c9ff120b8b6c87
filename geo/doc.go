// Package geo is a collaborator shim around tsp.DistanceMatrix: it reads
// TSPLIB-style instance files, computes the EUC_2D/GEO distance functions
// over 2-D points, and exposes the result as a matrix.Dense-backed
// tsp.DistanceMatrix. None of this is part of the evolutionary search core;
// it exists so cmd/tspga has something to feed the solver.
package geo
