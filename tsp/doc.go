// Package tsp solves the symmetric Euclidean Travelling Salesman Problem with
// the colony engine.
//
// Each city becomes a graph node on a complete graph. An ant's walk is a Tour;
// it is valid once every city is visited and scores 1/length of the closed
// cycle, so shorter tours deposit more pheromone under the Q/L rule
// (pheromone.Scaled). The best tour can optionally be polished with a
// deterministic first-improvement 2-opt pass.
//
// Tours returned by Solve are closed index sequences over the input slice:
//
//	len(Tour) == n+1, Tour[0] == Tour[n] == start,
//	every index in [0..n-1] appears exactly once in Tour[0..n-1].
//
// The helpers in tour.go (ValidateTour, RotateTourToStart,
// EqualToursModuloRotation) work on that representation and are independent of
// coordinates.
//
// Determinism: a fixed WithSeed and worker count give the same tour on every run.
package tsp
