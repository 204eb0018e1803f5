// Package aco is an Ant Colony Optimization engine: ants walk a graph,
// good walks reinforce their edges with pheromone, and every cycle the
// pheromone evaporates so old trails fade.
//
// 🚀 What is aco?
//
//	A small, thread-safe library plus a CLI that brings together:
//		• Pheromone policies: initial level, evaporation rate, deposit rule
//		• Graph store: integer node ids, one undirected edge per pair,
//		  roulette-wheel selection weighted by pheromone
//		• Colony: release ants, keep the best valid solution, update trails
//		  (sequential or in concurrent generations, reproducible by seed)
//		• Topology builders: complete, cycle, path, star, wheel, grid, sparse
//		• TSP: Euclidean tours with an optional 2-opt polish
//
// ✨ Why choose aco?
//
//   - Problem-agnostic – bring your own Solution (Extend/Valid/Objective)
//   - Deterministic – a seed fixes every ant's choices
//   - Observable – slog logs, Prometheus metrics, OpenTelemetry spans
//
// Everything is organized under these subpackages:
//
//	pheromone/ — Policy interface and standard increase functions
//	graph/     — nodes, id Sequence, edges, Store and selection
//	colony/    — Solution contract, Context (ReleaseAnt, UpdatePheromone), Colony.Run
//	builder/   — deterministic topology constructors
//	tsp/       — travelling salesman problem on top of the colony
//	cmd/aco/   — `aco solve -c problem.yaml`, `aco walk grid`
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	four nodes, four edges; an ant from A visits B or C first with
//	probability proportional to the pheromone on A–B and A–C.
//
//	go get github.com/katalvlaran/aco
package aco
