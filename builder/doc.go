// Package builder produces deterministic node sets for colony runs.
//
// A constructor adds nodes (ids from one graph.Sequence) and links them with
// symmetric adjacency. Build applies constructors in order to a single
// Topology, so several shapes can be composed into one graph, and returns the
// nodes ready for colony.Config.
//
// Components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  RNG, label scheme and first node id.
//   - Label schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//     – SymbolNumberIDFn:  prefix + decimal ("v0","v1",…).
//   - Topologies: Complete, Cycle, Path, Star, Wheel, Grid, RandomSparse.
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical ids, labels and adjacency.
//   - Option constructors panic on meaningless input; constructors return
//     sentinel errors (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource).
//   - Adjacency is always symmetric and never contains self-loops.
package builder
