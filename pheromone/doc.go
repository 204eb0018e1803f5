// Package pheromone defines the pheromone-dynamics policy shared by every edge
// of an ant-colony graph.
//
// A Policy carries two immutable parameters and one problem-specific hook:
//
//   - InitialLevel     — pheromone placed on every edge when the graph is built (≥ 0).
//   - EvaporationRate  — fraction of the current level removed per cycle, in [0,1].
//   - Increase(obj)    — amount deposited on an edge of a solution whose objective is obj.
//
// Params is the ready-made value object: callers pick the two parameters and plug an
// IncreaseFn (Zero, Constant, Linear, Scaled or their own closure). One Params value
// parametrizes a whole graph; it is safe for concurrent use because it never mutates.
//
// Errors:
//
//	ErrNegativeInitial    – initial level < 0.
//	ErrEvaporationRange   – evaporation rate outside [0,1] or NaN.
//	ErrNilIncrease        – increase function is nil.
package pheromone
