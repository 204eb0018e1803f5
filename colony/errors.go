package colony

import "errors"

var (
	// ErrNoNodes indicates a Config without nodes.
	ErrNoNodes = errors.New("colony: no nodes")

	// ErrNoEdges indicates a Config whose nodes produce no edge.
	ErrNoEdges = errors.New("colony: no edges")

	// ErrNoSolutionFactory indicates a Config without NewSolution.
	ErrNoSolutionFactory = errors.New("colony: no solution factory")

	// ErrNoPolicy indicates a Config that must build edges but has no pheromone policy.
	ErrNoPolicy = errors.New("colony: no pheromone policy")

	// ErrNilSolution is returned when the solution factory yields nil.
	ErrNilSolution = errors.New("colony: solution factory returned nil")

	// ErrNilContext is returned by New for a nil *Context.
	ErrNilContext = errors.New("colony: context is nil")

	// ErrInvalidAntCount is returned by New for a negative number of ants.
	ErrInvalidAntCount = errors.New("colony: ant count must be non-negative")

	// ErrNoSolutionFound is returned by Run when no ant produced a valid solution.
	ErrNoSolutionFound = errors.New("colony: no solution found")
)
