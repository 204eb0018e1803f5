// Package builder defines shared constants used by topology constructors.
package builder

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
)

// CenterLabel labels the hub of Star and Wheel.
const CenterLabel = "Center"

// MinCompleteNodes is the smallest complete graph (a single node, no edges).
const MinCompleteNodes = 1

// MinCycleNodes is the smallest ring without loops or multi-edges.
const MinCycleNodes = 3

// MinPathNodes is the smallest path with at least one edge.
const MinPathNodes = 2

// MinStarNodes is one center plus at least one leaf.
const MinStarNodes = 2

// MinWheelNodes is a 3-cycle plus the hub.
const MinWheelNodes = 4

// MinGridDim is the smallest allowed rows or cols. A 1×1 grid has no edges.
const MinGridDim = 1

// MinRandomSparseNodes is the smallest RandomSparse vertex count.
const MinRandomSparseNodes = 1

// MinProbability and MaxProbability bound RandomSparse(p), inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
