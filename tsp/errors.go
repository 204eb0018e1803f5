package tsp

import "errors"

var (
	// ErrTooFewCities is returned for fewer than MinCities cities.
	ErrTooFewCities = errors.New("tsp: too few cities")

	// ErrInvalidCoordinate is returned for a NaN or infinite coordinate.
	ErrInvalidCoordinate = errors.New("tsp: invalid coordinate")

	// ErrStartOutOfRange is returned for a start index outside [0..n-1].
	ErrStartOutOfRange = errors.New("tsp: start index out of range")

	// ErrDimensionMismatch is returned for a tour that is not a closed
	// Hamiltonian cycle over the expected number of cities.
	ErrDimensionMismatch = errors.New("tsp: tour shape mismatch")
)
