package mesh

import "errors"

// Domain errors for mesh operations.
var (
	// ErrNoTimesteps indicates an empty timestep sequence was given to the sampler.
	ErrNoTimesteps = errors.New("mesh: no timesteps to sample")

	// ErrBadCap indicates a non-positive export cap.
	ErrBadCap = errors.New("mesh: export cap must be positive")

	// ErrInvalidTopology indicates a triangle referencing a point outside the
	// loaded vertex array.
	ErrInvalidTopology = errors.New("mesh: invalid topology (triangle index out of range)")
)
