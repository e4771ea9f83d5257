// Package pipeline runs the shared select, load, mirror loop that every
// exporter consumes. Frames are produced strictly sequentially and handed
// off one at a time; nothing is retained across iterations.
package pipeline

import (
	"fmt"

	"github.com/san-kum/meshviz/internal/index"
	"github.com/san-kum/meshviz/internal/mesh"
)

// ArrayStore resolves a dataset reference to its raw array. Implementations
// live in the store package.
type ArrayStore interface {
	Points(ref string) ([]mesh.Point, error)
	Triangles(ref string) ([]mesh.Triangle, error)
}

// Frame is one fully mirrored snapshot.
type Frame struct {
	// Index is the 0-based position within the selected subset.
	Index int
	// Source is the position within the full timestep sequence.
	Source int
	// Time is the snapshot's simulation time, unrounded.
	Time float64
	// Mesh is the full mirrored surface, valid only for the duration of
	// the consumer callback.
	Mesh mesh.Frame
}

// Each subsamples steps to at most cap strided picks (plus the final step),
// then for each selected timestep loads its arrays, mirrors the octant into
// a full surface, and passes the result to fn. The first error aborts the
// whole run; there is no per-timestep fallback.
func Each(store ArrayStore, steps []index.Timestep, cap int, fn func(Frame) error) error {
	selected, err := mesh.SampleTimesteps(len(steps), cap)
	if err != nil {
		return err
	}

	for i, idx := range selected {
		ts := steps[idx]

		points, err := store.Points(ts.GeometryRef)
		if err != nil {
			return fmt.Errorf("timestep %d (t=%g): %w", idx, ts.Time, err)
		}
		triangles, err := store.Triangles(ts.TopologyRef)
		if err != nil {
			return fmt.Errorf("timestep %d (t=%g): %w", idx, ts.Time, err)
		}

		full, err := mesh.MirrorOctants(points, triangles)
		if err != nil {
			return fmt.Errorf("timestep %d (t=%g): %w", idx, ts.Time, err)
		}

		if err := fn(Frame{Index: i, Source: idx, Time: ts.Time, Mesh: full}); err != nil {
			return err
		}
	}
	return nil
}

// Count returns how many timesteps Each would select for a sequence of
// length n, without touching the store.
func Count(n, cap int) (int, error) {
	selected, err := mesh.SampleTimesteps(n, cap)
	if err != nil {
		return 0, err
	}
	return len(selected), nil
}
