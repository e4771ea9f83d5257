package store

import (
	"fmt"

	"github.com/san-kum/meshviz/internal/mesh"
)

// Mem is an in-memory array store for synthetic fixtures.
type Mem struct {
	PointSets    map[string][]mesh.Point
	TriangleSets map[string][]mesh.Triangle
}

// NewMem returns an empty in-memory store.
func NewMem() *Mem {
	return &Mem{
		PointSets:    make(map[string][]mesh.Point),
		TriangleSets: make(map[string][]mesh.Triangle),
	}
}

func (s *Mem) Points(ref string) ([]mesh.Point, error) {
	p, ok := s.PointSets[ref]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRef, ref)
	}
	return p, nil
}

func (s *Mem) Triangles(ref string) ([]mesh.Triangle, error) {
	t, ok := s.TriangleSets[ref]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRef, ref)
	}
	return t, nil
}
